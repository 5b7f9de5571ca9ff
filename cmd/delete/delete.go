// Package delete removes transactions from the active month
package delete

import (
	"allowance/cmd/root"
	"allowance/internal/dateutils"
	"allowance/internal/ledger"
	"allowance/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	id       string
	date     string
	category string
	kind     string
	mode     string
	amount   string
)

// Cmd represents the delete command
var Cmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete transactions",
	Long: `Delete a transaction by id, or every transaction matching the given
date, category, type, payment mode and amount. Old entries recorded without
an id can only be removed by field matching; duplicates are removed together.`,
	Run: deleteFunc,
}

func deleteFunc(cmd *cobra.Command, args []string) {
	if id != "" {
		if err := root.Ledger.DeleteTransaction(id); err != nil {
			root.Log.Fatalf("Could not delete transaction: %v", err)
		}
		root.Log.Infof("Deleted transaction %s", id)
		return
	}

	if date == "" || category == "" || amount == "" {
		root.Log.Fatal("Either --id or all of --date, --category and --amount are required")
	}

	when, _, err := dateutils.ParseDate(date)
	if err != nil {
		root.Log.Fatalf("Invalid date: %v", err)
	}
	txKind, err := models.ParseKind(kind)
	if err != nil {
		root.Log.Fatalf("Invalid transaction type: %v", err)
	}
	txMode, err := models.ParsePaymentMode(mode)
	if err != nil {
		root.Log.Fatalf("Invalid payment mode: %v", err)
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		root.Log.Fatalf("Invalid amount: %v", err)
	}

	removed, err := root.Ledger.DeleteTransactionsMatching(ledger.MatchCriteria{
		Date:        models.NewDate(when),
		Category:    category,
		Kind:        txKind,
		PaymentMode: txMode,
		Amount:      value,
	})
	if err != nil {
		root.Log.Fatalf("Could not delete transactions: %v", err)
	}
	root.Log.Infof("Deleted %d transaction(s)", removed)
}

func init() {
	Cmd.Flags().StringVarP(&id, "id", "i", "", "Transaction id")
	Cmd.Flags().StringVarP(&date, "date", "t", "", "Transaction date")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Spending category")
	Cmd.Flags().StringVarP(&kind, "type", "k", "Expenditure", "Transaction type: Income or Expenditure")
	Cmd.Flags().StringVarP(&mode, "mode", "m", "Cash", "Payment mode")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Transaction amount")
}
