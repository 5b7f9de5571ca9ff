// Package add records a transaction in the active month
package add

import (
	"time"

	"allowance/cmd/root"
	"allowance/internal/dateutils"
	"allowance/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	date     string
	category string
	kind     string
	mode     string
	amount   string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	Long:  `Record an income or expenditure transaction against one of the configured categories.`,
	Run:   addFunc,
}

func addFunc(cmd *cobra.Command, args []string) {
	when := time.Now()
	if date != "" {
		parsed, _, err := dateutils.ParseDate(date)
		if err != nil {
			root.Log.Fatalf("Invalid date: %v", err)
		}
		when = parsed
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

	tx, err := root.Ledger.AddTransaction(when, category, txKind, txMode, value)
	if err != nil {
		root.Log.Fatalf("Could not add transaction: %v", err)
	}
	root.Log.Infof("Recorded %s of %s in %s (id %s)", tx.Kind, tx.Amount.StringFixed(2), tx.Category, tx.ID)
}

func init() {
	Cmd.Flags().StringVarP(&date, "date", "t", "", "Transaction date (defaults to today)")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Spending category (required)")
	Cmd.Flags().StringVarP(&kind, "type", "k", "Expenditure", "Transaction type: Income or Expenditure")
	Cmd.Flags().StringVarP(&mode, "mode", "m", "Cash", "Payment mode: Cash, Card, Wallet, BankTransfer or Other")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Transaction amount (required)")
	_ = Cmd.MarkFlagRequired("category")
	_ = Cmd.MarkFlagRequired("amount")
}
