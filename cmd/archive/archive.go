// Package archive inspects frozen snapshots of past months
package archive

import (
	"fmt"

	"allowance/cmd/root"
	"allowance/internal/metrics"

	"github.com/spf13/cobra"
)

var month string

// Cmd represents the archive command
var Cmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect archived months",
	Long:  `List archived months, or show one month's transactions and totals with --month.`,
	Run:   archiveFunc,
}

func archiveFunc(cmd *cobra.Command, args []string) {
	doc := root.Ledger.Document()

	if month == "" {
		for _, key := range doc.ArchivedKeys() {
			archived := doc.Archives[key]
			fmt.Printf("%s  allowance %s, %d transaction(s)\n",
				key, archived.MonthlyAllowance.StringFixed(2), len(archived.Transactions))
		}
		return
	}

	archived, ok := doc.Archives[month]
	if !ok {
		root.Log.Fatalf("No archive for month %s", month)
	}

	m := metrics.Compute(archived.Transactions, archived.MonthlyAllowance)
	fmt.Printf("Month:         %s\n", month)
	fmt.Printf("Allowance:     %s\n", archived.MonthlyAllowance.StringFixed(2))
	fmt.Printf("Total income:  %s\n", m.TotalIncome.StringFixed(2))
	fmt.Printf("Total expense: %s\n", m.TotalExpense.StringFixed(2))
	fmt.Printf("Net available: %s\n\n", m.NetAvailable.StringFixed(2))

	for _, tx := range archived.Transactions {
		fmt.Printf("%s  %-12s %-20s %-12s %s\n",
			tx.Date.Format("2006-01-02"), tx.Kind, tx.Category, tx.PaymentMode, tx.Amount.StringFixed(2))
	}
}

func init() {
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Archived month key (YYYY-MM)")
}
