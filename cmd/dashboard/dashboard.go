// Package dashboard shows the active month's budget at a glance
package dashboard

import (
	"fmt"

	"allowance/cmd/root"
	"allowance/internal/metrics"

	"github.com/spf13/cobra"
)

// Cmd represents the dashboard command
var Cmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the active month's budget metrics",
	Long:  `Show the active month's allowance, totals and remaining budget, with expenses broken down by category.`,
	Run:   dashboardFunc,
}

func dashboardFunc(cmd *cobra.Command, args []string) {
	doc := root.Ledger.Document()
	m := metrics.Compute(doc.Transactions, doc.MonthlyAllowance)

	fmt.Printf("Month:            %s\n", doc.CurrentMonth)
	fmt.Printf("Allowance:        %s\n", doc.MonthlyAllowance.StringFixed(2))
	fmt.Printf("Total income:     %s\n", m.TotalIncome.StringFixed(2))
	fmt.Printf("Total expense:    %s\n", m.TotalExpense.StringFixed(2))
	fmt.Printf("Net available:    %s\n", m.NetAvailable.StringFixed(2))
	fmt.Printf("Remaining budget: %s\n", m.RemainingBudget.StringFixed(2))

	byCategory := metrics.ByCategory(doc.Transactions)
	if len(byCategory) == 0 {
		return
	}

	fmt.Println("\nExpenses by category:")
	for _, category := range doc.Categories {
		if total, ok := byCategory[category]; ok {
			fmt.Printf("  %-20s %s\n", category, total.StringFixed(2))
		}
	}
	// Categories deleted after their transactions were recorded still show up
	for category, total := range byCategory {
		if !doc.HasCategory(category) {
			fmt.Printf("  %-20s %s\n", category, total.StringFixed(2))
		}
	}
}
