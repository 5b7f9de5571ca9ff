// Package insights shows per-day spending figures for the month in progress
package insights

import (
	"fmt"
	"time"

	"allowance/cmd/root"
	"allowance/internal/metrics"

	"github.com/spf13/cobra"
)

// Cmd represents the insights command
var Cmd = &cobra.Command{
	Use:   "insights",
	Short: "Show per-day spending insights for the active month",
	Long:  `Show the average daily spend so far, the days remaining in the month, and the safe amount to spend per remaining day.`,
	Run:   insightsFunc,
}

func insightsFunc(cmd *cobra.Command, args []string) {
	doc := root.Ledger.Document()
	m := metrics.Compute(doc.Transactions, doc.MonthlyAllowance)
	insights := metrics.ComputeInsights(m, time.Now())

	fmt.Printf("Average daily spent: %s\n", insights.AvgDailySpent.StringFixed(2))
	fmt.Printf("Remaining days:      %d\n", insights.RemainingDays)
	fmt.Printf("Safe daily spend:    %s\n", insights.SafeDailySpend.StringFixed(2))
}
