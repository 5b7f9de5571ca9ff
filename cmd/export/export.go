// Package export writes ledger data to CSV and YAML files
package export

import (
	"allowance/cmd/root"
	"allowance/internal/export"

	"github.com/spf13/cobra"
)

var (
	output        string
	month         string
	summaryOutput string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to CSV",
	Long:  `Export the active month's transactions to CSV, or an archived month's with --month.`,
	Run:   exportFunc,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Write a per-month YAML summary report",
	Long:  `Write a YAML report with allowance, income, expense and net totals for every month on record.`,
	Run:   summaryFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	doc := root.Ledger.Document()

	transactions := doc.Transactions
	if month != "" {
		archived, ok := doc.Archives[month]
		if !ok {
			root.Log.Fatalf("No archive for month %s", month)
		}
		transactions = archived.Transactions
	}

	if err := export.WriteTransactionsCSV(transactions, output); err != nil {
		root.Log.Fatalf("Export failed: %v", err)
	}
	root.Log.Infof("Exported %d transaction(s) to %s", len(transactions), output)
}

func summaryFunc(cmd *cobra.Command, args []string) {
	if err := export.WriteSummaryYAML(root.Ledger.Document(), summaryOutput); err != nil {
		root.Log.Fatalf("Summary export failed: %v", err)
	}
	root.Log.Infof("Wrote summary to %s", summaryOutput)
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "transactions.csv", "Output CSV file")
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Archived month key (defaults to the active month)")

	summaryCmd.Flags().StringVarP(&summaryOutput, "output", "o", "summary.yaml", "Output YAML file")
	Cmd.AddCommand(summaryCmd)
}
