// Package budget shows or updates the monthly allowance
package budget

import (
	"fmt"

	"allowance/cmd/root"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var setAmount string

// Cmd represents the budget command
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Show or set the monthly allowance",
	Long:  `Show the monthly allowance, or set it with --set. The allowance carries forward into new months.`,
	Run:   budgetFunc,
}

func budgetFunc(cmd *cobra.Command, args []string) {
	doc := root.Ledger.Document()

	if setAmount == "" {
		fmt.Printf("Monthly allowance for %s: %s\n", doc.CurrentMonth, doc.MonthlyAllowance.StringFixed(2))
		return
	}

	value, err := decimal.NewFromString(setAmount)
	if err != nil {
		root.Log.Fatalf("Invalid amount: %v", err)
	}
	if err := root.Ledger.SetAllowance(value); err != nil {
		root.Log.Fatalf("Could not set allowance: %v", err)
	}
	root.Log.Infof("Monthly allowance set to %s", value.StringFixed(2))
}

func init() {
	Cmd.Flags().StringVarP(&setAmount, "set", "s", "", "New monthly allowance amount")
}
