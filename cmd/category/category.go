// Package category manages the spending category list
package category

import (
	"fmt"

	"allowance/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the category command
var Cmd = &cobra.Command{
	Use:   "category",
	Short: "Manage spending categories",
	Long: `List, add and remove spending categories. Removing a category never
touches existing transactions; they keep the old label.`,
	Run: listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <name>...",
	Short: "Add one or more categories",
	Args:  cobra.MinimumNArgs(1),
	Run:   addFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>...",
	Short: "Remove one or more categories",
	Args:  cobra.MinimumNArgs(1),
	Run:   removeFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Run:   listFunc,
}

func listFunc(cmd *cobra.Command, args []string) {
	for _, c := range root.Ledger.Document().Categories {
		fmt.Println(c)
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	for _, name := range args {
		if err := root.Ledger.AddCategory(name); err != nil {
			root.Log.Fatalf("Could not add category: %v", err)
		}
	}
}

func removeFunc(cmd *cobra.Command, args []string) {
	if err := root.Ledger.RemoveCategories(args); err != nil {
		root.Log.Fatalf("Could not remove categories: %v", err)
	}
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(listCmd)
}
