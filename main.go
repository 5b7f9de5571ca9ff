// Package main provides the entry point for the allowance CLI application.
package main

import (
	"fmt"
	"os"

	"allowance/cmd/add"
	"allowance/cmd/archive"
	"allowance/cmd/budget"
	"allowance/cmd/category"
	"allowance/cmd/dashboard"
	"allowance/cmd/delete"
	"allowance/cmd/export"
	"allowance/cmd/insights"
	"allowance/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(dashboard.Cmd)
	root.Cmd.AddCommand(insights.Cmd)
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(delete.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(archive.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
