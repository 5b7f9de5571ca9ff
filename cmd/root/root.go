// Package root contains the root command for the application
package root

import (
	"allowance/internal/config"
	"allowance/internal/export"
	"allowance/internal/fileutils"
	"allowance/internal/ledger"
	"allowance/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the resolved application configuration
	Cfg *config.Config

	// Ledger is the open ledger, loaded and rolled over before any command runs
	Ledger *ledger.Ledger

	// DataFile overrides the configured document path when set via flag
	DataFile string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "allowance",
		Short: "Track monthly spending against a fixed allowance.",
		Long: `allowance is a CLI tool that records transactions against a monthly
allowance, derives budget metrics, and archives each month's ledger
automatically at month boundaries.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to allowance!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			// Hand the configured logger to every package that logs
			store.SetLogger(Log)
			ledger.SetLogger(Log)
			export.SetLogger(Log)
			fileutils.SetLogger(Log)

			if delim := Cfg.CSV.Delimiter; delim != "" {
				export.SetDelimiter([]rune(delim)[0])
			}

			dataFile := Cfg.Data.File
			if DataFile != "" {
				dataFile = DataFile
			}

			// Loading is followed by the eager rollover check, so every
			// command sees a document whose month key matches today.
			Ledger, err = ledger.Open(store.New(dataFile, Cfg.Categories.Seed))
			if err != nil {
				Log.Fatalf("Failed to open ledger: %v", err)
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataFile, "data", "d", "", "Path to the data file (overrides configuration)")
}
