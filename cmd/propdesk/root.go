// Root command for the propdesk CLI.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/propdesk/propdesk/internal/logging"
	"github.com/propdesk/propdesk/internal/paths"
	"github.com/propdesk/propdesk/internal/sqlite"
	"github.com/propdesk/propdesk/pkg/types"
)

const appVersion = "0.1.0"

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Shared state initialized by PersistentPreRunE and torn down by
// PersistentPostRunE. The CLI is the composition root: it owns the store
// lifecycle, and every subcommand runs between open and close.
var (
	log          *logrus.Logger
	store        *sqlite.Store
	storeDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "propdesk",
	Short: "Propdesk manages real-estate property records",
	Long: `Propdesk is a single-user manager for real-estate property records.

Records live in an embedded SQLite database. The list command provides a
filtered, sorted, paginated view over the full record set.`,
	Version:            appVersion,
	SilenceUsage:       true,
	PersistentPreRunE:  openStore,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return closeStore() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore resolves directories, loads config.yaml, and opens the record
// store for the duration of one command.
func openStore(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return err
	}

	log = logging.New("propdesk", nil)

	s, err := sqlite.Open(types.Config{DataDir: dataDir}, log)
	if err != nil {
		return err
	}
	store = s
	storeDataDir = dataDir
	return nil
}

// closeStore releases the record store. Safe to call when openStore failed.
func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}
