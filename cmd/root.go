package cmd

import (
	"github.com/spf13/cobra"

	"github.com/futurelink/pathfinder/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "AI career discovery quiz for Thai students",
	Long:  "Pathfinder is a terminal quiz that helps Thai students discover career paths through an AI-analyzed personality quiz.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite DSN for the event log (overrides PATHFINDER_DB env var; default in-memory)")

	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDSN returns the event log DSN using the --db flag (highest
// priority), then PATHFINDER_DB, then in-memory.
func resolveDSN(cmd *cobra.Command) string {
	if dsn, _ := cmd.Flags().GetString("db"); dsn != "" {
		return dsn
	}
	return store.DefaultDSN()
}
