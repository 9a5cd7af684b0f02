package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/neutrino09/intervu/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "intervu",
	Short: "Mock interview practice in your terminal",
	Long:  "intervu is an adaptive AI mock interviewer. Answer questions, get scored, get coached.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// Local .env files are a convenience for API keys; missing is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INTERVU_DB env var)")
	rootCmd.PersistentFlags().String("topic", "excel", "Interview topic")
	rootCmd.PersistentFlags().String("questions", "", "Path to a custom question bank JSON file")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then INTERVU_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
