package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/history"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Quiz bank curation and PowerPoint deck generation",
	Long:  "Quizdeck — terminal tool for curating board-review question banks and rendering them into PowerPoint quiz decks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "quiz_bank.json", "Path to the quiz bank JSON file")
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite journal (overrides QUIZDECK_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadBank reads the bank file named by the --bank flag.
func loadBank(cmd *cobra.Command) (string, *bank.Bank, error) {
	path, _ := cmd.Flags().GetString("bank")
	b, err := bank.Load(path)
	if err != nil {
		return path, nil, fmt.Errorf("load bank: %w", err)
	}
	return path, b, nil
}

// resolveDBPath returns the journal path using --db flag (highest
// priority), then QUIZDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	return history.DefaultDBPath()
}

// openJournal opens the build journal. Failures are reported but not
// fatal; callers get a nil store and keep working without history.
func openJournal(cmd *cobra.Command) *history.Store {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: journal unavailable:", err)
		return nil
	}
	st, err := history.Open(dbPath)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: journal unavailable:", err)
		return nil
	}
	return st
}
