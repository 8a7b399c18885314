package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a bank file against the schema and question rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, b, err := loadBank(cmd)
		if err != nil {
			return err
		}
		if err := b.Validate(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Printf("%s: OK (%d categories, %d questions)\n",
			path, len(b.Categories), b.QuestionCount())
		return nil
	},
}
