package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/bank"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <incoming.json>",
	Short: "Merge another bank file into the bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, base, err := loadBank(cmd)
		if err != nil {
			return err
		}

		incoming, err := bank.Load(args[0])
		if err != nil {
			return fmt.Errorf("load incoming bank: %w", err)
		}

		overwrite, _ := cmd.Flags().GetBool("overwrite")
		added, updated := base.Merge(incoming, overwrite)

		if err := base.Validate(); err != nil {
			return fmt.Errorf("merged bank invalid: %w", err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = path
		}
		if err := base.Save(out); err != nil {
			return fmt.Errorf("save merged bank: %w", err)
		}

		fmt.Printf("Merged into %s: %d added, %d updated\n", out, added, updated)
		return nil
	},
}

func init() {
	mergeCmd.Flags().Bool("overwrite", false, "Replace existing questions when IDs collide")
	mergeCmd.Flags().String("out", "", "Write the merged bank here instead of over the base bank")
}
