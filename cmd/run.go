package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/session"
)

// runApp loads the bank, opens the journal, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	bankPath, b, err := loadBank(cmd)
	if err != nil {
		return err
	}

	journal := openJournal(cmd)
	if journal != nil {
		defer journal.Close()
	}

	return app.Run(app.Options{
		BankPath: bankPath,
		Session:  session.New(b),
		Journal:  journal,
	})
}
