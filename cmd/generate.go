package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/deck"
	"github.com/abhisek/quizdeck/internal/history"
	"github.com/abhisek/quizdeck/internal/pptx"
	"github.com/abhisek/quizdeck/internal/session"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the bank into a PowerPoint deck without the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, b, err := loadBank(cmd)
		if err != nil {
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		format, err := deck.ParseFormat(formatName)
		if err != nil {
			return err
		}

		positionName, _ := cmd.Flags().GetString("position")
		position, err := pptx.ParsePosition(positionName)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if !strings.HasSuffix(output, ".pptx") {
			output += ".pptx"
		}

		category, _ := cmd.Flags().GetString("category")
		selectIDs, _ := cmd.Flags().GetString("select")
		random, _ := cmd.Flags().GetInt("random")
		first, _ := cmd.Flags().GetInt("first")

		sess := session.New(b)
		switch {
		case selectIDs != "":
			for _, id := range strings.Split(selectIDs, ",") {
				id = strings.TrimSpace(id)
				if id == "" {
					continue
				}
				sess.Select(id)
				if !sess.IsSelected(id) {
					return fmt.Errorf("unknown question ID %q", id)
				}
			}
		case random > 0:
			sess.SelectRandom(random, session.Filter{})
		case first > 0:
			sess.SelectFirst(first, session.Filter{})
		default:
			sess.SelectAll(session.Filter{})
		}

		subset, err := sess.SubsetForRender()
		if err != nil {
			return err
		}

		slides := deck.Assemble(subset, deck.Options{
			CategoryFilter: category,
			Format:         format,
		})
		if len(slides) == 0 {
			return fmt.Errorf("nothing to render")
		}

		template, _ := cmd.Flags().GetString("template")

		var slideCount int
		if template != "" {
			data, total, err := pptx.Splice(template, slides, position)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			slideCount = total
		} else {
			slideCount, err = pptx.WriteFile(output, slides)
			if err != nil {
				return err
			}
		}

		if journal := openJournal(cmd); journal != nil {
			defer journal.Close()
			ev := history.DeckEvent{
				Format:         string(format),
				CategoryFilter: category,
				Output:         output,
				SlideCount:     slideCount,
				QuestionCount:  subset.QuestionCount(),
				Template:       template,
				Position:       string(position),
			}
			if err := journal.AppendDeckEvent(context.Background(), ev); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: failed to journal build:", err)
			}
		}

		fmt.Printf("Wrote %s (%d slides, %d questions)\n",
			output, slideCount, subset.QuestionCount())
		return nil
	},
}

func init() {
	generateCmd.Flags().String("category", "", "Only include categories containing this substring")
	generateCmd.Flags().String("format", "standard", "Deck format: standard, lightning_round, or audience_response")
	generateCmd.Flags().String("output", "quiz_deck.pptx", "Output .pptx path")
	generateCmd.Flags().String("template", "", "Existing .pptx to splice generated slides into")
	generateCmd.Flags().String("position", "end", "Where spliced slides go: start or end")
	generateCmd.Flags().String("select", "", "Comma-separated question IDs to include")
	generateCmd.Flags().Int("random", 0, "Select a random sample of N questions")
	generateCmd.Flags().Int("first", 0, "Select the first N questions in bank order")
}
