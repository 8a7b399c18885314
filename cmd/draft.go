package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/llm"
	"github.com/abhisek/quizdeck/internal/qgen"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft new questions with an LLM and add them to the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		path, b, err := loadBank(cmd)
		if err != nil {
			return err
		}

		category, _ := cmd.Flags().GetString("category")
		if category == "" {
			return fmt.Errorf("--category is required")
		}

		typeName, _ := cmd.Flags().GetString("type")
		qtype := bank.QuestionType(typeName)
		if typeName != "" && !qtype.Valid() {
			return fmt.Errorf("unknown question type %q", typeName)
		}

		difficultyName, _ := cmd.Flags().GetString("difficulty")
		difficulty := bank.Difficulty(difficultyName)
		if difficultyName != "" && !difficulty.Valid() {
			return fmt.Errorf("unknown difficulty %q", difficultyName)
		}

		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			return fmt.Errorf("--count must be at least 1")
		}

		journal := openJournal(cmd)
		var sink llm.EventSink
		if journal != nil {
			defer journal.Close()
			sink = journal
		}

		provider, err := llm.NewProviderFromEnv(ctx, sink)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		drafter := qgen.New(provider, qgen.DefaultConfig())
		topic, _ := cmd.Flags().GetString("topic")

		prior := make([]string, 0, b.QuestionCount()+count)
		for _, q := range b.Flatten() {
			prior = append(prior, q.Text)
		}

		drafted := 0
		for i := 0; i < count; i++ {
			q, err := drafter.Draft(ctx, qgen.DraftInput{
				Category:       category,
				BoardTopic:     topic,
				Type:           qtype,
				Difficulty:     difficulty,
				PriorQuestions: prior,
			})
			if err != nil {
				if drafted == 0 {
					return fmt.Errorf("draft question: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: draft %d failed: %v\n", i+1, err)
				continue
			}
			b.AddQuestion(category, *q)
			prior = append(prior, q.Text)
			drafted++
			fmt.Printf("  %s  %s\n", q.ID, q.Text)
		}

		if drafted == 0 {
			return fmt.Errorf("no questions drafted")
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = path
		}
		if err := b.Save(out); err != nil {
			return fmt.Errorf("save bank: %w", err)
		}

		fmt.Printf("Added %d question(s) to %s under %q\n", drafted, out, category)
		return nil
	},
}

func init() {
	draftCmd.Flags().String("category", "", "Bank category to add drafted questions to")
	draftCmd.Flags().String("topic", "", "Board exam topic to draft against")
	draftCmd.Flags().String("type", "", "Question type: multiple_choice, true_false, or case_vignette")
	draftCmd.Flags().String("difficulty", "", "Difficulty: easy, medium, or hard")
	draftCmd.Flags().Int("count", 1, "Number of questions to draft")
	draftCmd.Flags().String("out", "", "Write the updated bank here instead of in place")
}
