package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/history"
	"github.com/abhisek/quizdeck/internal/llm"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show deck build and LLM usage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve journal path: %w", err)
		}

		st, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer st.Close()

		sum, err := st.Summarize(context.Background())
		if err != nil {
			return fmt.Errorf("summarize journal: %w", err)
		}

		if sum.Decks == 0 && sum.LLMRequests == 0 {
			fmt.Println("No activity recorded yet.")
			return nil
		}

		fmt.Println("Deck Builds")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%-20s  %d\n", "Decks built", sum.Decks)
		fmt.Printf("%-20s  %d\n", "Slides written", sum.Slides)
		fmt.Printf("%-20s  %d\n", "Questions rendered", sum.Questions)
		if !sum.LastDeck.IsZero() {
			fmt.Printf("%-20s  %s\n", "Last build", sum.LastDeck.Local().Format("Jan 02, 2006 15:04"))
		}

		if sum.LLMRequests > 0 {
			fmt.Println()
			fmt.Println("LLM Usage")
			fmt.Println(strings.Repeat("─", 60))
			fmt.Printf("%-20s  %d\n", "Requests", sum.LLMRequests)
			fmt.Printf("%-20s  %d\n", "Failures", sum.LLMFailures)
			fmt.Printf("%-20s  %d\n", "Input tokens", sum.InputTokens)
			fmt.Printf("%-20s  %d\n", "Output tokens", sum.OutputTokens)

			fmt.Println()
			fmt.Println("Estimated Cost (USD)")
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n",
				"Model", "Calls", "Input", "Output", "Cost")
			fmt.Println(strings.Repeat("─", 72))

			var totalCost float64
			var unknownModels []string
			for _, mu := range sum.ByModel {
				cost := llm.LookupCost(mu.Model)
				if cost == nil {
					unknownModels = append(unknownModels, mu.Model)
					fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
						truncateModel(mu.Model, 32), mu.Requests, mu.InputTokens, mu.OutputTokens, "?")
					continue
				}
				c := cost.Cost(mu.InputTokens, mu.OutputTokens)
				totalCost += c
				fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n",
					truncateModel(mu.Model, 32), mu.Requests, mu.InputTokens, mu.OutputTokens, formatCost(c))
			}

			fmt.Println(strings.Repeat("─", 72))
			label := "TOTAL"
			if len(unknownModels) > 0 {
				label = "TOTAL (partial)"
			}
			fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n",
				label, "", "", "", formatCost(totalCost))

			if len(unknownModels) > 0 {
				fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
			}
		}

		return nil
	},
}

func truncateModel(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
