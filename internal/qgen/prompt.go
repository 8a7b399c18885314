package qgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an experienced psychiatry educator writing board-review questions for psychiatry residents.

Rules:
- Write a single question for the given category, topic, type, and difficulty.
- Follow board exam item-writing conventions: clear stems, homogeneous options, no "all of the above".
- multiple_choice and case_vignette questions need exactly four options labeled A through D, with exactly one correct. Distractors should be plausible and reflect common reasoning errors.
- case_vignette questions open with a realistic clinical presentation in the clinical_stem field: age, sex, presenting signs, relevant labs. Keep the stem under 120 words.
- true_false questions state a single testable claim; the answer is the literal "true" or "false" and choices stays empty.
- The explanation is the teaching point: why the answer is correct and why the distractors are wrong, citing DSM-5 criteria or first-line treatments where relevant.
- Match the requested difficulty: easy tests recall, medium tests application, hard tests multi-step clinical reasoning.
- Do not repeat or trivially rephrase any question from the "already in the bank" list.`

// buildUserMessage constructs the user message from DraftInput and
// Config limits.
func buildUserMessage(input DraftInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Category: %s\n", input.Category)
	fmt.Fprintf(&b, "Board topic: %s\n", input.BoardTopic)
	fmt.Fprintf(&b, "Question type: %s\n", input.Type)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)

	b.WriteString("\nAlready in the bank for this category:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats existing stems for the prompt, respecting the max
// limit. Returns "None" if the category is empty.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
