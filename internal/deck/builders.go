package deck

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizdeck/internal/bank"
)

// questionBuilder renders the per-type slide sequence for one question.
// The set of builders is closed: one per known question type, with
// multiple choice doubling as the fallback for unrecognized types.
type questionBuilder interface {
	Build(q bank.Question, num int) []Slide
}

var builders = map[bank.QuestionType]questionBuilder{
	bank.TypeMultipleChoice: multipleChoiceBuilder{},
	bank.TypeTrueFalse:      trueFalseBuilder{},
	bank.TypeCaseVignette:   caseVignetteBuilder{},
}

// builderFor returns the builder for t. Unrecognized types fall back to
// the multiple-choice sequence; that is policy, not an error.
func builderFor(t bank.QuestionType) questionBuilder {
	if b, ok := builders[t]; ok {
		return b
	}
	return multipleChoiceBuilder{}
}

var choiceRows = []EMU{Inches(2.9), Inches(3.75), Inches(4.6), Inches(5.45)}

// orderedChoices returns the question's choices in fixed A-D label order,
// skipping absent labels.
func orderedChoices(q bank.Question) []struct{ Label, Text string } {
	var out []struct{ Label, Text string }
	for _, label := range bank.ChoiceLabels {
		if t, ok := q.Choices[label]; ok {
			out = append(out, struct{ Label, Text string }{label, t})
		}
	}
	return out
}

func headerBar(s *Slide, fill Color, label string, labelColor Color, bold bool) {
	w := CanvasWidth
	s.Shapes = append(s.Shapes,
		box(0, 0, w, Inches(1.05), fill),
		text(label, Inches(0.3), Inches(0.1), w-Inches(0.6), Inches(0.45), 14, bold, labelColor, AlignLeft),
	)
}

type multipleChoiceBuilder struct{}

func (multipleChoiceBuilder) Build(q bank.Question, num int) []Slide {
	w, h := CanvasWidth, CanvasHeight
	choices := orderedChoices(q)

	question := Slide{Role: RoleQuestion, Title: q.Text, Background: LightGrey}
	headerBar(&question, Navy, fmt.Sprintf("Q%d  |  %s", num, q.BoardTopic), Gold, false)
	question.Shapes = append(question.Shapes,
		text("Difficulty: "+strings.ToUpper(string(q.Difficulty)),
			w-Inches(2.0), Inches(0.1), Inches(1.8), Inches(0.45), 13, false, LightGrey, AlignRight),
		text(q.Text, Inches(0.4), Inches(1.15), w-Inches(0.8), Inches(1.6), 20, true, Navy, AlignLeft),
	)
	for i, c := range choices {
		if i >= len(choiceRows) {
			break
		}
		y := choiceRows[i]
		question.Shapes = append(question.Shapes,
			box(Inches(0.4), y, w-Inches(0.8), Inches(0.75), SteelBlue),
			text(fmt.Sprintf("%s.  %s", c.Label, c.Text),
				Inches(0.55), y+Inches(0.08), w-Inches(1.1), Inches(0.6), 17, false, White, AlignLeft),
		)
	}
	question.Shapes = append(question.Shapes,
		text("Discuss with your team, then advance to reveal the answer.",
			Inches(0.4), h-Inches(0.55), w-Inches(0.8), Inches(0.45), 13, false, Navy, AlignCenter),
	)

	reveal := Slide{Role: RoleReveal, Title: q.Text, Background: LightGrey}
	headerBar(&reveal, Green, fmt.Sprintf("Q%d  ANSWER REVEAL  |  %s", num, q.BoardTopic), White, true)
	reveal.Shapes = append(reveal.Shapes,
		text(q.Text, Inches(0.4), Inches(1.15), w-Inches(0.8), Inches(1.1), 16, false, Navy, AlignLeft),
	)
	for i, c := range choices {
		if i >= len(choiceRows) {
			break
		}
		y := choiceRows[i]
		fill, marker, bold := MutedGrey, " ", false
		if c.Label == q.Answer {
			fill, marker, bold = Green, "✓", true
		}
		reveal.Shapes = append(reveal.Shapes,
			box(Inches(0.4), y, w-Inches(0.8), Inches(0.72), fill),
			text(fmt.Sprintf("%s %s.  %s", marker, c.Label, c.Text),
				Inches(0.52), y+Inches(0.06), w-Inches(1.1), Inches(0.6), 17, bold, White, AlignLeft),
		)
	}
	reveal.Shapes = append(reveal.Shapes,
		box(Inches(0.35), h-Inches(1.85), w-Inches(0.7), Inches(1.65), Navy),
		text(q.Explanation, Inches(0.5), h-Inches(1.8), w-Inches(1.0), Inches(1.55), 14, false, White, AlignLeft),
	)

	return []Slide{question, reveal}
}

type trueFalseBuilder struct{}

func (trueFalseBuilder) Build(q bank.Question, num int) []Slide {
	w, h := CanvasWidth, CanvasHeight

	question := Slide{Role: RoleQuestion, Title: q.Text, Background: LightGrey}
	headerBar(&question, Navy, fmt.Sprintf("Q%d  |  True or False?  |  %s", num, q.BoardTopic), Gold, false)
	question.Shapes = append(question.Shapes,
		text(q.Text, Inches(0.4), Inches(1.2), w-Inches(0.8), Inches(2.0), 22, true, Navy, AlignLeft),
		box(Inches(0.8), Inches(3.5), Inches(3.6), Inches(1.1), Green),
		text("TRUE", Inches(0.8), Inches(3.6), Inches(3.6), Inches(0.9), 32, true, White, AlignCenter),
		box(Inches(5.5), Inches(3.5), Inches(3.6), Inches(1.1), Red),
		text("FALSE", Inches(5.5), Inches(3.6), Inches(3.6), Inches(0.9), 32, true, White, AlignCenter),
		text("Vote now, then advance to the answer.",
			Inches(0.4), h-Inches(0.55), w-Inches(0.8), Inches(0.45), 13, false, Navy, AlignCenter),
	)

	isTrue := strings.EqualFold(strings.TrimSpace(q.Answer), "true")
	headerColor, answerText := Red, "✗  FALSE"
	if isTrue {
		headerColor, answerText = Green, "✓  TRUE"
	}

	reveal := Slide{Role: RoleReveal, Title: q.Text, Background: LightGrey}
	headerBar(&reveal, headerColor, fmt.Sprintf("Q%d  ANSWER REVEAL  |  %s", num, q.BoardTopic), White, true)
	reveal.Shapes = append(reveal.Shapes,
		text(q.Text, Inches(0.4), Inches(1.2), w-Inches(0.8), Inches(1.5), 18, false, Navy, AlignLeft),
		text(answerText, Inches(0.4), Inches(2.85), w-Inches(0.8), Inches(0.75), 36, true, headerColor, AlignCenter),
		box(Inches(0.35), h-Inches(2.1), w-Inches(0.7), Inches(1.9), Navy),
		text(q.Explanation, Inches(0.5), h-Inches(2.05), w-Inches(1.0), Inches(1.8), 14, false, White, AlignLeft),
	)

	return []Slide{question, reveal}
}

type caseVignetteBuilder struct{}

// Build emits the clinical stem first, then reuses the multiple-choice
// pair for the question and reveal.
func (caseVignetteBuilder) Build(q bank.Question, num int) []Slide {
	w, h := CanvasWidth, CanvasHeight

	stem := Slide{Role: RoleStem, Title: q.BoardTopic, Background: LightGrey}
	headerBar(&stem, Navy, fmt.Sprintf("CASE VIGNETTE  Q%d  |  %s", num, q.BoardTopic), Gold, true)
	stem.Shapes = append(stem.Shapes,
		box(Inches(0.3), Inches(1.15), w-Inches(0.6), h-Inches(1.75), Navy),
		text(q.ClinicalStem, Inches(0.5), Inches(1.25), w-Inches(1.0), h-Inches(2.0), 17, false, White, AlignLeft),
		text("Read the case, then advance to the question.",
			Inches(0.4), h-Inches(0.5), w-Inches(0.8), Inches(0.4), 13, false, Navy, AlignCenter),
	)

	return append([]Slide{stem}, multipleChoiceBuilder{}.Build(q, num)...)
}
