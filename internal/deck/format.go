package deck

import "fmt"

// Format selects the presentation interaction style.
type Format string

const (
	FormatStandard  Format = "standard"
	FormatLightning Format = "lightning_round"
	FormatAudience  Format = "audience_response"
)

// ParseFormat resolves a user-supplied format name. "jeopardy" is the
// legacy alias for the lightning round.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "standard", "":
		return FormatStandard, nil
	case "lightning_round", "jeopardy":
		return FormatLightning, nil
	case "audience_response":
		return FormatAudience, nil
	}
	return "", fmt.Errorf("unknown format %q: must be standard, lightning_round, or audience_response", s)
}

// gameBoard reports whether this format opens with a game board and
// score tracker.
func (f Format) gameBoard() bool {
	return f == FormatLightning
}

type instructionSet struct {
	title   string
	bullets []string
}

var instructions = map[Format]instructionSet{
	FormatStandard: {
		title: "How to Use These Slides",
		bullets: []string{
			"Each question slide shows the stem and answer choices.",
			"Allow the audience to discuss or vote before clicking to advance.",
			"The NEXT slide reveals the correct answer with explanation.",
			"Tip: Use Presenter View to see notes while presenting.",
		},
	},
	FormatLightning: {
		title: "Lightning Round Instructions",
		bullets: []string{
			"Categories are shown on the game board slide.",
			"Teams take turns choosing a category and point value.",
			"Presenter advances to the question, team answers, then advance to reveal.",
			"Keep score on a whiteboard or use the score tracker slide.",
		},
	},
	FormatAudience: {
		title: "Audience Response System Instructions",
		bullets: []string{
			"Use Poll Everywhere, Mentimeter, or a similar tool for live voting.",
			"QR codes or URLs can be embedded in each question slide.",
			"Display results before revealing the correct answer for discussion.",
			"Export poll results to track resident performance over time.",
		},
	},
}

// instructionsFor falls back to the standard bullets for any format
// without its own set.
func instructionsFor(f Format) instructionSet {
	if set, ok := instructions[f]; ok {
		return set
	}
	return instructions[FormatStandard]
}
