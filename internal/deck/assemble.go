package deck

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizdeck/internal/bank"
)

// Options configures one assembly pass.
type Options struct {
	// CategoryFilter keeps only categories whose name contains this
	// substring, case-insensitively. Empty keeps everything.
	CategoryFilter string

	// Format selects the instruction content and game-board slides.
	Format Format
}

// Board constants. Point values and team count are fixed content, not
// derived from the bank.
var boardPoints = []int{100, 200, 300, 400, 500}

const (
	maxBoardCategories = 5
	scoreTeams         = 4
)

// Assemble maps a bank snapshot to the ordered slide sequence:
// title, instructions, [board + score tracker], then per category a
// divider followed by each question's per-type slides, and finally the
// two fixed summary slides.
func Assemble(b *bank.Bank, opts Options) []Slide {
	var slides []Slide

	subtitle := "Psychiatry Residency Board Review"
	if updated, ok := b.Metadata["last_updated"].(string); ok && updated != "" {
		subtitle += "\n" + updated
	}
	slides = append(slides, titleSlide(b.Title(), subtitle))
	slides = append(slides, instructionsSlide(opts.Format))

	categories := b.FilterCategories(opts.CategoryFilter)

	if opts.Format.gameBoard() {
		names := make([]string, 0, maxBoardCategories)
		for _, c := range categories {
			if len(names) == maxBoardCategories {
				break
			}
			names = append(names, c.Name)
		}
		slides = append(slides, boardSlide(b.Title(), names), scoreTrackerSlide())
	}

	num := 0
	for _, cat := range categories {
		slides = append(slides, dividerSlide(cat.Name))
		for _, q := range cat.Questions {
			num++
			slides = append(slides, builderFor(q.Type).Build(q, num)...)
		}
	}

	slides = append(slides,
		factsSlide(highYieldFacts[:factsPerSlide], "High-Yield Board Facts — Part 1"),
		factsSlide(highYieldFacts[factsPerSlide:], "High-Yield Board Facts — Part 2"),
	)

	return slides
}

func titleSlide(title, subtitle string) Slide {
	w, h := CanvasWidth, CanvasHeight
	s := Slide{Role: RoleTitle, Title: title, Background: Navy}
	s.Shapes = append(s.Shapes,
		box(0, 0, w, Inches(0.12), Gold),
		text(title, Inches(0.6), Inches(1.8), w-Inches(1.2), Inches(1.8), 40, true, White, AlignCenter),
		text(subtitle, Inches(0.6), Inches(3.8), w-Inches(1.2), Inches(1.2), 24, false, Gold, AlignCenter),
		box(0, h-Inches(0.12), w, Inches(0.12), Gold),
	)
	return s
}

func instructionsSlide(f Format) Slide {
	w := CanvasWidth
	set := instructionsFor(f)

	s := Slide{Role: RoleInstructions, Title: set.title, Background: LightGrey}
	s.Shapes = append(s.Shapes,
		box(0, 0, w, Inches(1.1), Navy),
		text(set.title, Inches(0.4), Inches(0.15), w-Inches(0.8), Inches(0.8), 28, true, White, AlignLeft),
	)
	for i, bullet := range set.bullets {
		s.Shapes = append(s.Shapes,
			text("▸  "+bullet,
				Inches(0.7), Inches(1.4)+EMU(i)*Inches(0.85), w-Inches(1.2), Inches(0.75), 18, false, Navy, AlignLeft),
		)
	}
	return s
}

func dividerSlide(name string) Slide {
	w, h := CanvasWidth, CanvasHeight
	s := Slide{Role: RoleDivider, Title: name, Background: Navy}
	s.Shapes = append(s.Shapes,
		box(Inches(0.5), h/2-Inches(0.06), w-Inches(1.0), Inches(0.06), Gold),
		text(name, Inches(0.5), h/2-Inches(1.0), w-Inches(1.0), Inches(0.9), 34, true, White, AlignCenter),
	)
	return s
}

// boardSlide lays out category columns against the fixed point rows.
// At most maxBoardCategories columns are drawn.
func boardSlide(title string, categories []string) Slide {
	w, h := CanvasWidth, CanvasHeight
	s := Slide{Role: RoleBoard, Title: "Game Board", Background: Navy}
	s.Shapes = append(s.Shapes,
		text(strings.ToUpper(title)+"  LIGHTNING ROUND",
			Inches(0.3), Inches(0.05), w-Inches(0.6), Inches(0.65), 30, true, Gold, AlignCenter),
	)

	n := len(categories)
	if n == 0 {
		return s
	}
	colW := (w - Inches(0.4)) / EMU(n)
	rowH := (h - Inches(0.85)) / EMU(len(boardPoints)+1)

	for ci, name := range categories {
		x := Inches(0.2) + EMU(ci)*colW
		s.Shapes = append(s.Shapes,
			box(x+Inches(0.05), Inches(0.75), colW-Inches(0.1), rowH-Inches(0.08), Gold),
			text(name, x+Inches(0.08), Inches(0.78), colW-Inches(0.16), rowH-Inches(0.14), 13, true, Navy, AlignCenter),
		)
	}
	for ri, pts := range boardPoints {
		y := Inches(0.75) + EMU(ri+1)*rowH
		for ci := range categories {
			x := Inches(0.2) + EMU(ci)*colW
			s.Shapes = append(s.Shapes,
				box(x+Inches(0.05), y+Inches(0.04), colW-Inches(0.1), rowH-Inches(0.12), Gold),
				text(fmt.Sprintf("$%d", pts),
					x+Inches(0.08), y+Inches(0.07), colW-Inches(0.16), rowH-Inches(0.18), 22, true, Navy, AlignCenter),
			)
		}
	}
	return s
}

func scoreTrackerSlide() Slide {
	w, h := CanvasWidth, CanvasHeight
	s := Slide{Role: RoleScoreboard, Title: "Score Tracker", Background: Navy}
	s.Shapes = append(s.Shapes,
		text("SCORE TRACKER", Inches(0.3), Inches(0.1), w-Inches(0.6), Inches(0.7), 34, true, Gold, AlignCenter),
	)

	colW := (w - Inches(0.6)) / EMU(scoreTeams)
	for i := 0; i < scoreTeams; i++ {
		x := Inches(0.3) + EMU(i)*colW
		s.Shapes = append(s.Shapes,
			box(x+Inches(0.1), Inches(0.95), colW-Inches(0.2), Inches(0.65), Gold),
			text(fmt.Sprintf("Team %d", i+1),
				x+Inches(0.12), Inches(1.0), colW-Inches(0.24), Inches(0.55), 20, true, Navy, AlignCenter),
			box(x+Inches(0.1), Inches(1.65), colW-Inches(0.2), h-Inches(2.2), ScoreCell),
			text("0", x+Inches(0.12), Inches(1.9), colW-Inches(0.24), Inches(1.2), 48, true, Gold, AlignCenter),
		)
	}
	return s
}

func factsSlide(facts []string, title string) Slide {
	w := CanvasWidth
	s := Slide{Role: RoleFacts, Title: title, Background: LightGrey}
	s.Shapes = append(s.Shapes,
		box(0, 0, w, Inches(1.05), Navy),
		text(title, Inches(0.3), Inches(0.1), w-Inches(0.6), Inches(0.8), 28, true, White, AlignCenter),
	)
	if len(facts) > factsPerSlide {
		facts = facts[:factsPerSlide]
	}
	for i, fact := range facts {
		s.Shapes = append(s.Shapes,
			text("★  "+fact,
				Inches(0.5), Inches(1.2)+EMU(i)*Inches(0.72), w-Inches(1.0), Inches(0.65), 16, false, Navy, AlignLeft),
		)
	}
	return s
}
