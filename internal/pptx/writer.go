// Package pptx serializes assembled slide decks to PowerPoint files.
// A .pptx is a zip of OOXML parts; the writer emits a minimal but
// well-formed package with one slide part per deck slide, and can
// splice generated slides into an existing presentation.
package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abhisek/quizdeck/internal/deck"
)

type part struct {
	name string
	body string
}

// Write serializes slides as a complete .pptx package.
func Write(w io.Writer, slides []deck.Slide) error {
	zw := zip.NewWriter(w)
	for _, p := range packageParts(slides) {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("create part %s: %w", p.name, err)
		}
		if _, err := io.WriteString(f, p.body); err != nil {
			return fmt.Errorf("write part %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize package: %w", err)
	}
	return nil
}

// WriteFile writes slides to path in a single pass and returns the
// slide count. A failed write leaves whatever partial file the OS
// flushed; callers treat any error as a discard-and-retry.
func WriteFile(path string, slides []deck.Slide) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	if err := Write(f, slides); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close output: %w", err)
	}
	return len(slides), nil
}

func packageParts(slides []deck.Slide) []part {
	title := "Quiz Deck"
	if len(slides) > 0 && slides[0].Title != "" {
		title = slides[0].Title
	}

	parts := []part{
		{"[Content_Types].xml", contentTypesXML(len(slides))},
		{"_rels/.rels", rootRelsXML},
		{"docProps/core.xml", corePropsXML(title, time.Now())},
		{"docProps/app.xml", appPropsXML(len(slides))},
		{"ppt/presentation.xml", presentationXML(len(slides), int64(deck.CanvasWidth), int64(deck.CanvasHeight))},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(len(slides))},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
	}
	for i, s := range slides {
		n := i + 1
		parts = append(parts,
			part{fmt.Sprintf("ppt/slides/slide%d.xml", n), slideXML(s)},
			part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRelsXML("../slideLayouts/slideLayout1.xml")},
		)
	}
	return parts
}
