package pptx

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/deck"
)

// writeTemplate builds a small presentation on disk to splice into.
func writeTemplate(t *testing.T, slideCount int) string {
	t.Helper()
	slides := make([]deck.Slide, slideCount)
	for i := range slides {
		slides[i] = deck.Slide{Role: deck.RoleDivider, Title: "Template", Background: deck.White}
	}
	path := filepath.Join(t.TempDir(), "template.pptx")
	if _, err := WriteFile(path, slides); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return path
}

func spliceSlides(t *testing.T) []deck.Slide {
	t.Helper()
	b := bank.New()
	b.AddQuestion("Treatment", bank.Question{
		ID: "Q-1", Type: bank.TypeTrueFalse,
		Text: "Fluoxetine is FDA-approved for bulimia nervosa.", Answer: "true",
		Explanation: "60 mg/day.",
	})
	return deck.Assemble(b, deck.Options{Format: deck.FormatStandard})
}

func TestSpliceAtEnd(t *testing.T) {
	template := writeTemplate(t, 2)
	slides := spliceSlides(t)

	data, total, err := Splice(template, slides, PositionEnd)
	if err != nil {
		t.Fatalf("Splice: %v", err)
	}
	if want := 2 + len(slides); total != want {
		t.Errorf("total = %d, want %d", total, want)
	}

	got, err := CountSlides(bytes.NewReader(data), int64(len(data)))
	if err != nil || got != total {
		t.Errorf("CountSlides = %d, %v; want %d", got, err, total)
	}

	parts := readPackage(t, data)
	pres := parts["ppt/presentation.xml"]
	// Template rIds are rId2 and rId3; spliced entries must come after
	// the template's own in document order.
	if !strings.Contains(pres, `r:id="rId3"/><p:sldId`) {
		t.Errorf("spliced entries not appended after template slides: %s", pres)
	}
	if _, ok := parts["ppt/slides/slide3.xml"]; !ok {
		t.Error("first spliced slide part missing")
	}
}

func TestSpliceAtStart(t *testing.T) {
	template := writeTemplate(t, 2)
	slides := spliceSlides(t)

	data, total, err := Splice(template, slides, PositionStart)
	if err != nil {
		t.Fatalf("Splice: %v", err)
	}
	if want := 2 + len(slides); total != want {
		t.Errorf("total = %d, want %d", total, want)
	}

	parts := readPackage(t, data)
	pres := parts["ppt/presentation.xml"]
	idx := strings.Index(pres, "<p:sldIdLst>")
	if idx < 0 {
		t.Fatalf("no slide list: %s", pres)
	}
	// The first entry after the opening tag must be a spliced one, which
	// carries a relationship id above the template's rId3.
	head := pres[idx : idx+len("<p:sldIdLst>")+80]
	if strings.Contains(head, `r:id="rId2"`) {
		t.Errorf("template slide still first after start splice: %s", head)
	}
}

func TestSplicePreservesTemplateParts(t *testing.T) {
	template := writeTemplate(t, 1)
	data, _, err := Splice(template, spliceSlides(t), PositionEnd)
	if err != nil {
		t.Fatalf("Splice: %v", err)
	}
	parts := readPackage(t, data)
	if _, ok := parts["ppt/slides/slide1.xml"]; !ok {
		t.Error("template slide part dropped")
	}
	if _, ok := parts["ppt/theme/theme1.xml"]; !ok {
		t.Error("template theme dropped")
	}
	ct := parts["[Content_Types].xml"]
	if strings.Count(ct, ctSlide) != 1+len(spliceSlides(t)) {
		t.Errorf("content types overrides wrong: %s", ct)
	}
}

func TestSpliceRejectsNonPresentation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.pptx")
	if err := writeZip(path, map[string]string{"hello.txt": "nope"}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Splice(path, spliceSlides(t), PositionEnd); err == nil {
		t.Error("spliced into a zip with no presentation part")
	}
}

func writeZip(path string, files map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(f)
	for name, body := range files {
		w, err := zw.Create(name)
		if err != nil {
			return err
		}
		if _, err := w.Write([]byte(body)); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}

func TestParsePosition(t *testing.T) {
	for in, want := range map[string]Position{"": PositionEnd, "end": PositionEnd, "START": PositionStart} {
		got, err := ParsePosition(in)
		if err != nil || got != want {
			t.Errorf("ParsePosition(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePosition("middle"); err == nil {
		t.Error("accepted unknown position")
	}
}
