package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/quizdeck/internal/deck"
)

// Position says where generated slides land relative to a template's
// own slides.
type Position string

const (
	PositionStart Position = "start"
	PositionEnd   Position = "end"
)

// ParsePosition accepts "start" or "end"; empty defaults to end.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "end":
		return PositionEnd, nil
	case "start":
		return PositionStart, nil
	}
	return "", fmt.Errorf("unknown insert position %q (want start or end)", s)
}

var (
	slidePartRe  = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)
	layoutPartRe = regexp.MustCompile(`^ppt/slideLayouts/slideLayout(\d+)\.xml$`)
	relIDRe      = regexp.MustCompile(`Id="rId(\d+)"`)
	sldIDRe      = regexp.MustCompile(`sldId id="(\d+)"`)
	sldIdLstRe   = regexp.MustCompile(`(?s)<(\w+):sldIdLst[^/>]*>(.*?)</\w+:sldIdLst>`)
	masterLstRe  = regexp.MustCompile(`</(\w+):sldMasterIdLst>`)
)

// Splice reads the presentation at templatePath and inserts the
// generated slides at the start or end of its slide list, leaving the
// template's own slides, layouts, and media untouched. It returns the
// combined package bytes and the total slide count.
func Splice(templatePath string, slides []deck.Slide, pos Position) ([]byte, int, error) {
	zr, err := zip.OpenReader(templatePath)
	if err != nil {
		return nil, 0, fmt.Errorf("open template: %w", err)
	}
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	contents := make(map[string][]byte, len(zr.File))
	maxSlide, slideCount, layoutNum := 0, 0, 0
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, 0, fmt.Errorf("read template part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, 0, fmt.Errorf("read template part %s: %w", f.Name, err)
		}
		names = append(names, f.Name)
		contents[f.Name] = data

		if m := slidePartRe.FindStringSubmatch(f.Name); m != nil {
			slideCount++
			if n, _ := strconv.Atoi(m[1]); n > maxSlide {
				maxSlide = n
			}
		}
		if m := layoutPartRe.FindStringSubmatch(f.Name); m != nil {
			n, _ := strconv.Atoi(m[1])
			if layoutNum == 0 || n < layoutNum {
				layoutNum = n
			}
		}
	}

	pres, ok := contents["ppt/presentation.xml"]
	if !ok {
		return nil, 0, fmt.Errorf("template %s has no presentation part", templatePath)
	}
	rels, ok := contents["ppt/_rels/presentation.xml.rels"]
	if !ok {
		return nil, 0, fmt.Errorf("template %s has no presentation relationships", templatePath)
	}
	ct, ok := contents["[Content_Types].xml"]
	if !ok {
		return nil, 0, fmt.Errorf("template %s has no content types part", templatePath)
	}
	if layoutNum == 0 {
		return nil, 0, fmt.Errorf("template %s has no slide layouts", templatePath)
	}

	// New parts take numbers, relationship ids, and slide ids above
	// everything the template already uses.
	nextRID := maxNumber(relIDRe, rels) + 1
	nextSldID := maxNumber(sldIDRe, pres)
	if nextSldID < 255 {
		nextSldID = 255
	}
	nextSldID++

	var relAdds, idAdds strings.Builder
	for i := range slides {
		fmt.Fprintf(&relAdds, `<Relationship Id="rId%d" Type="%s" Target="slides/slide%d.xml"/>`,
			nextRID+i, relTypeSlide, maxSlide+1+i)
	}
	contents["ppt/_rels/presentation.xml.rels"] = bytes.Replace(rels,
		[]byte("</Relationships>"), []byte(relAdds.String()+"</Relationships>"), 1)

	patched, err := patchSlideList(pres, func(prefix string) string {
		for i := range slides {
			fmt.Fprintf(&idAdds, `<%s:sldId id="%d" r:id="rId%d"/>`, prefix, nextSldID+i, nextRID+i)
		}
		return idAdds.String()
	}, pos)
	if err != nil {
		return nil, 0, err
	}
	contents["ppt/presentation.xml"] = patched

	var ctAdds strings.Builder
	for i := range slides {
		fmt.Fprintf(&ctAdds, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="%s"/>`,
			maxSlide+1+i, ctSlide)
	}
	contents["[Content_Types].xml"] = bytes.Replace(ct,
		[]byte("</Types>"), []byte(ctAdds.String()+"</Types>"), 1)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		f, err := zw.Create(name)
		if err != nil {
			return nil, 0, fmt.Errorf("create part %s: %w", name, err)
		}
		if _, err := f.Write(contents[name]); err != nil {
			return nil, 0, fmt.Errorf("write part %s: %w", name, err)
		}
	}
	layoutTarget := fmt.Sprintf("../slideLayouts/slideLayout%d.xml", layoutNum)
	for i, s := range slides {
		n := maxSlide + 1 + i
		for _, p := range []part{
			{fmt.Sprintf("ppt/slides/slide%d.xml", n), slideXML(s)},
			{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRelsXML(layoutTarget)},
		} {
			f, err := zw.Create(p.name)
			if err != nil {
				return nil, 0, fmt.Errorf("create part %s: %w", p.name, err)
			}
			if _, err := io.WriteString(f, p.body); err != nil {
				return nil, 0, fmt.Errorf("write part %s: %w", p.name, err)
			}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, 0, fmt.Errorf("finalize package: %w", err)
	}

	return buf.Bytes(), slideCount + len(slides), nil
}

// patchSlideList inserts the entries produced by build into the
// presentation's sldIdLst, creating the list after the master list when
// the template has no slides of its own.
func patchSlideList(pres []byte, build func(prefix string) string, pos Position) ([]byte, error) {
	if loc := sldIdLstRe.FindSubmatchIndex(pres); loc != nil {
		prefix := string(pres[loc[2]:loc[3]])
		entries := build(prefix)
		var insertAt int
		if pos == PositionStart {
			insertAt = loc[4] // just inside the opening tag
		} else {
			insertAt = loc[5] // just before the closing tag
		}
		out := make([]byte, 0, len(pres)+len(entries))
		out = append(out, pres[:insertAt]...)
		out = append(out, entries...)
		out = append(out, pres[insertAt:]...)
		return out, nil
	}

	loc := masterLstRe.FindSubmatchIndex(pres)
	if loc == nil {
		return nil, fmt.Errorf("presentation part has no slide or master list")
	}
	prefix := string(pres[loc[2]:loc[3]])
	entries := fmt.Sprintf("<%s:sldIdLst>%s</%s:sldIdLst>", prefix, build(prefix), prefix)
	out := make([]byte, 0, len(pres)+len(entries))
	out = append(out, pres[:loc[1]]...)
	out = append(out, entries...)
	out = append(out, pres[loc[1]:]...)
	return out, nil
}

func maxNumber(re *regexp.Regexp, data []byte) int {
	max := 0
	for _, m := range re.FindAllSubmatch(data, -1) {
		if n, _ := strconv.Atoi(string(m[1])); n > max {
			max = n
		}
	}
	return max
}

// CountSlides reports how many slide parts a .pptx package contains.
func CountSlides(r io.ReaderAt, size int64) (int, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return 0, fmt.Errorf("open package: %w", err)
	}
	count := 0
	for _, f := range zr.File {
		if slidePartRe.MatchString(f.Name) {
			count++
		}
	}
	return count, nil
}
