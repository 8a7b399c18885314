package pptx

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizdeck/internal/deck"
)

// slideXML serializes one assembled slide to its presentationml part.
// Shape order is preserved; later shapes draw over earlier ones.
func slideXML(s deck.Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld ` + nsDecls + `>`)
	b.WriteString(`<p:cSld>`)
	if s.Background != "" {
		fmt.Fprintf(&b, `<p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`, s.Background)
	}
	b.WriteString(`<p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)
	for i, sh := range s.Shapes {
		writeShape(&b, sh, i+2)
	}
	b.WriteString(`</p:spTree>`)
	b.WriteString(`</p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return b.String()
}

func writeShape(b *strings.Builder, sh deck.Shape, id int) {
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Shape %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`, id, id)

	b.WriteString(`<p:spPr>`)
	fmt.Fprintf(b, `<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, sh.X, sh.Y, sh.W, sh.H)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`)
	if sh.Kind == deck.KindBox && sh.Fill != "" {
		fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, sh.Fill)
	} else {
		b.WriteString(`<a:noFill/>`)
	}
	b.WriteString(`<a:ln><a:noFill/></a:ln>`)
	b.WriteString(`</p:spPr>`)

	b.WriteString(`<p:txBody><a:bodyPr wrap="square" anchor="t"/><a:lstStyle/>`)
	if sh.Kind == deck.KindText && sh.Text != "" {
		for _, line := range strings.Split(sh.Text, "\n") {
			writeParagraph(b, line, sh)
		}
	} else {
		b.WriteString(`<a:p/>`)
	}
	b.WriteString(`</p:txBody></p:sp>`)
}

func writeParagraph(b *strings.Builder, line string, sh deck.Shape) {
	algn := string(sh.Align)
	if algn == "" {
		algn = string(deck.AlignLeft)
	}
	fmt.Fprintf(b, `<a:p><a:pPr algn="%s"/>`, algn)
	if line != "" {
		fmt.Fprintf(b, `<a:r><a:rPr lang="en-US" sz="%d"`, sh.FontSize*100)
		if sh.Bold {
			b.WriteString(` b="1"`)
		}
		b.WriteString(` dirty="0">`)
		fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, sh.Color)
		b.WriteString(`<a:latin typeface="Calibri"/></a:rPr>`)
		b.WriteString(`<a:t>` + xmlEscape(line) + `</a:t></a:r>`)
	}
	b.WriteString(`</a:p>`)
}
