package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/drafthaus/orthodraw/pkg/drawing"
	"github.com/drafthaus/orthodraw/pkg/drawing/styles"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme styles.Theme
}

// WithTheme selects the visual theme. Default is [styles.Paper].
func WithTheme(t styles.Theme) SVGOption {
	return func(r *svgRenderer) { r.theme = t }
}

// RenderSVG renders the drawing's primitive list as an SVG document sized
// to the viewport the drawing was composed for. Primitives are written in
// list order, which is the stacking order the composer guarantees.
func RenderSVG(d drawing.Drawing, vp drawing.Viewport, opts ...SVGOption) []byte {
	r := svgRenderer{theme: styles.Paper()}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		vp.AvailW, vp.AvailH, vp.AvailW, vp.AvailH)

	for _, p := range d.Primitives {
		renderPrimitive(&buf, p, r.theme)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderPrimitive(buf *bytes.Buffer, p drawing.Primitive, theme styles.Theme) {
	a := theme.Resolve(p.Class)

	switch p.Kind {
	case drawing.KindRect:
		renderRect(buf, p, a)
	case drawing.KindLine:
		renderLine(buf, p, a)
	case drawing.KindLabel:
		renderLabel(buf, p, a)
	}
}

func renderRect(buf *bytes.Buffer, p drawing.Primitive, a styles.Attrs) {
	b := p.Rect
	fmt.Fprintf(buf, `  <rect class=%q x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill=%q`,
		p.Class, b.X, b.Y, b.Width, b.Height, orNone(a.Fill))
	if a.Stroke != "" {
		fmt.Fprintf(buf, ` stroke=%q stroke-width="%.2f"`, a.Stroke, a.StrokeWidth)
	}
	buf.WriteString(" />\n")
}

func renderLine(buf *bytes.Buffer, p drawing.Primitive, a styles.Attrs) {
	l := p.Line
	fmt.Fprintf(buf, `  <line class=%q x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke=%q stroke-width="%.2f"`,
		p.Class, l.From.X, l.From.Y, l.To.X, l.To.Y, a.Stroke, a.StrokeWidth)
	if a.Dash != "" {
		fmt.Fprintf(buf, ` stroke-dasharray=%q`, a.Dash)
	}
	buf.WriteString(" />\n")
}

func renderLabel(buf *bytes.Buffer, p drawing.Primitive, a styles.Attrs) {
	l := p.Label
	fmt.Fprintf(buf, `  <text class=%q x="%.2f" y="%.2f" text-anchor=%q font-size="%.1f" fill=%q`,
		p.Class, l.Position.X, l.Position.Y, l.Anchor, a.FontSize, orNone(a.Fill))
	if a.FontWeight != "" {
		fmt.Fprintf(buf, ` font-weight=%q`, a.FontWeight)
	}
	fmt.Fprintf(buf, ">%s</text>\n", escapeXML(l.Text))
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s)) //nolint:errcheck // cannot fail on a bytes.Buffer
	return buf.String()
}
