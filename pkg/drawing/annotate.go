package drawing

import "math"

// ArrowKind distinguishes annotations measuring a solid edge from ones
// measuring a margin or gap between views. The geometry is identical;
// sinks give each kind its own visual identity.
type ArrowKind string

const (
	ArrowShape ArrowKind = "shape"
	ArrowSpace ArrowKind = "space"
)

// Side selects which side of a vertical arrow carries the label.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

const (
	// axisTolerance classifies an arrow as horizontal or vertical. The
	// engine only ever emits axis-aligned arrows; anything else keeps the
	// default centered placement.
	axisTolerance = 0.5

	// minLabelLength is the pixel length below which a label no longer
	// fits on the arrow and moves out of its way.
	minLabelLength = 14.0

	// shortArrowNudge lifts the label of a short vertical arrow above its
	// midpoint instead of beside it.
	shortArrowNudge = 10.0

	// shortLabelGap separates a short horizontal arrow from the label
	// placed to its right.
	shortLabelGap = 4.0

	// tickHalf is the half-length of the perpendicular tick marks at the
	// arrow endpoints.
	tickHalf = 4.0

	// minSpacingArrow is the pixel length at or below which a spacing
	// arrow is dropped entirely. A gap that rounds to nothing draws
	// nothing.
	minSpacingArrow = 1.0

	// DefaultHorizontalLabelOffset places horizontal labels above the
	// midpoint (negative y is up).
	DefaultHorizontalLabelOffset = -8.0

	// DefaultVerticalLabelOffset is the horizontal distance between a
	// vertical arrow and its label.
	DefaultVerticalLabelOffset = 12.0
)

// ArrowOptions tune label placement for a single arrow. The zero value
// selects the defaults: label above horizontal arrows, left of vertical
// ones, at the standard offsets.
type ArrowOptions struct {
	// LabelOffset is the signed distance from the arrow line to the
	// label. Zero means the kind-appropriate default.
	LabelOffset float64

	// Side is which side of a vertical arrow the label sits on.
	// Empty means SideLeft.
	Side Side
}

// Annotation is a fully placed dimension arrow: the main line, one
// perpendicular tick per endpoint, and the label.
type Annotation struct {
	Kind  ArrowKind  `json:"kind"`
	Line  Segment    `json:"line"`
	Ticks [2]Segment `json:"ticks"`
	Label Label      `json:"label"`
}

// BuildShapeArrow builds a dimension arrow measuring a solid edge.
// Shape arrows are always emitted, however short.
func BuildShapeArrow(p1, p2 Point, text string, opts ArrowOptions) Annotation {
	return buildArrow(p1, p2, text, ArrowShape, opts)
}

// BuildSpacingArrow builds a dimension arrow measuring a margin or gap.
// The second return is false when the arrow is suppressed because the
// scaled span is at most a pixel.
func BuildSpacingArrow(p1, p2 Point, text string, opts ArrowOptions) (Annotation, bool) {
	if length(p1, p2) <= minSpacingArrow {
		return Annotation{}, false
	}
	return buildArrow(p1, p2, text, ArrowSpace, opts), true
}

func buildArrow(p1, p2 Point, text string, kind ArrowKind, opts ArrowOptions) Annotation {
	ux, uy := unitPerpendicular(p1, p2)

	return Annotation{
		Kind: kind,
		Line: Segment{From: p1, To: p2},
		Ticks: [2]Segment{
			tickAt(p1, ux, uy),
			tickAt(p2, ux, uy),
		},
		Label: placeLabel(p1, p2, text, opts),
	}
}

// unitPerpendicular returns the unit vector perpendicular to p1->p2,
// or zero for a degenerate arrow.
func unitPerpendicular(p1, p2 Point) (float64, float64) {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0
	}
	return -dy / l, dx / l
}

func tickAt(p Point, ux, uy float64) Segment {
	return Segment{
		From: Point{X: p.X - ux*tickHalf, Y: p.Y - uy*tickHalf},
		To:   Point{X: p.X + ux*tickHalf, Y: p.Y + uy*tickHalf},
	}
}

// placeLabel positions the label relative to the arrow. Horizontal arrows
// carry the label centered above the midpoint, unless too short to fit,
// in which case it moves to the right of the arrow. Vertical arrows carry
// it beside the midpoint on the chosen side, or nudged above the midpoint
// when too short.
func placeLabel(p1, p2 Point, text string, opts ArrowOptions) Label {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	l := math.Hypot(dx, dy)
	mid := Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}

	switch {
	case math.Abs(dy) < axisTolerance:
		return placeHorizontalLabel(p1, p2, mid, l, text, opts)
	case math.Abs(dx) < axisTolerance:
		return placeVerticalLabel(mid, l, text, opts)
	default:
		// Not axis-aligned; never produced by this engine.
		return Label{Text: text, Position: mid, Anchor: AnchorMiddle}
	}
}

func placeHorizontalLabel(p1, p2, mid Point, l float64, text string, opts ArrowOptions) Label {
	if l < minLabelLength {
		right := math.Max(p1.X, p2.X)
		return Label{
			Text:     text,
			Position: Point{X: right + shortLabelGap, Y: mid.Y},
			Anchor:   AnchorStart,
		}
	}

	offset := opts.LabelOffset
	if offset == 0 {
		offset = DefaultHorizontalLabelOffset
	}
	return Label{
		Text:     text,
		Position: Point{X: mid.X, Y: mid.Y + offset},
		Anchor:   AnchorMiddle,
	}
}

func placeVerticalLabel(mid Point, l float64, text string, opts ArrowOptions) Label {
	if l < minLabelLength {
		return Label{
			Text:     text,
			Position: Point{X: mid.X, Y: mid.Y - shortArrowNudge},
			Anchor:   AnchorMiddle,
		}
	}

	offset := opts.LabelOffset
	if offset == 0 {
		offset = DefaultVerticalLabelOffset
	}
	if opts.Side == SideRight {
		return Label{
			Text:     text,
			Position: Point{X: mid.X + offset, Y: mid.Y},
			Anchor:   AnchorStart,
		}
	}
	return Label{
		Text:     text,
		Position: Point{X: mid.X - offset, Y: mid.Y},
		Anchor:   AnchorEnd,
	}
}

func length(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}
