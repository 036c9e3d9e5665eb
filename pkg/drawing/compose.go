package drawing

import "strconv"

// placeholderLabel replaces numeric dimension labels before the first
// calculation has happened.
const placeholderLabel = "unknown"

// dimArrowGap is the pixel distance between a box edge and its shape
// dimension arrow.
const dimArrowGap = 10.0

// Drawing is the result of one full compose pass: the ordered primitive
// list plus the intermediate results a caller may want to report (spacing
// summary, chosen scale, box geometry).
type Drawing struct {
	Primitives []Primitive `json:"primitives"`
	Spacing    Spacing     `json:"spacing"`
	Layout     Layout      `json:"layout"`
	Views      Views       `json:"views"`
	Calculated bool        `json:"calculated"`
}

// Compose runs the full pipeline and assembles the primitive list in
// stacking order: background, grid lines, border, view boxes, diagonal
// marker, view labels, shape dimension arrows, spacing dimension arrows.
//
// When calculated is false the drawing uses the fixed fallback spacing and
// renders "unknown" in place of every dimension value. This is the initial
// display state, and the state shown when the viewport resizes before any
// calculation.
func Compose(solid SolidDimensions, area AreaSize, vp Viewport, calculated bool) Drawing {
	views := DeriveViews(solid)

	sp := FallbackSpacing()
	if calculated {
		sp = ComputeSpacing(area, views)
	}

	grid := LayoutGrid(views, sp)
	l := FitScale(grid, vp)

	c := NewCanvas()
	c.Rect(ClassBackground, Box{X: 0, Y: 0, Width: vp.AvailW, Height: vp.AvailH})
	composeGridLines(c, grid, l)
	c.Rect(ClassBorder, l.Area)
	composeBoxes(c, l)
	composeViewLabels(c, l)
	composeShapeArrows(c, solid, l, calculated)
	composeSpacingArrows(c, sp, l, calculated)

	return Drawing{
		Primitives: c.Primitives(),
		Spacing:    sp,
		Layout:     l,
		Views:      views,
		Calculated: calculated,
	}
}

// composeGridLines draws a line at every interior integer unit boundary,
// clipped to the drawing area. Grid lines come right after the background
// so everything else stacks above them.
func composeGridLines(c *Canvas, grid Grid, l Layout) {
	for u := 1.0; u < grid.UnitsH; u++ {
		x := l.Origin.X + u*l.Scale
		c.Line(ClassGrid, Point{X: x, Y: l.Area.Y}, Point{X: x, Y: l.Area.Bottom()})
	}
	for u := 1.0; u < grid.UnitsV; u++ {
		y := l.Origin.Y + u*l.Scale
		c.Line(ClassGrid, Point{X: l.Area.X, Y: y}, Point{X: l.Area.Right(), Y: y})
	}
}

// composeBoxes draws the four view boxes and the diagonal marker across
// the unused top-right corner box.
func composeBoxes(c *Canvas, l Layout) {
	c.Rect(ClassBox, l.TopLeft)
	c.Rect(ClassBox, l.TopRight)
	c.Rect(ClassBox, l.BottomLeft)
	c.Rect(ClassBox, l.BottomRight)

	c.Line(ClassDiagonal,
		Point{X: l.TopRight.X, Y: l.TopRight.Y},
		Point{X: l.TopRight.Right(), Y: l.TopRight.Bottom()})
}

func composeViewLabels(c *Canvas, l Layout) {
	for _, v := range []struct {
		name string
		box  Box
	}{
		{"TOP", l.TopLeft},
		{"FRONT", l.BottomLeft},
		{"RIGHT", l.BottomRight},
	} {
		c.Label(ClassViewLabel, Label{
			Text:     v.name,
			Position: Point{X: v.box.CenterX(), Y: v.box.CenterY()},
			Anchor:   AnchorMiddle,
		})
	}
}

// composeShapeArrows measures each solid edge once per view it appears in:
// width and depth on TOP, width and height on FRONT, depth and height on
// RIGHT. Each arrow carries a pair of dotted extension lines back to the
// box corners it measures.
func composeShapeArrows(c *Canvas, solid SolidDimensions, l Layout, calculated bool) {
	width := dimLabel(solid.Width, calculated)
	height := dimLabel(solid.Height, calculated)
	depth := dimLabel(solid.Depth, calculated)

	// TOP: width above, depth to the left.
	top := l.TopLeft
	emitShapeArrow(c,
		Point{X: top.X, Y: top.Y - dimArrowGap}, Point{X: top.Right(), Y: top.Y - dimArrowGap},
		width, ArrowOptions{},
		Point{X: top.X, Y: top.Y}, Point{X: top.Right(), Y: top.Y})
	emitShapeArrow(c,
		Point{X: top.X - dimArrowGap, Y: top.Y}, Point{X: top.X - dimArrowGap, Y: top.Bottom()},
		depth, ArrowOptions{Side: SideLeft},
		Point{X: top.X, Y: top.Y}, Point{X: top.X, Y: top.Bottom()})

	// FRONT: width below, height to the left.
	front := l.BottomLeft
	emitShapeArrow(c,
		Point{X: front.X, Y: front.Bottom() + dimArrowGap}, Point{X: front.Right(), Y: front.Bottom() + dimArrowGap},
		width, ArrowOptions{LabelOffset: 14},
		Point{X: front.X, Y: front.Bottom()}, Point{X: front.Right(), Y: front.Bottom()})
	emitShapeArrow(c,
		Point{X: front.X - dimArrowGap, Y: front.Y}, Point{X: front.X - dimArrowGap, Y: front.Bottom()},
		height, ArrowOptions{Side: SideLeft},
		Point{X: front.X, Y: front.Y}, Point{X: front.X, Y: front.Bottom()})

	// RIGHT: depth below, height to the right.
	right := l.BottomRight
	emitShapeArrow(c,
		Point{X: right.X, Y: right.Bottom() + dimArrowGap}, Point{X: right.Right(), Y: right.Bottom() + dimArrowGap},
		depth, ArrowOptions{LabelOffset: 14},
		Point{X: right.X, Y: right.Bottom()}, Point{X: right.Right(), Y: right.Bottom()})
	emitShapeArrow(c,
		Point{X: right.Right() + dimArrowGap, Y: right.Y}, Point{X: right.Right() + dimArrowGap, Y: right.Bottom()},
		height, ArrowOptions{Side: SideRight},
		Point{X: right.Right(), Y: right.Y}, Point{X: right.Right(), Y: right.Bottom()})
}

// composeSpacingArrows measures the margin and gap bands between the view
// boxes: left margin, middle gap and right margin at the height of the top
// row, and top margin, middle gap and bottom margin at the left column.
// Bands that scale to a pixel or less draw nothing.
func composeSpacingArrows(c *Canvas, sp Spacing, l Layout, calculated bool) {
	h0 := dimLabel(sp.Horizontal.Margin, calculated)
	h1 := dimLabel(sp.Horizontal.Gap, calculated)
	v0 := dimLabel(sp.Vertical.Margin, calculated)
	v1 := dimLabel(sp.Vertical.Gap, calculated)

	y := l.TopLeft.CenterY()
	rowTop := l.TopLeft.Y
	emitSpacingArrow(c,
		Point{X: l.Area.X, Y: y}, Point{X: l.TopLeft.X, Y: y},
		h0, ArrowOptions{},
		Point{X: l.Area.X, Y: rowTop}, Point{X: l.TopLeft.X, Y: rowTop})
	emitSpacingArrow(c,
		Point{X: l.TopLeft.Right(), Y: y}, Point{X: l.TopRight.X, Y: y},
		h1, ArrowOptions{},
		Point{X: l.TopLeft.Right(), Y: rowTop}, Point{X: l.TopRight.X, Y: rowTop})
	emitSpacingArrow(c,
		Point{X: l.TopRight.Right(), Y: y}, Point{X: l.Area.Right(), Y: y},
		h0, ArrowOptions{},
		Point{X: l.TopRight.Right(), Y: rowTop}, Point{X: l.Area.Right(), Y: rowTop})

	x := l.TopLeft.CenterX()
	colLeft := l.TopLeft.X
	emitSpacingArrow(c,
		Point{X: x, Y: l.Area.Y}, Point{X: x, Y: l.TopLeft.Y},
		v0, ArrowOptions{Side: SideRight},
		Point{X: colLeft, Y: l.Area.Y}, Point{X: colLeft, Y: l.TopLeft.Y})
	emitSpacingArrow(c,
		Point{X: x, Y: l.TopLeft.Bottom()}, Point{X: x, Y: l.BottomLeft.Y},
		v1, ArrowOptions{Side: SideRight},
		Point{X: colLeft, Y: l.TopLeft.Bottom()}, Point{X: colLeft, Y: l.BottomLeft.Y})
	emitSpacingArrow(c,
		Point{X: x, Y: l.BottomLeft.Bottom()}, Point{X: x, Y: l.Area.Bottom()},
		v0, ArrowOptions{Side: SideRight},
		Point{X: colLeft, Y: l.BottomLeft.Bottom()}, Point{X: colLeft, Y: l.Area.Bottom()})
}

func emitShapeArrow(c *Canvas, p1, p2 Point, text string, opts ArrowOptions, ext1, ext2 Point) {
	c.Line(ClassExtShape, p1, ext1)
	c.Line(ClassExtShape, p2, ext2)
	c.annotation(ClassDimShape, BuildShapeArrow(p1, p2, text, opts))
}

func emitSpacingArrow(c *Canvas, p1, p2 Point, text string, opts ArrowOptions, ext1, ext2 Point) {
	a, ok := BuildSpacingArrow(p1, p2, text, opts)
	if !ok {
		return
	}
	c.Line(ClassExtSpace, p1, ext1)
	c.Line(ClassExtSpace, p2, ext2)
	c.annotation(ClassDimSpace, a)
}

// annotation appends a dimension arrow's line, ticks and label under one
// class.
func (c *Canvas) annotation(class Class, a Annotation) {
	c.Line(class, a.Line.From, a.Line.To)
	c.Line(class, a.Ticks[0].From, a.Ticks[0].To)
	c.Line(class, a.Ticks[1].From, a.Ticks[1].To)
	c.Label(class, a.Label)
}

// dimLabel formats a dimension value, or the placeholder before the first
// calculation.
func dimLabel(v float64, calculated bool) string {
	if !calculated {
		return placeholderLabel
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
