package drawing

// Grid is the unit-grid arrangement of the four view boxes. Coordinates
// are grid units with the origin at the drawing area's top-left corner.
//
// The topology is fixed: column widths are FRONT.H and RIGHT.H, row
// heights are TOP.V and FRONT.V. The top-right box is the unused corner
// of the 2x2 arrangement and is marked with a diagonal when drawn.
type Grid struct {
	UnitsH float64 `json:"units_h"`
	UnitsV float64 `json:"units_v"`

	TopLeft     Box `json:"top_left"`     // TOP view
	TopRight    Box `json:"top_right"`    // unused corner
	BottomLeft  Box `json:"bottom_left"`  // FRONT view
	BottomRight Box `json:"bottom_right"` // RIGHT view
}

// LayoutGrid arranges the views on the unit grid using the given spacing.
// Boxes are placed at cumulative left-to-right, top-to-bottom offsets and
// the total extent sums margins, view spans and the middle gap per axis.
func LayoutGrid(views Views, sp Spacing) Grid {
	h0, h1 := sp.Horizontal.Margin, sp.Horizontal.Gap
	v0, v1 := sp.Vertical.Margin, sp.Vertical.Gap

	col0, col1 := views.Front.H, views.Right.H
	row0, row1 := views.Top.V, views.Front.V

	x1 := h0 + col0 + h1
	y1 := v0 + row0 + v1

	return Grid{
		UnitsH:      2*h0 + col0 + h1 + col1,
		UnitsV:      2*v0 + row0 + v1 + row1,
		TopLeft:     Box{X: h0, Y: v0, Width: col0, Height: row0},
		TopRight:    Box{X: x1, Y: v0, Width: col1, Height: row0},
		BottomLeft:  Box{X: h0, Y: y1, Width: col0, Height: row1},
		BottomRight: Box{X: x1, Y: y1, Width: col1, Height: row1},
	}
}
