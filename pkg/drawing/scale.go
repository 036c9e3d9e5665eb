package drawing

import "math"

// Scale bounds in pixels per grid unit. Very small viewports never shrink
// the drawing below legibility and very large ones never blow it up.
const (
	MinScale = 6.0
	MaxScale = 40.0
)

// Padding reserved around the drawing area for label text, in pixels.
// These are fixed layout constants, not user configuration.
const (
	PadLeft   = 36.0
	PadRight  = 16.0
	PadTop    = 16.0
	PadBottom = 36.0
)

// Viewport is the pixel space currently available to the drawing, as
// reported by the consumer (terminal size, HTTP query, resize observer).
type Viewport struct {
	AvailW float64 `json:"avail_w"`
	AvailH float64 `json:"avail_h"`
}

// Layout is the grid mapped into pixel space: the chosen scale, the
// padding-derived origin, the drawing-area rectangle and the four view
// boxes. It is recomputed wholesale on every trigger, never patched.
type Layout struct {
	Scale  float64 `json:"scale"`
	Origin Point   `json:"origin"`
	Area   Box     `json:"area"`

	TopLeft     Box `json:"top_left"`
	TopRight    Box `json:"top_right"`
	BottomLeft  Box `json:"bottom_left"`
	BottomRight Box `json:"bottom_right"`
}

// FitScale fits the unit grid into the viewport with a uniform scale.
// The scale is the smaller of the two per-axis fits, clamped to
// [MinScale, MaxScale], so aspect ratio is always preserved.
func FitScale(grid Grid, vp Viewport) Layout {
	scaleH := (vp.AvailW - PadLeft - PadRight) / grid.UnitsH
	scaleV := (vp.AvailH - PadTop - PadBottom) / grid.UnitsV
	s := math.Min(scaleH, scaleV)
	s = math.Max(MinScale, math.Min(MaxScale, s))

	origin := Point{X: PadLeft, Y: PadTop}
	return Layout{
		Scale:       s,
		Origin:      origin,
		Area:        Box{X: origin.X, Y: origin.Y, Width: grid.UnitsH * s, Height: grid.UnitsV * s},
		TopLeft:     scaleBox(grid.TopLeft, s, origin),
		TopRight:    scaleBox(grid.TopRight, s, origin),
		BottomLeft:  scaleBox(grid.BottomLeft, s, origin),
		BottomRight: scaleBox(grid.BottomRight, s, origin),
	}
}

func scaleBox(b Box, s float64, origin Point) Box {
	return Box{
		X:      origin.X + b.X*s,
		Y:      origin.Y + b.Y*s,
		Width:  b.Width * s,
		Height: b.Height * s,
	}
}
