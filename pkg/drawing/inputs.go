package drawing

import "strconv"

// Default values substituted for absent or non-numeric raw inputs.
const (
	DefaultWidth      = 6.0
	DefaultHeight     = 4.0
	DefaultDepth      = 5.0
	DefaultAreaWidth  = 16.0
	DefaultAreaHeight = 16.0
)

// RawInputs carries the five raw form values as supplied by a caller
// (CLI flags, query parameters, TUI fields). Fields are plain strings so
// that the defaulting rules live here rather than in every surface.
type RawInputs struct {
	Width      string `json:"width"`
	Height     string `json:"height"`
	Depth      string `json:"depth"`
	AreaWidth  string `json:"area_width"`
	AreaHeight string `json:"area_height"`
}

// Normalize coerces the raw fields into a solid and area size. Absent,
// non-numeric and non-positive values fall back to the documented
// defaults; there is no invalid-input error.
func (r RawInputs) Normalize() (SolidDimensions, AreaSize) {
	solid := SolidDimensions{
		Width:  numericOr(r.Width, DefaultWidth),
		Height: numericOr(r.Height, DefaultHeight),
		Depth:  numericOr(r.Depth, DefaultDepth),
	}
	area := AreaSize{
		AreaH: numericOr(r.AreaWidth, DefaultAreaWidth),
		AreaV: numericOr(r.AreaHeight, DefaultAreaHeight),
	}
	return solid, area
}

// Empty reports whether no field was supplied at all. Surfaces use this
// to show the initial placeholder drawing instead of a computed one.
func (r RawInputs) Empty() bool {
	return r.Width == "" && r.Height == "" && r.Depth == "" &&
		r.AreaWidth == "" && r.AreaHeight == ""
}

func numericOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
