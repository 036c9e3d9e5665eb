package drawing

// SolidDimensions describes the rectangular solid being drawn.
// All three extents are in the same abstract unit system as the
// drawing area; the package never converts physical units.
type SolidDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// AreaSize is the nominal drawing-area extent, in the same units as the
// solid's dimensions (not pixels).
type AreaSize struct {
	AreaH float64 `json:"area_h"`
	AreaV float64 `json:"area_v"`
}

// ViewDimensions holds the horizontal and vertical extent of a single
// orthographic view on the drawing plane.
type ViewDimensions struct {
	H float64 `json:"h"`
	V float64 `json:"v"`
}

// Views collects the three projected views of a solid. Third-angle
// projection: TOP sits above FRONT, RIGHT sits beside FRONT.
type Views struct {
	Top   ViewDimensions `json:"top"`
	Front ViewDimensions `json:"front"`
	Right ViewDimensions `json:"right"`
}

// DeriveViews projects a solid onto its three standard views:
// TOP shows width x depth, FRONT shows width x height, RIGHT shows
// depth x height.
func DeriveViews(s SolidDimensions) Views {
	return Views{
		Top:   ViewDimensions{H: s.Width, V: s.Depth},
		Front: ViewDimensions{H: s.Width, V: s.Height},
		Right: ViewDimensions{H: s.Depth, V: s.Height},
	}
}
