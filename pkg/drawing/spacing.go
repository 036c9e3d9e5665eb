package drawing

import (
	"fmt"
	"math"
)

// AxisSpacing is the spacing result for a single axis: the margin on each
// side of the view pair and the gap between the two views. Margins are
// always symmetric.
type AxisSpacing struct {
	Margin float64 `json:"margin"`
	Gap    float64 `json:"gap"`
}

// Spacing holds the derived margins and inter-view gaps for both axes.
// In the summary naming, Horizontal.Margin is h0, Horizontal.Gap is h1,
// Vertical.Margin is v0, Vertical.Gap is v1.
type Spacing struct {
	Horizontal AxisSpacing `json:"horizontal"`
	Vertical   AxisSpacing `json:"vertical"`
}

// FallbackSpacing is used for the initial display state, before any
// calculation has been requested.
func FallbackSpacing() Spacing {
	return Spacing{
		Horizontal: AxisSpacing{Margin: 1.2, Gap: 2.4},
		Vertical:   AxisSpacing{Margin: 2, Gap: 3},
	}
}

// ComputeSpacing derives the margins and gaps separating the view boxes.
// The vertical axis divides the room left over by FRONT and TOP, the
// horizontal axis the room left over by FRONT and RIGHT. Each axis is
// handled independently by the same rule.
func ComputeSpacing(area AreaSize, views Views) Spacing {
	return Spacing{
		Horizontal: computeAxisSpacing(area.AreaH, views.Front.H, views.Right.H),
		Vertical:   computeAxisSpacing(area.AreaV, views.Front.V, views.Top.V),
	}
}

// computeAxisSpacing splits the leftover room on one axis into a symmetric
// margin pair and a middle gap.
//
// The leftover is rounded to whole units. When it divides evenly by three
// the margin and gap are identical thirds. Otherwise the gap is capped at
// 3 units (half the leftover for small rooms) and the margins absorb the
// rest; the residual unit of rounding error is dropped, which keeps the
// views visually centered. Negative leftovers run the same arithmetic and
// clamp to zero, so a too-small area degenerates to a gapless layout
// instead of failing.
func computeAxisSpacing(areaExtent, primary, secondary float64) AxisSpacing {
	rounded := math.Round(areaExtent - (primary + secondary))

	if int(rounded)%3 == 0 {
		part := math.Max(0, rounded/3)
		return AxisSpacing{Margin: part, Gap: part}
	}

	gap := math.Max(0, math.Min(3, math.Floor(rounded/2)))
	margin := math.Max(0, (rounded-gap)/2)
	return AxisSpacing{Margin: margin, Gap: gap}
}

// SpacingEntry is one named value of the textual spacing summary.
type SpacingEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Summary formats the four spacing values to two decimal places, keyed by
// their conventional names and in stable order: h0, h1, v0, v1.
func (s Spacing) Summary() []SpacingEntry {
	return []SpacingEntry{
		{Key: "h0", Value: fmt.Sprintf("%.2f", s.Horizontal.Margin)},
		{Key: "h1", Value: fmt.Sprintf("%.2f", s.Horizontal.Gap)},
		{Key: "v0", Value: fmt.Sprintf("%.2f", s.Vertical.Margin)},
		{Key: "v1", Value: fmt.Sprintf("%.2f", s.Vertical.Gap)},
	}
}
