package drawing

import (
	"math"
	"testing"
)

func TestComputeAxisSpacingEvenSplit(t *testing.T) {
	// Leftovers divisible by three split into equal thirds.
	for _, rounded := range []float64{0, 3, 6, 9, 12, 21} {
		sp := computeAxisSpacing(rounded, 0, 0)
		want := rounded / 3
		if sp.Margin != want || sp.Gap != want {
			t.Errorf("rounded=%v: got margin=%v gap=%v, want %v/%v", rounded, sp.Margin, sp.Gap, want, want)
		}
		if sum := 2*sp.Margin + sp.Gap; sum != rounded {
			t.Errorf("rounded=%v: parts sum to %v", rounded, sum)
		}
	}
}

func TestComputeAxisSpacingUnevenSplit(t *testing.T) {
	tests := []struct {
		rounded    float64
		wantMargin float64
		wantGap    float64
	}{
		{rounded: 1, wantMargin: 0.5, wantGap: 0},
		{rounded: 2, wantMargin: 0.5, wantGap: 1},
		{rounded: 4, wantMargin: 1, wantGap: 2},
		{rounded: 5, wantMargin: 1.5, wantGap: 2},
		{rounded: 7, wantMargin: 2, wantGap: 3},
		{rounded: 8, wantMargin: 2.5, wantGap: 3},
		{rounded: 10, wantMargin: 3.5, wantGap: 3},
		{rounded: 11, wantMargin: 4, wantGap: 3},
	}

	for _, tt := range tests {
		sp := computeAxisSpacing(tt.rounded, 0, 0)
		if sp.Margin != tt.wantMargin || sp.Gap != tt.wantGap {
			t.Errorf("rounded=%v: got margin=%v gap=%v, want margin=%v gap=%v",
				tt.rounded, sp.Margin, sp.Gap, tt.wantMargin, tt.wantGap)
		}
		if wantGap := math.Min(3, math.Floor(tt.rounded/2)); sp.Gap != wantGap {
			t.Errorf("rounded=%v: gap=%v violates min(3, floor(r/2))=%v", tt.rounded, sp.Gap, wantGap)
		}
		if sum := 2*sp.Margin + sp.Gap; sum != tt.rounded {
			t.Errorf("rounded=%v: parts sum to %v", tt.rounded, sum)
		}
	}
}

func TestComputeAxisSpacingNegativeLeftover(t *testing.T) {
	// A too-small area degenerates to a gapless layout, never to negative
	// spacing.
	for _, rounded := range []float64{-1, -2, -3, -6, -7} {
		sp := computeAxisSpacing(rounded, 0, 0)
		if sp.Margin < 0 || sp.Gap < 0 {
			t.Errorf("rounded=%v: got negative spacing margin=%v gap=%v", rounded, sp.Margin, sp.Gap)
		}
	}
}

func TestComputeSpacingScenario(t *testing.T) {
	// Reference scenario: 6x4x5 solid on a 16x16 area.
	views := DeriveViews(SolidDimensions{Width: 6, Height: 4, Depth: 5})
	sp := ComputeSpacing(AreaSize{AreaH: 16, AreaV: 16}, views)

	if sp.Vertical.Margin != 2 || sp.Vertical.Gap != 3 {
		t.Errorf("vertical: got v0=%v v1=%v, want v0=2 v1=3", sp.Vertical.Margin, sp.Vertical.Gap)
	}
	if sp.Horizontal.Margin != 1.5 || sp.Horizontal.Gap != 2 {
		t.Errorf("horizontal: got h0=%v h1=%v, want h0=1.5 h1=2", sp.Horizontal.Margin, sp.Horizontal.Gap)
	}
}

func TestComputeSpacingThreeWaySplit(t *testing.T) {
	// Horizontal leftover of 9 units: 20 - (6 + 5).
	views := DeriveViews(SolidDimensions{Width: 6, Height: 4, Depth: 5})
	sp := ComputeSpacing(AreaSize{AreaH: 20, AreaV: 16}, views)

	if sp.Horizontal.Margin != 3 || sp.Horizontal.Gap != 3 {
		t.Errorf("got h0=%v h1=%v, want 3/3", sp.Horizontal.Margin, sp.Horizontal.Gap)
	}
}

func TestComputeSpacingRoundsLeftover(t *testing.T) {
	// Fractional view extents round the leftover to whole units before
	// splitting: 16 - (6.2 + 5.2) = 4.6 rounds to 5.
	views := Views{Front: ViewDimensions{H: 6.2}, Right: ViewDimensions{H: 5.2}}
	sp := ComputeSpacing(AreaSize{AreaH: 16, AreaV: 16}, views)

	if sp.Horizontal.Gap != 2 || sp.Horizontal.Margin != 1.5 {
		t.Errorf("got h0=%v h1=%v, want h0=1.5 h1=2", sp.Horizontal.Margin, sp.Horizontal.Gap)
	}
}

func TestSpacingSummary(t *testing.T) {
	sp := Spacing{
		Horizontal: AxisSpacing{Margin: 1.5, Gap: 2},
		Vertical:   AxisSpacing{Margin: 2, Gap: 3},
	}

	got := sp.Summary()
	want := []SpacingEntry{
		{Key: "h0", Value: "1.50"},
		{Key: "h1", Value: "2.00"},
		{Key: "v0", Value: "2.00"},
		{Key: "v1", Value: "3.00"},
	}

	if len(got) != len(want) {
		t.Fatalf("Summary() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Summary()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFallbackSpacing(t *testing.T) {
	sp := FallbackSpacing()
	if sp.Vertical.Margin != 2 || sp.Vertical.Gap != 3 {
		t.Errorf("vertical fallback = %+v, want margin=2 gap=3", sp.Vertical)
	}
	if sp.Horizontal.Margin != 1.2 || sp.Horizontal.Gap != 2.4 {
		t.Errorf("horizontal fallback = %+v, want margin=1.2 gap=2.4", sp.Horizontal)
	}
}

func TestDeriveViews(t *testing.T) {
	views := DeriveViews(SolidDimensions{Width: 6, Height: 4, Depth: 5})

	tests := []struct {
		name string
		got  ViewDimensions
		want ViewDimensions
	}{
		{name: "top", got: views.Top, want: ViewDimensions{H: 6, V: 5}},
		{name: "front", got: views.Front, want: ViewDimensions{H: 6, V: 4}},
		{name: "right", got: views.Right, want: ViewDimensions{H: 5, V: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}
