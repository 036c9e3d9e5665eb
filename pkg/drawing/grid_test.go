package drawing

import "testing"

func scenarioGrid() Grid {
	views := DeriveViews(SolidDimensions{Width: 6, Height: 4, Depth: 5})
	sp := ComputeSpacing(AreaSize{AreaH: 16, AreaV: 16}, views)
	return LayoutGrid(views, sp)
}

func TestLayoutGridScenario(t *testing.T) {
	grid := scenarioGrid()

	if grid.UnitsH != 16 || grid.UnitsV != 16 {
		t.Errorf("total extent = %vx%v, want 16x16", grid.UnitsH, grid.UnitsV)
	}

	tests := []struct {
		name string
		got  Box
		want Box
	}{
		{name: "top_left", got: grid.TopLeft, want: Box{X: 1.5, Y: 2, Width: 6, Height: 5}},
		{name: "top_right", got: grid.TopRight, want: Box{X: 9.5, Y: 2, Width: 5, Height: 5}},
		{name: "bottom_left", got: grid.BottomLeft, want: Box{X: 1.5, Y: 10, Width: 6, Height: 4}},
		{name: "bottom_right", got: grid.BottomRight, want: Box{X: 9.5, Y: 10, Width: 5, Height: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestLayoutGridTiling(t *testing.T) {
	// Rows share y extents, columns share x extents, and neighbors are
	// separated by exactly the middle gap.
	solids := []SolidDimensions{
		{Width: 6, Height: 4, Depth: 5},
		{Width: 3, Height: 7, Depth: 2},
		{Width: 10, Height: 1, Depth: 8},
	}

	for _, solid := range solids {
		views := DeriveViews(solid)
		sp := ComputeSpacing(AreaSize{AreaH: 16, AreaV: 16}, views)
		grid := LayoutGrid(views, sp)

		if grid.TopLeft.Y != grid.TopRight.Y || grid.BottomLeft.Y != grid.BottomRight.Y {
			t.Errorf("solid %+v: rows misaligned", solid)
		}
		if grid.TopLeft.X != grid.BottomLeft.X || grid.TopRight.X != grid.BottomRight.X {
			t.Errorf("solid %+v: columns misaligned", solid)
		}
		if got := grid.TopRight.X - grid.TopLeft.Right(); got != sp.Horizontal.Gap {
			t.Errorf("solid %+v: horizontal gap = %v, want %v", solid, got, sp.Horizontal.Gap)
		}
		if got := grid.BottomLeft.Y - grid.TopLeft.Bottom(); got != sp.Vertical.Gap {
			t.Errorf("solid %+v: vertical gap = %v, want %v", solid, got, sp.Vertical.Gap)
		}
		if got := grid.TopRight.Right() + sp.Horizontal.Margin; got != grid.UnitsH {
			t.Errorf("solid %+v: right margin mismatch: %v != %v", solid, got, grid.UnitsH)
		}
		if got := grid.BottomLeft.Bottom() + sp.Vertical.Margin; got != grid.UnitsV {
			t.Errorf("solid %+v: bottom margin mismatch: %v != %v", solid, got, grid.UnitsV)
		}
	}
}

func TestLayoutGridViewSizes(t *testing.T) {
	grid := scenarioGrid()

	// TOP above FRONT shares its width; RIGHT beside FRONT shares its height.
	if grid.TopLeft.Width != grid.BottomLeft.Width {
		t.Errorf("TOP width %v != FRONT width %v", grid.TopLeft.Width, grid.BottomLeft.Width)
	}
	if grid.BottomRight.Height != grid.BottomLeft.Height {
		t.Errorf("RIGHT height %v != FRONT height %v", grid.BottomRight.Height, grid.BottomLeft.Height)
	}
}
