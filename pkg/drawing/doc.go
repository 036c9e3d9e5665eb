// Package drawing computes the layout and annotation geometry for a
// third-angle orthographic projection of a rectangular solid.
//
// # Overview
//
// Given the solid's width, height and depth plus a nominal drawing-area
// size, the package lays out the TOP, FRONT and RIGHT views on a 2x2 unit
// grid, fits that grid into a pixel viewport, and produces an ordered list
// of drawable primitives (rectangles, lines, text labels) including full
// dimension-arrow annotations with ticks, extension lines and labels.
//
// The pipeline runs strictly one way:
//
//  1. Spacing ([ComputeSpacing]): derive margins and inter-view gaps from
//     the area size and the view extents.
//  2. Grid ([LayoutGrid]): arrange the four view boxes on the unit grid.
//  3. Scale ([FitScale]): choose a uniform pixel scale within bounds for
//     the available viewport.
//  4. Annotate ([BuildShapeArrow], [BuildSpacingArrow]): generate dimension
//     arrows for shape edges and spacing gaps.
//  5. Compose ([Compose]): assemble everything into the final primitive
//     list, ready for a sink.
//
// Every stage is pure: identical inputs always yield an identical primitive
// list, and nothing is cached between calls. Degenerate inputs are clamped
// or defaulted rather than rejected; no function in this package fails.
//
// Rendering the primitive list to SVG, PNG or JSON lives in
// [github.com/drafthaus/orthodraw/pkg/drawing/sink].
package drawing
