package sink

import (
	"encoding/json"

	"github.com/drafthaus/orthodraw/pkg/drawing"
)

type jsonOutput struct {
	Calculated bool                `json:"calculated"`
	Scale      float64             `json:"scale"`
	Spacing    map[string]string   `json:"spacing"`
	Layout     drawing.Layout      `json:"layout"`
	Primitives []drawing.Primitive `json:"primitives"`
}

// RenderJSON exports the drawing as a pretty-printed JSON document: the
// primitive list in stacking order, the pixel layout, and the textual
// spacing summary keyed h0/h1/v0/v1.
//
// This is the interchange format for external renderers; feeding the
// primitives to any rectangle/line/text backend reproduces the drawing.
func RenderJSON(d drawing.Drawing) ([]byte, error) {
	spacing := make(map[string]string, 4)
	for _, e := range d.Spacing.Summary() {
		spacing[e.Key] = e.Value
	}

	out := jsonOutput{
		Calculated: d.Calculated,
		Scale:      d.Layout.Scale,
		Spacing:    spacing,
		Layout:     d.Layout,
		Primitives: d.Primitives,
	}
	return json.MarshalIndent(out, "", "  ")
}
