// Package styles defines the visual themes used when rendering a composed
// drawing. A theme resolves each primitive class to concrete stroke, fill,
// dash and font attributes; the drawing engine itself is colorless.
package styles

import "github.com/drafthaus/orthodraw/pkg/drawing"

// Attrs are the resolved visual attributes for one primitive class.
type Attrs struct {
	Stroke      string  // stroke color, empty for none
	Fill        string  // fill color, empty for none
	StrokeWidth float64 // line width in pixels
	Dash        string  // SVG dash pattern, empty for solid
	FontSize    float64 // label font size, 0 for non-text classes
	FontWeight  string  // label font weight, empty for normal
}

// Theme maps primitive classes to attributes. Classes missing from the
// map render with Default.
type Theme struct {
	Name    string
	Default Attrs
	Classes map[drawing.Class]Attrs
}

// Resolve returns the attributes for a class, falling back to Default.
func (t Theme) Resolve(class drawing.Class) Attrs {
	if a, ok := t.Classes[class]; ok {
		return a
	}
	return t.Default
}

// Paper is the default theme: dark linework on white, blue shape
// dimensions, red spacing dimensions.
func Paper() Theme {
	return Theme{
		Name:    "paper",
		Default: Attrs{Stroke: "#333333", StrokeWidth: 1},
		Classes: map[drawing.Class]Attrs{
			drawing.ClassBackground: {Fill: "#ffffff"},
			drawing.ClassGrid:       {Stroke: "#e0e0e0", StrokeWidth: 0.5},
			drawing.ClassBorder:     {Stroke: "#555555", StrokeWidth: 1.5},
			drawing.ClassBox:        {Stroke: "#222222", StrokeWidth: 1.5, Fill: "none"},
			drawing.ClassDiagonal:   {Stroke: "#999999", StrokeWidth: 1},
			drawing.ClassViewLabel:  {Fill: "#222222", FontSize: 13, FontWeight: "bold"},
			drawing.ClassDimShape:   {Stroke: "#1a5fb4", StrokeWidth: 1, Fill: "#1a5fb4", FontSize: 11},
			drawing.ClassDimSpace:   {Stroke: "#c01c28", StrokeWidth: 1, Fill: "#c01c28", FontSize: 11},
			drawing.ClassExtShape:   {Stroke: "#1a5fb4", StrokeWidth: 0.5, Dash: "2,3"},
			drawing.ClassExtSpace:   {Stroke: "#c01c28", StrokeWidth: 0.5, Dash: "2,3"},
		},
	}
}

// Blueprint is light linework on a blueprint-blue background.
func Blueprint() Theme {
	return Theme{
		Name:    "blueprint",
		Default: Attrs{Stroke: "#dce6f2", StrokeWidth: 1},
		Classes: map[drawing.Class]Attrs{
			drawing.ClassBackground: {Fill: "#16335e"},
			drawing.ClassGrid:       {Stroke: "#27497c", StrokeWidth: 0.5},
			drawing.ClassBorder:     {Stroke: "#dce6f2", StrokeWidth: 1.5},
			drawing.ClassBox:        {Stroke: "#ffffff", StrokeWidth: 1.5, Fill: "none"},
			drawing.ClassDiagonal:   {Stroke: "#7f9cc4", StrokeWidth: 1},
			drawing.ClassViewLabel:  {Fill: "#ffffff", FontSize: 13, FontWeight: "bold"},
			drawing.ClassDimShape:   {Stroke: "#8ec4ff", StrokeWidth: 1, Fill: "#8ec4ff", FontSize: 11},
			drawing.ClassDimSpace:   {Stroke: "#ff9e9e", StrokeWidth: 1, Fill: "#ff9e9e", FontSize: 11},
			drawing.ClassExtShape:   {Stroke: "#8ec4ff", StrokeWidth: 0.5, Dash: "2,3"},
			drawing.ClassExtSpace:   {Stroke: "#ff9e9e", StrokeWidth: 0.5, Dash: "2,3"},
		},
	}
}

// ByName looks up a theme by its name. The second return is false for
// unknown names.
func ByName(name string) (Theme, bool) {
	switch name {
	case "", "paper":
		return Paper(), true
	case "blueprint":
		return Blueprint(), true
	default:
		return Theme{}, false
	}
}
