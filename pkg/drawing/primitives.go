package drawing

// Class tags a primitive with its visual role. Sinks resolve classes to
// concrete stroke, fill, dash and font attributes through a theme; the
// engine itself knows nothing about colors.
type Class string

const (
	ClassBackground Class = "background"
	ClassGrid       Class = "grid"
	ClassBorder     Class = "border"
	ClassBox        Class = "box"
	ClassDiagonal   Class = "diagonal"
	ClassViewLabel  Class = "view-label"
	ClassDimShape   Class = "dim-shape"
	ClassDimSpace   Class = "dim-space"
	ClassExtShape   Class = "ext-shape"
	ClassExtSpace   Class = "ext-space"
)

// Anchor is the horizontal text anchor of a label.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Primitive is one drawable element of the composed drawing. Exactly one
// of the shape fields is used, selected by Kind.
type Primitive struct {
	Kind  PrimitiveKind `json:"kind"`
	Class Class         `json:"class"`

	Rect  *Box     `json:"rect,omitempty"`
	Line  *Segment `json:"line,omitempty"`
	Label *Label   `json:"label,omitempty"`
}

// PrimitiveKind discriminates the primitive variants.
type PrimitiveKind string

const (
	KindRect  PrimitiveKind = "rect"
	KindLine  PrimitiveKind = "line"
	KindLabel PrimitiveKind = "label"
)

// Label is a positioned text primitive.
type Label struct {
	Text     string `json:"text"`
	Position Point  `json:"position"`
	Anchor   Anchor `json:"anchor"`
}

// Canvas accumulates primitives in draw order. A fresh canvas is created
// for every compose pass and handed to the caller; there is no shared
// drawing surface.
type Canvas struct {
	prims []Primitive
}

// NewCanvas returns an empty accumulator.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Rect appends a rectangle with the given class.
func (c *Canvas) Rect(class Class, b Box) {
	c.prims = append(c.prims, Primitive{Kind: KindRect, Class: class, Rect: &b})
}

// Line appends a line segment with the given class.
func (c *Canvas) Line(class Class, from, to Point) {
	c.prims = append(c.prims, Primitive{Kind: KindLine, Class: class, Line: &Segment{From: from, To: to}})
}

// Label appends a text label with the given class.
func (c *Canvas) Label(class Class, l Label) {
	c.prims = append(c.prims, Primitive{Kind: KindLabel, Class: class, Label: &l})
}

// Primitives returns the accumulated list in insertion order.
func (c *Canvas) Primitives() []Primitive {
	return c.prims
}
