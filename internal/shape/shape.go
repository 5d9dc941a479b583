// Package shape adapts a text view that knows nothing about shapes to the
// Shape interface drawing editors expect.
package shape

import "fmt"

// Point is a position in drawing coordinates.
type Point struct {
	X, Y float64
}

// Size is a width and height in drawing coordinates.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned box given by two corners.
type Rect struct {
	BottomLeft Point
	TopRight   Point
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.BottomLeft.X, r.BottomLeft.Y, r.TopRight.X, r.TopRight.Y)
}

// Manipulator drags a shape around an editor.
type Manipulator struct {
	target Shape
}

// Target returns the shape the manipulator acts on.
func (m *Manipulator) Target() Shape { return m.target }

// Shape is anything an editor can lay out and manipulate.
type Shape interface {
	BoundingBox() Rect
	CreateManipulator() *Manipulator
}

// Base supplies the default shape behaviour: a zero bounding box and a plain
// manipulator. Embed it and override what differs.
type Base struct{}

// BoundingBox returns the zero rectangle.
func (Base) BoundingBox() Rect { return Rect{} }

// CreateManipulator returns a manipulator with no target.
func (Base) CreateManipulator() *Manipulator { return &Manipulator{} }

// TextView is the adaptee. It reports its own geometry through origin and
// extent rather than a bounding box.
type TextView struct {
	origin Point
	extent Size
	empty  bool
}

// NewTextView returns a non-empty view at (10,10) with a 10x10 extent.
func NewTextView() *TextView {
	return &TextView{origin: Point{X: 10, Y: 10}, extent: Size{Width: 10, Height: 10}}
}

// NewTextViewAt returns a view with the given geometry.
func NewTextViewAt(origin Point, extent Size, empty bool) *TextView {
	return &TextView{origin: origin, extent: extent, empty: empty}
}

func (v *TextView) Origin() Point { return v.origin }
func (v *TextView) Extent() Size  { return v.extent }
func (v *TextView) IsEmpty() bool { return v.empty }

// TextShape is an object adapter: it holds a TextView and presents it as a
// Shape.
type TextShape struct {
	Base
	view *TextView
}

// NewTextShape adapts view.
//
// Precondition: view must be non-nil.
func NewTextShape(view *TextView) *TextShape {
	return &TextShape{view: view}
}

// BoundingBox converts the view's origin and extent to corners. The bottom
// edge is taken from origin.X and the left edge from origin.Y; the far corner
// adds the extent's height and width respectively.
func (s *TextShape) BoundingBox() Rect {
	origin := s.view.Origin()
	extent := s.view.Extent()
	bottom, left := origin.X, origin.Y
	return Rect{
		BottomLeft: Point{X: bottom, Y: left},
		TopRight:   Point{X: bottom + extent.Height, Y: left + extent.Width},
	}
}

// CreateManipulator returns a manipulator targeting s.
func (s *TextShape) CreateManipulator() *Manipulator {
	return &Manipulator{target: s}
}

// IsEmpty forwards to the adapted view.
func (s *TextShape) IsEmpty() bool { return s.view.IsEmpty() }
