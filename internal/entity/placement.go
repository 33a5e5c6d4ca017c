package entity

import "image"

// Default print-area geometry of the garment mockups, in layer pixels.
var DefaultBounds = Bounds{Top: 101, Left: 125, Width: 150, Height: 150}

const DefaultMinSize = 50

// Bounds is the fixed print area on a mockup. Top and Left are measured
// from the mockup's top-left corner.
type Bounds struct {
	Top    int `mapstructure:"top" json:"top"`
	Left   int `mapstructure:"left" json:"left"`
	Width  int `mapstructure:"width" json:"width"`
	Height int `mapstructure:"height" json:"height"`
}

// Rect returns the print area in mockup coordinates.
func (b Bounds) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Left+b.Width, b.Top+b.Height)
}

func (b Bounds) Valid() bool {
	return b.Width > 0 && b.Height > 0 && b.Top >= 0 && b.Left >= 0
}

type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideFront, SideBack:
		return Side(s), nil
	}
	return "", ErrUnknownSide
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Direction string

const (
	AlignTop    Direction = "top"
	AlignRight  Direction = "right"
	AlignBottom Direction = "bottom"
	AlignLeft   Direction = "left"
)

type GestureKind string

const (
	GestureDragStart   GestureKind = "drag_start"
	GestureResizeStart GestureKind = "resize_start"
	GestureMove        GestureKind = "move"
	GestureEnd         GestureKind = "end"
	GestureCancel      GestureKind = "cancel"
)

// GestureEvent is one pointer event in page coordinates.
type GestureEvent struct {
	Kind GestureKind `json:"kind" binding:"required,oneof=drag_start resize_start move end cancel"`
	X    int         `json:"x"`
	Y    int         `json:"y"`
}
