package hovertip

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA for drawing.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, sizes and viewport dimensions.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Length is an optional style length. The zero value is unset.
type Length struct {
	Value float64
	Set   bool
}

// Px returns a set Length with the given value.
func Px(v float64) Length {
	return Length{Value: v, Set: true}
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventPointerEnter EventType = iota // pointer moved onto a node
	EventPointerLeave                  // pointer moved off a node
	EventTooltipShow                   // a tooltip was created for a node
	EventTooltipHide                   // the active tooltip was torn down
)

func (e EventType) String() string {
	switch e {
	case EventPointerEnter:
		return "pointer-enter"
	case EventPointerLeave:
		return "pointer-leave"
	case EventTooltipShow:
		return "tooltip-show"
	case EventTooltipHide:
		return "tooltip-hide"
	default:
		return "unknown"
	}
}

// InteractionEvent carries hover and tooltip data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	Name     string
	GlobalX  float64
	GlobalY  float64
}

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, hover and tooltip events are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}
