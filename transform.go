package hovertip

// Nodes carry translation and a uniform scale only. Screen space is the root's
// parent space, so the root's Scale is the UI scale.

// worldScale returns the product of Scale from n up to the root.
func worldScale(n *Node) float64 {
	s := 1.0
	for p := n; p != nil; p = p.Parent {
		s *= p.Scale
	}
	return s
}

// worldPosition returns the screen-space position of n's local origin.
func worldPosition(n *Node) Vec2 {
	if n.Parent == nil {
		return Vec2{X: n.X, Y: n.Y}
	}
	pp := worldPosition(n.Parent)
	ps := worldScale(n.Parent)
	return Vec2{X: pp.X + n.X*ps, Y: pp.Y + n.Y*ps}
}

// WorldRect returns the node's bounds in screen space.
func (n *Node) WorldRect() Rect {
	p := worldPosition(n)
	s := worldScale(n)
	return Rect{X: p.X, Y: p.Y, Width: n.Width * s, Height: n.Height * s}
}

// ScaleFromScreen returns the factor converting screen pixels to this node's
// local units. Zero-scale chains yield 0.
func (n *Node) ScaleFromScreen() float64 {
	s := worldScale(n)
	if s == 0 {
		return 0
	}
	return 1 / s
}
