package hovertip

// SyntheticCursor is a Cursor driven by code instead of the mouse. Scripts
// and tests use it to move, hide and show the pointer frame by frame. The
// zero value sits at the origin and is hidden; use NewSyntheticCursor for a
// visible one.
type SyntheticCursor struct {
	pos     Vec2
	visible bool
}

// NewSyntheticCursor returns a visible cursor at (x, y).
func NewSyntheticCursor(x, y float64) *SyntheticCursor {
	return &SyntheticCursor{pos: Vec2{X: x, Y: y}, visible: true}
}

// MoveTo sets the cursor position in screen coordinates.
func (c *SyntheticCursor) MoveTo(x, y float64) {
	c.pos = Vec2{X: x, Y: y}
}

// Hide makes the cursor invisible.
func (c *SyntheticCursor) Hide() {
	c.visible = false
}

// Show makes the cursor visible.
func (c *SyntheticCursor) Show() {
	c.visible = true
}

// CursorPosition implements Cursor.
func (c *SyntheticCursor) CursorPosition() Vec2 {
	return c.pos
}

// CursorVisible implements Cursor.
func (c *SyntheticCursor) CursorVisible() bool {
	return c.visible
}
