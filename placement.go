package hovertip

// Style holds a panel's edge offsets. At most one of Left/Right and one of
// Top/Bottom is set after a placement pass.
type Style struct {
	Left, Right, Top, Bottom Length
}

// Reset unsets all four offsets.
func (s *Style) Reset() {
	*s = Style{}
}

// ScreenOrigin resolves the style to the top-left corner of a box of the given
// screen size inside viewport. scaleFromScreen converts screen pixels to the
// style's units; a zero factor resolves to the origin.
func (s Style) ScreenOrigin(size, viewport Vec2, scaleFromScreen float64) Vec2 {
	if scaleFromScreen == 0 {
		return Vec2{}
	}
	var o Vec2
	switch {
	case s.Left.Set:
		o.X = s.Left.Value / scaleFromScreen
	case s.Right.Set:
		o.X = viewport.X - s.Right.Value/scaleFromScreen - size.X
	}
	switch {
	case s.Top.Set:
		o.Y = s.Top.Value / scaleFromScreen
	case s.Bottom.Set:
		o.Y = viewport.Y - s.Bottom.Value/scaleFromScreen - size.Y
	}
	return o
}

// PlacementConfig holds the placement constants, in screen pixels.
type PlacementConfig struct {
	// Margin is the minimum gap kept between the tooltip and the viewport edge.
	Margin float64 `yaml:"margin"`
	// Offset is the gap between the cursor and the tooltip.
	Offset float64 `yaml:"offset"`
	// DefaultWidth and DefaultHeight stand in for a dimension that has not
	// been measured yet.
	DefaultWidth  float64 `yaml:"default_width"`
	DefaultHeight float64 `yaml:"default_height"`
}

// DefaultPlacementConfig returns margin 20, offset 20 and a 200x50 estimate.
func DefaultPlacementConfig() PlacementConfig {
	return PlacementConfig{
		Margin:        20,
		Offset:        20,
		DefaultWidth:  200,
		DefaultHeight: 50,
	}
}

// Placement is a solved tooltip position in screen pixels.
type Placement struct {
	Left, Right, Top, Bottom Length
}

// resolveSize substitutes the default estimate for each zero dimension.
func (c PlacementConfig) resolveSize(size Vec2) Vec2 {
	if size.X <= 0 {
		size.X = c.DefaultWidth
	}
	if size.Y <= 0 {
		size.Y = c.DefaultHeight
	}
	return size
}

// Solve places a tooltip of the given size near cursor inside viewport.
//
// Horizontally it prefers right of the cursor, then left, and otherwise clamps
// the left edge to viewport.X-width-margin. Vertically it prefers above the
// cursor, then below, and otherwise clamps the top edge to
// viewport.Y-height-margin. The axes are solved independently. Clamped values
// may be negative.
func Solve(cursor, size, viewport Vec2, cfg PlacementConfig) Placement {
	size = cfg.resolveSize(size)
	var p Placement

	switch {
	case cursor.X+cfg.Offset+size.X+cfg.Margin <= viewport.X:
		p.Left = Px(cursor.X + cfg.Offset)
	case cursor.X-cfg.Offset-size.X-cfg.Margin >= 0:
		p.Right = Px(viewport.X - (cursor.X - cfg.Offset))
	default:
		p.Left = Px(viewport.X - size.X - cfg.Margin)
	}

	switch {
	case cursor.Y-cfg.Offset-size.Y-cfg.Margin >= 0:
		p.Bottom = Px(viewport.Y - (cursor.Y - cfg.Offset))
	case cursor.Y+cfg.Offset+size.Y+cfg.Margin <= viewport.Y:
		p.Top = Px(cursor.Y + cfg.Offset)
	default:
		p.Top = Px(viewport.Y - size.Y - cfg.Margin)
	}

	return p
}

// Apply resets style and writes the placement into it, multiplying every set
// offset by scale.
func (p Placement) Apply(style *Style, scale float64) {
	style.Reset()
	style.Left = p.Left.scaled(scale)
	style.Right = p.Right.scaled(scale)
	style.Top = p.Top.scaled(scale)
	style.Bottom = p.Bottom.scaled(scale)
}

func (l Length) scaled(k float64) Length {
	if !l.Set {
		return Length{}
	}
	return Px(l.Value * k)
}
