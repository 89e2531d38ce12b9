package hovertip

import "fmt"

// Scene is the top-level object that owns the node tree, the cursor, the
// viewport size and the tooltip system.
type Scene struct {
	root     *Node
	tooltips *TooltipSystem
	cursor   Cursor
	screen   Vec2
	store    EntityStore
	debug    bool

	// ClearColor fills the screen at the start of Draw. The zero value
	// leaves the screen untouched.
	ClearColor Color

	// Input state
	handlers  handlerRegistry
	hoverNode *Node
	hitBuf    []*Node

	drawBuf []*Node

	testRunner *TestRunner
}

// NewScene creates a new scene with a pre-created root container, reading
// the live Ebitengine cursor.
func NewScene() *Scene {
	s := &Scene{
		root:   NewContainer("root"),
		cursor: ebitenCursor{},
	}
	s.tooltips = NewTooltipSystem(s.cursor, s)
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Tooltips returns the scene's tooltip system.
func (s *Scene) Tooltips() *TooltipSystem {
	return s.tooltips
}

// Update steps the test runner, processes hover input and repositions the
// active tooltip. Call once per frame.
func (s *Scene) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.tooltips.UpdatePlacement()
}

// SetCursor replaces the cursor source for both hit testing and placement.
func (s *Scene) SetCursor(c Cursor) {
	s.cursor = c
	s.tooltips.SetCursor(c)
}

// SetScreenSize sets the viewport size in screen pixels. Run calls this from
// Layout; hosts driving Update themselves must call it before the first frame.
func (s *Scene) SetScreenSize(w, h float64) {
	s.screen = Vec2{X: w, Y: h}
}

// ScreenSize implements Viewport.
func (s *Scene) ScreenSize() Vec2 {
	return s.screen
}

// SetUIScale sets how many screen pixels one root unit covers.
func (s *Scene) SetUIScale(scale float64) {
	s.root.Scale = scale
}

// ApplyConfig validates cfg and applies placement constants, UI scale and
// debug mode. An invalid config leaves the scene unchanged.
func (s *Scene) ApplyConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}
	s.tooltips.SetConfig(cfg.Placement)
	s.SetUIScale(cfg.UIScale)
	s.SetDebugMode(cfg.Debug)
	return nil
}

// SetEntityStore sets the optional ECS bridge. Hover and tooltip events are
// forwarded for nodes with a non-zero EntityID.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
	s.tooltips.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed and tooltip transitions are
// logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.tooltips.debug = enabled
	globalDebug = enabled
}
