package hovertip

import "weak"

// maxAncestorWalk bounds the ancestor walk in SetHovered. AddChild rejects
// cycles, so only a corrupted tree can reach it.
const maxAncestorWalk = 1 << 12

// Viewport reports the size of the screen the tooltip must stay inside.
type Viewport interface {
	ScreenSize() Vec2
}

// TooltipSystem tracks the hovered node and owns the single active tooltip.
// It is not safe for concurrent use; SetHovered and UpdatePlacement must be
// called from the same goroutine as the rest of the scene.
type TooltipSystem struct {
	hovered weak.Pointer[Node]
	active  *Tooltip

	cursor   Cursor
	viewport Viewport
	config   PlacementConfig
	store    EntityStore
	debug    bool
}

// NewTooltipSystem creates a tooltip system reading the cursor and viewport
// from the given collaborators, with the default placement constants.
func NewTooltipSystem(cursor Cursor, viewport Viewport) *TooltipSystem {
	return &TooltipSystem{
		cursor:   cursor,
		viewport: viewport,
		config:   DefaultPlacementConfig(),
	}
}

// SetCursor replaces the cursor collaborator.
func (t *TooltipSystem) SetCursor(c Cursor) {
	t.cursor = c
}

// SetConfig replaces the placement constants.
func (t *TooltipSystem) SetConfig(cfg PlacementConfig) {
	t.config = cfg
}

// Config returns the placement constants in use.
func (t *TooltipSystem) Config() PlacementConfig {
	return t.config
}

// Hovered returns the tracked node, or nil if none is tracked or it has
// been disposed or collected.
func (t *TooltipSystem) Hovered() *Node {
	n := t.hovered.Value()
	if n == nil || n.IsDisposed() {
		return nil
	}
	return n
}

// Active returns the active tooltip, or nil.
func (t *TooltipSystem) Active() *Tooltip {
	return t.active
}

// SetHovered reports a hover transition. The nearest ancestor of candidate
// (or candidate itself) with HasTooltip becomes the hovered node and gets a
// fresh tooltip. A nil candidate, or a chain without a capable node, clears
// both the hovered node and the tooltip. Repeating the current node is a no-op.
func (t *TooltipSystem) SetHovered(candidate *Node) {
	for hops := 0; ; hops++ {
		if candidate != nil && candidate.IsDisposed() {
			candidate = nil
		}
		if candidate == t.hovered.Value() {
			return
		}

		if candidate == nil {
			t.hovered = weak.Pointer[Node]{}
			t.teardown()
			return
		}

		if !candidate.HasTooltip {
			if hops >= maxAncestorWalk {
				t.debugf("ancestor walk exceeded %d hops at %q", maxAncestorWalk, candidate.Name)
				candidate = nil
				continue
			}
			candidate = candidate.Parent
			continue
		}

		t.hovered = weak.Make(candidate)
		t.teardown()
		t.show(candidate)
		return
	}
}

// UpdatePlacement runs once per frame. It drops the tooltip when the cursor
// is hidden, lets the hovered node refresh the content, and repositions the
// panel next to the cursor.
func (t *TooltipSystem) UpdatePlacement() {
	if !t.active.IsValid() {
		if t.active != nil {
			t.active = nil
			if t.Hovered() == nil {
				t.hovered = weak.Pointer[Node]{}
			}
		}
		return
	}

	if t.cursor == nil || !t.cursor.CursorVisible() {
		t.teardown()
		t.hovered = weak.Pointer[Node]{}
		return
	}

	if h := t.Hovered(); h != nil && h.UpdateTooltip != nil {
		h.UpdateTooltip(h, t.active)
		if !t.active.IsValid() {
			return
		}
	}

	var viewport Vec2
	if t.viewport != nil {
		viewport = t.viewport.ScreenSize()
	}
	tt := t.active
	s := worldScale(tt.panel)
	size := Vec2{X: tt.panel.Width * s, Y: tt.panel.Height * s}

	Solve(t.cursor.CursorPosition(), size, viewport, t.config).
		Apply(&tt.Style, tt.ScaleFromScreen())
	tt.viewport = viewport
}

// show creates the tooltip for owner and places it right away so it never
// draws at a stale position.
func (t *TooltipSystem) show(owner *Node) {
	if owner.CreateTooltip == nil {
		return
	}
	tt := owner.CreateTooltip(owner)
	if tt == nil {
		return
	}
	t.active = tt
	t.debugf("tooltip show: %q", owner.Name)
	t.emit(EventTooltipShow, owner)
	t.UpdatePlacement()
}

// teardown deletes the active tooltip, if any, without animation.
func (t *TooltipSystem) teardown() {
	if t.active == nil {
		return
	}
	tt := t.active
	t.active = nil
	tt.Delete(false)
	if owner := tt.Owner(); owner != nil {
		t.debugf("tooltip hide: %q", owner.Name)
		t.emit(EventTooltipHide, owner)
	}
}

func (t *TooltipSystem) emit(eventType EventType, node *Node) {
	if t.store == nil || node == nil || node.EntityID == 0 {
		return
	}
	var pos Vec2
	if t.cursor != nil {
		pos = t.cursor.CursorPosition()
	}
	t.store.EmitEvent(InteractionEvent{
		Type:     eventType,
		EntityID: node.EntityID,
		Name:     node.Name,
		GlobalX:  pos.X,
		GlobalY:  pos.Y,
	})
}

func (t *TooltipSystem) debugf(format string, args ...any) {
	if t.debug {
		debugLogf(format, args...)
	}
}
