package hovertip

import "github.com/hajimehoshi/ebiten/v2"

// Cursor reports the mouse cursor in screen coordinates.
type Cursor interface {
	CursorPosition() Vec2
	CursorVisible() bool
}

// ebitenCursor reads the live Ebitengine cursor.
type ebitenCursor struct{}

func (ebitenCursor) CursorPosition() Vec2 {
	x, y := ebiten.CursorPosition()
	return Vec2{X: float64(x), Y: float64(y)}
}

func (ebitenCursor) CursorVisible() bool {
	return ebiten.CursorMode() == ebiten.CursorModeVisible
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerEnter:
		h.reg.pointerEnter = removePointerHandler(h.reg.pointerEnter, h.id)
	case EventPointerLeave:
		h.reg.pointerLeave = removePointerHandler(h.reg.pointerLeave, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnPointerEnter registers a scene-level callback fired when the pointer
// moves onto a new node.
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.pointerEnter = append(s.handlers.pointerEnter, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerEnter}
}

// OnPointerLeave registers a scene-level callback fired when the pointer
// leaves a node (to another node or to empty space).
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.pointerLeave = append(s.handlers.pointerLeave, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerLeave}
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order (DFS, child order),
// appending hit-testable nodes to buf. Invisible subtrees and tooltip panels
// are skipped.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || n.tooltip != nil {
		return buf
	}
	if n.Interactable && n.Width > 0 && n.Height > 0 {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (x, y) in screen space.
// Returns nil if nothing is hit.
func (s *Scene) hitTest(x, y float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		if n.WorldRect().Contains(x, y) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput hit-tests the cursor, fires enter/leave on a target change and
// reports the new target to the tooltip system. A hidden cursor targets
// nothing.
func (s *Scene) processInput() {
	pos := s.cursor.CursorPosition()

	var target *Node
	if s.cursor.CursorVisible() {
		target = s.hitTest(pos.X, pos.Y)
	}

	if target == s.hoverNode {
		return
	}
	if prev := s.hoverNode; prev != nil && !prev.IsDisposed() {
		s.firePointer(EventPointerLeave, prev, pos)
	}
	if target != nil {
		s.firePointer(EventPointerEnter, target, pos)
	}
	s.hoverNode = target
	s.tooltips.SetHovered(target)
}

// --- Event dispatch ---

func (s *Scene) firePointer(eventType EventType, node *Node, pos Vec2) {
	ctx := PointerContext{
		Node: node, EntityID: node.EntityID, UserData: node.UserData,
		GlobalX: pos.X, GlobalY: pos.Y,
	}
	switch eventType {
	case EventPointerEnter:
		// Scene-level handlers first.
		for _, h := range s.handlers.pointerEnter {
			h.fn(ctx)
		}
		if node.OnPointerEnter != nil {
			node.OnPointerEnter(ctx)
		}
	case EventPointerLeave:
		for _, h := range s.handlers.pointerLeave {
			h.fn(ctx)
		}
		if node.OnPointerLeave != nil {
			node.OnPointerLeave(ctx)
		}
	}
	s.emitInteractionEvent(eventType, node, pos)
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvent(eventType EventType, node *Node, pos Vec2) {
	if s.store == nil || node == nil || node.EntityID == 0 {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:     eventType,
		EntityID: node.EntityID,
		Name:     node.Name,
		GlobalX:  pos.X,
		GlobalY:  pos.Y,
	})
}
