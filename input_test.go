package hovertip

import "testing"

func newTestScene() (*Scene, *SyntheticCursor) {
	s := NewScene()
	s.SetScreenSize(800, 600)
	c := NewSyntheticCursor(-100, -100)
	s.SetCursor(c)
	return s, c
}

// --- Hit testing ---

func TestHitTestTopmost(t *testing.T) {
	s, _ := newTestScene()
	bottom := NewBox("bottom", 100, 100, ColorWhite)
	top := NewBox("top", 50, 50, ColorWhite)
	top.X, top.Y = 25, 25
	s.Root().AddChild(bottom)
	s.Root().AddChild(top)

	tests := []struct {
		name string
		x, y float64
		want *Node
	}{
		{"overlap picks later sibling", 40, 40, top},
		{"only bottom", 5, 5, bottom},
		{"edge inclusive", 100, 100, bottom},
		{"miss", 150, 150, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.hitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("hitTest(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitTestSkips(t *testing.T) {
	s, _ := newTestScene()
	owner := NewBox("owner", 100, 100, ColorWhite)
	s.Root().AddChild(owner)

	hidden := NewBox("hidden", 100, 100, ColorWhite)
	hidden.Visible = false
	s.Root().AddChild(hidden)

	passive := NewBox("passive", 100, 100, ColorWhite)
	passive.Interactable = false
	s.Root().AddChild(passive)

	panel := NewBox("panel", 100, 100, ColorWhite)
	NewTooltip(owner, panel)

	if got := s.hitTest(50, 50); got != owner {
		t.Errorf("hitTest = %v, want owner", got)
	}
}

// --- Hover transitions ---

func TestSceneUpdateShowsAndHidesTooltip(t *testing.T) {
	s, c := newTestScene()
	box := NewBox("box", 100, 100, ColorWhite)
	box.X, box.Y = 100, 100
	box.SetTooltipText("hello")
	s.Root().AddChild(box)

	c.MoveTo(150, 150)
	s.Update()
	tt := s.Tooltips().Active()
	if !tt.IsValid() || tt.Owner() != box {
		t.Fatal("tooltip should be showing for box")
	}
	if tt.Style.Left != Px(170) || tt.Style.Bottom != Px(470) {
		t.Errorf("Style = %+v, want Left 170 Bottom 470", tt.Style)
	}

	c.MoveTo(400, 400)
	s.Update()
	if tt.IsValid() || s.Tooltips().Active() != nil {
		t.Error("tooltip should be gone after leaving box")
	}
}

func TestSceneUpdateChildDefersToAncestor(t *testing.T) {
	s, c := newTestScene()
	panel := NewBox("panel", 200, 200, ColorWhite)
	panel.SetTooltipText("panel")
	swatch := NewBox("swatch", 50, 50, ColorWhite)
	swatch.X, swatch.Y = 10, 10
	panel.AddChild(swatch)
	s.Root().AddChild(panel)

	c.MoveTo(150, 150)
	s.Update()
	first := s.Tooltips().Active()

	c.MoveTo(20, 20) // onto the swatch
	s.Update()
	if s.Tooltips().Active() != first || !first.IsValid() {
		t.Error("moving onto a child without a tooltip should keep the panel's tooltip")
	}
	if s.Tooltips().Hovered() != panel {
		t.Error("Hovered should stay panel")
	}
}

func TestSceneUpdateHiddenCursor(t *testing.T) {
	s, c := newTestScene()
	box := NewBox("box", 100, 100, ColorWhite)
	box.SetTooltipText("hello")
	s.Root().AddChild(box)

	c.MoveTo(50, 50)
	s.Update()
	c.Hide()
	s.Update()
	if s.Tooltips().Active() != nil || s.Tooltips().Hovered() != nil {
		t.Error("hidden cursor should clear the tooltip")
	}

	c.Show()
	s.Update()
	if !s.Tooltips().Active().IsValid() {
		t.Error("tooltip should come back when the cursor is shown over box")
	}
}

func TestPointerEnterLeave(t *testing.T) {
	s, c := newTestScene()
	a := NewBox("a", 50, 50, ColorWhite)
	b := NewBox("b", 50, 50, ColorWhite)
	b.X = 100
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	var log []string
	a.OnPointerEnter = func(ctx PointerContext) { log = append(log, "enter "+ctx.Node.Name) }
	a.OnPointerLeave = func(ctx PointerContext) { log = append(log, "leave "+ctx.Node.Name) }
	h := s.OnPointerEnter(func(ctx PointerContext) { log = append(log, "scene enter "+ctx.Node.Name) })
	s.OnPointerLeave(func(ctx PointerContext) { log = append(log, "scene leave "+ctx.Node.Name) })

	c.MoveTo(10, 10)
	s.Update()
	s.Update() // same target: nothing fires
	c.MoveTo(110, 10)
	s.Update()
	h.Remove()
	c.MoveTo(300, 300)
	s.Update()

	want := []string{
		"scene enter a", "enter a",
		"scene leave a", "leave a", "scene enter b",
		"scene leave b",
	}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestSceneEmitsPointerEvents(t *testing.T) {
	s, c := newTestScene()
	store := &recordingStore{}
	s.SetEntityStore(store)
	box := NewBox("box", 50, 50, ColorWhite)
	box.EntityID = 3
	s.Root().AddChild(box)

	c.MoveTo(10, 10)
	s.Update()
	c.MoveTo(300, 300)
	s.Update()

	if len(store.events) != 2 {
		t.Fatalf("got %d events, want 2", len(store.events))
	}
	if store.events[0].Type != EventPointerEnter || store.events[1].Type != EventPointerLeave {
		t.Errorf("events = %+v", store.events)
	}
	if store.events[1].GlobalX != 300 {
		t.Errorf("leave GlobalX = %v, want 300", store.events[1].GlobalX)
	}
}

func TestCallbackHandleRemoveZero(t *testing.T) {
	var h CallbackHandle
	h.Remove() // must not panic
}
