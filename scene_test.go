package hovertip

import "testing"

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.Tooltips() == nil {
		t.Fatal("tooltip system should not be nil")
	}
	if s.Tooltips().Config() != DefaultPlacementConfig() {
		t.Error("tooltip system should start with default placement")
	}
}

func TestSceneRoot(t *testing.T) {
	s := NewScene()
	if s.Root() != s.root {
		t.Error("Root() should return the internal root node")
	}
}

func TestSceneScreenSize(t *testing.T) {
	s := NewScene()
	s.SetScreenSize(640, 480)
	if got := s.ScreenSize(); got != (Vec2{640, 480}) {
		t.Errorf("ScreenSize = %v, want (640, 480)", got)
	}
	var vp Viewport = s
	if vp.ScreenSize() != s.ScreenSize() {
		t.Error("Scene should serve as the tooltip viewport")
	}
}

func TestSceneSetUIScale(t *testing.T) {
	s := NewScene()
	s.SetUIScale(2)
	child := NewContainer("c")
	s.Root().AddChild(child)
	if got := child.ScaleFromScreen(); got != 0.5 {
		t.Errorf("ScaleFromScreen = %v, want 0.5", got)
	}
}

func TestSceneSetEntityStore(t *testing.T) {
	s := NewScene()
	s.SetEntityStore(nil) // should not panic
	if s.store != nil || s.tooltips.store != nil {
		t.Error("store should be nil")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !s.tooltips.debug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug || s.tooltips.debug {
		t.Error("debug should be false")
	}
}

func TestSceneUIScalePlacement(t *testing.T) {
	s, c := newTestScene()
	s.SetUIScale(2)
	box := NewBox("box", 50, 50, ColorWhite) // 100x100 on screen
	box.SetTooltipText("hi")
	s.Root().AddChild(box)

	c.MoveTo(60, 90)
	s.Update()
	st := s.Tooltips().Active().Style
	if st.Left != Px(40) || st.Bottom != Px(265) {
		t.Errorf("Style = %+v, want Left 40 Bottom 265", st)
	}
}
