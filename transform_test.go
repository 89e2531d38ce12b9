package hovertip

import "testing"

func TestWorldRect(t *testing.T) {
	root := NewContainer("root")
	root.X, root.Y = 10, 20
	root.Scale = 2
	mid := NewContainer("mid")
	mid.X, mid.Y = 5, 5
	leaf := NewBox("leaf", 30, 10, ColorWhite)
	leaf.X, leaf.Y = 1, 2
	leaf.Scale = 0.5
	root.AddChild(mid)
	mid.AddChild(leaf)

	tests := []struct {
		name string
		node *Node
		want Rect
	}{
		{"root", root, Rect{10, 20, 0, 0}},
		{"mid", mid, Rect{20, 30, 0, 0}},
		{"leaf", leaf, Rect{22, 34, 30, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.WorldRect(); got != tt.want {
				t.Errorf("WorldRect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleFromScreen(t *testing.T) {
	root := NewContainer("root")
	root.Scale = 4
	child := NewContainer("child")
	root.AddChild(child)

	if got := child.ScaleFromScreen(); got != 0.25 {
		t.Errorf("ScaleFromScreen = %v, want 0.25", got)
	}
	root.Scale = 0
	if got := child.ScaleFromScreen(); got != 0 {
		t.Errorf("zero-scale ScaleFromScreen = %v, want 0", got)
	}
}
