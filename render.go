package hovertip

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the node tree as filled rectangles with their labels, then the
// active tooltip on top. Drawing is also the layout pass for text tooltips:
// a panel created this frame is measured here, so the next placement pass
// uses its real size.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	s.drawBuf = collectDrawable(s.root, s.drawBuf[:0])
	for _, n := range s.drawBuf {
		drawRect(screen, n.WorldRect(), n.Color, n.Label)
	}

	tt := s.tooltips.Active()
	if !tt.IsValid() {
		return
	}
	tt.Measure()
	drawTooltip(screen, tt)
}

// collectDrawable walks the tree in painter order, appending visible nodes to
// buf. Tooltip panels are skipped; Draw renders the active one last.
func collectDrawable(n *Node, buf []*Node) []*Node {
	if !n.Visible || n.tooltip != nil {
		return buf
	}
	buf = append(buf, n)
	for _, child := range n.children {
		buf = collectDrawable(child, buf)
	}
	return buf
}

// drawTooltip draws the panel at the position its Style resolves to.
func drawTooltip(screen *ebiten.Image, tt *Tooltip) {
	p := tt.Panel()
	if !p.Visible {
		return
	}
	drawRect(screen, tt.OuterRect(), p.Color, p.Label)
}

func drawRect(screen *ebiten.Image, r Rect, c Color, label string) {
	if r.Width > 0 && r.Height > 0 && c.A > 0 {
		vector.DrawFilledRect(screen,
			float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			c.toRGBA(), false)
	}
	if label != "" {
		ebitenutil.DebugPrintAt(screen, label, int(r.X)+panelPadding, int(r.Y)+panelPadding)
	}
}
