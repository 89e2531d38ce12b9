package hovertip

import "strings"

// ebitenutil.DebugPrint glyph cell, in pixels.
const (
	glyphWidth   = 6
	glyphHeight  = 16
	panelPadding = 6
)

// TooltipBackground is the fill used for text tooltip panels.
var TooltipBackground = Color{R: 0.10, G: 0.10, B: 0.12, A: 0.92}

// Tooltip is a tooltip instance: a panel node attached under the hovered node
// plus the positioning style the placement pass writes each frame.
type Tooltip struct {
	// Style holds the panel's edge offsets in the panel's local units.
	Style Style

	owner    *Node
	panel    *Node
	viewport Vec2 // viewport used by the last placement pass
}

// NewTooltip wraps panel as a tooltip for owner. The panel is attached as a
// child of owner and made non-interactable so it never steals the hover.
func NewTooltip(owner, panel *Node) *Tooltip {
	t := &Tooltip{owner: owner, panel: panel}
	panel.Interactable = false
	panel.tooltip = t
	if owner != nil {
		owner.AddChild(panel)
	}
	return t
}

// NewTextTooltip creates a tooltip showing text. The panel has no size until
// Measure runs.
func NewTextTooltip(owner *Node, text string) *Tooltip {
	panel := NewContainer(owner.Name + "-tooltip")
	panel.Color = TooltipBackground
	panel.Label = text
	panel.layoutDirty = true
	return NewTooltip(owner, panel)
}

// Panel returns the tooltip's panel node.
func (t *Tooltip) Panel() *Node {
	return t.panel
}

// Owner returns the node the tooltip was created for.
func (t *Tooltip) Owner() *Node {
	return t.owner
}

// Delete removes the panel from the tree and disposes it. Removal is always
// immediate; animate is ignored.
func (t *Tooltip) Delete(animate bool) {
	if t == nil || t.panel == nil {
		return
	}
	t.panel.Dispose()
}

// IsValid reports whether the tooltip is non-nil and its panel is alive.
func (t *Tooltip) IsValid() bool {
	return t != nil && t.panel != nil && !t.panel.IsDisposed()
}

// ScaleFromScreen returns the panel's screen-to-local conversion factor.
func (t *Tooltip) ScaleFromScreen() float64 {
	return t.panel.ScaleFromScreen()
}

// Text returns the panel label.
func (t *Tooltip) Text() string {
	return t.panel.Label
}

// SetText replaces the panel label. The panel is remeasured on the next
// Measure call; until then the old size is kept.
func (t *Tooltip) SetText(text string) {
	if t.panel.Label == text {
		return
	}
	t.panel.Label = text
	t.panel.layoutDirty = true
}

// Measure sizes a text panel from its label. Only panels marked for layout
// (text tooltips after creation or SetText) are resized.
func (t *Tooltip) Measure() {
	p := t.panel
	if !p.layoutDirty {
		return
	}
	p.layoutDirty = false
	if p.Label == "" {
		p.Width, p.Height = 0, 0
		return
	}
	lines := strings.Split(p.Label, "\n")
	longest := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > longest {
			longest = n
		}
	}
	// Glyphs are drawn unscaled, so convert their pixel size to local units.
	k := p.ScaleFromScreen()
	if k == 0 {
		k = 1
	}
	p.Width = float64(longest*glyphWidth+2*panelPadding) * k
	p.Height = float64(len(lines)*glyphHeight+2*panelPadding) * k
}

// OuterRect returns the panel's bounds in screen pixels. Width and Height
// are zero until the panel has been measured. X and Y are resolved from
// Style against the viewport of the last placement pass.
func (t *Tooltip) OuterRect() Rect {
	s := worldScale(t.panel)
	w, h := t.panel.Width*s, t.panel.Height*s
	o := t.Style.ScreenOrigin(Vec2{X: w, Y: h}, t.viewport, t.ScaleFromScreen())
	return Rect{X: o.X, Y: o.Y, Width: w, Height: h}
}
