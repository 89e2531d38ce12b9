package hovertip

// PointerContext carries pointer enter/leave data.
type PointerContext struct {
	Node     *Node
	EntityID uint32
	UserData any
	GlobalX  float64
	GlobalY  float64
}

// --- ID counter ---

// nodeIDCounter is a plain counter. hovertip is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the scene graph element. Position and size are in local units;
// Scale multiplies this node's and its descendants' units into the parent's.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout (local)
	X, Y          float64
	Width, Height float64
	Scale         float64

	// Appearance
	Color Color
	Label string

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Metadata
	UserData any
	EntityID uint32

	// Tooltip capability. CreateTooltip builds the panel when the pointer
	// lands on this node; UpdateTooltip refreshes it once per frame.
	HasTooltip    bool
	CreateTooltip func(owner *Node) *Tooltip
	UpdateTooltip func(owner *Node, t *Tooltip)

	// Per-node callbacks (nil by default)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)

	// Internal
	tooltip     *Tooltip // set on tooltip panel nodes only
	layoutDirty bool
	disposed    bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Scale = 1
	n.Color = ColorWhite
	n.Visible = true
}

// NewContainer creates a node with no size. Containers are never hit by the
// pointer but still participate in the tooltip ancestor walk.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	n.Color = Color{}
	return n
}

// NewBox creates an interactable solid rectangle of the given size.
func NewBox(name string, w, h float64, c Color) *Node {
	n := &Node{Name: name, Width: w, Height: h}
	nodeDefaults(n)
	n.Color = c
	n.Interactable = true
	return n
}

// SetTooltipText gives the node a static text tooltip.
func (n *Node) SetTooltipText(text string) {
	n.HasTooltip = true
	n.CreateTooltip = func(owner *Node) *Tooltip {
		return NewTextTooltip(owner, text)
	}
	n.UpdateTooltip = nil
}

// SetTooltipFunc gives the node a text tooltip whose content is re-read from
// fn every frame while it is showing.
func (n *Node) SetTooltipFunc(fn func() string) {
	n.HasTooltip = true
	n.CreateTooltip = func(owner *Node) *Tooltip {
		return NewTextTooltip(owner, fn())
	}
	n.UpdateTooltip = func(_ *Node, t *Tooltip) {
		t.SetText(fn())
	}
}

// ClearTooltip removes the node's tooltip capability. An already showing
// tooltip stays until the next hover transition.
func (n *Node) ClearTooltip() {
	n.HasTooltip = false
	n.CreateTooltip = nil
	n.UpdateTooltip = nil
}

// IsTooltipPanel reports whether this node is the panel of a Tooltip.
func (n *Node) IsTooltipPanel() bool {
	return n.tooltip != nil
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("hovertip: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("hovertip: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("hovertip: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
	n.HasTooltip = false
	n.CreateTooltip = nil
	n.UpdateTooltip = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
