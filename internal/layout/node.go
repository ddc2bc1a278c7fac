package layout

// DirtyReason records why a node needs recomputation.
type DirtyReason uint8

const (
	DirtyNone     DirtyReason = iota // Clean; computed state is current
	DirtyStyle                       // Style was replaced
	DirtyChildren                    // Child list changed
	DirtySize                        // Intrinsic size or measure func changed
	DirtyPosition                    // Placement inputs changed
)

// String returns the reason name as used in debug output.
func (r DirtyReason) String() string {
	switch r {
	case DirtyNone:
		return "none"
	case DirtyStyle:
		return "style"
	case DirtyChildren:
		return "children"
	case DirtySize:
		return "size"
	case DirtyPosition:
		return "position"
	default:
		return "unknown"
	}
}

// MeasureFunc reports the content size of a leaf node given the available
// content space. It must be pure with respect to its inputs: the engine may
// invoke it more than once per compute (e.g. when a wrap or stretch decision
// requires re-measuring at a different width) and requires identical inputs
// to produce identical outputs.
type MeasureFunc func(availableWidth, availableHeight float64) Size

// Node represents an element in the layout tree.
//
// The parent exclusively owns the child list; children hold a non-owning
// back-reference used for dirty propagation. A node carries at most one leaf
// size source: a static intrinsic size or a measure func. A node with
// neither and no children lays out as empty content, which is valid.
type Node struct {
	// ID is an optional label surfaced in debug output.
	ID string

	// Style holds the layout inputs. Replace via SetStyle so the change
	// is tracked; direct mutation requires a manual MarkDirty.
	Style Style

	children []*Node
	parent   *Node

	intrinsic *Size
	measure   MeasureFunc

	dirty DirtyReason

	// Derived state, one record per pass. Each is written once per compute
	// and nil when the node was skipped (display:none or not yet visited).
	resolved *ResolvedStyle
	measured *MeasuredLayout
	computed *ComputedLayout
}

// NewNode creates a new node with the given style.
func NewNode(style Style) *Node {
	return &Node{
		Style: style,
		dirty: DirtyStyle, // New nodes have no resolved state yet
	}
}

// Children returns the node's children in layout order.
// The returned slice is owned by the node and must not be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the node this node is attached to, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// AddChild appends children, marking this node's child list dirty and each
// inserted node style-dirty (it has no resolved state under this parent).
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		child.parent = n
		child.MarkDirty(DirtyStyle)
		n.children = append(n.children, child)
	}
	n.MarkDirty(DirtyChildren)
}

// InsertChild inserts a child at index i, shifting later siblings. An index
// past the end appends.
func (n *Node) InsertChild(i int, child *Node) {
	if i < 0 {
		i = 0
	}
	if i > len(n.children) {
		i = len(n.children)
	}
	child.parent = n
	child.MarkDirty(DirtyStyle)
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	n.MarkDirty(DirtyChildren)
}

// RemoveChild removes a child by pointer, preserving sibling order.
// Returns true if the child was found and removed. The detached child keeps
// its style but drops its derived state.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			child.resolved = nil
			child.measured = nil
			child.computed = nil
			n.MarkDirty(DirtyChildren)
			return true
		}
	}
	return false
}

// SetStyle replaces the style and marks the node dirty.
func (n *Node) SetStyle(style Style) {
	n.Style = style
	n.MarkDirty(DirtyStyle)
}

// SetIntrinsicSize gives the node a static content size and clears any
// measure func (a node has at most one leaf size source).
func (n *Node) SetIntrinsicSize(width, height float64) {
	n.intrinsic = &Size{Width: width, Height: height}
	n.measure = nil
	n.MarkDirty(DirtySize)
}

// IntrinsicSize returns the static content size, if one is set.
func (n *Node) IntrinsicSize() (Size, bool) {
	if n.intrinsic == nil {
		return Size{}, false
	}
	return *n.intrinsic, true
}

// SetMeasureFunc installs a content measurement callback and clears any
// intrinsic size.
func (n *Node) SetMeasureFunc(fn MeasureFunc) {
	n.measure = fn
	n.intrinsic = nil
	n.MarkDirty(DirtySize)
}

// MarkDirty records the reason on this node and walks ancestors, stopping at
// the first already-dirty ancestor. Repeated calls are idempotent; an
// already-dirty node keeps its original reason.
func (n *Node) MarkDirty(reason DirtyReason) {
	if reason == DirtyNone {
		return
	}
	if n.dirty == DirtyNone {
		n.dirty = reason
	}
	for node := n.parent; node != nil && node.dirty == DirtyNone; node = node.parent {
		node.dirty = reason
	}
}

// IsDirty returns whether this node needs recomputation.
func (n *Node) IsDirty() bool {
	return n.dirty != DirtyNone
}

// Dirty returns the recorded dirty reason.
func (n *Node) Dirty() DirtyReason {
	return n.dirty
}

// Resolved returns the Pass 1 output, or nil if the node has not been
// resolved (never computed, or display:none).
func (n *Node) Resolved() *ResolvedStyle {
	return n.resolved
}

// Measured returns the Pass 2 output, or nil if absent.
func (n *Node) Measured() *MeasuredLayout {
	return n.measured
}

// Computed returns the Pass 3 output, or nil if the node was skipped
// (display:none) or has never been computed.
func (n *Node) Computed() *ComputedLayout {
	return n.computed
}

// DirtyRoot walks up from n and returns the topmost dirty node on the
// ancestor chain, the node a caller should pass to Compute to cover every
// invalidated ancestor. Returns n itself when nothing on the chain is dirty.
func DirtyRoot(n *Node) *Node {
	top := n
	for node := n; node != nil; node = node.parent {
		if node.IsDirty() {
			top = node
		}
	}
	return top
}
