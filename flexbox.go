// flexbox.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flexbox

import (
	"io"

	"github.com/ineffably/moxijs-sub006/internal/layout"
)

// Display controls whether a node participates in layout at all.
type Display = layout.Display

const (
	DisplayFlex = layout.DisplayFlex
	DisplayNone = layout.DisplayNone
)

// Position controls how a node is placed within its parent.
type Position = layout.Position

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Wrap specifies whether children may break into multiple flex lines.
type Wrap = layout.Wrap

const (
	NoWrap    = layout.NoWrap
	WrapLines = layout.WrapLines
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// AlignContent specifies how flex lines are distributed on the cross axis
// of a wrapping container.
type AlignContent = layout.AlignContent

const (
	AlignContentStretch      = layout.AlignContentStretch
	AlignContentStart        = layout.AlignContentStart
	AlignContentEnd          = layout.AlignContentEnd
	AlignContentCenter       = layout.AlignContentCenter
	AlignContentSpaceBetween = layout.AlignContentSpaceBetween
	AlignContentSpaceAround  = layout.AlignContentSpaceAround
	AlignContentSpaceEvenly  = layout.AlignContentSpaceEvenly
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// ErrMalformedValue is returned by ParseValue for invalid size strings.
var ErrMalformedValue = layout.ErrMalformedValue

// Style holds the layout properties for a node.
type Style = layout.Style

// Node represents an element in the layout tree.
type Node = layout.Node

// MeasureFunc reports the content size of a leaf node given the available
// content space.
type MeasureFunc = layout.MeasureFunc

// DirtyReason records why a node needs recomputation.
type DirtyReason = layout.DirtyReason

const (
	DirtyNone     = layout.DirtyNone
	DirtyStyle    = layout.DirtyStyle
	DirtyChildren = layout.DirtyChildren
	DirtySize     = layout.DirtySize
	DirtyPosition = layout.DirtyPosition
)

// ComputedLayout holds the final geometry computed for a node.
type ComputedLayout = layout.ComputedLayout

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Fixed creates a Value with a fixed pixel count.
func Fixed(n float64) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// Fill creates a Value that fills the parent's content dimension.
func Fill() Value {
	return layout.Fill()
}

// ParseValue converts a size string ("auto", "fill", "12", "50%") into a
// Value.
func ParseValue(s string) (Value, error) {
	return layout.Parse(s)
}

// MustParseValue is like ParseValue but panics on malformed input.
func MustParseValue(s string) Value {
	return layout.MustParse(s)
}

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// NewNode creates a new node with the given style.
func NewNode(style Style) *Node {
	return layout.NewNode(style)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Compute performs flexbox layout on the given tree.
func Compute(root *Node, availableWidth, availableHeight float64) {
	layout.Compute(root, availableWidth, availableHeight)
}

// DirtyRoot returns the topmost dirty ancestor of n, the node to pass to
// Compute after mutations so every invalidated ancestor is covered.
func DirtyRoot(n *Node) *Node {
	return layout.DirtyRoot(n)
}

// Walk visits every node in the subtree in depth-first pre-order.
// Returning false from fn skips the node's children.
func Walk(n *Node, fn func(n *Node, depth int) bool) {
	layout.Walk(n, fn)
}

// Dump writes an indented description of the subtree's computed geometry.
func Dump(w io.Writer, n *Node) {
	layout.Dump(w, n)
}

// DumpString is Dump into a string.
func DumpString(n *Node) string {
	return layout.DumpString(n)
}
