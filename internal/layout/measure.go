package layout

import "sort"

// FlexItem is a child's slot in a flex line. Base sizes are hypothetical
// outer sizes (margin included) from Pass 2; Main/CrossSize are the final
// outer sizes filled in by Pass 3's grow/shrink distribution.
type FlexItem struct {
	Node      *Node
	BaseMain  float64
	BaseCross float64
	MainSize  float64
	CrossSize float64

	frozen bool // Set when clamped during redistribution
}

// FlexLine is an ordered group of items laid out together on the main axis.
type FlexLine struct {
	Items     []*FlexItem
	MainSize  float64 // Sum of item base sizes plus gaps
	CrossSize float64 // Max of item base cross sizes
}

// MeasuredLayout is the Pass 2 output: the node's hypothetical border-box
// size before grow/shrink, and for containers the flex lines its children
// were grouped into.
type MeasuredLayout struct {
	Width, Height float64
	Lines         []*FlexLine

	// lineMain is the available main-axis content space the lines were
	// built against; Pass 3 rebuilds them if the final size differs.
	lineMain float64
}

// measureTree runs Pass 2 bottom-up: children are measured before their
// container's lines are finalized. availW/availH is the space the parent
// can allocate to this node's border box.
func measureTree(n *Node, availW, availH float64) {
	rs := n.resolved
	if rs == nil {
		return // display:none
	}

	contentW := nonNegative(rs.Width.Or(availW) - rs.Padding.Horizontal())
	contentH := nonNegative(rs.Height.Or(availH) - rs.Padding.Vertical())

	for _, child := range n.children {
		measureTree(child, contentW, contentH)
	}

	ml := &MeasuredLayout{}

	if len(n.children) == 0 {
		// Leaf: static intrinsic size, measurement callback, or empty
		// content. Absent measurement is valid, not an error.
		var content Size
		switch {
		case n.intrinsic != nil:
			content = *n.intrinsic
		case n.measure != nil:
			content = n.measure(contentW, contentH)
		}
		ml.Width = rs.Width.Or(content.Width + rs.Padding.Horizontal())
		ml.Height = rs.Height.Or(content.Height + rs.Padding.Vertical())
	} else {
		isRow := n.Style.Direction == Row
		availMain := contentW
		if !isRow {
			availMain = contentH
		}
		ml.Lines = buildLines(n, availMain)
		ml.lineMain = availMain

		// Hypothetical container size from its lines, for auto dimensions.
		var maxMain, sumCross float64
		for i, line := range ml.Lines {
			if line.MainSize > maxMain {
				maxMain = line.MainSize
			}
			sumCross += line.CrossSize
			if i > 0 {
				sumCross += rs.CrossGap
			}
		}
		if isRow {
			ml.Width = rs.Width.Or(maxMain + rs.Padding.Horizontal())
			ml.Height = rs.Height.Or(sumCross + rs.Padding.Vertical())
		} else {
			ml.Width = rs.Width.Or(sumCross + rs.Padding.Horizontal())
			ml.Height = rs.Height.Or(maxMain + rs.Padding.Vertical())
		}
	}

	ml.Width = clampDim(nonNegative(ml.Width), rs.MinWidth, rs.MaxWidth)
	ml.Height = clampDim(nonNegative(ml.Height), rs.MinHeight, rs.MaxHeight)
	n.measured = ml
}

// buildLines groups the node's in-flow children into flex lines against the
// given available main-axis space. A new line starts whenever wrapping is on
// and the next item's base size would exceed the remaining line space;
// nowrap always yields a single line that may overflow.
func buildLines(n *Node, availMain float64) []*FlexLine {
	isRow := n.Style.Direction == Row
	rs := n.resolved

	flow := make([]*Node, 0, len(n.children))
	for _, child := range n.children {
		if child.Style.Display == DisplayNone || child.Style.Position == PositionAbsolute {
			continue
		}
		flow = append(flow, child)
	}
	sort.SliceStable(flow, func(i, j int) bool {
		return flow[i].Style.Order < flow[j].Style.Order
	})

	if len(flow) == 0 {
		return nil
	}

	wrapping := n.Style.Wrap == WrapLines
	var lines []*FlexLine
	var line *FlexLine

	for _, child := range flow {
		item := newFlexItem(child, isRow)

		if line != nil && wrapping && line.MainSize+rs.MainGap+item.BaseMain > availMain {
			lines = append(lines, line)
			line = nil
		}
		if line == nil {
			line = &FlexLine{Items: []*FlexItem{item}, MainSize: item.BaseMain}
		} else {
			line.Items = append(line.Items, item)
			line.MainSize += rs.MainGap + item.BaseMain
		}
		if item.BaseCross > line.CrossSize {
			line.CrossSize = item.BaseCross
		}
	}
	return append(lines, line)
}

// newFlexItem computes a child's hypothetical outer sizes for line assembly.
// The base main size is the resolved flex basis, or the child's measured
// size when the basis is auto, clamped to the child's min/max and with
// margin added (items occupy their outer box in the flex calculation).
func newFlexItem(child *Node, isRow bool) *FlexItem {
	rs := child.resolved
	ml := child.measured

	var base, cross float64
	var mainMargin, crossMargin float64
	if isRow {
		base = rs.Basis.Or(ml.Width)
		base = clampDim(base, rs.MinWidth, rs.MaxWidth)
		cross = ml.Height
		mainMargin = rs.Margin.Horizontal()
		crossMargin = rs.Margin.Vertical()
	} else {
		base = rs.Basis.Or(ml.Height)
		base = clampDim(base, rs.MinHeight, rs.MaxHeight)
		cross = ml.Width
		mainMargin = rs.Margin.Vertical()
		crossMargin = rs.Margin.Horizontal()
	}

	return &FlexItem{
		Node:      child,
		BaseMain:  base + mainMargin,
		BaseCross: cross + crossMargin,
	}
}

// clampDim restricts v to [minD, maxD]; auto bounds are open.
// When min > max, min wins (CSS behavior).
func clampDim(v float64, minD, maxD Dim) float64 {
	if !maxD.Auto && v > maxD.Px {
		v = maxD.Px
	}
	if !minD.Auto && v < minD.Px {
		v = minD.Px
	}
	return v
}
