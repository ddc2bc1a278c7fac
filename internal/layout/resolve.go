package layout

// Dim is a dimension after percentage resolution: a concrete pixel value or
// auto (still content-determined). ResolvedStyle holds only Dims, so nothing
// downstream of Pass 1 ever sees a percentage.
type Dim struct {
	Px   float64
	Auto bool
}

func autoDim() Dim {
	return Dim{Auto: true}
}

func px(v float64) Dim {
	return Dim{Px: v}
}

// Or returns the concrete value, or fallback for auto.
func (d Dim) Or(fallback float64) float64 {
	if d.Auto {
		return fallback
	}
	return d.Px
}

// ResolvedStyle is the Pass 1 output: every style length normalized to
// concrete pixels or auto, percentages resolved against the parent's
// content dimensions.
type ResolvedStyle struct {
	Padding Edges
	Margin  Edges

	Width, Height        Dim
	MinWidth, MaxWidth   Dim
	MinHeight, MaxHeight Dim

	// Basis is the resolved flex basis: the explicit FlexBasis when given,
	// else the resolved main-axis size, else auto (filled by measurement).
	Basis Dim

	// Absolute offsets (auto = unset).
	Top, Right, Bottom, Left Dim

	// MainGap spaces items within a line; CrossGap spaces lines.
	MainGap, CrossGap float64
}

func resolveDim(v Value, parent float64) Dim {
	if n, ok := v.Resolve(parent); ok {
		return px(n)
	}
	return autoDim()
}

// resolveTree runs Pass 1 over the subtree: strictly top-down, because a
// child's percentages resolve against its parent's content dimensions.
// parentW/parentH are the parent's content-box dimensions; for auto-sized
// parents they are the parent's available content space, the most the
// parent can occupy.
func resolveTree(n *Node, parentW, parentH float64) {
	if n.Style.Display == DisplayNone {
		// The node and its whole subtree produce no derived state.
		clearSubtree(n)
		return
	}

	style := &n.Style
	rs := &ResolvedStyle{
		Padding:   style.Padding,
		Margin:    style.Margin,
		Width:     resolveDim(style.Width, parentW),
		Height:    resolveDim(style.Height, parentH),
		MinWidth:  resolveDim(style.MinWidth, parentW),
		MaxWidth:  resolveDim(style.MaxWidth, parentW),
		MinHeight: resolveDim(style.MinHeight, parentH),
		MaxHeight: resolveDim(style.MaxHeight, parentH),
		Top:       resolveDim(style.Top, parentH),
		Bottom:    resolveDim(style.Bottom, parentH),
		Left:      resolveDim(style.Left, parentW),
		Right:     resolveDim(style.Right, parentW),
	}

	isRow := style.Direction == Row
	parentMain := parentW
	if !isRow {
		parentMain = parentH
	}

	if !style.FlexBasis.IsAuto() {
		rs.Basis = resolveDim(style.FlexBasis, parentMain)
	} else if isRow {
		rs.Basis = rs.Width
	} else {
		rs.Basis = rs.Height
	}

	// Children's percentages resolve against this node's content box. When
	// this node is itself auto-sized, use the space it can at most occupy.
	childW := nonNegative(rs.Width.Or(parentW) - rs.Padding.Horizontal())
	childH := nonNegative(rs.Height.Or(parentH) - rs.Padding.Vertical())

	// Gap resolution: ColumnGap spaces columns (the row main axis), RowGap
	// spaces rows; each falls back to Gap, and auto means zero.
	colGap := firstGap(style.ColumnGap, style.Gap, childW)
	rowGap := firstGap(style.RowGap, style.Gap, childH)
	if isRow {
		rs.MainGap, rs.CrossGap = colGap, rowGap
	} else {
		rs.MainGap, rs.CrossGap = rowGap, colGap
	}

	n.resolved = rs

	for _, child := range n.children {
		resolveTree(child, childW, childH)
	}
}

// firstGap resolves a per-axis gap with fallback to the shared Gap value.
func firstGap(axisGap, gap Value, parent float64) float64 {
	if !axisGap.IsAuto() {
		v, _ := axisGap.Resolve(parent)
		return v
	}
	v, _ := gap.Resolve(parent) // auto resolves to 0
	return v
}

// clearSubtree drops all derived state below and including n.
// Used for display:none subtrees, which are invisible to layout; the sweep
// still counts as having handled them, so their dirty flags clear too.
func clearSubtree(n *Node) {
	n.resolved = nil
	n.measured = nil
	n.computed = nil
	n.dirty = DirtyNone
	for _, child := range n.children {
		clearSubtree(child)
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
