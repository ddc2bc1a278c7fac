package layout

import "math"

// ComputedLayout is the Pass 3 output: the node's final geometry.
// X/Y are relative to the parent's content-box origin; ContentX/Y are in the
// same coordinate space, shifted by the node's own padding.
//
// Invariants: Width/Height are non-negative, and ContentWidth equals
// Width minus horizontal padding (clamped to zero), likewise for height.
type ComputedLayout struct {
	X, Y          float64
	Width, Height float64

	ContentX, ContentY          float64
	ContentWidth, ContentHeight float64
}

// positionTree runs Pass 3 top-down. x/y/width/height is the border box the
// parent allocated, with x/y relative to the parent's content origin.
func positionTree(n *Node, x, y, width, height float64) {
	rs := n.resolved
	if rs == nil {
		return // display:none
	}

	width = nonNegative(width)
	height = nonNegative(height)

	n.computed = &ComputedLayout{
		X:             x,
		Y:             y,
		Width:         width,
		Height:        height,
		ContentX:      x + rs.Padding.Left,
		ContentY:      y + rs.Padding.Top,
		ContentWidth:  nonNegative(width - rs.Padding.Horizontal()),
		ContentHeight: nonNegative(height - rs.Padding.Vertical()),
	}
	n.dirty = DirtyNone

	if len(n.children) == 0 {
		return
	}

	positionFlow(n)
	positionAbsolute(n)
}

// positionFlow distributes the container's content box among its in-flow
// children, line by line.
func positionFlow(n *Node) {
	rs := n.resolved
	c := n.computed
	isRow := n.Style.Direction == Row

	mainC := c.ContentWidth
	crossC := c.ContentHeight
	if !isRow {
		mainC, crossC = crossC, mainC
	}

	// Lines were assembled during measurement against the hypothetical
	// content size; if flex distribution gave this container a different
	// main size, wrap decisions may change, so rebuild.
	lines := n.measured.Lines
	if n.Style.Wrap == WrapLines && mainC != n.measured.lineMain {
		lines = buildLines(n, mainC)
	}
	if len(lines) == 0 {
		return
	}

	lineOffsets, lineSizes := alignLines(n.Style, lines, crossC, rs.CrossGap)

	for li, line := range lines {
		resolveLineSizes(line, mainC, rs.MainGap, isRow)

		// Justify against whatever free space distribution left over.
		used := rs.MainGap * float64(len(line.Items)-1)
		for _, item := range line.Items {
			used += item.MainSize
		}
		free := mainC - used
		offset := justifyOffset(n.Style.JustifyContent, free, len(line.Items))
		spacing := justifySpacing(n.Style.JustifyContent, free, len(line.Items))

		lineCross := lineSizes[li]
		mainPos := offset
		for _, item := range line.Items {
			child := item.Node
			crs := child.resolved

			align := n.Style.AlignItems
			if child.Style.AlignSelf != nil {
				align = *child.Style.AlignSelf
			}

			var crossAuto bool
			var crossMargin float64
			var minCross, maxCross Dim
			if isRow {
				crossAuto = crs.Height.Auto
				crossMargin = crs.Margin.Vertical()
				minCross, maxCross = crs.MinHeight, crs.MaxHeight
			} else {
				crossAuto = crs.Width.Auto
				crossMargin = crs.Margin.Horizontal()
				minCross, maxCross = crs.MinWidth, crs.MaxWidth
			}

			var crossPos float64
			if align == AlignStretch && crossAuto {
				// Stretch fills the line; explicit cross sizes are never
				// stretched. Min/max still bound the stretched box.
				content := clampDim(nonNegative(lineCross-crossMargin), minCross, maxCross)
				item.CrossSize = content + crossMargin
				crossPos = 0
			} else {
				item.CrossSize = item.BaseCross
				crossPos = alignOffset(align, lineCross, item.CrossSize)
			}

			placeItem(child, item, mainPos, lineOffsets[li]+crossPos, isRow)
			mainPos += item.MainSize + rs.MainGap + spacing
		}
	}
}

// placeItem converts an item's line-relative main/cross position and outer
// sizes into the child's border box and recurses.
func placeItem(child *Node, item *FlexItem, mainPos, crossPos float64, isRow bool) {
	m := child.resolved.Margin
	var x, y, w, h float64
	if isRow {
		x = mainPos + m.Left
		y = crossPos + m.Top
		w = item.MainSize - m.Horizontal()
		h = item.CrossSize - m.Vertical()
	} else {
		x = crossPos + m.Left
		y = mainPos + m.Top
		w = item.CrossSize - m.Horizontal()
		h = item.MainSize - m.Vertical()
	}
	positionTree(child, x, y, nonNegative(w), nonNegative(h))
}

// positionAbsolute places absolutely positioned children against the
// parent's content box. They take no part in flex distribution; each uses
// whichever of top/left and bottom/right offsets are set, defaulting to the
// content-box origin.
func positionAbsolute(n *Node) {
	c := n.computed
	for _, child := range n.children {
		if child.Style.Position != PositionAbsolute || child.Style.Display == DisplayNone {
			continue
		}
		crs := child.resolved
		ml := child.measured

		w := clampDim(nonNegative(crs.Width.Or(ml.Width)), crs.MinWidth, crs.MaxWidth)
		h := clampDim(nonNegative(crs.Height.Or(ml.Height)), crs.MinHeight, crs.MaxHeight)

		var x, y float64
		switch {
		case !crs.Left.Auto:
			x = crs.Left.Px + crs.Margin.Left
		case !crs.Right.Auto:
			x = c.ContentWidth - w - crs.Right.Px - crs.Margin.Right
		default:
			x = crs.Margin.Left
		}
		switch {
		case !crs.Top.Auto:
			y = crs.Top.Px + crs.Margin.Top
		case !crs.Bottom.Auto:
			y = c.ContentHeight - h - crs.Bottom.Px - crs.Margin.Bottom
		default:
			y = crs.Margin.Top
		}

		positionTree(child, x, y, w, h)
	}
}

// resolveLineSizes resolves the flexible lengths of one line: free space is
// distributed to grow factors, overflow to scaled shrink factors, with items
// frozen at their min/max bound and the remainder redistributed until
// stable. Items that cannot flex keep their base size and the line may
// overflow or underflow.
func resolveLineSizes(line *FlexLine, mainC, mainGap float64, isRow bool) {
	items := line.Items
	target := mainC - mainGap*float64(len(items)-1)

	var base, totalGrow, totalScaledShrink float64
	for _, item := range items {
		base += item.BaseMain
		totalGrow += item.Node.Style.FlexGrow
		totalScaledShrink += item.Node.Style.FlexShrink * item.BaseMain
	}

	switch {
	case target > base && totalGrow > 0:
		growItems(items, target, isRow)
	case target < base && totalScaledShrink > 0:
		shrinkItems(items, target, isRow)
	default:
		for _, item := range items {
			item.MainSize = item.BaseMain
		}
	}
}

// growItems distributes target-base free space proportionally to grow
// factors. Items pushed past their max are clamped there and frozen
// (all violators in the same iteration at once), then the remaining free
// space is redistributed among the unfrozen until no new item clamps.
func growItems(items []*FlexItem, target float64, isRow bool) {
	for _, item := range items {
		item.MainSize = item.BaseMain
		item.frozen = item.Node.Style.FlexGrow <= 0
	}

	for {
		var used, sumGrow float64
		for _, item := range items {
			if item.frozen {
				used += item.MainSize
			} else {
				used += item.BaseMain
				sumGrow += item.Node.Style.FlexGrow
			}
		}
		free := target - used
		if free <= 0 || sumGrow <= 0 {
			break
		}

		clamped := false
		for _, item := range items {
			if item.frozen {
				continue
			}
			want := item.BaseMain + free*item.Node.Style.FlexGrow/sumGrow
			if limit := outerMax(item.Node, isRow); want > limit {
				item.MainSize = limit
				item.frozen = true
				clamped = true
			} else {
				item.MainSize = want
			}
		}
		if !clamped {
			break
		}
	}
}

// shrinkItems distributes overflow proportionally to shrink factors scaled
// by base size, clamping at each item's min bound with the same
// freeze-and-redistribute iteration as growth.
func shrinkItems(items []*FlexItem, target float64, isRow bool) {
	for _, item := range items {
		item.MainSize = item.BaseMain
		item.frozen = item.Node.Style.FlexShrink <= 0 || item.BaseMain <= 0
	}

	for {
		var used, sumScaled float64
		for _, item := range items {
			if item.frozen {
				used += item.MainSize
			} else {
				used += item.BaseMain
				sumScaled += item.Node.Style.FlexShrink * item.BaseMain
			}
		}
		free := target - used
		if free >= 0 || sumScaled <= 0 {
			break
		}

		clamped := false
		for _, item := range items {
			if item.frozen {
				continue
			}
			scaled := item.Node.Style.FlexShrink * item.BaseMain
			want := item.BaseMain + free*scaled/sumScaled
			if limit := outerMin(item.Node, isRow); want < limit {
				item.MainSize = limit
				item.frozen = true
				clamped = true
			} else {
				item.MainSize = want
			}
		}
		if !clamped {
			break
		}
	}
}

// outerMax returns the item's maximum outer main size (max constraint plus
// margin), or +Inf when unconstrained.
func outerMax(n *Node, isRow bool) float64 {
	rs := n.resolved
	if isRow {
		if rs.MaxWidth.Auto {
			return math.Inf(1)
		}
		return rs.MaxWidth.Px + rs.Margin.Horizontal()
	}
	if rs.MaxHeight.Auto {
		return math.Inf(1)
	}
	return rs.MaxHeight.Px + rs.Margin.Vertical()
}

// outerMin returns the item's minimum outer main size: the min constraint
// plus margin, or just the margin (content cannot go below zero).
func outerMin(n *Node, isRow bool) float64 {
	rs := n.resolved
	if isRow {
		return nonNegative(rs.MinWidth.Or(0)) + rs.Margin.Horizontal()
	}
	return nonNegative(rs.MinHeight.Or(0)) + rs.Margin.Vertical()
}

// alignLines computes each line's cross offset and final cross size within
// the container. A non-wrapping container has a single line that always
// fills the content cross size; wrapping containers distribute leftover
// cross space per AlignContent, analogous to justify-content.
func alignLines(style Style, lines []*FlexLine, crossC, crossGap float64) (offsets, sizes []float64) {
	offsets = make([]float64, len(lines))
	sizes = make([]float64, len(lines))

	if style.Wrap == NoWrap {
		for i := range lines {
			sizes[i] = crossC
		}
		return offsets, sizes
	}

	total := crossGap * float64(len(lines)-1)
	for i, line := range lines {
		sizes[i] = line.CrossSize
		total += line.CrossSize
	}
	leftover := crossC - total

	var lead, between float64
	n := float64(len(lines))
	switch style.AlignContent {
	case AlignContentStretch:
		if leftover > 0 {
			for i := range sizes {
				sizes[i] += leftover / n
			}
		}
	case AlignContentEnd:
		lead = leftover
	case AlignContentCenter:
		lead = leftover / 2
	case AlignContentSpaceBetween:
		if leftover > 0 && len(lines) > 1 {
			between = leftover / (n - 1)
		}
	case AlignContentSpaceAround:
		if leftover > 0 {
			between = leftover / n
			lead = between / 2
		}
	case AlignContentSpaceEvenly:
		if leftover > 0 {
			between = leftover / (n + 1)
			lead = between
		}
	}

	pos := lead
	for i := range lines {
		offsets[i] = pos
		pos += sizes[i] + crossGap + between
	}
	return offsets, sizes
}

// justifyOffset returns the leading offset for main-axis placement.
// Free space that grow/shrink consumed is already gone by the time this
// runs, so center and end naturally collapse to zero offset.
func justifyOffset(justify Justify, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}
	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / float64(itemCount*2)
	case JustifySpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra spacing inserted between items, on top
// of the container's main gap.
func justifySpacing(justify Justify, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}
	switch justify {
	case JustifySpaceBetween:
		return freeSpace / float64(itemCount-1)
	case JustifySpaceAround:
		return freeSpace / float64(itemCount)
	case JustifySpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default:
		return 0
	}
}

// alignOffset returns the cross-axis offset of an item within its line.
func alignOffset(align Align, lineCross, itemSize float64) float64 {
	switch align {
	case AlignEnd:
		return lineCross - itemSize
	case AlignCenter:
		return (lineCross - itemSize) / 2
	default: // AlignStart, AlignStretch with explicit size
		return 0
	}
}
