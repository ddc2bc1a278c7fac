package layout

// Compute lays out the tree rooted at root within the given available space.
//
// It runs the three passes unconditionally over the whole subtree, so calling
// it twice with unchanged inputs produces identical results. After it returns,
// every visited node carries a fresh ComputedLayout and is clean; display:none
// subtrees carry no derived state at all. Callers recomputing after mutations
// should pass DirtyRoot of the changed node so every invalidated ancestor is
// covered.
func Compute(root *Node, availableWidth, availableHeight float64) {
	if root == nil {
		return
	}
	if root.Style.Display == DisplayNone {
		clearSubtree(root)
		return
	}

	resolveTree(root, availableWidth, availableHeight)
	measureTree(root, availableWidth, availableHeight)

	// The root's border box is its measured size: explicit dimensions win,
	// auto dimensions fit content, both clamped by min/max. The root has no
	// flex context, so its margin does not offset it.
	ml := root.measured
	positionTree(root, 0, 0, ml.Width, ml.Height)
}
