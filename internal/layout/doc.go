// Package layout implements a pure-Go flexbox layout engine for UI node trees.
//
// It supports row/column directions, wrapping into flex lines, justify and
// align modes on both axes, padding, margin, gap, min/max constraints,
// percentage and fixed dimensions, absolute positioning, and content
// measurement callbacks. Types are re-exported through the root flexbox
// package for public consumption.
//
// The main entry point is [Compute], which runs three passes over a [Node]
// tree (resolve top-down, measure bottom-up, position top-down) and stores a
// [ComputedLayout] on every visited node.
package layout
