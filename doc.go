// Package flexbox provides a flexbox layout engine for UI node trees.
//
// Users import this single package for the complete public API: node and
// style construction, layout computation, dirty tracking, and debug output.
// Trees can also be loaded declaratively from TOML via the treefile
// subpackage.
package flexbox
