// Package flexcell computes terminal UI layout on an integer cell grid.
//
// Users import this single package for the complete public API: node
// construction, constraint values and expressions, the layout engine, and
// the resulting geometry. The heavy lifting lives in internal/layout; this
// package re-exports its types and adds the text measurer and expression
// helpers.
package flexcell
