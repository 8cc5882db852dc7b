// Package layout implements the cell-based layout engine: a two-phase
// measure/place pass over a caller-owned node tree that produces exact
// integer cell rectangles.
//
// The engine combines a flexbox-style layouter (rows/columns, wrap,
// absolute positioning), a grid placer with spanning tracks, a dependency
// graph evaluator for expression-valued constraints, an identity-keyed
// measure cache, and a stability signature check that skips whole passes
// when nothing layout-relevant changed.
//
// The main entry point is [Engine.Layout]. Types are re-exported through
// the root flexcell package for public consumption.
package layout
