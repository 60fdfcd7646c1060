// Package view maps between screen pixels and grid coordinates.
//
// A Transform describes a rectangular viewport (origin and size in pixels)
// looking at a square universe of cells. It keeps a pixel-per-cell size and
// a pan offset, both clamped so the viewport never shows anything outside
// the universe.
//
// Zooming keeps the cell under the pivot fixed on screen. The generators
// (CellRect, Columns, Rows) clip their output to the viewport, so a
// rasteriser can draw them without further checks.
//
// Grow and Glide are the two cosmetic animations: painted cells pop in over
// GrowSeconds and a relocated Source or Target slides to its new cell over
// GlideSeconds.
package view
