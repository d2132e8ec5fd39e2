// Package table switches auto-layout tables between row-major and
// column-major orientation.
//
// # Overview
//
// A table is a frame whose children are lines (rows when the frame stacks
// vertically, columns when it stacks horizontally) and whose lines hold the
// cells. Switching the axis transposes the grid: a 2×3 row table becomes a
// table of three columns with two cells each.
//
// A switch runs as a fixed sequence of steps. The first three only read the
// scene, so a rejected table is never touched:
//
//  1. [Select] checks the selection and returns the container
//  2. [Extract] reads lines and cells into a [Matrix] and sets overlays aside
//  3. [ValidateMatrix] rejects empty or non-rectangular grids
//  4. [StashOverlays] clones and removes freely positioned children
//  5. [Rebuild] builds a new container in the opposite orientation
//  6. [Replace] swaps the new container in and removes the old one
//
// Package pipeline wires these steps together with logging and hooks.
//
// # Visibility
//
// A cell read from a hidden line is recorded hidden, whatever its own flag
// says. A rebuilt line is hidden only when every cell it holds is hidden.
//
// # Attaching
//
// The host re-defaults layout properties of children it attaches, so every
// node is attached first and has its sizing, size, positioning and
// visibility applied in a second step.
package table
