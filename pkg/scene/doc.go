// Package scene provides the in-memory scene graph that table operations run
// against.
//
// # Overview
//
// A design document is a tree of nodes under a single page. Frames can carry
// an auto-layout direction ([LayoutHorizontal] or [LayoutVertical]) and their
// children are either laid out in flow ([PositionAuto]) or freely positioned
// on top of the flow ([PositionAbsolute]).
//
// [Document] plays the part of the authoring host: it creates frames, clones
// subtrees with fresh ids, attaches and removes nodes, and keeps the current
// selection. Structural edits always go through the document; layout
// properties are plain fields on [Node].
//
// # Attach Semantics
//
// Attaching a node to an auto-layout frame re-defaults the child's sizing
// modes, grow flag and positioning, exactly like the host does. Code that
// cares about those properties sets them after the attach:
//
//	doc.AppendChild(column, cell)
//	cell.SizingH = scene.SizingFill
//
// # Capabilities
//
// Not every kind supports every property. [Kind.Caps] reports the supported
// set once so callers can classify a node up front instead of probing
// properties one by one.
//
// # Layout
//
// [Reflow] runs a minimal auto-layout pass (hug and fill sizing) so callers
// can observe the sizes the host would compute.
package scene
