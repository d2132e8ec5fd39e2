package scene

// Reflow recomputes the geometry of n's auto-layout subtree.
//
// It is a deliberately small subset of the host's layout engine:
//
//   - HUG (and FILL) axes of auto-layout frames are sized bottom-up from
//     the visible, AUTO-positioned children (sum along the primary axis plus
//     item spacing, max across it) plus padding.
//   - Children with FILL on the parent's cross axis take the parent's inner
//     cross size.
//   - Children that grow (or FILL on the primary axis) share the leftover
//     primary space equally when the parent is not hugging that axis.
//
// Frames without a layout mode are left untouched, but their children are
// still reflowed.
func Reflow(n *Node) {
	measure(n)
	distribute(n)
}

// flow returns the children that take part in auto layout.
func flow(n *Node) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.Visible && c.Positioning == PositionAuto {
			out = append(out, c)
		}
	}
	return out
}

func measure(n *Node) {
	for _, c := range n.children {
		measure(c)
	}
	if n.Layout == LayoutNone {
		return
	}

	items := flow(n)
	var sum, cross float64
	for i, c := range items {
		primary, secondary := c.Width, c.Height
		if n.Layout == LayoutVertical {
			primary, secondary = c.Height, c.Width
		}
		sum += primary
		if i > 0 {
			sum += n.ItemSpacing
		}
		cross = max(cross, secondary)
	}

	padH := n.Padding.Left + n.Padding.Right
	padV := n.Padding.Top + n.Padding.Bottom
	if n.Layout == LayoutHorizontal {
		if contentSized(n.SizingH) {
			n.Width = sum + padH
		}
		if contentSized(n.SizingV) {
			n.Height = cross + padV
		}
		return
	}
	if contentSized(n.SizingV) {
		n.Height = sum + padV
	}
	if contentSized(n.SizingH) {
		n.Width = cross + padH
	}
}

// contentSized reports whether an auto-layout frame takes its size from its
// content along an axis. FILL frames are measured like HUG ones first and
// stretched by their parent afterwards.
func contentSized(s Sizing) bool {
	return s == SizingHug || s == SizingFill
}

func distribute(n *Node) {
	if n.Layout != LayoutNone {
		items := flow(n)
		innerW := n.Width - n.Padding.Left - n.Padding.Right
		innerH := n.Height - n.Padding.Top - n.Padding.Bottom

		var used float64
		var growers []*Node
		for i, c := range items {
			if i > 0 {
				used += n.ItemSpacing
			}
			if n.Layout == LayoutHorizontal {
				if c.SizingV == SizingFill {
					c.Height = max(innerH, 0)
				}
				if c.Grow || c.SizingH == SizingFill {
					growers = append(growers, c)
					continue
				}
				used += c.Width
			} else {
				if c.SizingH == SizingFill {
					c.Width = max(innerW, 0)
				}
				if c.Grow || c.SizingV == SizingFill {
					growers = append(growers, c)
					continue
				}
				used += c.Height
			}
		}

		hugging := (n.Layout == LayoutHorizontal && n.SizingH == SizingHug) ||
			(n.Layout == LayoutVertical && n.SizingV == SizingHug)
		if len(growers) > 0 && !hugging {
			avail := innerH
			if n.Layout == LayoutHorizontal {
				avail = innerW
			}
			share := max((avail-used)/float64(len(growers)), 0)
			for _, c := range growers {
				if n.Layout == LayoutHorizontal {
					c.Width = share
				} else {
					c.Height = share
				}
			}
		}
	}
	for _, c := range n.children {
		distribute(c)
	}
}
