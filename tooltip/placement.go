package tooltip

import "fyne.io/fyne/v2"

// Side identifies which edge of the target the tooltip is placed against.
// It also determines which edge of the tooltip body carries the arrow and
// which axis the arrow offset is measured along.
type Side int

const (
	SideBelow Side = iota
	SideAbove
	SideRight
	SideLeft
)

func (s Side) String() string {
	switch s {
	case SideBelow:
		return "below"
	case SideAbove:
		return "above"
	case SideRight:
		return "right"
	case SideLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Target is the anchor rectangle a tooltip is placed against, in viewport
// coordinates. It is captured once per show attempt and not tracked while
// the tooltip stays open.
type Target struct {
	Position fyne.Position
	Size     fyne.Size
}

// Placement is the computed position of a tooltip surface: the side it sits
// on, the clamped top-left of its body and the distance from the near edge
// start to the arrow tip.
type Placement struct {
	Side        Side
	Origin      fyne.Position
	ArrowOffset float32
}

const (
	// edgeMargin keeps the tooltip body off the viewport edges.
	edgeMargin float32 = 8
	// minArrowPadding keeps the arrow tip out of the rounded corners.
	minArrowPadding float32 = 16
)

// ChooseSide picks the side the tooltip goes on. The preferred side is tried
// first, then the fixed Below, Above, Right order; Left is the fallback when
// nothing fits, so a side is always returned.
func ChooseSide(preferred Side, target Target, tip, viewport fyne.Size, minOffset float32) Side {
	order := [...]Side{preferred, SideBelow, SideAbove, SideRight}
	for i, side := range order {
		if i > 0 && side == preferred {
			continue
		}
		if sideFits(side, target, tip, viewport, minOffset) {
			return side
		}
	}

	return SideLeft
}

func sideFits(side Side, target Target, tip, viewport fyne.Size, minOffset float32) bool {
	switch side {
	case SideBelow:
		return viewport.Height-(target.Position.Y+target.Size.Height) >= tip.Height+minOffset
	case SideAbove:
		return target.Position.Y >= tip.Height+minOffset
	case SideRight:
		return viewport.Width-(target.Position.X+target.Size.Width) >= tip.Width+minOffset
	case SideLeft:
		return target.Position.X >= tip.Width+minOffset
	default:
		return false
	}
}

// Compute returns the clamped placement for the given side. It is pure:
// identical inputs always produce identical output.
func Compute(side Side, target Target, tip, viewport fyne.Size, minOffset float32) Placement {
	pl := Placement{Side: side}

	switch side {
	case SideBelow, SideAbove:
		x := clampOrigin(
			target.Position.X+target.Size.Width/2-tip.Width/2,
			viewport.Width-tip.Width-edgeMargin,
		)
		y := target.Position.Y + target.Size.Height + minOffset
		if side == SideAbove {
			y = target.Position.Y - tip.Height - minOffset
			if y < edgeMargin {
				y = edgeMargin
			}
		}
		pl.Origin = fyne.NewPos(x, y)
		pl.ArrowOffset = arrowOffsetOnEdge(target.Position.X+target.Size.Width/2-x, tip.Width)
	case SideRight, SideLeft:
		y := clampOrigin(
			target.Position.Y+target.Size.Height/2-tip.Height/2,
			viewport.Height-tip.Height-edgeMargin,
		)
		x := target.Position.X + target.Size.Width + minOffset
		if side == SideLeft {
			x = target.Position.X - tip.Width - minOffset
			if x < edgeMargin {
				x = edgeMargin
			}
		}
		pl.Origin = fyne.NewPos(x, y)
		pl.ArrowOffset = arrowOffsetOnEdge(target.Position.Y+target.Size.Height/2-y, tip.Height)
	}

	return pl
}

// arrowOffsetOnEdge clamps the arrow tip into the safe band of the near
// edge. An edge shorter than twice the padding inverts the clamp range, so
// the arrow is centered instead.
func arrowOffsetOnEdge(center, extent float32) float32 {
	if extent < 2*minArrowPadding {
		return extent / 2
	}
	if center > extent-minArrowPadding {
		center = extent - minArrowPadding
	}
	if center < minArrowPadding {
		center = minArrowPadding
	}

	return center
}

func clampOrigin(v, max float32) float32 {
	if v > max {
		v = max
	}
	if v < edgeMargin {
		v = edgeMargin
	}

	return v
}
