package tooltip

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// arrowTriangle holds the three vertices of the pointing arrow in
// surface-local coordinates. Base1 and Base2 sit on the body edge, Tip on
// the surface boundary facing the target.
type arrowTriangle struct {
	Base1, Tip, Base2 fyne.Position
}

// bodyRect returns the position and size of the tooltip body inside a
// surface of the given total size. The band of height/width arrowSize on
// the arrow-bearing side is reserved for the arrow.
func bodyRect(side Side, arrowSize float32, size fyne.Size) (fyne.Position, fyne.Size) {
	switch side {
	case SideBelow:
		return fyne.NewPos(0, arrowSize), fyne.NewSize(size.Width, size.Height-arrowSize)
	case SideAbove:
		return fyne.NewPos(0, 0), fyne.NewSize(size.Width, size.Height-arrowSize)
	case SideRight:
		return fyne.NewPos(arrowSize, 0), fyne.NewSize(size.Width-arrowSize, size.Height)
	case SideLeft:
		return fyne.NewPos(0, 0), fyne.NewSize(size.Width-arrowSize, size.Height)
	default:
		return fyne.NewPos(0, 0), size
	}
}

// arrowShape computes the arrow triangle for a surface of the given size.
// The base is 2*arrowSize wide and centered at arrowOffset along the near
// edge. The second return is false when there is not enough room between
// the edge start and the arrow to draw it.
func arrowShape(side Side, arrowOffset, arrowSize float32, size fyne.Size) (arrowTriangle, bool) {
	if arrowOffset-arrowSize < 0 {
		return arrowTriangle{}, false
	}

	switch side {
	case SideBelow:
		return arrowTriangle{
			Base1: fyne.NewPos(arrowOffset-arrowSize, arrowSize),
			Tip:   fyne.NewPos(arrowOffset, 0),
			Base2: fyne.NewPos(arrowOffset+arrowSize, arrowSize),
		}, true
	case SideAbove:
		return arrowTriangle{
			Base1: fyne.NewPos(arrowOffset-arrowSize, size.Height-arrowSize),
			Tip:   fyne.NewPos(arrowOffset, size.Height),
			Base2: fyne.NewPos(arrowOffset+arrowSize, size.Height-arrowSize),
		}, true
	case SideRight:
		return arrowTriangle{
			Base1: fyne.NewPos(arrowSize, arrowOffset-arrowSize),
			Tip:   fyne.NewPos(0, arrowOffset),
			Base2: fyne.NewPos(arrowSize, arrowOffset+arrowSize),
		}, true
	case SideLeft:
		return arrowTriangle{
			Base1: fyne.NewPos(size.Width-arrowSize, arrowOffset-arrowSize),
			Tip:   fyne.NewPos(size.Width, arrowOffset),
			Base2: fyne.NewPos(size.Width-arrowSize, arrowOffset+arrowSize),
		}, true
	default:
		return arrowTriangle{}, false
	}
}

// anchorPoint is the arrow tip position in surface-local coordinates. The
// scale animation grows the surface around this point so the tip appears
// pinned to the target.
func anchorPoint(side Side, arrowOffset float32, size fyne.Size) fyne.Position {
	switch side {
	case SideBelow:
		return fyne.NewPos(arrowOffset, 0)
	case SideAbove:
		return fyne.NewPos(arrowOffset, size.Height)
	case SideRight:
		return fyne.NewPos(0, arrowOffset)
	case SideLeft:
		return fyne.NewPos(size.Width, arrowOffset)
	default:
		return fyne.NewPos(size.Width/2, size.Height/2)
	}
}

// easeInOut is the monotonic curve driving opacity.
func easeInOut(p float32) float32 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	case p < 0.5:
		return 2 * p * p
	default:
		inv := 1 - p
		return 1 - 2*inv*inv
	}
}

// easeOut is the curve driving scale.
func easeOut(p float32) float32 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	default:
		inv := 1 - p
		return 1 - inv*inv
	}
}

const minSurfaceScale float32 = 0.85

func alphaForProgress(p float32) float32 {
	return easeInOut(p)
}

func scaleForProgress(p float32) float32 {
	return minSurfaceScale + (1-minSurfaceScale)*easeOut(p)
}

// withAlpha scales the alpha channel of a color, leaving the color channels
// untouched. RGBA() is premultiplied, so the conversion has to go through
// the non-premultiplied model first.
func withAlpha(c color.Color, alpha float32) color.Color {
	if c == nil {
		return color.Transparent
	}
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.Transparent
	}

	nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	nc.A = uint16(float32(nc.A) * alpha)

	return nc
}
