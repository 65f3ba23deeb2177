package tooltip

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

var _ desktop.Hoverable = (*surface)(nil)

// surface is the rendered tooltip overlay: shadows, a rounded body, the
// pointing arrow and the padded content. It reports pointer enter/exit to
// its controller so the grace window can keep the tooltip open while the
// pointer is over it.
type surface struct {
	widget.BaseWidget

	content fyne.CanvasObject
	cfg     Config
	ctrl    *Controller

	side        Side
	arrowOffset float32
	progress    float32
}

func newSurface(content fyne.CanvasObject, cfg Config, ctrl *Controller) *surface {
	if !cfg.ContentSelfAligning {
		content = container.NewCenter(content)
	}

	s := &surface{
		content: content,
		cfg:     cfg,
		ctrl:    ctrl,
		side:    cfg.PreferredSide,
	}
	s.ExtendBaseWidget(s)

	return s
}

func (s *surface) setPlacement(side Side, arrowOffset float32) {
	s.side = side
	s.arrowOffset = arrowOffset
	s.Refresh()
}

func (s *surface) setProgress(p float32) {
	s.progress = p
	s.Refresh()
}

func (s *surface) MouseIn(*desktop.MouseEvent) {
	if s.ctrl == nil {
		return
	}
	s.ctrl.surfaceEnter()
}

func (s *surface) MouseMoved(*desktop.MouseEvent) {
}

func (s *surface) MouseOut() {
	if s.ctrl == nil {
		return
	}
	s.ctrl.surfaceExit()
}

func (s *surface) CreateRenderer() fyne.WidgetRenderer {
	body := canvas.NewRectangle(color.Transparent)
	r := &surfaceRenderer{surface: s, body: body}
	r.arrow = canvas.NewRaster(r.drawArrow)

	for range s.cfg.Decoration.shadowCount() {
		r.shadows = append(r.shadows, canvas.NewRectangle(color.Transparent))
	}

	r.objects = make([]fyne.CanvasObject, 0, len(r.shadows)+3)
	for _, sh := range r.shadows {
		r.objects = append(r.objects, sh)
	}
	r.objects = append(r.objects, body, r.arrow, s.content)
	r.Refresh()

	return r
}

// shadowCount works on a nil receiver: a nil decoration renders the single
// default shadow.
func (d *Decoration) shadowCount() int {
	if d == nil {
		return 1
	}

	return len(d.Shadows)
}

type surfaceRenderer struct {
	surface *surface

	shadows []*canvas.Rectangle
	body    *canvas.Rectangle
	arrow   *canvas.Raster

	arrowFill color.Color
	objects   []fyne.CanvasObject
}

func (r *surfaceRenderer) MinSize() fyne.Size {
	cfg := r.surface.cfg
	pad := cfg.Padding
	min := r.surface.content.MinSize()

	// The arrow band is reserved in both axes so a late side change never
	// squeezes the content.
	return fyne.NewSize(
		min.Width+pad.Left+pad.Right+cfg.ArrowSize,
		min.Height+pad.Top+pad.Bottom+cfg.ArrowSize,
	)
}

func (r *surfaceRenderer) Layout(size fyne.Size) {
	r.place(size)
}

func (r *surfaceRenderer) Refresh() {
	s := r.surface
	th := s.Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()
	dec := effectiveDecoration(s.cfg.Decoration, th, variant)
	alpha := alphaForProgress(s.progress)

	for i, sh := range r.shadows {
		if i >= len(dec.Shadows) {
			sh.Hide()
			continue
		}
		sh.Show()
		sh.FillColor = withAlpha(dec.Shadows[i].Color, alpha)
		sh.CornerRadius = dec.CornerRadius
		sh.Refresh()
	}

	r.body.FillColor = withAlpha(dec.FillColor, alpha)
	r.body.StrokeColor = withAlpha(dec.BorderColor, alpha)
	r.body.StrokeWidth = dec.BorderWidth
	r.body.CornerRadius = dec.CornerRadius
	r.body.Refresh()

	r.arrowFill = withAlpha(dec.FillColor, alpha)

	// Content carries no alpha channel of its own; reveal it once the
	// bubble is past half opacity.
	if alpha >= 0.5 {
		s.content.Show()
	} else {
		s.content.Hide()
	}

	r.place(s.Size())
	r.arrow.Refresh()
}

// place lays out every object in full-size coordinates, then shrinks the
// decoration around the arrow anchor by the current scale curve.
func (r *surfaceRenderer) place(size fyne.Size) {
	s := r.surface
	cfg := s.cfg
	dec := cfg.Decoration
	scale := scaleForProgress(s.progress)
	anchor := anchorPoint(s.side, s.arrowOffset, size)

	bodyPos, bodySize := bodyRect(s.side, cfg.ArrowSize, size)

	shadowDefs := []Shadow{{Color: defaultShadowColor, Offset: fyne.NewPos(0, 2)}}
	if dec != nil {
		shadowDefs = dec.Shadows
	}
	for i, sh := range r.shadows {
		if i >= len(shadowDefs) {
			continue
		}
		def := shadowDefs[i]
		pos := fyne.NewPos(
			bodyPos.X+def.Offset.X-def.Grow,
			bodyPos.Y+def.Offset.Y-def.Grow,
		)
		sz := fyne.NewSize(bodySize.Width+2*def.Grow, bodySize.Height+2*def.Grow)
		moveScaled(sh, pos, sz, anchor, scale)
	}

	moveScaled(r.body, bodyPos, bodySize, anchor, scale)

	if tri, ok := arrowShape(s.side, s.arrowOffset, cfg.ArrowSize, size); ok {
		r.arrow.Show()
		pos, sz := triangleBounds(tri)
		moveScaled(r.arrow, pos, sz, anchor, scale)
	} else {
		// Not enough room before the corner: omit the arrow rather than
		// drawing it off-shape.
		r.arrow.Hide()
	}

	pad := cfg.Padding
	s.content.Move(fyne.NewPos(bodyPos.X+pad.Left, bodyPos.Y+pad.Top))
	s.content.Resize(fyne.NewSize(
		bodySize.Width-pad.Left-pad.Right,
		bodySize.Height-pad.Top-pad.Bottom,
	))
}

func (r *surfaceRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *surfaceRenderer) Destroy() {
}

// drawArrow rasterizes the pointing triangle into the arrow's bounding box.
// The apex faces the target, the base sits flush with the body edge.
func (r *surfaceRenderer) drawArrow(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 || r.arrowFill == nil {
		return img
	}

	fill := color.NRGBAModel.Convert(r.arrowFill).(color.NRGBA)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if insideArrow(r.surface.side, float32(x)+0.5, float32(y)+0.5, float32(w), float32(h)) {
				img.SetNRGBA(x, y, fill)
			}
		}
	}

	return img
}

func insideArrow(side Side, x, y, w, h float32) bool {
	switch side {
	case SideBelow:
		return absf(x-w/2) <= (y/h)*(w/2)
	case SideAbove:
		return absf(x-w/2) <= ((h-y)/h)*(w/2)
	case SideRight:
		return absf(y-h/2) <= (x/w)*(h/2)
	case SideLeft:
		return absf(y-h/2) <= ((w-x)/w)*(h/2)
	default:
		return false
	}
}

func triangleBounds(tri arrowTriangle) (fyne.Position, fyne.Size) {
	minX := minf(tri.Base1.X, minf(tri.Tip.X, tri.Base2.X))
	minY := minf(tri.Base1.Y, minf(tri.Tip.Y, tri.Base2.Y))
	maxX := maxf(tri.Base1.X, maxf(tri.Tip.X, tri.Base2.X))
	maxY := maxf(tri.Base1.Y, maxf(tri.Tip.Y, tri.Base2.Y))

	return fyne.NewPos(minX, minY), fyne.NewSize(maxX-minX, maxY-minY)
}

// moveScaled positions obj after shrinking its rectangle toward the anchor
// point by the given factor.
func moveScaled(obj fyne.CanvasObject, pos fyne.Position, size fyne.Size, anchor fyne.Position, scale float32) {
	obj.Move(fyne.NewPos(
		anchor.X+(pos.X-anchor.X)*scale,
		anchor.Y+(pos.Y-anchor.Y)*scale,
	))
	obj.Resize(fyne.NewSize(size.Width*scale, size.Height*scale))
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}

	return v
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}

	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}

	return b
}
