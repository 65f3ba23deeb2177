package tooltip

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

var (
	_ desktop.Hoverable = (*Area)(nil)
	_ fyne.Tappable     = (*Area)(nil)
	_ mobile.Touchable  = (*Area)(nil)
)

// longPressDelay is how long a touch must be held before the hold gesture
// starts in hold-to-show mode.
const longPressDelay = 500 * time.Millisecond

// Area wraps a target object and attaches a tooltip to it. The interaction
// mode is resolved once at construction from the configuration and the
// current platform; only that mode's events are acted on.
//
// The returned Area is the control handle: external callers use
// ShowTooltip/HideTooltip rather than looking the controller up through the
// widget tree.
type Area struct {
	widget.BaseWidget

	target fyne.CanvasObject
	ctrl   *Controller

	longPress *time.Timer
	touchSeq  int
}

// NewArea attaches a tooltip with the given content to target. The surface
// is rendered into layer, an overlay container stacked above the regular
// window content; layer's size is the viewport placement clamps against.
func NewArea(layer *fyne.Container, target, content fyne.CanvasObject, cfg Config) *Area {
	cfg.normalize()

	a := &Area{target: target}
	mode := resolveMode(isMobileDevice(), cfg)
	a.ctrl = newController(layer, a, content, cfg, mode, nil)
	a.ExtendBaseWidget(a)

	return a
}

func isMobileDevice() bool {
	dev := fyne.CurrentDevice()
	if dev == nil {
		return false
	}

	return dev.IsMobile()
}

// ShowTooltip shows the tooltip. Idempotent.
func (a *Area) ShowTooltip() {
	a.ctrl.Show()
}

// HideTooltip hides the tooltip through the normal grace window. Idempotent.
func (a *Area) HideTooltip() {
	a.ctrl.Hide()
}

// Dismiss removes the tooltip immediately with no exit animation and cancels
// every pending timer. Called automatically when the Area leaves the render
// tree.
func (a *Area) Dismiss() {
	a.cancelLongPress()
	a.ctrl.Dismiss()
}

// Controller exposes the visibility state machine, mainly for callers that
// need to inspect state or toggle programmatically.
func (a *Area) Controller() *Controller {
	return a.ctrl
}

func (a *Area) MouseIn(*desktop.MouseEvent) {
	a.ctrl.targetEnter()
}

func (a *Area) MouseMoved(*desktop.MouseEvent) {
}

func (a *Area) MouseOut() {
	a.ctrl.targetExit()
}

func (a *Area) Tapped(*fyne.PointEvent) {
	switch a.ctrl.mode {
	case ModeTapToggle, ModeTapToOpen:
		a.ctrl.Toggle()
	}
}

func (a *Area) TouchDown(*mobile.TouchEvent) {
	if a.ctrl.mode != ModeHoldToShow {
		return
	}

	a.cancelLongPress()
	seq := a.touchSeq
	a.longPress = time.AfterFunc(longPressDelay, func() {
		fyne.Do(func() { a.longPressFired(seq) })
	})
}

// longPressFired starts the hold gesture, unless the touch ended while the
// callback was queued. Timer.Stop cannot retract a callback already in
// flight, so the sequence check is what decides whether the press is still
// the live one.
func (a *Area) longPressFired(seq int) {
	if seq != a.touchSeq {
		return
	}
	a.longPress = nil
	a.ctrl.holdStart()
}

func (a *Area) TouchUp(*mobile.TouchEvent) {
	a.endTouch()
}

func (a *Area) TouchCancel(*mobile.TouchEvent) {
	a.endTouch()
}

func (a *Area) endTouch() {
	if a.ctrl.mode != ModeHoldToShow {
		return
	}

	a.cancelLongPress()
	if a.ctrl.holding {
		a.ctrl.holdEnd()
	}
}

func (a *Area) cancelLongPress() {
	a.touchSeq++
	if a.longPress == nil {
		return
	}
	a.longPress.Stop()
	a.longPress = nil
}

func (a *Area) CreateRenderer() fyne.WidgetRenderer {
	return &areaRenderer{area: a, objects: []fyne.CanvasObject{a.target}}
}

type areaRenderer struct {
	area    *Area
	objects []fyne.CanvasObject
}

func (r *areaRenderer) Layout(size fyne.Size) {
	r.area.target.Resize(size)
	r.area.target.Move(fyne.NewPos(0, 0))
}

func (r *areaRenderer) MinSize() fyne.Size {
	return r.area.target.MinSize()
}

func (r *areaRenderer) Refresh() {
	r.area.target.Refresh()
}

func (r *areaRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy tears the tooltip down when the target is removed from the render
// tree, regardless of animation state.
func (r *areaRenderer) Destroy() {
	r.area.Dismiss()
}
