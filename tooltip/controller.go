package tooltip

import (
	"log/slog"
	"math"
	"time"

	"fyne.io/fyne/v2"
)

// VisibilityState is the lifecycle state of the tooltip surface. It is
// owned exclusively by the Controller and advances only through its
// transition methods.
type VisibilityState int

const (
	StateHidden VisibilityState = iota
	StateShowing
	StateVisible
	StateHiding
)

func (s VisibilityState) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateShowing:
		return "showing"
	case StateVisible:
		return "visible"
	case StateHiding:
		return "hiding"
	default:
		return "unknown"
	}
}

const (
	// hideGraceDelay lets the pointer travel from the target onto the
	// surface before a hide commits.
	hideGraceDelay = 150 * time.Millisecond
	// showAnimationDuration is the full hidden-to-visible time. Reversals
	// scale it by the remaining distance.
	showAnimationDuration = 200 * time.Millisecond
)

// animator drives the show/hide progress between two values. The production
// implementation wraps fyne.Animation; tests substitute a manual one since
// the test driver runs no animation loop.
type animator interface {
	Start(from, to float32, tick func(float32), done func())
	Stop()
}

type fyneAnimator struct {
	duration time.Duration
	current  *fyne.Animation
}

func (a *fyneAnimator) Start(from, to float32, tick func(float32), done func()) {
	a.Stop()

	span := to - from
	dur := time.Duration(float64(a.duration) * math.Abs(float64(span)))
	if dur <= 0 {
		tick(to)
		done()
		return
	}

	var anim *fyne.Animation
	anim = fyne.NewAnimation(dur, func(d float32) {
		tick(from + span*d)
		if d >= 1 && a.current == anim {
			a.current = nil
			done()
		}
	})
	anim.Curve = fyne.AnimationLinear
	a.current = anim
	anim.Start()
}

func (a *fyneAnimator) Stop() {
	if a.current == nil {
		return
	}
	a.current.Stop()
	a.current = nil
}

// Controller owns the visibility state machine for a single tooltip: the
// debounced hide timer, the animation progress and the one surface the
// tooltip renders into. At most one surface exists per Controller.
type Controller struct {
	layer   *fyne.Container
	anchor  fyne.CanvasObject
	content fyne.CanvasObject
	cfg     Config
	mode    Mode
	logger  *slog.Logger

	state     VisibilityState
	progress  float32
	surface   *surface
	placement *Placement

	overTarget  bool
	overSurface bool
	holding     bool

	hideTimer *time.Timer
	hideDelay time.Duration
	anim      animator
}

func newController(layer *fyne.Container, anchor, content fyne.CanvasObject, cfg Config, mode Mode, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.With("component", "tooltip")
	}
	cfg.normalize()

	return &Controller{
		layer:     layer,
		anchor:    anchor,
		content:   content,
		cfg:       cfg,
		mode:      mode,
		logger:    logger,
		state:     StateHidden,
		hideDelay: hideGraceDelay,
		anim:      &fyneAnimator{duration: showAnimationDuration},
	}
}

// State reports the current visibility state. It is the single source of
// truth shared by hover, tap, hold and the external Show/Hide calls.
func (c *Controller) State() VisibilityState {
	return c.state
}

// Placement returns the placement computed for the current surface, or nil
// while no surface exists.
func (c *Controller) Placement() *Placement {
	return c.placement
}

// Mode reports the interaction mode fixed at construction.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Show makes the tooltip visible. Repeated calls are idempotent.
func (c *Controller) Show() {
	if c.state == StateVisible {
		c.cancelHideTimer()
		return
	}
	c.attemptShow()
}

// Hide requests a hide through the normal grace window. Calling it while
// already hidden is a no-op.
func (c *Controller) Hide() {
	if c.state == StateHidden {
		return
	}
	c.attemptHide()
}

// Toggle flips visibility. A toggle-hide is user-intentional: it bypasses
// the grace window and the pointer-over checks that veto ambient hides.
func (c *Controller) Toggle() {
	switch c.state {
	case StateShowing, StateVisible:
		c.cancelHideTimer()
		c.beginHide()
	default:
		c.attemptShow()
	}
}

// Dismiss tears the tooltip down unconditionally: timers canceled, the
// animation stopped and the surface removed with no exit animation. Safe to
// call when already hidden, and required when the target leaves the render
// tree while the surface is open.
func (c *Controller) Dismiss() {
	c.cancelHideTimer()
	c.anim.Stop()
	c.overTarget = false
	c.overSurface = false
	c.holding = false
	c.progress = 0
	c.destroySurface()
	c.setState(StateHidden)
}

func (c *Controller) attemptShow() {
	c.cancelHideTimer()

	switch c.state {
	case StateVisible, StateShowing:
		// Surface already up or on its way; nothing more to do.
	case StateHiding:
		// Reverse in place rather than tearing down and re-measuring.
		c.setState(StateShowing)
		c.animateTo(1)
	case StateHidden:
		if !c.createSurface() {
			return
		}
		c.setState(StateShowing)
		c.animateTo(1)
	}
}

func (c *Controller) attemptHide() {
	c.cancelHideTimer()
	if c.state == StateHidden {
		return
	}

	c.hideTimer = time.AfterFunc(c.hideDelay, func() {
		fyne.Do(c.hideTimerFired)
	})
}

// hideTimerFired re-evaluates the keep-open conditions at fire time, not at
// schedule time, so the most recent pointer/hold state wins.
func (c *Controller) hideTimerFired() {
	c.hideTimer = nil
	if c.surface == nil {
		return
	}
	if c.keepOpen() {
		return
	}
	c.beginHide()
}

func (c *Controller) keepOpen() bool {
	if c.mode == ModeTapToOpen {
		// Hover is disabled entirely in tap-to-open mode.
		return c.holding
	}

	return c.overTarget || c.overSurface || c.holding
}

func (c *Controller) beginHide() {
	if c.state == StateHidden || c.state == StateHiding || c.surface == nil {
		return
	}
	c.setState(StateHiding)
	c.animateTo(0)
}

func (c *Controller) holdStart() {
	c.holding = true
	c.attemptShow()
}

func (c *Controller) holdEnd() {
	c.holding = false
	c.attemptHide()
}

func (c *Controller) targetEnter() {
	if c.mode != ModeHover {
		return
	}
	c.overTarget = true
	c.attemptShow()
}

func (c *Controller) targetExit() {
	if c.mode != ModeHover {
		return
	}
	c.overTarget = false
	c.attemptHide()
}

func (c *Controller) surfaceEnter() {
	if c.mode != ModeHover {
		return
	}
	c.overSurface = true
	c.cancelHideTimer()
}

func (c *Controller) surfaceExit() {
	if c.mode != ModeHover {
		return
	}
	c.overSurface = false
	c.attemptHide()
}

// createSurface builds, measures and places the tooltip surface. It returns
// false when the anchor is not attached to a canvas yet; the show attempt is
// simply dropped and retried on the next trigger.
func (c *Controller) createSurface() bool {
	if c.surface != nil {
		return true
	}
	if c.layer == nil || c.anchor == nil {
		return false
	}

	app := fyne.CurrentApp()
	if app == nil {
		return false
	}
	driver := app.Driver()
	if driver == nil {
		return false
	}
	cnv := driver.CanvasForObject(c.anchor)
	if cnv == nil {
		return false
	}

	viewport := c.layer.Size()
	layerPos := driver.AbsolutePositionForObject(c.layer)
	anchorPos := driver.AbsolutePositionForObject(c.anchor).Subtract(layerPos)
	if viewport.Width <= 0 || viewport.Height <= 0 {
		viewport = cnv.Size()
		anchorPos = driver.AbsolutePositionForObject(c.anchor)
	}

	s := newSurface(c.content, c.cfg, c)
	// Invisible neutral frame first so the animation has a valid start.
	s.setProgress(0)

	size := c.measuredSize(s)
	s.Resize(size)

	target := Target{Position: anchorPos, Size: c.anchor.Size()}
	side := ChooseSide(c.cfg.PreferredSide, target, size, viewport, c.cfg.Offset)
	pl := Compute(side, target, size, viewport, c.cfg.Offset)

	c.placement = &pl
	c.surface = s
	s.setPlacement(pl.Side, pl.ArrowOffset)
	s.Move(pl.Origin)

	c.layer.Add(s)
	c.layer.Refresh()
	c.logger.Debug("surface created",
		"side", pl.Side.String(),
		"origin_x", pl.Origin.X,
		"origin_y", pl.Origin.Y,
		"arrow_offset", pl.ArrowOffset,
	)

	return true
}

// measuredSize applies the configured width bounds to the surface's
// intrinsic size.
func (c *Controller) measuredSize(s *surface) fyne.Size {
	min := s.MinSize()
	w := min.Width
	if c.cfg.MinWidth > 0 && w < c.cfg.MinWidth {
		w = c.cfg.MinWidth
	}
	if c.cfg.MaxWidth > 0 && w > c.cfg.MaxWidth {
		w = c.cfg.MaxWidth
	}

	return fyne.NewSize(w, min.Height)
}

func (c *Controller) destroySurface() {
	if c.surface == nil {
		return
	}
	if c.layer != nil {
		c.layer.Remove(c.surface)
		c.layer.Refresh()
	}
	c.surface = nil
	c.placement = nil
	c.progress = 0
}

func (c *Controller) animateTo(to float32) {
	if c.progress == to {
		// A reversal can land here before the opposite animation's first
		// tick; that animation must not keep driving progress afterwards.
		c.anim.Stop()
		c.applyProgress(to)
		c.animationDone(to)
		return
	}
	c.anim.Start(c.progress, to, c.applyProgress, func() {
		c.animationDone(to)
	})
}

func (c *Controller) applyProgress(p float32) {
	c.progress = p
	if s := c.surface; s != nil {
		s.setProgress(p)
	}
}

func (c *Controller) animationDone(to float32) {
	switch {
	case to >= 1 && c.state == StateShowing:
		c.setState(StateVisible)
	case to <= 0 && c.state == StateHiding:
		c.destroySurface()
		c.setState(StateHidden)
	}
}

func (c *Controller) cancelHideTimer() {
	if c.hideTimer == nil {
		return
	}
	c.hideTimer.Stop()
	c.hideTimer = nil
}

func (c *Controller) setState(next VisibilityState) {
	if c.state == next {
		return
	}
	c.logger.Debug("visibility transition", "from", c.state.String(), "to", next.String())
	c.state = next
}
