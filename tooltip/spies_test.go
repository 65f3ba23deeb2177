package tooltip

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	fynetest "fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

// manualAnimator replaces the fyne animation clock in tests: the test
// driver runs no animation loop, so progress is advanced by hand.
type manualAnimator struct {
	from, to float32
	tick     func(float32)
	done     func()
	running  bool
	starts   int
	stops    int
}

func (m *manualAnimator) Start(from, to float32, tick func(float32), done func()) {
	m.from = from
	m.to = to
	m.tick = tick
	m.done = done
	m.running = true
	m.starts++
}

func (m *manualAnimator) Stop() {
	if m.running {
		m.stops++
	}
	m.running = false
}

// finish jumps the running animation to its end value and fires completion.
func (m *manualAnimator) finish() {
	if !m.running {
		return
	}
	m.running = false
	m.tick(m.to)
	m.done()
}

// step advances the running animation to an intermediate progress value.
func (m *manualAnimator) step(p float32) {
	if !m.running {
		return
	}
	m.tick(p)
}

type controllerFixture struct {
	ctrl   *Controller
	anim   *manualAnimator
	layer  *fyne.Container
	anchor *widget.Label
	win    fyne.Window
}

// newControllerFixture builds a controller against a real test canvas with
// the anchor laid out inside it, mirroring how an Area wires one up.
func newControllerFixture(t *testing.T, mode Mode, cfg Config) *controllerFixture {
	t.Helper()

	app := fynetest.NewApp()
	t.Cleanup(app.Quit)

	anchor := widget.NewLabel("anchor")
	layer := container.NewWithoutLayout()
	root := container.New(layout.NewStackLayout(), container.NewVBox(anchor, layout.NewSpacer()), layer)

	win := app.NewWindow("tooltip test")
	win.SetContent(root)
	win.Resize(fyne.NewSize(400, 300))
	win.Show()

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl := newController(layer, anchor, widget.NewLabel("tip content"), cfg, mode, quiet)
	anim := &manualAnimator{}
	ctrl.anim = anim
	// Keep the real debounce from firing mid-test; fire hideTimerFired by
	// hand instead.
	ctrl.hideDelay = time.Hour
	t.Cleanup(ctrl.Dismiss)

	return &controllerFixture{ctrl: ctrl, anim: anim, layer: layer, anchor: anchor, win: win}
}

func (f *controllerFixture) surfaceCount() int {
	return len(f.layer.Objects)
}
