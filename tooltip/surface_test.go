package tooltip

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	fynetest "fyne.io/fyne/v2/test"
)

func TestSurfaceMinSizeIncludesPaddingAndArrowBand(t *testing.T) {
	app := fynetest.NewApp()
	t.Cleanup(app.Quit)

	content := canvas.NewRectangle(nil)
	content.SetMinSize(fyne.NewSize(100, 40))

	cfg := DefaultConfig()
	cfg.ContentSelfAligning = true
	cfg.normalize()

	s := newSurface(content, cfg, nil)
	min := s.MinSize()

	want := fyne.NewSize(100+2*defaultPadding+cfg.ArrowSize, 40+2*defaultPadding+cfg.ArrowSize)
	if min != want {
		t.Fatalf("unexpected min size: got %v want %v", min, want)
	}
}

func TestSurfaceHoverReportsToController(t *testing.T) {
	f := newControllerFixture(t, ModeHover, DefaultConfig())

	f.ctrl.targetEnter()
	f.anim.finish()

	s, ok := f.layer.Objects[0].(*surface)
	if !ok {
		t.Fatalf("expected a surface on the layer, got %T", f.layer.Objects[0])
	}

	f.ctrl.targetExit()
	if f.ctrl.hideTimer == nil {
		t.Fatalf("expected a pending hide")
	}

	s.MouseIn(nil)
	if f.ctrl.hideTimer != nil {
		t.Fatalf("surface hover must cancel the pending hide")
	}

	s.MouseOut()
	if f.ctrl.hideTimer == nil {
		t.Fatalf("leaving the surface must re-arm the hide")
	}
}

func TestSurfaceHoverGuardsNilController(t *testing.T) {
	app := fynetest.NewApp()
	t.Cleanup(app.Quit)

	s := newSurface(canvas.NewRectangle(nil), DefaultConfig(), nil)
	// Late pointer events after teardown must not panic.
	s.MouseIn(nil)
	s.MouseOut()
}

func TestInsideArrow(t *testing.T) {
	tests := []struct {
		name string
		side Side
		x, y float32
		want bool
	}{
		{"below apex", SideBelow, 8, 0.5, true},
		{"below base corner outside", SideBelow, 0.5, 0.5, false},
		{"below base center", SideBelow, 8, 7.5, true},
		{"above apex", SideAbove, 8, 7.5, true},
		{"above base corner outside", SideAbove, 15.5, 7.5, false},
		{"right apex", SideRight, 0.5, 8, true},
		{"right off-axis outside", SideRight, 0.5, 1, false},
		{"left apex", SideLeft, 7.5, 8, true},
		{"left off-axis outside", SideLeft, 7.5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// A 16x8 bounding box for horizontal arrows, 8x16 for vertical.
			w, h := float32(16), float32(8)
			if tc.side == SideRight || tc.side == SideLeft {
				w, h = 8, 16
			}
			if got := insideArrow(tc.side, tc.x, tc.y, w, h); got != tc.want {
				t.Fatalf("insideArrow(%v, %v, %v) = %v, want %v", tc.side, tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestTriangleBounds(t *testing.T) {
	tri := arrowTriangle{
		Base1: fyne.NewPos(52, 8),
		Tip:   fyne.NewPos(60, 0),
		Base2: fyne.NewPos(68, 8),
	}

	pos, size := triangleBounds(tri)
	if pos != fyne.NewPos(52, 0) {
		t.Fatalf("unexpected bounds position: %v", pos)
	}
	if size != fyne.NewSize(16, 8) {
		t.Fatalf("unexpected bounds size: %v", size)
	}
}

func TestSurfaceScalesDecorationTowardAnchor(t *testing.T) {
	f := newControllerFixture(t, ModeHover, DefaultConfig())

	f.ctrl.Show()
	s := f.layer.Objects[0].(*surface)
	full := s.Size()

	r := fynetest.WidgetRenderer(s).(*surfaceRenderer)

	// At progress 0 the body is shrunk by the minimum scale.
	s.setProgress(0)
	bodyAtZero := r.body.Size()

	s.setProgress(1)
	bodyAtOne := r.body.Size()

	if bodyAtZero.Width >= bodyAtOne.Width {
		t.Fatalf("body should grow with progress: %v vs %v", bodyAtZero, bodyAtOne)
	}
	if bodyAtOne.Width != full.Width {
		t.Fatalf("body at progress 1 should span the surface width: got %v want %v", bodyAtOne.Width, full.Width)
	}
}
