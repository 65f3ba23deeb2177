package tooltip

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
)

func TestBodyRect(t *testing.T) {
	size := fyne.NewSize(120, 48)

	tests := []struct {
		name     string
		side     Side
		wantPos  fyne.Position
		wantSize fyne.Size
	}{
		{"below reserves top band", SideBelow, fyne.NewPos(0, 8), fyne.NewSize(120, 40)},
		{"above reserves bottom band", SideAbove, fyne.NewPos(0, 0), fyne.NewSize(120, 40)},
		{"right reserves left band", SideRight, fyne.NewPos(8, 0), fyne.NewSize(112, 48)},
		{"left reserves right band", SideLeft, fyne.NewPos(0, 0), fyne.NewSize(112, 48)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, sz := bodyRect(tc.side, 8, size)
			if pos != tc.wantPos || sz != tc.wantSize {
				t.Fatalf("unexpected body rect: got %v %v want %v %v", pos, sz, tc.wantPos, tc.wantSize)
			}
		})
	}
}

func TestArrowShape(t *testing.T) {
	size := fyne.NewSize(120, 48)

	tests := []struct {
		name   string
		side   Side
		offset float32
		want   arrowTriangle
	}{
		{
			name:   "below points up",
			side:   SideBelow,
			offset: 60,
			want: arrowTriangle{
				Base1: fyne.NewPos(52, 8),
				Tip:   fyne.NewPos(60, 0),
				Base2: fyne.NewPos(68, 8),
			},
		},
		{
			name:   "above points down",
			side:   SideAbove,
			offset: 60,
			want: arrowTriangle{
				Base1: fyne.NewPos(52, 40),
				Tip:   fyne.NewPos(60, 48),
				Base2: fyne.NewPos(68, 40),
			},
		},
		{
			name:   "right points left",
			side:   SideRight,
			offset: 24,
			want: arrowTriangle{
				Base1: fyne.NewPos(8, 16),
				Tip:   fyne.NewPos(0, 24),
				Base2: fyne.NewPos(8, 32),
			},
		},
		{
			name:   "left points right",
			side:   SideLeft,
			offset: 24,
			want: arrowTriangle{
				Base1: fyne.NewPos(112, 16),
				Tip:   fyne.NewPos(120, 24),
				Base2: fyne.NewPos(112, 32),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := arrowShape(tc.side, tc.offset, 8, size)
			if !ok {
				t.Fatalf("expected arrow to be drawable")
			}
			if got != tc.want {
				t.Fatalf("unexpected triangle: got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestArrowShapeOmittedWithoutRoom(t *testing.T) {
	// Arrow base would start before the edge: omitted, not drawn off-shape.
	if _, ok := arrowShape(SideBelow, 6, 8, fyne.NewSize(120, 48)); ok {
		t.Fatalf("expected arrow to be omitted when offset-arrowSize < 0")
	}
	if _, ok := arrowShape(SideBelow, 8, 8, fyne.NewSize(120, 48)); !ok {
		t.Fatalf("expected arrow exactly at the edge start to be drawn")
	}
}

func TestAnchorPoint(t *testing.T) {
	size := fyne.NewSize(120, 48)

	tests := []struct {
		side   Side
		offset float32
		want   fyne.Position
	}{
		{SideBelow, 60, fyne.NewPos(60, 0)},
		{SideAbove, 60, fyne.NewPos(60, 48)},
		{SideRight, 24, fyne.NewPos(0, 24)},
		{SideLeft, 24, fyne.NewPos(120, 24)},
	}

	for _, tc := range tests {
		t.Run(tc.side.String(), func(t *testing.T) {
			if got := anchorPoint(tc.side, tc.offset, size); got != tc.want {
				t.Fatalf("unexpected anchor: got %v want %v", got, tc.want)
			}
		})
	}
}

func TestEasingCurves(t *testing.T) {
	if easeInOut(0) != 0 || easeInOut(1) != 1 {
		t.Fatalf("opacity curve must pin its endpoints")
	}
	if easeOut(0) != 0 || easeOut(1) != 1 {
		t.Fatalf("scale curve must pin its endpoints")
	}

	prev := float32(-1)
	for i := 0; i <= 20; i++ {
		p := float32(i) / 20
		v := easeInOut(p)
		if v < prev {
			t.Fatalf("opacity curve not monotonic at %v: %v < %v", p, v, prev)
		}
		prev = v
	}
}

func TestWithAlphaKeepsColorChannels(t *testing.T) {
	// A semi-transparent red must stay full red at half opacity; carrying
	// the premultiplied components over would darken it to half red.
	in := color.NRGBA{R: 0xff, A: 0x80}

	got, ok := withAlpha(in, 0.5).(color.NRGBA64)
	if !ok {
		t.Fatalf("expected a non-premultiplied result, got %T", withAlpha(in, 0.5))
	}
	if got.R != 0xffff || got.G != 0 || got.B != 0 {
		t.Fatalf("color channels disturbed: got %+v", got)
	}
	if got.A != 0x4040 {
		t.Fatalf("alpha not halved: got %#x want 0x4040", got.A)
	}

	if c := withAlpha(in, 1); c != in {
		t.Fatalf("full opacity must return the color unchanged")
	}
	if c := withAlpha(in, 0); c != color.Transparent {
		t.Fatalf("zero opacity must be transparent, got %v", c)
	}
}

func TestScaleForProgress(t *testing.T) {
	if got := scaleForProgress(0); got != minSurfaceScale {
		t.Fatalf("scale at progress 0: got %v want %v", got, minSurfaceScale)
	}
	if got := scaleForProgress(1); got != 1 {
		t.Fatalf("scale at progress 1: got %v want 1", got)
	}
	mid := scaleForProgress(0.5)
	if mid <= minSurfaceScale || mid >= 1 {
		t.Fatalf("scale at progress 0.5 out of range: %v", mid)
	}
}
