package tooltip

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Mode selects which raw input events drive the tooltip. It is fixed when
// the Area is constructed.
type Mode int

const (
	// ModeHover shows on pointer enter and hides on pointer exit, with a
	// grace window to let the pointer travel onto the surface.
	ModeHover Mode = iota
	// ModeTapToggle toggles on tap. Mobile default.
	ModeTapToggle
	// ModeHoldToShow shows while a long press is held. Mobile opt-in.
	ModeHoldToShow
	// ModeTapToOpen toggles on tap and disables hover on every platform.
	ModeTapToOpen
)

func (m Mode) String() string {
	switch m {
	case ModeHover:
		return "hover"
	case ModeTapToggle:
		return "tap-toggle"
	case ModeHoldToShow:
		return "hold-to-show"
	case ModeTapToOpen:
		return "tap-to-open"
	default:
		return "unknown"
	}
}

// Insets is the inner padding around tooltip content.
type Insets struct {
	Top, Bottom, Left, Right float32
}

// Shadow describes one drop shadow behind the tooltip body.
type Shadow struct {
	Color  color.Color
	Offset fyne.Position
	Grow   float32
}

// Decoration is the visual styling consumed by the surface renderer. Nil
// colors fall back to theme-dependent defaults at draw time.
type Decoration struct {
	FillColor    color.Color
	BorderColor  color.Color
	BorderWidth  float32
	CornerRadius float32
	Shadows      []Shadow
}

// Config is the construction-time tooltip configuration. It is immutable
// once an Area has been created from it.
type Config struct {
	// ArrowSize is the length of the arrow protrusion. The arrow base is
	// twice this wide.
	ArrowSize float32
	// Offset is the gap between the target and the tooltip body.
	Offset float32
	// MinWidth and MaxWidth bound the tooltip body width. Zero means
	// unconstrained.
	MinWidth float32
	MaxWidth float32
	// Padding is the inner content padding. The arrow-bearing side is
	// additionally grown by ArrowSize.
	Padding *Insets
	// Decoration styles the surface. Nil uses theme defaults.
	Decoration *Decoration
	// PreferredSide is tried first by the placement search.
	PreferredSide Side
	// UseHoldGesture switches the mobile default from tap-toggle to
	// hold-to-show.
	UseHoldGesture bool
	// EnableTapToOpen switches to tap-to-open on all platforms and
	// disables hover.
	EnableTapToOpen bool
	// ContentSelfAligning skips the centering wrapper around content that
	// does its own alignment.
	ContentSelfAligning bool
}

// DefaultConfig returns the stock configuration: small arrow, 4 unit gap,
// placement below the target.
func DefaultConfig() Config {
	return Config{
		ArrowSize:     defaultArrowSize,
		Offset:        defaultOffset,
		PreferredSide: SideBelow,
	}
}

const (
	defaultArrowSize    float32 = 8
	defaultOffset       float32 = 4
	defaultPadding      float32 = 12
	defaultCornerRadius float32 = 8
)

// normalize fills zero-value fields with their defaults so the rest of the
// package never re-checks them.
func (c *Config) normalize() {
	if c.ArrowSize <= 0 {
		c.ArrowSize = defaultArrowSize
	}
	if c.Offset <= 0 {
		c.Offset = defaultOffset
	}
	if c.MaxWidth > 0 && c.MinWidth > c.MaxWidth {
		c.MaxWidth = c.MinWidth
	}
	if c.Padding == nil {
		c.Padding = &Insets{
			Top:    defaultPadding,
			Bottom: defaultPadding,
			Left:   defaultPadding,
			Right:  defaultPadding,
		}
	}
}

// resolveMode maps configuration and platform onto the single interaction
// mode the Area listens with.
func resolveMode(mobile bool, c Config) Mode {
	if c.EnableTapToOpen {
		return ModeTapToOpen
	}
	if !mobile {
		return ModeHover
	}
	if c.UseHoldGesture {
		return ModeHoldToShow
	}

	return ModeTapToggle
}

var defaultShadowColor = color.NRGBA{A: 0x42}

// effectiveDecoration resolves nil decoration fields against the current
// theme, matching the overlay styling used by stock pop-ups.
func effectiveDecoration(dec *Decoration, th fyne.Theme, variant fyne.ThemeVariant) Decoration {
	out := Decoration{CornerRadius: defaultCornerRadius}
	if dec != nil {
		out = *dec
	}
	if out.FillColor == nil {
		out.FillColor = th.Color(theme.ColorNameOverlayBackground, variant)
	}
	if out.BorderColor == nil {
		out.BorderColor = th.Color(theme.ColorNameSeparator, variant)
		if out.BorderWidth == 0 && dec == nil {
			out.BorderWidth = 1
		}
	}
	if dec == nil {
		out.Shadows = []Shadow{{
			Color:  defaultShadowColor,
			Offset: fyne.NewPos(0, 2),
		}}
	}

	return out
}
