package main

import (
	"flag"
	"image/color"
	"log/slog"
	"net/url"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ngtrongha/custom-tooltip/internal/logging"
	"github.com/ngtrongha/custom-tooltip/tooltip"
)

func main() {
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	logFile := flag.String("log-file", "", "optional log file path")
	flag.Parse()

	closeLogs, err := logging.Setup(*logLevel, *logFile)
	if err != nil {
		slog.Error("configure logging", "error", err)
		os.Exit(1)
	}
	defer func() { _ = closeLogs() }()

	a := app.New()
	win := a.NewWindow("custom-tooltip demo")

	// Overlay layer for every tooltip surface, stacked above the content.
	layer := container.NewWithoutLayout()

	hover := tooltip.NewArea(layer,
		widget.NewLabel("Hover me"),
		widget.NewLabel("Shown on hover. Leaving the target gives you a\nshort grace window to reach the tooltip."),
		tooltip.DefaultConfig(),
	)

	docsURL, _ := url.Parse("https://docs.fyne.io")
	linkTip := container.NewVBox(
		widget.NewLabel("Interactive content stays open while hovered:"),
		widget.NewHyperlink("open the Fyne docs", docsURL),
	)
	linkCfg := tooltip.DefaultConfig()
	linkCfg.PreferredSide = tooltip.SideRight
	linkCfg.MaxWidth = 320
	link := tooltip.NewArea(layer, widget.NewLabel("Hover me, then click the link"), linkTip, linkCfg)

	tapCfg := tooltip.DefaultConfig()
	tapCfg.EnableTapToOpen = true
	tap := tooltip.NewArea(layer,
		widget.NewLabel("Tap me (hover disabled)"),
		widget.NewLabel("Toggled by tap on every platform."),
		tapCfg,
	)

	styledCfg := tooltip.DefaultConfig()
	styledCfg.PreferredSide = tooltip.SideAbove
	styledCfg.Decoration = &tooltip.Decoration{
		FillColor:    color.NRGBA{R: 0x1f, G: 0x3a, B: 0x5f, A: 0xff},
		BorderColor:  color.NRGBA{R: 0x6a, G: 0xa9, B: 0xff, A: 0xff},
		BorderWidth:  1,
		CornerRadius: 12,
		Shadows: []tooltip.Shadow{
			{Color: color.NRGBA{A: 0x60}, Offset: fyne.NewPos(0, 3), Grow: 2},
		},
	}
	styled := tooltip.NewArea(layer,
		widget.NewLabel("Custom decoration"),
		widget.NewLabel("Styled fill, border, radius and shadow."),
		styledCfg,
	)

	controlledCfg := tooltip.DefaultConfig()
	controlledCfg.PreferredSide = tooltip.SideRight
	controlled := tooltip.NewArea(layer,
		widget.NewLabel("Controlled externally"),
		widget.NewLabel("Driven by the buttons below."),
		controlledCfg,
	)

	content := container.NewVBox(
		widget.NewLabel("custom-tooltip demo"),
		widget.NewSeparator(),
		hover,
		link,
		tap,
		styled,
		controlled,
		container.NewHBox(
			widget.NewButton("Show", controlled.ShowTooltip),
			widget.NewButton("Hide", controlled.HideTooltip),
		),
	)

	win.SetContent(container.New(layout.NewStackLayout(), content, layer))
	win.Resize(fyne.NewSize(640, 480))
	win.ShowAndRun()
}
