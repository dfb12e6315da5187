package vizui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette — CRT green terminal aesthetic.
var (
	colorBG = c("#080e0b")

	// Canvas ink
	gridColor   = c("#0e2e20")
	domainColor = c("#00d4a0")
	leafColor   = c("#1a5a42")
	siteColor   = c("#00ffc8")
	selColor    = c("#00ffee")
	rangeColor  = c("#ddaa44")
	hitColor    = c("#ffcc66")
	rayColor    = c("#ff6600")
	foundColor  = c("#ffcc00")

	// Chrome colors
	toolbarColor = c("#00ffc8")
	footerColor  = c("#666666")
	errColor     = c("#ff5544")
)
