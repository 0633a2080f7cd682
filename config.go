package main

import "image/color"

const (
	// --- Page ---
	RuleSize     = 48.0
	ShadowOffset = 2.0
	ShadowSpread = 4.0

	// --- Header ---
	HeaderTitleSize = 18.0
	HeaderSmallSize = 13.0

	// --- Debug ---
	DebugFontSize = 12.0
)

var (
	ColorRule    = color.RGBA{0, 0, 0, 10}
	ColorDivider = color.RGBA{0, 0, 0, 40}
)
