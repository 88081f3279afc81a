package common

// Logical screen size. The window is scaled from this.
const (
	BaseWidth  = 800
	BaseHeight = 600
)

// OverlayFontSize is the pixel size of the finale text.
const OverlayFontSize = 70
