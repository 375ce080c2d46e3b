package ui

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pterm/pterm"
)

// DarkTheme selects colours that read well on a dark background.
var DarkTheme bool

// Highlight renders a in a colour that stands out against the terminal
// background.
func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Swatch renders a small block in the given hex colour. Invalid colours
// render as a plain block.
func Swatch(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "■"
	}

	r, g, b := c.RGB255()

	return pterm.NewRGB(r, g, b).Sprint("■")
}

// ContrastColor returns black or white, whichever is easier to read on top
// of the hex colour bg.
func ContrastColor(bg string) string {
	c, err := colorful.Hex(bg)
	if err != nil {
		return "#FFFFFF"
	}

	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}

	return "#FFFFFF"
}
