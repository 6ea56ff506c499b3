package core

import "strings"

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette. Each hue has five shades, 1 being the darkest.
const (
	ColorDefault Color = iota
	ColorPlayer
	ColorRed1
	ColorRed2
	ColorRed3
	ColorRed4
	ColorRed5
	ColorGreen1
	ColorGreen2
	ColorGreen3
	ColorGreen4
	ColorGreen5
	ColorBlue1
	ColorBlue2
	ColorBlue3
	ColorBlue4
	ColorBlue5
	ColorYellow1
	ColorYellow2
	ColorYellow3
	ColorYellow4
	ColorYellow5
	ColorPurple1
	ColorPurple2
	ColorPurple3
	ColorPurple4
	ColorPurple5
	ColorCyan1
	ColorCyan2
	ColorCyan3
	ColorCyan4
	ColorCyan5
	ColorGrey1
	ColorGrey2

	colorCount
)

var colorNames = [colorCount]string{
	"default", "player",
	"red_1", "red_2", "red_3", "red_4", "red_5",
	"green_1", "green_2", "green_3", "green_4", "green_5",
	"blue_1", "blue_2", "blue_3", "blue_4", "blue_5",
	"yellow_1", "yellow_2", "yellow_3", "yellow_4", "yellow_5",
	"purple_1", "purple_2", "purple_3", "purple_4", "purple_5",
	"cyan_1", "cyan_2", "cyan_3", "cyan_4", "cyan_5",
	"grey_1", "grey_2",
}

// String returns the palette name of the color.
func (c Color) String() string {
	if c >= colorCount {
		return "default"
	}
	return colorNames[c]
}

// ColorByName looks up a palette color by its name (e.g. "red_3").
// Lookup is case-insensitive and accepts "gray" for "grey".
func ColorByName(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.Replace(name, "gray", "grey", 1)
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return ColorDefault, false
}

// Shade returns the n-th shade (1..5) of the hue that c belongs to.
// Colors outside the five-shade hues are returned unchanged.
func (c Color) Shade(n int) Color {
	if c < ColorRed1 || c > ColorCyan5 {
		return c
	}
	base := ColorRed1 + (c-ColorRed1)/5*5
	return base + Color(Clamp(n, 1, 5)-1)
}
