package enum

// swatch is a background and a readable text color for a token.
type swatch struct {
	bg, fg string
}

var colorSwatches = map[Color]swatch{
	ColorRed:        {bg: "#e74c3c", fg: "#ffffff"},
	ColorGreen:      {bg: "#27ae60", fg: "#ffffff"},
	ColorLightGreen: {bg: "#90ee90", fg: "#000000"},
	ColorViolet:     {bg: "#8e44ad", fg: "#ffffff"},
	ColorGray:       {bg: "#7f8c8d", fg: "#ffffff"},
	ColorDarkBlue:   {bg: "#1f3a93", fg: "#ffffff"},
	ColorDarkPurple: {bg: "#4a235a", fg: "#ffffff"},
	ColorBlue:       {bg: "#2980b9", fg: "#ffffff"},
	ColorOrange:     {bg: "#f39c12", fg: "#000000"},
}

// Background returns the hex background color for the token.
func (c Color) Background() string {
	if s, ok := colorSwatches[c]; ok {
		return s.bg
	}
	return "#7f8c8d"
}

// Foreground returns the hex text color readable on the token's background.
func (c Color) Foreground() string {
	if s, ok := colorSwatches[c]; ok {
		return s.fg
	}
	return "#ffffff"
}
