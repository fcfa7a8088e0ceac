package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_Swatch(t *testing.T) {
	tests := []struct {
		color  Color
		bg, fg string
	}{
		{ColorRed, "#e74c3c", "#ffffff"},
		{ColorGreen, "#27ae60", "#ffffff"},
		{ColorLightGreen, "#90ee90", "#000000"},
		{ColorOrange, "#f39c12", "#000000"},
		{Color{}, "#7f8c8d", "#ffffff"},
	}
	for _, tc := range tests {
		t.Run(tc.color.String(), func(t *testing.T) {
			assert.Equal(t, tc.bg, tc.color.Background())
			assert.Equal(t, tc.fg, tc.color.Foreground())
		})
	}
}

func TestColor_AllHaveSwatch(t *testing.T) {
	for c := range ColorIter() {
		_, ok := colorSwatches[c]
		assert.True(t, ok, "no swatch for %s", c)
	}
}
