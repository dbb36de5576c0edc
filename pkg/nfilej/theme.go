package nfilej

import (
	"github.com/gdamore/tcell/v2"
)

// Theme is the display theme toggled at runtime.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func ParseTheme(s string) Theme {
	if s == "light" {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

type palette struct {
	Background tcell.Color
	Foreground tcell.Color
	Muted      tcell.Color

	DirColor   tcell.Color
	ErrorColor tcell.Color
	Graphics   tcell.Color

	SelectedText tcell.Style

	HeaderBackground tcell.Color
	HeaderForeground tcell.Color

	FooterBackground tcell.Color
	FooterForeground tcell.Color
	HotkeyColor      string

	// ColorFiles enables per extension file colours,
	// which are picked for a dark background.
	ColorFiles bool
}

var palettes = map[Theme]palette{
	ThemeDark: {
		Background:       tcell.ColorBlack,
		Foreground:       tcell.ColorWhiteSmoke,
		Muted:            tcell.ColorGray,
		DirColor:         tcell.ColorCornflowerBlue,
		ErrorColor:       tcell.ColorOrangeRed,
		Graphics:         tcell.ColorGray,
		SelectedText:     tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorCornflowerBlue),
		HeaderBackground: tcell.ColorDarkSlateBlue,
		HeaderForeground: tcell.ColorWhite,
		FooterBackground: tcell.ColorDarkSlateGray,
		FooterForeground: tcell.ColorSilver,
		HotkeyColor:      "orange",
		ColorFiles:       true,
	},
	ThemeLight: {
		Background:       tcell.ColorWhite,
		Foreground:       tcell.ColorBlack,
		Muted:            tcell.ColorDimGray,
		DirColor:         tcell.ColorNavy,
		ErrorColor:       tcell.ColorDarkRed,
		Graphics:         tcell.ColorDarkGray,
		SelectedText:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy),
		HeaderBackground: tcell.ColorLightSteelBlue,
		HeaderForeground: tcell.ColorBlack,
		FooterBackground: tcell.ColorGainsboro,
		FooterForeground: tcell.ColorDarkSlateGray,
		HotkeyColor:      "darkred",
		ColorFiles:       false,
	},
}

func (t Theme) palette() palette {
	return palettes[t]
}
