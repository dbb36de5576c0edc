package nfilej

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/gdamore/tcell/v2"
)

var fileColors = map[string]tcell.Color{
	"exe":  tcell.ColorRed,
	"go":   tcell.ColorAqua,
	"cpp":  tcell.ColorDodgerBlue,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"cs":   tcell.ColorLime,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"sql":  tcell.ColorSpringGreen,
	"json": tcell.ColorGold,
	"xml":  tcell.ColorLightYellow,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"py":   tcell.ColorLightGreen,
	"rb":   tcell.ColorRed,
	"rs":   tcell.ColorOrange,
	"sh":   tcell.ColorGreen,
	"txt":  tcell.ColorWhite,
	"csv":  tcell.ColorLightGreen,
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
	"mp4":  tcell.ColorLightSalmon,
	"log":  tcell.ColorRosyBrown,
}

const (
	defaultFileColor = tcell.ColorWhiteSmoke
	sourceFileColor  = tcell.ColorPaleTurquoise
)

// lexer lookups walk every registered lexer, results are cached per key
var lexerColors sync.Map

// fileColor picks a colour by extension. Files chroma has a lexer for,
// e.g. Makefile or main.kt, get the generic source colour.
func fileColor(name string) tcell.Color {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := fileColors[ext]; ok {
		return color
	}
	key := "." + ext
	if ext == "" {
		key = name
	}
	if color, ok := lexerColors.Load(key); ok {
		return color.(tcell.Color)
	}
	color := defaultFileColor
	if lexers.Match(name) != nil {
		color = sourceFileColor
	}
	lexerColors.Store(key, color)
	return color
}
