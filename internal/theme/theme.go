// Package theme maps the editor's style names onto tcell styles.
package theme

import (
	"strings"

	"github.com/bethropolis/modal/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names looked up by the renderer and status bar. A dotted name
// falls back to the part before the first dot, then to Default.
const (
	StyleDefault           = "Default"
	StyleSelection         = "Selection"
	StyleNonText           = "NonText" // "~" past the end of the buffer
	StyleLineNumber        = "LineNumber"
	StyleLineNumberCurrent = "LineNumber.Current"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBar.Modified"
	StyleStatusBarMessage  = "StatusBar.Message"
	StyleStatusBarError    = "StatusBar.Error"
	StyleCommandLine       = "CommandLine"
)

// ModeStyle is the status bar style for a mode label such as "INSERT".
func ModeStyle(modeName string) string {
	return "StatusBar.Mode." + strings.ToLower(modeName)
}

type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// Style resolves name, falling back to its base name and then Default.
func (t *Theme) Style(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	for base := name; strings.Contains(base, "."); {
		base = base[:strings.LastIndex(base, ".")]
		if style, ok := t.Styles[base]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// DevComfortDark returns the built-in theme.
func DevComfortDark() *Theme {
	dcBackground := tcell.NewHexColor(0x2a2f38) // status bar background
	dcForeground := tcell.NewHexColor(0xc5cdd9)
	dcComment := tcell.NewHexColor(0x5c6370)
	dcYellow := tcell.NewHexColor(0xe5c07b)
	dcGreen := tcell.NewHexColor(0x98c379)
	dcBlue := tcell.NewHexColor(0x61afef)
	dcMagenta := tcell.NewHexColor(0xc678dd)
	dcRed := tcell.NewHexColor(0xe06c75)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)
	barStyle := tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground)
	modeStyle := func(c tcell.Color) tcell.Style {
		return tcell.StyleDefault.Background(c).Foreground(dcBackground).Bold(true)
	}

	return &Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           baseStyle,
			StyleSelection:         baseStyle.Reverse(true),
			StyleNonText:           baseStyle.Foreground(dcComment),
			StyleLineNumber:        baseStyle.Foreground(dcComment),
			StyleLineNumberCurrent: baseStyle.Foreground(dcYellow),
			StyleStatusBar:         barStyle,
			StyleStatusBarModified: barStyle.Foreground(dcYellow),
			StyleStatusBarMessage:  barStyle.Bold(true),
			StyleStatusBarError:    barStyle.Foreground(dcRed).Bold(true),
			StyleCommandLine:       baseStyle,

			ModeStyle("NORMAL"):  modeStyle(dcBlue),
			ModeStyle("INSERT"):  modeStyle(dcGreen),
			ModeStyle("VISUAL"):  modeStyle(dcMagenta),
			ModeStyle("COMMAND"): modeStyle(dcYellow),
		},
	}
}
