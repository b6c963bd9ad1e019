package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/modal/internal/event"
	"github.com/bethropolis/modal/internal/theme"
	"github.com/bethropolis/modal/internal/types"
	"github.com/bethropolis/modal/internal/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	Theme          *theme.Theme
	MessageTimeout time.Duration
	Now            func() time.Time // nil means time.Now
}

// StatusBar is the last screen line: mode, file and cursor, or the
// command line while one is being typed, or a temporary message.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath   string
	cursorPos  types.Position
	isModified bool
	editorMode string
	pending    string

	commandActive bool
	commandText   string

	tempMessage     string
	tempIsError     bool
	tempMessageTime time.Time
}

// New creates a StatusBar. A nil theme uses the built-in one.
func New(config Config) *StatusBar {
	if config.Theme == nil {
		config.Theme = theme.DevComfortDark()
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &StatusBar{config: config, editorMode: "NORMAL"}
}

// SetTheme swaps the styles used by Draw.
func (sb *StatusBar) SetTheme(th *theme.Theme) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if th != nil {
		sb.config.Theme = th
	}
}

// SetFileInfo updates the file path and modified marker.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetEditorMode updates the mode label, e.g. "INSERT".
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetPendingKeys shows an unfinished key sequence such as "d".
func (sb *StatusBar) SetPendingKeys(keys string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.pending = keys
}

// SetCommandLine shows ":text" in place of the status line while active.
func (sb *StatusBar) SetCommandLine(text string, active bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.commandActive = active
	sb.commandText = text
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...any) {
	sb.setMessage(fmt.Sprintf(format, args...), false)
}

// SetError displays err in the error style for the configured duration.
func (sb *StatusBar) SetError(err error) {
	if err != nil {
		sb.setMessage(err.Error(), true)
	}
}

func (sb *StatusBar) setMessage(text string, isError bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = text
	sb.tempIsError = isError
	sb.tempMessageTime = sb.config.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the active temporary message, if any.
func (sb *StatusBar) Message() (string, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if !sb.messageActive() {
		return "", false
	}
	return sb.tempMessage, true
}

// messageActive assumes the lock is held.
func (sb *StatusBar) messageActive() bool {
	return !sb.tempMessageTime.IsZero() &&
		sb.config.Now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
}

// Subscribe keeps the bar in step with editor events.
func (sb *StatusBar) Subscribe(events *event.Manager) {
	events.Subscribe(event.TypeBufferLoaded, func(e event.Event) bool {
		if d, ok := e.Data.(event.BufferLoadedData); ok {
			sb.SetFileInfo(d.FilePath, false)
			if d.NewFile && d.FilePath != "" {
				sb.SetTemporaryMessage("%q [New]", d.FilePath)
			}
		}
		return false
	})
	events.Subscribe(event.TypeBufferModified, func(e event.Event) bool {
		if d, ok := e.Data.(event.BufferModifiedData); ok {
			sb.mu.Lock()
			sb.isModified = d.Modified
			sb.mu.Unlock()
		}
		return false
	})
	events.Subscribe(event.TypeBufferSaved, func(e event.Event) bool {
		if d, ok := e.Data.(event.BufferSavedData); ok {
			sb.SetFileInfo(d.FilePath, false)
		}
		return false
	})
	events.Subscribe(event.TypeCursorMoved, func(e event.Event) bool {
		if d, ok := e.Data.(event.CursorMovedData); ok {
			sb.SetCursorInfo(d.Position)
		}
		return false
	})
	events.Subscribe(event.TypeModeChanged, func(e event.Event) bool {
		if d, ok := e.Data.(event.ModeChangedData); ok {
			sb.SetEditorMode(d.To.String())
		}
		return false
	})
}

// segment is a run of text in one style.
type segment struct {
	text  string
	style tcell.Style
}

// layout picks the segments for the current state. The bool reports
// whether the line is the command line.
func (sb *StatusBar) layout() (left, right []segment, command bool) {
	th := sb.config.Theme
	bar := th.Style(theme.StyleStatusBar)

	if sb.commandActive {
		return []segment{{":" + sb.commandText, th.Style(theme.StyleCommandLine)}}, nil, true
	}

	if !sb.tempMessageTime.IsZero() && !sb.messageActive() {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	if sb.tempMessage != "" {
		style := th.Style(theme.StyleStatusBarMessage)
		if sb.tempIsError {
			style = th.Style(theme.StyleStatusBarError)
		}
		return []segment{{sb.tempMessage, style}}, nil, false
	}

	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	left = []segment{
		{" " + sb.editorMode + " ", th.Style(theme.ModeStyle(sb.editorMode))},
		{" " + fPath, bar},
	}
	if sb.isModified {
		left = append(left, segment{" [+]", th.Style(theme.StyleStatusBarModified)})
	}

	if sb.pending != "" {
		right = append(right, segment{sb.pending + "  ", bar})
	}
	right = append(right, segment{fmt.Sprintf("%d:%d ", sb.cursorPos.Line+1, sb.cursorPos.Col+1), bar})
	return left, right, false
}

// Draw renders the status bar on the last row. While the command line is
// shown it returns the cell after the typed text for the cursor.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) (cursorX int, command bool) {
	if height <= 0 || width <= 0 {
		return 0, false
	}
	y := height - 1

	sb.mu.Lock()
	left, right, command := sb.layout()
	fill := sb.config.Theme.Style(theme.StyleStatusBar)
	if command || sb.tempMessage != "" {
		fill = left[0].style
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, fill)
	}

	x := 0
	for _, seg := range left {
		x = drawText(screen, x, y, width, seg.text, seg.style)
	}
	cursorX = x

	rightWidth := 0
	for _, seg := range right {
		rightWidth += utils.StringWidth(seg.text, 1)
	}
	if rx := width - rightWidth; rx > x {
		for _, seg := range right {
			rx = drawText(screen, rx, y, width, seg.text, seg.style)
		}
	}
	return cursorX, command
}

// drawText draws text from x, stopping before maxX, and returns the next x.
func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		w := utils.GraphemeWidth(gr.Str(), x, 1)
		if x+w > maxX {
			break
		}
		r := runes[0]
		if r == '\t' {
			r = ' '
		}
		screen.SetContent(x, y, r, runes[1:], style)
		x += w
	}
	return x
}
