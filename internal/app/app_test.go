package app

import (
	"io/fs"
	"sync/atomic"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/modal/internal/config"
	"github.com/bethropolis/modal/internal/event"
	"github.com/bethropolis/modal/internal/fsio"
	"github.com/bethropolis/modal/internal/mode"
	"github.com/bethropolis/modal/internal/tui"
	"github.com/bethropolis/modal/internal/types"
)

// scriptScreen replays keys and records frames. PollKey reports a closed
// screen once the script runs out.
type scriptScreen struct {
	keys       []*tcell.EventKey
	frames     []tui.Frame
	interrupts atomic.Int32
	closed     bool
}

func (s *scriptScreen) PollKey() (*tcell.EventKey, bool) {
	if len(s.keys) == 0 {
		return nil, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true
}

func (s *scriptScreen) Render(f tui.Frame) { s.frames = append(s.frames, f) }
func (s *scriptScreen) Size() (int, int) { return 40, 10 }
func (s *scriptScreen) Interrupt() { s.interrupts.Add(1) }
func (s *scriptScreen) Close() { s.closed = true }
func (s *scriptScreen) last() tui.Frame { return s.frames[len(s.frames)-1] }
func (s *scriptScreen) lastMode() mode.Mode { return s.last().Mode }

// keys turns a string into key events. '\n' is Enter and '\x1b' is Esc.
func keys(text string) []*tcell.EventKey {
	var out []*tcell.EventKey
	for _, r := range text {
		switch r {
		case '\n':
			out = append(out, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
		case '\x1b':
			out = append(out, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
		default:
			out = append(out, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
		}
	}
	return out
}

func newApp(t *testing.T, fsys *fsio.Memory, path, script string, edit func(*config.Config)) (*App, *scriptScreen) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	if edit != nil {
		edit(cfg)
	}
	screen := &scriptScreen{keys: keys(script)}
	a, err := New(Options{Config: cfg, FilePath: path, FS: fsys, Screen: screen})
	require.NoError(t, err)
	return a, screen
}

func TestEditAndSaveQuit(t *testing.T) {
	fsys := fsio.NewMemory(map[string]string{"notes.txt": "hello\nworld"})
	a, screen := newApp(t, fsys, "notes.txt", "ihey \x1b:wq\n", nil)

	var quits []event.AppQuitData
	a.events.Subscribe(event.TypeAppQuit, func(e event.Event) bool {
		quits = append(quits, e.Data.(event.AppQuitData))
		return false
	})

	require.NoError(t, a.Run())
	content, err := fsys.ReadFile("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "hey hello\nworld", content)
	assert.False(t, a.session.Buffer.IsModified())
	assert.Equal(t, []event.AppQuitData{{Forced: false}}, quits)
	assert.True(t, screen.closed)
	assert.Empty(t, screen.keys, "every key was consumed before quitting")
}

func TestQuitRefusedWhileModified(t *testing.T) {
	fsys := fsio.NewMemory(map[string]string{"a.txt": "abc"})
	a, screen := newApp(t, fsys, "a.txt", "x:q\n", nil)

	require.NoError(t, a.Run(), "the script ends, closing the screen")
	msg, ok := a.statusBar.Message()
	require.True(t, ok)
	assert.Equal(t, "no write since last change (add ! to override)", msg)
	assert.Equal(t, mode.Normal, screen.lastMode())

	content, _ := fsys.ReadFile("a.txt")
	assert.Equal(t, "abc", content, "nothing written")
}

func TestForceQuit(t *testing.T) {
	fsys := fsio.NewMemory(map[string]string{"a.txt": "abc"})
	a, screen := newApp(t, fsys, "a.txt", "dd:q!\nx", nil)

	require.NoError(t, a.Run())
	assert.True(t, a.session.Buffer.IsModified())
	assert.Len(t, screen.keys, 1, "keys after :q! are not read")
}

func TestMissingFileStartsEmpty(t *testing.T) {
	fsys := fsio.NewMemory(nil)
	a, _ := newApp(t, fsys, "new.txt", "ihi\x1b:w\n", nil)

	require.NoError(t, a.Run())
	content, err := fsys.ReadFile("new.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", content)

	msg, ok := a.statusBar.Message()
	require.True(t, ok)
	assert.Equal(t, `"new.txt" written`, msg)
}

func TestLoadFailureStartsEmpty(t *testing.T) {
	fsys := fsio.NewMemory(map[string]string{"x.txt": "secret"})
	fsys.SetReadError("x.txt", fs.ErrPermission)
	a, _ := newApp(t, fsys, "x.txt", "", nil)

	b := a.session.Buffer
	assert.Equal(t, 1, b.LineCount())
	assert.Equal(t, "", b.Line(0))
	assert.Equal(t, "x.txt", b.FilePath())
	assert.False(t, b.IsModified())

	msg, ok := a.statusBar.Message()
	require.True(t, ok)
	assert.Contains(t, msg, fsio.ErrPermissionDenied.Error())
	assert.Contains(t, msg, `"x.txt"`)
}

func TestLoadBufferKeepsReadError(t *testing.T) {
	fsys := fsio.NewMemory(nil)
	fsys.SetReadError("x.txt", fs.ErrPermission)

	buf, newFile, err := loadBuffer(fsys, "x.txt")
	assert.ErrorIs(t, err, fsio.ErrPermissionDenied)
	assert.False(t, newFile)
	assert.Equal(t, "x.txt", buf.FilePath())
}

func TestWriteWithoutPath(t *testing.T) {
	a, _ := newApp(t, fsio.NewMemory(nil), "", "ix\x1b:w\n", nil)
	require.NoError(t, a.Run())
	msg, _ := a.statusBar.Message()
	assert.Equal(t, "no file name", msg)
	assert.True(t, a.session.Buffer.IsModified())
}

func TestSaveFailureKeepsModified(t *testing.T) {
	fsys := fsio.NewMemory(map[string]string{"ro.txt": "abc"})
	fsys.SetReadOnly("ro.txt", true)
	a, _ := newApp(t, fsys, "ro.txt", "x:wq\n", nil)

	require.NoError(t, a.Run())
	assert.True(t, a.session.Buffer.IsModified())
	msg, ok := a.statusBar.Message()
	require.True(t, ok)
	assert.Contains(t, msg, "permission denied")
}

func TestBackupOnSave(t *testing.T) {
	fsys := fsio.NewMemory(map[string]string{"a.txt": "old"})
	a, _ := newApp(t, fsys, "a.txt", "x:w\n", func(c *config.Config) { c.Editor.BackupOnSave = true })

	require.NoError(t, a.Run())
	backup, err := fsys.ReadFile("a.txt.bak")
	require.NoError(t, err)
	assert.Equal(t, "old", backup)
	content, _ := fsys.ReadFile("a.txt")
	assert.Equal(t, "ld", content)
}

func TestUnreadableThemeFallsBack(t *testing.T) {
	a, _ := newApp(t, fsio.NewMemory(nil), "", "", func(c *config.Config) { c.Editor.Theme = "/missing.toml" })
	assert.Equal(t, "DevComfort Dark", a.GetTheme().Name)
	msg, ok := a.statusBar.Message()
	require.True(t, ok)
	assert.Contains(t, msg, "/missing.toml")
}

func TestFrameReflectsSession(t *testing.T) {
	fsys := fsio.NewMemory(map[string]string{"a.txt": "one two\nthree"})
	a, screen := newApp(t, fsys, "a.txt", "wvj", nil)

	require.NoError(t, a.Run())
	f := screen.last()
	assert.Equal(t, mode.Visual, f.Mode)
	assert.True(t, f.Selection)
	assert.Equal(t, types.Position{Line: 0, Col: 4}, f.SelStart)
	assert.Equal(t, types.Position{Line: 1, Col: 4}, f.SelEnd)
	assert.Same(t, a.statusBar, f.Status)
	assert.True(t, f.LineNumbers)
}

func TestPluginAndAppCommands(t *testing.T) {
	fsys := fsio.NewMemory(map[string]string{"a.txt": "one two\nthree"})
	a, _ := newApp(t, fsys, "a.txt", ":wc\n", nil)
	require.NoError(t, a.Run())
	msg, _ := a.statusBar.Message()
	assert.Equal(t, "Lines: 2, Words: 3, Chars: 13", msg)

	a, _ = newApp(t, fsys, "a.txt", ":theme\n", nil)
	require.NoError(t, a.Run())
	msg, _ = a.statusBar.Message()
	assert.Equal(t, "Current theme: DevComfort Dark", msg)
}

func TestMessageSchedulesWakeup(t *testing.T) {
	a, screen := newApp(t, fsio.NewMemory(nil), "", ":nope\n", nil)
	require.NoError(t, a.Run())
	msg, _ := a.statusBar.Message()
	assert.Equal(t, "unknown command: nope", msg)
	assert.Zero(t, screen.interrupts.Load(), "the pending wake-up is cancelled on exit")
}

func TestRunWithSimulationScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(30, 6)

	fsys := fsio.NewMemory(map[string]string{"a.txt": "abc"})
	a, err := New(Options{FilePath: "a.txt", FS: fsys, Screen: tui.NewWithScreen(sim, nil)})
	require.NoError(t, err)

	for _, k := range keys("x:wq\n") {
		sim.InjectKey(k.Key(), k.Rune(), k.Modifiers())
	}
	require.NoError(t, a.Run())

	content, _ := fsys.ReadFile("a.txt")
	assert.Equal(t, "bc", content)
}
