package wordcount

import (
	"fmt"
	"testing"

	"github.com/bethropolis/modal/internal/event"
	"github.com/bethropolis/modal/internal/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	text     string
	lines    int
	commands map[string]plugin.CommandFunc
	status   string
}

func (f *fakeAPI) BufferText() string { return f.text }
func (f *fakeAPI) BufferLineCount() int { return f.lines }
func (f *fakeAPI) BufferFilePath() string { return "" }
func (f *fakeAPI) IsBufferModified() bool { return false }

func (f *fakeAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	if _, ok := f.commands[name]; ok {
		return fmt.Errorf("command '%s' already registered", name)
	}
	f.commands[name] = fn
	return nil
}

func (f *fakeAPI) Subscribe(event.Type, event.Handler) {}

func (f *fakeAPI) SetStatusMessage(format string, args ...any) {
	f.status = fmt.Sprintf(format, args...)
}

func TestStats(t *testing.T) {
	words, chars := Stats("h\u00e9llo  world\n\tagain")
	assert.Equal(t, 3, words)
	assert.Equal(t, 19, chars)

	words, chars = Stats("")
	assert.Zero(t, words)
	assert.Zero(t, chars)
}

func TestWordCountCommand(t *testing.T) {
	api := &fakeAPI{text: "one two\nthree", lines: 2, commands: map[string]plugin.CommandFunc{}}
	p := New()
	require.NoError(t, p.Initialize(api))

	cmd, ok := api.commands["wc"]
	require.True(t, ok)
	require.NoError(t, cmd())
	assert.Equal(t, "Lines: 2, Words: 3, Chars: 13", api.status)

	assert.Error(t, New().Initialize(api), "second registration fails")
}
