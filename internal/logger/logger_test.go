package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("err"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestLevelGate(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "warn"}, &out)

	Infof("quiet %d", 1)
	Warnf("loud %d", 2)

	assert.NotContains(t, out.String(), "quiet 1")
	assert.Contains(t, out.String(), "loud 2")
	assert.Contains(t, out.String(), "source=logger_test.go")
}

func TestTagFilter(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", EnabledTags: []string{"Keys"}}, &out)

	DebugTagf("keys", "pending g")
	Debugf("untagged")
	DebugTagf("render", "frame")

	assert.Contains(t, out.String(), "pending g")
	assert.NotContains(t, out.String(), "untagged")
	assert.NotContains(t, out.String(), "frame")
}

func TestPackageFilter(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledPackages: []string{"logger"}}, &out)

	Errorf("from this package")
	assert.Empty(t, out.String())

	Init(Config{LogLevel: "debug", DisabledFiles: []string{"other.go"}}, &out)
	Errorf("still here")
	assert.Contains(t, out.String(), "still here")
}

func TestOpenOutput(t *testing.T) {
	w, closeFn, err := OpenOutput("")
	assert.NoError(t, err)
	assert.NotNil(t, w)
	assert.NoError(t, closeFn())

	path := t.TempDir() + "/modal.log"
	w, closeFn, err = OpenOutput(path)
	assert.NoError(t, err)
	Init(Config{LogLevel: "info"}, w)
	Infof("to file")
	Init(NewConfig(), nil)
	assert.NoError(t, closeFn())
}
