package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreAndContent(t *testing.T) {
	r := NewRegister(false)
	assert.True(t, r.Empty())

	r.Store("hello", true)
	text, linewise := r.Content()
	assert.Equal(t, "hello", text)
	assert.True(t, linewise)

	r.Store("", false)
	text, _ = r.Content()
	assert.Equal(t, "hello", text, "empty stores are ignored")
}

func TestMirror(t *testing.T) {
	var got []string
	r := &Register{mirror: true, writeSystem: func(s string) error {
		got = append(got, s)
		return nil
	}}
	r.Store("line", true)
	r.Store("c", false)
	assert.Equal(t, []string{"line\n", "c"}, got)

	r.writeSystem = func(string) error { return errors.New("no display") }
	r.Store("kept", false)
	text, _ := r.Content()
	assert.Equal(t, "kept", text, "a failed mirror still fills the register")
}
