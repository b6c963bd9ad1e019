package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/modal/internal/mode"
)

func TestDispatchOrderAndData(t *testing.T) {
	m := NewManager()
	var seen []string
	m.Subscribe(TypeModeChanged, func(e Event) bool {
		d := e.Data.(ModeChangedData)
		seen = append(seen, "first:"+d.To.String())
		return false
	})
	m.Subscribe(TypeModeChanged, func(e Event) bool {
		seen = append(seen, "second")
		return false
	})
	m.Subscribe(TypeBufferSaved, func(Event) bool {
		seen = append(seen, "saved")
		return false
	})

	m.Dispatch(TypeModeChanged, ModeChangedData{From: mode.Normal, To: mode.Insert})
	assert.Equal(t, []string{"first:INSERT", "second"}, seen)
}

func TestConsumedStopsPropagation(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeAppQuit, func(Event) bool { calls++; return true })
	m.Subscribe(TypeAppQuit, func(Event) bool { calls++; return false })

	m.Dispatch(TypeAppQuit, AppQuitData{})
	assert.Equal(t, 1, calls)
}

func TestDispatchWithoutSubscribers(t *testing.T) {
	var nilManager *Manager
	assert.NotPanics(t, func() {
		NewManager().Dispatch(TypeCursorMoved, CursorMovedData{})
		nilManager.Dispatch(TypeCursorMoved, CursorMovedData{})
	})
}
