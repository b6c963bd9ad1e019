// Package utils holds small helpers shared by the drawing code.
package utils

import (
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TabAdvance returns the cells a tab takes when it starts at visualCol.
func TabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	return tabWidth - visualCol%tabWidth
}

// GraphemeWidth returns the cell width of one grapheme cluster placed at
// visualCol. runewidth decides first; uniseg covers clusters it rates as
// zero width, such as some emoji sequences.
func GraphemeWidth(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(visualCol, tabWidth)
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = max(uniseg.StringWidth(cluster), 0)
	}
	return w
}

// StringWidth is the cell width of s drawn from column 0.
func StringWidth(s string, tabWidth int) int {
	width := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		width += GraphemeWidth(gr.Str(), width, tabWidth)
	}
	return width
}

// VisualColumn converts a rune index on line into a display column. An
// index inside a cluster maps to the cluster's first cell.
func VisualColumn(line []rune, col, tabWidth int) int {
	if col <= 0 {
		return 0
	}
	visual, runeIndex := 0, 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		n := len(gr.Runes())
		if runeIndex+n > col {
			break
		}
		visual += GraphemeWidth(gr.Str(), visual, tabWidth)
		runeIndex += n
	}
	if col > runeIndex && runeIndex >= len(line) {
		visual += col - runeIndex // the slot past the line end
	}
	return visual
}

// Debouncer runs only the last of a burst of calls.
type Debouncer struct {
	mutex sync.Mutex
	timer *time.Timer
}

// Debounce calls fn after duration, cancelling any call still pending.
// fn runs on its own goroutine.
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		d.timer = nil
		d.mutex.Unlock()
		fn()
	})
}

// Stop cancels a pending call.
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
