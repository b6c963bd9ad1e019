package wordcount

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/modal/internal/plugin"
)

var _ plugin.Plugin = (*WordCount)(nil)

// WordCount adds :wc, which reports line, word and character counts.
type WordCount struct {
	api plugin.EditorAPI
}

// New creates a new instance of the WordCount plugin.
func New() *WordCount {
	return &WordCount{}
}

func (p *WordCount) Name() string {
	return "WordCount"
}

func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("wc", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

func (p *WordCount) Shutdown() error {
	return nil
}

// Stats counts text the way the status message reports it.
func Stats(text string) (words, chars int) {
	return len(strings.Fields(text)), utf8.RuneCountInString(text)
}

func (p *WordCount) executeWordCount() error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}
	words, chars := Stats(p.api.BufferText())
	p.api.SetStatusMessage("Lines: %d, Words: %d, Chars: %d", p.api.BufferLineCount(), words, chars)
	return nil
}
