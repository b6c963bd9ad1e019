// Package clipboard holds the unnamed register that deletions fill.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/bethropolis/modal/internal/logger"
)

// Register is the single unnamed register. When mirroring is on, every
// store is also copied to the system clipboard.
type Register struct {
	text     string
	linewise bool

	mirror      bool
	writeSystem func(string) error
}

// NewRegister returns an empty register. mirror copies stores to the
// system clipboard where one is available.
func NewRegister(mirror bool) *Register {
	return &Register{
		mirror:      mirror && !clipboard.Unsupported,
		writeSystem: clipboard.WriteAll,
	}
}

// Store replaces the register content. Linewise text came from whole lines.
func (r *Register) Store(text string, linewise bool) {
	if text == "" {
		return
	}
	r.text, r.linewise = text, linewise
	logger.DebugTagf("register", "register: stored %d chars (linewise=%v)", len([]rune(text)), linewise)

	if !r.mirror {
		return
	}
	out := text
	if linewise {
		out += "\n"
	}
	if err := r.writeSystem(out); err != nil {
		// The register keeps the text even when the mirror fails.
		logger.Warnf("register: system clipboard write failed: %v", err)
	}
}

// Content returns the stored text and whether it is linewise.
func (r *Register) Content() (string, bool) {
	return r.text, r.linewise
}

// Empty reports whether nothing has been stored yet.
func (r *Register) Empty() bool {
	return r.text == ""
}
