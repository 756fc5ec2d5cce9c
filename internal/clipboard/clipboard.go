// Package clipboard provides copy/paste storage for the editor.
// It uses the system clipboard when available and keeps a private memory
// buffer otherwise.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard stores and fetches text. Implementations are safe for
// concurrent use.
type Clipboard interface {
	// Store replaces the clipboard contents.
	Store(text string) error
	// Fetch returns the clipboard contents.
	Fetch() (string, error)
}

// New returns the system clipboard, or a memory clipboard when the
// platform has none.
func New() Clipboard {
	if clipboard.Unsupported {
		return NewMemory()
	}
	return &System{fallback: NewMemory()}
}

// System is backed by the platform clipboard. When the platform tool fails
// (no display, missing xclip) it falls back to memory so copy and paste
// still work inside the editor.
type System struct {
	fallback *Memory

	mu     sync.Mutex
	failed bool
}

// Store implements Clipboard.
func (s *System) Store(text string) error {
	_ = s.fallback.Store(text)
	if err := clipboard.WriteAll(text); err != nil {
		s.setFailed(true)
		return nil
	}
	s.setFailed(false)
	return nil
}

// Fetch implements Clipboard.
func (s *System) Fetch() (string, error) {
	if s.Degraded() {
		return s.fallback.Fetch()
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		s.setFailed(true)
		return s.fallback.Fetch()
	}
	return text, nil
}

// Degraded reports whether the last system clipboard call failed and the
// memory fallback is in use.
func (s *System) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}

func (s *System) setFailed(v bool) {
	s.mu.Lock()
	s.failed = v
	s.mu.Unlock()
}

// Memory is an in-process clipboard. Useful for tests.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory returns an empty memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Store implements Clipboard.
func (m *Memory) Store(text string) error {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
	return nil
}

// Fetch implements Clipboard.
func (m *Memory) Fetch() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}
