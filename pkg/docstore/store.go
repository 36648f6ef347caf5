package docstore

import "sync"

// Store holds the extracted text of the single current document. A new
// upload replaces the previous document unconditionally; reads and
// writes are atomic.
type Store struct {
	mu   sync.RWMutex
	text string
	set  bool
}

func New() *Store { return &Store{} }

// Set replaces the current document. Last writer wins.
func (s *Store) Set(text string) {
	s.mu.Lock()
	s.text = text
	s.set = true
	s.mu.Unlock()
}

// Get returns the current document text, or false when no document has
// been uploaded yet.
func (s *Store) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text, s.set
}
