package game

import "sync"

// Entry is one recorded step of a game.
type Entry struct {
	Index    int
	Round    int
	PlayerID string
	Phase    string
	Summary  string
	Checksum string
}

// History is an in-memory log of a game's resolved phases with a cursor for
// stepping through it.
type History struct {
	GameID string

	mu      sync.RWMutex
	entries []Entry
	current int
}

// NewHistory creates an empty history.
func NewHistory(gameID string) *History {
	return &History{GameID: gameID}
}

// Record appends an entry and assigns its index.
func (h *History) Record(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	e.Index = len(h.entries)
	h.entries = append(h.entries, e)
}

// Start resets the cursor to the first entry.
func (h *History) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.current = 0
}

// Next returns the entry at the cursor and moves past it.
func (h *History) Next() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current < len(h.entries) {
		e := h.entries[h.current]
		h.current++
		return e, true
	}
	return Entry{}, false
}

// Previous moves the cursor back one entry and returns it.
func (h *History) Previous() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current > 0 {
		h.current--
		return h.entries[h.current], true
	}
	return Entry{}, false
}

// Skip moves the cursor by count, clamped to the recorded range.
func (h *History) Skip(count int) (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return Entry{}, false
	}
	idx := h.current + count
	if idx >= len(h.entries) {
		idx = len(h.entries) - 1
	}
	if idx < 0 {
		idx = 0
	}
	h.current = idx
	return h.entries[idx], true
}

// Size returns the number of entries.
func (h *History) Size() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}

// At returns the entry at index.
func (h *History) At(index int) (Entry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if index >= 0 && index < len(h.entries) {
		return h.entries[index], true
	}
	return Entry{}, false
}

// Entries returns a copy of every entry.
func (h *History) Entries() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return append([]Entry(nil), h.entries...)
}
