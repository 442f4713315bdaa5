// Package hashing provides Zobrist position keys and repetition counting.
package hashing

// RepetitionTracker counts how often each position key has occurred.
type RepetitionTracker struct {
	// counts maps a position key to its number of occurrences
	counts map[Key]int
	// positions is the total number of keys added
	positions int
	// maxCount is the highest count of any single key
	maxCount int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{
		counts: make(map[Key]int),
	}
}

// Add records one occurrence of key and returns its new count.
func (r *RepetitionTracker) Add(key Key) int {
	r.counts[key]++
	r.positions++
	n := r.counts[key]
	if n > r.maxCount {
		r.maxCount = n
	}
	return n
}

// Count returns how many times key has been added.
func (r *RepetitionTracker) Count(key Key) int {
	return r.counts[key]
}

// Reached reports whether key has occurred at least limit times.
func (r *RepetitionTracker) Reached(key Key, limit int) bool {
	return limit > 0 && r.counts[key] >= limit
}

// MaxCount returns the highest occurrence count of any key.
func (r *RepetitionTracker) MaxCount() int {
	return r.maxCount
}

// PositionCount returns the total number of keys added.
func (r *RepetitionTracker) PositionCount() int {
	return r.positions
}

// UniqueCount returns the number of distinct keys.
func (r *RepetitionTracker) UniqueCount() int {
	return len(r.counts)
}

// Reset clears all counts.
func (r *RepetitionTracker) Reset() {
	r.counts = make(map[Key]int)
	r.positions = 0
	r.maxCount = 0
}
