package mocks

import (
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing. Tests only
// draw strings (identity tokens); Intn exists to satisfy the interface.
type MockRandom struct {
	// StringResults is a queue of results to return from String
	StringResults []string
	stringIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns 0
func (r *MockRandom) Intn(n int) int {
	return 0
}

// String returns the next queued result, or empty string if none remaining
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex >= len(r.StringResults) {
		return ""
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}
