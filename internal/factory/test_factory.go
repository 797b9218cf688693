package factory

import (
	"time"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/dependencies/mocks"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/services/registry"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/storage/memory"
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, registry.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
