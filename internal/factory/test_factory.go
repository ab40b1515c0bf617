package factory

import (
	"fmt"
	"time"

	"github.com/gspiers/buzzbingo/internal/dependencies/mocks"
	"github.com/gspiers/buzzbingo/internal/storage/memory"
	"github.com/gspiers/buzzbingo/internal/testutil"
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

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestPool loads a deterministic 30-phrase pool for testing
func (t *TestApp) LoadTestPool() error {
	return t.PoolService.LoadPhrases(TestPhrases(30))
}

// TestPhrases generates n distinct placeholder phrases
func TestPhrases(n int) []string {
	phrases := make([]string, n)
	for i := range phrases {
		phrases[i] = fmt.Sprintf("phrase-%02d", i)
	}
	return phrases
}
