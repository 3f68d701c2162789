package hrms_test

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms/hrms-lite/hrms"
)

var idPattern = regexp.MustCompile(`^[A-Z]{2,4}[0-9]{4,6}$`)

func neverExists(context.Context, string) (bool, error) { return false, nil }

// =============================================================================
// PREFIX DERIVATION
// =============================================================================

func TestGenerate_PrefixRules(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		prefix   string
	}{
		{"two words", "John Doe", "JODO"},
		{"three words take first and last", "Anna Maria Smith", "ANSM"},
		{"single word", "Madonna", "MADO"},
		{"single short word", "Bo", "BO"},
		{"short last word", "Jane O", "JAO"},
		{"lowercase input", "jane doe", "JADO"},
	}

	g := hrms.NewIDGenerator(neverExists)
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := g.Generate(ctx, tt.fullName)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(id, tt.prefix), "id %q should start with %q", id, tt.prefix)
			assert.Regexp(t, idPattern, id)
		})
	}
}

// =============================================================================
// COLLISION HANDLING
// =============================================================================

func TestGenerate_RetriesOnCollision(t *testing.T) {
	// GIVEN: The first three generated IDs are already taken
	calls := 0
	exists := func(context.Context, string) (bool, error) {
		calls++
		return calls <= 3, nil
	}

	// WHEN: Generating
	g := hrms.NewIDGenerator(exists)
	id, err := g.Generate(context.Background(), "John Doe")

	// THEN: The fourth attempt is returned, still in 4-digit form
	require.NoError(t, err)
	assert.Equal(t, 4, calls)
	assert.Regexp(t, `^JODO[0-9]{4}$`, id)
}

func TestGenerate_FallbackAfterExhaustedAttempts(t *testing.T) {
	// GIVEN: Every collision check says "taken"
	calls := 0
	exists := func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	}

	// WHEN: Generating
	g := hrms.NewIDGenerator(exists)
	id, err := g.Generate(context.Background(), "John Doe")

	// THEN: After 100 attempts a 6-digit suffix is issued without a
	// further collision check
	require.NoError(t, err)
	assert.Equal(t, 100, calls)
	assert.Regexp(t, `^JODO[0-9]{6}$`, id)
}

func TestGenerate_PropagatesLookupError(t *testing.T) {
	exists := func(context.Context, string) (bool, error) {
		return false, fmt.Errorf("store down")
	}
	g := hrms.NewIDGenerator(exists)
	_, err := g.Generate(context.Background(), "John Doe")
	assert.Error(t, err)
}

// =============================================================================
// FORMAT AND UNIQUENESS UNDER LOAD
// =============================================================================

func TestGenerate_ThousandDistinctNames_NoDuplicates(t *testing.T) {
	// Simulated directory: every issued ID is recorded and checked.
	taken := make(map[string]bool)
	exists := func(_ context.Context, id string) (bool, error) {
		return taken[id], nil
	}
	g := hrms.NewIDGenerator(exists)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		name := fmt.Sprintf("Employee Number%04d", i)
		id, err := g.Generate(ctx, name)
		require.NoError(t, err)
		require.Regexp(t, idPattern, id)
		require.False(t, taken[id], "duplicate id issued: %s", id)
		taken[id] = true
	}
}
