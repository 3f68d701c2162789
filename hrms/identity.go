/*
identity.go - Human-readable employee ID generation

PURPOSE:
  Derives a collision-checked employee identifier from a name:
  a 2-4 character uppercase prefix from the name's initials plus a
  random 4-digit suffix. Collisions against the directory are retried
  up to maxIDAttempts; after that a single 6-digit fallback is issued
  WITHOUT a re-check, so the generator does not guarantee uniqueness on
  the fallback path. Create-time duplicate detection remains the final
  authority.

OUTPUT FORMAT:
  ^[A-Z]{2,4}[0-9]{4,6}$

SEE ALSO:
  - directory.go: Exists lookup, create-time conflict handling
*/
package hrms

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const maxIDAttempts = 100

// ExistsFunc reports whether an employee ID is already taken.
type ExistsFunc func(ctx context.Context, employeeID string) (bool, error)

// IDGenerator produces employee IDs checked against a directory.
type IDGenerator struct {
	exists ExistsFunc
	rng    *rand.Rand
}

// NewIDGenerator creates a generator backed by the given existence check.
func NewIDGenerator(exists ExistsFunc) *IDGenerator {
	return &IDGenerator{
		exists: exists,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate derives an employee ID from a full name. The name must
// already have passed ValidateFullName.
func (g *IDGenerator) Generate(ctx context.Context, fullName string) (string, error) {
	prefix := idPrefix(fullName)

	for i := 0; i < maxIDAttempts; i++ {
		id := fmt.Sprintf("%s%04d", prefix, g.rng.Intn(10000))
		taken, err := g.exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}

	// All 4-digit attempts collided. Widen to 6 digits once; the odds of
	// another collision are astronomically small and the create path
	// still enforces uniqueness.
	return fmt.Sprintf("%s%06d", prefix, g.rng.Intn(1000000)), nil
}

// idPrefix builds the uppercase prefix: first two characters of the
// first and last words for multi-word names, first four characters for
// single-word names. Shorter words yield shorter prefixes.
func idPrefix(fullName string) string {
	parts := strings.Fields(strings.TrimSpace(fullName))
	if len(parts) == 0 {
		return ""
	}
	if len(parts) >= 2 {
		return strings.ToUpper(firstRunes(parts[0], 2) + firstRunes(parts[len(parts)-1], 2))
	}
	return strings.ToUpper(firstRunes(parts[0], 4))
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
