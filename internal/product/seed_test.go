// AngelaMos | 2026
// seed_test.go

package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedCatalog(t *testing.T) {
	catalog := SeedCatalog()
	assert.Len(t, catalog, 25)

	seen := map[string]bool{}
	for _, p := range catalog {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true

		assert.True(t, IsValidCategory(p.Category),
			"%s has unknown category %q", p.ID, p.Category)
		assert.True(t, p.Price.IsPositive(), "%s has non-positive price", p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Features)
		assert.GreaterOrEqual(t, p.Rating, 0)
		assert.LessOrEqual(t, p.Rating, 5)
	}
}
