package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motomart/internal/feed"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	f, err := feed.Load()
	require.NoError(t, err)

	assert.NotEmpty(t, f.Products)
	assert.NotEmpty(t, f.Categories)
	assert.NotEmpty(t, f.Brands)

	seen := map[string]bool{}
	for _, p := range f.Products {
		require.NotEmpty(t, p.ID)
		require.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
		assert.GreaterOrEqual(t, p.Price, int64(0))

		// every product points at a real category and brand
		_, ok := f.Category(p.Category)
		assert.True(t, ok, "product %s has unknown category %s", p.ID, p.Category)
		_, ok = f.Brand(p.Brand)
		assert.True(t, ok, "product %s has unknown brand %s", p.ID, p.Brand)
	}
}

func TestLookups(t *testing.T) {
	f, err := feed.Load()
	require.NoError(t, err)

	p, ok := f.Product(f.Products[0].ID)
	require.True(t, ok)
	assert.Equal(t, f.Products[0].Name, p.Name)

	_, ok = f.Product("no-such-id")
	assert.False(t, ok)
}

func TestDerivedViews(t *testing.T) {
	f, err := feed.Load()
	require.NoError(t, err)

	assert.Greater(t, f.PriceCeiling(), int64(0))
	for _, p := range f.Products {
		assert.LessOrEqual(t, p.Price, f.PriceCeiling())
	}

	counts := f.CountByCategory()
	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(f.Products), total)

	for _, p := range f.Featured(4) {
		assert.True(t, p.Featured)
	}
}
