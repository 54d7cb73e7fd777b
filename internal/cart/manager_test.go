package cart_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motomart/internal/cart"
	"motomart/internal/domain"
)

func resolver(t *testing.T) cart.Resolver {
	t.Helper()
	known := map[string]*domain.Product{
		bikeA.ID: bikeA,
		bikeB.ID: bikeB,
	}
	return func(id string) (*domain.Product, bool) {
		p, ok := known[id]
		return p, ok
	}
}

func TestSnapshotSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carts.db")

	m, err := cart.NewManager(path, resolver(t))
	require.NoError(t, err)

	s := m.Get("sid-1")
	require.NoError(t, s.Add(bikeA, 2))
	require.NoError(t, s.Add(bikeB, 1))
	require.NoError(t, m.Close())

	// reopen: the same session gets its cart back in order
	m2, err := cart.NewManager(path, resolver(t))
	require.NoError(t, err)
	defer m2.Close()

	restored := m2.Get("sid-1")
	lines := restored.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "bike-a", lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Qty)
	assert.Equal(t, int64(1_900_000), restored.TotalAmount())

	// other sessions are unaffected
	assert.Empty(t, m2.Get("sid-2").Lines())
}

func TestRestoreDropsVanishedProducts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carts.db")

	m, err := cart.NewManager(path, resolver(t))
	require.NoError(t, err)
	s := m.Get("sid-1")
	require.NoError(t, s.Add(bikeA, 1))
	require.NoError(t, s.Add(bikeB, 1))
	require.NoError(t, m.Close())

	// bikeB left the catalog
	onlyA := func(id string) (*domain.Product, bool) {
		if id == bikeA.ID {
			return bikeA, true
		}
		return nil, false
	}
	m2, err := cart.NewManager(path, onlyA)
	require.NoError(t, err)
	defer m2.Close()

	lines := m2.Get("sid-1").Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "bike-a", lines[0].Product.ID)
}

func TestChangeSubscriber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carts.db")
	m, err := cart.NewManager(path, resolver(t))
	require.NoError(t, err)
	defer m.Close()

	var seen []string
	require.NoError(t, m.Subscribe(func(sid string) { seen = append(seen, sid) }))

	s := m.Get("sid-9")
	require.NoError(t, s.Add(bikeA, 1))
	s.SetQuantity(bikeA.ID, 3)
	s.Remove("absent") // no change, no event
	s.Clear()

	assert.Equal(t, []string{"sid-9", "sid-9", "sid-9"}, seen)
}

func TestThemePreference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carts.db")
	m, err := cart.NewManager(path, resolver(t))
	require.NoError(t, err)

	assert.Empty(t, m.Theme("sid-1"))
	require.NoError(t, m.SetTheme("sid-1", "dark"))
	assert.Equal(t, "dark", m.Theme("sid-1"))
	require.NoError(t, m.Close())

	m2, err := cart.NewManager(path, resolver(t))
	require.NoError(t, err)
	defer m2.Close()
	assert.Equal(t, "dark", m2.Theme("sid-1"))
}
