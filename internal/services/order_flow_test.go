package services_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motomart/internal/cart"
	"motomart/internal/domain"
	"motomart/internal/feed"
	"motomart/internal/services"
)

func setup(t *testing.T) (*services.CartService, *services.OrderService) {
	t.Helper()
	f, err := feed.Load()
	require.NoError(t, err)

	carts, err := cart.NewManager(filepath.Join(t.TempDir(), "carts.db"), f.Product)
	require.NoError(t, err)
	t.Cleanup(func() { _ = carts.Close() })

	cartSvc := services.NewCartService(carts, f)
	return cartSvc, services.NewOrderService(cartSvc)
}

func details() domain.OrderDetails {
	return domain.OrderDetails{
		Name:  "Priya Sharma",
		Email: "priya@example.com",
		Phone: "9876543210",
		Address: domain.Address{
			Line1:      "14 MG Road",
			City:       "Bengaluru",
			State:      "Karnataka",
			PostalCode: "560001",
		},
	}
}

func TestCheckoutFlow(t *testing.T) {
	cartSvc, orderSvc := setup(t)
	sid := "test-session"

	require.NoError(t, cartSvc.Add(sid, "ktm-duke390", 2))
	require.NoError(t, cartSvc.Add(sid, "yam-mt15", 1))

	cv := cartSvc.View(sid)
	require.Len(t, cv.Lines, 2)
	wantSub := int64(2*311000 + 168000)
	assert.Equal(t, wantSub, cv.Subtotal)
	assert.Equal(t, wantSub*18/100, cv.Tax)
	assert.Equal(t, wantSub+wantSub*18/100, cv.Total)

	o, err := orderSvc.Place(sid, details())
	require.NoError(t, err)
	require.NotEmpty(t, o.ID)
	assert.Equal(t, cv.Subtotal, o.Subtotal)
	assert.Equal(t, cv.Tax, o.Tax)
	assert.Equal(t, cv.Total, o.Total)
	assert.Len(t, o.Lines, 2)

	// cart cleared on success
	after := cartSvc.View(sid)
	assert.Empty(t, after.Lines)
	assert.Equal(t, 0, after.TotalItems)
	assert.Equal(t, int64(0), after.Total)

	// order is retrievable afterwards
	got, ok := orderSvc.Get(o.ID)
	require.True(t, ok)
	assert.Equal(t, "Priya Sharma", got.Details.Name)
}

func TestPlaceEmptyCart(t *testing.T) {
	_, orderSvc := setup(t)

	_, err := orderSvc.Place("empty-session", details())
	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestAddUnknownProduct(t *testing.T) {
	cartSvc, _ := setup(t)

	err := cartSvc.Add("sid", "no-such-bike", 1)
	assert.ErrorIs(t, err, services.ErrUnknownProduct)
	assert.Empty(t, cartSvc.View("sid").Lines)
}

// Out-of-stock products can still be carted; stock is a display concern.
func TestAddOutOfStockProduct(t *testing.T) {
	cartSvc, _ := setup(t)

	require.NoError(t, cartSvc.Add("sid", "hon-cbr650r", 1))
	cv := cartSvc.View("sid")
	require.Len(t, cv.Lines, 1)
	assert.False(t, cv.Lines[0].Product.InStock)
}

func TestTotalsTrackCurrentPrice(t *testing.T) {
	cartSvc, _ := setup(t)
	sid := "sid"

	require.NoError(t, cartSvc.Add(sid, "kaw-zx10r", 1))
	p, ok := cartSvc.Feed.Product("kaw-zx10r")
	require.True(t, ok)
	assert.Equal(t, p.Price, cartSvc.View(sid).Subtotal)
}
