package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"motomart/internal/catalog"
	"motomart/internal/validate"
)

func TestQty(t *testing.T) {
	assert.Equal(t, 3, validate.Qty("3"))
	assert.Equal(t, 1, validate.Qty("0"))
	assert.Equal(t, 1, validate.Qty("-4"))
	assert.Equal(t, 1, validate.Qty("abc"))
	assert.Equal(t, 10, validate.Qty("99")) // clamp to avoid abuse
}

func TestID(t *testing.T) {
	id, ok := validate.ID(" ktm-duke390 ")
	assert.True(t, ok)
	assert.Equal(t, "ktm-duke390", id)

	_, ok = validate.ID("../etc/passwd")
	assert.False(t, ok)
	_, ok = validate.ID("")
	assert.False(t, ok)
}

func TestQ(t *testing.T) {
	assert.Equal(t, "ninja 650", validate.Q("  ninja 650  "))
	assert.Equal(t, "abc", validate.Q("a\x00b\x1fc"))
	assert.Len(t, validate.Q(string(make([]byte, 200))), 0)
}

func TestPrice(t *testing.T) {
	assert.Equal(t, int64(500000), validate.Price("500000", 0, 8000000))
	assert.Equal(t, int64(8000000), validate.Price("99999999", 0, 8000000))
	assert.Equal(t, int64(0), validate.Price("-5", 0, 8000000))
	assert.Equal(t, int64(123), validate.Price("", 123, 8000000))
	assert.Equal(t, int64(123), validate.Price("not-a-number", 123, 8000000))
}

func TestSort(t *testing.T) {
	assert.Equal(t, catalog.SortPriceDesc, validate.Sort("price-desc"))
	assert.Equal(t, catalog.SortFeatured, validate.Sort(""))
	assert.Equal(t, catalog.SortFeatured, validate.Sort("drop table"))
}

func TestEmailPhonePIN(t *testing.T) {
	_, ok := validate.Email("priya@example.com")
	assert.True(t, ok)
	_, ok = validate.Email("not-an-email")
	assert.False(t, ok)

	_, ok = validate.Phone("9876543210")
	assert.True(t, ok)
	_, ok = validate.Phone("+91 9876543210")
	assert.True(t, ok)
	_, ok = validate.Phone("12345")
	assert.False(t, ok)

	_, ok = validate.PIN("560001")
	assert.True(t, ok)
	_, ok = validate.PIN("056001")
	assert.False(t, ok)
}

func TestTheme(t *testing.T) {
	th, ok := validate.Theme(" Dark ")
	assert.True(t, ok)
	assert.Equal(t, "dark", th)
	_, ok = validate.Theme("neon")
	assert.False(t, ok)
}
