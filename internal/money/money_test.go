package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"motomart/internal/money"
)

func TestINRGrouping(t *testing.T) {
	assert.Equal(t, "₹0", money.INR(0))
	assert.Equal(t, "₹950", money.INR(950))
	assert.Equal(t, "₹79,800", money.INR(79800))
	assert.Equal(t, "₹15,49,000", money.INR(1549000))
	assert.Equal(t, "₹29,99,000", money.INR(2999000))
}
