package trading

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload(t *testing.T) {
	t.Run("empty cart cannot be submitted", func(t *testing.T) {
		cart := newRetailCart(t)
		_, err := BuildPayload(cart)
		assert.Error(t, err)
	})

	t.Run("retail payload", func(t *testing.T) {
		cart := newRetailCart(t)
		cart.SetCustomerName("A. Goldsmith")
		_, err := cart.AddProduct(testProduct(), decimal.NewFromInt(2))
		require.NoError(t, err)
		require.True(t, cart.SetAmountPaid("40"))

		payload, err := BuildPayload(cart)
		require.NoError(t, err)

		assert.Equal(t, ModeRetail, payload.Type)
		assert.Equal(t, "A. Goldsmith", payload.CustomerName)
		assert.True(t, payload.AmountPaid.Equal(decimal.NewFromInt(40)))

		require.Len(t, payload.Items, 1)
		item := payload.Items[0]
		require.NotNil(t, item.ProductID)
		assert.Equal(t, int64(7), *item.ProductID)
		assert.Nil(t, item.MaterialID)
		assert.True(t, item.Quantity.Equal(decimal.NewFromInt(2)))
		assert.True(t, item.UnitPrice.Equal(decimal.NewFromFloat(25.00)))
	})

	t.Run("trade payload keeps settlement signs", func(t *testing.T) {
		cart := newTradeCart(t)
		_, err := cart.AddMaterial(testMaterial(), ActionSell, decimal.NewFromInt(5))
		require.NoError(t, err)

		payload, err := BuildPayload(cart)
		require.NoError(t, err)

		assert.Equal(t, ModeTrade, payload.Type)
		assert.Equal(t, "Walk-in", payload.CustomerName)

		require.Len(t, payload.Items, 1)
		item := payload.Items[0]
		require.NotNil(t, item.MaterialID)
		assert.Equal(t, int64(3), *item.MaterialID)
		assert.Nil(t, item.ProductID)
		assert.True(t, item.Quantity.Equal(decimal.NewFromInt(-5)))
		assert.True(t, item.UnitPrice.Equal(decimal.NewFromFloat(-10.00)))
	})
}
