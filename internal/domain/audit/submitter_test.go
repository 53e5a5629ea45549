package audit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload(t *testing.T) {
	t.Run("no variances means nothing to submit", func(t *testing.T) {
		sheet := NewCountSheet(testMaterials())
		_, err := BuildPayload(sheet)
		assert.Error(t, err)

		// a zero-diff count alone is still not submittable
		_, err = sheet.RecordCount(1, "100")
		require.NoError(t, err)
		_, err = BuildPayload(sheet)
		assert.Error(t, err)
	})

	t.Run("payload carries every touched material", func(t *testing.T) {
		sheet := NewCountSheet(testMaterials())
		_, err := sheet.RecordCount(1, "95")
		require.NoError(t, err)
		_, err = sheet.RecordCount(2, "50") // matches system stock
		require.NoError(t, err)

		payload, err := BuildPayload(sheet)
		require.NoError(t, err)

		require.Len(t, payload.Items, 2)
		assert.Equal(t, int64(1), payload.Items[0].MaterialID)
		assert.True(t, payload.Items[0].CountedQty.Equal(decimal.NewFromInt(95)))
		assert.Equal(t, int64(2), payload.Items[1].MaterialID)
	})
}
