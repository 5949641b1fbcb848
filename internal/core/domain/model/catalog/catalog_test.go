package catalog_test

import (
	"testing"

	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("should normalize code to upper case", func(t *testing.T) {
		table, err := catalog.NewTable(kernel.NewUUID(), "  vip ", " VIP Table ")

		require.NoError(t, err)
		require.NoError(t, table.Validate())
		assert.Equal(t, "VIP", table.Code())
		assert.Equal(t, "VIP Table", table.Name())
	})

	t.Run("should require code and name", func(t *testing.T) {
		table, err := catalog.NewTable(kernel.NewUUID(), " ", "")

		require.Error(t, err)
		assert.Nil(t, table)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "table code")
		assert.Contains(t, err.Error(), "table name")
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := catalog.NewTable(kernel.UUID{}, "T1", "Table 1")
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var table *catalog.Table
		assert.Equal(t, catalog.ErrTableIsNotConstructed, table.Validate())
	})
}

func TestNewMenuItem(t *testing.T) {
	t.Run("should build available item with category", func(t *testing.T) {
		item, err := catalog.NewMenuItem(kernel.NewUUID(), " Pad Thai ", " noodles ", kernel.MoneyFromFloat(80), "Mains", true)

		require.NoError(t, err)
		assert.Equal(t, "Pad Thai", item.Name())
		assert.Equal(t, "noodles", item.Description())
		assert.Equal(t, "80.00", item.Price().String())
		require.NotNil(t, item.Category())
		assert.Equal(t, "Mains", *item.Category())
		assert.True(t, item.IsAvailable())
	})

	t.Run("blank category becomes nil", func(t *testing.T) {
		item, err := catalog.NewMenuItem(kernel.NewUUID(), "Water", "", kernel.ZeroMoney(), "   ", false)

		require.NoError(t, err)
		assert.Nil(t, item.Category())
		assert.False(t, item.IsAvailable())
	})

	t.Run("negative price and blank name rejected", func(t *testing.T) {
		_, err := catalog.NewMenuItem(kernel.NewUUID(), "", "", kernel.MoneyFromFloat(-1), "", true)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMenuItem_Update(t *testing.T) {
	item, err := catalog.NewMenuItem(kernel.NewUUID(), "Tea", "", kernel.MoneyFromFloat(45), "Drinks", true)
	require.NoError(t, err)

	t.Run("failed update leaves item unchanged", func(t *testing.T) {
		err := item.Update("", "x", kernel.MoneyFromFloat(10), "Other", false)

		require.Error(t, err)
		assert.Equal(t, "Tea", item.Name())
		assert.Equal(t, "45.00", item.Price().String())
		assert.True(t, item.IsAvailable())
	})

	t.Run("successful update replaces attributes", func(t *testing.T) {
		err := item.Update("Iced Tea", "sweet", kernel.MoneyFromFloat(50), "", false)

		require.NoError(t, err)
		assert.Equal(t, "Iced Tea", item.Name())
		assert.Equal(t, "50.00", item.Price().String())
		assert.Nil(t, item.Category())
		assert.False(t, item.IsAvailable())
	})

	t.Run("category accessor returns a copy", func(t *testing.T) {
		require.NoError(t, item.Update("Tea", "", kernel.MoneyFromFloat(45), "Drinks", true))

		c := item.Category()
		*c = "Changed"

		assert.Equal(t, "Drinks", *item.Category())
	})
}
