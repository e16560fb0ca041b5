package tables_test

import (
	"testing"
	"treeuniformes_server/structs/tables"

	"github.com/stretchr/testify/assert"
)

func TestInventoryAvailable(t *testing.T) {
	cases := []struct {
		quantity  int
		reserved  int
		available int
	}{
		{10, 0, 10},
		{10, 4, 6},
		{10, 10, 0},
		{5, 7, 0}, // over-reserved rows never report negative availability
		{0, 0, 0},
	}

	for _, c := range cases {
		inv := tables.Inventory{Quantity: c.quantity, ReservedQuantity: c.reserved}
		assert.Equal(t, c.available, inv.Available(), "quantity=%d reserved=%d", c.quantity, c.reserved)
	}
}

func TestStatusForAvailable(t *testing.T) {
	assert.Equal(t, tables.StockStatusInStock, tables.StatusForAvailable(100))
	assert.Equal(t, tables.StockStatusInStock, tables.StatusForAvailable(tables.LowStockThreshold))
	assert.Equal(t, tables.StockStatusLowStock, tables.StatusForAvailable(tables.LowStockThreshold-1))
	assert.Equal(t, tables.StockStatusLowStock, tables.StatusForAvailable(1))
	assert.Equal(t, tables.StockStatusOutOfStock, tables.StatusForAvailable(0))
	assert.Equal(t, tables.StockStatusOutOfStock, tables.StatusForAvailable(-3))
}
