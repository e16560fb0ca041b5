package tables

import (
	"time"

	"github.com/google/uuid"
)

// Inventory tracks stock per product variant. A variant is the
// unique(product_id, size, color) combination. ReservedQuantity
// counts units held by open orders; it never exceeds Quantity.
type Inventory struct {
	tableName        struct{}  `bun:"table:inventory,alias:i"`
	ID               uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductID        uuid.UUID `bun:"product_id,type:uuid,notnull" json:"product_id"`
	Size             string    `bun:"size,notnull" json:"size"`
	Color            string    `bun:"color,notnull" json:"color"`
	Quantity         int       `bun:"quantity,notnull,default:0" json:"quantity"`
	ReservedQuantity int       `bun:"reserved_quantity,notnull,default:0" json:"reserved_quantity"`
	CreatedAt        time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt        time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
}

// Available returns the sellable quantity, clamped at zero
func (i *Inventory) Available() int {
	available := i.Quantity - i.ReservedQuantity
	if available < 0 {
		return 0
	}
	return available
}

type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// LowStockThreshold is the available-quantity boundary below which a
// variant is reported as low stock
const LowStockThreshold = 5

// StatusForAvailable maps an available quantity to a stock status
func StatusForAvailable(available int) StockStatus {
	switch {
	case available >= LowStockThreshold:
		return StockStatusInStock
	case available > 0:
		return StockStatusLowStock
	default:
		return StockStatusOutOfStock
	}
}
