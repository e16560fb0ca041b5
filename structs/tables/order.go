package tables

import (
	"time"
	"treeuniformes_server/structs"

	"github.com/google/uuid"
)

type Order struct {
	tableName   struct{}   `bun:"table:orders,alias:o"`
	Id          uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderNumber string     `bun:"order_number,notnull,unique" json:"order_number"`
	CustomerId  *uuid.UUID `bun:"customer_id,type:uuid" json:"customer_id,omitempty"` // nullable for guest checkout
	Email       string     `bun:"email,notnull" json:"email"`

	Status OrderStatus `bun:"status,notnull,default:'pending'" json:"status"`

	// Money, all in cents (MXN). Total = Subtotal + Shipping + Tax.
	SubtotalCents uint64 `bun:"subtotal_cents,notnull" json:"subtotal_cents"`
	ShippingCents uint64 `bun:"shipping_cents,notnull,default:0" json:"shipping_cents"`
	TaxCents      uint64 `bun:"tax_cents,notnull,default:0" json:"tax_cents"`
	TotalCents    uint64 `bun:"total_cents,notnull" json:"total_cents"`

	// Address snapshot at checkout time
	ShippingAddress structs.ShippingAddress `bun:"shipping_address,type:jsonb" json:"shipping_address"`

	Notes     string     `bun:"notes" json:"notes,omitempty"`
	CreatedAt time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`

	Items []OrderItem `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
}

type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	Id        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`

	// Snapshot of the product at time of order
	ProductName string `bun:"product_name,notnull" json:"product_name"`
	ProductSKU  string `bun:"product_sku,notnull" json:"product_sku"`
	Size        string `bun:"size,notnull" json:"size"`
	Color       string `bun:"color,notnull" json:"color"`

	Quantity        int    `bun:"quantity,notnull" json:"quantity"`
	UnitPriceCents  uint64 `bun:"unit_price_cents,notnull" json:"unit_price_cents"`
	TotalPriceCents uint64 `bun:"total_price_cents,notnull" json:"total_price_cents"` // quantity * unit price
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)
