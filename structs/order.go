package structs

import "github.com/google/uuid"

// ShippingAddress is the address snapshot stored on the order
type ShippingAddress struct {
	FullName   string `json:"full_name" validate:"required,min=2,max=200"`
	Street     string `json:"street" validate:"required,max=200"`
	ExteriorNo string `json:"exterior_no" validate:"required,max=20"`
	Colonia    string `json:"colonia" validate:"required,max=100"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,len=5"`
	Phone      string `json:"phone" validate:"required,min=10,max=20"`
}

type CheckoutItem struct {
	ProductID uuid.UUID `json:"product_id" validate:"required,uuid4"`
	Size      string    `json:"size" validate:"required,min=1,max=20"`
	Color     string    `json:"color" validate:"required,min=1,max=50"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// CheckoutRequest carries the client cart as a flat payload.
// Unit prices are never trusted from the client; they are re-read
// from the products table inside the checkout transaction.
type CheckoutRequest struct {
	Email         string          `json:"email" validate:"required,email"`
	Items         []CheckoutItem  `json:"items" validate:"required,min=1,dive"`
	ShippingCents uint64          `json:"shipping_cents" validate:"gte=0"`
	TaxCents      uint64          `json:"tax_cents" validate:"gte=0"`
	Address       ShippingAddress `json:"address" validate:"required"`
	Notes         string          `json:"notes" validate:"omitempty,max=500"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}
