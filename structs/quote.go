package structs

import "github.com/google/uuid"

type QuoteItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required,uuid4"`
	Size      string    `json:"size" validate:"omitempty,max=20"`
	Color     string    `json:"color" validate:"omitempty,max=50"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type QuoteRequest struct {
	CompanyName  string             `json:"company_name" validate:"required,min=2,max=200"`
	ContactName  string             `json:"contact_name" validate:"required,min=2,max=200"`
	ContactEmail string             `json:"contact_email" validate:"required,email"`
	ContactPhone string             `json:"contact_phone" validate:"omitempty,min=10,max=20"`
	Items        []QuoteItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes        string             `json:"notes" validate:"omitempty,max=1000"`
}
