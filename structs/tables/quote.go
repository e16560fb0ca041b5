package tables

import (
	"time"

	"github.com/google/uuid"
)

type Quote struct {
	tableName   struct{}   `bun:"table:quotes,alias:q"`
	Id          uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	QuoteNumber string     `bun:"quote_number,notnull,unique" json:"quote_number"`
	CustomerId  *uuid.UUID `bun:"customer_id,type:uuid" json:"customer_id,omitempty"`

	CompanyName  string `bun:"company_name,notnull" json:"company_name"`
	ContactName  string `bun:"contact_name,notnull" json:"contact_name"`
	ContactEmail string `bun:"contact_email,notnull" json:"contact_email"`
	ContactPhone string `bun:"contact_phone" json:"contact_phone,omitempty"`

	Status QuoteStatus `bun:"status,notnull,default:'draft'" json:"status"`

	SubtotalCents uint64 `bun:"subtotal_cents,notnull" json:"subtotal_cents"`
	TaxCents      uint64 `bun:"tax_cents,notnull,default:0" json:"tax_cents"`
	TotalCents    uint64 `bun:"total_cents,notnull" json:"total_cents"`

	ValidUntil *time.Time `bun:"valid_until,nullzero" json:"valid_until,omitempty"` // set when the quote is sent
	Notes      string     `bun:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time  `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt  *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`

	Lines []QuoteLine `bun:"rel:has-many,join:id=quote_id" json:"lines,omitempty"`
}

type QuoteLine struct {
	tableName struct{}  `bun:"table:quote_lines,alias:ql"`
	Id        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	QuoteId   uuid.UUID `bun:"quote_id,notnull,type:uuid" json:"quote_id"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`

	ProductName string `bun:"product_name,notnull" json:"product_name"`
	ProductSKU  string `bun:"product_sku,notnull" json:"product_sku"`
	Size        string `bun:"size" json:"size,omitempty"`
	Color       string `bun:"color" json:"color,omitempty"`

	Quantity       int    `bun:"quantity,notnull" json:"quantity"`
	UnitPriceCents uint64 `bun:"unit_price_cents,notnull" json:"unit_price_cents"`
	LineTotalCents uint64 `bun:"line_total_cents,notnull" json:"line_total_cents"`
}

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)
