package structs

import "github.com/google/uuid"

type ProductImageRequest struct {
	URL       string `json:"url" validate:"required,url"`
	AltText   string `json:"alt_text" validate:"omitempty,max=200"`
	IsPrimary bool   `json:"is_primary"`
}

type ProductRequest struct {
	Name          string                `json:"name" validate:"required,min=2,max=200"`
	SKU           string                `json:"sku" validate:"omitempty,min=3,max=50"`
	CategoryID    uuid.UUID             `json:"category_id" validate:"required,uuid4"`
	BrandID       uuid.UUID             `json:"brand_id" validate:"required,uuid4"`
	GarmentTypeID uuid.UUID             `json:"garment_type_id" validate:"required,uuid4"`
	Gender        string                `json:"gender" validate:"required,oneof=masculino femenino unisex"`
	Price         uint64                `json:"price" validate:"required,gte=1"` // cents
	Description   string                `json:"description" validate:"omitempty,max=2000"`
	Sizes         []string              `json:"sizes" validate:"omitempty,dive,min=1,max=20"`
	Colors        []string              `json:"colors" validate:"omitempty,dive,min=1,max=50"`
	IsActive      *bool                 `json:"is_active,omitempty"`
	Images        []ProductImageRequest `json:"images" validate:"omitempty,dive"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type BrandRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	LogoURL  string `json:"logo_url" validate:"omitempty,url"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// LookupRequest covers sizes, colors and garment types
type LookupRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=50"`
	SortOrder int    `json:"sort_order" validate:"omitempty,gte=0"`
}

type InventoryRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required,uuid4"`
	Size      string    `json:"size" validate:"required,min=1,max=20"`
	Color     string    `json:"color" validate:"required,min=1,max=50"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type AdjustQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}
