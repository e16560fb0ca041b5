package tables

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	tableName   struct{}  `bun:"table:categories,alias:c"`
	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name        string    `bun:"name,notnull,unique" json:"name"`
	Description string    `bun:"description" json:"description,omitempty"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

type Brand struct {
	tableName struct{}  `bun:"table:brands,alias:b"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull,unique" json:"name"`
	LogoURL   string    `bun:"logo_url" json:"logo_url,omitempty"`
	IsActive  bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

type Size struct {
	tableName struct{}  `bun:"table:sizes,alias:s"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull,unique" json:"name"`
	SortOrder int       `bun:"sort_order,notnull,default:0" json:"sort_order"`
}

type Color struct {
	tableName struct{}  `bun:"table:colors,alias:co"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull,unique" json:"name"`
	SortOrder int       `bun:"sort_order,notnull,default:0" json:"sort_order"`
}

type GarmentType struct {
	tableName struct{}  `bun:"table:garment_types,alias:gt"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull,unique" json:"name"`
	SortOrder int       `bun:"sort_order,notnull,default:0" json:"sort_order"`
}

type Gender string

const (
	GenderMasculino Gender = "masculino"
	GenderFemenino  Gender = "femenino"
	GenderUnisex    Gender = "unisex"
)

type Product struct {
	tableName     struct{}  `bun:"table:products,alias:p"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name          string    `bun:"name,notnull" json:"name"`
	SKU           string    `bun:"sku,notnull,unique" json:"sku"`
	CategoryID    uuid.UUID `bun:"category_id,type:uuid,notnull" json:"category_id"`
	BrandID       uuid.UUID `bun:"brand_id,type:uuid,notnull" json:"brand_id"`
	GarmentTypeID uuid.UUID `bun:"garment_type_id,type:uuid,notnull" json:"garment_type_id"`
	Gender        Gender    `bun:"gender,notnull,default:'unisex'" json:"gender"`
	Price         uint64    `bun:"price,notnull" json:"price"` // stored in cents (MXN)
	Description   string    `bun:"description" json:"description,omitempty"`
	Sizes         []string  `bun:"sizes,array" json:"sizes,omitempty"`
	Colors        []string  `bun:"colors,array" json:"colors,omitempty"`
	IsActive      bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Category    *Category      `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
	Brand       *Brand         `bun:"rel:belongs-to,join:brand_id=id" json:"brand,omitempty"`
	GarmentType *GarmentType   `bun:"rel:belongs-to,join:garment_type_id=id" json:"garment_type,omitempty"`
	Images      []ProductImage `bun:"rel:has-many,join:id=product_id" json:"images,omitempty"`
}

type ProductImage struct {
	tableName struct{}  `bun:"table:product_images,alias:pi"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductID uuid.UUID `bun:"product_id,type:uuid,notnull" json:"product_id"`
	URL       string    `bun:"url,notnull" json:"url"`
	AltText   string    `bun:"alt_text" json:"alt_text,omitempty"`
	IsPrimary bool      `bun:"is_primary,notnull" json:"is_primary"`
}
