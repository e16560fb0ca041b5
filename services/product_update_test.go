package services

import (
	"testing"
	"treeuniformes_server/structs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductUpdateColumns(t *testing.T) {
	req := &structs.ProductRequest{
		Name:          "Camisa Industrial",
		CategoryID:    uuid.New(),
		BrandID:       uuid.New(),
		GarmentTypeID: uuid.New(),
		Gender:        "unisex",
		Price:         15000,
		Description:   "Manga larga",
		Sizes:         []string{"M", "L"},
		Colors:        []string{"azul"},
	}

	cols := productUpdateColumns(req)

	assert.Equal(t, "Camisa Industrial", cols["name"])
	assert.Equal(t, uint64(15000), cols["price"])
	assert.Contains(t, cols, "updated_at")

	// SKU and active flag stay untouched unless the request carries them
	assert.NotContains(t, cols, "sku")
	assert.NotContains(t, cols, "is_active")
}

func TestProductUpdateColumnsCarriesOptionalFields(t *testing.T) {
	active := false
	req := &structs.ProductRequest{
		Name:     "Camisa Industrial",
		SKU:      "KOD-CAMISA-AB12",
		IsActive: &active,
	}

	cols := productUpdateColumns(req)

	assert.Equal(t, "KOD-CAMISA-AB12", cols["sku"])
	assert.Equal(t, false, cols["is_active"])
}

func TestBuildProductImagesKeepsSinglePrimary(t *testing.T) {
	productID := uuid.New()
	images := buildProductImages(productID, []structs.ProductImageRequest{
		{URL: "a.jpg", IsPrimary: true},
		{URL: "b.jpg", IsPrimary: true},
		{URL: "c.jpg"},
	})

	require.Len(t, images, 3)

	primaries := 0
	for _, img := range images {
		assert.Equal(t, productID, img.ProductID)
		if img.IsPrimary {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries)
	assert.True(t, images[0].IsPrimary)
}

func TestBuildProductImagesDefaultsFirstPrimary(t *testing.T) {
	images := buildProductImages(uuid.New(), []structs.ProductImageRequest{
		{URL: "a.jpg"},
		{URL: "b.jpg"},
	})

	require.Len(t, images, 2)
	assert.True(t, images[0].IsPrimary)
	assert.False(t, images[1].IsPrimary)
}
