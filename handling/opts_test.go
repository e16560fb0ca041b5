package handling_test

import (
	"net/http/httptest"
	"testing"
	"treeuniformes_server/handling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductListOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products", nil)

	opts, err := handling.ParseProductListOptions(r)
	require.NoError(t, err)

	assert.Zero(t, opts.Page)
	assert.Zero(t, opts.PageSize)
	assert.Nil(t, opts.CategoryID)
	assert.Nil(t, opts.IsActive)
	assert.False(t, opts.IncludeImages)
}

func TestParseProductListOptions(t *testing.T) {
	categoryID := uuid.New()
	brandID := uuid.New()

	r := httptest.NewRequest("GET",
		"/api/products?page=2&page_size=24&category_id="+categoryID.String()+
			"&brand_id="+brandID.String()+
			"&gender=Femenino&is_active=true&search=camisa"+
			"&min_price=10000&max_price=50000"+
			"&sizes=M,%20L,XL&colors=azul,%20negro"+
			"&sort_by=price&sort_direction=asc&include_images=true",
		nil)

	opts, err := handling.ParseProductListOptions(r)
	require.NoError(t, err)

	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 24, opts.PageSize)
	require.NotNil(t, opts.CategoryID)
	assert.Equal(t, categoryID, *opts.CategoryID)
	require.NotNil(t, opts.BrandID)
	assert.Equal(t, brandID, *opts.BrandID)
	assert.Equal(t, "femenino", opts.Gender)
	require.NotNil(t, opts.IsActive)
	assert.True(t, *opts.IsActive)
	assert.Equal(t, "camisa", opts.SearchTerm)
	require.NotNil(t, opts.MinPrice)
	assert.Equal(t, uint64(10000), *opts.MinPrice)
	require.NotNil(t, opts.MaxPrice)
	assert.Equal(t, uint64(50000), *opts.MaxPrice)
	assert.Equal(t, []string{"M", "L", "XL"}, opts.Sizes)
	assert.Equal(t, []string{"azul", "negro"}, opts.Colors)
	assert.Equal(t, "price", opts.SortBy)
	assert.Equal(t, "ASC", opts.SortDirection)
	assert.True(t, opts.IncludeImages)
}

func TestParseProductListOptionsPriceBoundsAreIndependent(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products?min_price=100&max_price=200", nil)

	opts, err := handling.ParseProductListOptions(r)
	require.NoError(t, err)

	require.NotNil(t, opts.MinPrice)
	require.NotNil(t, opts.MaxPrice)
	assert.Equal(t, uint64(100), *opts.MinPrice)
	assert.Equal(t, uint64(200), *opts.MaxPrice)
}

func TestParseProductListOptionsRejectsBadInput(t *testing.T) {
	for _, target := range []string{
		"/api/products?page=abc",
		"/api/products?category_id=not-a-uuid",
		"/api/products?is_active=maybe",
		"/api/products?min_price=-5",
		"/api/products?include_images=si",
	} {
		r := httptest.NewRequest("GET", target, nil)
		_, err := handling.ParseProductListOptions(r)
		assert.Error(t, err, "target: %s", target)
	}
}
