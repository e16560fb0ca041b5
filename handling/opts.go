package handling

import (
	"net/http"
	"strconv"
	"strings"
	"treeuniformes_server/services"

	"github.com/google/uuid"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &services.ProductListOptions{}, nil
	}

	opts := &services.ProductListOptions{}
	var err error
	var valInt int
	var valBool bool

	// Parse pagination parameters
	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	// Parse relation filters
	if categoryID := query.Get("category_id"); categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			return nil, err
		}
		opts.CategoryID = &id
	}

	if brandID := query.Get("brand_id"); brandID != "" {
		id, err := uuid.Parse(brandID)
		if err != nil {
			return nil, err
		}
		opts.BrandID = &id
	}

	if garmentTypeID := query.Get("garment_type_id"); garmentTypeID != "" {
		id, err := uuid.Parse(garmentTypeID)
		if err != nil {
			return nil, err
		}
		opts.GarmentTypeID = &id
	}

	if gender := query.Get("gender"); gender != "" {
		opts.Gender = strings.ToLower(gender)
	}

	// Parse boolean filters
	if isActive := query.Get("is_active"); isActive != "" {
		active, err := strconv.ParseBool(isActive)
		if err != nil {
			return nil, err
		}
		opts.IsActive = &active
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	// Parse price filters (cents)
	if minPrice := query.Get("min_price"); minPrice != "" {
		price, err := strconv.ParseUint(minPrice, 10, 64)
		if err != nil {
			return nil, err
		}
		opts.MinPrice = &price
	}

	if maxPrice := query.Get("max_price"); maxPrice != "" {
		price, err := strconv.ParseUint(maxPrice, 10, 64)
		if err != nil {
			return nil, err
		}
		opts.MaxPrice = &price
	}

	if sizes := query.Get("sizes"); sizes != "" {
		opts.Sizes = splitAndTrim(sizes)
	}

	if colors := query.Get("colors"); colors != "" {
		opts.Colors = splitAndTrim(colors)
	}

	// Parse sorting parameters
	if sortBy := query.Get("sort_by"); sortBy != "" {
		opts.SortBy = sortBy
	}

	if sortDirection := query.Get("sort_direction"); sortDirection != "" {
		opts.SortDirection = strings.ToUpper(sortDirection)
	}

	// Parse include_images flag
	if includeImages := query.Get("include_images"); includeImages != "" {
		if valBool, err = strconv.ParseBool(includeImages); err != nil {
			return nil, err
		}
		opts.IncludeImages = valBool
	}

	return opts, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
