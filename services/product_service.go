package services

import (
	"context"
	"fmt"
	"time"
	"treeuniformes_server/database"
	"treeuniformes_server/lib"
	"treeuniformes_server/structs"
	"treeuniformes_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// ProductListOptions contains filtering and pagination options for product queries
type ProductListOptions struct {
	// Pagination
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	// Filters
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	BrandID       *uuid.UUID `json:"brand_id,omitempty"`
	GarmentTypeID *uuid.UUID `json:"garment_type_id,omitempty"`
	Gender        string     `json:"gender,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
	MinPrice      *uint64    `json:"min_price,omitempty"` // cents
	MaxPrice      *uint64    `json:"max_price,omitempty"` // cents
	SearchTerm    string     `json:"search_term,omitempty"`
	Sizes         []string   `json:"sizes,omitempty"`
	Colors        []string   `json:"colors,omitempty"`

	// Sorting
	SortBy        string `json:"sort_by"`        // created_at, price, name, sku
	SortDirection string `json:"sort_direction"` // ASC or DESC

	// Relations
	IncludeImages bool `json:"include_images"`

	// Performance
	Timeout time.Duration `json:"-"`
}

// ProductListResult wraps the product list response with metadata
type ProductListResult struct {
	Products   []tables.Product    `json:"products"`
	Pagination database.Pagination `json:"pagination"`
	Filters    ProductListOptions  `json:"filters"`
	QueryTime  time.Duration       `json:"query_time"`
}

// GetAllProducts retrieves products with comprehensive filtering, pagination, and error handling
func (ps *ProductService) GetAllProducts(ctx context.Context, opts *ProductListOptions) (*ProductListResult, error) {
	startTime := time.Now()

	if opts == nil {
		opts = &ProductListOptions{}
	}
	ps.applyDefaultOptions(opts)

	if err := ps.validateOptions(opts); err != nil {
		ps.logger.Error("Invalid product list options", gecho.Field("error", err), gecho.Field("options", opts))
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	queryCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		queryCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	query := database.Query[tables.Product](ps.db)
	query = ps.applyFilters(query, opts)
	query = ps.applySorting(query, opts)

	if opts.IncludeImages {
		query = query.Relation("Images")
	}

	result, err := database.Paginate(query, queryCtx, opts.Page, opts.PageSize)
	if err != nil {
		ps.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("page", opts.Page),
			gecho.Field("pageSize", opts.PageSize),
			gecho.Field("duration", time.Since(startTime)))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	ps.logger.Debug("Products fetched successfully",
		gecho.Field("count", len(result.Data)),
		gecho.Field("total", result.Pagination.Total),
		gecho.Field("page", result.Pagination.Page),
		gecho.Field("duration", time.Since(startTime)),
	)

	return &ProductListResult{
		Products:   result.Data,
		Pagination: result.Pagination,
		Filters:    *opts,
		QueryTime:  time.Since(startTime),
	}, nil
}

// GetProductByID retrieves a single product by ID with optional image preloading
func (ps *ProductService) GetProductByID(ctx context.Context, id string, includeImages bool) (*tables.Product, error) {
	startTime := time.Now()

	// Try to get from cache first
	cachedProduct, err := ps.cacheService.GetProductByID(id, includeImages)
	if err != nil {
		ps.logger.Warn("Failed to get product from cache", gecho.Field("error", err), gecho.Field("id", id))
	} else if cachedProduct != nil {
		ps.logger.Debug("Product retrieved from cache", gecho.Field("id", id), gecho.Field("duration", time.Since(startTime)))
		return cachedProduct, nil
	}

	// Cache miss - fetch from database
	query := database.Query[tables.Product](ps.db).
		Where("id", id).
		Timeout(5 * time.Second)

	if includeImages {
		query = query.Relation("Images")
	}

	product, err := query.First(ctx)
	if err != nil {
		ps.logger.Error("Failed to fetch product by ID",
			gecho.Field("id", id),
			gecho.Field("error", err),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	if product == nil {
		ps.logger.Warn("Product not found", gecho.Field("id", id))
		return nil, lib.ErrNotFound
	}

	// Cache the product asynchronously
	go func() {
		if err := ps.cacheService.SetProductByID(product, includeImages); err != nil {
			ps.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("id", id))
		}
	}()

	return product, nil
}

// GetActiveProducts returns only active products with caching for the storefront
func (ps *ProductService) GetActiveProducts(ctx context.Context, opts *ProductListOptions) (*ProductListResult, error) {
	startTime := time.Now()

	if opts == nil {
		opts = &ProductListOptions{}
	}
	isActive := true
	opts.IsActive = &isActive
	ps.applyDefaultOptions(opts)

	filterKey := ps.cacheFilterKey(opts)

	cachedProducts, err := ps.cacheService.GetActiveProductsList(filterKey)
	if err != nil {
		ps.logger.Warn("Failed to get active products from cache", gecho.Field("error", err))
	} else if cachedProducts != nil {
		ps.logger.Debug("Active products retrieved from cache",
			gecho.Field("count", len(cachedProducts)),
			gecho.Field("duration", time.Since(startTime)),
		)

		return &ProductListResult{
			Products: cachedProducts,
			Pagination: database.Pagination{
				Page:     opts.Page,
				PageSize: opts.PageSize,
				Total:    len(cachedProducts), // approximate, the real total needs a separate query
			},
			Filters:   *opts,
			QueryTime: time.Since(startTime),
		}, nil
	}

	result, err := ps.GetAllProducts(ctx, opts)
	if err != nil {
		return nil, err
	}

	// Cache the products asynchronously
	go func() {
		if err := ps.cacheService.SetActiveProductsList(filterKey, result.Products); err != nil {
			ps.logger.Warn("Failed to cache active products", gecho.Field("error", err))
		}
	}()

	return result, nil
}

// cacheFilterKey encodes the filter combination into a stable cache key fragment
func (ps *ProductService) cacheFilterKey(opts *ProductListOptions) string {
	category := ""
	if opts.CategoryID != nil {
		category = opts.CategoryID.String()
	}
	brand := ""
	if opts.BrandID != nil {
		brand = opts.BrandID.String()
	}
	garmentType := ""
	if opts.GarmentTypeID != nil {
		garmentType = opts.GarmentTypeID.String()
	}

	return fmt.Sprintf("page:%d:size:%d:cat:%s:brand:%s:type:%s:gender:%s:images:%v",
		opts.Page, opts.PageSize, category, brand, garmentType, opts.Gender, opts.IncludeImages)
}

// GetProductsByIDs retrieves multiple products by their IDs
func (ps *ProductService) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]tables.Product, error) {
	if len(ids) == 0 {
		return []tables.Product{}, nil
	}

	idValues := make([]any, len(ids))
	for i, id := range ids {
		idValues[i] = id
	}

	products, err := database.Query[tables.Product](ps.db).
		WhereIn("id", idValues).
		Timeout(10 * time.Second).
		All(ctx)
	if err != nil {
		ps.logger.Error("Failed to fetch products by IDs",
			gecho.Field("error", err),
			gecho.Field("count", len(ids)),
		)
		return nil, fmt.Errorf("failed to fetch products by IDs: %w", err)
	}

	return products, nil
}

// GetProductCount returns the total count of products matching the filters
func (ps *ProductService) GetProductCount(ctx context.Context, opts *ProductListOptions) (int, error) {
	if opts == nil {
		opts = &ProductListOptions{}
	}

	query := database.Query[tables.Product](ps.db)
	query = ps.applyFilters(query, opts)

	count, err := query.Count(ctx)
	if err != nil {
		ps.logger.Error("Failed to count products", gecho.Field("error", err), gecho.Field("options", opts))
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

// applyDefaultOptions sets default values for unspecified options
func (ps *ProductService) applyDefaultOptions(opts *ProductListOptions) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 20
	}
	if opts.PageSize > 100 {
		opts.PageSize = 100 // Max page size for performance
	}
	if opts.SortBy == "" {
		opts.SortBy = "created_at"
	}
	if opts.SortDirection == "" {
		opts.SortDirection = "DESC"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
}

// validateOptions validates the provided options
func (ps *ProductService) validateOptions(opts *ProductListOptions) error {
	validSortFields := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"price":      true,
		"name":       true,
		"sku":        true,
	}
	if !validSortFields[opts.SortBy] {
		return fmt.Errorf("invalid sort field: %s", opts.SortBy)
	}

	if opts.SortDirection != "ASC" && opts.SortDirection != "DESC" {
		return fmt.Errorf("invalid sort direction: %s (must be ASC or DESC)", opts.SortDirection)
	}

	if opts.Gender != "" {
		switch tables.Gender(opts.Gender) {
		case tables.GenderMasculino, tables.GenderFemenino, tables.GenderUnisex:
		default:
			return fmt.Errorf("invalid gender filter: %s", opts.Gender)
		}
	}

	if opts.MinPrice != nil && opts.MaxPrice != nil && *opts.MinPrice > *opts.MaxPrice {
		return fmt.Errorf("min_price cannot be greater than max_price")
	}

	return nil
}

// applyFilters applies all filter conditions to the query
func (ps *ProductService) applyFilters(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	if opts.IsActive != nil {
		query = query.Where("is_active", *opts.IsActive)
	}

	if opts.CategoryID != nil {
		query = query.Where("category_id", *opts.CategoryID)
	}
	if opts.BrandID != nil {
		query = query.Where("brand_id", *opts.BrandID)
	}
	if opts.GarmentTypeID != nil {
		query = query.Where("garment_type_id", *opts.GarmentTypeID)
	}

	if opts.Gender != "" {
		// Unisex garments match both gendered filters
		if opts.Gender == string(tables.GenderUnisex) {
			query = query.Where("gender", opts.Gender)
		} else {
			query = query.WhereRaw("(gender = ? OR gender = ?)", opts.Gender, string(tables.GenderUnisex))
		}
	}

	if opts.MinPrice != nil {
		query = query.WhereOp("price", ">=", *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		query = query.WhereOp("price", "<=", *opts.MaxPrice)
	}

	// Search in name, description, or SKU
	if opts.SearchTerm != "" {
		searchPattern := "%" + opts.SearchTerm + "%"
		query = query.WhereRaw(
			"(name ILIKE ? OR description ILIKE ? OR sku ILIKE ?)",
			searchPattern, searchPattern, searchPattern,
		)
	}

	// Variant filters against the array columns
	if len(opts.Sizes) > 0 {
		query = query.WhereRaw("sizes && ?", pgdialect.Array(opts.Sizes))
	}
	if len(opts.Colors) > 0 {
		query = query.WhereRaw("colors && ?", pgdialect.Array(opts.Colors))
	}

	return query
}

// applySorting applies sorting to the query
func (ps *ProductService) applySorting(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	var direction database.OrderDirection
	if opts.SortDirection == "ASC" {
		direction = database.ASC
	} else {
		direction = database.DESC
	}

	query = query.OrderBy(opts.SortBy, direction)

	// Add secondary sort by ID for consistent ordering
	query = query.OrderBy("id", database.ASC)

	return query
}

// CreateProduct inserts a new product with its images
func (ps *ProductService) CreateProduct(ctx context.Context, req *structs.ProductRequest) (*tables.Product, error) {
	startTime := time.Now()

	sku := req.SKU
	if sku == "" {
		brandName := ""
		brand, err := database.Query[tables.Brand](ps.db).Where("id", req.BrandID).First(ctx)
		if err == nil && brand != nil {
			brandName = brand.Name
		}

		generated, err := lib.GenerateSKU(brandName, req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to generate SKU: %w", err)
		}
		sku = generated
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &tables.Product{
		ID:            uuid.New(),
		Name:          req.Name,
		SKU:           sku,
		CategoryID:    req.CategoryID,
		BrandID:       req.BrandID,
		GarmentTypeID: req.GarmentTypeID,
		Gender:        tables.Gender(req.Gender),
		Price:         req.Price,
		Description:   req.Description,
		Sizes:         req.Sizes,
		Colors:        req.Colors,
		IsActive:      isActive,
	}

	product, err := database.Query[tables.Product](ps.db).Insert(ctx, product)
	if err != nil {
		mappedErr := lib.MapDBError(err)
		ps.logger.Error("Failed to create product",
			gecho.Field("error", mappedErr),
			gecho.Field("product_name", req.Name),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, mappedErr
	}

	if len(req.Images) > 0 {
		images := buildProductImages(product.ID, req.Images)

		_, imgErr := database.Query[tables.ProductImage](ps.db).InsertMany(ctx, images)
		if imgErr != nil {
			ps.logger.Error("Failed to insert product images",
				gecho.Field("error", imgErr),
				gecho.Field("product_id", product.ID),
			)
			return nil, fmt.Errorf("failed to insert product images: %w", imgErr)
		}
		product.Images = images
	}

	// Invalidate product caches asynchronously
	go func() {
		if err := ps.cacheService.InvalidateProductCaches(product.ID); err != nil {
			ps.logger.Warn("Failed to invalidate product caches after creation",
				gecho.Field("error", err),
				gecho.Field("product_id", product.ID),
			)
		}
	}()

	ps.logger.Info("Product created successfully",
		gecho.Field("id", product.ID),
		gecho.Field("sku", product.SKU),
		gecho.Field("duration", time.Since(startTime)),
	)
	return product, nil
}

// buildProductImages maps image requests to rows, keeping a single primary image
func buildProductImages(productID uuid.UUID, reqs []structs.ProductImageRequest) []tables.ProductImage {
	images := make([]tables.ProductImage, len(reqs))
	hasPrimary := false
	for i, img := range reqs {
		isPrimary := img.IsPrimary && !hasPrimary
		if isPrimary {
			hasPrimary = true
		}
		images[i] = tables.ProductImage{
			ID:        uuid.New(),
			ProductID: productID,
			URL:       img.URL,
			AltText:   img.AltText,
			IsPrimary: isPrimary,
		}
	}
	if !hasPrimary && len(images) > 0 {
		images[0].IsPrimary = true
	}
	return images
}

// productUpdateColumns builds the column set UpdateProduct applies. SKU and
// the active flag only change when the request carries them.
func productUpdateColumns(req *structs.ProductRequest) map[string]any {
	updateData := map[string]any{
		"name":            req.Name,
		"category_id":     req.CategoryID,
		"brand_id":        req.BrandID,
		"garment_type_id": req.GarmentTypeID,
		"gender":          req.Gender,
		"price":           req.Price,
		"description":     req.Description,
		"sizes":           pgdialect.Array(req.Sizes),
		"colors":          pgdialect.Array(req.Colors),
		"updated_at":      time.Now(),
	}
	if req.SKU != "" {
		updateData["sku"] = req.SKU
	}
	if req.IsActive != nil {
		updateData["is_active"] = *req.IsActive
	}
	return updateData
}

// UpdateProduct applies a full product update with image replacement
func (ps *ProductService) UpdateProduct(ctx context.Context, productID uuid.UUID, req *structs.ProductRequest) (*tables.Product, error) {
	existing, err := database.Query[tables.Product](ps.db).Where("id", productID).First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if existing == nil {
		return nil, lib.ErrNotFound
	}

	// The column update and image replacement must commit or roll back together
	err = database.Transaction(ps.db, ctx, func(tx bun.Tx) error {
		query := tx.NewUpdate().
			Model((*tables.Product)(nil)).
			Where("id = ?", productID)
		for col, val := range productUpdateColumns(req) {
			query = query.Set("? = ?", bun.Ident(col), val)
		}
		if _, err := query.Exec(ctx); err != nil {
			return lib.MapDBError(err)
		}

		// Replace images when the request carries them
		if req.Images != nil {
			if _, err := tx.NewDelete().
				Model((*tables.ProductImage)(nil)).
				Where("product_id = ?", productID).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to delete existing images: %w", err)
			}

			if len(req.Images) > 0 {
				images := buildProductImages(productID, req.Images)
				if _, err := tx.NewInsert().Model(&images).Exec(ctx); err != nil {
					return fmt.Errorf("failed to insert new images: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Invalidate product caches asynchronously
	go func() {
		if err := ps.cacheService.InvalidateProductCaches(productID); err != nil {
			ps.logger.Warn("Failed to invalidate product caches after update",
				gecho.Field("error", err),
				gecho.Field("product_id", productID),
			)
		}
	}()

	return ps.GetProductByID(ctx, productID.String(), true)
}

// DeleteProduct removes a product, its images and its inventory rows
func (ps *ProductService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	existing, err := database.Query[tables.Product](ps.db).Where("id", productID).First(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if existing == nil {
		return lib.ErrNotFound
	}

	err = database.Transaction(ps.db, ctx, func(tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*tables.ProductImage)(nil)).
			Where("product_id = ?", productID).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete product images: %w", err)
		}
		if _, err := tx.NewDelete().
			Model((*tables.Inventory)(nil)).
			Where("product_id = ?", productID).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete product inventory: %w", err)
		}
		if _, err := tx.NewDelete().
			Model((*tables.Product)(nil)).
			Where("id = ?", productID).
			Exec(ctx); err != nil {
			return lib.MapDBError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		if err := ps.cacheService.InvalidateProductCaches(productID); err != nil {
			ps.logger.Warn("Failed to invalidate product caches after deletion",
				gecho.Field("error", err),
				gecho.Field("product_id", productID),
			)
		}
	}()

	ps.logger.Info("Product deleted", gecho.Field("id", productID))
	return nil
}
