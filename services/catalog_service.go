package services

import (
	"context"
	"time"
	"treeuniformes_server/database"
	"treeuniformes_server/lib"
	"treeuniformes_server/structs"
	"treeuniformes_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// CatalogService manages categories, brands and the variant lookup tables
// (sizes, colors, garment types)
type CatalogService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCatalogService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CatalogService {
	return &CatalogService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// listLookup serves a lookup table from cache, falling back to the database
func listLookup[T any](cs *CatalogService, ctx context.Context, name string, order func(*database.QueryBuilder[T]) *database.QueryBuilder[T]) ([]T, error) {
	cached, err := GetLookupList[T](cs.cacheService, name)
	if err != nil {
		cs.logger.Warn("Failed to read lookup cache", gecho.Field("error", err), gecho.Field("name", name))
	} else if cached != nil {
		return cached, nil
	}

	query := database.Query[T](cs.db)
	if order != nil {
		query = order(query)
	}

	rows, err := query.All(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch lookup table", gecho.Field("error", err), gecho.Field("name", name))
		return nil, lib.MapDBError(err)
	}

	go func() {
		if err := SetLookupList(cs.cacheService, name, rows); err != nil {
			cs.logger.Warn("Failed to cache lookup table", gecho.Field("error", err), gecho.Field("name", name))
		}
	}()

	return rows, nil
}

func (cs *CatalogService) invalidateLookup(name string) {
	if err := cs.cacheService.InvalidateLookupList(name); err != nil {
		cs.logger.Warn("Failed to invalidate lookup cache", gecho.Field("error", err), gecho.Field("name", name))
	}
}

// ============================================================================
// Categories
// ============================================================================

func (cs *CatalogService) ListCategories(ctx context.Context) ([]tables.Category, error) {
	return listLookup(cs, ctx, "categories", func(q *database.QueryBuilder[tables.Category]) *database.QueryBuilder[tables.Category] {
		return q.OrderBy("name", database.ASC)
	})
}

func (cs *CatalogService) CreateCategory(ctx context.Context, req *structs.CategoryRequest) (*tables.Category, error) {
	category := &tables.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	category, err := database.Query[tables.Category](cs.db).Insert(ctx, category)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	cs.invalidateLookup("categories")
	return category, nil
}

func (cs *CatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, req *structs.CategoryRequest) (*tables.Category, error) {
	updates := map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"updated_at":  time.Now(),
	}

	rows, err := database.Query[tables.Category](cs.db).Where("id", id).Update(ctx, updates)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	cs.invalidateLookup("categories")
	return database.Query[tables.Category](cs.db).Where("id", id).First(ctx)
}

func (cs *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	rows, err := database.Query[tables.Category](cs.db).Where("id", id).Delete(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	cs.invalidateLookup("categories")
	return nil
}

// ============================================================================
// Brands
// ============================================================================

func (cs *CatalogService) ListBrands(ctx context.Context) ([]tables.Brand, error) {
	return listLookup(cs, ctx, "brands", func(q *database.QueryBuilder[tables.Brand]) *database.QueryBuilder[tables.Brand] {
		return q.OrderBy("name", database.ASC)
	})
}

func (cs *CatalogService) CreateBrand(ctx context.Context, req *structs.BrandRequest) (*tables.Brand, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	brand := &tables.Brand{
		Name:     req.Name,
		LogoURL:  req.LogoURL,
		IsActive: isActive,
	}

	brand, err := database.Query[tables.Brand](cs.db).Insert(ctx, brand)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	cs.invalidateLookup("brands")
	return brand, nil
}

func (cs *CatalogService) UpdateBrand(ctx context.Context, id uuid.UUID, req *structs.BrandRequest) (*tables.Brand, error) {
	updates := map[string]any{
		"name":       req.Name,
		"logo_url":   req.LogoURL,
		"updated_at": time.Now(),
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	rows, err := database.Query[tables.Brand](cs.db).Where("id", id).Update(ctx, updates)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	cs.invalidateLookup("brands")
	return database.Query[tables.Brand](cs.db).Where("id", id).First(ctx)
}

func (cs *CatalogService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	rows, err := database.Query[tables.Brand](cs.db).Where("id", id).Delete(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	cs.invalidateLookup("brands")
	return nil
}

// ============================================================================
// Sizes, Colors and Garment Types
// ============================================================================

func sortOrderFirst[T any](q *database.QueryBuilder[T]) *database.QueryBuilder[T] {
	return q.OrderBy("sort_order", database.ASC).OrderBy("name", database.ASC)
}

func (cs *CatalogService) ListSizes(ctx context.Context) ([]tables.Size, error) {
	return listLookup(cs, ctx, "sizes", sortOrderFirst[tables.Size])
}

func (cs *CatalogService) CreateSize(ctx context.Context, req *structs.LookupRequest) (*tables.Size, error) {
	size := &tables.Size{Name: req.Name, SortOrder: req.SortOrder}

	size, err := database.Query[tables.Size](cs.db).Insert(ctx, size)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	cs.invalidateLookup("sizes")
	return size, nil
}

func (cs *CatalogService) DeleteSize(ctx context.Context, id uuid.UUID) error {
	rows, err := database.Query[tables.Size](cs.db).Where("id", id).Delete(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	cs.invalidateLookup("sizes")
	return nil
}

func (cs *CatalogService) ListColors(ctx context.Context) ([]tables.Color, error) {
	return listLookup(cs, ctx, "colors", sortOrderFirst[tables.Color])
}

func (cs *CatalogService) CreateColor(ctx context.Context, req *structs.LookupRequest) (*tables.Color, error) {
	color := &tables.Color{Name: req.Name, SortOrder: req.SortOrder}

	color, err := database.Query[tables.Color](cs.db).Insert(ctx, color)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	cs.invalidateLookup("colors")
	return color, nil
}

func (cs *CatalogService) DeleteColor(ctx context.Context, id uuid.UUID) error {
	rows, err := database.Query[tables.Color](cs.db).Where("id", id).Delete(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	cs.invalidateLookup("colors")
	return nil
}

func (cs *CatalogService) ListGarmentTypes(ctx context.Context) ([]tables.GarmentType, error) {
	return listLookup(cs, ctx, "garment_types", sortOrderFirst[tables.GarmentType])
}

func (cs *CatalogService) CreateGarmentType(ctx context.Context, req *structs.LookupRequest) (*tables.GarmentType, error) {
	garmentType := &tables.GarmentType{Name: req.Name, SortOrder: req.SortOrder}

	garmentType, err := database.Query[tables.GarmentType](cs.db).Insert(ctx, garmentType)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	cs.invalidateLookup("garment_types")
	return garmentType, nil
}

func (cs *CatalogService) DeleteGarmentType(ctx context.Context, id uuid.UUID) error {
	rows, err := database.Query[tables.GarmentType](cs.db).Where("id", id).Delete(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	cs.invalidateLookup("garment_types")
	return nil
}
