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
)

// InventoryService tracks per-variant stock and the reservations held by
// open orders. Reservations are taken and released with conditional updates
// so concurrent checkouts can never oversell a variant.
type InventoryService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewInventoryService(logger *gecho.Logger, db *database.DB) *InventoryService {
	return &InventoryService{
		logger: logger,
		db:     db,
	}
}

// InventoryListOptions contains filtering options for inventory queries
type InventoryListOptions struct {
	Page      int        `json:"page"`
	PageSize  int        `json:"page_size"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	LowStock  bool       `json:"low_stock"` // only variants at or below the low stock threshold
}

// ListInventory returns inventory rows with their product preloaded
func (is *InventoryService) ListInventory(ctx context.Context, opts *InventoryListOptions) (*database.PaginationResult[tables.Inventory], error) {
	if opts == nil {
		opts = &InventoryListOptions{}
	}

	query := database.Query[tables.Inventory](is.db).
		Relation("Product").
		OrderBy("product_id", database.ASC).
		OrderBy("size", database.ASC).
		OrderBy("color", database.ASC)

	if opts.ProductID != nil {
		query = query.Where("product_id", *opts.ProductID)
	}
	if opts.LowStock {
		query = query.WhereRaw("quantity - reserved_quantity < ?", tables.LowStockThreshold)
	}

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		is.logger.Error("Failed to list inventory", gecho.Field("error", err))
		return nil, lib.MapDBError(err)
	}

	return result, nil
}

// GetVariant returns the inventory row for a product variant, nil when absent
func (is *InventoryService) GetVariant(ctx context.Context, productID uuid.UUID, size, color string) (*tables.Inventory, error) {
	row, err := database.Query[tables.Inventory](is.db).
		Where("product_id", productID).
		Where("size", size).
		Where("color", color).
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return row, nil
}

// VariantStock is the storefront view of a single variant's availability
type VariantStock struct {
	Size      string             `json:"size"`
	Color     string             `json:"color"`
	Available int                `json:"available"`
	Status    tables.StockStatus `json:"status"`
}

// GetProductStock returns availability for every variant of a product.
// Reserved quantities are subtracted; exact counts stay internal.
func (is *InventoryService) GetProductStock(ctx context.Context, productID uuid.UUID) ([]VariantStock, error) {
	rows, err := database.Query[tables.Inventory](is.db).
		Where("product_id", productID).
		OrderBy("size", database.ASC).
		OrderBy("color", database.ASC).
		All(ctx)
	if err != nil {
		is.logger.Error("Failed to fetch product stock", gecho.Field("error", err), gecho.Field("product_id", productID))
		return nil, lib.MapDBError(err)
	}

	stock := make([]VariantStock, len(rows))
	for i, row := range rows {
		available := row.Available()
		stock[i] = VariantStock{
			Size:      row.Size,
			Color:     row.Color,
			Available: available,
			Status:    tables.StatusForAvailable(available),
		}
	}

	return stock, nil
}

// UpsertVariant creates an inventory row for a variant or updates its quantity
func (is *InventoryService) UpsertVariant(ctx context.Context, req *structs.InventoryRequest) (*tables.Inventory, error) {
	existing, err := is.GetVariant(ctx, req.ProductID, req.Size, req.Color)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		updates := map[string]any{
			"quantity":   req.Quantity,
			"updated_at": time.Now(),
		}
		if _, err := database.Query[tables.Inventory](is.db).Where("id", existing.ID).Update(ctx, updates); err != nil {
			return nil, lib.MapDBError(err)
		}
		existing.Quantity = req.Quantity
		return existing, nil
	}

	row := &tables.Inventory{
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	}

	row, err = database.Query[tables.Inventory](is.db).Insert(ctx, row)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	return row, nil
}

// SetQuantity replaces the absolute quantity of a variant row
func (is *InventoryService) SetQuantity(ctx context.Context, inventoryID uuid.UUID, quantity int) (*tables.Inventory, error) {
	updates := map[string]any{
		"quantity":   quantity,
		"updated_at": time.Now(),
	}

	rows, err := database.Query[tables.Inventory](is.db).Where("id", inventoryID).Update(ctx, updates)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	return database.Query[tables.Inventory](is.db).Where("id", inventoryID).First(ctx)
}

// AdjustQuantity applies a signed delta to a variant's quantity. The update
// is conditional so the quantity can never drop below the reserved amount.
func (is *InventoryService) AdjustQuantity(ctx context.Context, inventoryID uuid.UUID, delta int) (*tables.Inventory, error) {
	affected, err := database.RawExec(is.db, ctx,
		`UPDATE inventory
		 SET quantity = quantity + ?, updated_at = now()
		 WHERE id = ? AND quantity + ? >= reserved_quantity AND quantity + ? >= 0`,
		delta, inventoryID, delta, delta)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if affected == 0 {
		existing, err := database.Query[tables.Inventory](is.db).Where("id", inventoryID).First(ctx)
		if err != nil {
			return nil, lib.MapDBError(err)
		}
		if existing == nil {
			return nil, lib.ErrNotFound
		}
		return nil, lib.ErrInsufficientStock
	}

	return database.Query[tables.Inventory](is.db).Where("id", inventoryID).First(ctx)
}

// Delete removes a variant row
func (is *InventoryService) Delete(ctx context.Context, inventoryID uuid.UUID) error {
	rows, err := database.Query[tables.Inventory](is.db).Where("id", inventoryID).Delete(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// ============================================================================
// Reservations
// ============================================================================

// ReserveTx places a reservation on a variant inside a transaction. The
// conditional update only succeeds while enough unreserved stock remains,
// which makes concurrent checkouts race-safe without explicit locks.
func (is *InventoryService) ReserveTx(ctx context.Context, tx bun.Tx, productID uuid.UUID, size, color string, quantity int) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE inventory
		 SET reserved_quantity = reserved_quantity + ?, updated_at = now()
		 WHERE product_id = ? AND size = ? AND color = ?
		   AND quantity - reserved_quantity >= ?`,
		quantity, productID, size, color, quantity)
	if err != nil {
		return lib.MapDBError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: product %s size %s color %s", lib.ErrInsufficientStock, productID, size, color)
	}

	return nil
}

// ReleaseTx returns a reservation to the pool, e.g. when an order is cancelled
func (is *InventoryService) ReleaseTx(ctx context.Context, tx bun.Tx, productID uuid.UUID, size, color string, quantity int) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE inventory
		 SET reserved_quantity = GREATEST(reserved_quantity - ?, 0), updated_at = now()
		 WHERE product_id = ? AND size = ? AND color = ?`,
		quantity, productID, size, color)
	if err != nil {
		return lib.MapDBError(err)
	}
	return nil
}

// CommitTx consumes a reservation when an order ships: both the on-hand
// quantity and the reserved amount drop by the ordered quantity.
func (is *InventoryService) CommitTx(ctx context.Context, tx bun.Tx, productID uuid.UUID, size, color string, quantity int) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE inventory
		 SET quantity = GREATEST(quantity - ?, 0),
		     reserved_quantity = GREATEST(reserved_quantity - ?, 0),
		     updated_at = now()
		 WHERE product_id = ? AND size = ? AND color = ?`,
		quantity, quantity, productID, size, color)
	if err != nil {
		return lib.MapDBError(err)
	}
	return nil
}
