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

// allowedOrderTransitions defines the order lifecycle. Cancellation is only
// possible before the order ships.
var allowedOrderTransitions = map[tables.OrderStatus][]tables.OrderStatus{
	tables.OrderStatusPending:    {tables.OrderStatusProcessing, tables.OrderStatusCancelled},
	tables.OrderStatusProcessing: {tables.OrderStatusShipped, tables.OrderStatusCancelled},
	tables.OrderStatusShipped:    {tables.OrderStatusDelivered},
	tables.OrderStatusDelivered:  {},
	tables.OrderStatusCancelled:  {},
}

// CanTransitionOrder reports whether an order may move between two statuses
func CanTransitionOrder(from, to tables.OrderStatus) bool {
	for _, allowed := range allowedOrderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type OrderService struct {
	logger           *gecho.Logger
	cfg              *structs.Config
	db               *database.DB
	inventoryService *InventoryService
	emailService     *EmailService
}

func NewOrderService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, inventoryService *InventoryService, emailService *EmailService) *OrderService {
	return &OrderService{
		logger:           logger,
		cfg:              cfg,
		db:               db,
		inventoryService: inventoryService,
		emailService:     emailService,
	}
}

// Checkout creates an order from a cart. Inside a single transaction it
// re-reads unit prices from the products table, reserves inventory for each
// variant and inserts the order with its item snapshots. Any failure rolls
// the whole order back, reservations included.
func (os *OrderService) Checkout(ctx context.Context, req *structs.CheckoutRequest, customerId *uuid.UUID) (*tables.Order, error) {
	startTime := time.Now()

	orderNumber, err := lib.GenerateOrderNumber()
	if err != nil {
		return nil, err
	}

	var order *tables.Order

	err = database.Transaction(os.db, ctx, func(tx bun.Tx) error {
		// Re-read current prices for every product in the cart
		productIDs := make([]uuid.UUID, 0, len(req.Items))
		seen := make(map[uuid.UUID]bool, len(req.Items))
		for _, item := range req.Items {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				productIDs = append(productIDs, item.ProductID)
			}
		}

		var products []tables.Product
		if err := tx.NewSelect().
			Model(&products).
			Where("id IN (?)", bun.In(productIDs)).
			Where("is_active = ?", true).
			Scan(ctx); err != nil {
			return lib.MapDBError(err)
		}

		productsByID := make(map[uuid.UUID]*tables.Product, len(products))
		for i := range products {
			productsByID[products[i].ID] = &products[i]
		}

		orderId := uuid.New()
		items := make([]tables.OrderItem, 0, len(req.Items))
		var subtotal uint64

		for _, item := range req.Items {
			product, ok := productsByID[item.ProductID]
			if !ok {
				return fmt.Errorf("%w: product %s", lib.ErrNotFound, item.ProductID)
			}

			if err := os.inventoryService.ReserveTx(ctx, tx, item.ProductID, item.Size, item.Color, item.Quantity); err != nil {
				return err
			}

			lineTotal := product.Price * uint64(item.Quantity)
			subtotal += lineTotal

			items = append(items, tables.OrderItem{
				Id:              uuid.New(),
				OrderId:         orderId,
				ProductId:       product.ID,
				ProductName:     product.Name,
				ProductSKU:      product.SKU,
				Size:            item.Size,
				Color:           item.Color,
				Quantity:        item.Quantity,
				UnitPriceCents:  product.Price,
				TotalPriceCents: lineTotal,
			})
		}

		order = &tables.Order{
			Id:              orderId,
			OrderNumber:     orderNumber,
			CustomerId:      customerId,
			Email:           req.Email,
			Status:          tables.OrderStatusPending,
			SubtotalCents:   subtotal,
			ShippingCents:   req.ShippingCents,
			TaxCents:        req.TaxCents,
			TotalCents:      subtotal + req.ShippingCents + req.TaxCents,
			ShippingAddress: req.Address,
			Notes:           req.Notes,
		}

		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return lib.MapDBError(err)
		}
		if _, err := tx.NewInsert().Model(&items).Exec(ctx); err != nil {
			return lib.MapDBError(err)
		}

		order.Items = items
		return nil
	})
	if err != nil {
		os.logger.Error("Checkout failed",
			gecho.Field("error", err),
			gecho.Field("order_number", orderNumber),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, err
	}

	os.logger.Info("Order created",
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("total_cents", order.TotalCents),
		gecho.Field("items", len(order.Items)),
		gecho.Field("duration", time.Since(startTime)),
	)

	// Confirmation email must not block the checkout response
	go func(o tables.Order) {
		if err := os.emailService.SendOrderConfirmationEmail(&o); err != nil {
			os.logger.Error("Failed to send order confirmation email",
				gecho.Field("error", err),
				gecho.Field("order_number", o.OrderNumber),
			)
		}
	}(*order)

	return order, nil
}

// OrderListOptions contains filtering and pagination options for order queries
type OrderListOptions struct {
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	Status     *tables.OrderStatus `json:"status,omitempty"`
	Email      string              `json:"email,omitempty"`
	CustomerId *uuid.UUID          `json:"customer_id,omitempty"`
}

// ListOrders returns orders with their items, newest first
func (os *OrderService) ListOrders(ctx context.Context, opts *OrderListOptions) (*database.PaginationResult[tables.Order], error) {
	if opts == nil {
		opts = &OrderListOptions{}
	}

	query := database.Query[tables.Order](os.db).
		Relation("Items").
		OrderBy("created_at", database.DESC)
	query = database.ExcludeSoftDeleted(query)

	if opts.Status != nil {
		query = query.Where("status", *opts.Status)
	}
	if opts.Email != "" {
		query = query.Where("email", opts.Email)
	}
	if opts.CustomerId != nil {
		query = query.Where("customer_id", *opts.CustomerId)
	}

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		os.logger.Error("Failed to list orders", gecho.Field("error", err))
		return nil, lib.MapDBError(err)
	}

	return result, nil
}

// GetOrderByID returns an order with its items
func (os *OrderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*tables.Order, error) {
	query := database.Query[tables.Order](os.db).
		Where("id", id).
		Relation("Items")
	query = database.ExcludeSoftDeleted(query)

	order, err := query.First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}

	return order, nil
}

// GetOrderByNumber returns an order by its human-readable number
func (os *OrderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*tables.Order, error) {
	query := database.Query[tables.Order](os.db).
		Where("order_number", orderNumber).
		Relation("Items")
	query = database.ExcludeSoftDeleted(query)

	order, err := query.First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}

	return order, nil
}

// UpdateOrderStatus moves an order through its lifecycle. Status changes
// carry inventory side effects: cancelling releases the reservations and
// shipping consumes them.
func (os *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, newStatus tables.OrderStatus) (*tables.Order, error) {
	order, err := os.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransitionOrder(order.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", lib.ErrInvalidTransition, order.Status, newStatus)
	}

	err = database.Transaction(os.db, ctx, func(tx bun.Tx) error {
		switch newStatus {
		case tables.OrderStatusCancelled:
			for _, item := range order.Items {
				if err := os.inventoryService.ReleaseTx(ctx, tx, item.ProductId, item.Size, item.Color, item.Quantity); err != nil {
					return err
				}
			}
		case tables.OrderStatusShipped:
			for _, item := range order.Items {
				if err := os.inventoryService.CommitTx(ctx, tx, item.ProductId, item.Size, item.Color, item.Quantity); err != nil {
					return err
				}
			}
		}

		// Guard against a concurrent transition on the same order
		res, err := tx.NewUpdate().
			Model((*tables.Order)(nil)).
			Set("status = ?", newStatus).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", id).
			Where("status = ?", order.Status).
			Exec(ctx)
		if err != nil {
			return lib.MapDBError(err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return lib.ErrInvalidTransition
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Status = newStatus

	os.logger.Info("Order status updated",
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("status", newStatus),
	)

	go func(o tables.Order) {
		if err := os.emailService.SendOrderStatusEmail(&o); err != nil {
			os.logger.Error("Failed to send order status email",
				gecho.Field("error", err),
				gecho.Field("order_number", o.OrderNumber),
			)
		}
	}(*order)

	return order, nil
}

// DeleteOrder soft-deletes an order. Pending and processing orders release
// their reservations first.
func (os *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := os.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}

	return database.Transaction(os.db, ctx, func(tx bun.Tx) error {
		if order.Status == tables.OrderStatusPending || order.Status == tables.OrderStatusProcessing {
			for _, item := range order.Items {
				if err := os.inventoryService.ReleaseTx(ctx, tx, item.ProductId, item.Size, item.Color, item.Quantity); err != nil {
					return err
				}
			}
		}

		_, err := tx.NewUpdate().
			Model((*tables.Order)(nil)).
			Set("deleted_at = ?", time.Now()).
			Where("id = ?", id).
			Where("deleted_at IS NULL").
			Exec(ctx)
		return lib.MapDBError(err)
	})
}
