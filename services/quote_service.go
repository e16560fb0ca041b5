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

// VAT rate applied to quote subtotals
const quoteTaxRate = 0.16

// allowedQuoteTransitions defines the quote lifecycle. A quote can only be
// answered while it is out with the customer.
var allowedQuoteTransitions = map[tables.QuoteStatus][]tables.QuoteStatus{
	tables.QuoteStatusDraft:    {tables.QuoteStatusSent},
	tables.QuoteStatusSent:     {tables.QuoteStatusAccepted, tables.QuoteStatusRejected, tables.QuoteStatusExpired},
	tables.QuoteStatusAccepted: {},
	tables.QuoteStatusRejected: {},
	tables.QuoteStatusExpired:  {},
}

// CanTransitionQuote reports whether a quote may move between two statuses
func CanTransitionQuote(from, to tables.QuoteStatus) bool {
	for _, allowed := range allowedQuoteTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// QuoteTax computes the tax in cents for a subtotal, rounded to the nearest cent
func QuoteTax(subtotalCents uint64) uint64 {
	return uint64(float64(subtotalCents)*quoteTaxRate + 0.5)
}

// defaultQuoteValidityDays applies when no validity window is configured
const defaultQuoteValidityDays = 15

// quoteValidUntil computes the expiry date stamped on a quote when it is sent
func quoteValidUntil(from time.Time, days int) time.Time {
	if days <= 0 {
		days = defaultQuoteValidityDays
	}
	return from.AddDate(0, 0, days)
}

type QuoteService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	emailService *EmailService
}

func NewQuoteService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, emailService *EmailService) *QuoteService {
	return &QuoteService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		emailService: emailService,
	}
}

// CreateQuote builds a draft quote from the request. Unit prices are read
// from the products table and snapshotted into normalized quote lines.
func (qs *QuoteService) CreateQuote(ctx context.Context, req *structs.QuoteRequest, customerId *uuid.UUID) (*tables.Quote, error) {
	quoteNumber, err := lib.GenerateQuoteNumber()
	if err != nil {
		return nil, err
	}

	var quote *tables.Quote

	err = database.Transaction(qs.db, ctx, func(tx bun.Tx) error {
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

		quoteId := uuid.New()
		lines := make([]tables.QuoteLine, 0, len(req.Items))
		var subtotal uint64

		for _, item := range req.Items {
			product, ok := productsByID[item.ProductID]
			if !ok {
				return fmt.Errorf("%w: product %s", lib.ErrNotFound, item.ProductID)
			}

			lineTotal := product.Price * uint64(item.Quantity)
			subtotal += lineTotal

			lines = append(lines, tables.QuoteLine{
				Id:             uuid.New(),
				QuoteId:        quoteId,
				ProductId:      product.ID,
				ProductName:    product.Name,
				ProductSKU:     product.SKU,
				Size:           item.Size,
				Color:          item.Color,
				Quantity:       item.Quantity,
				UnitPriceCents: product.Price,
				LineTotalCents: lineTotal,
			})
		}

		tax := QuoteTax(subtotal)

		quote = &tables.Quote{
			Id:            quoteId,
			QuoteNumber:   quoteNumber,
			CustomerId:    customerId,
			CompanyName:   req.CompanyName,
			ContactName:   req.ContactName,
			ContactEmail:  req.ContactEmail,
			ContactPhone:  req.ContactPhone,
			Status:        tables.QuoteStatusDraft,
			SubtotalCents: subtotal,
			TaxCents:      tax,
			TotalCents:    subtotal + tax,
			Notes:         req.Notes,
		}

		if _, err := tx.NewInsert().Model(quote).Exec(ctx); err != nil {
			return lib.MapDBError(err)
		}
		if _, err := tx.NewInsert().Model(&lines).Exec(ctx); err != nil {
			return lib.MapDBError(err)
		}

		quote.Lines = lines
		return nil
	})
	if err != nil {
		qs.logger.Error("Failed to create quote",
			gecho.Field("error", err),
			gecho.Field("quote_number", quoteNumber),
		)
		return nil, err
	}

	qs.logger.Info("Quote created",
		gecho.Field("quote_number", quote.QuoteNumber),
		gecho.Field("total_cents", quote.TotalCents),
		gecho.Field("lines", len(quote.Lines)),
	)

	// Acknowledgement must not block the quote response, sales gets a copy
	go func(q tables.Quote) {
		if err := qs.emailService.SendQuoteRequestEmail(&q); err != nil {
			qs.logger.Error("Failed to send quote request email",
				gecho.Field("error", err),
				gecho.Field("quote_number", q.QuoteNumber),
			)
		}
	}(*quote)

	return quote, nil
}

// QuoteListOptions contains filtering and pagination options for quote queries
type QuoteListOptions struct {
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	Status     *tables.QuoteStatus `json:"status,omitempty"`
	Email      string              `json:"email,omitempty"`
	CustomerId *uuid.UUID          `json:"customer_id,omitempty"`
}

// ListQuotes returns quotes with their lines, newest first
func (qs *QuoteService) ListQuotes(ctx context.Context, opts *QuoteListOptions) (*database.PaginationResult[tables.Quote], error) {
	if opts == nil {
		opts = &QuoteListOptions{}
	}

	query := database.Query[tables.Quote](qs.db).
		Relation("Lines").
		OrderBy("created_at", database.DESC)
	query = database.ExcludeSoftDeleted(query)

	if opts.Status != nil {
		query = query.Where("status", *opts.Status)
	}
	if opts.Email != "" {
		query = query.Where("contact_email", opts.Email)
	}
	if opts.CustomerId != nil {
		query = query.Where("customer_id", *opts.CustomerId)
	}

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		qs.logger.Error("Failed to list quotes", gecho.Field("error", err))
		return nil, lib.MapDBError(err)
	}

	return result, nil
}

// GetQuoteByID returns a quote with its lines
func (qs *QuoteService) GetQuoteByID(ctx context.Context, id uuid.UUID) (*tables.Quote, error) {
	query := database.Query[tables.Quote](qs.db).
		Where("id", id).
		Relation("Lines")
	query = database.ExcludeSoftDeleted(query)

	quote, err := query.First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if quote == nil {
		return nil, lib.ErrNotFound
	}

	return quote, nil
}

// SendQuote moves a draft quote to sent, stamps its validity window and
// emails it to the contact
func (qs *QuoteService) SendQuote(ctx context.Context, id uuid.UUID) (*tables.Quote, error) {
	quote, err := qs.GetQuoteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransitionQuote(quote.Status, tables.QuoteStatusSent) {
		return nil, fmt.Errorf("%w: %s -> %s", lib.ErrInvalidTransition, quote.Status, tables.QuoteStatusSent)
	}

	validUntil := quoteValidUntil(time.Now(), qs.cfg.Quotes.ValidityDays)

	// Status and validity land in one guarded statement so a sent quote
	// always carries the window the expiry sweep filters on
	affected, err := database.RawExec(qs.db, ctx,
		`UPDATE quotes SET status = ?, valid_until = ?, updated_at = now() WHERE id = ? AND status = ?`,
		tables.QuoteStatusSent, validUntil, id, quote.Status)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if affected == 0 {
		return nil, lib.ErrInvalidTransition
	}

	quote.Status = tables.QuoteStatusSent
	quote.ValidUntil = &validUntil

	qs.logger.Info("Quote sent",
		gecho.Field("quote_number", quote.QuoteNumber),
		gecho.Field("valid_until", validUntil),
	)

	go func(q tables.Quote) {
		if err := qs.emailService.SendQuoteEmail(&q); err != nil {
			qs.logger.Error("Failed to send quote email",
				gecho.Field("error", err),
				gecho.Field("quote_number", q.QuoteNumber),
			)
		}
	}(*quote)

	return quote, nil
}

// UpdateQuoteStatus applies an explicit lifecycle transition
func (qs *QuoteService) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, newStatus tables.QuoteStatus) (*tables.Quote, error) {
	if newStatus == tables.QuoteStatusSent {
		return qs.SendQuote(ctx, id)
	}
	return qs.transition(ctx, id, newStatus)
}

func (qs *QuoteService) transition(ctx context.Context, id uuid.UUID, newStatus tables.QuoteStatus) (*tables.Quote, error) {
	quote, err := qs.GetQuoteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransitionQuote(quote.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", lib.ErrInvalidTransition, quote.Status, newStatus)
	}

	// Guard against a concurrent transition on the same quote
	affected, err := database.RawExec(qs.db, ctx,
		`UPDATE quotes SET status = ?, updated_at = now() WHERE id = ? AND status = ?`,
		newStatus, id, quote.Status)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if affected == 0 {
		return nil, lib.ErrInvalidTransition
	}

	quote.Status = newStatus

	qs.logger.Info("Quote status updated",
		gecho.Field("quote_number", quote.QuoteNumber),
		gecho.Field("status", newStatus),
	)

	return quote, nil
}

// DeleteQuote soft-deletes a quote
func (qs *QuoteService) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	rows, err := database.SoftDelete[tables.Quote](qs.db, ctx, id)
	if err != nil {
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// ExpireOverdueQuotes marks sent quotes whose validity window has passed
func (qs *QuoteService) ExpireOverdueQuotes(ctx context.Context) (int, error) {
	affected, err := database.RawExec(qs.db, ctx,
		`UPDATE quotes SET status = ?, updated_at = now()
		 WHERE status = ? AND valid_until IS NOT NULL AND valid_until < now() AND deleted_at IS NULL`,
		tables.QuoteStatusExpired, tables.QuoteStatusSent)
	if err != nil {
		return 0, lib.MapDBError(err)
	}

	if affected > 0 {
		qs.logger.Info("Expired overdue quotes", gecho.Field("count", affected))
	}

	return affected, nil
}

// StartSweeper runs the expiry sweep on an interval until the context is done
func (qs *QuoteService) StartSweeper(ctx context.Context) {
	interval := qs.cfg.Quotes.SweepInterval
	if interval <= 0 {
		interval = time.Hour
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := qs.ExpireOverdueQuotes(ctx); err != nil {
					qs.logger.Error("Quote expiry sweep failed", gecho.Field("error", err))
				}
			}
		}
	}()
}
