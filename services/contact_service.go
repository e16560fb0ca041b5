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

type ContactService struct {
	logger       *gecho.Logger
	db           *database.DB
	emailService *EmailService
}

func NewContactService(logger *gecho.Logger, db *database.DB, emailService *EmailService) *ContactService {
	return &ContactService{
		logger:       logger,
		db:           db,
		emailService: emailService,
	}
}

// CreateMessage stores a contact form submission and forwards it to sales
func (cs *ContactService) CreateMessage(ctx context.Context, req *structs.ContactMessageRequest) (*tables.ContactMessage, error) {
	msg := &tables.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	msg, err := database.Query[tables.ContactMessage](cs.db).Insert(ctx, msg)
	if err != nil {
		cs.logger.Error("Failed to store contact message", gecho.Field("error", err))
		return nil, lib.MapDBError(err)
	}

	// Notification must not block the submission response
	go func(m tables.ContactMessage) {
		if err := cs.emailService.SendContactNotificationEmail(&m); err != nil {
			cs.logger.Error("Failed to send contact notification email",
				gecho.Field("error", err),
				gecho.Field("message_id", m.Id),
			)
		}
	}(*msg)

	return msg, nil
}

// ContactListOptions contains filtering options for contact message queries
type ContactListOptions struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	IsRead   *bool `json:"is_read,omitempty"`
}

// ListMessages returns contact messages, newest first
func (cs *ContactService) ListMessages(ctx context.Context, opts *ContactListOptions) (*database.PaginationResult[tables.ContactMessage], error) {
	if opts == nil {
		opts = &ContactListOptions{}
	}

	query := database.Query[tables.ContactMessage](cs.db).
		OrderBy("created_at", database.DESC)

	if opts.IsRead != nil {
		query = query.Where("is_read", *opts.IsRead)
	}

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		cs.logger.Error("Failed to list contact messages", gecho.Field("error", err))
		return nil, lib.MapDBError(err)
	}

	return result, nil
}

// MarkRead flags a message as read or unread
func (cs *ContactService) MarkRead(ctx context.Context, id uuid.UUID, isRead bool) (*tables.ContactMessage, error) {
	updates := map[string]any{
		"is_read":    isRead,
		"updated_at": time.Now(),
	}

	rows, err := database.Query[tables.ContactMessage](cs.db).Where("id", id).Update(ctx, updates)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	return database.Query[tables.ContactMessage](cs.db).Where("id", id).First(ctx)
}

// UnreadCount returns the number of unread messages for the admin badge
func (cs *ContactService) UnreadCount(ctx context.Context) (int, error) {
	count, err := database.Query[tables.ContactMessage](cs.db).
		Where("is_read", false).
		Count(ctx)
	if err != nil {
		return 0, lib.MapDBError(err)
	}
	return count, nil
}

// DeleteMessage removes a contact message
func (cs *ContactService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	rows, err := database.Query[tables.ContactMessage](cs.db).Where("id", id).Delete(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}
	return nil
}
