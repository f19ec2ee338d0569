package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Finisterre/bastetmania/internal/model"
)

// TicketRepository manages the singleton admission ticket configuration.
type TicketRepository interface {
	Create(ctx context.Context, t *model.Ticket) error
	// FindActivo returns the authoritative active ticket. With zero active
	// rows it returns gorm.ErrRecordNotFound; with more than one it logs a
	// warning and returns the most recently updated.
	FindActivo(ctx context.Context) (*model.Ticket, error)
	Update(ctx context.Context, t *model.Ticket) error
}

type ticketRepo struct{ db *gorm.DB }

func NewTicketRepository(db *gorm.DB) TicketRepository { return &ticketRepo{db: db} }

func (r *ticketRepo) Create(ctx context.Context, t *model.Ticket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ticketRepo) FindActivo(ctx context.Context) (*model.Ticket, error) {
	var tickets []model.Ticket
	err := r.db.WithContext(ctx).
		Where("activo = true").
		Order("updated_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	if len(tickets) > 1 {
		// Duplicate active rows are tolerated: the newest wins.
		log.Warn().Int("activos", len(tickets)).Msg("mas de un ticket activo, usando el mas reciente")
	}
	return &tickets[0], nil
}

func (r *ticketRepo) Update(ctx context.Context, t *model.Ticket) error {
	return r.db.WithContext(ctx).Save(t).Error
}
