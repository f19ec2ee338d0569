package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Finisterre/bastetmania/internal/dto"
	"github.com/Finisterre/bastetmania/internal/model"
	"github.com/Finisterre/bastetmania/internal/repository"
)

// TicketService manages the admission ticket configuration. Selling tickets
// lives in VentaService; this is the admin side only.
type TicketService interface {
	ObtenerActivo(ctx context.Context) (*dto.TicketResponse, error)
	Crear(ctx context.Context, req dto.CrearTicketRequest) (*dto.TicketResponse, error)
	Actualizar(ctx context.Context, req dto.ActualizarTicketRequest) (*dto.TicketResponse, error)
}

type ticketService struct {
	repo repository.TicketRepository
}

func NewTicketService(repo repository.TicketRepository) TicketService {
	return &ticketService{repo: repo}
}

func (s *ticketService) ObtenerActivo(ctx context.Context) (*dto.TicketResponse, error) {
	t, err := s.repo.FindActivo(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("no hay ticket activo configurado")
		}
		return nil, err
	}
	return ticketToResponse(t), nil
}

func (s *ticketService) Crear(ctx context.Context, req dto.CrearTicketRequest) (*dto.TicketResponse, error) {
	if req.Precio.IsNegative() {
		return nil, errors.New("el precio no puede ser negativo")
	}
	if _, err := s.repo.FindActivo(ctx); err == nil {
		return nil, errors.New("ya existe un ticket activo")
	}
	t := &model.Ticket{
		Precio:      req.Precio,
		Descripcion: req.Descripcion,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return ticketToResponse(t), nil
}

func (s *ticketService) Actualizar(ctx context.Context, req dto.ActualizarTicketRequest) (*dto.TicketResponse, error) {
	t, err := s.repo.FindActivo(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("no hay ticket activo configurado")
		}
		return nil, err
	}

	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, errors.New("el precio no puede ser negativo")
		}
		t.Precio = *req.Precio
	}
	if req.Descripcion != nil {
		t.Descripcion = req.Descripcion
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return ticketToResponse(t), nil
}

func ticketToResponse(t *model.Ticket) *dto.TicketResponse {
	return &dto.TicketResponse{
		ID:          t.ID.String(),
		Precio:      t.Precio,
		Descripcion: t.Descripcion,
		Activo:      t.Activo,
	}
}
