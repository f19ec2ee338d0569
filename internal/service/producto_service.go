package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Finisterre/bastetmania/internal/dto"
	"github.com/Finisterre/bastetmania/internal/model"
	"github.com/Finisterre/bastetmania/internal/repository"
	"github.com/Finisterre/bastetmania/internal/stats"
)

// ProductoService defines the business logic contract for the catalog.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo         repository.ProductoRepository
	estadisticas EstadisticasService
}

func NewProductoService(repo repository.ProductoRepository, estadisticas EstadisticasService) ProductoService {
	return &productoService{repo: repo, estadisticas: estadisticas}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if req.Precio.IsNegative() {
		return nil, errors.New("el precio no puede ser negativo")
	}
	p := &model.Producto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Categoria:   req.Categoria,
		Precio:      req.Precio,
		Stock:       req.Stock,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p, stats.TotalesProducto{}), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return productoToResponse(p, s.totalesHoy(ctx)[p.ID]), nil
}

// Listar returns the catalog annotated with today's per-item sale totals.
// Statistics failures degrade to zeroed annotations, never to a failed list.
func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totales := s.totalesHoy(ctx)
	items := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		items = append(items, *productoToResponse(&productos[i], totales[productos[i].ID]))
	}
	return &dto.ProductoListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Categoria != nil {
		p.Categoria = *req.Categoria
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, errors.New("el precio no puede ser negativo")
		}
		p.Precio = *req.Precio
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, errors.New("el stock no puede ser negativo")
		}
		p.Stock = *req.Stock
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p, s.totalesHoy(ctx)[p.ID]), nil
}

func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("producto no encontrado")
	}
	return s.repo.Delete(ctx, id)
}

func (s *productoService) totalesHoy(ctx context.Context) map[uuid.UUID]stats.TotalesProducto {
	if s.estadisticas == nil {
		return nil
	}
	totales, err := s.estadisticas.TotalesProductoHoy(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("no se pudieron calcular los totales por producto de hoy")
		return nil
	}
	return totales
}

func productoToResponse(p *model.Producto, t stats.TotalesProducto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:           p.ID.String(),
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Categoria:    p.Categoria,
		Precio:       p.Precio,
		Stock:        p.Stock,
		PagoEfectivo: t.Efectivo,
		PagoDigital:  t.Digital,
	}
}
