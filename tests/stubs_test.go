package tests

// In-memory repository stubs shared by the unit suite. All implement the
// repository interfaces with nil-DB transactions, so services run their full
// logic without Postgres.

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Finisterre/bastetmania/internal/dto"
	"github.com/Finisterre/bastetmania/internal/model"
	"github.com/Finisterre/bastetmania/internal/repository"
)

// ── Producto stub ─────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var result []model.Producto
	for _, p := range r.productos {
		if filter.Categoria != "" && p.Categoria != filter.Categoria {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nombre < result[j].Nombre })
	return result, int64(len(result)), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if _, ok := r.productos[p.ID]; !ok {
		return errors.New("record not found")
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.productos[id]; !ok {
		return errors.New("record not found")
	}
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, id uuid.UUID, cantidad int) error {
	p, ok := r.productos[id]
	if !ok || p.Stock < cantidad {
		return repository.ErrStockInsuficiente
	}
	p.Stock -= cantidad
	return nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Venta stub ────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas []model.Venta
	// productos, when set, emulates the real repo's Preload("Producto").
	productos *stubProductoRepo
}

func newStubVentaRepo() *stubVentaRepo { return &stubVentaRepo{} }

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas = append(r.ventas, *v)
	return nil
}

func (r *stubVentaRepo) ListRango(_ context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.FechaVenta.Before(desde) || v.FechaVenta.After(hasta) {
			continue
		}
		if r.productos != nil && v.ProductoID != nil {
			if p, ok := r.productos.productos[*v.ProductoID]; ok {
				v.Producto = p
			}
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *stubVentaRepo) ListRangoPaginado(ctx context.Context, desde, hasta time.Time, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	out, err := r.ListRango(ctx, desde, hasta)
	if err != nil {
		return nil, 0, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaVenta.After(out[j].FechaVenta) })
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── Ticket stub ───────────────────────────────────────────────────────────────

type stubTicketRepo struct {
	tickets map[uuid.UUID]*model.Ticket
}

func newStubTicketRepo() *stubTicketRepo {
	return &stubTicketRepo{tickets: make(map[uuid.UUID]*model.Ticket)}
}

func (r *stubTicketRepo) Create(_ context.Context, t *model.Ticket) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = time.Now()
	}
	r.tickets[t.ID] = t
	return nil
}

// FindActivo mirrors the real repo's resolution: newest updated_at wins.
func (r *stubTicketRepo) FindActivo(_ context.Context) (*model.Ticket, error) {
	var activos []*model.Ticket
	for _, t := range r.tickets {
		if t.Activo {
			activos = append(activos, t)
		}
	}
	if len(activos) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	sort.Slice(activos, func(i, j int) bool { return activos[i].UpdatedAt.After(activos[j].UpdatedAt) })
	return activos[0], nil
}

func (r *stubTicketRepo) Update(_ context.Context, t *model.Ticket) error {
	if _, ok := r.tickets[t.ID]; !ok {
		return errors.New("record not found")
	}
	t.UpdatedAt = time.Now()
	r.tickets[t.ID] = t
	return nil
}

var _ repository.TicketRepository = (*stubTicketRepo)(nil)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedProducto(repo *stubProductoRepo, nombre string, precio float64, stock int) *model.Producto {
	p := &model.Producto{
		ID:        uuid.New(),
		Nombre:    nombre,
		Categoria: model.CategoriaBebidas,
		Precio:    decimal.NewFromFloat(precio),
		Stock:     stock,
	}
	repo.productos[p.ID] = p
	return p
}

func seedTicket(repo *stubTicketRepo, precio float64, activo bool, updatedAt time.Time) *model.Ticket {
	t := &model.Ticket{
		ID:        uuid.New(),
		Precio:    decimal.NewFromFloat(precio),
		Activo:    activo,
		UpdatedAt: updatedAt,
	}
	repo.tickets[t.ID] = t
	return t
}
