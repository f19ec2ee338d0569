package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Finisterre/bastetmania/internal/dto"
	"github.com/Finisterre/bastetmania/internal/model"
)

// VentaRepository writes and reads immutable sale rows. There is deliberately
// no Update or Delete: a venta, once created, is never mutated.
type VentaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	// ListRango returns every venta with fecha_venta inside [desde, hasta],
	// producto preloaded, newest first. Used by the aggregator.
	ListRango(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error)
	// ListRangoPaginado is the history-browser variant of ListRango.
	ListRangoPaginado(ctx context.Context, desde, hasta time.Time, filter dto.VentaFilter) ([]model.Venta, int64, error)
	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) ListRango(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Where("fecha_venta BETWEEN ? AND ?", desde, hasta).
		Preload("Producto").
		Order("fecha_venta DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListRangoPaginado(ctx context.Context, desde, hasta time.Time, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("fecha_venta BETWEEN ? AND ?", desde, hasta)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Producto").
		Order("fecha_venta DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ventas).Error
	return ventas, total, err
}
