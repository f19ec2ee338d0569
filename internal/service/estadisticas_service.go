package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Finisterre/bastetmania/internal/clock"
	"github.com/Finisterre/bastetmania/internal/dto"
	"github.com/Finisterre/bastetmania/internal/infra"
	"github.com/Finisterre/bastetmania/internal/repository"
	"github.com/Finisterre/bastetmania/internal/stats"
)

const (
	// Today's aggregates are cached briefly; every recorded sale invalidates.
	estadisticasCacheTTL = time.Minute
	estadisticasCacheKey = "estadisticas:hoy:" // + YYYY-MM-DD
)

// EstadisticasService computes the revenue aggregates for the POS and history
// views. All aggregation is delegated to the pure stats package; this layer
// only fetches the window and manages the cache.
type EstadisticasService interface {
	ResumenHoy(ctx context.Context) (*dto.ResumenResponse, error)
	ResumenRango(ctx context.Context, filter dto.RangoFilter) (*dto.ResumenResponse, error)
	TotalesProductoHoy(ctx context.Context) (map[uuid.UUID]stats.TotalesProducto, error)
	ReporteRangoPDF(ctx context.Context, filter dto.RangoFilter) ([]byte, error)
	// InvalidarHoy drops the cached today view. Best-effort: cache problems
	// never fail the caller's operation.
	InvalidarHoy(ctx context.Context)
}

type estadisticasService struct {
	ventaRepo repository.VentaRepository
	rdb       *redis.Client
	cb        *infra.CircuitBreaker
	clk       clock.Clock
}

func NewEstadisticasService(ventaRepo repository.VentaRepository, rdb *redis.Client, clk clock.Clock) EstadisticasService {
	return &estadisticasService{
		ventaRepo: ventaRepo,
		rdb:       rdb,
		cb:        infra.NewCircuitBreaker(infra.DefaultCBConfig()),
		clk:       clk,
	}
}

func (s *estadisticasService) ResumenHoy(ctx context.Context) (*dto.ResumenResponse, error) {
	hoy := s.clk.Now()
	key := estadisticasCacheKey + hoy.Format("2006-01-02")

	if s.rdb != nil {
		var raw []byte
		err := s.cb.Execute(func() error {
			var err error
			raw, err = s.rdb.Get(ctx, key).Bytes()
			if err == redis.Nil {
				raw = nil
				return nil
			}
			return err
		})
		if err == nil && raw != nil {
			var cached dto.ResumenResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	desde, hasta := clock.DayWindow(hoy)
	ventas, err := s.ventaRepo.ListRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	resp := resumenToResponse(stats.Resumir(ventas), desde, hasta)

	if s.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			err := s.cb.Execute(func() error {
				return s.rdb.Set(ctx, key, raw, estadisticasCacheTTL).Err()
			})
			if err != nil {
				log.Warn().Err(err).Msg("no se pudo cachear estadisticas de hoy")
			}
		}
	}
	return resp, nil
}

func (s *estadisticasService) ResumenRango(ctx context.Context, filter dto.RangoFilter) (*dto.ResumenResponse, error) {
	desde, hasta, err := rangoDias(filter)
	if err != nil {
		return nil, err
	}
	ventas, err := s.ventaRepo.ListRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	return resumenToResponse(stats.Resumir(ventas), desde, hasta), nil
}

func (s *estadisticasService) TotalesProductoHoy(ctx context.Context) (map[uuid.UUID]stats.TotalesProducto, error) {
	desde, hasta := clock.DayWindow(s.clk.Now())
	ventas, err := s.ventaRepo.ListRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	return stats.PorProducto(ventas), nil
}

func (s *estadisticasService) ReporteRangoPDF(ctx context.Context, filter dto.RangoFilter) ([]byte, error) {
	desde, hasta, err := rangoDias(filter)
	if err != nil {
		return nil, err
	}
	ventas, err := s.ventaRepo.ListRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	return infra.GenerarReporteVentasPDF(ventas, stats.Resumir(ventas), desde, hasta)
}

func (s *estadisticasService) InvalidarHoy(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	key := estadisticasCacheKey + s.clk.Now().Format("2006-01-02")
	err := s.cb.Execute(func() error {
		return s.rdb.Del(ctx, key).Err()
	})
	if err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar el cache de estadisticas")
	}
}

// rangoDias expands two calendar days into inclusive day-window bounds.
func rangoDias(filter dto.RangoFilter) (time.Time, time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", filter.Desde, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("desde inválido: %w", err)
	}
	h, err := time.ParseInLocation("2006-01-02", filter.Hasta, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("hasta inválido: %w", err)
	}
	desde, _ := clock.DayWindow(d)
	_, hasta := clock.DayWindow(h)
	if hasta.Before(desde) {
		return time.Time{}, time.Time{}, fmt.Errorf("rango inválido: hasta anterior a desde")
	}
	return desde, hasta, nil
}

func resumenToResponse(r stats.Resumen, desde, hasta time.Time) *dto.ResumenResponse {
	return &dto.ResumenResponse{
		Desde:             desde.Format("2006-01-02"),
		Hasta:             hasta.Format("2006-01-02"),
		TotalEfectivo:     r.TotalEfectivo,
		TotalDigital:      r.TotalDigital,
		TotalGeneral:      r.TotalGeneral,
		CantidadVentas:    r.CantidadVentas,
		CantidadProductos: r.CantidadProductos,
		CantidadTickets:   r.CantidadTickets,
		CantidadBonanza:   r.CantidadBonanza,
	}
}
