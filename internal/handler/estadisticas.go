package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Finisterre/bastetmania/internal/apierror"
	"github.com/Finisterre/bastetmania/internal/dto"
	"github.com/Finisterre/bastetmania/internal/service"
)

type EstadisticasHandler struct{ svc service.EstadisticasService }

func NewEstadisticasHandler(svc service.EstadisticasService) *EstadisticasHandler {
	return &EstadisticasHandler{svc: svc}
}

func (h *EstadisticasHandler) Hoy(c *gin.Context) {
	resp, err := h.svc.ResumenHoy(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular estadisticas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstadisticasHandler) Rango(c *gin.Context) {
	var filter dto.RangoFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ResumenRango(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstadisticasHandler) RangoPDF(c *gin.Context) {
	var filter dto.RangoFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	pdf, err := h.svc.ReporteRangoPDF(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	fileName := fmt.Sprintf("ventas_%s_%s.pdf", filter.Desde, filter.Hasta)
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
