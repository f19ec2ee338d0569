package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Finisterre/bastetmania/internal/apierror"
	"github.com/Finisterre/bastetmania/internal/dto"
	"github.com/Finisterre/bastetmania/internal/service"
)

type TicketsHandler struct {
	svc      service.TicketService
	ventaSvc service.VentaService
}

func NewTicketsHandler(svc service.TicketService, ventaSvc service.VentaService) *TicketsHandler {
	return &TicketsHandler{svc: svc, ventaSvc: ventaSvc}
}

func (h *TicketsHandler) ObtenerActivo(c *gin.Context) {
	resp, err := h.svc.ObtenerActivo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TicketsHandler) Crear(c *gin.Context) {
	var req dto.CrearTicketRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TicketsHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarTicketRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TicketsHandler) Vender(c *gin.Context) {
	var req dto.VenderTicketRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.ventaSvc.RegistrarVentaTicket(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
