package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/application/catalog"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/interfaces/http/middleware"
)

// TariffHandler handles tariff tier management endpoints
type TariffHandler struct {
	BaseHandler
	tariffService *catalog.TariffService
}

// NewTariffHandler creates a new tariff handler
func NewTariffHandler(tariffService *catalog.TariffService) *TariffHandler {
	return &TariffHandler{tariffService: tariffService}
}

// List returns all tariff tiers ordered by capacity
// GET /api/admin/tariffs
func (h *TariffHandler) List(c *gin.Context) {
	tariffs, err := h.tariffService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tariffs)
}

// Get returns a single tariff tier
// GET /api/admin/tariffs/:id
func (h *TariffHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	tariff, err := h.tariffService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tariff)
}

// Create adds a tariff tier
// POST /api/admin/tariffs
func (h *TariffHandler) Create(c *gin.Context) {
	var req catalog.CreateTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tariff, err := h.tariffService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tariff)
}

// Update changes a tariff tier's capacity or rate
// PUT /api/admin/tariffs/:id
func (h *TariffHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req catalog.UpdateTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tariff, err := h.tariffService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tariff)
}

// Delete removes a tariff tier that no customer is assigned to
// DELETE /api/admin/tariffs/:id
func (h *TariffHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.tariffService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
