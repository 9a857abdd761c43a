package handler

import (
	"github.com/gin-gonic/gin"

	appbilling "github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/application/billing"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/interfaces/http/middleware"
)

// UsageHandler handles meter usage recording endpoints
type UsageHandler struct {
	BaseHandler
	usageService *appbilling.UsageService
}

// NewUsageHandler creates a new usage handler
func NewUsageHandler(usageService *appbilling.UsageService) *UsageHandler {
	return &UsageHandler{usageService: usageService}
}

// List returns usage records joined with customer data, newest period first
// GET /api/admin/usages
func (h *UsageHandler) List(c *gin.Context) {
	var filter appbilling.UsageListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	records, err := h.usageService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// Get returns a single usage record
// GET /api/admin/usages/:id
func (h *UsageHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	record, err := h.usageService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Record captures a month's meter readings and derives the bill
// POST /api/admin/usages
func (h *UsageHandler) Record(c *gin.Context) {
	var req appbilling.RecordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	record, err := h.usageService.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// Update corrects a usage record's readings and resyncs its bill
// PUT /api/admin/usages/:id
func (h *UsageHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req appbilling.UpdateUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	record, err := h.usageService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete removes a usage record with its bill and payments
// DELETE /api/admin/usages/:id
func (h *UsageHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.usageService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
