package handler

import (
	"github.com/gin-gonic/gin"

	appbilling "github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/application/billing"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/interfaces/http/middleware"
)

// BillHandler handles the admin side of the bill ledger
type BillHandler struct {
	BaseHandler
	billService *appbilling.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *appbilling.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// List returns bills joined with customer and usage data plus status counts
// GET /api/admin/bills?status=unpaid|paid|all
func (h *BillHandler) List(c *gin.Context) {
	resp, err := h.billService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetStatus overrides a bill's status without touching its payments
// PUT /api/admin/bills/:id/status
func (h *BillHandler) SetStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req appbilling.SetBillStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := h.billService.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"status": req.Status})
}

// Pay settles a bill at the counter and records the payment
// POST /api/admin/bills/:id/pay
func (h *BillHandler) Pay(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req appbilling.PayBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	payment, err := h.billService.Pay(c.Request.Context(), id, req.MonthPaid)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payment)
}

// Delete removes a bill together with its payments
// DELETE /api/admin/bills/:id
func (h *BillHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.billService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
