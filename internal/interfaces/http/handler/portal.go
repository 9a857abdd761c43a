package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appbilling "github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/application/billing"
	appcustomer "github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/application/customer"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/interfaces/http/middleware"
)

// PortalHandler serves the customer self-service portal. Every endpoint
// scopes its reads and writes to the authenticated customer.
type PortalHandler struct {
	BaseHandler
	dashboardService *appbilling.DashboardService
	usageService     *appbilling.UsageService
	billService      *appbilling.BillService
	paymentService   *appbilling.PaymentQueryService
	customerService  *appcustomer.CustomerService
}

// NewPortalHandler creates a new portal handler
func NewPortalHandler(
	dashboardService *appbilling.DashboardService,
	usageService *appbilling.UsageService,
	billService *appbilling.BillService,
	paymentService *appbilling.PaymentQueryService,
	customerService *appcustomer.CustomerService,
) *PortalHandler {
	return &PortalHandler{
		dashboardService: dashboardService,
		usageService:     usageService,
		billService:      billService,
		paymentService:   paymentService,
		customerService:  customerService,
	}
}

func (h *PortalHandler) callerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		h.Unauthorized(c, "authentication required")
		return uuid.Nil, false
	}
	return id, true
}

// Dashboard returns the customer's portal overview
// GET /api/portal/dashboard
func (h *PortalHandler) Dashboard(c *gin.Context) {
	customerID, ok := h.callerID(c)
	if !ok {
		return
	}

	overview, err := h.dashboardService.CustomerOverview(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, overview)
}

// Usages returns the customer's own usage history, newest first
// GET /api/portal/usages
func (h *PortalHandler) Usages(c *gin.Context) {
	customerID, ok := h.callerID(c)
	if !ok {
		return
	}

	records, err := h.usageService.ListForCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// Bills returns the customer's own bills, optionally filtered by status
// GET /api/portal/bills?status=unpaid|paid|all
func (h *PortalHandler) Bills(c *gin.Context) {
	customerID, ok := h.callerID(c)
	if !ok {
		return
	}

	bills, err := h.billService.ListForCustomer(c.Request.Context(), customerID, c.Query("status"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, bills)
}

// PayBill settles one of the customer's own bills
// POST /api/portal/bills/:id/pay
func (h *PortalHandler) PayBill(c *gin.Context) {
	customerID, ok := h.callerID(c)
	if !ok {
		return
	}
	billID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req appbilling.PayBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	payment, err := h.billService.PayOwn(c.Request.Context(), customerID, billID, req.MonthPaid)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payment)
}

// Payments returns the customer's payment history with its running total
// GET /api/portal/payments
func (h *PortalHandler) Payments(c *gin.Context) {
	customerID, ok := h.callerID(c)
	if !ok {
		return
	}

	history, err := h.paymentService.ListForCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, history)
}

// ChangePassword rotates the customer's own password
// PUT /api/portal/password
func (h *PortalHandler) ChangePassword(c *gin.Context) {
	customerID, ok := h.callerID(c)
	if !ok {
		return
	}

	var req appcustomer.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := h.customerService.ChangePassword(c.Request.Context(), customerID, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "password changed"})
}
