package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
	"github.com/ssautomart/vehicle-invoice-service/internal/model"
	"github.com/ssautomart/vehicle-invoice-service/internal/service"
)

// DashboardHandler handles HTTP requests for dashboard figures
type DashboardHandler struct {
	service service.InvoiceService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc service.InvoiceService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// RegisterRoutes registers the handler's routes with the given router
func (h *DashboardHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/dashboard/summary", h.GetSummary)
	router.GET("/v1/dashboard/recent", h.GetRecentInvoices)
}

// GetSummary handles a request for aggregate invoice figures
// @Summary Get dashboard summary
// @Description Aggregate figures: total invoices, invoices this month, total revenue and average invoice value
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardSummary "Dashboard summary"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.GetDashboardSummary(c.Request.Context())
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}
	respondOK(c, summary)
}

// GetRecentInvoices handles a request for the most recently created invoices
// @Summary Get recent invoices
// @Description The five most recently created invoices, newest first
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.InvoiceListResponse "Recent invoices"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/dashboard/recent [get]
func (h *DashboardHandler) GetRecentInvoices(c *gin.Context) {
	result, err := h.service.ListInvoices(c.Request.Context(), domain.InvoiceFilter{
		Sort:  "recent",
		Page:  1,
		Limit: 5,
	})
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}
	respondOK(c, model.NewInvoiceListResponse(result))
}
