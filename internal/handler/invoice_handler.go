package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
	"github.com/ssautomart/vehicle-invoice-service/internal/model"
	"github.com/ssautomart/vehicle-invoice-service/internal/service"
)

// InvoiceHandler handles HTTP requests for invoice authoring and retrieval
type InvoiceHandler struct {
	service service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(svc service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: svc}
}

// RegisterRoutes registers the handler's routes with the given router
func (h *InvoiceHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/invoices", h.CreateInvoice)
	router.GET("/v1/invoices", h.ListInvoices)
	router.GET("/v1/invoices/:id", h.GetInvoice)
	router.GET("/v1/invoices/:id/document", h.GetInvoiceDocument)
	router.GET("/v1/invoices/:id/html", h.GetInvoiceHTML)
	router.DELETE("/v1/invoices/:id", h.DeleteInvoice)
}

// CreateInvoice handles a request to create an invoice from form data
// @Summary Create an invoice
// @Description Validate submitted invoice data, compute line amounts and GST totals, and persist the record
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body model.CreateInvoiceRequest true "Invoice form data"
// @Success 201 {object} domain.Invoice "Created invoice with computed totals"
// @Failure 400 {object} model.ErrorResponse "Missing required fields or no line items"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req model.CreateInvoiceRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	invoice, err := h.service.CreateInvoice(c.Request.Context(), req.ToDraft())
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	respondCreated(c, invoice)
}

func (h *InvoiceHandler) respondCreateError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		details := make([]model.ErrorDetail, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, model.ErrorDetail{Field: f.Field, Message: f.Message})
		}
		respondBadRequest(c, verr.Error(), details...)
		return
	}
	if errors.Is(err, domain.ErrNoLineItems) {
		respondBadRequest(c, "at least one part or labor item is required")
		return
	}
	respondInternalServerError(c, ErrInternalServer)
}

// ListInvoices handles a request to list invoices
// @Summary List invoices
// @Description List invoices sorted by invoice date, with optional text search and pagination
// @Tags invoices
// @Produce json
// @Param q query string false "Search text matched against invoice number, customer name and vehicle number"
// @Param sort query string false "Sort order: date (default) or recent"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} model.InvoiceListResponse "Paginated invoice listing"
// @Failure 400 {object} model.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	page, err := getQueryInt(c, "page", 1)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	limit, err := getQueryInt(c, "limit", 10)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if err := validatePagination(page, limit); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	filter := domain.InvoiceFilter{
		Query: getQueryString(c, "q"),
		Sort:  getQueryString(c, "sort"),
		Page:  page,
		Limit: limit,
	}

	result, err := h.service.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, model.NewInvoiceListResponse(result))
}

// GetInvoice handles a request to retrieve a single invoice
// @Summary Get an invoice
// @Description Retrieve a stored invoice by its id
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} domain.Invoice "Stored invoice"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	invoice, err := h.service.GetInvoiceByID(c.Request.Context(), id)
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	respondOK(c, invoice)
}

// GetInvoiceDocument handles a request for the structured print document
// @Summary Get an invoice print document
// @Description Retrieve the structured tax-invoice document for display or printing
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} render.Document "Structured print document"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices/{id}/document [get]
func (h *InvoiceHandler) GetInvoiceDocument(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	doc, err := h.service.RenderInvoiceDocument(c.Request.Context(), id)
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	respondOK(c, doc)
}

// GetInvoiceHTML handles a request for the printable HTML rendition
// @Summary Get a printable invoice page
// @Description Render the invoice as a self-contained printable HTML page
// @Tags invoices
// @Produce html
// @Param id path string true "Invoice ID"
// @Success 200 {string} string "Printable HTML page"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices/{id}/html [get]
func (h *InvoiceHandler) GetInvoiceHTML(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	html, err := h.service.RenderInvoiceHTML(c.Request.Context(), id)
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// DeleteInvoice handles a request to delete an invoice
// @Summary Delete an invoice
// @Description Remove a stored invoice by its id
// @Tags invoices
// @Param id path string true "Invoice ID"
// @Success 204 "Invoice deleted"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.service.DeleteInvoice(c.Request.Context(), id); err != nil {
		h.respondLookupError(c, err)
		return
	}

	respondNoContent(c)
}

func (h *InvoiceHandler) respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvoiceNotFound) {
		respondNotFound(c, ErrResourceNotFound)
		return
	}
	respondInternalServerError(c, ErrInternalServer)
}
