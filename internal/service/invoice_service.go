package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ssautomart/vehicle-invoice-service/internal/billing"
	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
	"github.com/ssautomart/vehicle-invoice-service/internal/render"
	"github.com/ssautomart/vehicle-invoice-service/internal/repository"
)

// StatusPaid is the status stamped on every created invoice. There is no
// payment-state machine in this system.
const StatusPaid = "paid"

// InvoiceServiceError represents an error in the invoice service
type InvoiceServiceError struct {
	Op  string
	Err error
}

func (e *InvoiceServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap exposes the underlying error for errors.Is/errors.As checks.
func (e *InvoiceServiceError) Unwrap() error {
	return e.Err
}

// InvoiceService defines the interface for invoice-related business logic
type InvoiceService interface {
	// CreateInvoice validates a draft, computes totals and persists the result
	CreateInvoice(ctx context.Context, draft *domain.InvoiceDraft) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) (*domain.PaginatedInvoices, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// Rendering operations
	RenderInvoiceDocument(ctx context.Context, invoiceID string) (*render.Document, error)
	RenderInvoiceHTML(ctx context.Context, invoiceID string) (string, error)

	// Dashboard operations
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}

// InvoiceServiceImpl implements the InvoiceService interface
type InvoiceServiceImpl struct {
	repository repository.InvoiceRepository
	calculator billing.Calculator
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(repo repository.InvoiceRepository, calculator billing.Calculator) InvoiceService {
	return &InvoiceServiceImpl{
		repository: repo,
		calculator: calculator,
	}
}

// CreateInvoice builds an invoice record from the collected form data and
// persists it. Validation failures leave the repository untouched.
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, draft *domain.InvoiceDraft) (*domain.Invoice, error) {
	invoice, err := s.buildInvoice(draft)
	if err != nil {
		return nil, err
	}

	created, err := s.repository.CreateInvoice(ctx, invoice)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "create_invoice", Err: err}
	}

	return created, nil
}

// buildInvoice assembles a complete invoice entity from a draft: it filters
// placeholder rows, validates the mandatory header fields, recomputes every
// line amount from its authoritative inputs and aggregates the totals.
func (s *InvoiceServiceImpl) buildInvoice(draft *domain.InvoiceDraft) (*domain.Invoice, error) {
	var missing []domain.FieldError
	requireField := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, domain.FieldError{Field: field, Message: field + " is required"})
		}
	}
	requireField("invoiceNumber", draft.InvoiceNumber)
	requireField("invoiceDate", draft.InvoiceDate)
	requireField("customerName", draft.CustomerName)
	requireField("vehicleNumber", draft.VehicleNumber)
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	invoiceDate, err := time.Parse("2006-01-02", strings.TrimSpace(draft.InvoiceDate))
	if err != nil {
		return nil, domain.NewValidationError(domain.FieldError{
			Field:   "invoiceDate",
			Message: "invoiceDate must be in YYYY-MM-DD format",
		})
	}

	parts := s.prepareLineItems(draft.Parts)
	labor := s.prepareLineItems(draft.Labor)
	if len(parts) == 0 && len(labor) == 0 {
		return nil, domain.ErrNoLineItems
	}

	totals := billing.ComputeTotals(parts, labor)

	return &domain.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: strings.TrimSpace(draft.InvoiceNumber),
		InvoiceDate:   domain.DateOnly{Time: invoiceDate},

		CustomerName:    strings.TrimSpace(draft.CustomerName),
		CustomerAddress: strings.TrimSpace(draft.CustomerAddress),
		CustomerCity:    strings.TrimSpace(draft.CustomerCity),
		CustomerState:   strings.TrimSpace(draft.CustomerState),
		CustomerPinCode: strings.TrimSpace(draft.CustomerPinCode),
		CustomerContact: strings.TrimSpace(draft.CustomerContact),
		CustomerGSTIN:   strings.TrimSpace(draft.CustomerGSTIN),

		VehicleNumber:     strings.TrimSpace(draft.VehicleNumber),
		VehicleModel:      strings.TrimSpace(draft.VehicleModel),
		VehicleFuelType:   draft.VehicleFuelType,
		VehicleChassisNo:  strings.TrimSpace(draft.VehicleChassisNo),
		VehicleKilometers: draft.VehicleKilometers,

		RepairOrderNumber:    strings.TrimSpace(draft.RepairOrderNumber),
		RepairOrderDate:      draft.RepairOrderDate,
		RepairOrderType:      draft.RepairOrderType,
		PlaceOfSupply:        strings.TrimSpace(draft.PlaceOfSupply),
		ServiceAdvisor:       strings.TrimSpace(draft.ServiceAdvisor),
		ServiceAdvisorNumber: strings.TrimSpace(draft.ServiceAdvisorNumber),
		PartInvoiceNumber:    strings.TrimSpace(draft.PartInvoiceNumber),
		LaborInvoiceNumber:   strings.TrimSpace(draft.LaborInvoiceNumber),

		Parts: parts,
		Labor: labor,

		PartSubTotal:      totals.PartSubTotal,
		LaborSubTotal:     totals.LaborSubTotal,
		CGSTOnPart:        totals.CGSTOnPart,
		SGSTOnPart:        totals.SGSTOnPart,
		CGSTOnLabor:       totals.CGSTOnLabor,
		SGSTOnLabor:       totals.SGSTOnLabor,
		TotalAmount:       totals.TotalAmount,
		GrandTotalRounded: totals.GrandTotalRounded,

		Observations: strings.TrimSpace(draft.Observations),
		DeferredJobs: strings.TrimSpace(draft.DeferredJobs),

		CreatedAt: time.Now().UTC(),
		Status:    StatusPaid,
	}, nil
}

// prepareLineItems drops placeholder rows and recomputes each derived
// amount from quantity, rate and discount. The amount a client may have
// sent along is ignored; the stored figure always comes from the
// calculator so the live and submission-time computations agree.
func (s *InvoiceServiceImpl) prepareLineItems(items []domain.LineItem) []domain.LineItem {
	prepared := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		if item.IsPlaceholder() {
			continue
		}
		if item.TaxPercent == 0 {
			item.TaxPercent = billing.DefaultTaxPercent
		}
		item.Amount = s.calculator.ComputeAmount(item.Quantity, item.Rate, item.Discount)
		prepared = append(prepared, item)
	}
	return prepared
}

// GetInvoiceByID retrieves a stored invoice
func (s *InvoiceServiceImpl) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.repository.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "get_invoice", Err: err}
	}
	return invoice, nil
}

// ListInvoices retrieves invoices with optional search and pagination
func (s *InvoiceServiceImpl) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) (*domain.PaginatedInvoices, error) {
	result, err := s.repository.ListInvoices(ctx, filter)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "list_invoices", Err: err}
	}
	return result, nil
}

// DeleteInvoice removes a stored invoice
func (s *InvoiceServiceImpl) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if err := s.repository.DeleteInvoice(ctx, invoiceID); err != nil {
		return &InvoiceServiceError{Op: "delete_invoice", Err: err}
	}
	return nil
}

// RenderInvoiceDocument projects a stored invoice into its canonical
// display/print representation.
func (s *InvoiceServiceImpl) RenderInvoiceDocument(ctx context.Context, invoiceID string) (*render.Document, error) {
	invoice, err := s.repository.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "render_invoice", Err: err}
	}
	return render.BuildDocument(invoice), nil
}

// RenderInvoiceHTML renders a stored invoice as a printable HTML page.
func (s *InvoiceServiceImpl) RenderInvoiceHTML(ctx context.Context, invoiceID string) (string, error) {
	doc, err := s.RenderInvoiceDocument(ctx, invoiceID)
	if err != nil {
		return "", err
	}
	html, err := render.RenderHTML(doc)
	if err != nil {
		return "", &InvoiceServiceError{Op: "render_invoice_html", Err: err}
	}
	return html, nil
}

// GetDashboardSummary returns aggregate figures for the dashboard view
func (s *InvoiceServiceImpl) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	summary, err := s.repository.GetDashboardSummary(ctx)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "dashboard_summary", Err: err}
	}
	return summary, nil
}
