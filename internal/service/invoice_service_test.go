package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssautomart/vehicle-invoice-service/internal/billing"
	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
)

// fakeRepository is an in-memory InvoiceRepository for service tests.
type fakeRepository struct {
	invoices map[string]*domain.Invoice
	order    []string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{invoices: map[string]*domain.Invoice{}}
}

func (f *fakeRepository) CreateInvoice(_ context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	f.invoices[invoice.ID] = invoice
	f.order = append(f.order, invoice.ID)
	return invoice, nil
}

func (f *fakeRepository) GetInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, ok := f.invoices[invoiceID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, invoiceID)
	}
	return inv, nil
}

func (f *fakeRepository) ListInvoices(_ context.Context, _ domain.InvoiceFilter) (*domain.PaginatedInvoices, error) {
	out := &domain.PaginatedInvoices{Data: []domain.Invoice{}}
	for _, id := range f.order {
		out.Data = append(out.Data, *f.invoices[id])
	}
	out.Pagination = domain.Pagination{TotalItems: len(out.Data), TotalPages: 1, CurrentPage: 1, Limit: 10}
	return out, nil
}

func (f *fakeRepository) DeleteInvoice(_ context.Context, invoiceID string) error {
	if _, ok := f.invoices[invoiceID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, invoiceID)
	}
	delete(f.invoices, invoiceID)
	return nil
}

func (f *fakeRepository) GetDashboardSummary(_ context.Context) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{TotalInvoices: len(f.invoices)}
	for _, inv := range f.invoices {
		summary.TotalRevenue += inv.TotalAmount
	}
	if summary.TotalInvoices > 0 {
		summary.AverageInvoice = summary.TotalRevenue / float64(summary.TotalInvoices)
	}
	return summary, nil
}

func validDraft() *domain.InvoiceDraft {
	return &domain.InvoiceDraft{
		InvoiceNumber: "B202501926",
		InvoiceDate:   "2025-11-04",
		CustomerName:  "JANANI L K",
		VehicleNumber: "TN39DX6478",
		Parts: []domain.LineItem{
			{Code: "08M9858100", Description: "GREASE-CALIPER GUIDE ROD", Quantity: 1, Rate: 218.64},
		},
		Labor: []domain.LineItem{
			{Code: "A10AAACDVASEB", Description: "AC Disinfectant", Quantity: 1, Rate: 575.00},
		},
	}
}

func TestCreateInvoiceSuccess(t *testing.T) {
	repo := newFakeRepository()
	svc := NewInvoiceService(repo, billing.Calculator{})

	created, err := svc.CreateInvoice(context.Background(), validDraft())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "B202501926", created.InvoiceNumber)
	assert.Equal(t, "2025-11-04", created.InvoiceDate.Format("2006-01-02"))
	assert.Equal(t, StatusPaid, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	assert.InDelta(t, 218.64, created.PartSubTotal, 1e-9)
	assert.InDelta(t, 575.00, created.LaborSubTotal, 1e-9)
	assert.InDelta(t, 19.6776, created.CGSTOnPart, 1e-9)
	assert.InDelta(t, 936.4952, created.TotalAmount, 1e-9)
	assert.InDelta(t, 936.0, created.GrandTotalRounded, 1e-9)

	// Adjustments are fixed at zero.
	assert.Zero(t, created.CouponDiscount)
	assert.Zero(t, created.Discount)
	assert.Zero(t, created.AMCDiscount)
	assert.Zero(t, created.TCSTax)

	// The record must be retrievable under its generated id.
	stored, err := svc.GetInvoiceByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.InvoiceNumber, stored.InvoiceNumber)
}

func TestCreateInvoiceMissingRequiredFields(t *testing.T) {
	repo := newFakeRepository()
	svc := NewInvoiceService(repo, billing.Calculator{})

	draft := validDraft()
	draft.CustomerName = "   "
	draft.VehicleNumber = ""

	_, err := svc.CreateInvoice(context.Background(), draft)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "customerName", verr.Fields[0].Field)
	assert.Equal(t, "vehicleNumber", verr.Fields[1].Field)

	// Nothing was persisted.
	assert.Empty(t, repo.invoices)
}

func TestCreateInvoiceInvalidDate(t *testing.T) {
	svc := NewInvoiceService(newFakeRepository(), billing.Calculator{})

	draft := validDraft()
	draft.InvoiceDate = "04-11-2025"

	_, err := svc.CreateInvoice(context.Background(), draft)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "invoiceDate", verr.Fields[0].Field)
}

func TestCreateInvoiceNoLineItems(t *testing.T) {
	repo := newFakeRepository()
	svc := NewInvoiceService(repo, billing.Calculator{})

	draft := validDraft()
	// Placeholder rows only: no code, no description.
	draft.Parts = []domain.LineItem{{Quantity: 1, Rate: 100}}
	draft.Labor = []domain.LineItem{{}}

	_, err := svc.CreateInvoice(context.Background(), draft)
	assert.True(t, errors.Is(err, domain.ErrNoLineItems))
	assert.Empty(t, repo.invoices)
}

func TestCreateInvoiceRecomputesAmounts(t *testing.T) {
	svc := NewInvoiceService(newFakeRepository(), billing.Calculator{})

	draft := validDraft()
	// Client-sent amounts and tax rates must not influence the stored figures.
	draft.Parts = []domain.LineItem{
		{Code: "P1", Description: "Part", TaxPercent: 28, Quantity: 2, Rate: 100, Discount: 25, Amount: 9999},
	}
	draft.Labor = nil

	created, err := svc.CreateInvoice(context.Background(), draft)
	require.NoError(t, err)

	assert.InDelta(t, 175, created.Parts[0].Amount, 1e-9)
	assert.InDelta(t, 175, created.PartSubTotal, 1e-9)
	assert.InDelta(t, 15.75, created.CGSTOnPart, 1e-9)
	assert.InDelta(t, 15.75, created.SGSTOnPart, 1e-9)
}

func TestCreateInvoiceDefaultsLineTaxPercent(t *testing.T) {
	svc := NewInvoiceService(newFakeRepository(), billing.Calculator{})

	created, err := svc.CreateInvoice(context.Background(), validDraft())
	require.NoError(t, err)
	assert.Equal(t, float64(billing.DefaultTaxPercent), created.Parts[0].TaxPercent)
}

func TestDeleteInvoiceNotFound(t *testing.T) {
	svc := NewInvoiceService(newFakeRepository(), billing.Calculator{})

	err := svc.DeleteInvoice(context.Background(), "no-such-id")
	assert.True(t, errors.Is(err, domain.ErrInvoiceNotFound))
}

func TestRenderInvoiceHTML(t *testing.T) {
	repo := newFakeRepository()
	svc := NewInvoiceService(repo, billing.Calculator{})

	created, err := svc.CreateInvoice(context.Background(), validDraft())
	require.NoError(t, err)

	html, err := svc.RenderInvoiceHTML(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Contains(t, html, "Invoice Summary")
	assert.Contains(t, html, "B202501926")

	_, err = svc.RenderInvoiceHTML(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrInvoiceNotFound))
}

func TestSeedSampleInvoiceOnlyWhenEmpty(t *testing.T) {
	repo := newFakeRepository()

	seeded, err := SeedSampleInvoice(context.Background(), repo)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Len(t, repo.invoices, 1)

	seeded, err = SeedSampleInvoice(context.Background(), repo)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Len(t, repo.invoices, 1)
}
