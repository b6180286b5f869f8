package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
)

func sampleInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:            "3d5c9a1e-0b6f-4a6e-9be2-1f5a0c9d7e42",
		InvoiceNumber: "B202501926",
		InvoiceDate:   domain.DateOnly{Time: time.Date(2025, time.November, 4, 0, 0, 0, 0, time.UTC)},
		CustomerName:  "JANANI L K",
		CustomerCity:  "Palladam",
		VehicleNumber: "TN39DX6478",
		Parts: []domain.LineItem{
			{Code: "08M9858100", Description: "25 g-GREASE-CALIPER GUIDE ROD", HSN: "34039900", TaxPercent: 18, Quantity: 1, Rate: 218.64, Amount: 218.64},
		},
		Labor: []domain.LineItem{
			{Code: "A10AAACDVASEB", Description: "AC Disinfectant", HSN: "998729", TaxPercent: 18, Quantity: 1, Rate: 575, Amount: 575},
		},
		PartSubTotal:      218.64,
		LaborSubTotal:     575,
		CGSTOnPart:        19.6776,
		SGSTOnPart:        19.6776,
		CGSTOnLabor:       51.75,
		SGSTOnLabor:       51.75,
		TotalAmount:       936.4952,
		GrandTotalRounded: 936,
		CreatedAt:         time.Date(2025, time.November, 4, 10, 31, 27, 0, time.UTC),
		Status:            "paid",
	}
}

func TestBuildDocumentDealerBlockConstant(t *testing.T) {
	doc := BuildDocument(sampleInvoice())

	require.NotEmpty(t, doc.Dealer)
	assert.Equal(t, Field{Label: "Dealer Name", Value: "SS AUTOMART PRIVATE LIMITED"}, doc.Dealer[0])
	assert.Equal(t, "For SS AUTOMART PRIVATE LIMITED", doc.SignatoryFor)
}

func TestBuildDocumentOptionalFieldFallbacks(t *testing.T) {
	inv := sampleInvoice()
	inv.CustomerAddress = ""
	inv.VehicleModel = ""
	inv.ServiceAdvisor = ""

	doc := BuildDocument(inv)

	byLabel := func(fields []Field, label string) string {
		for _, f := range fields {
			if f.Label == label {
				return f.Value
			}
		}
		t.Fatalf("field %q not found", label)
		return ""
	}

	assert.Equal(t, NotProvided, byLabel(doc.Customer, "Address"))
	assert.Equal(t, "Palladam", byLabel(doc.Customer, "City"))
	assert.Equal(t, NotProvided, byLabel(doc.Vehicle, "Model Name / Trim"))
	assert.Equal(t, NotProvided, byLabel(doc.InvoiceInfo, "Service Advisor"))
}

func TestBuildDocumentItemTables(t *testing.T) {
	doc := BuildDocument(sampleInvoice())

	require.NotNil(t, doc.Parts)
	require.Len(t, doc.Parts.Rows, 1)
	assert.Equal(t, []string{"1", "08M9858100", "25 g-GREASE-CALIPER GUIDE ROD", "34039900", "18%", "1.00", "218.64", "0.00", "218.64"}, doc.Parts.Rows[0])

	require.NotNil(t, doc.Labor)
	assert.Contains(t, doc.Labor.Title, "Labour Invoice")
}

func TestBuildDocumentOmitsEmptyTables(t *testing.T) {
	inv := sampleInvoice()
	inv.Parts = nil

	doc := BuildDocument(inv)

	assert.Nil(t, doc.Parts)
	assert.NotNil(t, doc.Labor)
}

func TestBuildDocumentTotalsFromStoredFigures(t *testing.T) {
	inv := sampleInvoice()
	// Deliberately inconsistent stored figures: the renderer must project
	// what is persisted, not re-derive from line items.
	inv.PartSubTotal = 1000
	inv.CGSTOnPart = 90
	inv.SGSTOnPart = 90
	inv.GrandTotalRounded = 11625

	doc := BuildDocument(inv)

	assert.Equal(t, "1,180.00", doc.Total.PartTotal)
	assert.Equal(t, "11,625.00", doc.Total.GrandTotal)
	assert.Equal(t, "Rupees Eleven Thousand Six Hundred Twenty Five Only", doc.Total.AmountInWords)
}

func TestBuildDocumentSummaryColumns(t *testing.T) {
	doc := BuildDocument(sampleInvoice())

	require.NotEmpty(t, doc.PartSummary.Rows)
	assert.Equal(t, "Sub Total", doc.PartSummary.Rows[0].Label)
	assert.Equal(t, "218.64", doc.PartSummary.Rows[0].Value)

	last := doc.PartSummary.Rows[len(doc.PartSummary.Rows)-1]
	assert.Equal(t, "SGST@9% on Part Value of 218.64", last.Label)
	assert.Equal(t, "19.68", last.Value)

	// Adjustment rows exist for layout fidelity and are always zero.
	assert.Equal(t, "0.00", doc.PartSummary.Rows[1].Value)
}

func TestRenderHTML(t *testing.T) {
	doc := BuildDocument(sampleInvoice())

	html, err := RenderHTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "SS AUTOMART PRIVATE LIMITED")
	assert.Contains(t, html, "B202501926")
	assert.Contains(t, html, "Grand Total(Rs) (Rounded)")
	assert.Contains(t, html, "Rupees Nine Hundred Thirty Six Only")

	// Section order is part of the layout contract.
	dealer := strings.Index(html, "Dealer Details")
	customer := strings.Index(html, "Customer Details")
	parts := strings.Index(html, "Part Invoice")
	total := strings.Index(html, "Grand Total")
	signatory := strings.Index(html, "(Authorized Signatory)")
	assert.True(t, dealer < customer && customer < parts && parts < total && total < signatory)
}
