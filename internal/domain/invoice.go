package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// DateOnly is a custom type for handling date-only strings from JSON
type DateOnly struct {
	time.Time
}

// UnmarshalJSON implements custom unmarshaling for date-only strings
func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	// Handle null/empty dates
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON implements custom marshaling for date-only strings
func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format("2006-01-02"))
}

// LineItem represents a single part or labor entry on an invoice.
// Amount is derived (quantity x rate - discount) and is recomputed by the
// billing engine whenever the invoice is built; it is never edited directly.
type LineItem struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	HSN         string  `json:"hsn"`
	TaxPercent  float64 `json:"tax"`
	Quantity    float64 `json:"qty"`
	Rate        float64 `json:"rate"`
	Discount    float64 `json:"discount"`
	Amount      float64 `json:"amount"`
}

// IsPlaceholder reports whether the line is an empty form row.
// Rows with neither a code nor a description are excluded from submission.
func (li LineItem) IsPlaceholder() bool {
	return strings.TrimSpace(li.Code) == "" && strings.TrimSpace(li.Description) == ""
}

// Invoice is the persisted record for one vehicle-service invoice.
// It is immutable after creation: the only lifecycle operations are
// create, read and delete.
type Invoice struct {
	ID            string   `json:"id"`
	InvoiceNumber string   `json:"invoiceNumber"`
	InvoiceDate   DateOnly `json:"invoiceDate"`

	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
	CustomerCity    string `json:"customerCity"`
	CustomerState   string `json:"customerState"`
	CustomerPinCode string `json:"customerPinCode"`
	CustomerContact string `json:"customerContact"`
	CustomerGSTIN   string `json:"customerGSTIN"`

	VehicleNumber     string `json:"vehicleNumber"`
	VehicleModel      string `json:"vehicleModel"`
	VehicleFuelType   string `json:"vehicleFuelType"`
	VehicleChassisNo  string `json:"vehicleChassisNo"`
	VehicleKilometers string `json:"vehicleKilometers"`

	RepairOrderNumber    string `json:"repairOrderNumber"`
	RepairOrderDate      string `json:"repairOrderDate"`
	RepairOrderType      string `json:"repairOrderType"`
	PlaceOfSupply        string `json:"placeOfSupply"`
	ServiceAdvisor       string `json:"serviceAdvisor"`
	ServiceAdvisorNumber string `json:"serviceAdvisorNumber"`
	PartInvoiceNumber    string `json:"partInvoiceNumber"`
	LaborInvoiceNumber   string `json:"laborInvoiceNumber"`

	Parts []LineItem `json:"parts"`
	Labor []LineItem `json:"labor"`

	PartSubTotal      float64 `json:"partSubTotal"`
	LaborSubTotal     float64 `json:"laborSubTotal"`
	CGSTOnPart        float64 `json:"cgstOnPart"`
	SGSTOnPart        float64 `json:"sgstOnPart"`
	CGSTOnLabor       float64 `json:"cgstOnLabor"`
	SGSTOnLabor       float64 `json:"sgstOnLabor"`
	TotalAmount       float64 `json:"totalAmount"`
	GrandTotalRounded float64 `json:"grandTotalRounded"`

	// Adjustment fields are part of the fixed print layout but are not
	// computed by this system; they are always zero.
	CouponDiscount float64 `json:"couponDiscount"`
	Discount       float64 `json:"discount"`
	AMCDiscount    float64 `json:"amcDiscount"`
	TCSTax         float64 `json:"tcsTax"`

	Observations string `json:"observations"`
	DeferredJobs string `json:"deferredJobs"`

	CreatedAt time.Time `json:"createdAt"`
	Status    string    `json:"status"`
}

// InvoiceDraft carries the collected form fields before validation and
// totals computation. Parts and Labor may still contain placeholder rows.
type InvoiceDraft struct {
	InvoiceNumber string
	InvoiceDate   string

	CustomerName    string
	CustomerAddress string
	CustomerCity    string
	CustomerState   string
	CustomerPinCode string
	CustomerContact string
	CustomerGSTIN   string

	VehicleNumber     string
	VehicleModel      string
	VehicleFuelType   string
	VehicleChassisNo  string
	VehicleKilometers string

	RepairOrderNumber    string
	RepairOrderDate      string
	RepairOrderType      string
	PlaceOfSupply        string
	ServiceAdvisor       string
	ServiceAdvisorNumber string
	PartInvoiceNumber    string
	LaborInvoiceNumber   string

	Parts []LineItem
	Labor []LineItem

	Observations string
	DeferredJobs string
}

// InvoiceFilter represents filters for querying invoices
type InvoiceFilter struct {
	// Query is matched case-insensitively against the invoice number,
	// customer name and vehicle registration number.
	Query string
	// Sort is either "date" (invoice date, default) or "recent"
	// (creation timestamp).
	Sort  string
	Page  int
	Limit int
}

// Pagination represents pagination metadata
type Pagination struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
}

// PaginatedInvoices represents a paginated list of invoices
type PaginatedInvoices struct {
	Data       []Invoice  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// DashboardSummary represents aggregate figures for the dashboard view
type DashboardSummary struct {
	TotalInvoices  int     `json:"totalInvoices"`
	ThisMonth      int     `json:"thisMonth"`
	TotalRevenue   float64 `json:"totalRevenue"`
	AverageInvoice float64 `json:"averageInvoice"`
}
