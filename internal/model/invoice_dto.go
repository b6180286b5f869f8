package model

import (
	"encoding/json"
	"strings"

	"github.com/ssautomart/vehicle-invoice-service/internal/billing"
	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
)

// LenientNumber is a float64 that accepts both JSON numbers and quoted
// strings on input. Form clients submit numeric fields as strings; values
// that cannot be parsed are treated as zero rather than rejected, matching
// the tolerant behavior of the invoice form.
type LenientNumber float64

// UnmarshalJSON implements lenient numeric decoding
func (n *LenientNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	*n = LenientNumber(billing.ParseNumber(s))
	return nil
}

// LineItemInput represents a single part or labor row in a create request
type LineItemInput struct {
	Code        string        `json:"code"`
	Description string        `json:"description"`
	HSN         string        `json:"hsn"`
	Tax         LenientNumber `json:"tax"`
	Quantity    LenientNumber `json:"qty"`
	Rate        LenientNumber `json:"rate"`
	Discount    LenientNumber `json:"discount"`
}

// CreateInvoiceRequest represents the payload for creating an invoice.
// Only invoiceNumber, invoiceDate, customerName and vehicleNumber are
// mandatory; everything else is optional form data.
type CreateInvoiceRequest struct {
	InvoiceNumber string `json:"invoiceNumber" example:"B202501926"`
	InvoiceDate   string `json:"invoiceDate" example:"2025-11-04"`

	CustomerName    string `json:"customerName" example:"JANANI L K"`
	CustomerAddress string `json:"customerAddress"`
	CustomerCity    string `json:"customerCity"`
	CustomerState   string `json:"customerState"`
	CustomerPinCode string `json:"customerPinCode"`
	CustomerContact string `json:"customerContact"`
	CustomerGSTIN   string `json:"customerGSTIN"`

	VehicleNumber     string `json:"vehicleNumber" example:"TN39DX6478"`
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

	Parts []LineItemInput `json:"parts"`
	Labor []LineItemInput `json:"labor"`

	Observations string `json:"observations"`
	DeferredJobs string `json:"deferredJobs"`
}

// ToDraft converts the request into a domain draft for the service layer
func (r *CreateInvoiceRequest) ToDraft() *domain.InvoiceDraft {
	return &domain.InvoiceDraft{
		InvoiceNumber: r.InvoiceNumber,
		InvoiceDate:   r.InvoiceDate,

		CustomerName:    r.CustomerName,
		CustomerAddress: r.CustomerAddress,
		CustomerCity:    r.CustomerCity,
		CustomerState:   r.CustomerState,
		CustomerPinCode: r.CustomerPinCode,
		CustomerContact: r.CustomerContact,
		CustomerGSTIN:   r.CustomerGSTIN,

		VehicleNumber:     r.VehicleNumber,
		VehicleModel:      r.VehicleModel,
		VehicleFuelType:   r.VehicleFuelType,
		VehicleChassisNo:  r.VehicleChassisNo,
		VehicleKilometers: r.VehicleKilometers,

		RepairOrderNumber:    r.RepairOrderNumber,
		RepairOrderDate:      r.RepairOrderDate,
		RepairOrderType:      r.RepairOrderType,
		PlaceOfSupply:        r.PlaceOfSupply,
		ServiceAdvisor:       r.ServiceAdvisor,
		ServiceAdvisorNumber: r.ServiceAdvisorNumber,
		PartInvoiceNumber:    r.PartInvoiceNumber,
		LaborInvoiceNumber:   r.LaborInvoiceNumber,

		Parts: lineItemsToDomain(r.Parts),
		Labor: lineItemsToDomain(r.Labor),

		Observations: r.Observations,
		DeferredJobs: r.DeferredJobs,
	}
}

func lineItemsToDomain(items []LineItemInput) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, item := range items {
		out[i] = domain.LineItem{
			Code:        item.Code,
			Description: item.Description,
			HSN:         item.HSN,
			TaxPercent:  float64(item.Tax),
			Quantity:    float64(item.Quantity),
			Rate:        float64(item.Rate),
			Discount:    float64(item.Discount),
		}
	}
	return out
}

// InvoiceSummary represents one row in an invoice listing
type InvoiceSummary struct {
	ID            string  `json:"id"`
	InvoiceNumber string  `json:"invoiceNumber"`
	InvoiceDate   string  `json:"invoiceDate"`
	CustomerName  string  `json:"customerName"`
	VehicleNumber string  `json:"vehicleNumber"`
	GrandTotal    float64 `json:"grandTotal"`
	Status        string  `json:"status"`
}

// NewInvoiceSummary projects an invoice into its listing row
func NewInvoiceSummary(inv *domain.Invoice) InvoiceSummary {
	return InvoiceSummary{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate.Format("2006-01-02"),
		CustomerName:  inv.CustomerName,
		VehicleNumber: inv.VehicleNumber,
		GrandTotal:    inv.GrandTotalRounded,
		Status:        inv.Status,
	}
}

// InvoiceListResponse represents a paginated invoice listing
type InvoiceListResponse struct {
	Data       []InvoiceSummary  `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

// NewInvoiceListResponse builds the listing response from a repository page
func NewInvoiceListResponse(page *domain.PaginatedInvoices) *InvoiceListResponse {
	resp := &InvoiceListResponse{
		Data:       make([]InvoiceSummary, 0, len(page.Data)),
		Pagination: page.Pagination,
	}
	for i := range page.Data {
		resp.Data = append(resp.Data, NewInvoiceSummary(&page.Data[i]))
	}
	return resp
}
