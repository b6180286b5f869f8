package render

import (
	"fmt"
	"strconv"

	"github.com/ssautomart/vehicle-invoice-service/internal/billing"
	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
)

// Dealer identity is constant across all invoices; it is part of the fixed
// print layout, not per-invoice data.
const (
	dealerName    = "SS AUTOMART PRIVATE LIMITED"
	dealerAddress = "Opp to Vivekananda Sevalayam, S.F No: 501/1, TIRUPPUR"
	dealerCity    = "Tirupur"
	dealerState   = "Tamilnadu"
	dealerPinCode = "641652"
	dealerContact = "7867044430"
	dealerEmail   = "gm.service@ssauto.co.in"
	dealerGSTIN   = "33AATCS5542D1Z9"
)

const advisoryText = "Authorized Workshop recommends its customers against use of " +
	"Non-genuine Fitment which may hamper your safety and/or Result in Poor " +
	"Performance of your vehicle."

var itemColumns = []string{
	"S.No", "Part/OP Code", "Description", "HSN/SAC", "Tax%",
	"Qty", "Rate/Unit", "Disc Amt", "Amount(Rs)",
}

// BuildDocument projects a stored invoice into its canonical display/print
// representation. It is a pure projection: every monetary figure comes from
// the persisted record, never from a fresh totals computation.
func BuildDocument(inv *domain.Invoice) *Document {
	doc := &Document{
		Title:    "Invoice",
		Subtitle: "Invoice Summary",

		Dealer: []Field{
			{Label: "Dealer Name", Value: dealerName},
			{Label: "Dealer Address", Value: dealerAddress},
			{Label: "City", Value: dealerCity},
			{Label: "State", Value: dealerState},
			{Label: "Pin Code", Value: dealerPinCode},
			{Label: "Contact No", Value: dealerContact},
			{Label: "Email ID", Value: dealerEmail},
			{Label: "GSTIN", Value: dealerGSTIN},
		},

		Customer:    customerFields(inv),
		Vehicle:     vehicleFields(inv),
		InvoiceInfo: invoiceInfoFields(inv),

		PartSummary:  summaryColumn("Part Amount(Rs)", inv.PartSubTotal, inv.CGSTOnPart, inv.SGSTOnPart, "Part", inv),
		LaborSummary: summaryColumn("Labor Amount(Rs)", inv.LaborSubTotal, inv.CGSTOnLabor, inv.SGSTOnLabor, "Labor", inv),

		Total: TotalBlock{
			PartTotal:     FormatAmount(inv.PartSubTotal + inv.CGSTOnPart + inv.SGSTOnPart),
			LaborTotal:    FormatAmount(inv.LaborSubTotal + inv.CGSTOnLabor + inv.SGSTOnLabor),
			GrandTotal:    FormatAmount(inv.GrandTotalRounded),
			AmountInWords: fmt.Sprintf("Rupees %s Only", billing.AmountInWords(int64(inv.GrandTotalRounded))),
		},

		Advisory:     advisoryText,
		DeferredJobs: fallback(inv.DeferredJobs),
		Observations: fallback(inv.Observations),

		SignatoryFor:  "For " + dealerName,
		SignatoryLine: "(Authorized Signatory)",
	}

	if len(inv.Parts) > 0 {
		doc.Parts = itemsTable(fmt.Sprintf("Part Invoice %s", fallback(inv.PartInvoiceNumber)), inv.Parts)
	}
	if len(inv.Labor) > 0 {
		doc.Labor = itemsTable(fmt.Sprintf("Labour and Services - Labour Invoice %s", fallback(inv.LaborInvoiceNumber)), inv.Labor)
	}

	return doc
}

func customerFields(inv *domain.Invoice) []Field {
	return []Field{
		{Label: "Name", Value: inv.CustomerName},
		{Label: "Address", Value: fallback(inv.CustomerAddress)},
		{Label: "City", Value: fallback(inv.CustomerCity)},
		{Label: "State", Value: fallback(inv.CustomerState)},
		{Label: "Pin Code", Value: fallback(inv.CustomerPinCode)},
		{Label: "Contact No", Value: fallback(inv.CustomerContact)},
		{Label: "GSTIN", Value: fallback(inv.CustomerGSTIN)},
	}
}

func vehicleFields(inv *domain.Invoice) []Field {
	return []Field{
		{Label: "Registration No", Value: inv.VehicleNumber},
		{Label: "Model Name / Trim", Value: fallback(inv.VehicleModel)},
		{Label: "Fuel Type", Value: fallback(inv.VehicleFuelType)},
		{Label: "Chassis No", Value: fallback(inv.VehicleChassisNo)},
		{Label: "Kilometers", Value: fallback(inv.VehicleKilometers)},
	}
}

func invoiceInfoFields(inv *domain.Invoice) []Field {
	return []Field{
		{Label: "Invoice Number", Value: inv.InvoiceNumber},
		{Label: "Invoice Date", Value: FormatDate(inv.InvoiceDate.Time)},
		{Label: "Repair Order Number", Value: fallback(inv.RepairOrderNumber)},
		{Label: "Repair Order Date", Value: fallback(inv.RepairOrderDate)},
		{Label: "Repair Order Type", Value: fallback(inv.RepairOrderType)},
		{Label: "Place of Supply", Value: fallback(inv.PlaceOfSupply)},
		{Label: "Service Advisor", Value: fallback(inv.ServiceAdvisor)},
		{Label: "Service Advisor Number", Value: fallback(inv.ServiceAdvisorNumber)},
	}
}

func itemsTable(title string, items []domain.LineItem) *ItemsTable {
	rows := make([][]string, 0, len(items))
	for i, li := range items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			li.Code,
			li.Description,
			li.HSN,
			fmt.Sprintf("%g%%", li.TaxPercent),
			FormatQuantity(li.Quantity),
			FormatAmount(li.Rate),
			FormatAmount(li.Discount),
			FormatAmount(li.Amount),
		})
	}
	return &ItemsTable{Title: title, Columns: itemColumns, Rows: rows}
}

func summaryColumn(heading string, subTotal, cgst, sgst float64, side string, inv *domain.Invoice) SummaryColumn {
	return SummaryColumn{
		Heading: heading,
		Rows: []Field{
			{Label: "Sub Total", Value: FormatAmount(subTotal)},
			{Label: "Coupon Discount", Value: FormatAmount(inv.CouponDiscount)},
			{Label: "TCS Tax", Value: FormatAmount(inv.TCSTax)},
			{Label: "Discount", Value: FormatAmount(inv.Discount)},
			{Label: "AMC Discount", Value: FormatAmount(inv.AMCDiscount)},
			{Label: fmt.Sprintf("CGST@9%% on %s Value of %s", side, FormatAmount(subTotal)), Value: FormatAmount(cgst)},
			{Label: fmt.Sprintf("SGST@9%% on %s Value of %s", side, FormatAmount(subTotal)), Value: FormatAmount(sgst)},
		},
	}
}
