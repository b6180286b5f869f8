package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
	"github.com/ssautomart/vehicle-invoice-service/internal/repository"
)

// SeedSampleInvoice inserts a complete demonstration invoice when the
// repository is empty. It is a no-op on a repository that already holds
// data, so restarts never duplicate the sample.
func SeedSampleInvoice(ctx context.Context, repo repository.InvoiceRepository) (bool, error) {
	existing, err := repo.ListInvoices(ctx, domain.InvoiceFilter{Limit: 1})
	if err != nil {
		return false, fmt.Errorf("failed to check existing invoices: %w", err)
	}
	if existing.Pagination.TotalItems > 0 {
		return false, nil
	}

	if _, err := repo.CreateInvoice(ctx, sampleInvoice()); err != nil {
		return false, fmt.Errorf("failed to seed sample invoice: %w", err)
	}
	return true, nil
}

func sampleInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: "B202501926",
		InvoiceDate:   domain.DateOnly{Time: time.Date(2025, time.November, 4, 0, 0, 0, 0, time.UTC)},

		CustomerName:    "JANANI L K",
		CustomerCity:    "Palladam",
		CustomerState:   "TAMIL NADU",
		CustomerPinCode: "641652",
		CustomerContact: "8608082109",

		VehicleNumber:     "TN39DX6478",
		VehicleModel:      "SU**B Creta 1.5 MPi MT S+ SE",
		VehicleFuelType:   "Petrol",
		VehicleChassisNo:  "MALPB812LNM399968",
		VehicleKilometers: "72737.0",

		RepairOrderNumber:    "R202501930",
		RepairOrderDate:      "2025-11-04 10:31:27",
		RepairOrderType:      "Paid Service",
		PlaceOfSupply:        "Tamilnadu",
		ServiceAdvisor:       "Vignesh M",
		ServiceAdvisorNumber: "7867044453",
		PartInvoiceNumber:    "S4840G202503637",
		LaborInvoiceNumber:   "S4840G202503636",

		Parts: []domain.LineItem{
			{Code: "08M9858100", Description: "25 g-GREASE-CALIPER GUIDE ROD", HSN: "34039900", TaxPercent: 18, Quantity: 1.00, Rate: 218.64, Amount: 218.64},
			{Code: "ACS73AP001", Description: "50 ml-WINDSHIELD WASHER", HSN: "34029099", TaxPercent: 18, Quantity: 2.00, Rate: 16.94, Amount: 33.88},
			{Code: "954133A000-AS", Description: "BATTERY-TRANSMITTER", HSN: "83016000", TaxPercent: 18, Quantity: 1.00, Rate: 366.94, Amount: 366.94},
			{Code: "NPNBRKCLREB", Description: "Brake Parts Kleen", HSN: "38140010", TaxPercent: 18, Quantity: 1.00, Rate: 443.22, Amount: 443.22},
			{Code: "97133S5000", Description: "FILTER ASSY-AIR", HSN: "84213990", TaxPercent: 18, Quantity: 1.00, Rate: 398.30, Amount: 398.30},
			{Code: "28113A0100", Description: "FILTER-AIR CLEANER", HSN: "84213100", TaxPercent: 18, Quantity: 1.00, Rate: 286.44, Amount: 286.44},
			{Code: "2151223001", Description: "PLUG-OIL DRAIN", HSN: "39269099", TaxPercent: 18, Quantity: 1.00, Rate: 260.16, Amount: 260.16},
			{Code: "8659028000", Description: "RETAINER ASSY-BUMPER COVER MTG", HSN: "87089900", TaxPercent: 18, Quantity: 5.00, Rate: 6.78, Amount: 33.91},
			{Code: "263502M000", Description: "SERVICE KIT-OIL FILTER", HSN: "84212300", TaxPercent: 18, Quantity: 1.00, Rate: 503.38, Amount: 503.38},
			{Code: "NPNBS6SYNSHELL", Description: "SHELL HELIX ULTRA AH 0W30 API SP/C", HSN: "27101972", TaxPercent: 18, Quantity: 3.60, Rate: 974.58, Amount: 3508.51},
		},
		Labor: []domain.LineItem{
			{Code: "A10AAACDVASEB", Description: "AC Disinfectant Bardahl (EB) (Optional)", HSN: "998729", TaxPercent: 18, Quantity: 1.00, Rate: 575.00, Amount: 575.00},
			{Code: "A10AABR18BRAK", Description: "Brake Bleeding", HSN: "998729", TaxPercent: 18, Quantity: 1.00, Rate: 681.00, Amount: 681.00},
			{Code: "A10AAECLVASEB", Description: "Engine Cleaning/Dressing Large Bardahl (EB) (Optional)", HSN: "998729", TaxPercent: 18, Quantity: 1.00, Rate: 399.00, Amount: 399.00},
			{Code: "A10AAGM01PMSS", Description: "Periodic Maintenance Service (PMS)", HSN: "998729", TaxPercent: 18, Quantity: 1.00, Rate: 2143.00, Amount: 2143.00},
		},

		PartSubTotal:      6053.38,
		LaborSubTotal:     3798.00,
		CGSTOnPart:        544.80,
		SGSTOnPart:        544.80,
		CGSTOnLabor:       341.82,
		SGSTOnLabor:       341.82,
		TotalAmount:       11625,
		GrandTotalRounded: 11625,

		Observations: "No Accessory Fitment",
		DeferredJobs: "Tyre Damage",

		CreatedAt: time.Now().UTC(),
		Status:    StatusPaid,
	}
}
