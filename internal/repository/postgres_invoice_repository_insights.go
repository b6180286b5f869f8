package repository

import (
	"context"
	"fmt"

	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
)

// GetDashboardSummary computes aggregate figures over all stored invoices:
// total count, count for the current calendar month, total revenue (sum of
// the unrounded totals) and the average invoice value.
func (r *PostgresInvoiceRepository) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM invoices
	`).Scan(&summary.TotalInvoices, &summary.TotalRevenue)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate invoices: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM invoices
		WHERE date_trunc('month', invoice_date) = date_trunc('month', CURRENT_DATE)
	`).Scan(&summary.ThisMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to count current-month invoices: %w", err)
	}

	if summary.TotalInvoices > 0 {
		summary.AverageInvoice = summary.TotalRevenue / float64(summary.TotalInvoices)
	}

	return summary, nil
}
