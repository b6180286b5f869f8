package repository

import (
	"context"
	"fmt"

	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
)

// RepositoryError represents an error that occurred within a repository
type RepositoryError struct {
	// Op is the operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error
func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap exposes the underlying error for errors.Is/errors.As checks.
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// InvoiceRepository defines the interface for invoice data storage
// operations. Invoices are immutable once stored: there is no update path,
// only create, read and delete.
type InvoiceRepository interface {
	// CreateInvoice persists a fully built invoice together with its line items
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)

	// GetInvoiceByID retrieves an invoice by its ID
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices with optional search and pagination
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) (*domain.PaginatedInvoices, error)

	// DeleteInvoice removes an invoice; domain.ErrInvoiceNotFound when missing
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// GetDashboardSummary computes aggregate figures over all stored invoices
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
