package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
)

// FileInvoiceRepository implements InvoiceRepository using the local
// filesystem: one JSON document per invoice. It exists for single-user
// setups that do not want to run a database; the collection is small enough
// that list/search/aggregate operations load everything into memory.
type FileInvoiceRepository struct {
	baseDir string
	mutex   sync.RWMutex
}

// NewFileInvoiceRepository creates a new file-based invoice repository
func NewFileInvoiceRepository(baseDir string) (*FileInvoiceRepository, error) {
	invoicesDir := filepath.Join(baseDir, "invoices")
	if err := os.MkdirAll(invoicesDir, 0755); err != nil {
		return nil, &RepositoryError{
			Op:  "create_repository",
			Err: fmt.Errorf("failed to create invoices directory: %w", err),
		}
	}

	return &FileInvoiceRepository{
		baseDir: baseDir,
	}, nil
}

func (r *FileInvoiceRepository) invoicePath(invoiceID string) string {
	return filepath.Join(r.baseDir, "invoices", invoiceID+".json")
}

// CreateInvoice persists an invoice as a JSON document
func (r *FileInvoiceRepository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	select {
	case <-ctx.Done():
		return nil, &RepositoryError{Op: "create_invoice", Err: ctx.Err()}
	default:
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if invoice.ID == "" {
		return nil, &RepositoryError{
			Op:  "create_invoice",
			Err: fmt.Errorf("invoice id is required"),
		}
	}

	data, err := json.MarshalIndent(invoice, "", "  ")
	if err != nil {
		return nil, &RepositoryError{
			Op:  "create_invoice",
			Err: fmt.Errorf("failed to serialize invoice: %w", err),
		}
	}

	if err := os.WriteFile(r.invoicePath(invoice.ID), data, 0644); err != nil {
		return nil, &RepositoryError{
			Op:  "create_invoice",
			Err: fmt.Errorf("failed to write invoice file: %w", err),
		}
	}

	return invoice, nil
}

// GetInvoiceByID retrieves an invoice by its ID
func (r *FileInvoiceRepository) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	select {
	case <-ctx.Done():
		return nil, &RepositoryError{Op: "get_invoice", Err: ctx.Err()}
	default:
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	data, err := os.ReadFile(r.invoicePath(invoiceID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &RepositoryError{
				Op:  "get_invoice",
				Err: fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, invoiceID),
			}
		}
		return nil, &RepositoryError{
			Op:  "get_invoice",
			Err: fmt.Errorf("failed to read invoice file: %w", err),
		}
	}

	var invoice domain.Invoice
	if err := json.Unmarshal(data, &invoice); err != nil {
		return nil, &RepositoryError{
			Op:  "get_invoice",
			Err: fmt.Errorf("failed to deserialize invoice: %w", err),
		}
	}

	return &invoice, nil
}

// DeleteInvoice removes an invoice document from the filesystem
func (r *FileInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	select {
	case <-ctx.Done():
		return &RepositoryError{Op: "delete_invoice", Err: ctx.Err()}
	default:
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if err := os.Remove(r.invoicePath(invoiceID)); err != nil {
		if os.IsNotExist(err) {
			return &RepositoryError{
				Op:  "delete_invoice",
				Err: fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, invoiceID),
			}
		}
		return &RepositoryError{
			Op:  "delete_invoice",
			Err: fmt.Errorf("failed to remove invoice file: %w", err),
		}
	}

	return nil
}

// ListInvoices retrieves invoices with optional search and pagination
func (r *FileInvoiceRepository) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) (*domain.PaginatedInvoices, error) {
	invoices, err := r.loadAll(ctx, "list_invoices")
	if err != nil {
		return nil, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		matched := invoices[:0]
		for _, inv := range invoices {
			if strings.Contains(strings.ToLower(inv.InvoiceNumber), q) ||
				strings.Contains(strings.ToLower(inv.CustomerName), q) ||
				strings.Contains(strings.ToLower(inv.VehicleNumber), q) {
				matched = append(matched, inv)
			}
		}
		invoices = matched
	}

	if filter.Sort == "recent" {
		sort.Slice(invoices, func(i, j int) bool {
			return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
		})
	} else {
		sort.Slice(invoices, func(i, j int) bool {
			return invoices[i].InvoiceDate.Time.After(invoices[j].InvoiceDate.Time)
		})
	}

	result := &domain.PaginatedInvoices{
		Data: []domain.Invoice{},
		Pagination: domain.Pagination{
			TotalItems:  len(invoices),
			TotalPages:  int(math.Ceil(float64(len(invoices)) / float64(filter.Limit))),
			CurrentPage: filter.Page,
			Limit:       filter.Limit,
		},
	}

	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(invoices) {
		return result, nil
	}
	end := offset + filter.Limit
	if end > len(invoices) {
		end = len(invoices)
	}
	result.Data = invoices[offset:end]

	return result, nil
}

// GetDashboardSummary computes aggregate figures over all stored invoices
func (r *FileInvoiceRepository) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	invoices, err := r.loadAll(ctx, "dashboard_summary")
	if err != nil {
		return nil, err
	}

	summary := &domain.DashboardSummary{TotalInvoices: len(invoices)}

	now := time.Now()
	for _, inv := range invoices {
		summary.TotalRevenue += inv.TotalAmount
		if inv.InvoiceDate.Year() == now.Year() && inv.InvoiceDate.Month() == now.Month() {
			summary.ThisMonth++
		}
	}
	if summary.TotalInvoices > 0 {
		summary.AverageInvoice = summary.TotalRevenue / float64(summary.TotalInvoices)
	}

	return summary, nil
}

// loadAll reads every invoice document under the base directory.
func (r *FileInvoiceRepository) loadAll(ctx context.Context, op string) ([]domain.Invoice, error) {
	select {
	case <-ctx.Done():
		return nil, &RepositoryError{Op: op, Err: ctx.Err()}
	default:
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	invoicesDir := filepath.Join(r.baseDir, "invoices")
	files, err := os.ReadDir(invoicesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Invoice{}, nil
		}
		return nil, &RepositoryError{
			Op:  op,
			Err: fmt.Errorf("failed to read invoices directory: %w", err),
		}
	}

	invoices := make([]domain.Invoice, 0, len(files))
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(invoicesDir, f.Name()))
		if err != nil {
			continue // Skip files we can't read
		}

		var invoice domain.Invoice
		if err := json.Unmarshal(data, &invoice); err != nil {
			continue // Skip files we can't parse
		}

		invoices = append(invoices, invoice)
	}

	return invoices, nil
}
