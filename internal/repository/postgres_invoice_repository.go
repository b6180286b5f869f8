package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
)

// PostgresInvoiceRepository implements InvoiceRepository using PostgreSQL
type PostgresInvoiceRepository struct {
	db *pgxpool.Pool
}

// NewPostgresInvoiceRepository creates a new PostgreSQL invoice repository
func NewPostgresInvoiceRepository(db *pgxpool.Pool) *PostgresInvoiceRepository {
	return &PostgresInvoiceRepository{
		db: db,
	}
}

const invoiceColumns = `
	id, invoice_number, invoice_date,
	customer_name, customer_address, customer_city, customer_state,
	customer_pin_code, customer_contact, customer_gstin,
	vehicle_number, vehicle_model, vehicle_fuel_type, vehicle_chassis_no, vehicle_kilometers,
	repair_order_number, repair_order_date, repair_order_type, place_of_supply,
	service_advisor, service_advisor_number, part_invoice_number, labor_invoice_number,
	part_sub_total, labor_sub_total, cgst_on_part, sgst_on_part, cgst_on_labor, sgst_on_labor,
	total_amount, grand_total_rounded,
	coupon_discount, discount, amc_discount, tcs_tax,
	observations, deferred_jobs, created_at, status`

func scanInvoice(row pgx.Row, inv *domain.Invoice) error {
	return row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.InvoiceDate.Time,
		&inv.CustomerName, &inv.CustomerAddress, &inv.CustomerCity, &inv.CustomerState,
		&inv.CustomerPinCode, &inv.CustomerContact, &inv.CustomerGSTIN,
		&inv.VehicleNumber, &inv.VehicleModel, &inv.VehicleFuelType, &inv.VehicleChassisNo, &inv.VehicleKilometers,
		&inv.RepairOrderNumber, &inv.RepairOrderDate, &inv.RepairOrderType, &inv.PlaceOfSupply,
		&inv.ServiceAdvisor, &inv.ServiceAdvisorNumber, &inv.PartInvoiceNumber, &inv.LaborInvoiceNumber,
		&inv.PartSubTotal, &inv.LaborSubTotal, &inv.CGSTOnPart, &inv.SGSTOnPart, &inv.CGSTOnLabor, &inv.SGSTOnLabor,
		&inv.TotalAmount, &inv.GrandTotalRounded,
		&inv.CouponDiscount, &inv.Discount, &inv.AMCDiscount, &inv.TCSTax,
		&inv.Observations, &inv.DeferredJobs, &inv.CreatedAt, &inv.Status,
	)
}

// CreateInvoice saves a new invoice and its line items in one transaction
func (r *PostgresInvoiceRepository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if not committed

	_, err = tx.Exec(ctx, `
		INSERT INTO invoices (`+invoiceColumns+`)
		VALUES (
			$1, $2, $3,
			$4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23,
			$24, $25, $26, $27, $28, $29, $30, $31,
			$32, $33, $34, $35,
			$36, $37, $38, $39
		)
	`,
		invoice.ID, invoice.InvoiceNumber, invoice.InvoiceDate.Time,
		invoice.CustomerName, invoice.CustomerAddress, invoice.CustomerCity, invoice.CustomerState,
		invoice.CustomerPinCode, invoice.CustomerContact, invoice.CustomerGSTIN,
		invoice.VehicleNumber, invoice.VehicleModel, invoice.VehicleFuelType, invoice.VehicleChassisNo, invoice.VehicleKilometers,
		invoice.RepairOrderNumber, invoice.RepairOrderDate, invoice.RepairOrderType, invoice.PlaceOfSupply,
		invoice.ServiceAdvisor, invoice.ServiceAdvisorNumber, invoice.PartInvoiceNumber, invoice.LaborInvoiceNumber,
		invoice.PartSubTotal, invoice.LaborSubTotal, invoice.CGSTOnPart, invoice.SGSTOnPart, invoice.CGSTOnLabor, invoice.SGSTOnLabor,
		invoice.TotalAmount, invoice.GrandTotalRounded,
		invoice.CouponDiscount, invoice.Discount, invoice.AMCDiscount, invoice.TCSTax,
		invoice.Observations, invoice.DeferredJobs, invoice.CreatedAt, invoice.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert invoice: %w", err)
	}

	if err := insertLineItems(ctx, tx, invoice.ID, "part", invoice.Parts); err != nil {
		return nil, err
	}
	if err := insertLineItems(ctx, tx, invoice.ID, "labor", invoice.Labor); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return invoice, nil
}

func insertLineItems(ctx context.Context, tx pgx.Tx, invoiceID, kind string, items []domain.LineItem) error {
	for i, item := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO invoice_line_items (invoice_id, kind, position, code, description, hsn, tax_percent, qty, rate, discount, amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, invoiceID, kind, i, item.Code, item.Description, item.HSN, item.TaxPercent, item.Quantity, item.Rate, item.Discount, item.Amount)
		if err != nil {
			return fmt.Errorf("failed to insert %s line item: %w", kind, err)
		}
	}
	return nil
}

// GetInvoiceByID retrieves an invoice by its ID
func (r *PostgresInvoiceRepository) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	row := r.db.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, invoiceID)
	if err := scanInvoice(row, &invoice); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, invoiceID)
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	parts, labor, err := r.loadLineItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Parts = parts
	invoice.Labor = labor

	return &invoice, nil
}

func (r *PostgresInvoiceRepository) loadLineItems(ctx context.Context, invoiceID string) ([]domain.LineItem, []domain.LineItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT kind, code, description, hsn, tax_percent, qty, rate, discount, amount
		FROM invoice_line_items
		WHERE invoice_id = $1
		ORDER BY kind, position
	`, invoiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()

	parts := []domain.LineItem{}
	labor := []domain.LineItem{}
	for rows.Next() {
		var kind string
		var item domain.LineItem
		if err := rows.Scan(&kind, &item.Code, &item.Description, &item.HSN, &item.TaxPercent, &item.Quantity, &item.Rate, &item.Discount, &item.Amount); err != nil {
			return nil, nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		if kind == "labor" {
			labor = append(labor, item)
		} else {
			parts = append(parts, item)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating line items: %w", err)
	}

	return parts, labor, nil
}

// DeleteInvoice deletes an invoice by its ID
func (r *PostgresInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	// Line items are removed by the ON DELETE CASCADE constraint
	commandTag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, invoiceID)
	}

	return nil
}

// ListInvoices retrieves invoices with optional search and pagination
func (r *PostgresInvoiceRepository) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) (*domain.PaginatedInvoices, error) {
	result := &domain.PaginatedInvoices{
		Data:       []domain.Invoice{},
		Pagination: domain.Pagination{},
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

	whereClause := ""
	args := []interface{}{}
	if filter.Query != "" {
		whereClause = `WHERE invoice_number ILIKE $1 OR customer_name ILIKE $1 OR vehicle_number ILIKE $1`
		args = append(args, "%"+filter.Query+"%")
	}

	var totalItems int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM invoices %s`, whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&totalItems); err != nil {
		return nil, fmt.Errorf("failed to count invoices: %w", err)
	}

	result.Pagination.TotalItems = totalItems
	result.Pagination.Limit = filter.Limit
	result.Pagination.CurrentPage = filter.Page
	result.Pagination.TotalPages = int(math.Ceil(float64(totalItems) / float64(filter.Limit)))

	if totalItems == 0 {
		return result, nil
	}

	orderBy := "invoice_date DESC"
	if filter.Sort == "recent" {
		orderBy = "created_at DESC"
	}

	offset := (filter.Page - 1) * filter.Limit
	argCount := len(args) + 1
	args = append(args, filter.Limit, offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM invoices
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, invoiceColumns, whereClause, orderBy, argCount, argCount+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoiceMap := make(map[string]*domain.Invoice)
	var invoiceIDs []string

	for rows.Next() {
		var invoice domain.Invoice
		if err := scanInvoice(rows, &invoice); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoice.Parts = []domain.LineItem{}
		invoice.Labor = []domain.LineItem{}
		invoiceMap[invoice.ID] = &invoice
		invoiceIDs = append(invoiceIDs, invoice.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoices: %w", err)
	}

	if len(invoiceIDs) == 0 {
		return result, nil
	}

	// Fetch line items for all listed invoices in a single query rather
	// than one query per invoice.
	placeholders := make([]string, len(invoiceIDs))
	itemArgs := make([]interface{}, len(invoiceIDs))
	for i, id := range invoiceIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		itemArgs[i] = id
	}

	itemQuery := fmt.Sprintf(`
		SELECT invoice_id, kind, code, description, hsn, tax_percent, qty, rate, discount, amount
		FROM invoice_line_items
		WHERE invoice_id IN (%s)
		ORDER BY invoice_id, kind, position
	`, strings.Join(placeholders, ", "))

	itemRows, err := r.db.Query(ctx, itemQuery, itemArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var invoiceID, kind string
		var item domain.LineItem
		if err := itemRows.Scan(&invoiceID, &kind, &item.Code, &item.Description, &item.HSN, &item.TaxPercent, &item.Quantity, &item.Rate, &item.Discount, &item.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		invoice, ok := invoiceMap[invoiceID]
		if !ok {
			continue
		}
		if kind == "labor" {
			invoice.Labor = append(invoice.Labor, item)
		} else {
			invoice.Parts = append(invoice.Parts, item)
		}
	}

	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line items: %w", err)
	}

	for _, id := range invoiceIDs {
		result.Data = append(result.Data, *invoiceMap[id])
	}

	return result, nil
}
