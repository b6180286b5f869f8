package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssautomart/vehicle-invoice-service/internal/domain"
)

func newTestRepo(t *testing.T) *FileInvoiceRepository {
	t.Helper()
	repo, err := NewFileInvoiceRepository(t.TempDir())
	require.NoError(t, err)
	return repo
}

func testInvoice(id, number, customer, vehicle string, day int) *domain.Invoice {
	return &domain.Invoice{
		ID:            id,
		InvoiceNumber: number,
		InvoiceDate:   domain.DateOnly{Time: time.Date(2025, time.November, day, 0, 0, 0, 0, time.UTC)},
		CustomerName:  customer,
		VehicleNumber: vehicle,
		Parts:         []domain.LineItem{{Code: "P1", Quantity: 1, Rate: 100, Amount: 100}},
		Labor:         []domain.LineItem{},
		PartSubTotal:  100,
		TotalAmount:   118,
		CreatedAt:     time.Date(2025, time.November, day, 12, 0, 0, 0, time.UTC),
		Status:        "paid",
	}
}

func TestFileRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	original := testInvoice("inv-1", "B202501926", "JANANI L K", "TN39DX6478", 4)
	_, err := repo.CreateInvoice(ctx, original)
	require.NoError(t, err)

	loaded, err := repo.GetInvoiceByID(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, original.InvoiceNumber, loaded.InvoiceNumber)
	assert.Equal(t, original.Parts, loaded.Parts)
	assert.Equal(t, original.TotalAmount, loaded.TotalAmount)
}

func TestFileRepositoryGetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetInvoiceByID(context.Background(), "no-such-id")
	assert.True(t, errors.Is(err, domain.ErrInvoiceNotFound))
}

func TestFileRepositoryDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateInvoice(ctx, testInvoice("inv-1", "A1", "Alice", "TN01", 1))
	require.NoError(t, err)
	_, err = repo.CreateInvoice(ctx, testInvoice("inv-2", "A2", "Bob", "TN02", 2))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteInvoice(ctx, "inv-1"))

	list, err := repo.ListInvoices(ctx, domain.InvoiceFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Pagination.TotalItems)

	// Deleting a missing id must not change anything.
	err = repo.DeleteInvoice(ctx, "inv-1")
	assert.True(t, errors.Is(err, domain.ErrInvoiceNotFound))

	list, err = repo.ListInvoices(ctx, domain.InvoiceFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Pagination.TotalItems)
}

func TestFileRepositorySearch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateInvoice(ctx, testInvoice("inv-1", "B202501926", "JANANI L K", "TN39DX6478", 4))
	require.NoError(t, err)
	_, err = repo.CreateInvoice(ctx, testInvoice("inv-2", "B202501927", "RAMESH S", "TN66AB1234", 5))
	require.NoError(t, err)

	list, err := repo.ListInvoices(ctx, domain.InvoiceFilter{Query: "janani"})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "inv-1", list.Data[0].ID)

	list, err = repo.ListInvoices(ctx, domain.InvoiceFilter{Query: "tn66"})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "inv-2", list.Data[0].ID)

	list, err = repo.ListInvoices(ctx, domain.InvoiceFilter{Query: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, list.Data)
}

func TestFileRepositoryListSortedByDate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateInvoice(ctx, testInvoice("inv-1", "A1", "Alice", "TN01", 1))
	require.NoError(t, err)
	_, err = repo.CreateInvoice(ctx, testInvoice("inv-2", "A2", "Bob", "TN02", 9))
	require.NoError(t, err)
	_, err = repo.CreateInvoice(ctx, testInvoice("inv-3", "A3", "Carol", "TN03", 5))
	require.NoError(t, err)

	list, err := repo.ListInvoices(ctx, domain.InvoiceFilter{})
	require.NoError(t, err)
	require.Len(t, list.Data, 3)
	assert.Equal(t, "inv-2", list.Data[0].ID)
	assert.Equal(t, "inv-3", list.Data[1].ID)
	assert.Equal(t, "inv-1", list.Data[2].ID)
}

func TestFileRepositoryDashboardSummary(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateInvoice(ctx, testInvoice("inv-1", "A1", "Alice", "TN01", 1))
	require.NoError(t, err)
	_, err = repo.CreateInvoice(ctx, testInvoice("inv-2", "A2", "Bob", "TN02", 2))
	require.NoError(t, err)

	summary, err := repo.GetDashboardSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalInvoices)
	assert.InDelta(t, 236, summary.TotalRevenue, 1e-9)
	assert.InDelta(t, 118, summary.AverageInvoice, 1e-9)
}
