package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportEnv(t *testing.T) (*ReportService, *database.Store) {
	t.Helper()
	base := t.TempDir()
	store := database.NewStore(filepath.Join(base, "data"))
	svc := NewReportService(store, filepath.Join(base, "financial_reports"), filepath.Join(base, "stock_reports"))
	return svc, store
}

func seedReportData(t *testing.T, store *database.Store) {
	t.Helper()
	items := repositories.NewItemRepository(store)
	require.NoError(t, items.Create(models.Item{Code: "ITM001", Name: "Jasmine Rice 5kg", SupplierID: "SUP001", Stock: 5, UnitPrice: "28.50", PurchasePrice: "21.00"}))
	require.NoError(t, items.Create(models.Item{Code: "ITM002", Name: "Cooking Oil 2L", SupplierID: "SUP001", Stock: 120, UnitPrice: "10.00", PurchasePrice: "7.50"}))

	pays := repositories.NewPaymentRepository(store)
	require.NoError(t, pays.Create(models.Payment{
		ID: "PAY001", PONumber: "PO001", ItemCode: "ITM001", SupplierID: "SUP001",
		TotalPrice: "210.00", Date: "2026-08-10 09:00:00", VerifiedBy: "OW005", Status: models.PaymentPaid,
	}))
	require.NoError(t, pays.Create(models.Payment{
		ID: "PAY002", PONumber: "PO002", ItemCode: "ITM002", SupplierID: "SUP001",
		TotalPrice: "75.00", Date: "2026-08-12 14:30:00", VerifiedBy: "OW005", Status: models.PaymentPending,
	}))

	sales := repositories.NewSaleRepository(store)
	require.NoError(t, sales.Create(models.Sale{ID: "SD001", ItemCode: "ITM001", ItemName: "Jasmine Rice 5kg", Quantity: 4, Date: "2026-08-11", SalesManagerID: "OW002"}))
	require.NoError(t, sales.Create(models.Sale{ID: "SD002", ItemCode: "ITM002", ItemName: "Cooking Oil 2L", Quantity: 10, Date: "2026-07-01", SalesManagerID: "OW002"}))
}

func TestSummary(t *testing.T) {
	svc, store := newReportEnv(t)
	seedReportData(t, store)

	sum := svc.Summary()
	assert.Equal(t, 2, sum.Payments)
	assert.Equal(t, 1, sum.PendingPayments)
	assert.InDelta(t, 210.00, sum.TotalPaid, 0.001)
	assert.Equal(t, 2, sum.Sales)
	// 4 x 28.50 + 10 x 10.00
	assert.InDelta(t, 214.00, sum.SalesAmount, 0.001)
	assert.Equal(t, 2, sum.Items)
	assert.Equal(t, 125, sum.TotalStock)
	assert.Equal(t, 1, sum.LowStockItems)
}

func TestResolveRange(t *testing.T) {
	// a Wednesday
	now := time.Date(2026, 8, 12, 15, 0, 0, 0, time.UTC)

	r, err := ResolveRange("today", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, 12, r.From.Day())
	assert.True(t, r.contains(now))

	r, err = ResolveRange("week", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, r.From.Weekday())
	assert.Equal(t, 10, r.From.Day())

	r, err = ResolveRange("month", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, 1, r.From.Day())

	r, err = ResolveRange("custom", "2026-08-01", "2026-08-15", now)
	require.NoError(t, err)
	assert.True(t, r.contains(time.Date(2026, 8, 15, 23, 0, 0, 0, time.UTC)))
	assert.False(t, r.contains(time.Date(2026, 8, 16, 0, 30, 0, 0, time.UTC)))

	_, err = ResolveRange("custom", "bad", "2026-08-15", now)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = ResolveRange("fortnight", "", "", now)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestExportFinancial(t *testing.T) {
	svc, store := newReportEnv(t)
	seedReportData(t, store)

	r, err := ResolveRange("custom", "2026-08-01", "2026-08-31", time.Now())
	require.NoError(t, err)
	path, err := svc.ExportFinancial("OW004", r)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)

	assert.Contains(t, out, "Omega Wholesale Sdn Bhd (OWSB)")
	assert.Contains(t, out, "FINANCIAL REPORT")
	assert.Contains(t, out, "Generated by: OW004")
	assert.Contains(t, out, "Total Payments: 2")
	assert.Contains(t, out, "Total Paid: RM 210.00")
	assert.Contains(t, out, "PAY001")
	assert.Contains(t, out, "PAY002")
	// SD002 falls outside the range
	assert.Contains(t, out, "SD001")
	assert.NotContains(t, out, "SD002")
	assert.Contains(t, out, "Total Sales: 1")
	assert.Contains(t, out, "Grand Total (Paid + Sales): RM 324.00")
	assert.Contains(t, out, "End of Report")
}

func TestExportFinancialIncludesDateOnlyPayments(t *testing.T) {
	svc, store := newReportEnv(t)
	pays := repositories.NewPaymentRepository(store)
	require.NoError(t, pays.Create(models.Payment{
		ID: "PAY001", PONumber: "PO001", ItemCode: "ITM001", SupplierID: "SUP001",
		TotalPrice: "210.00", Date: "2026-08-10 09:00:00", VerifiedBy: "OW005", Status: models.PaymentPaid,
	}))
	require.NoError(t, pays.Create(models.Payment{
		ID: "PAY002", PONumber: "PO002", ItemCode: "ITM002", SupplierID: "SUP001",
		TotalPrice: "75.00", Date: "2026-08-12", VerifiedBy: "OW005", Status: models.PaymentPending,
	}))

	r, err := ResolveRange("custom", "2026-08-01", "2026-08-31", time.Now())
	require.NoError(t, err)
	path, err := svc.ExportFinancial("OW004", r)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)

	assert.Contains(t, out, "PAY001")
	assert.Contains(t, out, "PAY002")
	assert.Contains(t, out, "Total Payments: 2")
}

func TestExportFinancialEmptyRange(t *testing.T) {
	svc, store := newReportEnv(t)
	seedReportData(t, store)

	r, err := ResolveRange("custom", "2020-01-01", "2020-01-31", time.Now())
	require.NoError(t, err)
	path, err := svc.ExportFinancial("OW004", r)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "(None)")
	assert.Contains(t, string(raw), "Grand Total (Paid + Sales): RM 0.00")
}

func TestStockBuckets(t *testing.T) {
	svc, store := newReportEnv(t)
	items := repositories.NewItemRepository(store)
	for _, it := range []models.Item{
		{Code: "ITM003", Name: "C", Stock: 55},
		{Code: "ITM001", Name: "A", Stock: 3},
		{Code: "ITM002", Name: "B", Stock: 15},
		{Code: "ITM004", Name: "D", Stock: 30},
		{Code: "ITM005", Name: "E", Stock: 100},
	} {
		require.NoError(t, items.Create(it))
	}

	buckets := svc.StockBuckets()
	require.Len(t, buckets, 5)
	assert.Equal(t, "Low Stock (0-9)", buckets[0].Label)
	require.Len(t, buckets[0].Items, 1)
	assert.Equal(t, "ITM001", buckets[0].Items[0].Code)
	require.Len(t, buckets[1].Items, 1)
	assert.Equal(t, "ITM002", buckets[1].Items[0].Code)
	require.Len(t, buckets[2].Items, 1)
	require.Len(t, buckets[3].Items, 1)
	require.Len(t, buckets[4].Items, 1)
	assert.Equal(t, "ITM005", buckets[4].Items[0].Code)
}

func TestExportStock(t *testing.T) {
	svc, store := newReportEnv(t)
	seedReportData(t, store)

	path, err := svc.ExportStock("OW001")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)

	assert.Contains(t, out, "STOCK REPORT")
	assert.Contains(t, out, "Total Items: 2")
	assert.Contains(t, out, "Total Stock: 125")
	assert.Contains(t, out, "Low Stock (0-9)")
	assert.Contains(t, out, "Stock 100+")
	assert.Contains(t, out, "ITM001")
	assert.Contains(t, out, "End of Report")
}

func TestStockWorkbook(t *testing.T) {
	svc, store := newReportEnv(t)
	seedReportData(t, store)

	f, err := svc.StockWorkbook()
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Stock", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Item Code", got)

	got, err = f.GetCellValue("Stock", "A2")
	require.NoError(t, err)
	assert.Equal(t, "ITM001", got)

	got, err = f.GetCellValue("Stock", "I2")
	require.NoError(t, err)
	assert.Equal(t, "Low Stock (0-9)", got)
}
