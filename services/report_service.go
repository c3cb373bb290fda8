package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/repositories"

	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/slices"
)

// ReportService aggregates the data files for dashboards and writes the
// text and spreadsheet exports. It never mutates the data files.
type ReportService struct {
	financialDir string
	stockDir     string

	items    *repositories.ItemRepository
	sales    *repositories.SaleRepository
	payments *repositories.PaymentRepository
	reqs     *repositories.RequisitionRepository
	orders   *repositories.PurchaseOrderRepository
	users    *repositories.UserRepository
}

func NewReportService(store *database.Store, financialDir, stockDir string) *ReportService {
	return &ReportService{
		financialDir: financialDir,
		stockDir:     stockDir,
		items:        repositories.NewItemRepository(store),
		sales:        repositories.NewSaleRepository(store),
		payments:     repositories.NewPaymentRepository(store),
		reqs:         repositories.NewRequisitionRepository(store),
		orders:       repositories.NewPurchaseOrderRepository(store),
		users:        repositories.NewUserRepository(store),
	}
}

type Summary struct {
	Requisitions        int     `json:"requisitions"`
	PendingRequisitions int     `json:"pending_requisitions"`
	PurchaseOrders      int     `json:"purchase_orders"`
	IssuedOrders        int     `json:"issued_orders"`
	Payments            int     `json:"payments"`
	PendingPayments     int     `json:"pending_payments"`
	TotalPaid           float64 `json:"total_paid"`
	Sales               int     `json:"sales"`
	SalesAmount         float64 `json:"sales_amount"`
	Items               int     `json:"items"`
	TotalStock          int     `json:"total_stock"`
	LowStockItems       int     `json:"low_stock_items"`
}

func (s *ReportService) Summary() Summary {
	var sum Summary

	for _, pr := range s.reqs.List() {
		sum.Requisitions++
		if pr.Status == models.RequisitionPending {
			sum.PendingRequisitions++
		}
	}
	for _, po := range s.orders.List() {
		sum.PurchaseOrders++
		if po.Status == models.POIssued {
			sum.IssuedOrders++
		}
	}
	for _, p := range s.payments.List() {
		sum.Payments++
		switch p.Status {
		case models.PaymentPaid:
			sum.TotalPaid += p.TotalPriceValue()
		default:
			sum.PendingPayments++
		}
	}

	prices := s.unitPrices()
	for _, sale := range s.sales.List() {
		sum.Sales++
		sum.SalesAmount += prices[sale.ItemCode] * float64(sale.Quantity)
	}
	for _, it := range s.items.List() {
		sum.Items++
		sum.TotalStock += it.Stock
		if it.LowStock() {
			sum.LowStockItems++
		}
	}
	return sum
}

// unitPrices maps item code to selling price, zero for malformed prices.
func (s *ReportService) unitPrices() map[string]float64 {
	prices := make(map[string]float64)
	for _, it := range s.items.List() {
		v := 0.0
		fmt.Sscanf(it.UnitPrice, "%f", &v)
		prices[it.Code] = v
	}
	return prices
}

// DateRange is inclusive on both ends.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// ResolveRange turns a named range (today, week, month) or a custom
// from/to pair of YYYY-MM-DD dates into concrete bounds.
func ResolveRange(kind, from, to string, now time.Time) (DateRange, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24*time.Hour - time.Second)

	switch strings.ToLower(kind) {
	case "", "today":
		return DateRange{From: startOfDay, To: endOfDay}, nil
	case "week":
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return DateRange{From: startOfDay.AddDate(0, 0, 1-weekday), To: endOfDay}, nil
	case "month":
		return DateRange{From: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), To: endOfDay}, nil
	case "custom":
		f, err := time.Parse(dateLayout, from)
		if err != nil {
			return DateRange{}, fmt.Errorf("from must be YYYY-MM-DD: %w", models.ErrValidation)
		}
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return DateRange{}, fmt.Errorf("to must be YYYY-MM-DD: %w", models.ErrValidation)
		}
		return DateRange{From: f, To: t.Add(24*time.Hour - time.Second)}, nil
	}
	return DateRange{}, fmt.Errorf("unknown range %q: %w", kind, models.ErrValidation)
}

// ExportFinancial writes the financial report for the range and returns
// the file path.
func (s *ReportService) ExportFinancial(actorID string, r DateRange) (string, error) {
	var paid, pending []models.Payment
	totalPayments := 0
	totalPaid := 0.0
	for _, p := range s.payments.List() {
		// older rows carry a date without the time part
		d, err := time.Parse(datetimeLayout, p.Date)
		if err != nil {
			d, err = time.Parse(dateLayout, p.Date)
		}
		if err != nil || !r.contains(d) {
			continue
		}
		totalPayments++
		if p.Status == models.PaymentPaid {
			paid = append(paid, p)
			totalPaid += p.TotalPriceValue()
		} else {
			pending = append(pending, p)
		}
	}

	prices := s.unitPrices()
	type saleRow struct {
		models.Sale
		Amount float64
	}
	var salesRows []saleRow
	totalSalesAmount := 0.0
	for _, sale := range s.sales.List() {
		d, err := time.Parse(dateLayout, sale.Date)
		if err != nil || !r.contains(d) {
			continue
		}
		amount := prices[sale.ItemCode] * float64(sale.Quantity)
		totalSalesAmount += amount
		salesRows = append(salesRows, saleRow{Sale: sale, Amount: amount})
	}

	var sb strings.Builder
	writeBanner(&sb, "FINANCIAL REPORT", actorID, s.actorName(actorID))
	fmt.Fprintf(&sb, "Total Payments: %d\nTotal Paid: RM %.2f\n", totalPayments, totalPaid)
	fmt.Fprintf(&sb, "Total Sales: %d\nTotal Sales Amount: RM %.2f\n", len(salesRows), totalSalesAmount)
	sb.WriteString("\n")

	paymentSection := func(title string, list []models.Payment) {
		sb.WriteString("------------------------------\n")
		sb.WriteString(title + "\n")
		sb.WriteString("------------------------------\n")
		fmt.Fprintf(&sb, "%-10s %-10s %-10s %-10s %-10s %-20s %-8s\n", "PayID", "POID", "ItemCode", "SuppID", "Amount", "Date", "Status")
		for _, p := range list {
			fmt.Fprintf(&sb, "%-10s %-10s %-10s %-10s %-10s %-20s %-8s\n",
				p.ID, p.PONumber, p.ItemCode, p.SupplierID, p.TotalPrice, p.Date, p.Status)
		}
		if len(list) == 0 {
			sb.WriteString("(None)\n")
		}
		sb.WriteString("\n")
	}
	paymentSection("Paid Payments", paid)
	paymentSection("Pending Payments", pending)

	sb.WriteString("------------------------------\n")
	sb.WriteString("Sales\n")
	sb.WriteString("------------------------------\n")
	fmt.Fprintf(&sb, "%-10s %-10s %-18s %-8s %-12s %-10s %-10s\n", "SaleID", "ItemCode", "ItemName", "Qty", "Date", "ManagerID", "Amount")
	for _, row := range salesRows {
		fmt.Fprintf(&sb, "%-10s %-10s %-18s %-8d %-12s %-10s %-10.2f\n",
			row.ID, row.ItemCode, row.ItemName, row.Quantity, row.Date, row.SalesManagerID, row.Amount)
	}
	if len(salesRows) == 0 {
		sb.WriteString("(None)\n")
	}
	sb.WriteString("\n")
	sb.WriteString("==============================\n")
	fmt.Fprintf(&sb, "Grand Total (Paid + Sales): RM %.2f\n", totalPaid+totalSalesAmount)
	sb.WriteString("End of Report\n")

	name := "FinancialReport_" + time.Now().Format("20060102_150405") + ".txt"
	return s.writeReport(s.financialDir, name, sb.String())
}

// StockBucket groups items by stock level for the stock report.
type StockBucket struct {
	Label string        `json:"label"`
	Items []models.Item `json:"items"`
}

func (s *ReportService) StockBuckets() []StockBucket {
	buckets := []StockBucket{
		{Label: "Low Stock (0-9)"},
		{Label: "Stock 10-19"},
		{Label: "Stock 20-49"},
		{Label: "Stock 50-99"},
		{Label: "Stock 100+"},
	}
	items := s.items.List()
	slices.SortFunc(items, func(a, b models.Item) int {
		return strings.Compare(a.Code, b.Code)
	})
	for _, it := range items {
		buckets[bucketIndex(it.Stock)].Items = append(buckets[bucketIndex(it.Stock)].Items, it)
	}
	return buckets
}

func bucketIndex(stock int) int {
	switch {
	case stock < 10:
		return 0
	case stock < 20:
		return 1
	case stock < 50:
		return 2
	case stock < 100:
		return 3
	}
	return 4
}

// ExportStock writes the stock report and returns the file path.
func (s *ReportService) ExportStock(actorID string) (string, error) {
	totalItems := 0
	totalStock := 0
	for _, it := range s.items.List() {
		totalItems++
		totalStock += it.Stock
	}

	var sb strings.Builder
	writeBanner(&sb, "STOCK REPORT", actorID, s.actorName(actorID))
	fmt.Fprintf(&sb, "Total Items: %d\nTotal Stock: %d\n", totalItems, totalStock)
	sb.WriteString("\n")

	for _, bucket := range s.StockBuckets() {
		sb.WriteString("------------------------------\n")
		sb.WriteString(bucket.Label + "\n")
		sb.WriteString("------------------------------\n")
		fmt.Fprintf(&sb, "%-12s %-18s %-12s %-8s %-12s\n", "ItemCode", "ItemName", "SupplierID", "Stock", "ExpiryDate")
		for _, it := range bucket.Items {
			fmt.Fprintf(&sb, "%-12s %-18s %-12s %-8d %-12s\n",
				it.Code, it.Name, it.SupplierID, it.Stock, it.ExpiryDate)
		}
		if len(bucket.Items) == 0 {
			sb.WriteString("(None)\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("==============================\n")
	sb.WriteString("End of Report\n")

	name := "StockReport_" + time.Now().Format("20060102_150405") + ".txt"
	return s.writeReport(s.stockDir, name, sb.String())
}

// StockWorkbook builds the stock list as a spreadsheet, one row per item
// with its bucket label.
func (s *ReportService) StockWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Stock"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Item Code", "Item Name", "Supplier ID", "Stock", "Unit Price", "Purchase Price", "Category", "Expiry Date", "Bucket"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	buckets := s.StockBuckets()
	row := 2
	for _, bucket := range buckets {
		for _, it := range bucket.Items {
			values := []interface{}{it.Code, it.Name, it.SupplierID, it.Stock, it.UnitPrice, it.PurchasePrice, it.Category, it.ExpiryDate, bucket.Label}
			for i, v := range values {
				cell, err := excelize.CoordinatesToCellName(i+1, row)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, err
				}
			}
			row++
		}
	}
	return f, nil
}

func (s *ReportService) actorName(id string) string {
	if u, err := s.users.Get(id); err == nil {
		return u.Username
	}
	return ""
}

func writeBanner(sb *strings.Builder, title, userID, userName string) {
	sb.WriteString("==============================\n")
	sb.WriteString("   Omega Wholesale Sdn Bhd (OWSB)\n")
	sb.WriteString("==============================\n")
	switch title {
	case "STOCK REPORT":
		sb.WriteString("         " + title + "\n")
	default:
		sb.WriteString("      " + title + "\n")
	}
	sb.WriteString("==============================\n")
	sb.WriteString("Generated: " + time.Now().Format(datetimeLayout) + "\n")
	line := "Generated by: " + userID
	if userName != "" {
		line += " " + userName
	}
	sb.WriteString(line + "\n\n")
}

func (s *ReportService) writeReport(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
