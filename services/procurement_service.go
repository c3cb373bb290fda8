package services

import (
	"fmt"
	"log"
	"time"

	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/repositories"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04:05"

	defaultRequisitionQty = 50
	defaultLeadDays       = 3
	defaultPriority       = "Medium"
)

// ProcurementService drives the requisition, purchase order, payment and
// sales lifecycle over the flat file repositories. Every transition is
// recorded in the history trail.
type ProcurementService struct {
	items     *repositories.ItemRepository
	suppliers *repositories.SupplierRepository
	reqs      *repositories.RequisitionRepository
	orders    *repositories.PurchaseOrderRepository
	payments  *repositories.PaymentRepository
	sales     *repositories.SaleRepository
	history   *repositories.HistoryRepository
	notifier  *Notifier
}

func NewProcurementService(store *database.Store, notifier *Notifier) *ProcurementService {
	return &ProcurementService{
		items:     repositories.NewItemRepository(store),
		suppliers: repositories.NewSupplierRepository(store),
		reqs:      repositories.NewRequisitionRepository(store),
		orders:    repositories.NewPurchaseOrderRepository(store),
		payments:  repositories.NewPaymentRepository(store),
		sales:     repositories.NewSaleRepository(store),
		history:   repositories.NewHistoryRepository(store),
		notifier:  notifier,
	}
}

type RequisitionInput struct {
	ItemCode   string `json:"item_code" validate:"required"`
	SupplierID string `json:"supplier_id"`
	Quantity   *int   `json:"quantity"`
	RequiredBy string `json:"required_by"`
	Priority   string `json:"priority"`
	Remarks    string `json:"remarks"`
}

// CreateRequisition opens a Pending requisition for an item. One item can
// carry at most one undecided requisition at a time.
func (s *ProcurementService) CreateRequisition(actor string, in RequisitionInput) (models.Requisition, error) {
	item, err := s.items.Get(in.ItemCode)
	if err != nil {
		return models.Requisition{}, fmt.Errorf("item %s does not exist: %w", in.ItemCode, models.ErrValidation)
	}

	supplierID := in.SupplierID
	if supplierID == "" {
		supplierID = item.SupplierID
	}
	if !s.suppliers.Exists(supplierID) {
		return models.Requisition{}, fmt.Errorf("supplier %s does not exist: %w", supplierID, models.ErrValidation)
	}

	// omitted quantity defaults, an explicit zero or negative is refused
	qty := defaultRequisitionQty
	if in.Quantity != nil {
		qty = *in.Quantity
		if qty <= 0 {
			return models.Requisition{}, fmt.Errorf("quantity must be positive: %w", models.ErrValidation)
		}
	}

	requiredBy := in.RequiredBy
	if requiredBy == "" {
		requiredBy = time.Now().AddDate(0, 0, defaultLeadDays).Format(dateLayout)
	}
	if _, err := time.Parse(dateLayout, requiredBy); err != nil {
		return models.Requisition{}, fmt.Errorf("required by must be YYYY-MM-DD: %w", models.ErrValidation)
	}

	priority := in.Priority
	if priority == "" {
		priority = defaultPriority
	}

	pr, err := s.reqs.CreatePending(models.Requisition{
		ItemCode:       item.Code,
		ItemName:       item.Name,
		Quantity:       qty,
		RequiredBy:     requiredBy,
		SupplierID:     supplierID,
		SalesManagerID: actor,
		Priority:       priority,
		Remarks:        in.Remarks,
		Status:         models.RequisitionPending,
	})
	if err != nil {
		return models.Requisition{}, err
	}
	s.record(pr.ID, string(pr.Status), "PR", "Requisition created for "+item.Name, actor)
	return pr, nil
}

// EditRequisition revises quantity and required-by date while undecided.
func (s *ProcurementService) EditRequisition(actor, id string, qty int, requiredBy string) (models.Requisition, error) {
	pr, err := s.reqs.Get(id)
	if err != nil {
		return models.Requisition{}, err
	}
	if pr.Status != models.RequisitionPending {
		return models.Requisition{}, fmt.Errorf("requisition %s is %s: %w", id, pr.Status, models.ErrStateConflict)
	}
	if qty <= 0 {
		return models.Requisition{}, fmt.Errorf("quantity must be positive: %w", models.ErrValidation)
	}
	if _, err := time.Parse(dateLayout, requiredBy); err != nil {
		return models.Requisition{}, fmt.Errorf("required by must be YYYY-MM-DD: %w", models.ErrValidation)
	}

	pr.Quantity = qty
	pr.RequiredBy = requiredBy
	if err := s.reqs.Update(pr); err != nil {
		return models.Requisition{}, err
	}
	s.record(pr.ID, string(pr.Status), "PR", "Requisition revised", actor)
	return pr, nil
}

// DeleteRequisition removes a requisition that has not been turned into a
// purchase order yet.
func (s *ProcurementService) DeleteRequisition(actor, id string) error {
	pr, err := s.reqs.Get(id)
	if err != nil {
		return err
	}
	if _, err := s.orders.FindByRequisition(id); err == nil {
		return fmt.Errorf("requisition %s already has a purchase order: %w", id, models.ErrStateConflict)
	}
	if err := s.reqs.Delete(id); err != nil {
		return err
	}
	s.record(pr.ID, "Deleted", "PR", "Requisition deleted", actor)
	return nil
}

type DecisionInput struct {
	Status     string `json:"status" validate:"required"`
	Quantity   int    `json:"quantity"`
	SupplierID string `json:"supplier_id"`
	RequiredBy string `json:"required_by"`
}

// DecideRequisition applies a purchase manager decision. Approving raises
// an Issued purchase order priced off the item purchase price. A decision
// can be revisited while the order is still Issued: moving away from
// Approved withdraws the order, moving back re-uses the same order row so
// the PO number never changes.
func (s *ProcurementService) DecideRequisition(actor, id string, in DecisionInput) (models.Requisition, error) {
	newStatus, ok := models.ParseRequisitionStatus(in.Status)
	if !ok || newStatus == models.RequisitionPending {
		return models.Requisition{}, fmt.Errorf("invalid decision %q: %w", in.Status, models.ErrValidation)
	}

	pr, err := s.reqs.Get(id)
	if err != nil {
		return models.Requisition{}, err
	}

	if in.Quantity < 0 {
		return models.Requisition{}, fmt.Errorf("quantity must be positive: %w", models.ErrValidation)
	}
	if in.Quantity > 0 {
		pr.Quantity = in.Quantity
	}
	if in.SupplierID != "" {
		if !s.suppliers.Exists(in.SupplierID) {
			return models.Requisition{}, fmt.Errorf("supplier %s does not exist: %w", in.SupplierID, models.ErrValidation)
		}
		pr.SupplierID = in.SupplierID
	}
	if in.RequiredBy != "" {
		if _, err := time.Parse(dateLayout, in.RequiredBy); err != nil {
			return models.Requisition{}, fmt.Errorf("required by must be YYYY-MM-DD: %w", models.ErrValidation)
		}
		pr.RequiredBy = in.RequiredBy
	}

	wasApproved := pr.Status == models.RequisitionApproved
	willApprove := newStatus == models.RequisitionApproved

	switch {
	case wasApproved && !willApprove:
		// withdrawing an approval is only possible while the order sits Issued
		po, err := s.orders.FindByRequisition(id)
		if err == nil {
			if po.Status != models.POIssued {
				return models.Requisition{}, fmt.Errorf("purchase order %s is %s: %w", po.ID, po.Status, models.ErrStateConflict)
			}
			if err := s.orders.DeleteByRequisition(id); err != nil {
				return models.Requisition{}, err
			}
			s.record(po.ID, "Withdrawn", "PO", "Purchase order withdrawn, requisition "+string(newStatus), actor)
		}
	case willApprove:
		if _, err := s.ensureOrder(actor, pr); err != nil {
			return models.Requisition{}, err
		}
	}

	pr.Status = newStatus
	if err := s.reqs.Update(pr); err != nil {
		return models.Requisition{}, err
	}
	s.record(pr.ID, string(pr.Status), "PR", "Requisition "+string(newStatus), actor)
	return pr, nil
}

// ensureOrder raises the Issued order for an approved requisition, or
// refreshes the existing Issued row in place so there is never more than
// one order per requisition.
func (s *ProcurementService) ensureOrder(actor string, pr models.Requisition) (models.PurchaseOrder, error) {
	item, err := s.items.Get(pr.ItemCode)
	if err != nil {
		return models.PurchaseOrder{}, fmt.Errorf("item %s does not exist: %w", pr.ItemCode, models.ErrValidation)
	}

	po, created, err := s.orders.EnsureForRequisition(models.PurchaseOrder{
		RequisitionID: pr.ID,
		ItemCode:      pr.ItemCode,
		ItemName:      pr.ItemName,
		Quantity:      pr.Quantity,
		TotalPrice:    fmt.Sprintf("%.2f", item.PurchasePriceValue()*float64(pr.Quantity)),
		RequiredBy:    pr.RequiredBy,
		SupplierID:    pr.SupplierID,
		ManagerID:     actor,
		CreatedDate:   time.Now().Format(dateLayout),
		Status:        models.POIssued,
	})
	if err != nil {
		return models.PurchaseOrder{}, err
	}
	if created {
		s.record(po.ID, string(po.Status), "PO", "Purchase order issued for "+pr.ID, actor)
		s.notifier.POIssued(po)
	} else {
		s.record(po.ID, string(po.Status), "PO", "Purchase order reissued for "+pr.ID, actor)
	}
	return po, nil
}

type OrderDecisionInput struct {
	Status     string `json:"status" validate:"required"`
	Quantity   int    `json:"quantity"`
	SupplierID string `json:"supplier_id"`
}

// DecidePurchaseOrder is the finance approval gate. A revised quantity
// re-derives the total from the item purchase price.
func (s *ProcurementService) DecidePurchaseOrder(actor, id string, in OrderDecisionInput) (models.PurchaseOrder, error) {
	newStatus, ok := models.ParsePurchaseOrderStatus(in.Status)
	if !ok || (newStatus != models.POApproved && newStatus != models.PORejected) {
		return models.PurchaseOrder{}, fmt.Errorf("invalid decision %q: %w", in.Status, models.ErrValidation)
	}

	po, err := s.orders.Get(id)
	if err != nil {
		return models.PurchaseOrder{}, err
	}
	if po.Status != models.POIssued {
		return models.PurchaseOrder{}, fmt.Errorf("purchase order %s is %s: %w", id, po.Status, models.ErrStateConflict)
	}

	if in.Quantity < 0 {
		return models.PurchaseOrder{}, fmt.Errorf("quantity must be positive: %w", models.ErrValidation)
	}
	if in.Quantity > 0 && in.Quantity != po.Quantity {
		item, err := s.items.Get(po.ItemCode)
		if err != nil {
			return models.PurchaseOrder{}, fmt.Errorf("item %s does not exist: %w", po.ItemCode, models.ErrValidation)
		}
		po.Quantity = in.Quantity
		po.TotalPrice = fmt.Sprintf("%.2f", item.PurchasePriceValue()*float64(in.Quantity))
	}
	if in.SupplierID != "" {
		if !s.suppliers.Exists(in.SupplierID) {
			return models.PurchaseOrder{}, fmt.Errorf("supplier %s does not exist: %w", in.SupplierID, models.ErrValidation)
		}
		po.SupplierID = in.SupplierID
	}

	po.Status = newStatus
	if err := s.orders.Update(po); err != nil {
		return models.PurchaseOrder{}, err
	}
	s.record(po.ID, string(po.Status), "PO", "Purchase order "+string(newStatus), actor)
	return po, nil
}

// MarkDelivered receives the goods of an approved order into stock.
func (s *ProcurementService) MarkDelivered(actor, id string) (models.PurchaseOrder, error) {
	po, err := s.orders.Get(id)
	if err != nil {
		return models.PurchaseOrder{}, err
	}
	if po.Status != models.POApproved {
		return models.PurchaseOrder{}, fmt.Errorf("purchase order %s is %s: %w", id, po.Status, models.ErrStateConflict)
	}

	po.Status = models.PODelivered
	if err := s.orders.Update(po); err != nil {
		return models.PurchaseOrder{}, err
	}
	if _, err := s.items.AdjustStock(po.ItemCode, po.Quantity); err != nil {
		// the order row is already Delivered, keep going but leave a trace
		log.Printf("stock update for %s after delivery of %s: %v", po.ItemCode, po.ID, err)
	}
	s.record(po.ID, string(po.Status), "PO", fmt.Sprintf("Delivery received, stock +%d %s", po.Quantity, po.ItemCode), actor)
	return po, nil
}

// VerifyDelivery confirms a delivered order and opens the payment with the
// supplier details snapshotted at this moment.
func (s *ProcurementService) VerifyDelivery(actor, id string) (models.Payment, error) {
	po, err := s.orders.Get(id)
	if err != nil {
		return models.Payment{}, err
	}
	if po.Status != models.PODelivered {
		return models.Payment{}, fmt.Errorf("purchase order %s is %s: %w", id, po.Status, models.ErrStateConflict)
	}

	po.Status = models.POVerified
	if err := s.orders.Update(po); err != nil {
		return models.Payment{}, err
	}

	payment := models.Payment{
		PONumber:   po.ID,
		ItemCode:   po.ItemCode,
		SupplierID: po.SupplierID,
		TotalPrice: po.TotalPrice,
		Date:       time.Now().Format(datetimeLayout),
		VerifiedBy: actor,
		Status:     models.PaymentPending,
	}
	if supplier, err := s.suppliers.Get(po.SupplierID); err == nil {
		payment.SupplierName = supplier.Name
		payment.SupplierPhone = supplier.Phone
		payment.SupplierEmail = supplier.Email
		payment.SupplierBank = supplier.BankInfo
	}
	payment, err = s.payments.CreateNext(payment)
	if err != nil {
		return models.Payment{}, err
	}

	s.record(po.ID, string(po.Status), "PO", "Delivery verified", actor)
	s.record(payment.ID, string(payment.Status), "PAYMENT", "Payment opened for "+po.ID, actor)
	s.notifier.PaymentCreated(payment)
	return payment, nil
}

// MarkPaid settles a payment. Paying an already settled payment reports
// false and changes nothing.
func (s *ProcurementService) MarkPaid(actor, id string) (bool, error) {
	changed, err := s.payments.MarkPaid(id)
	if err != nil {
		return false, err
	}
	if changed {
		s.record(id, string(models.PaymentPaid), "PAYMENT", "Payment settled", actor)
	}
	return changed, nil
}

type SaleInput struct {
	ItemCode string `json:"item_code" validate:"required"`
	Quantity int    `json:"quantity" validate:"required"`
	Date     string `json:"date"`
	Remarks  string `json:"remarks"`
}

// RecordSale decrements stock and appends the sale row. Selling more than
// the current stock is refused.
func (s *ProcurementService) RecordSale(actor string, in SaleInput) (models.Sale, error) {
	if in.Quantity <= 0 {
		return models.Sale{}, fmt.Errorf("quantity must be positive: %w", models.ErrValidation)
	}
	item, err := s.items.Get(in.ItemCode)
	if err != nil {
		return models.Sale{}, fmt.Errorf("item %s does not exist: %w", in.ItemCode, models.ErrValidation)
	}

	date := in.Date
	if date == "" {
		date = time.Now().Format(dateLayout)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return models.Sale{}, fmt.Errorf("date must be YYYY-MM-DD: %w", models.ErrValidation)
	}

	if _, err := s.items.AdjustStock(item.Code, -in.Quantity); err != nil {
		return models.Sale{}, err
	}

	sale, err := s.sales.CreateNext(models.Sale{
		ItemCode:       item.Code,
		ItemName:       item.Name,
		Quantity:       in.Quantity,
		Date:           date,
		SalesManagerID: actor,
		Remarks:        in.Remarks,
	})
	if err != nil {
		return models.Sale{}, err
	}
	s.record(sale.ID, "Recorded", "SALE", fmt.Sprintf("Sold %d x %s", sale.Quantity, sale.ItemName), actor)
	return sale, nil
}

// EditSale revises a sale quantity, moving the stock difference.
func (s *ProcurementService) EditSale(actor, id string, qty int, remarks string) (models.Sale, error) {
	if qty <= 0 {
		return models.Sale{}, fmt.Errorf("quantity must be positive: %w", models.ErrValidation)
	}
	sale, err := s.sales.Get(id)
	if err != nil {
		return models.Sale{}, err
	}

	if delta := qty - sale.Quantity; delta != 0 {
		if _, err := s.items.AdjustStock(sale.ItemCode, -delta); err != nil {
			return models.Sale{}, err
		}
	}
	sale.Quantity = qty
	sale.Remarks = remarks
	if err := s.sales.Update(sale); err != nil {
		return models.Sale{}, err
	}
	s.record(sale.ID, "Revised", "SALE", "Sale revised", actor)
	return sale, nil
}

// DeleteSale removes a sale and returns its quantity to stock.
func (s *ProcurementService) DeleteSale(actor, id string) error {
	sale, err := s.sales.Get(id)
	if err != nil {
		return err
	}
	if err := s.sales.Delete(id); err != nil {
		return err
	}
	if _, err := s.items.AdjustStock(sale.ItemCode, sale.Quantity); err != nil {
		log.Printf("stock restore for %s after deleting %s: %v", sale.ItemCode, sale.ID, err)
	}
	s.record(sale.ID, "Deleted", "SALE", "Sale deleted", actor)
	return nil
}

func (s *ProcurementService) record(refNo, status, txType, detail, actor string) {
	if err := s.history.Insert(refNo, status, txType, detail, actor); err != nil {
		log.Println("Failed to insert transaction history:", err)
	}
}
