package repositories

import (
	"fmt"

	"owsb-app/controllers/idgen"
	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/utils"
)

type PurchaseOrderRepository struct {
	store *database.Store
}

func NewPurchaseOrderRepository(store *database.Store) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{store}
}

func (r *PurchaseOrderRepository) List() []models.PurchaseOrder {
	var orders []models.PurchaseOrder
	for _, line := range r.store.ReadLines(database.OrdersFile) {
		if po, ok := models.PurchaseOrderFromRecord(utils.SplitRow(line)); ok {
			orders = append(orders, po)
		}
	}
	return orders
}

func (r *PurchaseOrderRepository) Get(id string) (models.PurchaseOrder, error) {
	for _, po := range r.List() {
		if po.ID == id {
			return po, nil
		}
	}
	return models.PurchaseOrder{}, fmt.Errorf("purchase order %s: %w", id, models.ErrNotFound)
}

func (r *PurchaseOrderRepository) FindByRequisition(requisitionID string) (models.PurchaseOrder, error) {
	for _, po := range r.List() {
		if po.RequisitionID == requisitionID {
			return po, nil
		}
	}
	return models.PurchaseOrder{}, fmt.Errorf("purchase order for %s: %w", requisitionID, models.ErrNotFound)
}

func (r *PurchaseOrderRepository) Create(po models.PurchaseOrder) error {
	return r.store.AppendLine(database.OrdersFile, utils.JoinRow(po.Record()))
}

// EnsureForRequisition keeps the one-order-per-requisition rule under one
// file lock. An existing Issued row is refreshed in place, keeping its id
// and created date; any other status is a conflict. With no existing row
// the next PO id is minted and the row appended. Reports whether a new
// order was created.
func (r *PurchaseOrderRepository) EnsureForRequisition(po models.PurchaseOrder) (models.PurchaseOrder, bool, error) {
	created := false
	var conflict error
	_, err := r.store.Update(database.OrdersFile, func(lines []string) ([]string, bool) {
		var ids []string
		for i, line := range lines {
			existing, ok := models.PurchaseOrderFromRecord(utils.SplitRow(line))
			if !ok {
				continue
			}
			if existing.RequisitionID == po.RequisitionID {
				if existing.Status != models.POIssued {
					conflict = fmt.Errorf("purchase order %s is %s: %w", existing.ID, existing.Status, models.ErrStateConflict)
					return lines, false
				}
				existing.Quantity = po.Quantity
				existing.TotalPrice = po.TotalPrice
				existing.RequiredBy = po.RequiredBy
				existing.SupplierID = po.SupplierID
				existing.ManagerID = po.ManagerID
				po = existing
				lines[i] = utils.JoinRow(existing.Record())
				return lines, true
			}
			ids = append(ids, existing.ID)
		}
		po.ID = idgen.NextSequential(ids, idgen.PrefixPurchaseOrder, 3)
		created = true
		return append(lines, utils.JoinRow(po.Record())), true
	})
	if err != nil {
		return models.PurchaseOrder{}, false, err
	}
	if conflict != nil {
		return models.PurchaseOrder{}, false, conflict
	}
	return po, created, nil
}

func (r *PurchaseOrderRepository) Update(po models.PurchaseOrder) error {
	changed, err := r.store.Update(database.OrdersFile, func(lines []string) ([]string, bool) {
		updated := false
		for i, line := range lines {
			if utils.SplitRow(line)[0] == po.ID {
				lines[i] = utils.JoinRow(po.Record())
				updated = true
			}
		}
		return lines, updated
	})
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("purchase order %s: %w", po.ID, models.ErrNotFound)
	}
	return nil
}

// DeleteByRequisition drops the order raised for a requisition, used when
// a decision is edited away from Approved.
func (r *PurchaseOrderRepository) DeleteByRequisition(requisitionID string) error {
	_, err := r.store.Update(database.OrdersFile, func(lines []string) ([]string, bool) {
		var kept []string
		removed := false
		for _, line := range lines {
			parts := utils.SplitRow(line)
			if len(parts) > 1 && parts[1] == requisitionID {
				removed = true
				continue
			}
			kept = append(kept, line)
		}
		return kept, removed
	})
	return err
}
