package models

import "strconv"

// PurchaseOrder is one row of purchase_order_data.txt. TotalPrice is kept
// as stored text, formatted to two decimals whenever this code derives it.
type PurchaseOrder struct {
	ID            string              `json:"po_number"`
	RequisitionID string              `json:"requisition_id"`
	ItemCode      string              `json:"item_code"`
	ItemName      string              `json:"item_name"`
	Quantity      int                 `json:"quantity"`
	TotalPrice    string              `json:"total_price"`
	RequiredBy    string              `json:"required_by"`
	SupplierID    string              `json:"supplier_id"`
	ManagerID     string              `json:"manager_id"`
	CreatedDate   string              `json:"created_date"`
	Status        PurchaseOrderStatus `json:"status"`
}

func (p PurchaseOrder) TotalPriceValue() float64 {
	v, err := strconv.ParseFloat(p.TotalPrice, 64)
	if err != nil {
		return 0
	}
	return v
}

func (p PurchaseOrder) Record() []string {
	return []string{
		p.ID, p.RequisitionID, p.ItemCode, p.ItemName, strconv.Itoa(p.Quantity),
		p.TotalPrice, p.RequiredBy, p.SupplierID, p.ManagerID, p.CreatedDate,
		string(p.Status),
	}
}

func PurchaseOrderFromRecord(parts []string) (PurchaseOrder, bool) {
	if len(parts) < 11 {
		return PurchaseOrder{}, false
	}
	qty, _ := strconv.Atoi(parts[4])
	status, ok := ParsePurchaseOrderStatus(parts[10])
	if !ok {
		status = PurchaseOrderStatus(parts[10])
	}
	return PurchaseOrder{
		ID:            parts[0],
		RequisitionID: parts[1],
		ItemCode:      parts[2],
		ItemName:      parts[3],
		Quantity:      qty,
		TotalPrice:    parts[5],
		RequiredBy:    parts[6],
		SupplierID:    parts[7],
		ManagerID:     parts[8],
		CreatedDate:   parts[9],
		Status:        status,
	}, true
}
