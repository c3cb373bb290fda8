package models

import "strconv"

// Requisition is one row of purchase_requisition_data.txt.
type Requisition struct {
	ID             string            `json:"pr_id"`
	ItemCode       string            `json:"item_code"`
	ItemName       string            `json:"item_name"`
	Quantity       int               `json:"quantity"`
	RequiredBy     string            `json:"required_by"`
	SupplierID     string            `json:"supplier_id"`
	SalesManagerID string            `json:"sales_manager_id"`
	Priority       string            `json:"priority"`
	Remarks        string            `json:"remarks"`
	Status         RequisitionStatus `json:"status"`
}

func (r Requisition) Record() []string {
	return []string{
		r.ID, r.ItemCode, r.ItemName, strconv.Itoa(r.Quantity), r.RequiredBy,
		r.SupplierID, r.SalesManagerID, r.Priority, r.Remarks, string(r.Status),
	}
}

func RequisitionFromRecord(parts []string) (Requisition, bool) {
	if len(parts) < 10 {
		return Requisition{}, false
	}
	qty, _ := strconv.Atoi(parts[3])
	status, ok := ParseRequisitionStatus(parts[9])
	if !ok {
		status = RequisitionStatus(parts[9])
	}
	return Requisition{
		ID:             parts[0],
		ItemCode:       parts[1],
		ItemName:       parts[2],
		Quantity:       qty,
		RequiredBy:     parts[4],
		SupplierID:     parts[5],
		SalesManagerID: parts[6],
		Priority:       parts[7],
		Remarks:        parts[8],
		Status:         status,
	}, true
}
