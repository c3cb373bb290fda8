package models

import "strconv"

// Payment is one row of payments_data.txt. Supplier details are copied in at
// verification time so the row stays complete even if the supplier record
// is later edited or removed.
type Payment struct {
	ID            string        `json:"payment_id"`
	PONumber      string        `json:"po_number"`
	ItemCode      string        `json:"item_code"`
	SupplierID    string        `json:"supplier_id"`
	TotalPrice    string        `json:"total_price"`
	Date          string        `json:"date"`
	VerifiedBy    string        `json:"verified_by"`
	SupplierName  string        `json:"supplier_name"`
	SupplierPhone string        `json:"supplier_phone"`
	SupplierEmail string        `json:"supplier_email"`
	SupplierBank  string        `json:"supplier_bank"`
	Status        PaymentStatus `json:"status"`
}

func (p Payment) TotalPriceValue() float64 {
	v, err := strconv.ParseFloat(p.TotalPrice, 64)
	if err != nil {
		return 0
	}
	return v
}

func (p Payment) Record() []string {
	return []string{
		p.ID, p.PONumber, p.ItemCode, p.SupplierID, p.TotalPrice, p.Date,
		p.VerifiedBy, p.SupplierName, p.SupplierPhone, p.SupplierEmail,
		p.SupplierBank, string(p.Status),
	}
}

func PaymentFromRecord(parts []string) (Payment, bool) {
	if len(parts) < 12 {
		return Payment{}, false
	}
	status, ok := ParsePaymentStatus(parts[11])
	if !ok {
		status = PaymentStatus(parts[11])
	}
	return Payment{
		ID:            parts[0],
		PONumber:      parts[1],
		ItemCode:      parts[2],
		SupplierID:    parts[3],
		TotalPrice:    parts[4],
		Date:          parts[5],
		VerifiedBy:    parts[6],
		SupplierName:  parts[7],
		SupplierPhone: parts[8],
		SupplierEmail: parts[9],
		SupplierBank:  parts[10],
		Status:        status,
	}, true
}
