package models

import "strconv"

// Item is one row of items_data.txt. Prices stay as stored text so a
// rewrite never reformats a value another tool wrote.
type Item struct {
	Code          string `json:"item_code"`
	Name          string `json:"item_name"`
	SupplierID    string `json:"supplier_id"`
	Stock         int    `json:"stock"`
	UnitPrice     string `json:"unit_price"`
	PurchasePrice string `json:"purchase_price"`
	Category      string `json:"category"`
	ExpiryDate    string `json:"expiry_date"`
	Remarks       string `json:"remarks"`
}

// LowStockThreshold marks items that should be raised on a requisition.
const LowStockThreshold = 20

func (i Item) LowStock() bool {
	return i.Stock < LowStockThreshold
}

// PurchasePriceValue parses the stored purchase price, zero when malformed.
func (i Item) PurchasePriceValue() float64 {
	v, err := strconv.ParseFloat(i.PurchasePrice, 64)
	if err != nil {
		return 0
	}
	return v
}

func (i Item) Record() []string {
	return []string{
		i.Code, i.Name, i.SupplierID, strconv.Itoa(i.Stock),
		i.UnitPrice, i.PurchasePrice, i.Category, i.ExpiryDate, i.Remarks,
	}
}

func ItemFromRecord(parts []string) (Item, bool) {
	if len(parts) < 9 {
		return Item{}, false
	}
	stock, _ := strconv.Atoi(parts[3])
	return Item{
		Code:          parts[0],
		Name:          parts[1],
		SupplierID:    parts[2],
		Stock:         stock,
		UnitPrice:     parts[4],
		PurchasePrice: parts[5],
		Category:      parts[6],
		ExpiryDate:    parts[7],
		Remarks:       parts[8],
	}, true
}
