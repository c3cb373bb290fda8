package models

import "strconv"

// Sale is one row of sales_data.txt.
type Sale struct {
	ID             string `json:"sale_id"`
	ItemCode       string `json:"item_code"`
	ItemName       string `json:"item_name"`
	Quantity       int    `json:"quantity"`
	Date           string `json:"date"`
	SalesManagerID string `json:"sales_manager_id"`
	Remarks        string `json:"remarks"`
}

func (s Sale) Record() []string {
	return []string{
		s.ID, s.ItemCode, s.ItemName, strconv.Itoa(s.Quantity),
		s.Date, s.SalesManagerID, s.Remarks,
	}
}

func SaleFromRecord(parts []string) (Sale, bool) {
	if len(parts) < 7 {
		return Sale{}, false
	}
	qty, _ := strconv.Atoi(parts[3])
	return Sale{
		ID:             parts[0],
		ItemCode:       parts[1],
		ItemName:       parts[2],
		Quantity:       qty,
		Date:           parts[4],
		SalesManagerID: parts[5],
		Remarks:        parts[6],
	}, true
}
