package models

import "strconv"

// Supplier is one row of suppliers_data.txt. Free-text fields may contain
// commas, so this file is the only one written with quoting.
type Supplier struct {
	ID           string `json:"supplier_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Region       string `json:"region"`
	Rating       string `json:"rating"`
	Specialty1   string `json:"specialty_1"`
	Specialty2   string `json:"specialty_2"`
	Email        string `json:"email"`
	BankInfo     string `json:"bank_info"`
	LeadTime     string `json:"lead_time"`
	LastSupplied string `json:"last_supplied"`
	Active       bool   `json:"active"`
	MaxCapacity  string `json:"max_capacity"`
	Notes        string `json:"notes"`
}

func (s Supplier) Record() []string {
	return []string{
		s.ID, s.Name, s.Phone, s.Region, s.Rating, s.Specialty1, s.Specialty2,
		s.Email, s.BankInfo, s.LeadTime, s.LastSupplied,
		strconv.FormatBool(s.Active), s.MaxCapacity, s.Notes,
	}
}

func SupplierFromRecord(parts []string) (Supplier, bool) {
	if len(parts) < 14 {
		return Supplier{}, false
	}
	active, _ := strconv.ParseBool(parts[11])
	return Supplier{
		ID:           parts[0],
		Name:         parts[1],
		Phone:        parts[2],
		Region:       parts[3],
		Rating:       parts[4],
		Specialty1:   parts[5],
		Specialty2:   parts[6],
		Email:        parts[7],
		BankInfo:     parts[8],
		LeadTime:     parts[9],
		LastSupplied: parts[10],
		Active:       active,
		MaxCapacity:  parts[12],
		Notes:        parts[13],
	}, true
}
