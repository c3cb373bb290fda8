package models

import "strings"

const (
	RoleAdministrator    = "Administrator"
	RoleSalesManager     = "Sales Manager"
	RolePurchaseManager  = "Purchase Manager"
	RoleInventoryManager = "Inventory Manager"
	RoleFinanceManager   = "Finance Manager"

	UserActive   = "Active"
	UserInactive = "Inactive"
)

var Roles = []string{
	RoleAdministrator,
	RoleSalesManager,
	RolePurchaseManager,
	RoleInventoryManager,
	RoleFinanceManager,
}

func ValidRole(role string) bool {
	for _, r := range Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

type User struct {
	ID             string `json:"user_id"`
	Username       string `json:"username"`
	Password       string `json:"password,omitempty"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	RegisteredDate string `json:"registered_date"`
}

func (u User) Record() []string {
	return []string{u.ID, u.Username, u.Password, u.Role, u.Status, u.RegisteredDate}
}

func UserFromRecord(parts []string) (User, bool) {
	if len(parts) < 6 {
		return User{}, false
	}
	return User{
		ID:             parts[0],
		Username:       parts[1],
		Password:       parts[2],
		Role:           parts[3],
		Status:         parts[4],
		RegisteredDate: parts[5],
	}, true
}
