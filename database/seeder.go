// database/seeder.go
package database

import (
	"log"
	"time"

	"owsb-app/models"
	"owsb-app/utils"
)

func RunSeeders(store *Store) {
	SeedUserMaster(store)
}

// SeedUserMaster writes the bootstrap administrator when no user exists
// yet, otherwise the first login would be impossible.
func SeedUserMaster(store *Store) {
	if len(store.ReadLines(UsersFile)) > 0 {
		return
	}

	admin := models.User{
		ID:             "OW001",
		Username:       "admin",
		Password:       "admin123",
		Role:           models.RoleAdministrator,
		Status:         models.UserActive,
		RegisteredDate: time.Now().Format("2006-01-02"),
	}
	line := utils.JoinRow(admin.Record())
	if err := store.AppendLine(UsersFile, line); err != nil {
		log.Println("Failed to seed user:", admin.Username, err)
	} else {
		log.Println("Seeded user:", admin.Username)
	}
}
