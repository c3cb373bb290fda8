package repositories

import (
	"testing"

	"owsb-app/database"
	"owsb-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo *UserRepository, u models.User) {
	t.Helper()
	require.NoError(t, repo.Create(u))
}

func TestAuthenticate(t *testing.T) {
	repo := NewUserRepository(database.NewStore(t.TempDir()))
	seedUser(t, repo, models.User{
		ID: "OW002", Username: "sara", Password: "pass123",
		Role: models.RoleSalesManager, Status: models.UserActive, RegisteredDate: "2026-01-10",
	})

	u, err := repo.Authenticate("sara", "pass123", "sales manager")
	require.NoError(t, err)
	assert.Equal(t, "OW002", u.ID)

	_, err = repo.Authenticate("sara", "wrong", models.RoleSalesManager)
	assert.Error(t, err)

	_, err = repo.Authenticate("sara", "pass123", models.RoleFinanceManager)
	assert.Error(t, err)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	repo := NewUserRepository(database.NewStore(t.TempDir()))
	seedUser(t, repo, models.User{
		ID: "OW003", Username: "lee", Password: "pass123",
		Role: models.RolePurchaseManager, Status: models.UserInactive,
	})

	_, err := repo.Authenticate("lee", "pass123", models.RolePurchaseManager)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inactive")
}

func TestDeactivateKeepsOtherColumns(t *testing.T) {
	repo := NewUserRepository(database.NewStore(t.TempDir()))
	seedUser(t, repo, models.User{
		ID: "OW002", Username: "sara", Password: "pass123",
		Role: models.RoleSalesManager, Status: models.UserActive, RegisteredDate: "2026-01-10",
	})

	require.NoError(t, repo.Deactivate("OW002"))

	u, err := repo.Get("OW002")
	require.NoError(t, err)
	assert.Equal(t, models.UserInactive, u.Status)
	assert.Equal(t, "sara", u.Username)
	assert.Equal(t, "2026-01-10", u.RegisteredDate)
}

func TestCreateNextMintsSequentialIDs(t *testing.T) {
	repo := NewUserRepository(database.NewStore(t.TempDir()))

	admin, err := repo.CreateNext(models.User{Username: "admin", Password: "x", Role: models.RoleAdministrator, Status: models.UserActive})
	require.NoError(t, err)
	assert.Equal(t, "OW001", admin.ID)

	sara, err := repo.CreateNext(models.User{Username: "sara", Password: "x", Role: models.RoleSalesManager, Status: models.UserActive})
	require.NoError(t, err)
	assert.Equal(t, "OW002", sara.ID)
}

func TestCreateNextRefusesTakenUsername(t *testing.T) {
	repo := NewUserRepository(database.NewStore(t.TempDir()))

	_, err := repo.CreateNext(models.User{Username: "sara", Password: "x", Role: models.RoleSalesManager, Status: models.UserActive})
	require.NoError(t, err)

	_, err = repo.CreateNext(models.User{Username: "SARA", Password: "y", Role: models.RoleFinanceManager, Status: models.UserActive})
	assert.ErrorIs(t, err, models.ErrDuplicate)
	assert.Len(t, repo.List(), 1)
}
