package repositories

import (
	"testing"

	"owsb-app/database"
	"owsb-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItemRepo(t *testing.T) *ItemRepository {
	t.Helper()
	repo := NewItemRepository(database.NewStore(t.TempDir()))
	require.NoError(t, repo.Create(models.Item{
		Code: "ITM001", Name: "Jasmine Rice 5kg", SupplierID: "SUP001",
		Stock: 10, UnitPrice: "28.50", PurchasePrice: "21.00", Category: "Grocery",
	}))
	return repo
}

func TestAdjustStock(t *testing.T) {
	repo := newItemRepo(t)

	it, err := repo.AdjustStock("ITM001", 40)
	require.NoError(t, err)
	assert.Equal(t, 50, it.Stock)

	it, err = repo.AdjustStock("ITM001", -50)
	require.NoError(t, err)
	assert.Equal(t, 0, it.Stock)
}

func TestAdjustStockRefusesNegative(t *testing.T) {
	repo := newItemRepo(t)

	_, err := repo.AdjustStock("ITM001", -11)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	it, err := repo.Get("ITM001")
	require.NoError(t, err)
	assert.Equal(t, 10, it.Stock)
}

func TestAdjustStockUnknownItem(t *testing.T) {
	repo := newItemRepo(t)

	_, err := repo.AdjustStock("ITM999", 5)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestItemUpdatePreservesOtherRows(t *testing.T) {
	repo := newItemRepo(t)
	require.NoError(t, repo.Create(models.Item{
		Code: "ITM002", Name: "Cooking Oil 2L", SupplierID: "SUP001",
		Stock: 30, UnitPrice: "10.00", PurchasePrice: "7.50", Category: "Grocery",
	}))

	it, err := repo.Get("ITM001")
	require.NoError(t, err)
	it.Name = "Jasmine Rice 10kg"
	require.NoError(t, repo.Update(it))

	other, err := repo.Get("ITM002")
	require.NoError(t, err)
	assert.Equal(t, "Cooking Oil 2L", other.Name)

	updated, err := repo.Get("ITM001")
	require.NoError(t, err)
	assert.Equal(t, "Jasmine Rice 10kg", updated.Name)
}

func TestLowStock(t *testing.T) {
	repo := newItemRepo(t)
	require.NoError(t, repo.Create(models.Item{
		Code: "ITM002", Name: "Cooking Oil 2L", SupplierID: "SUP001",
		Stock: 120, UnitPrice: "10.00", PurchasePrice: "7.50",
	}))

	low := repo.LowStock()
	require.Len(t, low, 1)
	assert.Equal(t, "ITM001", low[0].Code)
}
