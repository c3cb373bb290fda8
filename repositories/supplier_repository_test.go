package repositories

import (
	"testing"

	"owsb-app/database"
	"owsb-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierRoundTripWithCommas(t *testing.T) {
	repo := NewSupplierRepository(database.NewStore(t.TempDir()))
	in := models.Supplier{
		ID: "SUP001", Name: "Tan Trading, Sdn Bhd", Phone: "03-1234567",
		Region: "Selangor", Rating: "4", Specialty1: "Rice", Specialty2: "Oil",
		Email: "tan@supplier.my", BankInfo: "Maybank, 1234-5678",
		LeadTime: "3", Active: true, Notes: `prefers "morning" deliveries`,
	}
	require.NoError(t, repo.Create(in))

	out, err := repo.Get("SUP001")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSupplierExists(t *testing.T) {
	repo := NewSupplierRepository(database.NewStore(t.TempDir()))
	require.NoError(t, repo.Create(models.Supplier{ID: "SUP001", Name: "Tan Trading", Active: true}))

	assert.True(t, repo.Exists("SUP001"))
	assert.False(t, repo.Exists("SUP999"))
}

func TestPaymentMarkPaid(t *testing.T) {
	repo := NewPaymentRepository(database.NewStore(t.TempDir()))
	require.NoError(t, repo.Create(models.Payment{
		ID: "PAY001", PONumber: "PO001", ItemCode: "ITM001", SupplierID: "SUP001",
		TotalPrice: "210.00", Date: "2026-08-10 09:00:00", Status: models.PaymentPending,
	}))

	changed, err := repo.MarkPaid("PAY001")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.MarkPaid("PAY001")
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = repo.MarkPaid("PAY999")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
