package services

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"owsb-app/controllers/idgen"
	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	idgen.Init()
	os.Exit(m.Run())
}

func qty(n int) *int {
	return &n
}

type testEnv struct {
	svc     *ProcurementService
	items   *repositories.ItemRepository
	reqs    *repositories.RequisitionRepository
	orders  *repositories.PurchaseOrderRepository
	pays    *repositories.PaymentRepository
	history *repositories.HistoryRepository
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	store := database.NewStore(t.TempDir())

	suppliers := repositories.NewSupplierRepository(store)
	require.NoError(t, suppliers.Create(models.Supplier{
		ID: "SUP001", Name: "Tan Trading Sdn Bhd", Phone: "03-1234567",
		Region: "Selangor", Rating: "4", Email: "tan@supplier.my",
		BankInfo: "Maybank 1234", LeadTime: "3", Active: true,
	}))

	items := repositories.NewItemRepository(store)
	require.NoError(t, items.Create(models.Item{
		Code: "ITM001", Name: "Jasmine Rice 5kg", SupplierID: "SUP001",
		Stock: 15, UnitPrice: "28.50", PurchasePrice: "21.00", Category: "Grocery",
	}))

	return testEnv{
		svc:     NewProcurementService(store, NewNotifier()),
		items:   items,
		reqs:    repositories.NewRequisitionRepository(store),
		orders:  repositories.NewPurchaseOrderRepository(store),
		pays:    repositories.NewPaymentRepository(store),
		history: repositories.NewHistoryRepository(store),
	}
}

func TestProcurementHappyPath(t *testing.T) {
	env := newTestEnv(t)

	pr, err := env.svc.CreateRequisition("OW002", RequisitionInput{
		ItemCode: "ITM001", Quantity: qty(40), RequiredBy: "2026-09-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "PR001", pr.ID)
	assert.Equal(t, models.RequisitionPending, pr.Status)
	assert.Equal(t, "SUP001", pr.SupplierID)

	pr, err = env.svc.DecideRequisition("OW003", pr.ID, DecisionInput{Status: "Approved"})
	require.NoError(t, err)
	assert.Equal(t, models.RequisitionApproved, pr.Status)

	po, err := env.orders.FindByRequisition(pr.ID)
	require.NoError(t, err)
	assert.Equal(t, "PO001", po.ID)
	assert.Equal(t, models.POIssued, po.Status)
	assert.Equal(t, "840.00", po.TotalPrice)

	po, err = env.svc.DecidePurchaseOrder("OW004", po.ID, OrderDecisionInput{Status: "Approved"})
	require.NoError(t, err)
	assert.Equal(t, models.POApproved, po.Status)

	po, err = env.svc.MarkDelivered("OW005", po.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PODelivered, po.Status)

	item, err := env.items.Get("ITM001")
	require.NoError(t, err)
	assert.Equal(t, 55, item.Stock)

	payment, err := env.svc.VerifyDelivery("OW005", po.ID)
	require.NoError(t, err)
	assert.Equal(t, "PAY001", payment.ID)
	assert.Equal(t, models.PaymentPending, payment.Status)
	assert.Equal(t, "Tan Trading Sdn Bhd", payment.SupplierName)
	assert.Equal(t, "Maybank 1234", payment.SupplierBank)
	assert.Equal(t, po.TotalPrice, payment.TotalPrice)

	changed, err := env.svc.MarkPaid("OW004", payment.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = env.svc.MarkPaid("OW004", payment.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	settled, err := env.pays.Get(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, settled.Status)

	assert.NotEmpty(t, env.history.ListByRef(pr.ID))
	assert.NotEmpty(t, env.history.ListByRef(po.ID))
}

func TestCreateRequisitionDefaults(t *testing.T) {
	env := newTestEnv(t)

	pr, err := env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM001"})
	require.NoError(t, err)
	assert.Equal(t, 50, pr.Quantity)
	assert.Equal(t, "Medium", pr.Priority)
	assert.NotEmpty(t, pr.RequiredBy)
}

func TestCreateRequisitionRejectsExplicitZeroQuantity(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM001", Quantity: qty(0)})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM001", Quantity: qty(-5)})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateRequisitionRejectsUnknownItem(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM999"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateRequisitionRejectsSecondPending(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM001"})
	require.NoError(t, err)

	_, err = env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM001"})
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestConcurrentCreateRequisitionsMintDistinctIDs(t *testing.T) {
	env := newTestEnv(t)
	const n = 8
	for i := 2; i <= n; i++ {
		require.NoError(t, env.items.Create(models.Item{
			Code: fmt.Sprintf("ITM%03d", i), Name: fmt.Sprintf("Item %d", i),
			SupplierID: "SUP001", Stock: 15, UnitPrice: "10.00", PurchasePrice: "8.00",
		}))
	}

	var wg sync.WaitGroup
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			_, err := env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: code})
			assert.NoError(t, err)
		}(fmt.Sprintf("ITM%03d", i))
	}
	wg.Wait()

	seen := make(map[string]bool)
	reqs := env.reqs.List()
	require.Len(t, reqs, n)
	for _, pr := range reqs {
		assert.False(t, seen[pr.ID], "duplicate requisition id %s", pr.ID)
		seen[pr.ID] = true
	}
}

func TestConcurrentCreateSameItemKeepsOnePending(t *testing.T) {
	env := newTestEnv(t)

	var wg sync.WaitGroup
	var ok int32
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM001"}); err == nil {
				atomic.AddInt32(&ok, 1)
			} else {
				assert.ErrorIs(t, err, models.ErrDuplicate)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, ok)
	assert.Len(t, env.reqs.List(), 1)
}

func TestConcurrentApproveRaisesOneOrder(t *testing.T) {
	env := newTestEnv(t)

	pr, err := env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM001", Quantity: qty(10)})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.svc.DecideRequisition("OW003", pr.ID, DecisionInput{Status: "Approved"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count := 0
	for _, po := range env.orders.List() {
		if po.RequisitionID == pr.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestEditRequisitionOnlyWhilePending(t *testing.T) {
	env := newTestEnv(t)

	pr, err := env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM001"})
	require.NoError(t, err)

	pr, err = env.svc.EditRequisition("OW002", pr.ID, 30, "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, 30, pr.Quantity)

	_, err = env.svc.DecideRequisition("OW003", pr.ID, DecisionInput{Status: "Rejected"})
	require.NoError(t, err)

	_, err = env.svc.EditRequisition("OW002", pr.ID, 10, "2026-09-10")
	assert.ErrorIs(t, err, models.ErrStateConflict)
}

func TestDeleteRequisitionRefusedAfterOrder(t *testing.T) {
	env := newTestEnv(t)

	pr, err := env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM001"})
	require.NoError(t, err)
	_, err = env.svc.DecideRequisition("OW003", pr.ID, DecisionInput{Status: "Approved"})
	require.NoError(t, err)

	err = env.svc.DeleteRequisition("OW002", pr.ID)
	assert.ErrorIs(t, err, models.ErrStateConflict)
}

func TestRedecideWithdrawsAndReusesOrder(t *testing.T) {
	env := newTestEnv(t)

	pr, err := env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM001", Quantity: qty(10)})
	require.NoError(t, err)

	_, err = env.svc.DecideRequisition("OW003", pr.ID, DecisionInput{Status: "Approved"})
	require.NoError(t, err)
	first, err := env.orders.FindByRequisition(pr.ID)
	require.NoError(t, err)
	assert.Equal(t, models.POIssued, first.Status)

	// withdraw while the order is still Issued
	_, err = env.svc.DecideRequisition("OW003", pr.ID, DecisionInput{Status: "Rejected"})
	require.NoError(t, err)
	_, err = env.orders.FindByRequisition(pr.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// approving again raises a fresh order
	_, err = env.svc.DecideRequisition("OW003", pr.ID, DecisionInput{Status: "Approved", Quantity: 20})
	require.NoError(t, err)
	second, err := env.orders.FindByRequisition(pr.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, second.Quantity)
	assert.Equal(t, "420.00", second.TotalPrice)

	// re-approving an approved requisition refreshes the same order row
	_, err = env.svc.DecideRequisition("OW003", pr.ID, DecisionInput{Status: "Approved", Quantity: 25})
	require.NoError(t, err)
	third, err := env.orders.FindByRequisition(pr.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, third.ID)
	assert.Equal(t, 25, third.Quantity)
}

func TestWithdrawRefusedOnceOrderApproved(t *testing.T) {
	env := newTestEnv(t)

	pr, err := env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM001"})
	require.NoError(t, err)
	_, err = env.svc.DecideRequisition("OW003", pr.ID, DecisionInput{Status: "Approved"})
	require.NoError(t, err)

	po, err := env.orders.FindByRequisition(pr.ID)
	require.NoError(t, err)
	_, err = env.svc.DecidePurchaseOrder("OW004", po.ID, OrderDecisionInput{Status: "Approved"})
	require.NoError(t, err)

	_, err = env.svc.DecideRequisition("OW003", pr.ID, DecisionInput{Status: "Cancelled"})
	assert.ErrorIs(t, err, models.ErrStateConflict)
}

func TestDecidePurchaseOrderRevisedQuantityRepricesTotal(t *testing.T) {
	env := newTestEnv(t)

	pr, err := env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM001", Quantity: qty(10)})
	require.NoError(t, err)
	_, err = env.svc.DecideRequisition("OW003", pr.ID, DecisionInput{Status: "Approved"})
	require.NoError(t, err)
	po, err := env.orders.FindByRequisition(pr.ID)
	require.NoError(t, err)

	po, err = env.svc.DecidePurchaseOrder("OW004", po.ID, OrderDecisionInput{Status: "Approved", Quantity: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, po.Quantity)
	assert.Equal(t, "252.00", po.TotalPrice)
}

func TestMarkDeliveredRequiresApprovedOrder(t *testing.T) {
	env := newTestEnv(t)

	pr, err := env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM001"})
	require.NoError(t, err)
	_, err = env.svc.DecideRequisition("OW003", pr.ID, DecisionInput{Status: "Approved"})
	require.NoError(t, err)
	po, err := env.orders.FindByRequisition(pr.ID)
	require.NoError(t, err)

	_, err = env.svc.MarkDelivered("OW005", po.ID)
	assert.ErrorIs(t, err, models.ErrStateConflict)

	item, err := env.items.Get("ITM001")
	require.NoError(t, err)
	assert.Equal(t, 15, item.Stock)
}

func TestVerifyDeliveryRequiresDeliveredOrder(t *testing.T) {
	env := newTestEnv(t)

	pr, err := env.svc.CreateRequisition("OW002", RequisitionInput{ItemCode: "ITM001"})
	require.NoError(t, err)
	_, err = env.svc.DecideRequisition("OW003", pr.ID, DecisionInput{Status: "Approved"})
	require.NoError(t, err)
	po, err := env.orders.FindByRequisition(pr.ID)
	require.NoError(t, err)

	_, err = env.svc.VerifyDelivery("OW005", po.ID)
	assert.ErrorIs(t, err, models.ErrStateConflict)
}

func TestRecordSaleDecrementsStock(t *testing.T) {
	env := newTestEnv(t)

	sale, err := env.svc.RecordSale("OW002", SaleInput{ItemCode: "ITM001", Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, "SD001", sale.ID)

	item, err := env.items.Get("ITM001")
	require.NoError(t, err)
	assert.Equal(t, 10, item.Stock)
}

func TestRecordSaleRefusesOversell(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.RecordSale("OW002", SaleInput{ItemCode: "ITM001", Quantity: 16})
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	item, err := env.items.Get("ITM001")
	require.NoError(t, err)
	assert.Equal(t, 15, item.Stock)
}

func TestEditSaleMovesStockDifference(t *testing.T) {
	env := newTestEnv(t)

	sale, err := env.svc.RecordSale("OW002", SaleInput{ItemCode: "ITM001", Quantity: 5})
	require.NoError(t, err)

	_, err = env.svc.EditSale("OW002", sale.ID, 8, "customer added")
	require.NoError(t, err)
	item, err := env.items.Get("ITM001")
	require.NoError(t, err)
	assert.Equal(t, 7, item.Stock)

	_, err = env.svc.EditSale("OW002", sale.ID, 2, "partial return")
	require.NoError(t, err)
	item, err = env.items.Get("ITM001")
	require.NoError(t, err)
	assert.Equal(t, 13, item.Stock)
}

func TestDeleteSaleRestoresStock(t *testing.T) {
	env := newTestEnv(t)

	sale, err := env.svc.RecordSale("OW002", SaleInput{ItemCode: "ITM001", Quantity: 5})
	require.NoError(t, err)
	require.NoError(t, env.svc.DeleteSale("OW002", sale.ID))

	item, err := env.items.Get("ITM001")
	require.NoError(t, err)
	assert.Equal(t, 15, item.Stock)
}
