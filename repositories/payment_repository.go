package repositories

import (
	"fmt"

	"owsb-app/controllers/idgen"
	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/utils"
)

type PaymentRepository struct {
	store *database.Store
}

func NewPaymentRepository(store *database.Store) *PaymentRepository {
	return &PaymentRepository{store}
}

func (r *PaymentRepository) List() []models.Payment {
	var payments []models.Payment
	for _, line := range r.store.ReadLines(database.PaymentsFile) {
		if p, ok := models.PaymentFromRecord(utils.SplitRow(line)); ok {
			payments = append(payments, p)
		}
	}
	return payments
}

func (r *PaymentRepository) Get(id string) (models.Payment, error) {
	for _, p := range r.List() {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Payment{}, fmt.Errorf("payment %s: %w", id, models.ErrNotFound)
}

func (r *PaymentRepository) Create(p models.Payment) error {
	return r.store.AppendLine(database.PaymentsFile, utils.JoinRow(p.Record()))
}

// CreateNext mints the next PAY id and appends the row under one file lock.
func (r *PaymentRepository) CreateNext(p models.Payment) (models.Payment, error) {
	_, err := r.store.Update(database.PaymentsFile, func(lines []string) ([]string, bool) {
		var ids []string
		for _, line := range lines {
			ids = append(ids, utils.SplitRow(line)[0])
		}
		p.ID = idgen.NextSequential(ids, idgen.PrefixPayment, 3)
		return append(lines, utils.JoinRow(p.Record())), true
	})
	if err != nil {
		return models.Payment{}, err
	}
	return p, nil
}

// MarkPaid settles a pending payment. Returns false when the payment is
// already paid, which callers treat as a no-op rather than an error.
func (r *PaymentRepository) MarkPaid(id string) (bool, error) {
	found := false
	changed, err := r.store.Update(database.PaymentsFile, func(lines []string) ([]string, bool) {
		for i, line := range lines {
			parts := utils.SplitRow(line)
			if len(parts) < 12 || parts[0] != id {
				continue
			}
			found = true
			if parts[11] == string(models.PaymentPaid) {
				return lines, false
			}
			parts[11] = string(models.PaymentPaid)
			lines[i] = utils.JoinRow(parts)
			return lines, true
		}
		return lines, false
	})
	if err != nil {
		return false, err
	}
	if !found {
		return false, fmt.Errorf("payment %s: %w", id, models.ErrNotFound)
	}
	return changed, nil
}
