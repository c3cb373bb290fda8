package repositories

import (
	"fmt"

	"owsb-app/controllers/idgen"
	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/utils"
)

// SupplierRepository is the only repository that reads and writes quoted
// rows, because supplier names and notes routinely contain commas.
type SupplierRepository struct {
	store *database.Store
}

func NewSupplierRepository(store *database.Store) *SupplierRepository {
	return &SupplierRepository{store}
}

func (r *SupplierRepository) List() []models.Supplier {
	var suppliers []models.Supplier
	for _, line := range r.store.ReadLines(database.SuppliersFile) {
		if s, ok := models.SupplierFromRecord(utils.SplitQuotedRow(line)); ok {
			suppliers = append(suppliers, s)
		}
	}
	return suppliers
}

func (r *SupplierRepository) Get(id string) (models.Supplier, error) {
	for _, s := range r.List() {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Supplier{}, fmt.Errorf("supplier %s: %w", id, models.ErrNotFound)
}

func (r *SupplierRepository) Exists(id string) bool {
	_, err := r.Get(id)
	return err == nil
}

func (r *SupplierRepository) Create(s models.Supplier) error {
	return r.store.AppendLine(database.SuppliersFile, utils.JoinQuotedRow(s.Record()))
}

// CreateNext mints the next SUP id and appends the row under one file lock.
func (r *SupplierRepository) CreateNext(s models.Supplier) (models.Supplier, error) {
	_, err := r.store.Update(database.SuppliersFile, func(lines []string) ([]string, bool) {
		var ids []string
		for _, line := range lines {
			ids = append(ids, utils.SplitQuotedRow(line)[0])
		}
		s.ID = idgen.NextSequential(ids, idgen.PrefixSupplier, 3)
		return append(lines, utils.JoinQuotedRow(s.Record())), true
	})
	if err != nil {
		return models.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierRepository) Update(s models.Supplier) error {
	changed, err := r.store.Update(database.SuppliersFile, func(lines []string) ([]string, bool) {
		updated := false
		for i, line := range lines {
			if utils.SplitQuotedRow(line)[0] == s.ID {
				lines[i] = utils.JoinQuotedRow(s.Record())
				updated = true
			}
		}
		return lines, updated
	})
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("supplier %s: %w", s.ID, models.ErrNotFound)
	}
	return nil
}

func (r *SupplierRepository) Delete(id string) error {
	changed, err := r.store.Update(database.SuppliersFile, func(lines []string) ([]string, bool) {
		var kept []string
		removed := false
		for _, line := range lines {
			if utils.SplitQuotedRow(line)[0] == id {
				removed = true
				continue
			}
			kept = append(kept, line)
		}
		return kept, removed
	})
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("supplier %s: %w", id, models.ErrNotFound)
	}
	return nil
}
