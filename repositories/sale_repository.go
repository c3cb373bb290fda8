package repositories

import (
	"fmt"

	"owsb-app/controllers/idgen"
	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/utils"
)

type SaleRepository struct {
	store *database.Store
}

func NewSaleRepository(store *database.Store) *SaleRepository {
	return &SaleRepository{store}
}

func (r *SaleRepository) List() []models.Sale {
	var sales []models.Sale
	for _, line := range r.store.ReadLines(database.SalesFile) {
		if s, ok := models.SaleFromRecord(utils.SplitRow(line)); ok {
			sales = append(sales, s)
		}
	}
	return sales
}

func (r *SaleRepository) Get(id string) (models.Sale, error) {
	for _, s := range r.List() {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Sale{}, fmt.Errorf("sale %s: %w", id, models.ErrNotFound)
}

func (r *SaleRepository) Create(s models.Sale) error {
	return r.store.AppendLine(database.SalesFile, utils.JoinRow(s.Record()))
}

// CreateNext mints the next SD id and appends the row under one file lock.
func (r *SaleRepository) CreateNext(s models.Sale) (models.Sale, error) {
	_, err := r.store.Update(database.SalesFile, func(lines []string) ([]string, bool) {
		var ids []string
		for _, line := range lines {
			ids = append(ids, utils.SplitRow(line)[0])
		}
		s.ID = idgen.NextSequential(ids, idgen.PrefixSale, 3)
		return append(lines, utils.JoinRow(s.Record())), true
	})
	if err != nil {
		return models.Sale{}, err
	}
	return s, nil
}

func (r *SaleRepository) Update(s models.Sale) error {
	changed, err := r.store.Update(database.SalesFile, func(lines []string) ([]string, bool) {
		updated := false
		for i, line := range lines {
			if utils.SplitRow(line)[0] == s.ID {
				lines[i] = utils.JoinRow(s.Record())
				updated = true
			}
		}
		return lines, updated
	})
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("sale %s: %w", s.ID, models.ErrNotFound)
	}
	return nil
}

func (r *SaleRepository) Delete(id string) error {
	changed, err := r.store.Update(database.SalesFile, func(lines []string) ([]string, bool) {
		var kept []string
		removed := false
		for _, line := range lines {
			if utils.SplitRow(line)[0] == id {
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
		return fmt.Errorf("sale %s: %w", id, models.ErrNotFound)
	}
	return nil
}
