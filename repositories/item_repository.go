package repositories

import (
	"fmt"
	"strconv"

	"owsb-app/controllers/idgen"
	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/utils"
)

type ItemRepository struct {
	store *database.Store
}

func NewItemRepository(store *database.Store) *ItemRepository {
	return &ItemRepository{store}
}

func (r *ItemRepository) List() []models.Item {
	var items []models.Item
	for _, line := range r.store.ReadLines(database.ItemsFile) {
		if it, ok := models.ItemFromRecord(utils.SplitRow(line)); ok {
			items = append(items, it)
		}
	}
	return items
}

func (r *ItemRepository) Get(code string) (models.Item, error) {
	for _, it := range r.List() {
		if it.Code == code {
			return it, nil
		}
	}
	return models.Item{}, fmt.Errorf("item %s: %w", code, models.ErrNotFound)
}

func (r *ItemRepository) LowStock() []models.Item {
	var items []models.Item
	for _, it := range r.List() {
		if it.LowStock() {
			items = append(items, it)
		}
	}
	return items
}

func (r *ItemRepository) Create(it models.Item) error {
	return r.store.AppendLine(database.ItemsFile, utils.JoinRow(it.Record()))
}

// CreateNext mints the next ITM code and appends the row under one file lock.
func (r *ItemRepository) CreateNext(it models.Item) (models.Item, error) {
	_, err := r.store.Update(database.ItemsFile, func(lines []string) ([]string, bool) {
		var ids []string
		for _, line := range lines {
			ids = append(ids, utils.SplitRow(line)[0])
		}
		it.Code = idgen.NextSequential(ids, idgen.PrefixItem, 3)
		return append(lines, utils.JoinRow(it.Record())), true
	})
	if err != nil {
		return models.Item{}, err
	}
	return it, nil
}

func (r *ItemRepository) Update(it models.Item) error {
	changed, err := r.store.Update(database.ItemsFile, func(lines []string) ([]string, bool) {
		updated := false
		for i, line := range lines {
			if utils.SplitRow(line)[0] == it.Code {
				lines[i] = utils.JoinRow(it.Record())
				updated = true
			}
		}
		return lines, updated
	})
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("item %s: %w", it.Code, models.ErrNotFound)
	}
	return nil
}

func (r *ItemRepository) Delete(code string) error {
	changed, err := r.store.Update(database.ItemsFile, func(lines []string) ([]string, bool) {
		var kept []string
		removed := false
		for _, line := range lines {
			if utils.SplitRow(line)[0] == code {
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
		return fmt.Errorf("item %s: %w", code, models.ErrNotFound)
	}
	return nil
}

// AdjustStock adds delta to the stock column under the file lock, so two
// concurrent adjustments can never lose an update. Negative deltas fail
// instead of driving stock below zero.
func (r *ItemRepository) AdjustStock(code string, delta int) (models.Item, error) {
	var adjusted models.Item
	var conflict error
	changed, err := r.store.Update(database.ItemsFile, func(lines []string) ([]string, bool) {
		for i, line := range lines {
			parts := utils.SplitRow(line)
			if parts[0] != code || len(parts) < 4 {
				continue
			}
			stock, _ := strconv.Atoi(parts[3])
			next := stock + delta
			if next < 0 {
				conflict = fmt.Errorf("item %s has %d in stock: %w", code, stock, models.ErrInsufficientStock)
				return lines, false
			}
			parts[3] = strconv.Itoa(next)
			lines[i] = utils.JoinRow(parts)
			adjusted, _ = models.ItemFromRecord(parts)
			return lines, true
		}
		return lines, false
	})
	if err != nil {
		return models.Item{}, err
	}
	if conflict != nil {
		return models.Item{}, conflict
	}
	if !changed {
		return models.Item{}, fmt.Errorf("item %s: %w", code, models.ErrNotFound)
	}
	return adjusted, nil
}
