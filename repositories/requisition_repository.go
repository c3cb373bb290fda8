package repositories

import (
	"fmt"

	"owsb-app/controllers/idgen"
	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/utils"
)

type RequisitionRepository struct {
	store *database.Store
}

func NewRequisitionRepository(store *database.Store) *RequisitionRepository {
	return &RequisitionRepository{store}
}

func (r *RequisitionRepository) List() []models.Requisition {
	var reqs []models.Requisition
	for _, line := range r.store.ReadLines(database.RequisitionsFile) {
		if pr, ok := models.RequisitionFromRecord(utils.SplitRow(line)); ok {
			reqs = append(reqs, pr)
		}
	}
	return reqs
}

func (r *RequisitionRepository) Get(id string) (models.Requisition, error) {
	for _, pr := range r.List() {
		if pr.ID == id {
			return pr, nil
		}
	}
	return models.Requisition{}, fmt.Errorf("requisition %s: %w", id, models.ErrNotFound)
}

func (r *RequisitionRepository) Create(pr models.Requisition) error {
	return r.store.AppendLine(database.RequisitionsFile, utils.JoinRow(pr.Record()))
}

// CreatePending mints the next PR id and appends the row under one file
// lock, so two concurrent creates can neither share an id nor both slip
// past the one-pending-per-item rule. Decided requisitions do not block
// a new request.
func (r *RequisitionRepository) CreatePending(pr models.Requisition) (models.Requisition, error) {
	var duplicate error
	_, err := r.store.Update(database.RequisitionsFile, func(lines []string) ([]string, bool) {
		var ids []string
		for _, line := range lines {
			existing, ok := models.RequisitionFromRecord(utils.SplitRow(line))
			if !ok {
				continue
			}
			if existing.ItemCode == pr.ItemCode && existing.Status == models.RequisitionPending {
				duplicate = fmt.Errorf("item %s already has a pending requisition: %w", pr.ItemCode, models.ErrDuplicate)
				return lines, false
			}
			ids = append(ids, existing.ID)
		}
		pr.ID = idgen.NextSequential(ids, idgen.PrefixRequisition, 3)
		return append(lines, utils.JoinRow(pr.Record())), true
	})
	if err != nil {
		return models.Requisition{}, err
	}
	if duplicate != nil {
		return models.Requisition{}, duplicate
	}
	return pr, nil
}

func (r *RequisitionRepository) Update(pr models.Requisition) error {
	changed, err := r.store.Update(database.RequisitionsFile, func(lines []string) ([]string, bool) {
		updated := false
		for i, line := range lines {
			if utils.SplitRow(line)[0] == pr.ID {
				lines[i] = utils.JoinRow(pr.Record())
				updated = true
			}
		}
		return lines, updated
	})
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("requisition %s: %w", pr.ID, models.ErrNotFound)
	}
	return nil
}

func (r *RequisitionRepository) Delete(id string) error {
	changed, err := r.store.Update(database.RequisitionsFile, func(lines []string) ([]string, bool) {
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
		return fmt.Errorf("requisition %s: %w", id, models.ErrNotFound)
	}
	return nil
}
