package repositories

import (
	"time"

	"owsb-app/controllers/idgen"
	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/types"
	"owsb-app/utils"
)

// HistoryRepository appends to the audit trail. Rows are never updated or
// removed.
type HistoryRepository struct {
	store *database.Store
}

func NewHistoryRepository(store *database.Store) *HistoryRepository {
	return &HistoryRepository{store}
}

// Insert records one lifecycle transition.
func (r *HistoryRepository) Insert(refNo, status, txType, detail, actor string) error {
	h := models.TransactionHistory{
		ID:        types.SnowflakeID(idgen.GenerateID()),
		RefNo:     refNo,
		Status:    status,
		Type:      txType,
		Detail:    detail,
		Actor:     actor,
		CreatedAt: time.Now().Format("2006-01-02 15:04:05"),
	}
	return r.store.AppendLine(database.HistoryFile, utils.JoinQuotedRow(h.Record()))
}

func (r *HistoryRepository) List() []models.TransactionHistory {
	var entries []models.TransactionHistory
	for _, line := range r.store.ReadLines(database.HistoryFile) {
		if h, ok := models.TransactionHistoryFromRecord(utils.SplitQuotedRow(line)); ok {
			entries = append(entries, h)
		}
	}
	return entries
}

// ListByRef returns the trail for one document, oldest first.
func (r *HistoryRepository) ListByRef(refNo string) []models.TransactionHistory {
	var entries []models.TransactionHistory
	for _, h := range r.List() {
		if h.RefNo == refNo {
			entries = append(entries, h)
		}
	}
	return entries
}
