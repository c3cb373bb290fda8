package models

import "owsb-app/types"

// TransactionHistory is one row of history_data.txt, an append-only audit
// trail of every lifecycle transition.
type TransactionHistory struct {
	ID        types.SnowflakeID `json:"id"`
	RefNo     string            `json:"ref_no"`
	Status    string            `json:"status"`
	Type      string            `json:"type"`
	Detail    string            `json:"detail"`
	Actor     string            `json:"actor"`
	CreatedAt string            `json:"created_at"`
}

func (h TransactionHistory) Record() []string {
	return []string{h.ID.String(), h.RefNo, h.Status, h.Type, h.Detail, h.Actor, h.CreatedAt}
}

func TransactionHistoryFromRecord(parts []string) (TransactionHistory, bool) {
	if len(parts) < 7 {
		return TransactionHistory{}, false
	}
	return TransactionHistory{
		ID:        types.ParseSnowflakeID(parts[0]),
		RefNo:     parts[1],
		Status:    parts[2],
		Type:      parts[3],
		Detail:    parts[4],
		Actor:     parts[5],
		CreatedAt: parts[6],
	}, true
}
