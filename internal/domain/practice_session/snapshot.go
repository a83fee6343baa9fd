package practicesession

import (
	"time"

	"github.com/wordboard/backend/internal/domain/history"
	"github.com/wordboard/backend/internal/domain/questionbank"
)

// Snapshot is the serializable form of a Session. History is carried
// separately by the store and is left out of the JSON form.
type Snapshot struct {
	ID          string                `json:"id"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	Bank        []questionbank.Record `json:"bank"`
	Seen        []string              `json:"seen"`
	Current     *questionbank.Record  `json:"current,omitempty"`
	OptionOrder map[string][]string   `json:"option_order"`
	Filter      Filter                `json:"filter"`
	Prefs       Preferences           `json:"preferences"`
	History     []history.Attempt     `json:"-"`
}

// Snapshot copies the session into its serializable form.
func (s *Session) Snapshot() Snapshot {
	orders := make(map[string][]string, len(s.Options))
	for qid, opts := range s.Options {
		orders[qid] = clone(opts)
	}

	var current *questionbank.Record
	if s.Current != nil {
		c := *s.Current
		current = &c
	}

	return Snapshot{
		ID:          s.ID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		Bank:        s.Bank,
		Seen:        s.SeenIDs(),
		Current:     current,
		OptionOrder: orders,
		Filter:      s.Filter,
		Prefs:       s.Prefs,
		History:     s.History.Entries(),
	}
}

// Restore rebuilds a session from a snapshot.
func Restore(snap Snapshot) *Session {
	seen := make(map[string]struct{}, len(snap.Seen))
	for _, qid := range snap.Seen {
		seen[qid] = struct{}{}
	}

	orders := make(OptionOrders, len(snap.OptionOrder))
	for qid, opts := range snap.OptionOrder {
		orders[qid] = clone(opts)
	}

	return &Session{
		ID:        snap.ID,
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
		Bank:      snap.Bank,
		Seen:      seen,
		Current:   snap.Current,
		Options:   orders,
		History:   history.NewLedger(snap.History),
		Filter:    snap.Filter.Normalized(),
		Prefs:     snap.Prefs,
	}
}
