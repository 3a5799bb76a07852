package ledger

import (
	"context"
	"time"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/apperror"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/movement"
	"github.com/nyaga-richard/tire-manager-sub000/pkg/logger"
)

// Report is the full reconciliation result handed to consumers: ordered
// entries plus the aggregate totals the printable report needs.
type Report struct {
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`

	Entries []Entry `json:"entries"`

	TotalEntries int `json:"totalEntries"`
	TotalQtyIn   int `json:"totalQuantityIn"`
	TotalQtyOut  int `json:"totalQuantityOut"`
	FinalClosing int `json:"finalClosingStock"`
}

// BuildReport computes aggregate totals over chronologically ordered entries.
func BuildReport(from, to time.Time, entries []Entry) *Report {
	r := &Report{
		FromDate:     from,
		ToDate:       to,
		Entries:      entries,
		TotalEntries: len(entries),
	}
	for _, e := range entries {
		r.TotalQtyIn += e.QtyIn
		r.TotalQtyOut += e.QtyOut
	}
	if len(entries) > 0 {
		r.FinalClosing = entries[len(entries)-1].Closing
	}
	return r
}

// Service runs the full reconciliation pass: fetch, sort, group,
// classify, reduce. The ledger is recomputed from scratch on every call
// and nothing is persisted; determinism makes the recompute safe.
type Service struct {
	source movement.Repository
	engine *Engine
}

// NewService creates a ledger service over the given movement source.
func NewService(source movement.Repository, opts Options) *Service {
	return &Service{
		source: source,
		engine: NewEngine(opts),
	}
}

// Reconcile produces the stock ledger for the requested window.
// A source fetch failure aborts before any entry is computed: the output
// is an error, never a partial ledger.
func (s *Service) Reconcile(ctx context.Context, filter movement.Filter) (*Report, error) {
	// Running balances depend on the whole window; pagination is a
	// consumer-side concern applied after reconciliation.
	filter.Limit = 0
	filter.Offset = 0

	movements, err := s.source.ListByPeriod(ctx, filter)
	if err != nil {
		return nil, apperror.NewSourceUnavailable(err)
	}

	if unknown := UnknownTypes(movements); len(unknown) > 0 {
		logger.Warn(ctx, "movements with unclassified types pass through with zero effect",
			"types", unknown,
		)
	}

	entries := s.engine.Reconcile(movements)

	return BuildReport(filter.FromDate, filter.ToDate, entries), nil
}
