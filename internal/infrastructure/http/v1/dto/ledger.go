package dto

import (
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/ledger"
)

// LedgerResponse wraps a reconciled ledger report. Entries already carry
// their balances; consumers may re-sort for display but must not use a
// re-sorted order to recompute anything.
type LedgerResponse struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`

	Entries []ledger.Entry `json:"entries"`

	TotalEntries      int `json:"totalEntries"`
	TotalQuantityIn   int `json:"totalQuantityIn"`
	TotalQuantityOut  int `json:"totalQuantityOut"`
	FinalClosingStock int `json:"finalClosingStock"`
}

// FromLedgerReport maps a domain report to its API shape.
func FromLedgerReport(r *ledger.Report) LedgerResponse {
	return LedgerResponse{
		FromDate:          r.FromDate.Format("2006-01-02"),
		ToDate:            r.ToDate.Format("2006-01-02"),
		Entries:           r.Entries,
		TotalEntries:      r.TotalEntries,
		TotalQuantityIn:   r.TotalQtyIn,
		TotalQuantityOut:  r.TotalQtyOut,
		FinalClosingStock: r.FinalClosing,
	}
}
