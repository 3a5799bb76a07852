// Package export renders reconciled ledger reports for download.
// Exporters are read-only consumers: they never touch the computed
// balances, only their presentation.
package export

import (
	"time"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/types"
)

// Format holds presentation settings. It is passed explicitly into every
// exporter so the reconciliation core stays free of environmental coupling.
type Format struct {
	CurrencySymbol string
	DateLayout     string
}

// DefaultFormat returns the formatting used when the caller provides none.
func DefaultFormat() Format {
	return Format{
		CurrencySymbol: "KES",
		DateLayout:     "2006-01-02",
	}
}

func (f Format) date(t time.Time) string {
	return t.Format(f.DateLayout)
}

// price renders a money pointer; nil means "no price" and renders empty,
// which is distinct from a zero price.
func (f Format) price(m *types.Money) string {
	if m == nil {
		return ""
	}
	return f.CurrencySymbol + " " + m.StringFixed(2)
}
