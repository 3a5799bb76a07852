package ledger

import (
	"sort"
	"time"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/types"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/movement"
)

// Defaults applied when a movement is missing optional descriptive fields.
// A single bad record degrades one field instead of aborting the batch.
const (
	DefaultUserName = "System"
	DefaultLocation = "Main Store"
)

// GroupingMode controls the fallback used when a movement has no
// reference number.
type GroupingMode int

const (
	// GroupByReference merges movements sharing (day, reference number or
	// reference type, movement type). This is the historical behavior: two
	// unrelated transactions lacking a reference number but sharing a
	// reference type and day will be merged into one ledger line.
	GroupByReference GroupingMode = iota

	// StrictReference falls back to the movement ID instead of the
	// reference type, so lines without a reference number never merge.
	StrictReference
)

// Options configures the reconciliation engine.
type Options struct {
	Grouping GroupingMode
}

// Engine is the movement-to-ledger reconciliation engine. It is a pure,
// synchronous transform: sort, group, classify, reduce. Reconciling the
// same movement set twice yields identical entries.
type Engine struct {
	opts Options
}

// NewEngine creates a reconciliation engine.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Entry is one ledger line with its opening and closing running balance.
// Entries are pure derivations and are never mutated after creation.
type Entry struct {
	Date     time.Time `json:"date"`
	UserName string    `json:"userName"`
	Location string    `json:"location"`

	Opening int `json:"openingStock"`
	QtyIn   int `json:"quantityIn"`
	QtyOut  int `json:"quantityOut"`
	Closing int `json:"closingStock"`

	Price *types.Money `json:"price,omitempty"`

	Reference      string `json:"reference"`
	DocumentNumber string `json:"documentNumber"`
	TypeLabel      string `json:"typeLabel"`

	// Movement is the group's representative (first) movement,
	// kept for detail drill-down.
	Movement movement.Movement `json:"movement"`

	// MovementCount is the number of raw movements merged into this line.
	MovementCount int `json:"movementCount"`
}

// Reconcile converts an unordered movement list into chronologically
// ordered ledger entries with running balances. The input slice is not
// modified. The movement set must cover the entire requested window:
// running balances are causally ordered, so reconciling a paginated
// subset seeds wrong opening balances.
func (e *Engine) Reconcile(movements []movement.Movement) []Entry {
	sorted := sortChronological(movements)
	groups := e.groupTransactions(sorted)

	acc := accumulator{entries: make([]Entry, 0, len(groups))}
	for _, g := range groups {
		acc.apply(g)
	}
	return acc.entries
}

// UnknownTypes returns the distinct movement types outside the
// classification table, in first-seen order. Callers log these for
// visibility; they never fail reconciliation.
func UnknownTypes(movements []movement.Movement) []movement.Type {
	seen := make(map[movement.Type]bool)
	var unknown []movement.Type
	for _, m := range movements {
		if _, ok := rules[m.Type]; ok || seen[m.Type] {
			continue
		}
		seen[m.Type] = true
		unknown = append(unknown, m.Type)
	}
	return unknown
}

// sortChronological returns a copy sorted ascending by event timestamp.
// The sort is stable: movements with identical timestamps keep source order.
func sortChronological(movements []movement.Movement) []movement.Movement {
	sorted := make([]movement.Movement, len(movements))
	copy(sorted, movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// groupKey is the composite transaction identity: movements sharing a key
// form one logical ledger line (e.g. a batch purchase, or the two paired
// movements of a position swap).
type groupKey struct {
	day       string
	reference string
	typ       movement.Type
}

type group struct {
	key       groupKey
	movements []movement.Movement
}

func (e *Engine) groupTransactions(sorted []movement.Movement) []group {
	index := make(map[groupKey]int)
	var groups []group

	for _, m := range sorted {
		key := groupKey{
			day:       m.Date.Format("2006-01-02"),
			reference: e.referenceKey(m),
			typ:       m.Type,
		}
		if i, ok := index[key]; ok {
			groups[i].movements = append(groups[i].movements, m)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, group{key: key, movements: []movement.Movement{m}})
	}
	return groups
}

// referenceKey picks the reference component of the grouping key.
// Reference number wins when present; the fallback depends on the
// configured grouping mode.
func (e *Engine) referenceKey(m movement.Movement) string {
	if m.ReferenceNumber != "" {
		return m.ReferenceNumber
	}
	if e.opts.Grouping == StrictReference {
		return m.ID.String()
	}
	return m.ReferenceType
}

// accumulator carries the running stock across the chronological fold.
// Explicit state instead of a captured outer variable keeps the reduce
// step referentially transparent and testable in isolation.
type accumulator struct {
	running int
	entries []Entry
}

func (a *accumulator) apply(g group) {
	var qtyIn, qtyOut int
	for _, m := range g.movements {
		c := Classify(m)
		qtyIn += c.QtyIn
		qtyOut += c.QtyOut
	}

	rep := g.movements[0]
	c := Classify(rep)

	opening := a.running
	closing := opening + qtyIn - qtyOut
	a.running = closing

	a.entries = append(a.entries, Entry{
		Date:           rep.Date,
		UserName:       defaultString(rep.UserName, DefaultUserName),
		Location:       defaultString(rep.StoreLocation, DefaultLocation),
		Opening:        opening,
		QtyIn:          qtyIn,
		QtyOut:         qtyOut,
		Closing:        closing,
		Price:          ResolvePrice(rep),
		Reference:      c.Reference,
		DocumentNumber: c.DocumentNumber,
		TypeLabel:      c.Label,
		Movement:       rep,
		MovementCount:  len(g.movements),
	})
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
