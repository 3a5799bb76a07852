// Package ledger converts a raw stream of tire movement events into a
// chronologically consistent stock ledger with running balances.
package ledger

import (
	"fmt"
	"strings"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/types"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/movement"
)

// Effect is the contribution of one movement to the running stock balance.
type Effect int

const (
	EffectNone Effect = iota
	EffectIn
	EffectOut
)

// rule holds the ledger semantics of one movement type. Classification is
// table-driven so adding a movement type is a data change, not a new branch
// scattered across label, document and reference code.
type rule struct {
	effect    Effect
	label     string
	docPrefix string
	reference func(m movement.Movement) string
}

var rules = map[movement.Type]rule{
	movement.TypePurchaseToStore: {
		effect:    EffectIn,
		label:     "Purchase",
		docPrefix: "PUR",
		reference: func(m movement.Movement) string {
			return joinReference(m.SupplierName, m.ReferenceNumber)
		},
	},
	movement.TypeStoreToVehicle: {
		effect:    EffectOut,
		label:     "Installation",
		docPrefix: "INST",
		reference: func(m movement.Movement) string {
			return joinReference(m.VehicleNumber, m.Position)
		},
	},
	movement.TypeVehicleToStore: {
		effect:    EffectIn,
		label:     "Return from Vehicle",
		docPrefix: "RET",
		reference: func(m movement.Movement) string { return m.Notes },
	},
	movement.TypeStoreToRetreadSupplier: {
		effect:    EffectOut,
		label:     "Send for Retreading",
		docPrefix: "RETREAD-SEND",
		reference: func(m movement.Movement) string { return m.SupplierName },
	},
	movement.TypeRetreadSupplierToStore: {
		effect:    EffectIn,
		label:     "Return from Retreading",
		docPrefix: "RETREAD-RET",
		reference: func(m movement.Movement) string { return m.SupplierName },
	},
	movement.TypeStoreToDisposal: {
		effect:    EffectOut,
		label:     "Disposal",
		docPrefix: "DISP",
		reference: func(m movement.Movement) string { return m.DisposalReason },
	},
}

// Classification is the uniform in/out/price view of one movement.
type Classification struct {
	QtyIn  int
	QtyOut int

	Label          string
	DocumentNumber string
	Reference      string

	// Known is false for movement types outside the classification table.
	// Those pass through with zero effect and a best-effort label so that
	// new upstream types never break or silently drop ledger lines.
	Known bool
}

// Classify maps a movement to its ledger semantics.
func Classify(m movement.Movement) Classification {
	r, ok := rules[m.Type]
	if !ok {
		return Classification{
			Label:          strings.ReplaceAll(string(m.Type), "_", " "),
			DocumentNumber: documentNumber(m, "TRX"),
			Reference:      m.Notes,
			Known:          false,
		}
	}

	c := Classification{
		Label:          r.label,
		DocumentNumber: documentNumber(m, r.docPrefix),
		Reference:      r.reference(m),
		Known:          true,
	}
	switch r.effect {
	case EffectIn:
		c.QtyIn = 1
	case EffectOut:
		c.QtyOut = 1
	}
	return c
}

// ResolvePrice extracts the monetary value a movement carries, if any.
// Only purchases and retread sends have a derived price; nil means
// "no price", which is distinct from a zero price.
func ResolvePrice(m movement.Movement) *types.Money {
	switch m.Type {
	case movement.TypePurchaseToStore:
		return m.PurchaseCost
	case movement.TypeStoreToRetreadSupplier:
		return m.RetreadCost
	}
	return nil
}

// documentNumber prefers the movement's own document number and falls back
// to a synthesized "{prefix}-{id}" reference.
func documentNumber(m movement.Movement, prefix string) string {
	if m.DocumentNumber != "" {
		return m.DocumentNumber
	}
	return fmt.Sprintf("%s-%s", prefix, m.ID)
}

func joinReference(primary, secondary string) string {
	if secondary == "" {
		return primary
	}
	if primary == "" {
		return secondary
	}
	return primary + "/" + secondary
}
