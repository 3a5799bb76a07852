package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/id"
	"github.com/nyaga-richard/tire-manager-sub000/internal/core/types"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/movement"
)

func TestClassify_Table(t *testing.T) {
	mid := id.MustParse("018f4e2a-1111-7000-8000-000000000001")

	tests := []struct {
		name      string
		movement  movement.Movement
		qtyIn     int
		qtyOut    int
		label     string
		docNumber string
		reference string
	}{
		{
			name: "purchase with supplier and invoice reference",
			movement: movement.Movement{
				ID: mid, Type: movement.TypePurchaseToStore,
				SupplierName: "Kingsway Tyres", ReferenceNumber: "INV-204",
			},
			qtyIn: 1, label: "Purchase",
			docNumber: "PUR-" + mid.String(),
			reference: "Kingsway Tyres/INV-204",
		},
		{
			name: "purchase without reference number",
			movement: movement.Movement{
				ID: mid, Type: movement.TypePurchaseToStore,
				SupplierName: "Kingsway Tyres",
			},
			qtyIn: 1, label: "Purchase",
			docNumber: "PUR-" + mid.String(),
			reference: "Kingsway Tyres",
		},
		{
			name: "installation",
			movement: movement.Movement{
				ID: mid, Type: movement.TypeStoreToVehicle,
				VehicleNumber: "KBX 123A", Position: "RR2",
			},
			qtyOut: 1, label: "Installation",
			docNumber: "INST-" + mid.String(),
			reference: "KBX 123A/RR2",
		},
		{
			name: "return from vehicle",
			movement: movement.Movement{
				ID: mid, Type: movement.TypeVehicleToStore,
				Notes: "rotated out",
			},
			qtyIn: 1, label: "Return from Vehicle",
			docNumber: "RET-" + mid.String(),
			reference: "rotated out",
		},
		{
			name: "send for retreading",
			movement: movement.Movement{
				ID: mid, Type: movement.TypeStoreToRetreadSupplier,
				SupplierName: "Treadsetters",
			},
			qtyOut: 1, label: "Send for Retreading",
			docNumber: "RETREAD-SEND-" + mid.String(),
			reference: "Treadsetters",
		},
		{
			name: "return from retreading",
			movement: movement.Movement{
				ID: mid, Type: movement.TypeRetreadSupplierToStore,
				SupplierName: "Treadsetters",
			},
			qtyIn: 1, label: "Return from Retreading",
			docNumber: "RETREAD-RET-" + mid.String(),
			reference: "Treadsetters",
		},
		{
			name: "disposal",
			movement: movement.Movement{
				ID: mid, Type: movement.TypeStoreToDisposal,
				DisposalReason: "sidewall damage",
			},
			qtyOut: 1, label: "Disposal",
			docNumber: "DISP-" + mid.String(),
			reference: "sidewall damage",
		},
		{
			name: "unknown type",
			movement: movement.Movement{
				ID: mid, Type: movement.Type("WAREHOUSE_AUDIT"),
				Notes: "annual count",
			},
			label:     "WAREHOUSE AUDIT",
			docNumber: "TRX-" + mid.String(),
			reference: "annual count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.movement)
			assert.Equal(t, tt.qtyIn, c.QtyIn)
			assert.Equal(t, tt.qtyOut, c.QtyOut)
			assert.Equal(t, tt.label, c.Label)
			assert.Equal(t, tt.docNumber, c.DocumentNumber)
			assert.Equal(t, tt.reference, c.Reference)
			assert.Equal(t, tt.movement.Type.Known(), c.Known)
		})
	}
}

func TestClassify_PrefersOwnDocumentNumber(t *testing.T) {
	m := movement.Movement{
		ID:             id.New(),
		Type:           movement.TypePurchaseToStore,
		DocumentNumber: "GRN-2026-031",
	}
	c := Classify(m)
	assert.Equal(t, "GRN-2026-031", c.DocumentNumber)
}

func TestResolvePrice(t *testing.T) {
	purchaseCost := types.MustMoney("520")
	retreadCost := types.MustMoney("180.75")

	purchase := movement.Movement{Type: movement.TypePurchaseToStore, PurchaseCost: &purchaseCost, RetreadCost: &retreadCost}
	price := ResolvePrice(purchase)
	require.NotNil(t, price)
	assert.True(t, price.Equal(purchaseCost))

	retreadSend := movement.Movement{Type: movement.TypeStoreToRetreadSupplier, RetreadCost: &retreadCost}
	price = ResolvePrice(retreadSend)
	require.NotNil(t, price)
	assert.True(t, price.Equal(retreadCost))

	// Retread return carries costs but resolves to no price.
	retreadReturn := movement.Movement{Type: movement.TypeRetreadSupplierToStore, RetreadCost: &retreadCost}
	assert.Nil(t, ResolvePrice(retreadReturn))

	install := movement.Movement{Type: movement.TypeStoreToVehicle}
	assert.Nil(t, ResolvePrice(install))
}
