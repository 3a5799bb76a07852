package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/id"
	"github.com/nyaga-richard/tire-manager-sub000/internal/core/types"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/movement"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 10, 0, 0, 0, time.UTC)
}

func mk(typ movement.Type, date time.Time) movement.Movement {
	return movement.Movement{
		ID:           id.New(),
		SerialNumber: "SN-001",
		Size:         "315/80R22.5",
		Brand:        "Michelin",
		Type:         typ,
		Date:         date,
		UserName:     "wanjiku",
	}
}

func TestReconcile_PurchaseThenInstall(t *testing.T) {
	cost := types.MustMoney("500")
	purchase := mk(movement.TypePurchaseToStore, day(1))
	purchase.PurchaseCost = &cost
	purchase.SupplierName = "Kingsway Tyres"

	install := mk(movement.TypeStoreToVehicle, day(2))
	install.VehicleNumber = "KBX 123A"
	install.Position = "FL"

	// Deliberately unordered input
	entries := NewEngine(Options{}).Reconcile([]movement.Movement{install, purchase})
	require.Len(t, entries, 2)

	assert.Equal(t, 0, entries[0].Opening)
	assert.Equal(t, 1, entries[0].QtyIn)
	assert.Equal(t, 0, entries[0].QtyOut)
	assert.Equal(t, 1, entries[0].Closing)
	require.NotNil(t, entries[0].Price)
	assert.True(t, entries[0].Price.Equal(cost))
	assert.Equal(t, "Purchase", entries[0].TypeLabel)

	assert.Equal(t, 1, entries[1].Opening)
	assert.Equal(t, 0, entries[1].QtyIn)
	assert.Equal(t, 1, entries[1].QtyOut)
	assert.Equal(t, 0, entries[1].Closing)
	assert.Nil(t, entries[1].Price)
	assert.Equal(t, "Installation", entries[1].TypeLabel)
	assert.Equal(t, "KBX 123A/FL", entries[1].Reference)
}

func TestReconcile_BalanceAndContinuityInvariants(t *testing.T) {
	movs := []movement.Movement{
		mk(movement.TypeStoreToVehicle, day(3)),
		mk(movement.TypePurchaseToStore, day(1)),
		mk(movement.TypeVehicleToStore, day(5)),
		mk(movement.TypePurchaseToStore, day(2)),
		mk(movement.TypeStoreToDisposal, day(7)),
		mk(movement.TypeStoreToRetreadSupplier, day(6)),
	}

	entries := NewEngine(Options{}).Reconcile(movs)
	require.NotEmpty(t, entries)

	assert.Equal(t, 0, entries[0].Opening)
	for i, e := range entries {
		assert.Equal(t, e.Opening+e.QtyIn-e.QtyOut, e.Closing, "entry %d balance", i)
		if i > 0 {
			assert.Equal(t, entries[i-1].Closing, e.Opening, "entry %d continuity", i)
		}
		if i > 0 {
			assert.False(t, e.Date.Before(entries[i-1].Date), "entry %d chronological order", i)
		}
	}
}

func TestReconcile_Conservation(t *testing.T) {
	movs := []movement.Movement{
		mk(movement.TypePurchaseToStore, day(1)),
		mk(movement.TypePurchaseToStore, day(2)),
		mk(movement.TypeVehicleToStore, day(3)),
		mk(movement.TypeStoreToVehicle, day(4)),
		mk(movement.TypeStoreToDisposal, day(5)),
		mk(movement.Type("FOO_BAR"), day(6)),
	}

	entries := NewEngine(Options{}).Reconcile(movs)

	var totalIn, totalOut int
	for _, e := range entries {
		totalIn += e.QtyIn
		totalOut += e.QtyOut
	}
	assert.Equal(t, 3, totalIn, "one qty-in per in-effect movement")
	assert.Equal(t, 2, totalOut, "one qty-out per out-effect movement")
}

func TestReconcile_GroupsBatchIntoOneEntry(t *testing.T) {
	a := mk(movement.TypeStoreToDisposal, day(4))
	a.ReferenceNumber = "WO-77"
	a.DisposalReason = "worn out"
	b := mk(movement.TypeStoreToDisposal, day(4))
	b.ReferenceNumber = "WO-77"
	b.DisposalReason = "worn out"

	entries := NewEngine(Options{}).Reconcile([]movement.Movement{a, b})
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].QtyOut)
	assert.Equal(t, 2, entries[0].MovementCount)
	assert.Equal(t, -2, entries[0].Closing)
}

func TestReconcile_SeparateEntriesWhenKeyDiffers(t *testing.T) {
	a := mk(movement.TypeStoreToDisposal, day(4))
	a.ReferenceNumber = "WO-77"
	b := mk(movement.TypeStoreToDisposal, day(4))
	b.ReferenceNumber = "WO-78"
	c := mk(movement.TypeStoreToDisposal, day(5))
	c.ReferenceNumber = "WO-77"

	entries := NewEngine(Options{}).Reconcile([]movement.Movement{a, b, c})
	assert.Len(t, entries, 3)
}

func TestReconcile_UnknownTypePassesThrough(t *testing.T) {
	purchase := mk(movement.TypePurchaseToStore, day(1))
	odd := mk(movement.Type("FOO_BAR"), day(2))
	odd.Notes = "imported from legacy system"

	entries := NewEngine(Options{}).Reconcile([]movement.Movement{purchase, odd})
	require.Len(t, entries, 2)

	assert.Equal(t, "FOO BAR", entries[1].TypeLabel)
	assert.Equal(t, 0, entries[1].QtyIn)
	assert.Equal(t, 0, entries[1].QtyOut)
	assert.Equal(t, 1, entries[1].Opening)
	assert.Equal(t, 1, entries[1].Closing, "balance unchanged")
	assert.Equal(t, "imported from legacy system", entries[1].Reference)

	unknown := UnknownTypes([]movement.Movement{purchase, odd, odd})
	assert.Equal(t, []movement.Type{"FOO_BAR"}, unknown)
}

func TestReconcile_EmptyInput(t *testing.T) {
	entries := NewEngine(Options{}).Reconcile(nil)
	assert.Empty(t, entries)

	report := BuildReport(day(1), day(28), entries)
	assert.Equal(t, 0, report.TotalEntries)
	assert.Equal(t, 0, report.FinalClosing)
}

func TestReconcile_Deterministic(t *testing.T) {
	movs := []movement.Movement{
		mk(movement.TypeStoreToVehicle, day(3)),
		mk(movement.TypePurchaseToStore, day(1)),
		mk(movement.TypePurchaseToStore, day(1)),
		mk(movement.TypeVehicleToStore, day(5)),
	}

	engine := NewEngine(Options{})
	first := engine.Reconcile(movs)
	second := engine.Reconcile(movs)
	assert.Equal(t, first, second)
}

func TestReconcile_StableOrderOnEqualTimestamps(t *testing.T) {
	ts := day(2)
	a := mk(movement.TypePurchaseToStore, ts)
	a.ReferenceNumber = "INV-1"
	b := mk(movement.TypeStoreToVehicle, ts)
	b.ReferenceNumber = "WO-1"

	entries := NewEngine(Options{}).Reconcile([]movement.Movement{a, b})
	require.Len(t, entries, 2)
	assert.Equal(t, "Purchase", entries[0].TypeLabel)
	assert.Equal(t, "Installation", entries[1].TypeLabel)
}

func TestReconcile_GroupingModeFallback(t *testing.T) {
	// Two unrelated disposals: no reference number, same reference type and day.
	a := mk(movement.TypeStoreToDisposal, day(4))
	a.ReferenceType = "WORK_ORDER"
	b := mk(movement.TypeStoreToDisposal, day(4))
	b.ReferenceType = "WORK_ORDER"

	legacy := NewEngine(Options{Grouping: GroupByReference}).Reconcile([]movement.Movement{a, b})
	assert.Len(t, legacy, 1, "legacy mode merges on reference type")

	strict := NewEngine(Options{Grouping: StrictReference}).Reconcile([]movement.Movement{a, b})
	assert.Len(t, strict, 2, "strict mode never merges lines without a reference number")
}

func TestReconcile_DefaultsForMissingFields(t *testing.T) {
	m := mk(movement.TypePurchaseToStore, day(1))
	m.UserName = ""
	m.StoreLocation = ""

	entries := NewEngine(Options{}).Reconcile([]movement.Movement{m})
	require.Len(t, entries, 1)
	assert.Equal(t, DefaultUserName, entries[0].UserName)
	assert.Equal(t, DefaultLocation, entries[0].Location)
}

func TestReconcile_PriceIsolation(t *testing.T) {
	first := types.MustMoney("450.50")
	second := types.MustMoney("480")

	a := mk(movement.TypePurchaseToStore, day(1))
	a.ReferenceNumber = "INV-9"
	a.PurchaseCost = &first
	b := mk(movement.TypePurchaseToStore, day(1))
	b.ReferenceNumber = "INV-9"
	b.PurchaseCost = &second

	entries := NewEngine(Options{}).Reconcile([]movement.Movement{a, b})
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Price)
	assert.True(t, entries[0].Price.Equal(first), "price comes from the representative movement, not summed")

	ret := mk(movement.TypeVehicleToStore, day(2))
	entries = NewEngine(Options{}).Reconcile([]movement.Movement{ret})
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Price)
}

func TestBuildReport_Totals(t *testing.T) {
	movs := []movement.Movement{
		mk(movement.TypePurchaseToStore, day(1)),
		mk(movement.TypePurchaseToStore, day(2)),
		mk(movement.TypeStoreToVehicle, day(3)),
	}

	entries := NewEngine(Options{}).Reconcile(movs)
	report := BuildReport(day(1), day(28), entries)

	assert.Equal(t, 3, report.TotalEntries)
	assert.Equal(t, 2, report.TotalQtyIn)
	assert.Equal(t, 1, report.TotalQtyOut)
	assert.Equal(t, 1, report.FinalClosing)
}
