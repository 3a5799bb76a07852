// Package movement provides the tire movement event model.
// A movement is a single immutable inventory event: one tire changing
// location or state. Movements never carry a quantity field; each record
// represents exactly one unit.
package movement

import (
	"time"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/id"
	"github.com/nyaga-richard/tire-manager-sub000/internal/core/types"
)

// Type identifies the kind of inventory movement.
type Type string

const (
	TypePurchaseToStore        Type = "PURCHASE_TO_STORE"
	TypeStoreToVehicle         Type = "STORE_TO_VEHICLE"
	TypeVehicleToStore         Type = "VEHICLE_TO_STORE"
	TypeStoreToRetreadSupplier Type = "STORE_TO_RETREAD_SUPPLIER"
	TypeRetreadSupplierToStore Type = "RETREAD_SUPPLIER_TO_STORE"
	TypeStoreToDisposal        Type = "STORE_TO_DISPOSAL"
)

// KnownTypes returns every movement type this service records itself.
// Upstream sources may still deliver types outside this list; the ledger
// carries those through without effect instead of rejecting them.
func KnownTypes() []Type {
	return []Type{
		TypePurchaseToStore,
		TypeStoreToVehicle,
		TypeVehicleToStore,
		TypeStoreToRetreadSupplier,
		TypeRetreadSupplierToStore,
		TypeStoreToDisposal,
	}
}

// Known reports whether t is one of the recorded movement types.
func (t Type) Known() bool {
	switch t {
	case TypePurchaseToStore, TypeStoreToVehicle, TypeVehicleToStore,
		TypeStoreToRetreadSupplier, TypeRetreadSupplierToStore, TypeStoreToDisposal:
		return true
	}
	return false
}

// Movement represents a single tire inventory event.
// Optional fields stay empty/nil when the event kind does not use them.
type Movement struct {
	ID id.ID `db:"id" json:"id"`

	// Tire descriptive fields, denormalized onto the event
	SerialNumber string `db:"serial_number" json:"serialNumber"`
	Size         string `db:"size" json:"size"`
	Brand        string `db:"brand" json:"brand"`

	Type Type      `db:"movement_type" json:"movementType"`
	Date time.Time `db:"movement_date" json:"movementDate"`

	UserName      string `db:"user_name" json:"userName,omitempty"`
	StoreLocation string `db:"store_location" json:"storeLocation,omitempty"`

	// Reference to the originating operation (invoice, work order, ...)
	ReferenceNumber string `db:"reference_number" json:"referenceNumber,omitempty"`
	ReferenceType   string `db:"reference_type" json:"referenceType,omitempty"`

	// Counterpart entity
	SupplierName  string `db:"supplier_name" json:"supplierName,omitempty"`
	VehicleNumber string `db:"vehicle_number" json:"vehicleNumber,omitempty"`
	Position      string `db:"position" json:"position,omitempty"`

	PurchaseCost *types.Money `db:"purchase_cost" json:"purchaseCost,omitempty"`
	RetreadCost  *types.Money `db:"retread_cost" json:"retreadCost,omitempty"`

	DisposalReason string `db:"disposal_reason" json:"disposalReason,omitempty"`
	DocumentNumber string `db:"document_number" json:"documentNumber,omitempty"`
	Notes          string `db:"notes" json:"notes,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
