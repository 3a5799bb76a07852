package dto

import (
	"time"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/apperror"
	"github.com/nyaga-richard/tire-manager-sub000/internal/core/types"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/movement"
)

// RecordMovementRequest is the payload for POST /movements.
// Monetary values arrive as strings to preserve precision.
type RecordMovementRequest struct {
	SerialNumber string `json:"serialNumber" binding:"required"`
	Size         string `json:"size"`
	Brand        string `json:"brand"`

	MovementType string `json:"movementType" binding:"required"`
	MovementDate string `json:"movementDate"` // RFC3339, defaults to now

	StoreLocation   string `json:"storeLocation"`
	ReferenceNumber string `json:"referenceNumber"`
	ReferenceType   string `json:"referenceType"`

	SupplierName  string `json:"supplierName"`
	VehicleNumber string `json:"vehicleNumber"`
	Position      string `json:"position"`

	PurchaseCost string `json:"purchaseCost"`
	RetreadCost  string `json:"retreadCost"`

	DisposalReason string `json:"disposalReason"`
	DocumentNumber string `json:"documentNumber"`
	Notes          string `json:"notes"`
}

// ToMovement converts the request into a domain movement.
func (r RecordMovementRequest) ToMovement() (movement.Movement, error) {
	m := movement.Movement{
		SerialNumber:    r.SerialNumber,
		Size:            r.Size,
		Brand:           r.Brand,
		Type:            movement.Type(r.MovementType),
		StoreLocation:   r.StoreLocation,
		ReferenceNumber: r.ReferenceNumber,
		ReferenceType:   r.ReferenceType,
		SupplierName:    r.SupplierName,
		VehicleNumber:   r.VehicleNumber,
		Position:        r.Position,
		DisposalReason:  r.DisposalReason,
		DocumentNumber:  r.DocumentNumber,
		Notes:           r.Notes,
	}

	if r.MovementDate != "" {
		date, err := time.Parse(time.RFC3339, r.MovementDate)
		if err != nil {
			return movement.Movement{}, apperror.NewValidation("invalid movementDate, expected RFC3339")
		}
		m.Date = date
	}

	if r.PurchaseCost != "" {
		cost, err := types.NewMoneyFromString(r.PurchaseCost)
		if err != nil {
			return movement.Movement{}, apperror.NewValidation("invalid purchaseCost")
		}
		m.PurchaseCost = &cost
	}
	if r.RetreadCost != "" {
		cost, err := types.NewMoneyFromString(r.RetreadCost)
		if err != nil {
			return movement.Movement{}, apperror.NewValidation("invalid retreadCost")
		}
		m.RetreadCost = &cost
	}

	return m, nil
}

// MovementListResponse wraps a movement listing.
type MovementListResponse struct {
	Items      []movement.Movement `json:"items"`
	TotalCount int                 `json:"totalCount"`
}
