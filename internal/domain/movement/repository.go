package movement

import (
	"context"
	"time"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/id"
)

// Filter narrows a movement listing.
type Filter struct {
	// Period (inclusive). Zero values mean unbounded.
	FromDate time.Time
	ToDate   time.Time

	// Optional entity filters
	SerialNumber  string
	VehicleNumber string
	Type          *Type

	// Pagination. Limit 0 means no limit; reconciliation always fetches
	// the whole window because running balances are causally ordered.
	Limit  int
	Offset int
}

// Repository is the movement source and store.
// ListByPeriod acts as the Movement Source for the reconciliation engine.
type Repository interface {
	ListByPeriod(ctx context.Context, filter Filter) ([]Movement, error)
	GetByID(ctx context.Context, movementID id.ID) (Movement, error)
	Create(ctx context.Context, m Movement) error
}
