package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/apperror"
	appctx "github.com/nyaga-richard/tire-manager-sub000/internal/core/context"
	"github.com/nyaga-richard/tire-manager-sub000/internal/core/id"
	"github.com/nyaga-richard/tire-manager-sub000/internal/core/tx"
	"github.com/nyaga-richard/tire-manager-sub000/pkg/logger"
)

// Auditor records an audit trail entry for a completed operation.
// Implemented by the postgres audit service.
type Auditor interface {
	Record(ctx context.Context, action string, entityID id.ID, detail any) error
}

// Service provides business operations for tire movements.
type Service struct {
	repo    Repository
	txm     tx.Manager
	auditor Auditor
}

// NewService creates a new movement service.
func NewService(repo Repository, txm tx.Manager, auditor Auditor) *Service {
	return &Service{
		repo:    repo,
		txm:     txm,
		auditor: auditor,
	}
}

// Record validates and persists a new movement event.
// Write-side validation is stricter than the ledger's read side: the API only
// accepts the known movement types, while the ledger tolerates anything the
// source delivers.
func (s *Service) Record(ctx context.Context, m Movement) (Movement, error) {
	if m.SerialNumber == "" {
		return Movement{}, apperror.NewValidation("serialNumber is required")
	}
	if !m.Type.Known() {
		return Movement{}, apperror.NewValidation(fmt.Sprintf("unknown movement type %q", m.Type)).
			WithDetail("movement_type", string(m.Type))
	}

	switch m.Type {
	case TypePurchaseToStore:
		if m.PurchaseCost == nil {
			return Movement{}, apperror.NewValidation("purchaseCost is required for purchases")
		}
	case TypeStoreToVehicle:
		if m.VehicleNumber == "" {
			return Movement{}, apperror.NewValidation("vehicleNumber is required for installations")
		}
	case TypeStoreToDisposal:
		if m.DisposalReason == "" {
			return Movement{}, apperror.NewValidation("disposalReason is required for disposals")
		}
	}

	if id.IsNil(m.ID) {
		m.ID = id.New()
	}
	if m.Date.IsZero() {
		m.Date = time.Now().UTC()
	}
	if m.UserName == "" {
		m.UserName = appctx.GetUserName(ctx)
	}
	m.CreatedAt = time.Now().UTC()

	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, m); err != nil {
			return fmt.Errorf("create movement: %w", err)
		}
		if s.auditor != nil {
			if err := s.auditor.Record(ctx, "record_movement", m.ID, m); err != nil {
				return fmt.Errorf("audit movement: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return Movement{}, err
	}

	logger.Info(ctx, "recorded movement",
		"movement_id", m.ID,
		"movement_type", m.Type,
		"serial_number", m.SerialNumber,
	)

	return m, nil
}

// Get returns a single movement for detail drill-down.
func (s *Service) Get(ctx context.Context, movementID id.ID) (Movement, error) {
	m, err := s.repo.GetByID(ctx, movementID)
	if err != nil {
		return Movement{}, err
	}
	return m, nil
}

// List returns movements for the given filter, applying pagination defaults.
func (s *Service) List(ctx context.Context, filter Filter) ([]Movement, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}

	movements, err := s.repo.ListByPeriod(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}
