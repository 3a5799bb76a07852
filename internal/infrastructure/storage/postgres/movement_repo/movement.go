// Package movement_repo provides the PostgreSQL movement repository.
// It is the Movement Source of the reconciliation pipeline.
package movement_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/apperror"
	"github.com/nyaga-richard/tire-manager-sub000/internal/core/id"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/movement"
	"github.com/nyaga-richard/tire-manager-sub000/internal/infrastructure/storage/postgres"
)

const movementsTable = "tire_movements"

var movementColumns = []string{
	"id", "serial_number", "size", "brand",
	"movement_type", "movement_date",
	"user_name", "store_location",
	"reference_number", "reference_type",
	"supplier_name", "vehicle_number", "position",
	"purchase_cost", "retread_cost",
	"disposal_reason", "document_number", "notes",
	"created_at",
}

// Repo implements movement.Repository.
type Repo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewRepo creates a new movement repository.
func NewRepo(txm *postgres.TxManager) *Repo {
	return &Repo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListByPeriod returns movements matching the filter, ordered ascending by
// movement date. The reconciliation engine re-sorts anyway; ordering here
// keeps plain listings stable for the UI.
func (r *Repo) ListByPeriod(ctx context.Context, filter movement.Filter) ([]movement.Movement, error) {
	q := r.builder.Select(movementColumns...).
		From(movementsTable).
		OrderBy("movement_date ASC", "created_at ASC")

	if !filter.FromDate.IsZero() {
		q = q.Where(squirrel.GtOrEq{"movement_date": filter.FromDate})
	}
	if !filter.ToDate.IsZero() {
		q = q.Where(squirrel.LtOrEq{"movement_date": filter.ToDate})
	}
	if filter.SerialNumber != "" {
		q = q.Where(squirrel.Eq{"serial_number": filter.SerialNumber})
	}
	if filter.VehicleNumber != "" {
		q = q.Where(squirrel.Eq{"vehicle_number": filter.VehicleNumber})
	}
	if filter.Type != nil {
		q = q.Where(squirrel.Eq{"movement_type": *filter.Type})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var movements []movement.Movement
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("select movements: %w", err)
	}

	return movements, nil
}

// GetByID retrieves a single movement.
func (r *Repo) GetByID(ctx context.Context, movementID id.ID) (movement.Movement, error) {
	q := r.builder.Select(movementColumns...).
		From(movementsTable).
		Where(squirrel.Eq{"id": movementID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return movement.Movement{}, fmt.Errorf("build query: %w", err)
	}

	var m movement.Movement
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &m, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return movement.Movement{}, apperror.NewNotFound("movement", movementID)
		}
		return movement.Movement{}, fmt.Errorf("get movement: %w", err)
	}

	return m, nil
}

// Create inserts a movement event.
func (r *Repo) Create(ctx context.Context, m movement.Movement) error {
	q := r.builder.Insert(movementsTable).
		Columns(movementColumns...).
		Values(
			m.ID, m.SerialNumber, m.Size, m.Brand,
			m.Type, m.Date,
			m.UserName, m.StoreLocation,
			m.ReferenceNumber, m.ReferenceType,
			m.SupplierName, m.VehicleNumber, m.Position,
			m.PurchaseCost, m.RetreadCost,
			m.DisposalReason, m.DocumentNumber, m.Notes,
			m.CreatedAt,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}

	return nil
}
