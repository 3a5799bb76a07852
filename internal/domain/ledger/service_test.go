package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/apperror"
	"github.com/nyaga-richard/tire-manager-sub000/internal/core/id"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/movement"
)

// Mock objects
type mockSource struct {
	movements  []movement.Movement
	err        error
	lastFilter movement.Filter
}

func (m *mockSource) ListByPeriod(ctx context.Context, filter movement.Filter) ([]movement.Movement, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.movements, nil
}

func (m *mockSource) GetByID(ctx context.Context, movementID id.ID) (movement.Movement, error) {
	return movement.Movement{}, errors.New("not implemented")
}

func (m *mockSource) Create(ctx context.Context, mv movement.Movement) error {
	return errors.New("not implemented")
}

func TestService_Reconcile(t *testing.T) {
	source := &mockSource{movements: []movement.Movement{
		mk(movement.TypeStoreToVehicle, day(2)),
		mk(movement.TypePurchaseToStore, day(1)),
	}}
	svc := NewService(source, Options{})

	report, err := svc.Reconcile(context.Background(), movement.Filter{
		FromDate: day(1), ToDate: day(28),
		Limit: 25, Offset: 50, // consumer pagination must not reach the source
	})
	require.NoError(t, err)

	assert.Equal(t, 0, source.lastFilter.Limit, "reconciliation fetches the whole window")
	assert.Equal(t, 0, source.lastFilter.Offset)

	require.Len(t, report.Entries, 2)
	assert.Equal(t, "Purchase", report.Entries[0].TypeLabel)
	assert.Equal(t, 1, report.TotalQtyIn)
	assert.Equal(t, 1, report.TotalQtyOut)
	assert.Equal(t, 0, report.FinalClosing)
}

func TestService_Reconcile_SourceFailureAbortsBeforeComputing(t *testing.T) {
	source := &mockSource{err: errors.New("connection refused")}
	svc := NewService(source, Options{})

	report, err := svc.Reconcile(context.Background(), movement.Filter{FromDate: day(1), ToDate: day(28)})
	require.Error(t, err)
	assert.Nil(t, report, "no partial ledger on fetch failure")

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeSourceUnavailable, appErr.Code)
}
