package movement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/apperror"
	appctx "github.com/nyaga-richard/tire-manager-sub000/internal/core/context"
	"github.com/nyaga-richard/tire-manager-sub000/internal/core/id"
	"github.com/nyaga-richard/tire-manager-sub000/internal/core/types"
)

type mockRepo struct {
	created   []Movement
	createErr error
	listed    []Movement
	byID      map[id.ID]Movement
}

func (m *mockRepo) ListByPeriod(_ context.Context, _ Filter) ([]Movement, error) {
	return m.listed, nil
}

func (m *mockRepo) GetByID(_ context.Context, movementID id.ID) (Movement, error) {
	mv, ok := m.byID[movementID]
	if !ok {
		return Movement{}, apperror.NewNotFound("movement", movementID)
	}
	return mv, nil
}

func (m *mockRepo) Create(_ context.Context, mv Movement) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, mv)
	return nil
}

type nopTxManager struct{}

func (nopTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockAuditor struct {
	actions []string
	err     error
}

func (m *mockAuditor) Record(_ context.Context, action string, _ id.ID, _ any) error {
	if m.err != nil {
		return m.err
	}
	m.actions = append(m.actions, action)
	return nil
}

func newTestService(repo *mockRepo, auditor *mockAuditor) *Service {
	return NewService(repo, nopTxManager{}, auditor)
}

func TestRecord_FillsDefaults(t *testing.T) {
	repo := &mockRepo{}
	auditor := &mockAuditor{}
	svc := newTestService(repo, auditor)

	ctx := appctx.WithUser(context.Background(), &appctx.UserContext{Name: "jkamau"})

	cost := types.MustMoney("12500.00")
	m, err := svc.Record(ctx, Movement{
		SerialNumber: "TY-2024-0042",
		Type:         TypePurchaseToStore,
		PurchaseCost: &cost,
	})
	require.NoError(t, err)

	assert.False(t, id.IsNil(m.ID))
	assert.False(t, m.Date.IsZero())
	assert.Equal(t, "jkamau", m.UserName)
	require.Len(t, repo.created, 1)
	assert.Equal(t, []string{"record_movement"}, auditor.actions)
}

func TestRecord_PreservesExplicitFields(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo, &mockAuditor{})

	movementID := id.New()
	date := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	cost := types.MustMoney("9000")

	m, err := svc.Record(context.Background(), Movement{
		ID:           movementID,
		SerialNumber: "TY-2024-0001",
		Type:         TypePurchaseToStore,
		PurchaseCost: &cost,
		Date:         date,
		UserName:     "imports",
	})
	require.NoError(t, err)
	assert.Equal(t, movementID, m.ID)
	assert.Equal(t, date, m.Date)
	assert.Equal(t, "imports", m.UserName)
}

func TestRecord_Validation(t *testing.T) {
	cost := types.MustMoney("100")

	tests := []struct {
		name     string
		movement Movement
		wantMsg  string
	}{
		{
			name:     "missing serial number",
			movement: Movement{Type: TypePurchaseToStore, PurchaseCost: &cost},
			wantMsg:  "serialNumber is required",
		},
		{
			name:     "unknown type",
			movement: Movement{SerialNumber: "TY-1", Type: "WAREHOUSE_AUDIT"},
			wantMsg:  `unknown movement type "WAREHOUSE_AUDIT"`,
		},
		{
			name:     "purchase without cost",
			movement: Movement{SerialNumber: "TY-1", Type: TypePurchaseToStore},
			wantMsg:  "purchaseCost is required for purchases",
		},
		{
			name:     "install without vehicle",
			movement: Movement{SerialNumber: "TY-1", Type: TypeStoreToVehicle},
			wantMsg:  "vehicleNumber is required for installations",
		},
		{
			name:     "disposal without reason",
			movement: Movement{SerialNumber: "TY-1", Type: TypeStoreToDisposal},
			wantMsg:  "disposalReason is required for disposals",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&mockRepo{}, &mockAuditor{})
			_, err := svc.Record(context.Background(), tt.movement)
			require.Error(t, err)

			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestRecord_AuditFailureRollsBack(t *testing.T) {
	repo := &mockRepo{}
	auditor := &mockAuditor{err: errors.New("audit table locked")}
	svc := newTestService(repo, auditor)

	cost := types.MustMoney("100")
	_, err := svc.Record(context.Background(), Movement{
		SerialNumber: "TY-1",
		Type:         TypePurchaseToStore,
		PurchaseCost: &cost,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audit movement")
}

func TestList_PaginationDefaults(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo, &mockAuditor{})

	_, err := svc.List(context.Background(), Filter{})
	require.NoError(t, err)

	_, err = svc.List(context.Background(), Filter{Limit: 5000})
	require.NoError(t, err)
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(&mockRepo{byID: map[id.ID]Movement{}}, &mockAuditor{})

	_, err := svc.Get(context.Background(), id.New())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}
