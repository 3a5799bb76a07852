package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/klauspost/compress/zstd"

	appctx "github.com/nyaga-richard/tire-manager-sub000/internal/core/context"
	"github.com/nyaga-richard/tire-manager-sub000/internal/core/id"
)

const auditTable = "audit_log"

// CompressionAlgo specifies the compression algorithm used for a payload.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// AuditEntry represents a single audit log entry. The ledger itself is
// never persisted; the audit trail records who triggered which operation
// with a snapshot of its payload, keeping movements auditable.
type AuditEntry struct {
	ID               id.ID           `db:"id"`
	Action           string          `db:"action"`
	EntityID         id.ID           `db:"entity_id"`
	UserID           string          `db:"user_id"`
	Detail           json.RawMessage `db:"detail"`
	DetailCompressed []byte          `db:"detail_compressed"`
	CompressionAlgo  CompressionAlgo `db:"compression_algo"`
	CreatedAt        time.Time       `db:"created_at"`
}

// AuditService provides audit logging functionality.
type AuditService struct {
	txm               *TxManager
	builder           squirrel.StatementBuilderType
	encoder           *zstd.Encoder
	compressThreshold int // bytes
}

// NewAuditService creates a new audit service.
func NewAuditService(txm *TxManager) (*AuditService, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	return &AuditService{
		txm:               txm,
		builder:           squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		encoder:           encoder,
		compressThreshold: 10 * 1024, // 10KB
	}, nil
}

// Record marshals detail and inserts an audit entry for the given action.
// Large payloads (full reconciliation reports) are zstd-compressed.
func (s *AuditService) Record(ctx context.Context, action string, entityID id.ID, detail any) error {
	payload, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("marshal audit detail: %w", err)
	}

	entry := AuditEntry{
		ID:              id.New(),
		Action:          action,
		EntityID:        entityID,
		UserID:          appctx.GetUserID(ctx),
		CompressionAlgo: CompressionNone,
		CreatedAt:       time.Now().UTC(),
	}

	if len(payload) > s.compressThreshold {
		entry.DetailCompressed = s.encoder.EncodeAll(payload, nil)
		entry.CompressionAlgo = CompressionZstd
	} else {
		entry.Detail = payload
	}

	q := s.builder.Insert(auditTable).
		Columns("id", "action", "entity_id", "user_id", "detail", "detail_compressed", "compression_algo", "created_at").
		Values(entry.ID, entry.Action, entry.EntityID, entry.UserID, entry.Detail, entry.DetailCompressed, entry.CompressionAlgo, entry.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build audit insert: %w", err)
	}

	querier := s.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}
