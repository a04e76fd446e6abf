package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"alta/internal/storage"
)

const postgresComponent = "alta/internal/audit.PostgresStore"

// PostgresStore appends audit records through the statement execution
// contract and mirrors each record into the outbox table for the Kafka
// publisher. The audit_events row is the queryable trail; the outbox row is
// drained by the outbox worker.
type PostgresStore struct {
	exec *storage.Executor
}

func NewPostgresStore(db *sql.DB, logger *log.Logger) *PostgresStore {
	return &PostgresStore{exec: storage.NewExecutor(db, logger, postgresComponent)}
}

const insertAuditSQL = `
	INSERT INTO non_business_audit (
		id, owner_country, owner_document_type, owner_document,
		business_country, business_document_type, business_document,
		status_code, process, message, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

const insertOutboxSQL = `
	INSERT INTO outbox (id, aggregate_type, aggregate_id, event_type, payload, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
`

// outboxPayload is the JSON structure published to Kafka.
type outboxPayload struct {
	ID               string `json:"id"`
	OwnerDocument    string `json:"ownerDocument"`
	BusinessDocument string `json:"businessDocument"`
	StatusCode       string `json:"statusCode"`
	Process          string `json:"process"`
	Message          string `json:"message,omitempty"`
	Timestamp        string `json:"timestamp"`
}

func (s *PostgresStore) Append(ctx context.Context, record Record) error {
	recordID := uuid.New()
	if _, err := s.exec.Update(ctx, insertAuditSQL, storage.MsgInsertFailed,
		recordID,
		record.Identity.OwnerCountry,
		record.Identity.OwnerDocumentType,
		record.Identity.OwnerDocument,
		record.Identity.BusinessCountry,
		record.Identity.BusinessDocumentType,
		record.Identity.BusinessDocument,
		string(record.Status.Code),
		record.Status.Process,
		record.Status.Message,
		record.Timestamp,
	); err != nil {
		return err
	}

	payload, err := json.Marshal(outboxPayload{
		ID:               recordID.String(),
		OwnerDocument:    record.Identity.OwnerDocument,
		BusinessDocument: record.Identity.BusinessDocument,
		StatusCode:       string(record.Status.Code),
		Process:          record.Status.Process,
		Message:          record.Status.Message,
		Timestamp:        record.Timestamp.Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}

	_, err = s.exec.Update(ctx, insertOutboxSQL, storage.MsgInsertFailed,
		uuid.New(),
		"non_business",
		record.Identity.BusinessDocument,
		string(record.Status.Code),
		payload,
		record.Timestamp,
	)
	return err
}
