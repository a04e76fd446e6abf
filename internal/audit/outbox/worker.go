// Package outbox drains committed audit rows from the outbox table and
// publishes them to Kafka. Workflow writes never wait on the broker: the
// worker only moves rows that are already durable.
package outbox

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"alta/internal/platform/config"
)

// producer is the slice of the Kafka client the worker needs. Tests drive
// the drain loop through a fake; production wires *kgo.Client.
type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

// Worker polls the outbox table and produces pending entries to the audit
// topic, marking each row published exactly once.
type Worker struct {
	db       *sql.DB
	client   producer
	topic    string
	interval time.Duration
	log      *log.Logger
}

// NewWorker connects to the Kafka brokers and ensures the audit topic exists.
func NewWorker(db *sql.DB, cfg config.Kafka, logger *log.Logger) (*Worker, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.AuditTopic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	admin := kadm.NewClient(client)
	if _, err := admin.CreateTopics(ctx, 1, 1, nil, cfg.AuditTopic); err != nil {
		// Topic may already exist; anything else surfaces on first produce.
		logger.Printf("component=alta/internal/audit/outbox msg=%q cause=%v", "create topic", err)
	}

	return &Worker{
		db:       db,
		client:   client,
		topic:    cfg.AuditTopic,
		interval: cfg.PollInterval,
		log:      logger,
	}, nil
}

// Run drains the outbox until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer w.client.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.drain(ctx); err != nil {
				w.log.Printf("component=alta/internal/audit/outbox msg=%q cause=%v", "drain failed", err)
			}
		}
	}
}

const selectPendingSQL = `
	SELECT id, aggregate_id, payload
	FROM outbox
	WHERE published_at IS NULL
	ORDER BY created_at
	LIMIT 100
`

const markPublishedSQL = `
	UPDATE outbox SET published_at = NOW() WHERE id = $1 AND published_at IS NULL
`

type pendingEntry struct {
	id          string
	aggregateID string
	payload     []byte
}

func (w *Worker) drain(ctx context.Context) error {
	rows, err := w.db.QueryContext(ctx, selectPendingSQL)
	if err != nil {
		return fmt.Errorf("select pending outbox entries: %w", err)
	}
	var pending []pendingEntry
	for rows.Next() {
		var entry pendingEntry
		if err := rows.Scan(&entry.id, &entry.aggregateID, &entry.payload); err != nil {
			rows.Close()
			return fmt.Errorf("scan outbox entry: %w", err)
		}
		pending = append(pending, entry)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterate outbox entries: %w", err)
	}
	rows.Close()

	for _, entry := range pending {
		record := &kgo.Record{
			Key:   []byte(entry.aggregateID),
			Value: entry.payload,
		}
		if err := w.client.ProduceSync(ctx, record).FirstErr(); err != nil {
			return fmt.Errorf("produce outbox entry %s: %w", entry.id, err)
		}
		if _, err := w.db.ExecContext(ctx, markPublishedSQL, entry.id); err != nil {
			return fmt.Errorf("mark outbox entry %s published: %w", entry.id, err)
		}
	}
	return nil
}
