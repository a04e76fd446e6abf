// Package onboarding implements the status-driven workflow that brings a
// sole proprietorship into the customer base. The database is the source of
// truth for workflow state: every operation reads the current status,
// enforces its precondition, calls collaborators, persists updates, advances
// the status, and audits the outcome, accepted or rejected.
package onboarding

import (
	"context"
	"log"
	"time"

	"alta/internal/address"
	"alta/internal/audit"
	"alta/internal/domain"
	"alta/internal/identity"
	"alta/internal/names"
	"alta/internal/onboarding/metrics"
	"alta/internal/registry"
	"alta/internal/risk"
	dErrors "alta/pkg/domain-errors"
	"alta/pkg/platform/sentinel"
)

// Config carries the engine's behavioral switches, injected at construction.
type Config struct {
	// ValidateName enables the legal-name structure and similarity checks in
	// the search operation.
	ValidateName bool
}

// Service is the onboarding workflow engine. It holds no cross-request
// mutable state; all durable state lives behind Store keyed by entity
// identity.
type Service struct {
	cfg      Config
	store    Store
	auditor  *audit.Publisher
	codec    identity.Codec
	registry registry.Client
	risk     risk.Screener
	names    names.Validator
	mapper   address.Mapper
	metrics  *metrics.Metrics
	log      *log.Logger
	now      func() time.Time
}

// Option customizes optional service collaborators.
type Option func(*Service)

// WithMetrics attaches workflow metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides the engine clock, used by tests to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(
	cfg Config,
	store Store,
	auditor *audit.Publisher,
	codec identity.Codec,
	registryClient registry.Client,
	screener risk.Screener,
	validator names.Validator,
	mapper address.Mapper,
	logger *log.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		cfg:      cfg,
		store:    store,
		auditor:  auditor,
		codec:    codec,
		registry: registryClient,
		risk:     screener,
		names:    validator,
		mapper:   mapper,
		log:      logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// auditStatus appends one audit record for a transition attempt. Audit
// failures are infrastructure faults and propagate: a transition that cannot
// be audited did not happen.
func (s *Service) auditStatus(ctx context.Context, id domain.EntityIdentity, st domain.Status) error {
	return s.auditor.Emit(ctx, audit.Record{Identity: id, Status: st, Timestamp: s.now()})
}

// reject audits the rejection outcome and returns a classified validation
// error carrying the machine-readable reason.
func (s *Service) reject(ctx context.Context, id domain.EntityIdentity, auditCode domain.StatusCode, process, reason, msg string) error {
	if err := s.auditStatus(ctx, id, domain.Status{Code: auditCode, Process: process, Message: msg}); err != nil {
		return err
	}
	return dErrors.New(dErrors.CodeValidation, msg).WithReason(reason)
}

// advanceStatus writes the next status guarded by the previously-read one.
// A zero-row guarded update means a concurrent operation moved the status
// first; the engine surfaces that instead of last-write-wins.
func (s *Service) advanceStatus(ctx context.Context, id domain.EntityIdentity, current domain.Status, next domain.Status) error {
	if current.Empty() {
		return s.store.InsertStatus(ctx, id, next)
	}
	count, err := s.store.UpdateStatus(ctx, id, current.Code, next)
	if err != nil {
		return err
	}
	if count == 0 {
		return dErrors.Wrap(sentinel.ErrConflict, dErrors.CodeConflict, "status changed concurrently").
			WithReason(ReasonStatusConflict)
	}
	return nil
}

// observe records metrics for one operation invocation.
func (s *Service) observe(operation string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case dErrors.HasCode(err, dErrors.CodeValidation) || dErrors.HasCode(err, dErrors.CodeConflict):
		outcome = "rejected"
	default:
		outcome = "error"
	}
	s.metrics.IncrementOutcome(operation, outcome)
	s.metrics.ObserveOperation(operation, time.Since(start))
}
