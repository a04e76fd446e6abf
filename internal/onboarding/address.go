package onboarding

import (
	"context"
	"time"

	"alta/internal/domain"
)

// CreateAddress maps the caller address against department reference data,
// persists it, and advances the status to NB_ADD_OK.
func (s *Service) CreateAddress(ctx context.Context, token string, addr domain.CallerAddress) (err error) {
	start := time.Now()
	defer func() { s.observe("address", start, err) }()

	id, err := s.codec.Resolve(ctx, token)
	if err != nil {
		return err
	}

	departments, err := s.store.GetDepartments(ctx)
	if err != nil {
		return err
	}
	record, err := s.mapper.ToRecord(addr, departments)
	if err != nil {
		return err
	}

	current, err := s.store.GetStatus(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.SaveAddress(ctx, id, record); err != nil {
		return err
	}

	next := domain.Status{Code: domain.StatusAddress, Process: domain.ProcessAddress}
	if err := s.advanceStatus(ctx, id, current, next); err != nil {
		return err
	}
	return s.auditStatus(ctx, id, next)
}
