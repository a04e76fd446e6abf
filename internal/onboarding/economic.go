package onboarding

import (
	"context"
	"time"

	"alta/internal/domain"
)

// PatchEconomicData persists the economic data block and advances the status
// to NB_ECO_OK. There is no conditional branching: the payload is stored as
// supplied.
func (s *Service) PatchEconomicData(ctx context.Context, token string, data domain.EconomicData) (err error) {
	start := time.Now()
	defer func() { s.observe("economic", start, err) }()

	id, err := s.codec.Resolve(ctx, token)
	if err != nil {
		return err
	}

	current, err := s.store.GetStatus(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.SaveEconomicData(ctx, id, data); err != nil {
		return err
	}

	next := domain.Status{Code: domain.StatusEconomic, Process: domain.ProcessEconomic}
	if err := s.advanceStatus(ctx, id, current, next); err != nil {
		return err
	}
	return s.auditStatus(ctx, id, next)
}
