package onboarding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alta/internal/domain"
	dErrors "alta/pkg/domain-errors"
	"alta/pkg/platform/sentinel"
)

// UpdateTerms records terms acceptance by advancing the status to NB_TYC_OK
// with an audit message embedding the term id and resolved version. The
// audit trail is the acceptance record; there is no separate acceptance
// table. Repeating the call appends a new audit record and never errors.
func (s *Service) UpdateTerms(ctx context.Context, token, termID string) (err error) {
	start := time.Now()
	defer func() { s.observe("terms", start, err) }()

	id, err := s.codec.Resolve(ctx, token)
	if err != nil {
		return err
	}

	version, err := s.store.GetTermVersion(ctx, termID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Newf(dErrors.CodeValidation, "unknown term %q", termID).
				WithReason(ReasonUnknownTerm)
		}
		return err
	}

	current, err := s.store.GetStatus(ctx, id)
	if err != nil {
		return err
	}
	next := domain.Status{
		Code:    domain.StatusTerms,
		Process: domain.ProcessTerms,
		Message: fmt.Sprintf("term %s version %s accepted", termID, version),
	}
	if err := s.advanceStatus(ctx, id, current, next); err != nil {
		return err
	}
	return s.auditStatus(ctx, id, next)
}
