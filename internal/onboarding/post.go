package onboarding

import (
	"context"
	"time"

	"alta/internal/domain"
	dErrors "alta/pkg/domain-errors"
)

// Post creates or resumes the onboarding record for the identity and returns
// the opaque entity token. Re-entry is idempotent: an existing record is not
// recreated, and an INGRESO status advances to RETOMA.
func (s *Service) Post(ctx context.Context, rut, ownerDocument, cellphone string) (token string, err error) {
	start := time.Now()
	defer func() { s.observe("post", start, err) }()

	if !isNumeric(rut) {
		return "", dErrors.New(dErrors.CodeValidation, "rut must be numeric").
			WithReason(ReasonInvalidRUT)
	}
	if !isNumeric(ownerDocument) {
		return "", dErrors.New(dErrors.CodeValidation, "owner document must be numeric").
			WithReason(ReasonInvalidOwnerDocument)
	}
	id := domain.NewEntityIdentity(ownerDocument, rut)

	current, err := s.store.GetStatus(ctx, id)
	if err != nil {
		return "", err
	}
	if current.Code.Terminal() {
		return "", s.reject(ctx, id, domain.AuditInvalidStatus, domain.ProcessPost,
			ReasonFinalState, "final state")
	}

	// The create is a no-op when the record already exists, so re-entry at
	// any non-terminal stage is safe.
	if _, err := s.store.CreateNonBusiness(ctx, id, cellphone); err != nil {
		return "", err
	}

	resulting := domain.Status{Code: domain.StatusRetoma, Process: domain.ProcessPost}
	switch {
	case current.Empty():
		resulting.Code = domain.StatusIngreso
		if err := s.store.InsertStatus(ctx, id, resulting); err != nil {
			return "", err
		}
	case current.Code == domain.StatusIngreso:
		if err := s.advanceStatus(ctx, id, current, resulting); err != nil {
			return "", err
		}
	}

	if err := s.auditStatus(ctx, id, resulting); err != nil {
		return "", err
	}

	token, err = s.codec.Issue(ctx, id)
	if err != nil {
		return "", err
	}
	return token, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
