package onboarding

import (
	"context"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"alta/internal/domain"
	dErrors "alta/pkg/domain-errors"
)

// Patch conditionally applies the optional payload blocks and always
// advances the status to NB_USER_OK, even when no block applied. That
// unconditional advance is a deliberate contract: the patch step marks the
// case as reviewed. The outcome reports which blocks took effect, including
// the formation-data skip when no BPS registration document was supplied.
func (s *Service) Patch(ctx context.Context, token string, patch domain.NonBusinessPatch) (outcome *domain.PatchOutcome, err error) {
	start := time.Now()
	defer func() { s.observe("patch", start, err) }()

	id, err := s.codec.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	out := &domain.PatchOutcome{}

	if patch.TradeName != "" {
		if err := s.store.SaveTradeName(ctx, id, patch.TradeName); err != nil {
			return nil, err
		}
		out.TradeNameApplied = true
	}

	if patch.Branch != nil && patch.Branch.Bank != "" && patch.Branch.Branch != "" {
		if err := s.store.SaveBranch(ctx, id, *patch.Branch); err != nil {
			return nil, err
		}
		out.BranchApplied = true
	}

	if patch.Formation != nil {
		if _, ok := patch.BPSRegistration(); ok {
			if err := s.store.SaveFormationData(ctx, id, *patch.Formation); err != nil {
				return nil, err
			}
			out.FormationApplied = true
		} else {
			out.FormationSkipped = true
		}
	}

	if patch.User != nil {
		if err := s.createCredentials(ctx, id, *patch.User); err != nil {
			return nil, err
		}
		out.CredentialsApplied = true
	}

	current, err := s.store.GetStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	next := domain.Status{Code: domain.StatusUser, Process: domain.ProcessPatch}
	if err := s.advanceStatus(ctx, id, current, next); err != nil {
		return nil, err
	}
	if err := s.auditStatus(ctx, id, next); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) createCredentials(ctx context.Context, id domain.EntityIdentity, user domain.UserCredentials) error {
	if user.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "user name is required").
			WithReason(ReasonInvalidUserName)
	}
	if err := validatePassword(user.Password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "temporary password hashing failed")
	}
	return s.store.CreateTemporaryCredentials(ctx, id, user.Name, string(hash))
}

// validatePassword enforces length 8-16 with at least two digits and two
// letters.
func validatePassword(password string) error {
	if len(password) < 8 || len(password) > 16 {
		return dErrors.New(dErrors.CodeValidation, "password must be 8 to 16 characters").
			WithReason(ReasonInvalidPassword)
	}
	digits, letters := 0, 0
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			letters++
		}
	}
	if digits < 2 || letters < 2 {
		return dErrors.New(dErrors.CodeValidation, "password must contain at least two digits and two letters").
			WithReason(ReasonInvalidPassword)
	}
	return nil
}
