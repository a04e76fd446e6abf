package onboarding

import (
	"context"
	"regexp"
	"time"

	"alta/internal/domain"
	dErrors "alta/pkg/domain-errors"
)

var (
	// RFC-lite: local@domain.tld with a TLD of at least two letters.
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	// Uruguayan mobile numbers: 09 followed by exactly seven digits.
	mobilePattern = regexp.MustCompile(`^09[0-9]{7}$`)
)

// CreateContactDetail records a contact channel on both the person and the
// business records and advances the status to NB_CNT_OK. Pattern validation
// failures return before any persistence call; a blacklisted email is an
// audited rejection. An unrecognized contact kind is an explicit rejection.
func (s *Service) CreateContactDetail(ctx context.Context, token string, contact domain.ContactDetail) (err error) {
	start := time.Now()
	defer func() { s.observe("contact", start, err) }()

	id, err := s.codec.Resolve(ctx, token)
	if err != nil {
		return err
	}

	switch c := contact.(type) {
	case domain.EmailContact:
		return s.createEmailContact(ctx, id, c.Address)
	case domain.MobileContact:
		return s.createMobileContact(ctx, id, c.Number)
	default:
		return dErrors.New(dErrors.CodeValidation, "unsupported contact type").
			WithReason(ReasonUnsupportedContactType)
	}
}

func (s *Service) createEmailContact(ctx context.Context, id domain.EntityIdentity, address string) error {
	if address == "" || !emailPattern.MatchString(address) {
		return dErrors.New(dErrors.CodeValidation, "invalid mail").
			WithReason(ReasonInvalidMail)
	}

	blacklisted, err := s.risk.IsMailBlacklisted(ctx, address, id)
	if err != nil {
		s.log.Printf("component=alta/internal/risk msg=%q cause=%v", "blacklist screening failed", err)
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "blacklist screening failed").
			WithComponent("alta/internal/risk")
	}
	if blacklisted {
		return s.reject(ctx, id, domain.AuditMailBlacklisted, domain.ProcessContact,
			ReasonMailBlacklisted, "invalid mail")
	}

	current, err := s.store.GetStatus(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.SaveEmail(ctx, id, address); err != nil {
		return err
	}
	next := domain.Status{Code: domain.StatusContact, Process: domain.ProcessContact}
	if err := s.advanceStatus(ctx, id, current, next); err != nil {
		return err
	}
	return s.auditStatus(ctx, id, domain.Status{
		Code:    domain.AuditContactEmail,
		Process: domain.ProcessContact,
	})
}

func (s *Service) createMobileContact(ctx context.Context, id domain.EntityIdentity, number string) error {
	if number == "" || !mobilePattern.MatchString(number) {
		return dErrors.New(dErrors.CodeValidation, "invalid mobile number").
			WithReason(ReasonInvalidMobile)
	}

	current, err := s.store.GetStatus(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.SaveCellphone(ctx, id, number); err != nil {
		return err
	}
	next := domain.Status{Code: domain.StatusContact, Process: domain.ProcessContact}
	if err := s.advanceStatus(ctx, id, current, next); err != nil {
		return err
	}
	return s.auditStatus(ctx, id, domain.Status{
		Code:    domain.AuditContactMobile,
		Process: domain.ProcessContact,
	})
}
