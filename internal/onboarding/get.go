package onboarding

import (
	"context"
	"strings"
	"time"

	"alta/internal/domain"
)

// Expand markers accepted by GetByID, matched case-insensitively.
const (
	expandOwner    = "owner"
	expandContacts = "contacts"
)

// GetByID fetches the onboarding aggregate for a token. The caller-supplied
// token is stamped back onto the result rather than re-issued.
func (s *Service) GetByID(ctx context.Context, token, expand string) (result *domain.NonBusiness, err error) {
	start := time.Now()
	defer func() { s.observe("get", start, err) }()

	id, err := s.codec.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	opts := parseExpand(expand)
	record, err := s.store.GetNonBusiness(ctx, id, opts)
	if err != nil {
		return nil, err
	}
	record.Token = token
	return record, nil
}

func parseExpand(expand string) ExpandOptions {
	var opts ExpandOptions
	for _, part := range strings.Split(expand, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case expandOwner:
			opts.Owner = true
		case expandContacts:
			opts.Contacts = true
		}
	}
	return opts
}
