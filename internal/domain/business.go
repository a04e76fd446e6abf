package domain

import "time"

// BusinessInformation is the registry (DGI) snapshot for a sole
// proprietorship, fetched fresh per search and persisted as a cache of the
// last known registry state. It is not authoritative for status decisions
// beyond the expiration and legal-name checks.
type BusinessInformation struct {
	LegalName      string
	LegalAddress   string
	RUT            string
	ExpirationDate string
}

// Certificate expiration dates arrive as free text from the registry. The
// accepted layouts; anything else is treated as "no expiration".
var expirationLayouts = []string{"02/01/2006", "2006-01-02"}

// ParseExpiration parses the registry expiration date. The second return is
// false when the value is absent or unparseable, which callers must treat as
// "no constraint" rather than an error.
func (b BusinessInformation) ParseExpiration() (time.Time, bool) {
	if b.ExpirationDate == "" {
		return time.Time{}, false
	}
	for _, layout := range expirationLayouts {
		if t, err := time.Parse(layout, b.ExpirationDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Expired reports whether the certificate expiration parses and is strictly
// before the given day. An unparseable date never blocks.
func (b BusinessInformation) Expired(today time.Time) bool {
	exp, ok := b.ParseExpiration()
	if !ok {
		return false
	}
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return exp.Before(day)
}
