package onboarding

import (
	"context"

	"alta/internal/domain"
)

// ExpandOptions controls which optional blocks getNonBusinessById loads.
type ExpandOptions struct {
	Owner    bool
	Contacts bool
}

// Store is the persistence boundary consumed by the workflow engine. Each
// method maps to a single parameterized statement executed under the
// statement execution contract; implementations are pure I/O and return
// sentinel or classified errors, never business decisions.
type Store interface {
	// GetStatus returns the current status for an identity, or a zero Status
	// when none has been recorded yet.
	GetStatus(ctx context.Context, id domain.EntityIdentity) (domain.Status, error)

	// InsertStatus records the first status for an identity.
	InsertStatus(ctx context.Context, id domain.EntityIdentity, st domain.Status) error

	// UpdateStatus advances the status only when the stored code still equals
	// expected, returning the affected-row count. Zero rows means the status
	// moved underneath the caller; the engine decides significance.
	UpdateStatus(ctx context.Context, id domain.EntityIdentity, expected domain.StatusCode, next domain.Status) (int64, error)

	// CreateNonBusiness creates the onboarding record, ignoring duplicates so
	// re-entry stays idempotent. Returns the affected-row count.
	CreateNonBusiness(ctx context.Context, id domain.EntityIdentity, cellphone string) (int64, error)

	GetNonBusiness(ctx context.Context, id domain.EntityIdentity, opts ExpandOptions) (*domain.NonBusiness, error)

	// GetOwnerName returns the registered name of the owner person, used by
	// the legal-name similarity check.
	GetOwnerName(ctx context.Context, id domain.EntityIdentity) (string, error)

	// IsClient reports whether the rut already belongs to a bank customer.
	IsClient(ctx context.Context, rut string) (bool, error)

	// SaveBusinessInformation caches the latest registry snapshot.
	SaveBusinessInformation(ctx context.Context, id domain.EntityIdentity, info domain.BusinessInformation) error

	// SaveEmail and SaveCellphone persist the contact channel on both the
	// person and the business records.
	SaveEmail(ctx context.Context, id domain.EntityIdentity, address string) error
	SaveCellphone(ctx context.Context, id domain.EntityIdentity, number string) error

	SaveAddress(ctx context.Context, id domain.EntityIdentity, rec domain.AddressRecord) error
	SaveTradeName(ctx context.Context, id domain.EntityIdentity, name string) error
	SaveBranch(ctx context.Context, id domain.EntityIdentity, branch domain.BankBranch) error
	SaveFormationData(ctx context.Context, id domain.EntityIdentity, data domain.FormationData) error

	// CreateTemporaryCredentials stores the credential name and the hashed
	// temporary password.
	CreateTemporaryCredentials(ctx context.Context, id domain.EntityIdentity, name, passwordHash string) error

	SaveEconomicData(ctx context.Context, id domain.EntityIdentity, data domain.EconomicData) error

	// GetTermVersion resolves the current version for a term id.
	GetTermVersion(ctx context.Context, termID string) (string, error)

	// GetDepartments returns the department reference data (code -> name).
	GetDepartments(ctx context.Context) (map[string]string, error)
}
