// Package address maps caller-supplied addresses to the normalized record
// persisted on the onboarding case.
package address

import (
	"fmt"
	"strings"

	"alta/internal/domain"
	dErrors "alta/pkg/domain-errors"
)

// ReasonUnknownDepartment rejects addresses referencing a department code
// absent from reference data.
const ReasonUnknownDepartment = "NON_BUSINESS_ADDRESS_ERROR_UNKNOWN_DEPARTMENT"

// Mapper normalizes a caller address against the departments reference data.
type Mapper interface {
	ToRecord(addr domain.CallerAddress, departments map[string]string) (domain.AddressRecord, error)
}

// DefaultMapper implements the production mapping.
type DefaultMapper struct{}

func (DefaultMapper) ToRecord(addr domain.CallerAddress, departments map[string]string) (domain.AddressRecord, error) {
	name, ok := departments[addr.Department]
	if !ok {
		return domain.AddressRecord{}, dErrors.Newf(dErrors.CodeValidation, "unknown department %q", addr.Department).
			WithReason(ReasonUnknownDepartment)
	}
	record := domain.AddressRecord{
		DepartmentCode: addr.Department,
		DepartmentName: name,
		Locality:       strings.TrimSpace(addr.Locality),
		Street:         strings.TrimSpace(addr.Street),
		Number:         strings.TrimSpace(addr.Number),
		Apartment:      strings.TrimSpace(addr.Apartment),
		PostalCode:     strings.TrimSpace(addr.PostalCode),
	}
	record.Formatted = Format(record)
	return record, nil
}

// Format renders the single-line presentation of an address record.
func Format(rec domain.AddressRecord) string {
	var b strings.Builder
	b.WriteString(rec.Street)
	if rec.Number != "" {
		fmt.Fprintf(&b, " %s", rec.Number)
	}
	if rec.Apartment != "" {
		fmt.Fprintf(&b, " ap. %s", rec.Apartment)
	}
	if rec.Locality != "" {
		fmt.Fprintf(&b, ", %s", rec.Locality)
	}
	if rec.DepartmentName != "" {
		fmt.Fprintf(&b, ", %s", rec.DepartmentName)
	}
	return strings.TrimSpace(b.String())
}
