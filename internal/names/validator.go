// Package names validates the legal name of a sole proprietorship against
// its registered owner. A unipersonal legal name is the owner's personal
// name as registered with DGI, so the checks are structural and
// token-overlap based rather than exact.
package names

import (
	"strings"
	"unicode"
)

// Validator decides whether a registry legal name looks like a sole
// proprietorship and whether it sufficiently matches the owner's name.
type Validator interface {
	ValidateStructure(legalName string) bool
	Similar(ownerName, legalName string) bool
}

// DefaultValidator implements the production checks.
type DefaultValidator struct{}

// ValidateStructure accepts names of two to five words made of letters only.
// Company-form suffixes (S.A., S.R.L.) disqualify the name: those are not
// sole proprietorships.
func (DefaultValidator) ValidateStructure(legalName string) bool {
	tokens := tokens(legalName)
	if len(tokens) < 2 || len(tokens) > 5 {
		return false
	}
	for _, tok := range tokens {
		if companyForms[tok] {
			return false
		}
		for _, r := range tok {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}

// Similar reports whether at least half of the owner's name tokens appear in
// the registry legal name, ignoring case and Spanish accents.
func (DefaultValidator) Similar(ownerName, legalName string) bool {
	owner := tokens(ownerName)
	if len(owner) == 0 {
		return false
	}
	legal := make(map[string]bool, 8)
	for _, tok := range tokens(legalName) {
		legal[tok] = true
	}
	matched := 0
	for _, tok := range owner {
		if legal[tok] {
			matched++
		}
	}
	return matched*2 >= len(owner)
}

var companyForms = map[string]bool{
	"SA": true, "SRL": true, "SAS": true, "LTDA": true,
}

func tokens(name string) []string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = normalize(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func normalize(tok string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(tok) {
		if folded, ok := accentFold[r]; ok {
			r = folded
		}
		b.WriteRune(r)
	}
	return b.String()
}

var accentFold = map[rune]rune{
	'Á': 'A', 'É': 'E', 'Í': 'I', 'Ó': 'O', 'Ú': 'U', 'Ü': 'U', 'Ñ': 'N',
}
