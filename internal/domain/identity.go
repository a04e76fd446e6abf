package domain

// EntityIdentity is the composite key identifying one onboarding case: the
// owner's personal document and the sole proprietorship's business document.
// It is immutable for the duration of a request and never persisted raw at
// the API boundary; the identity codec translates it to and from an opaque
// token.
type EntityIdentity struct {
	OwnerCountry         string
	OwnerDocumentType    string
	OwnerDocument        string
	BusinessCountry      string
	BusinessDocumentType string
	BusinessDocument     string
}

// Document type codes used across the workflow. RUT identifies the business
// with the tax authority; CI identifies the owner.
const (
	DocumentTypeCI  = "CI"
	DocumentTypeRUT = "RUT"
)

// DefaultCountry is the operating country for the onboarding flow.
const DefaultCountry = "UY"

// NewEntityIdentity builds a fully-populated identity from the owner and
// business documents using the default country and document types. Store
// calls require every field set; partial identities are never constructed.
func NewEntityIdentity(ownerDocument, businessDocument string) EntityIdentity {
	return EntityIdentity{
		OwnerCountry:         DefaultCountry,
		OwnerDocumentType:    DocumentTypeCI,
		OwnerDocument:        ownerDocument,
		BusinessCountry:      DefaultCountry,
		BusinessDocumentType: DocumentTypeRUT,
		BusinessDocument:     businessDocument,
	}
}

// Complete reports whether both document pairs are populated. DAO calls
// reject incomplete identities before touching the database.
func (id EntityIdentity) Complete() bool {
	return id.OwnerDocument != "" && id.OwnerDocumentType != "" && id.OwnerCountry != "" &&
		id.BusinessDocument != "" && id.BusinessDocumentType != "" && id.BusinessCountry != ""
}
