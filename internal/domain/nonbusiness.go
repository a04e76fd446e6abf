package domain

// NonBusiness is the onboarding aggregate as read back by getNonBusinessById.
// Owner and Contact are populated only when the caller asked for them via
// expand markers.
type NonBusiness struct {
	Token            string
	BusinessDocument string
	LegalName        string
	TradeName        string
	Status           Status
	Owner            *Owner
	Contact          *ContactInfo
	Address          *AddressRecord
}

// Owner is the natural person behind the sole proprietorship.
type Owner struct {
	Document     string
	DocumentType string
	Country      string
	FirstName    string
	LastName     string
}

// ContactInfo is the captured contact channel data.
type ContactInfo struct {
	Email     string
	Cellphone string
}

// BankBranch identifies the branch chosen during the patch step.
type BankBranch struct {
	Bank   string
	Branch string
}

// LegalDocument is one registered legal document in the patch payload.
// Formation data applies only when a BPS registration entry is present.
type LegalDocument struct {
	Type   string
	Number string
}

// LegalDocumentBPSRegistration marks the social-security registration entry
// that gates formation data.
const LegalDocumentBPSRegistration = "BPS_REGISTRATION"

// FormationData captures company formation details from the patch payload.
type FormationData struct {
	FormationDate  string
	BPSNumber      string
	SocialSecurity string
}

// UserCredentials is the credential block of the patch payload. Password
// rules: length 8-16, at least two digits and two letters.
type UserCredentials struct {
	Name     string
	Password string
}

// NonBusinessPatch is the conditional patch payload: every block is optional
// and applied independently.
type NonBusinessPatch struct {
	TradeName      string
	Branch         *BankBranch
	Formation      *FormationData
	LegalDocuments []LegalDocument
	User           *UserCredentials
}

// BPSRegistration returns the BPS registration document if the payload
// carries one. Formation data is dropped without it.
func (p NonBusinessPatch) BPSRegistration() (LegalDocument, bool) {
	for _, doc := range p.LegalDocuments {
		if doc.Type == LegalDocumentBPSRegistration {
			return doc, true
		}
	}
	return LegalDocument{}, false
}

// PatchOutcome reports which optional blocks of a patch were applied. The
// workflow advances status regardless, so callers need this to tell an
// effective patch from an empty one, and to observe the formation-data skip
// when no BPS registration document was supplied.
type PatchOutcome struct {
	TradeNameApplied   bool
	BranchApplied      bool
	FormationApplied   bool
	FormationSkipped   bool
	CredentialsApplied bool
}

// EconomicData is persisted verbatim by the economic-data patch.
type EconomicData struct {
	ActivityCode   string
	ActivitySector string
	AnnualIncome   string
	Currency       string
	EmployeeCount  int
}

// SearchResult is returned by a successful search: the registry snapshot
// projected for the caller.
type SearchResult struct {
	LegalName    string
	Address      string
	Document     string
	DocumentType string
}
