package domain

// StatusCode enumerates the onboarding workflow stages. The database, not an
// in-memory state machine, is the source of truth: each operation reads the
// current code, checks its precondition, and writes at most one new code.
type StatusCode string

const (
	// Entry and resume codes written by the post operation.
	StatusIngreso StatusCode = "INGRESO"
	StatusRetoma  StatusCode = "RETOMA"

	// Intermediate stage codes, one per workflow operation.
	StatusDGIOK    StatusCode = "DGI_OK"
	StatusContact  StatusCode = "NB_CNT_OK"
	StatusAddress  StatusCode = "NB_ADD_OK"
	StatusUser     StatusCode = "NB_USER_OK"
	StatusEconomic StatusCode = "NB_ECO_OK"
	StatusTerms    StatusCode = "NB_TYC_OK"

	// Terminal codes. No workflow operation proceeds from these.
	StatusProcessed StatusCode = "PROCESADO"
	StatusCancelled StatusCode = "ANULADO"
)

// Audit-only outcome codes. These are never stored as the entity's current
// status; they record rejected attempts and contact-channel specifics in the
// audit trail.
const (
	AuditAlreadyClient   StatusCode = "NB_CLI_ERR"
	AuditInvalidStatus   StatusCode = "NB_ESI_ERR"
	AuditCertExpired     StatusCode = "DGICRT_ERR"
	AuditNotUnipersonal  StatusCode = "DGINTU_ERR"
	AuditNamesMismatch   StatusCode = "DGINTC_ERR"
	AuditMailBlacklisted StatusCode = "NB_EBL_ERR"
	AuditContactEmail    StatusCode = "NB_CNTE_OK"
	AuditContactMobile   StatusCode = "NB_CNTM_OK"
)

// Process names identify which workflow step produced a status transition.
const (
	ProcessSearch   = "NON_BUSINESS_SEARCH"
	ProcessPost     = "NON_BUSINESS_POST"
	ProcessContact  = "NON_BUSINESS_CONTACT"
	ProcessAddress  = "NON_BUSINESS_ADDRESS"
	ProcessPatch    = "NON_BUSINESS_PATCH"
	ProcessEconomic = "NON_BUSINESS_ECONOMIC_DATA"
	ProcessTerms    = "NON_BUSINESS_TERMS"
)

// Status describes one workflow transition: the stage code, the process that
// produced it, and an optional free-text detail. It is an immutable value;
// every write is paired with an audit record.
type Status struct {
	Code    StatusCode
	Process string
	Message string
}

// Empty reports whether no status has been recorded for the entity yet.
func (s Status) Empty() bool { return s.Code == "" }

// Terminal reports whether the code is absorbing: search and post refuse to
// proceed from these.
func (c StatusCode) Terminal() bool {
	return c == StatusProcessed || c == StatusCancelled
}

// EntryOrResume reports whether the code marks workflow entry or re-entry.
func (c StatusCode) EntryOrResume() bool {
	return c == StatusIngreso || c == StatusRetoma
}
