package onboarding

// Machine-readable rejection reasons. These are stable contract values,
// distinct from the human-readable messages, and are what clients and tests
// branch on.
const (
	ReasonInvalidUserID        = "NON_BUSINESS_SEARCH_ERROR_INVALID_USER_ID"
	ReasonDocumentsNotMatching = "NON_BUSINESS_SEARCH_ERROR_DOCUMENTS_NOT_MATCHING"
	ReasonAlreadyClient        = "NON_BUSINESS_SEARCH_ERROR_ALREADY_CLIENT"
	ReasonInvalidStatus        = "NON_BUSINESS_SEARCH_ERROR_INVALID_STATUS"
	ReasonCertificateExpired   = "NON_BUSINESS_SEARCH_ERROR_DGI_CERTIFICADO_VENCIDO"
	ReasonNotUnipersonal       = "NON_BUSINESS_SEARCH_ERROR_DGI_NOT_UNIPERSONAL"
	ReasonNamesNotMatching     = "NON_BUSINESS_SEARCH_ERROR_DGI_NAMES_NOT_MATCHING"

	ReasonInvalidRUT           = "NON_BUSINESS_POST_ERROR_INVALID_RUT"
	ReasonInvalidOwnerDocument = "NON_BUSINESS_POST_ERROR_INVALID_OWNER_DOCUMENT"
	ReasonFinalState           = "NON_BUSINESS_POST_ERROR_FINAL_STATE"

	ReasonInvalidMail            = "NON_BUSINESS_CONTACT_ERROR_INVALID_MAIL"
	ReasonMailBlacklisted        = "NON_BUSINESS_CONTACT_ERROR_MAIL_BLACKLISTED"
	ReasonInvalidMobile          = "NON_BUSINESS_CONTACT_ERROR_INVALID_MOBILE"
	ReasonUnsupportedContactType = "NON_BUSINESS_CONTACT_ERROR_UNSUPPORTED_TYPE"

	ReasonInvalidUserName = "NON_BUSINESS_PATCH_ERROR_INVALID_USER_NAME"
	ReasonInvalidPassword = "NON_BUSINESS_PATCH_ERROR_INVALID_PASSWORD"

	ReasonUnknownTerm = "NON_BUSINESS_TERMS_ERROR_UNKNOWN_TERM"

	// ReasonStatusConflict reports that the stored status moved between the
	// engine's read and its guarded write.
	ReasonStatusConflict = "NON_BUSINESS_ERROR_STATUS_CONFLICT"
)
