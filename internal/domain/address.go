package domain

// CallerAddress is the address as supplied by the caller, before department
// codes and street fields are normalized.
type CallerAddress struct {
	Department   string
	Locality     string
	Street       string
	Number       string
	Apartment    string
	PostalCode   string
	AddressLine  string
	Observations string
}

// AddressRecord is the normalized address persisted on the onboarding record.
type AddressRecord struct {
	DepartmentCode string
	DepartmentName string
	Locality       string
	Street         string
	Number         string
	Apartment      string
	PostalCode     string
	Formatted      string
}
