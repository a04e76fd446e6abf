package httptransport

import "alta/internal/domain"

type searchRequest struct {
	UserID           string `json:"userId"`
	BusinessDocument string `json:"businessDocument"`
}

type postRequest struct {
	RUT           string `json:"rut"`
	OwnerDocument string `json:"ownerDocument"`
	Cellphone     string `json:"cellphone"`
}

type contactRequest struct {
	Type   string `json:"type"`
	Email  string `json:"email,omitempty"`
	Mobile string `json:"mobile,omitempty"`
}

// Contact detail types accepted on the wire.
const (
	contactTypeEmail  = "EMAIL"
	contactTypeMobile = "MOBILE"
)

type addressRequest struct {
	Department   string `json:"department"`
	Locality     string `json:"locality"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Apartment    string `json:"apartment,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Observations string `json:"observations,omitempty"`
}

func (r addressRequest) toDomain() domain.CallerAddress {
	return domain.CallerAddress{
		Department:   r.Department,
		Locality:     r.Locality,
		Street:       r.Street,
		Number:       r.Number,
		Apartment:    r.Apartment,
		PostalCode:   r.PostalCode,
		Observations: r.Observations,
	}
}

type patchRequest struct {
	TradeName      string                 `json:"tradeName,omitempty"`
	Branch         *branchRequest         `json:"branch,omitempty"`
	Formation      *formationRequest      `json:"formation,omitempty"`
	LegalDocuments []legalDocumentRequest `json:"legalDocuments,omitempty"`
	User           *userRequest           `json:"user,omitempty"`
}

type branchRequest struct {
	Bank   string `json:"bank"`
	Branch string `json:"branch"`
}

type formationRequest struct {
	FormationDate  string `json:"formationDate"`
	BPSNumber      string `json:"bpsNumber"`
	SocialSecurity string `json:"socialSecurity"`
}

type legalDocumentRequest struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type userRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r patchRequest) toDomain() domain.NonBusinessPatch {
	patch := domain.NonBusinessPatch{TradeName: r.TradeName}
	if r.Branch != nil {
		patch.Branch = &domain.BankBranch{Bank: r.Branch.Bank, Branch: r.Branch.Branch}
	}
	if r.Formation != nil {
		patch.Formation = &domain.FormationData{
			FormationDate:  r.Formation.FormationDate,
			BPSNumber:      r.Formation.BPSNumber,
			SocialSecurity: r.Formation.SocialSecurity,
		}
	}
	for _, doc := range r.LegalDocuments {
		patch.LegalDocuments = append(patch.LegalDocuments, domain.LegalDocument{
			Type:   doc.Type,
			Number: doc.Number,
		})
	}
	if r.User != nil {
		patch.User = &domain.UserCredentials{Name: r.User.Name, Password: r.User.Password}
	}
	return patch
}

type economicDataRequest struct {
	ActivityCode   string `json:"activityCode"`
	ActivitySector string `json:"activitySector"`
	AnnualIncome   string `json:"annualIncome"`
	Currency       string `json:"currency"`
	EmployeeCount  int    `json:"employeeCount"`
}

func (r economicDataRequest) toDomain() domain.EconomicData {
	return domain.EconomicData{
		ActivityCode:   r.ActivityCode,
		ActivitySector: r.ActivitySector,
		AnnualIncome:   r.AnnualIncome,
		Currency:       r.Currency,
		EmployeeCount:  r.EmployeeCount,
	}
}

type termsRequest struct {
	TermID string `json:"termId"`
}
