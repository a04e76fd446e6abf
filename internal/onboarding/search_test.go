package onboarding

import (
	"errors"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"alta/internal/domain"
	dErrors "alta/pkg/domain-errors"
)

func (s *ServiceSuite) seedOwner(firstName, lastName string) {
	s.store.SeedOwner(domain.Owner{
		Document:  testOwnerDocument,
		FirstName: firstName,
		LastName:  lastName,
	})
}

func (s *ServiceSuite) TestSearch_InputValidation() {
	s.Run("caller id without separator fails before any database access", func() {
		_, err := s.svc.Search(s.ctx, "12345678", testBusinessDocument)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal(ReasonInvalidUserID, dErrors.ReasonOf(err))
		s.Empty(s.auditStore.Records())
	})

	s.Run("caller id with empty half is rejected", func() {
		_, err := s.svc.Search(s.ctx, "-"+testBusinessDocument, testBusinessDocument)
		s.Equal(ReasonInvalidUserID, dErrors.ReasonOf(err))
	})

	s.Run("rut mismatch between caller id and body is rejected", func() {
		_, err := s.svc.Search(s.ctx, testCallerID, "219999990011")
		s.Equal(ReasonDocumentsNotMatching, dErrors.ReasonOf(err))
		s.Empty(s.auditStore.Records())
	})
}

func (s *ServiceSuite) TestSearch_HappyPath() {
	s.seedOwner("JUAN", "PEREZ")
	s.registry.EXPECT().
		FetchBusinessInformation(gomock.Any(), testBusinessDocument).
		Return(s.registryInfo("PEREZ JUAN"), nil)

	result, err := s.svc.Search(s.ctx, testCallerID, testBusinessDocument)
	s.Require().NoError(err)

	s.Equal("PEREZ JUAN", result.LegalName)
	s.Equal(testBusinessDocument, result.Document)
	s.Equal(domain.DocumentTypeRUT, result.DocumentType)

	s.requireStatus(domain.StatusDGIOK)
	s.Equal([]domain.StatusCode{domain.StatusDGIOK}, s.auditCodes())

	_, cached := s.store.Snapshot(testBusinessDocument)
	s.True(cached)
}

func (s *ServiceSuite) TestSearch_AlreadyClient() {
	s.store.SeedClient(testBusinessDocument)

	_, err := s.svc.Search(s.ctx, testCallerID, testBusinessDocument)
	s.Require().Error(err)
	s.Equal(ReasonAlreadyClient, dErrors.ReasonOf(err))
	s.Equal([]domain.StatusCode{domain.AuditAlreadyClient}, s.auditCodes())
}

func (s *ServiceSuite) TestSearch_InvalidCurrentStatus() {
	s.Run("terminal status blocks a new search", func() {
		s.store.SeedStatus(s.identity(), domain.Status{Code: domain.StatusProcessed})

		_, err := s.svc.Search(s.ctx, testCallerID, testBusinessDocument)
		s.Equal(ReasonInvalidStatus, dErrors.ReasonOf(err))
		s.Contains(s.auditCodes(), domain.AuditInvalidStatus)
	})

	s.Run("entry status blocks a repeated search", func() {
		s.store.SeedStatus(s.identity(), domain.Status{Code: domain.StatusIngreso})

		_, err := s.svc.Search(s.ctx, testCallerID, testBusinessDocument)
		s.Equal(ReasonInvalidStatus, dErrors.ReasonOf(err))
	})
}

func (s *ServiceSuite) TestSearch_ExpiredCertificate() {
	info := s.registryInfo("PEREZ JUAN")
	info.ExpirationDate = s.today.AddDate(0, 0, -1).Format("02/01/2006")
	s.registry.EXPECT().
		FetchBusinessInformation(gomock.Any(), testBusinessDocument).
		Return(info, nil)

	_, err := s.svc.Search(s.ctx, testCallerID, testBusinessDocument)
	s.Require().Error(err)
	s.Equal("NON_BUSINESS_SEARCH_ERROR_DGI_CERTIFICADO_VENCIDO", dErrors.ReasonOf(err))
	s.Equal([]domain.StatusCode{domain.AuditCertExpired}, s.auditCodes())

	// The snapshot is persisted even though the check rejected.
	_, cached := s.store.Snapshot(testBusinessDocument)
	s.True(cached)
}

func (s *ServiceSuite) TestSearch_NameValidation() {
	s.Run("company-form legal name is not a sole proprietorship", func() {
		s.registry.EXPECT().
			FetchBusinessInformation(gomock.Any(), testBusinessDocument).
			Return(s.registryInfo("COMERCIAL DEL ESTE SRL"), nil)

		_, err := s.svc.Search(s.ctx, testCallerID, testBusinessDocument)
		s.Equal(ReasonNotUnipersonal, dErrors.ReasonOf(err))
		s.Contains(s.auditCodes(), domain.AuditNotUnipersonal)
	})

	s.Run("unknown owner fails the similarity check", func() {
		s.registry.EXPECT().
			FetchBusinessInformation(gomock.Any(), testBusinessDocument).
			Return(s.registryInfo("PEREZ JUAN"), nil)

		_, err := s.svc.Search(s.ctx, testCallerID, testBusinessDocument)
		s.Equal(ReasonNamesNotMatching, dErrors.ReasonOf(err))
	})

	s.Run("legal name that does not resemble the owner is rejected", func() {
		s.seedOwner("MARIA", "RODRIGUEZ")
		s.registry.EXPECT().
			FetchBusinessInformation(gomock.Any(), testBusinessDocument).
			Return(s.registryInfo("PEREZ JUAN"), nil)

		_, err := s.svc.Search(s.ctx, testCallerID, testBusinessDocument)
		s.Equal(ReasonNamesNotMatching, dErrors.ReasonOf(err))
		s.Contains(s.auditCodes(), domain.AuditNamesMismatch)
	})
}

func (s *ServiceSuite) TestSearch_NameValidationDisabled() {
	svc := s.newService(Config{ValidateName: false})
	s.registry.EXPECT().
		FetchBusinessInformation(gomock.Any(), testBusinessDocument).
		Return(s.registryInfo("COMERCIAL DEL ESTE SRL"), nil)

	result, err := svc.Search(s.ctx, testCallerID, testBusinessDocument)
	s.Require().NoError(err)
	s.Equal("COMERCIAL DEL ESTE SRL", result.LegalName)
	s.requireStatus(domain.StatusDGIOK)
}

func (s *ServiceSuite) TestSearch_RegistryUnavailable() {
	s.registry.EXPECT().
		FetchBusinessInformation(gomock.Any(), testBusinessDocument).
		Return(domain.BusinessInformation{}, errors.New("dial tcp: connection refused"))

	_, err := s.svc.Search(s.ctx, testCallerID, testBusinessDocument)
	s.Require().Error(err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeUnavailable))
	s.Empty(s.auditCodes())
}
