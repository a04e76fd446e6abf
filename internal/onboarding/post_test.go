package onboarding

import (
	"alta/internal/domain"
	dErrors "alta/pkg/domain-errors"
)

func (s *ServiceSuite) TestPost_InputValidation() {
	s.Run("non-numeric rut is rejected before any database access", func() {
		_, err := s.svc.Post(s.ctx, "21ABC", testOwnerDocument, "")
		s.Equal(ReasonInvalidRUT, dErrors.ReasonOf(err))
		s.Empty(s.auditStore.Records())
		s.False(s.store.RecordExists(s.identity()))
	})

	s.Run("non-numeric owner document is rejected", func() {
		_, err := s.svc.Post(s.ctx, testBusinessDocument, "1.234.567-8", "")
		s.Equal(ReasonInvalidOwnerDocument, dErrors.ReasonOf(err))
	})

	s.Run("empty rut is rejected", func() {
		_, err := s.svc.Post(s.ctx, "", testOwnerDocument, "")
		s.Equal(ReasonInvalidRUT, dErrors.ReasonOf(err))
	})
}

func (s *ServiceSuite) TestPost_EntryAndResume() {
	token, err := s.svc.Post(s.ctx, testBusinessDocument, testOwnerDocument, "091234567")
	s.Require().NoError(err)
	s.Require().NotEmpty(token)

	resolved, err := s.codec.Resolve(s.ctx, token)
	s.Require().NoError(err)
	s.Equal(s.identity(), resolved)

	s.True(s.store.RecordExists(s.identity()))
	s.requireStatus(domain.StatusIngreso)
	s.Equal([]domain.StatusCode{domain.StatusIngreso}, s.auditCodes())

	// Re-entry advances INGRESO to RETOMA without recreating the record.
	_, err = s.svc.Post(s.ctx, testBusinessDocument, testOwnerDocument, "091234567")
	s.Require().NoError(err)
	s.requireStatus(domain.StatusRetoma)
	s.Equal([]domain.StatusCode{domain.StatusIngreso, domain.StatusRetoma}, s.auditCodes())

	// Further re-entries keep RETOMA and keep auditing it.
	_, err = s.svc.Post(s.ctx, testBusinessDocument, testOwnerDocument, "091234567")
	s.Require().NoError(err)
	s.requireStatus(domain.StatusRetoma)
	s.Equal([]domain.StatusCode{domain.StatusIngreso, domain.StatusRetoma, domain.StatusRetoma}, s.auditCodes())
}

func (s *ServiceSuite) TestPost_FinalState() {
	s.store.SeedStatus(s.identity(), domain.Status{Code: domain.StatusCancelled})

	_, err := s.svc.Post(s.ctx, testBusinessDocument, testOwnerDocument, "")
	s.Require().Error(err)
	s.Equal(ReasonFinalState, dErrors.ReasonOf(err))
	s.Equal([]domain.StatusCode{domain.AuditInvalidStatus}, s.auditCodes())
}

func (s *ServiceSuite) TestPost_MidWorkflowStatusIsLeftAlone() {
	s.store.SeedStatus(s.identity(), domain.Status{Code: domain.StatusDGIOK})

	token, err := s.svc.Post(s.ctx, testBusinessDocument, testOwnerDocument, "")
	s.Require().NoError(err)
	s.NotEmpty(token)

	// A post against a mid-workflow case audits the resume without touching
	// the stored status.
	s.True(s.store.RecordExists(s.identity()))
	s.requireStatus(domain.StatusDGIOK)
	s.Equal([]domain.StatusCode{domain.StatusRetoma}, s.auditCodes())
}
