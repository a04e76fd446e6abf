package onboarding

import (
	"go.uber.org/mock/gomock"

	"alta/internal/domain"
	dErrors "alta/pkg/domain-errors"
)

// seedCase puts an onboarding record at the given status, as the search and
// post steps would have left it.
func (s *ServiceSuite) seedCase(code domain.StatusCode) {
	_, err := s.store.CreateNonBusiness(s.ctx, s.identity(), "")
	s.Require().NoError(err)
	s.store.SeedStatus(s.identity(), domain.Status{Code: code})
}

func (s *ServiceSuite) TestCreateContactDetail_Email() {
	s.seedCase(domain.StatusDGIOK)
	s.screener.EXPECT().
		IsMailBlacklisted(gomock.Any(), "juan@example.com", s.identity()).
		Return(false, nil)

	err := s.svc.CreateContactDetail(s.ctx, s.token(), domain.EmailContact{Address: "juan@example.com"})
	s.Require().NoError(err)

	s.requireStatus(domain.StatusContact)
	s.Equal([]domain.StatusCode{domain.AuditContactEmail}, s.auditCodes())

	// The channel lands on both the business record and the owner person.
	business, err := s.store.GetNonBusiness(s.ctx, s.identity(), ExpandOptions{Contacts: true})
	s.Require().NoError(err)
	s.Equal("juan@example.com", business.Contact.Email)
	s.Equal("juan@example.com", s.store.ownerContacts[testOwnerDocument].Email)
}

func (s *ServiceSuite) TestCreateContactDetail_InvalidEmail() {
	s.seedCase(domain.StatusDGIOK)

	err := s.svc.CreateContactDetail(s.ctx, s.token(), domain.EmailContact{Address: "not-an-email"})
	s.Require().Error(err)
	s.Equal(ReasonInvalidMail, dErrors.ReasonOf(err))

	// Pattern failures return before screening or persistence.
	s.Empty(s.auditStore.Records())
	s.requireStatus(domain.StatusDGIOK)
}

func (s *ServiceSuite) TestCreateContactDetail_BlacklistedEmail() {
	s.seedCase(domain.StatusDGIOK)
	s.screener.EXPECT().
		IsMailBlacklisted(gomock.Any(), "fraud@example.com", s.identity()).
		Return(true, nil)

	err := s.svc.CreateContactDetail(s.ctx, s.token(), domain.EmailContact{Address: "fraud@example.com"})
	s.Require().Error(err)
	s.Equal(ReasonMailBlacklisted, dErrors.ReasonOf(err))
	s.Equal([]domain.StatusCode{domain.AuditMailBlacklisted}, s.auditCodes())
	s.requireStatus(domain.StatusDGIOK)
}

func (s *ServiceSuite) TestCreateContactDetail_Mobile() {
	s.Run("valid mobile number advances and audits", func() {
		s.seedCase(domain.StatusDGIOK)

		err := s.svc.CreateContactDetail(s.ctx, s.token(), domain.MobileContact{Number: "091234567"})
		s.Require().NoError(err)
		s.requireStatus(domain.StatusContact)
		s.Equal([]domain.StatusCode{domain.AuditContactMobile}, s.auditCodes())
		s.Equal("091234567", s.store.ownerContacts[testOwnerDocument].Cellphone)
	})

	s.Run("landline-shaped number is rejected before persistence", func() {
		err := s.svc.CreateContactDetail(s.ctx, s.token(), domain.MobileContact{Number: "12345678"})
		s.Equal(ReasonInvalidMobile, dErrors.ReasonOf(err))
	})

	s.Run("mobile with too many digits is rejected", func() {
		err := s.svc.CreateContactDetail(s.ctx, s.token(), domain.MobileContact{Number: "0912345678"})
		s.Equal(ReasonInvalidMobile, dErrors.ReasonOf(err))
	})
}

func (s *ServiceSuite) TestCreateContactDetail_UnsupportedKind() {
	err := s.svc.CreateContactDetail(s.ctx, s.token(), nil)
	s.Require().Error(err)
	s.Equal(ReasonUnsupportedContactType, dErrors.ReasonOf(err))
}

func (s *ServiceSuite) TestCreateContactDetail_BadToken() {
	err := s.svc.CreateContactDetail(s.ctx, "tampered-token", domain.EmailContact{Address: "juan@example.com"})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
