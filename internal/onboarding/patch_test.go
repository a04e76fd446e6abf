package onboarding

import (
	"golang.org/x/crypto/bcrypt"

	"alta/internal/domain"
	dErrors "alta/pkg/domain-errors"
)

func (s *ServiceSuite) TestPatch_EmptyPayloadStillAdvances() {
	s.seedCase(domain.StatusAddress)

	outcome, err := s.svc.Patch(s.ctx, s.token(), domain.NonBusinessPatch{})
	s.Require().NoError(err)

	s.Equal(&domain.PatchOutcome{}, outcome)
	s.requireStatus(domain.StatusUser)
	s.Equal([]domain.StatusCode{domain.StatusUser}, s.auditCodes())
}

func (s *ServiceSuite) TestPatch_ConditionalBlocks() {
	s.seedCase(domain.StatusAddress)

	outcome, err := s.svc.Patch(s.ctx, s.token(), domain.NonBusinessPatch{
		TradeName: "Almacén El Sol",
		Branch:    &domain.BankBranch{Bank: "001", Branch: "042"},
	})
	s.Require().NoError(err)

	s.True(outcome.TradeNameApplied)
	s.True(outcome.BranchApplied)
	s.False(outcome.FormationApplied)
	s.False(outcome.CredentialsApplied)
}

func (s *ServiceSuite) TestPatch_IncompleteBranchIsIgnored() {
	s.seedCase(domain.StatusAddress)

	outcome, err := s.svc.Patch(s.ctx, s.token(), domain.NonBusinessPatch{
		Branch: &domain.BankBranch{Bank: "001"},
	})
	s.Require().NoError(err)
	s.False(outcome.BranchApplied)
	s.requireStatus(domain.StatusUser)
}

func (s *ServiceSuite) TestPatch_FormationData() {
	s.Run("skipped without a BPS registration document", func() {
		s.seedCase(domain.StatusAddress)

		outcome, err := s.svc.Patch(s.ctx, s.token(), domain.NonBusinessPatch{
			Formation: &domain.FormationData{FormationDate: "01/02/2020", BPSNumber: "777"},
		})
		s.Require().NoError(err)
		s.False(outcome.FormationApplied)
		s.True(outcome.FormationSkipped)
	})

	s.Run("applied when the BPS registration document is present", func() {
		s.seedCase(domain.StatusAddress)

		outcome, err := s.svc.Patch(s.ctx, s.token(), domain.NonBusinessPatch{
			Formation: &domain.FormationData{FormationDate: "01/02/2020", BPSNumber: "777"},
			LegalDocuments: []domain.LegalDocument{
				{Type: domain.LegalDocumentBPSRegistration, Number: "777"},
			},
		})
		s.Require().NoError(err)
		s.True(outcome.FormationApplied)
		s.False(outcome.FormationSkipped)
	})
}

func (s *ServiceSuite) TestPatch_Credentials() {
	s.seedCase(domain.StatusAddress)

	outcome, err := s.svc.Patch(s.ctx, s.token(), domain.NonBusinessPatch{
		User: &domain.UserCredentials{Name: "jperez", Password: "abc12345"},
	})
	s.Require().NoError(err)
	s.True(outcome.CredentialsApplied)

	name, hash, ok := s.store.Credentials(s.identity())
	s.Require().True(ok)
	s.Equal("jperez", name)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(hash), []byte("abc12345")))
}

func (s *ServiceSuite) TestPatch_CredentialValidation() {
	s.seedCase(domain.StatusAddress)

	cases := []struct {
		name   string
		user   domain.UserCredentials
		reason string
	}{
		{"empty user name", domain.UserCredentials{Password: "abc12345"}, ReasonInvalidUserName},
		{"password too short", domain.UserCredentials{Name: "jperez", Password: "ab12"}, ReasonInvalidPassword},
		{"password too long", domain.UserCredentials{Name: "jperez", Password: "abcdefgh123456789"}, ReasonInvalidPassword},
		{"password with one digit", domain.UserCredentials{Name: "jperez", Password: "abcdefgh1"}, ReasonInvalidPassword},
		{"password with no letters", domain.UserCredentials{Name: "jperez", Password: "12345678"}, ReasonInvalidPassword},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			user := tc.user
			_, err := s.svc.Patch(s.ctx, s.token(), domain.NonBusinessPatch{User: &user})
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
			s.Equal(tc.reason, dErrors.ReasonOf(err))
		})
	}

	// No credential rejection moved the status.
	s.requireStatus(domain.StatusAddress)
	_, _, ok := s.store.Credentials(s.identity())
	s.False(ok)
}
