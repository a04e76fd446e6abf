package onboarding

import (
	"context"

	addressmapper "alta/internal/address"
	"alta/internal/domain"
	dErrors "alta/pkg/domain-errors"
	"alta/pkg/platform/sentinel"
)

func (s *ServiceSuite) TestCreateAddress() {
	s.store.SeedDepartment("01", "MONTEVIDEO")

	s.Run("maps, persists, advances and audits", func() {
		s.seedCase(domain.StatusContact)

		err := s.svc.CreateAddress(s.ctx, s.token(), domain.CallerAddress{
			Department: "01",
			Locality:   "Centro",
			Street:     "18 de Julio",
			Number:     "1234",
		})
		s.Require().NoError(err)
		s.requireStatus(domain.StatusAddress)
		s.Equal([]domain.StatusCode{domain.StatusAddress}, s.auditCodes())
	})

	s.Run("unknown department leaves the status alone", func() {
		s.store.SeedStatus(s.identity(), domain.Status{Code: domain.StatusContact})

		err := s.svc.CreateAddress(s.ctx, s.token(), domain.CallerAddress{Department: "99"})
		s.Require().Error(err)
		s.Equal(addressmapper.ReasonUnknownDepartment, dErrors.ReasonOf(err))
		s.requireStatus(domain.StatusContact)
	})
}

func (s *ServiceSuite) TestPatchEconomicData() {
	s.seedCase(domain.StatusUser)

	err := s.svc.PatchEconomicData(s.ctx, s.token(), domain.EconomicData{
		ActivityCode:   "4711",
		ActivitySector: "RETAIL",
		AnnualIncome:   "1200000",
		Currency:       "UYU",
		EmployeeCount:  2,
	})
	s.Require().NoError(err)
	s.requireStatus(domain.StatusEconomic)
	s.Equal([]domain.StatusCode{domain.StatusEconomic}, s.auditCodes())
}

func (s *ServiceSuite) TestUpdateTerms() {
	s.store.SeedTerm("tyc-general", "3")

	s.Run("unknown term is rejected", func() {
		err := s.svc.UpdateTerms(s.ctx, s.token(), "tyc-missing")
		s.Require().Error(err)
		s.Equal(ReasonUnknownTerm, dErrors.ReasonOf(err))
	})

	s.Run("acceptance advances and embeds the resolved version", func() {
		s.seedCase(domain.StatusEconomic)

		s.Require().NoError(s.svc.UpdateTerms(s.ctx, s.token(), "tyc-general"))
		s.requireStatus(domain.StatusTerms)

		records := s.auditStore.Records()
		s.Require().Len(records, 1)
		s.Equal("term tyc-general version 3 accepted", records[0].Status.Message)
	})

	s.Run("repeated acceptance appends a new audit record", func() {
		s.Require().NoError(s.svc.UpdateTerms(s.ctx, s.token(), "tyc-general"))
		s.requireStatus(domain.StatusTerms)
		s.Len(s.auditStore.Records(), 2)
	})
}

func (s *ServiceSuite) TestGetByID() {
	s.seedOwner("JUAN", "PEREZ")
	s.seedCase(domain.StatusContact)
	s.Require().NoError(s.store.SaveBusinessInformation(s.ctx, s.identity(), s.registryInfo("PEREZ JUAN")))
	s.Require().NoError(s.store.SaveCellphone(s.ctx, s.identity(), "091234567"))

	token := s.token()

	s.Run("without expand markers", func() {
		record, err := s.svc.GetByID(s.ctx, token, "")
		s.Require().NoError(err)
		s.Equal(token, record.Token)
		s.Equal("PEREZ JUAN", record.LegalName)
		s.Nil(record.Owner)
		s.Nil(record.Contact)
	})

	s.Run("expand markers are case-insensitive", func() {
		record, err := s.svc.GetByID(s.ctx, token, "Owner, CONTACTS")
		s.Require().NoError(err)
		s.Require().NotNil(record.Owner)
		s.Equal("JUAN", record.Owner.FirstName)
		s.Require().NotNil(record.Contact)
		s.Equal("091234567", record.Contact.Cellphone)
	})
}

// conflictStore simulates a concurrent status transition: every guarded
// update reports zero affected rows.
type conflictStore struct{ *MemoryStore }

func (conflictStore) UpdateStatus(context.Context, domain.EntityIdentity, domain.StatusCode, domain.Status) (int64, error) {
	return 0, nil
}

func (s *ServiceSuite) TestConcurrentStatusTransition() {
	s.seedCase(domain.StatusUser)

	svc := s.svc
	svc.store = conflictStore{s.store}

	err := svc.PatchEconomicData(s.ctx, s.token(), domain.EconomicData{Currency: "UYU"})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.Equal(ReasonStatusConflict, dErrors.ReasonOf(err))
	s.Require().ErrorIs(err, sentinel.ErrConflict)
}
