//go:build integration

package store_test

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/suite"

	"alta/internal/domain"
	"alta/internal/onboarding"
	"alta/internal/onboarding/store"
	"alta/pkg/platform/sentinel"
	"alta/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
	ctx      context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgres(s.postgres.DB, log.New(io.Discard, "", 0))
	s.ctx = context.Background()
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(s.ctx,
		"non_business", "non_business_status", "non_business_audit",
		"outbox", "clients", "owners", "dgi_information", "credentials")
	s.Require().NoError(err)
}

func testID() domain.EntityIdentity {
	return domain.NewEntityIdentity("12345678", "211234560014")
}

func (s *PostgresStoreSuite) TestStatusLifecycle() {
	id := testID()

	current, err := s.store.GetStatus(s.ctx, id)
	s.Require().NoError(err)
	s.True(current.Empty())

	s.Require().NoError(s.store.InsertStatus(s.ctx, id,
		domain.Status{Code: domain.StatusIngreso, Process: domain.ProcessPost}))

	count, err := s.store.UpdateStatus(s.ctx, id, domain.StatusIngreso,
		domain.Status{Code: domain.StatusRetoma, Process: domain.ProcessPost})
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	// A stale guard matches nothing and moves nothing.
	count, err = s.store.UpdateStatus(s.ctx, id, domain.StatusIngreso,
		domain.Status{Code: domain.StatusDGIOK})
	s.Require().NoError(err)
	s.Zero(count)

	current, err = s.store.GetStatus(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.StatusRetoma, current.Code)
}

func (s *PostgresStoreSuite) TestCreateNonBusinessIsIdempotent() {
	id := testID()

	count, err := s.store.CreateNonBusiness(s.ctx, id, "091234567")
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	count, err = s.store.CreateNonBusiness(s.ctx, id, "099999999")
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *PostgresStoreSuite) TestIncompleteIdentityIsRejected() {
	id := testID()
	id.BusinessDocument = ""

	_, err := s.store.GetStatus(s.ctx, id)
	s.Require().Error(err)
}

func (s *PostgresStoreSuite) TestAggregateRoundTrip() {
	id := testID()

	_, err := s.store.CreateNonBusiness(s.ctx, id, "091234567")
	s.Require().NoError(err)
	s.Require().NoError(s.store.InsertStatus(s.ctx, id, domain.Status{Code: domain.StatusDGIOK}))
	s.Require().NoError(s.store.SaveBusinessInformation(s.ctx, id, domain.BusinessInformation{
		RUT:            id.BusinessDocument,
		LegalName:      "PEREZ JUAN",
		LegalAddress:   "18 DE JULIO 1234",
		ExpirationDate: "20/06/2030",
	}))
	s.Require().NoError(s.store.SaveEmail(s.ctx, id, "juan@example.com"))
	s.Require().NoError(s.store.SaveTradeName(s.ctx, id, "Almacén El Sol"))
	s.Require().NoError(s.store.SaveAddress(s.ctx, id, domain.AddressRecord{
		DepartmentCode: "01",
		DepartmentName: "MONTEVIDEO",
		Street:         "18 de Julio",
		Number:         "1234",
		Formatted:      "18 de Julio 1234, MONTEVIDEO",
	}))

	record, err := s.store.GetNonBusiness(s.ctx, id, onboarding.ExpandOptions{Contacts: true})
	s.Require().NoError(err)
	s.Equal("PEREZ JUAN", record.LegalName)
	s.Equal("Almacén El Sol", record.TradeName)
	s.Equal(domain.StatusDGIOK, record.Status.Code)
	s.Require().NotNil(record.Contact)
	s.Equal("juan@example.com", record.Contact.Email)
	s.Equal("091234567", record.Contact.Cellphone)
	s.Require().NotNil(record.Address)
	s.Equal("18 de Julio 1234, MONTEVIDEO", record.Address.Formatted)
}

func (s *PostgresStoreSuite) TestGetNonBusiness_Unknown() {
	_, err := s.store.GetNonBusiness(s.ctx, testID(), onboarding.ExpandOptions{})
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestOwnerNameAndClients() {
	id := testID()

	_, err := s.store.GetOwnerName(s.ctx, id)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.postgres.DB.ExecContext(s.ctx,
		`INSERT INTO owners (country, document_type, document, first_name, last_name)
		 VALUES ($1, $2, $3, 'JUAN', 'PEREZ')`,
		id.OwnerCountry, id.OwnerDocumentType, id.OwnerDocument)
	s.Require().NoError(err)

	name, err := s.store.GetOwnerName(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("PEREZ JUAN", name)

	isClient, err := s.store.IsClient(s.ctx, id.BusinessDocument)
	s.Require().NoError(err)
	s.False(isClient)

	_, err = s.postgres.DB.ExecContext(s.ctx, `INSERT INTO clients (rut) VALUES ($1)`, id.BusinessDocument)
	s.Require().NoError(err)

	isClient, err = s.store.IsClient(s.ctx, id.BusinessDocument)
	s.Require().NoError(err)
	s.True(isClient)
}

func (s *PostgresStoreSuite) TestReferenceData() {
	departments, err := s.store.GetDepartments(s.ctx)
	s.Require().NoError(err)
	s.Equal("MONTEVIDEO", departments["01"])
	s.Len(departments, 19)

	version, err := s.store.GetTermVersion(s.ctx, "tyc-general")
	s.Require().NoError(err)
	s.NotEmpty(version)

	_, err = s.store.GetTermVersion(s.ctx, "missing")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
