// Package store persists onboarding state in PostgreSQL. Every method issues
// single parameterized statements through the statement execution contract;
// domain decisions (preconditions, transition rules) stay in the service.
package store

import (
	"context"
	"database/sql"
	"log"

	"alta/internal/domain"
	"alta/internal/onboarding"
	"alta/internal/storage"
	dErrors "alta/pkg/domain-errors"
	"alta/pkg/platform/sentinel"
)

const postgresComponent = "alta/internal/onboarding/store.PostgresStore"

// PostgresStore implements onboarding.Store.
type PostgresStore struct {
	exec *storage.Executor
}

func NewPostgres(db *sql.DB, logger *log.Logger) *PostgresStore {
	return &PostgresStore{exec: storage.NewExecutor(db, logger, postgresComponent)}
}

// identityWhere matches the six-column composite key; bind identityArgs in
// the same positions.
const identityWhere = `owner_country = $1 AND owner_document_type = $2 AND owner_document = $3
		AND business_country = $4 AND business_document_type = $5 AND business_document = $6`

func identityArgs(id domain.EntityIdentity) []any {
	return []any{
		id.OwnerCountry, id.OwnerDocumentType, id.OwnerDocument,
		id.BusinessCountry, id.BusinessDocumentType, id.BusinessDocument,
	}
}

// requireComplete rejects partially-populated identities before any
// statement is prepared.
func requireComplete(id domain.EntityIdentity) error {
	if !id.Complete() {
		return dErrors.New(dErrors.CodeInvariantViolation, "entity identity is not fully populated").
			WithComponent(postgresComponent)
	}
	return nil
}

const getStatusSQL = `
	SELECT status_code, process, message
	FROM non_business_status
	WHERE ` + identityWhere

func (s *PostgresStore) GetStatus(ctx context.Context, id domain.EntityIdentity) (domain.Status, error) {
	if err := requireComplete(id); err != nil {
		return domain.Status{}, err
	}
	var st domain.Status
	err := s.exec.Query(ctx, getStatusSQL, func(rows *sql.Rows) error {
		if !rows.Next() {
			return nil // no status recorded yet; zero value is the answer
		}
		var code string
		if err := rows.Scan(&code, &st.Process, &st.Message); err != nil {
			return err
		}
		st.Code = domain.StatusCode(code)
		return nil
	}, identityArgs(id)...)
	if err != nil {
		return domain.Status{}, err
	}
	return st, nil
}

const insertStatusSQL = `
	INSERT INTO non_business_status (
		owner_country, owner_document_type, owner_document,
		business_country, business_document_type, business_document,
		status_code, process, message, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
`

func (s *PostgresStore) InsertStatus(ctx context.Context, id domain.EntityIdentity, st domain.Status) error {
	if err := requireComplete(id); err != nil {
		return err
	}
	args := append(identityArgs(id), string(st.Code), st.Process, st.Message)
	_, err := s.exec.Update(ctx, insertStatusSQL, storage.MsgInsertFailed, args...)
	return err
}

const updateStatusSQL = `
	UPDATE non_business_status
	SET status_code = $7, process = $8, message = $9, updated_at = NOW()
	WHERE ` + identityWhere + ` AND status_code = $10
`

// UpdateStatus is the optimistic-concurrency write: the row moves only when
// the stored code still equals expected. The row count carries the verdict.
func (s *PostgresStore) UpdateStatus(ctx context.Context, id domain.EntityIdentity, expected domain.StatusCode, next domain.Status) (int64, error) {
	if err := requireComplete(id); err != nil {
		return 0, err
	}
	args := append(identityArgs(id), string(next.Code), next.Process, next.Message, string(expected))
	return s.exec.Update(ctx, updateStatusSQL, storage.MsgUpdateFailed, args...)
}

const createNonBusinessSQL = `
	INSERT INTO non_business (
		owner_country, owner_document_type, owner_document,
		business_country, business_document_type, business_document,
		cellphone, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	ON CONFLICT (owner_country, owner_document_type, owner_document,
		business_country, business_document_type, business_document) DO NOTHING
`

func (s *PostgresStore) CreateNonBusiness(ctx context.Context, id domain.EntityIdentity, cellphone string) (int64, error) {
	if err := requireComplete(id); err != nil {
		return 0, err
	}
	args := append(identityArgs(id), cellphone)
	return s.exec.Update(ctx, createNonBusinessSQL, storage.MsgInsertFailed, args...)
}

const getNonBusinessSQL = `
	SELECT nb.business_document, COALESCE(dgi.legal_name, ''), nb.trade_name,
		   nb.email, nb.cellphone,
		   nb.department_code, nb.department_name, nb.locality, nb.street,
		   nb.street_number, nb.apartment, nb.postal_code, nb.address_line,
		   COALESCE(st.status_code, ''), COALESCE(st.process, ''), COALESCE(st.message, '')
	FROM non_business nb
	LEFT JOIN non_business_status st ON st.owner_country = nb.owner_country
		AND st.owner_document_type = nb.owner_document_type
		AND st.owner_document = nb.owner_document
		AND st.business_country = nb.business_country
		AND st.business_document_type = nb.business_document_type
		AND st.business_document = nb.business_document
	LEFT JOIN dgi_information dgi ON dgi.rut = nb.business_document
	WHERE nb.` + identityWhere

func (s *PostgresStore) GetNonBusiness(ctx context.Context, id domain.EntityIdentity, opts onboarding.ExpandOptions) (*domain.NonBusiness, error) {
	if err := requireComplete(id); err != nil {
		return nil, err
	}
	var (
		record  domain.NonBusiness
		contact domain.ContactInfo
		addr    domain.AddressRecord
		found   bool
	)
	err := s.exec.Query(ctx, getNonBusinessSQL, func(rows *sql.Rows) error {
		if !rows.Next() {
			return nil
		}
		found = true
		var code, process, message string
		if err := rows.Scan(
			&record.BusinessDocument, &record.LegalName, &record.TradeName,
			&contact.Email, &contact.Cellphone,
			&addr.DepartmentCode, &addr.DepartmentName, &addr.Locality, &addr.Street,
			&addr.Number, &addr.Apartment, &addr.PostalCode, &addr.Formatted,
			&code, &process, &message,
		); err != nil {
			return err
		}
		record.Status = domain.Status{Code: domain.StatusCode(code), Process: process, Message: message}
		return nil
	}, identityArgs(id)...)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, sentinel.ErrNotFound
	}
	if addr.DepartmentCode != "" {
		record.Address = &addr
	}
	if opts.Contacts {
		record.Contact = &contact
	}
	if opts.Owner {
		owner, err := s.getOwner(ctx, id)
		if err != nil {
			return nil, err
		}
		record.Owner = owner
	}
	return &record, nil
}

const getOwnerSQL = `
	SELECT first_name, last_name
	FROM owners
	WHERE country = $1 AND document_type = $2 AND document = $3
`

func (s *PostgresStore) getOwner(ctx context.Context, id domain.EntityIdentity) (*domain.Owner, error) {
	owner := domain.Owner{
		Document:     id.OwnerDocument,
		DocumentType: id.OwnerDocumentType,
		Country:      id.OwnerCountry,
	}
	err := s.exec.Query(ctx, getOwnerSQL, func(rows *sql.Rows) error {
		if !rows.Next() {
			return nil
		}
		return rows.Scan(&owner.FirstName, &owner.LastName)
	}, id.OwnerCountry, id.OwnerDocumentType, id.OwnerDocument)
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (s *PostgresStore) GetOwnerName(ctx context.Context, id domain.EntityIdentity) (string, error) {
	if err := requireComplete(id); err != nil {
		return "", err
	}
	var first, last string
	var found bool
	err := s.exec.Query(ctx, getOwnerSQL, func(rows *sql.Rows) error {
		if !rows.Next() {
			return nil
		}
		found = true
		return rows.Scan(&first, &last)
	}, id.OwnerCountry, id.OwnerDocumentType, id.OwnerDocument)
	if err != nil {
		return "", err
	}
	if !found {
		return "", sentinel.ErrNotFound
	}
	return last + " " + first, nil
}

const isClientSQL = `SELECT 1 FROM clients WHERE rut = $1`

func (s *PostgresStore) IsClient(ctx context.Context, rut string) (bool, error) {
	var isClient bool
	err := s.exec.Query(ctx, isClientSQL, func(rows *sql.Rows) error {
		isClient = rows.Next()
		return nil
	}, rut)
	if err != nil {
		return false, err
	}
	return isClient, nil
}

const saveBusinessInformationSQL = `
	INSERT INTO dgi_information (rut, legal_name, legal_address, expiration_date, checked_at)
	VALUES ($1, $2, $3, $4, NOW())
	ON CONFLICT (rut) DO UPDATE SET
		legal_name = EXCLUDED.legal_name,
		legal_address = EXCLUDED.legal_address,
		expiration_date = EXCLUDED.expiration_date,
		checked_at = EXCLUDED.checked_at
`

func (s *PostgresStore) SaveBusinessInformation(ctx context.Context, id domain.EntityIdentity, info domain.BusinessInformation) error {
	if err := requireComplete(id); err != nil {
		return err
	}
	_, err := s.exec.Update(ctx, saveBusinessInformationSQL, storage.MsgInsertFailed,
		id.BusinessDocument, info.LegalName, info.LegalAddress, info.ExpirationDate)
	return err
}

const saveBusinessEmailSQL = `
	UPDATE non_business SET email = $7, updated_at = NOW() WHERE ` + identityWhere

const saveOwnerEmailSQL = `
	UPDATE owners SET email = $4 WHERE country = $1 AND document_type = $2 AND document = $3
`

// SaveEmail records the address on both the business and the person records.
func (s *PostgresStore) SaveEmail(ctx context.Context, id domain.EntityIdentity, address string) error {
	if err := requireComplete(id); err != nil {
		return err
	}
	args := append(identityArgs(id), address)
	if _, err := s.exec.Update(ctx, saveBusinessEmailSQL, storage.MsgUpdateFailed, args...); err != nil {
		return err
	}
	_, err := s.exec.Update(ctx, saveOwnerEmailSQL, storage.MsgUpdateFailed,
		id.OwnerCountry, id.OwnerDocumentType, id.OwnerDocument, address)
	return err
}

const saveBusinessCellphoneSQL = `
	UPDATE non_business SET cellphone = $7, updated_at = NOW() WHERE ` + identityWhere

const saveOwnerCellphoneSQL = `
	UPDATE owners SET cellphone = $4 WHERE country = $1 AND document_type = $2 AND document = $3
`

// SaveCellphone records the number on both the business and the person
// records.
func (s *PostgresStore) SaveCellphone(ctx context.Context, id domain.EntityIdentity, number string) error {
	if err := requireComplete(id); err != nil {
		return err
	}
	args := append(identityArgs(id), number)
	if _, err := s.exec.Update(ctx, saveBusinessCellphoneSQL, storage.MsgUpdateFailed, args...); err != nil {
		return err
	}
	_, err := s.exec.Update(ctx, saveOwnerCellphoneSQL, storage.MsgUpdateFailed,
		id.OwnerCountry, id.OwnerDocumentType, id.OwnerDocument, number)
	return err
}

const saveAddressSQL = `
	UPDATE non_business SET
		department_code = $7, department_name = $8, locality = $9, street = $10,
		street_number = $11, apartment = $12, postal_code = $13, address_line = $14,
		updated_at = NOW()
	WHERE ` + identityWhere

func (s *PostgresStore) SaveAddress(ctx context.Context, id domain.EntityIdentity, rec domain.AddressRecord) error {
	if err := requireComplete(id); err != nil {
		return err
	}
	args := append(identityArgs(id),
		rec.DepartmentCode, rec.DepartmentName, rec.Locality, rec.Street,
		rec.Number, rec.Apartment, rec.PostalCode, rec.Formatted)
	_, err := s.exec.Update(ctx, saveAddressSQL, storage.MsgUpdateFailed, args...)
	return err
}

const saveTradeNameSQL = `
	UPDATE non_business SET trade_name = $7, updated_at = NOW() WHERE ` + identityWhere

func (s *PostgresStore) SaveTradeName(ctx context.Context, id domain.EntityIdentity, name string) error {
	if err := requireComplete(id); err != nil {
		return err
	}
	args := append(identityArgs(id), name)
	_, err := s.exec.Update(ctx, saveTradeNameSQL, storage.MsgUpdateFailed, args...)
	return err
}

const saveBranchSQL = `
	UPDATE non_business SET bank = $7, branch = $8, updated_at = NOW() WHERE ` + identityWhere

func (s *PostgresStore) SaveBranch(ctx context.Context, id domain.EntityIdentity, branch domain.BankBranch) error {
	if err := requireComplete(id); err != nil {
		return err
	}
	args := append(identityArgs(id), branch.Bank, branch.Branch)
	_, err := s.exec.Update(ctx, saveBranchSQL, storage.MsgUpdateFailed, args...)
	return err
}

const saveFormationDataSQL = `
	UPDATE non_business SET
		formation_date = $7, bps_number = $8, social_security = $9, updated_at = NOW()
	WHERE ` + identityWhere

func (s *PostgresStore) SaveFormationData(ctx context.Context, id domain.EntityIdentity, data domain.FormationData) error {
	if err := requireComplete(id); err != nil {
		return err
	}
	args := append(identityArgs(id), data.FormationDate, data.BPSNumber, data.SocialSecurity)
	_, err := s.exec.Update(ctx, saveFormationDataSQL, storage.MsgUpdateFailed, args...)
	return err
}

const createCredentialsSQL = `
	INSERT INTO credentials (
		owner_country, owner_document_type, owner_document,
		business_country, business_document_type, business_document,
		user_name, password_hash, temporary, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE, NOW())
	ON CONFLICT (owner_country, owner_document_type, owner_document,
		business_country, business_document_type, business_document) DO UPDATE SET
		user_name = EXCLUDED.user_name,
		password_hash = EXCLUDED.password_hash,
		temporary = TRUE
`

func (s *PostgresStore) CreateTemporaryCredentials(ctx context.Context, id domain.EntityIdentity, name, passwordHash string) error {
	if err := requireComplete(id); err != nil {
		return err
	}
	args := append(identityArgs(id), name, passwordHash)
	_, err := s.exec.Update(ctx, createCredentialsSQL, storage.MsgInsertFailed, args...)
	return err
}

const saveEconomicDataSQL = `
	UPDATE non_business SET
		activity_code = $7, activity_sector = $8, annual_income = $9,
		currency = $10, employee_count = $11, updated_at = NOW()
	WHERE ` + identityWhere

func (s *PostgresStore) SaveEconomicData(ctx context.Context, id domain.EntityIdentity, data domain.EconomicData) error {
	if err := requireComplete(id); err != nil {
		return err
	}
	args := append(identityArgs(id),
		data.ActivityCode, data.ActivitySector, data.AnnualIncome,
		data.Currency, data.EmployeeCount)
	_, err := s.exec.Update(ctx, saveEconomicDataSQL, storage.MsgUpdateFailed, args...)
	return err
}

const getTermVersionSQL = `SELECT version FROM terms WHERE term_id = $1`

func (s *PostgresStore) GetTermVersion(ctx context.Context, termID string) (string, error) {
	var version string
	var found bool
	err := s.exec.Query(ctx, getTermVersionSQL, func(rows *sql.Rows) error {
		if !rows.Next() {
			return nil
		}
		found = true
		return rows.Scan(&version)
	}, termID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", sentinel.ErrNotFound
	}
	return version, nil
}

const getDepartmentsSQL = `SELECT code, name FROM departments ORDER BY code`

func (s *PostgresStore) GetDepartments(ctx context.Context) (map[string]string, error) {
	departments := make(map[string]string)
	err := s.exec.Query(ctx, getDepartmentsSQL, func(rows *sql.Rows) error {
		for rows.Next() {
			var code, name string
			if err := rows.Scan(&code, &name); err != nil {
				return err
			}
			departments[code] = name
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return departments, nil
}
