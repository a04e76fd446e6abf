package onboarding

import (
	"context"
	"sync"

	"alta/internal/domain"
	"alta/pkg/platform/sentinel"
)

// MemoryStore is an in-memory Store for unit tests and local development.
// It mirrors the Postgres semantics the engine relies on: guarded status
// updates report their row count, record creation ignores duplicates.
type MemoryStore struct {
	mu sync.Mutex

	statuses      map[domain.EntityIdentity]domain.Status
	records       map[domain.EntityIdentity]*memoryRecord
	owners        map[string]domain.Owner       // keyed by owner document
	ownerContacts map[string]domain.ContactInfo // keyed by owner document
	clients       map[string]bool               // keyed by rut
	snapshots     map[string]domain.BusinessInformation
	terms         map[string]string
	departments   map[string]string
	credentials   map[domain.EntityIdentity]memoryCredentials
	economicData  map[domain.EntityIdentity]domain.EconomicData
}

type memoryRecord struct {
	cellphone string
	email     string
	tradeName string
	branch    domain.BankBranch
	formation domain.FormationData
	address   domain.AddressRecord
	hasAddr   bool
}

type memoryCredentials struct {
	name         string
	passwordHash string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		statuses:      make(map[domain.EntityIdentity]domain.Status),
		records:       make(map[domain.EntityIdentity]*memoryRecord),
		owners:        make(map[string]domain.Owner),
		ownerContacts: make(map[string]domain.ContactInfo),
		clients:       make(map[string]bool),
		snapshots:     make(map[string]domain.BusinessInformation),
		terms:         make(map[string]string),
		departments:   make(map[string]string),
		credentials:   make(map[domain.EntityIdentity]memoryCredentials),
		economicData:  make(map[domain.EntityIdentity]domain.EconomicData),
	}
}

// Seed helpers for tests.

func (s *MemoryStore) SeedClient(rut string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[rut] = true
}

func (s *MemoryStore) SeedOwner(owner domain.Owner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners[owner.Document] = owner
}

func (s *MemoryStore) SeedStatus(id domain.EntityIdentity, st domain.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[id] = st
}

func (s *MemoryStore) SeedTerm(termID, version string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terms[termID] = version
}

func (s *MemoryStore) SeedDepartment(code, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.departments[code] = name
}

// Snapshot returns the cached registry snapshot for a rut, for assertions.
func (s *MemoryStore) Snapshot(rut string) (domain.BusinessInformation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, ok := s.snapshots[rut]
	return info, ok
}

// Record returns whether an onboarding record exists for the identity.
func (s *MemoryStore) RecordExists(id domain.EntityIdentity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.records[id]
	return ok
}

// Credentials returns the stored credential block, for assertions.
func (s *MemoryStore) Credentials(id domain.EntityIdentity) (name, hash string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.credentials[id]
	return c.name, c.passwordHash, ok
}

// Store implementation.

func (s *MemoryStore) GetStatus(_ context.Context, id domain.EntityIdentity) (domain.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statuses[id], nil
}

func (s *MemoryStore) InsertStatus(_ context.Context, id domain.EntityIdentity, st domain.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[id] = st
	return nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, id domain.EntityIdentity, expected domain.StatusCode, next domain.Status) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.statuses[id]
	if !ok || current.Code != expected {
		return 0, nil
	}
	s.statuses[id] = next
	return 1, nil
}

func (s *MemoryStore) CreateNonBusiness(_ context.Context, id domain.EntityIdentity, cellphone string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; ok {
		return 0, nil
	}
	s.records[id] = &memoryRecord{cellphone: cellphone}
	return 1, nil
}

func (s *MemoryStore) GetNonBusiness(_ context.Context, id domain.EntityIdentity, opts ExpandOptions) (*domain.NonBusiness, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := &domain.NonBusiness{
		BusinessDocument: id.BusinessDocument,
		LegalName:        s.snapshots[id.BusinessDocument].LegalName,
		TradeName:        rec.tradeName,
		Status:           s.statuses[id],
	}
	if rec.hasAddr {
		addr := rec.address
		out.Address = &addr
	}
	if opts.Contacts {
		out.Contact = &domain.ContactInfo{Email: rec.email, Cellphone: rec.cellphone}
	}
	if opts.Owner {
		owner := s.owners[id.OwnerDocument]
		owner.Document = id.OwnerDocument
		owner.DocumentType = id.OwnerDocumentType
		owner.Country = id.OwnerCountry
		out.Owner = &owner
	}
	return out, nil
}

func (s *MemoryStore) GetOwnerName(_ context.Context, id domain.EntityIdentity) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner, ok := s.owners[id.OwnerDocument]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return owner.LastName + " " + owner.FirstName, nil
}

func (s *MemoryStore) IsClient(_ context.Context, rut string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clients[rut], nil
}

func (s *MemoryStore) SaveBusinessInformation(_ context.Context, id domain.EntityIdentity, info domain.BusinessInformation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[id.BusinessDocument] = info
	return nil
}

func (s *MemoryStore) SaveEmail(_ context.Context, id domain.EntityIdentity, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[id]; ok {
		rec.email = address
	}
	contact := s.ownerContacts[id.OwnerDocument]
	contact.Email = address
	s.ownerContacts[id.OwnerDocument] = contact
	return nil
}

func (s *MemoryStore) SaveCellphone(_ context.Context, id domain.EntityIdentity, number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[id]; ok {
		rec.cellphone = number
	}
	contact := s.ownerContacts[id.OwnerDocument]
	contact.Cellphone = number
	s.ownerContacts[id.OwnerDocument] = contact
	return nil
}

func (s *MemoryStore) SaveAddress(_ context.Context, id domain.EntityIdentity, rec domain.AddressRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[id]
	if !ok {
		record = &memoryRecord{}
		s.records[id] = record
	}
	record.address = rec
	record.hasAddr = true
	return nil
}

func (s *MemoryStore) SaveTradeName(_ context.Context, id domain.EntityIdentity, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[id]
	if !ok {
		record = &memoryRecord{}
		s.records[id] = record
	}
	record.tradeName = name
	return nil
}

func (s *MemoryStore) SaveBranch(_ context.Context, id domain.EntityIdentity, branch domain.BankBranch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[id]
	if !ok {
		record = &memoryRecord{}
		s.records[id] = record
	}
	record.branch = branch
	return nil
}

func (s *MemoryStore) SaveFormationData(_ context.Context, id domain.EntityIdentity, data domain.FormationData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[id]
	if !ok {
		record = &memoryRecord{}
		s.records[id] = record
	}
	record.formation = data
	return nil
}

func (s *MemoryStore) CreateTemporaryCredentials(_ context.Context, id domain.EntityIdentity, name, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[id] = memoryCredentials{name: name, passwordHash: passwordHash}
	return nil
}

func (s *MemoryStore) SaveEconomicData(_ context.Context, id domain.EntityIdentity, data domain.EconomicData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.economicData[id] = data
	return nil
}

func (s *MemoryStore) GetTermVersion(_ context.Context, termID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	version, ok := s.terms[termID]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return version, nil
}

func (s *MemoryStore) GetDepartments(_ context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.departments))
	for k, v := range s.departments {
		out[k] = v
	}
	return out, nil
}
