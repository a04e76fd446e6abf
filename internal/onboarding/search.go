package onboarding

import (
	"context"
	"errors"
	"strings"
	"time"

	"alta/internal/domain"
	dErrors "alta/pkg/domain-errors"
	"alta/pkg/platform/sentinel"
)

// Search validates a sole proprietorship against the DGI registry. The
// caller id is "ownerDocument-rut"; input-format failures return before any
// database access, every later rejection is audited with its outcome code.
func (s *Service) Search(ctx context.Context, callerID, businessDocument string) (result *domain.SearchResult, err error) {
	start := time.Now()
	defer func() { s.observe("search", start, err) }()

	parts := strings.Split(callerID, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid user-id").
			WithReason(ReasonInvalidUserID)
	}
	ownerDocument, rut := parts[0], parts[1]
	if rut != businessDocument {
		return nil, dErrors.New(dErrors.CodeValidation, "documents not matching").
			WithReason(ReasonDocumentsNotMatching)
	}
	id := domain.NewEntityIdentity(ownerDocument, rut)

	isClient, err := s.store.IsClient(ctx, rut)
	if err != nil {
		return nil, err
	}
	if isClient {
		return nil, s.reject(ctx, id, domain.AuditAlreadyClient, domain.ProcessSearch,
			ReasonAlreadyClient, "already a client")
	}

	current, err := s.store.GetStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Code.Terminal() || current.Code.EntryOrResume() {
		return nil, s.reject(ctx, id, domain.AuditInvalidStatus, domain.ProcessSearch,
			ReasonInvalidStatus, "invalid current status")
	}

	registryStart := time.Now()
	info, err := s.registry.FetchBusinessInformation(ctx, rut)
	s.metrics.ObserveRegistry(time.Since(registryStart))
	if err != nil {
		s.log.Printf("component=alta/internal/registry msg=%q cause=%v", "registry lookup failed", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "registry lookup failed").
			WithComponent("alta/internal/registry")
	}

	// The snapshot is cached before any registry-data check so the last known
	// registry state is persisted even when the checks reject.
	if err := s.store.SaveBusinessInformation(ctx, id, info); err != nil {
		return nil, err
	}

	if info.Expired(s.now()) {
		return nil, s.reject(ctx, id, domain.AuditCertExpired, domain.ProcessSearch,
			ReasonCertificateExpired, "certificate expired")
	}

	if s.cfg.ValidateName {
		if !s.names.ValidateStructure(info.LegalName) {
			return nil, s.reject(ctx, id, domain.AuditNotUnipersonal, domain.ProcessSearch,
				ReasonNotUnipersonal, "not a sole proprietorship")
		}
		ownerName, err := s.store.GetOwnerName(ctx, id)
		if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return nil, err
		}
		if !s.names.Similar(ownerName, info.LegalName) {
			return nil, s.reject(ctx, id, domain.AuditNamesMismatch, domain.ProcessSearch,
				ReasonNamesNotMatching, "legal name does not match registered owner")
		}
	}

	next := domain.Status{Code: domain.StatusDGIOK, Process: domain.ProcessSearch}
	if err := s.advanceStatus(ctx, id, current, next); err != nil {
		return nil, err
	}
	if err := s.auditStatus(ctx, id, next); err != nil {
		return nil, err
	}

	return &domain.SearchResult{
		LegalName:    info.LegalName,
		Address:      info.LegalAddress,
		Document:     info.RUT,
		DocumentType: domain.DocumentTypeRUT,
	}, nil
}
