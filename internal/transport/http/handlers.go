// Package httptransport is the thin HTTP layer over the onboarding service.
// Handlers decode, delegate, and encode; business logic stays in the service.
package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"alta/internal/domain"
	"alta/internal/onboarding"
	dErrors "alta/pkg/domain-errors"
	"alta/pkg/platform/sentinel"
)

type Handler struct {
	service *onboarding.Service
}

func NewHandler(service *onboarding.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed request body"))
		return
	}
	result, err := h.service.Search(r.Context(), req.UserID, req.BusinessDocument)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handlePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed request body"))
		return
	}
	token, err := h.service.Post(r.Context(), req.RUT, req.OwnerDocument, req.Cellphone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": token})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	token := pathToken(r)
	result, err := h.service.GetByID(r.Context(), token, r.URL.Query().Get("expand"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed request body"))
		return
	}
	var contact domain.ContactDetail
	switch req.Type {
	case contactTypeEmail:
		contact = domain.EmailContact{Address: req.Email}
	case contactTypeMobile:
		contact = domain.MobileContact{Number: req.Mobile}
	default:
		// nil falls through to the service's unsupported-type rejection so
		// the reason code is produced in one place.
	}
	if err := h.service.CreateContactDetail(r.Context(), pathToken(r), contact); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAddress(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed request body"))
		return
	}
	if err := h.service.CreateAddress(r.Context(), pathToken(r), req.toDomain()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePatch(w http.ResponseWriter, r *http.Request) {
	var req patchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed request body"))
		return
	}
	outcome, err := h.service.Patch(r.Context(), pathToken(r), req.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (h *Handler) handleEconomicData(w http.ResponseWriter, r *http.Request) {
	var req economicDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed request body"))
		return
	}
	if err := h.service.PatchEconomicData(r.Context(), pathToken(r), req.toDomain()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleTerms(w http.ResponseWriter, r *http.Request) {
	var req termsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed request body"))
		return
	}
	if err := h.service.UpdateTerms(r.Context(), pathToken(r), req.TermID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

// writeError centralizes domain error translation to HTTP responses so every
// handler emits the same JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	envelope := errorEnvelope{Code: string(dErrors.CodeInternal), Message: "internal error"}

	var de *dErrors.Error
	switch {
	case errors.As(err, &de):
		status = httpStatus(de.Code)
		envelope = errorEnvelope{Code: string(de.Code), Reason: de.Reason, Message: de.Message}
	case errors.Is(err, sentinel.ErrNotFound):
		status = http.StatusNotFound
		envelope = errorEnvelope{Code: string(dErrors.CodeNotFound), Message: "not found"}
	}
	writeJSON(w, status, envelope)
}

func httpStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeValidation:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
