package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tuition-negotiation/domain"
	"tuition-negotiation/service"
)

type SessionHandler struct {
	service *service.SessionService
}

func NewSessionHandler(service *service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

type maskRequest struct {
	Raw string `json:"raw"`
}

type addInstallmentRequest struct {
	Amount string `json:"amount"`
}

type sessionResponse struct {
	ID           uuid.UUID                      `json:"id"`
	Placeholders map[string]string              `json:"placeholders,omitempty"`
	Installments []domain.InstallmentView       `json:"installments"`
	Negotiation  *domain.NegotiationResult      `json:"negotiation"`
	Multi        *domain.MultiNegotiationResult `json:"multi"`
	Simulation   *domain.SimulationResult       `json:"simulation"`
}

type installmentsResponse struct {
	Installments []domain.InstallmentView `json:"installments"`
	Removed      *bool                    `json:"removed,omitempty"`
}

func newSessionResponse(s domain.Session) sessionResponse {
	return sessionResponse{
		ID:           s.ID,
		Installments: s.Installments.DisplayList(),
		Negotiation:  s.Negotiation,
		Multi:        s.Multi,
		Simulation:   s.Simulation,
	}
}

func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

// maxBodyBytes bounds every JSON request body. Forms carry at most three
// short amount strings.
const maxBodyBytes = 4 << 10

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *SessionHandler) Mask(w http.ResponseWriter, r *http.Request) {
	var req maskRequest
	if !decode(w, r, &req) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"display": h.service.Mask(req.Raw)})
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.CreateSession(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := newSessionResponse(session)
	resp.Placeholders = h.service.Placeholders()
	WriteJSON(w, http.StatusCreated, resp)
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.GetSession(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, newSessionResponse(session))
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteSession(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) CalculateNegotiation(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var form domain.NegotiationForm
	if !decode(w, r, &form) {
		return
	}

	result, err := h.service.CalculateNegotiation(r.Context(), id, form)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h *SessionHandler) ClearNegotiation(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.ClearNegotiation(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) ListInstallments(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	views, err := h.service.ListInstallments(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, installmentsResponse{Installments: views})
}

func (h *SessionHandler) AddInstallment(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req addInstallmentRequest
	if !decode(w, r, &req) {
		return
	}

	views, err := h.service.AddInstallment(r.Context(), id, req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, installmentsResponse{Installments: views})
}

// RemoveInstallment answers 200 with the current list even when index is
// outside it; Removed tells whether anything changed.
func (h *SessionHandler) RemoveInstallment(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid installment index")
		return
	}

	views, removed, err := h.service.RemoveInstallment(r.Context(), id, index)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, installmentsResponse{Installments: views, Removed: &removed})
}

func (h *SessionHandler) CalculateMulti(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var form domain.MultiNegotiationForm
	if !decode(w, r, &form) {
		return
	}

	result, err := h.service.CalculateMulti(r.Context(), id, form)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h *SessionHandler) ClearMulti(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.ClearMulti(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var form domain.SimulationForm
	if !decode(w, r, &form) {
		return
	}

	result, err := h.service.Simulate(r.Context(), id, form)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h *SessionHandler) ClearSimulation(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.ClearSimulation(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
