package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/portfolio-api/internal/application/cvaccess"
	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/pkg/validate"
)

// CVAccessHandler handles the OTP-gated resume download endpoints.
type CVAccessHandler struct {
	svc cvaccess.Service
}

func NewCVAccessHandler(svc cvaccess.Service) *CVAccessHandler { return &CVAccessHandler{svc: svc} }

func (h *CVAccessHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.RequestOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.svc.RequestOTP(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *CVAccessHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.VerifyOTP(r.Context(), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, VerifyEnvelope{Message: "email verified", Verified: true})
}

// Download streams the resume PDF to verified visitors. The email comes in as
// a query parameter so the link can be opened directly from the browser.
func (h *CVAccessHandler) Download(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "missing email parameter")
		return
	}
	result, err := h.svc.Download(r.Context(), email)
	if err != nil {
		httpError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	_, _ = w.Write(result.Data)
}

func (h *CVAccessHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.svc.ListSubjects(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	if subjects == nil {
		subjects = []domain.CVSubject{}
	}
	writeJSON(w, http.StatusOK, SubjectsEnvelope{Success: true, Users: subjects, Count: len(subjects)})
}
