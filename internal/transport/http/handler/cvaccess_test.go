package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-api/internal/application/cvaccess"
	"github.com/portfolio-api/internal/domain"
)

type mockCVAccessService struct {
	mock.Mock
}

func (m *mockCVAccessService) RequestOTP(ctx context.Context, req domain.RequestOTPRequest) (*cvaccess.RequestOTPResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cvaccess.RequestOTPResult), args.Error(1)
}

func (m *mockCVAccessService) VerifyOTP(ctx context.Context, req domain.VerifyOTPRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockCVAccessService) Download(ctx context.Context, email string) (*cvaccess.DownloadResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cvaccess.DownloadResult), args.Error(1)
}

func (m *mockCVAccessService) ListSubjects(ctx context.Context) ([]domain.CVSubject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CVSubject), args.Error(1)
}

func newTestRouter(svc cvaccess.Service) http.Handler {
	h := NewCVAccessHandler(svc)
	r := chi.NewRouter()
	r.Post("/v1/cv-access/request-otp", h.RequestOTP)
	r.Post("/v1/cv-access/verify-otp", h.VerifyOTP)
	r.Get("/v1/cv-access/file", h.Download)
	r.Get("/v1/cv-access/subjects", h.ListSubjects)
	return r
}

func TestRequestOTP_InvalidBody(t *testing.T) {
	svc := new(mockCVAccessService)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/v1/cv-access/request-otp", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "RequestOTP")
}

func TestRequestOTP_MissingEmail(t *testing.T) {
	svc := new(mockCVAccessService)
	router := newTestRouter(svc)

	body, _ := json.Marshal(map[string]string{"name": "Ada"})
	req := httptest.NewRequest(http.MethodPost, "/v1/cv-access/request-otp", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "RequestOTP")
}

func TestRequestOTP_AlreadyVerified(t *testing.T) {
	svc := new(mockCVAccessService)
	svc.On("RequestOTP", mock.Anything, domain.RequestOTPRequest{Name: "Ada", Email: "ada@example.com"}).
		Return(&cvaccess.RequestOTPResult{
			Message:         "Email already verified",
			AlreadyVerified: true,
			Email:           "ada@example.com",
		}, nil)
	router := newTestRouter(svc)

	body, _ := json.Marshal(map[string]string{"name": "Ada", "email": "ada@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/v1/cv-access/request-otp", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got cvaccess.RequestOTPResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.AlreadyVerified)
	assert.Equal(t, "ada@example.com", got.Email)
	svc.AssertExpectations(t)
}

func TestVerifyOTP_Success_ReturnsVerifiedTrue(t *testing.T) {
	svc := new(mockCVAccessService)
	svc.On("VerifyOTP", mock.Anything, domain.VerifyOTPRequest{Email: "ada@example.com", OTP: "123456"}).
		Return(nil)
	router := newTestRouter(svc)

	body, _ := json.Marshal(map[string]string{"email": "ada@example.com", "otp": "123456"})
	req := httptest.NewRequest(http.MethodPost, "/v1/cv-access/verify-otp", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["verified"])
	assert.Equal(t, "email verified", payload["message"])
	svc.AssertExpectations(t)
}

func TestVerifyOTP_InvalidCode(t *testing.T) {
	svc := new(mockCVAccessService)
	svc.On("VerifyOTP", mock.Anything, mock.Anything).Return(domain.ErrInvalidCode)
	router := newTestRouter(svc)

	body, _ := json.Marshal(map[string]string{"email": "ada@example.com", "otp": "000000"})
	req := httptest.NewRequest(http.MethodPost, "/v1/cv-access/verify-otp", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerifyOTP_UnknownEmail(t *testing.T) {
	svc := new(mockCVAccessService)
	svc.On("VerifyOTP", mock.Anything, mock.Anything).Return(domain.ErrNotFound)
	router := newTestRouter(svc)

	body, _ := json.Marshal(map[string]string{"email": "ghost@example.com", "otp": "123456"})
	req := httptest.NewRequest(http.MethodPost, "/v1/cv-access/verify-otp", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDownload_MissingEmailParam(t *testing.T) {
	svc := new(mockCVAccessService)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/cv-access/file", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Download")
}

func TestDownload_NotVerified(t *testing.T) {
	svc := new(mockCVAccessService)
	svc.On("Download", mock.Anything, "ada@example.com").Return(nil, domain.ErrForbidden)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/cv-access/file?email=ada%40example.com", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestDownload_SetsAttachmentHeaders(t *testing.T) {
	svc := new(mockCVAccessService)
	pdf := []byte("%PDF-1.4 fake")
	svc.On("Download", mock.Anything, "ada@example.com").
		Return(&cvaccess.DownloadResult{Data: pdf, Filename: "cv.pdf"}, nil)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/cv-access/file?email=ada%40example.com", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="cv.pdf"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, pdf, rr.Body.Bytes())
}

func TestListSubjects_EnvelopeAndSecretsOmitted(t *testing.T) {
	svc := new(mockCVAccessService)
	svc.On("ListSubjects", mock.Anything).Return([]domain.CVSubject{
		{
			Email:        "ada@example.com",
			Name:         "Ada",
			Verified:     true,
			OTP:          "123456",
			OTPExpiresAt: time.Now().Unix(),
		},
	}, nil)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/cv-access/subjects", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var envelope struct {
		Success bool                     `json:"success"`
		Users   []map[string]interface{} `json:"users"`
		Count   int                      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, 1, envelope.Count)
	require.Len(t, envelope.Users, 1)
	assert.Equal(t, "ada@example.com", envelope.Users[0]["email"])
	assert.NotContains(t, envelope.Users[0], "otp")
	assert.NotContains(t, envelope.Users[0], "otp_expires_at")
}

func TestListSubjects_EmptyListNotNull(t *testing.T) {
	svc := new(mockCVAccessService)
	svc.On("ListSubjects", mock.Anything).Return([]domain.CVSubject{}, nil)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/cv-access/subjects", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"users":[]`)
}
