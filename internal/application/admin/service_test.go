package admin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/portfolio-api/internal/domain"
)

type stubSigner struct {
	token string
	err   error
	role  string
}

func (s *stubSigner) Sign(role string) (string, error) {
	s.role = role
	return s.token, s.err
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	signer := &stubSigner{token: "signed-token"}
	svc := NewService(ServiceDeps{PasswordHash: string(hash), Signer: signer})

	result, err := svc.Login(LoginRequest{Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, domain.RoleAdmin, signer.role)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewService(ServiceDeps{PasswordHash: string(hash), Signer: &stubSigner{}})

	_, err = svc.Login(LoginRequest{Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_NoHashConfigured(t *testing.T) {
	svc := NewService(ServiceDeps{PasswordHash: "", Signer: &stubSigner{}})

	_, err := svc.Login(LoginRequest{Password: "anything"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_NoSignerConfigured(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewService(ServiceDeps{PasswordHash: string(hash), Signer: nil})

	assert.NotPanics(t, func() {
		_, err = svc.Login(LoginRequest{Password: "hunter2"})
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SignerError(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewService(ServiceDeps{
		PasswordHash: string(hash),
		Signer:       &stubSigner{err: errors.New("boom")},
	})

	_, err = svc.Login(LoginRequest{Password: "hunter2"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}
