package admin

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/portfolio-api/internal/domain"
)

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type Service interface {
	Login(req LoginRequest) (*LoginResult, error)
}

type tokenSigner interface {
	Sign(role string) (string, error)
}

type ServiceDeps struct {
	PasswordHash string
	Signer       tokenSigner
}

type service struct {
	passwordHash string
	signer       tokenSigner
}

func NewService(deps ServiceDeps) Service {
	return &service{
		passwordHash: deps.PasswordHash,
		signer:       deps.Signer,
	}
}

// Login checks the admin password against the configured bcrypt hash and
// issues a short-lived token for the management endpoints.
func (s *service) Login(req LoginRequest) (*LoginResult, error) {
	if s.passwordHash == "" || s.signer == nil {
		return nil, fmt.Errorf("admin auth not configured: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid password: %w", domain.ErrUnauthorized)
	}
	token, err := s.signer.Sign(domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &LoginResult{Token: token}, nil
}
