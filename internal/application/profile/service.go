package profile

import (
	"context"
	"errors"
	"time"

	"github.com/portfolio-api/internal/domain"
)

type Service interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Update(ctx context.Context, req domain.UpdateProfileRequest) (*domain.Profile, error)
}

type profileStore interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Put(ctx context.Context, p *domain.Profile) error
}

type service struct {
	repo profileStore
}

func NewService(repo profileStore) Service {
	return &service{repo: repo}
}

// Get returns the singleton profile, creating an empty record on first access
// so callers never have to reason about absence.
func (s *service) Get(ctx context.Context) (*domain.Profile, error) {
	p, err := s.repo.Get(ctx)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	now := time.Now().UTC()
	p = &domain.Profile{ProfileID: domain.ProfileKey, CreatedAt: now, UpdatedAt: now}
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, req domain.UpdateProfileRequest) (*domain.Profile, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Headline != nil {
		p.Headline = *req.Headline
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.GitHub != nil {
		p.GitHub = *req.GitHub
	}
	if req.LinkedIn != nil {
		p.LinkedIn = *req.LinkedIn
	}
	if req.AvatarURL != nil {
		p.AvatarURL = *req.AvatarURL
	}
	if req.ResumeURL != nil {
		p.ResumeURL = *req.ResumeURL
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
