package project

import (
	"context"
	"sort"
	"time"

	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/pkg/id"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldTech        = "tech"
	fieldGitHub      = "github"
	fieldLiveURL     = "live_url"
	fieldImageURL    = "image_url"
	fieldFeatured    = "featured"
)

type Service interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, projectID string) (*domain.Project, error)
	Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error)
	Update(ctx context.Context, projectID string, req domain.UpdateProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, projectID string) error
}

type projectStore interface {
	Put(ctx context.Context, p *domain.Project) error
	Get(ctx context.Context, projectID string) (*domain.Project, error)
	Scan(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, projectID string, updates map[string]interface{}) error
	HardDelete(ctx context.Context, projectID string) error
}

type service struct {
	repo projectStore
}

func NewService(repo projectStore) Service {
	return &service{repo: repo}
}

// List returns projects with featured ones first, then newest first.
func (s *service) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].Featured != projects[j].Featured {
			return projects[i].Featured
		}
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

func (s *service) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.repo.Get(ctx, projectID)
}

func (s *service) Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error) {
	now := time.Now().UTC()
	p := &domain.Project{
		ProjectID:   id.New(),
		Title:       req.Title,
		Description: req.Description,
		Tech:        req.Tech,
		GitHub:      req.GitHub,
		LiveURL:     req.LiveURL,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, projectID string, req domain.UpdateProjectRequest) (*domain.Project, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates[fieldTitle] = *req.Title
	}
	if req.Description != nil {
		updates[fieldDescription] = *req.Description
	}
	if req.Tech != nil {
		updates[fieldTech] = *req.Tech
	}
	if req.GitHub != nil {
		updates[fieldGitHub] = *req.GitHub
	}
	if req.LiveURL != nil {
		updates[fieldLiveURL] = *req.LiveURL
	}
	if req.ImageURL != nil {
		updates[fieldImageURL] = *req.ImageURL
	}
	if req.Featured != nil {
		updates[fieldFeatured] = *req.Featured
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, projectID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, projectID)
}

func (s *service) Delete(ctx context.Context, projectID string) error {
	if _, err := s.repo.Get(ctx, projectID); err != nil {
		return err
	}
	return s.repo.HardDelete(ctx, projectID)
}
