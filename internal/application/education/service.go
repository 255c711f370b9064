package education

import (
	"context"
	"sort"
	"time"

	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/pkg/id"
)

const (
	fieldInstitution = "institution"
	fieldDegree      = "degree"
	fieldField       = "field"
	fieldStartYear   = "start_year"
	fieldEndYear     = "end_year"
	fieldDescription = "description"
)

type Service interface {
	List(ctx context.Context) ([]domain.Education, error)
	Get(ctx context.Context, educationID string) (*domain.Education, error)
	Create(ctx context.Context, req domain.CreateEducationRequest) (*domain.Education, error)
	Update(ctx context.Context, educationID string, req domain.UpdateEducationRequest) (*domain.Education, error)
	Delete(ctx context.Context, educationID string) error
}

type educationStore interface {
	Put(ctx context.Context, e *domain.Education) error
	Get(ctx context.Context, educationID string) (*domain.Education, error)
	Scan(ctx context.Context) ([]domain.Education, error)
	Update(ctx context.Context, educationID string, updates map[string]interface{}) error
	HardDelete(ctx context.Context, educationID string) error
}

type service struct {
	repo educationStore
}

func NewService(repo educationStore) Service {
	return &service{repo: repo}
}

// List returns entries most recent first by start year.
func (s *service) List(ctx context.Context) ([]domain.Education, error) {
	entries, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].StartYear > entries[j].StartYear
	})
	return entries, nil
}

func (s *service) Get(ctx context.Context, educationID string) (*domain.Education, error) {
	return s.repo.Get(ctx, educationID)
}

func (s *service) Create(ctx context.Context, req domain.CreateEducationRequest) (*domain.Education, error) {
	now := time.Now().UTC()
	e := &domain.Education{
		EducationID: id.New(),
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Update(ctx context.Context, educationID string, req domain.UpdateEducationRequest) (*domain.Education, error) {
	updates := map[string]interface{}{}
	if req.Institution != nil {
		updates[fieldInstitution] = *req.Institution
	}
	if req.Degree != nil {
		updates[fieldDegree] = *req.Degree
	}
	if req.Field != nil {
		updates[fieldField] = *req.Field
	}
	if req.StartYear != nil {
		updates[fieldStartYear] = *req.StartYear
	}
	if req.EndYear != nil {
		updates[fieldEndYear] = *req.EndYear
	}
	if req.Description != nil {
		updates[fieldDescription] = *req.Description
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, educationID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, educationID)
}

func (s *service) Delete(ctx context.Context, educationID string) error {
	if _, err := s.repo.Get(ctx, educationID); err != nil {
		return err
	}
	return s.repo.HardDelete(ctx, educationID)
}
