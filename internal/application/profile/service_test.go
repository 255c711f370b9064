package profile

import (
	"context"
	"testing"

	"github.com/portfolio-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProfileStore struct{ mock.Mock }

func (m *mockProfileStore) Get(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	if p, _ := args.Get(0).(*domain.Profile); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProfileStore) Put(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func TestGet_CreatesWhenAbsent(t *testing.T) {
	ps := &mockProfileStore{}
	ps.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)
	ps.On("Put", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	svc := NewService(ps)
	p, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.ProfileKey, p.ProfileID)
	ps.AssertExpectations(t)
}

func TestGet_ReturnsExisting(t *testing.T) {
	ps := &mockProfileStore{}
	ps.On("Get", mock.Anything).Return(&domain.Profile{Name: "Ada"}, nil)

	svc := NewService(ps)
	p, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name)
	ps.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestUpdate_AppliesOnlyProvidedFields(t *testing.T) {
	ps := &mockProfileStore{}
	ps.On("Get", mock.Anything).Return(&domain.Profile{Name: "Ada", Bio: "old bio"}, nil)
	var saved *domain.Profile
	ps.On("Put", mock.Anything, mock.AnythingOfType("*domain.Profile")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Profile)
	}).Return(nil)

	resume := "https://cdn.example.com/cv.pdf"
	svc := NewService(ps)
	p, err := svc.Update(context.Background(), domain.UpdateProfileRequest{ResumeURL: &resume})

	require.NoError(t, err)
	assert.Equal(t, resume, p.ResumeURL)
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "old bio", p.Bio)
	require.NotNil(t, saved)
	assert.Equal(t, resume, saved.ResumeURL)
}
