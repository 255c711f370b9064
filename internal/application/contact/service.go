package contact

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/pkg/id"
)

const fieldStatus = "status"

type Service interface {
	Create(ctx context.Context, req domain.CreateContactRequest) (*domain.Contact, error)
	List(ctx context.Context) ([]domain.Contact, error)
	Reply(ctx context.Context, contactID, message string) error
	Delete(ctx context.Context, contactID string) error
}

type contactStore interface {
	Put(ctx context.Context, c *domain.Contact) error
	Get(ctx context.Context, contactID string) (*domain.Contact, error)
	Scan(ctx context.Context) ([]domain.Contact, error)
	Update(ctx context.Context, contactID string, updates map[string]interface{}) error
	HardDelete(ctx context.Context, contactID string) error
}

type mailer interface {
	SendEmail(to, subject, htmlBody string) error
}

type service struct {
	repo       contactStore
	mailer     mailer
	ownerEmail string
}

type ServiceDeps struct {
	ContactRepo contactStore
	Mailer      mailer
	OwnerEmail  string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:       deps.ContactRepo,
		mailer:     deps.Mailer,
		ownerEmail: deps.OwnerEmail,
	}
}

// Create stores the submission, then notifies the site owner. The record
// survives a notification failure; only the dispatch error is surfaced.
func (s *service) Create(ctx context.Context, req domain.CreateContactRequest) (*domain.Contact, error) {
	now := time.Now().UTC()
	c := &domain.Contact{
		ContactID: id.New(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		Status:    domain.ContactStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	if s.ownerEmail != "" {
		subject := fmt.Sprintf("New contact message from %s", req.Name)
		if err := s.mailer.SendEmail(s.ownerEmail, subject, notificationBody(c)); err != nil {
			return nil, fmt.Errorf("failed to send contact notification: %w", domain.ErrDispatch)
		}
	}
	return c, nil
}

func (s *service) List(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})
	return contacts, nil
}

// Reply emails the sender and marks the contact resolved.
func (s *service) Reply(ctx context.Context, contactID, message string) error {
	c, err := s.repo.Get(ctx, contactID)
	if err != nil {
		return err
	}
	if err := s.mailer.SendEmail(c.Email, "Re: your message", replyBody(c, message)); err != nil {
		return fmt.Errorf("failed to send reply: %w", domain.ErrDispatch)
	}
	return s.repo.Update(ctx, contactID, map[string]interface{}{
		fieldStatus: domain.ContactStatusResolved,
	})
}

func (s *service) Delete(ctx context.Context, contactID string) error {
	if _, err := s.repo.Get(ctx, contactID); err != nil {
		return err
	}
	return s.repo.HardDelete(ctx, contactID)
}

func notificationBody(c *domain.Contact) string {
	return fmt.Sprintf(`<html><body style="font-family:Arial,sans-serif;color:#333">
<h3>New contact form submission</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p>%s</p>
</body></html>`, c.Name, c.Email, c.Message)
}

func replyBody(c *domain.Contact, message string) string {
	return fmt.Sprintf(`<html><body style="font-family:Arial,sans-serif;color:#333">
<p>Dear %s,</p>
<p>%s</p>
<hr/>
<p><strong>Your original message:</strong></p>
<p>%s</p>
</body></html>`, c.Name, message, c.Message)
}
