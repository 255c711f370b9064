package cvaccess

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/portfolio-api/internal/domain"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldName           = "name"
	fieldOTP            = "otp"
	fieldOTPExpiresAt   = "otp_expires_at"
	fieldVerified       = "verified"
	fieldDownloadCount  = "download_count"
	fieldLastDownloadAt = "last_download_at"
)

// RequestOTPResult is the success payload of an OTP request.
type RequestOTPResult struct {
	Message         string `json:"message"`
	AlreadyVerified bool   `json:"alreadyVerified,omitempty"`
	Email           string `json:"email"`
}

// DownloadResult carries the fetched file bytes and the fixed attachment name.
type DownloadResult struct {
	Data     []byte
	Filename string
}

type Service interface {
	RequestOTP(ctx context.Context, req domain.RequestOTPRequest) (*RequestOTPResult, error)
	VerifyOTP(ctx context.Context, req domain.VerifyOTPRequest) error
	Download(ctx context.Context, email string) (*DownloadResult, error)
	ListSubjects(ctx context.Context) ([]domain.CVSubject, error)
}

type subjectStore interface {
	Get(ctx context.Context, email string) (*domain.CVSubject, error)
	Put(ctx context.Context, s *domain.CVSubject) error
	Update(ctx context.Context, email string, updates map[string]interface{}) error
	Scan(ctx context.Context) ([]domain.CVSubject, error)
}

type profileStore interface {
	Get(ctx context.Context) (*domain.Profile, error)
}

type mailer interface {
	SendEmail(to, subject, htmlBody string) error
}

type fileFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type service struct {
	subjectRepo subjectStore
	profileRepo profileStore
	mailer      mailer
	fetcher     fileFetcher
	otpTTL      time.Duration
	filename    string
}

type ServiceDeps struct {
	SubjectRepo subjectStore
	ProfileRepo profileStore
	Mailer      mailer
	Fetcher     fileFetcher
	OTPTTL      time.Duration
	CVFilename  string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		subjectRepo: deps.SubjectRepo,
		profileRepo: deps.ProfileRepo,
		mailer:      deps.Mailer,
		fetcher:     deps.Fetcher,
		otpTTL:      deps.OTPTTL,
		filename:    deps.CVFilename,
	}
}

// RequestOTP issues a fresh 6-digit code for the given subject and emails it.
// Requesting again before the previous code expires simply overwrites it —
// resend is this same operation, not a distinct one. Subjects that already
// verified short-circuit: no code is issued and no email is sent.
func (s *service) RequestOTP(ctx context.Context, req domain.RequestOTPRequest) (*RequestOTPResult, error) {
	sub, err := s.subjectRepo.Get(ctx, req.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if err == nil && sub.Verified {
		return &RequestOTPResult{
			Message:         "Email already verified",
			AlreadyVerified: true,
			Email:           sub.Email,
		}, nil
	}

	otp, err := generateOTP()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(s.otpTTL).Unix()

	if sub != nil {
		// Existing unverified subject: last submitted name wins, old code dies.
		err = s.subjectRepo.Update(ctx, req.Email, map[string]interface{}{
			fieldName:         req.Name,
			fieldOTP:          otp,
			fieldOTPExpiresAt: expiresAt,
		})
	} else {
		now := time.Now().UTC()
		err = s.subjectRepo.Put(ctx, &domain.CVSubject{
			Email:        req.Email,
			Name:         req.Name,
			Verified:     false,
			OTP:          otp,
			OTPExpiresAt: expiresAt,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendEmail(req.Email, "Your CV Download Verification Code", otpEmailBody(req.Name, otp, s.otpTTL)); err != nil {
		return nil, fmt.Errorf("failed to send OTP email: %w", domain.ErrDispatch)
	}

	return &RequestOTPResult{
		Message: "OTP sent successfully to your email",
		Email:   req.Email,
	}, nil
}

// VerifyOTP checks the submitted code and flips the subject to verified,
// clearing the stored code and expiry. Verifying an already-verified subject
// succeeds with any code. No attempt limiting is applied.
func (s *service) VerifyOTP(ctx context.Context, req domain.VerifyOTPRequest) error {
	sub, err := s.subjectRepo.Get(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user not found, please request a new OTP: %w", domain.ErrNotFound)
		}
		return err
	}
	if sub.Verified {
		return nil
	}
	if sub.OTP != req.OTP {
		return fmt.Errorf("invalid OTP, please check and try again: %w", domain.ErrInvalidCode)
	}
	if sub.OTPExpiresAt < time.Now().Unix() {
		return fmt.Errorf("OTP has expired, please request a new one: %w", domain.ErrCodeExpired)
	}
	return s.subjectRepo.Update(ctx, req.Email, map[string]interface{}{
		fieldVerified:     true,
		fieldOTP:          "",
		fieldOTPExpiresAt: int64(0),
	})
}

// Download authorizes by email string alone: any verified subject's email
// unlocks the file with no token binding it to the verification event. The
// counter update is a read-modify-write; concurrent downloads for the same
// email can lose an increment, which is accepted.
func (s *service) Download(ctx context.Context, email string) (*DownloadResult, error) {
	sub, err := s.subjectRepo.Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user not found, please complete verification first: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	if !sub.Verified {
		return nil, fmt.Errorf("email not verified, please verify your email first: %w", domain.ErrForbidden)
	}

	now := time.Now().UTC()
	if err := s.subjectRepo.Update(ctx, email, map[string]interface{}{
		fieldDownloadCount:  sub.DownloadCount + 1,
		fieldLastDownloadAt: now.Format(time.RFC3339),
	}); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("CV not available, please contact the administrator: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	if profile.ResumeURL == "" {
		return nil, fmt.Errorf("CV not available, please contact the administrator: %w", domain.ErrNotFound)
	}

	data, err := s.fetcher.Fetch(ctx, profile.ResumeURL)
	if err != nil {
		return nil, err
	}
	return &DownloadResult{Data: data, Filename: s.filename}, nil
}

// ListSubjects returns all verification subjects, newest first. OTP fields
// never serialize (json "-"), so the admin listing cannot leak codes.
func (s *service) ListSubjects(ctx context.Context) ([]domain.CVSubject, error) {
	subjects, err := s.subjectRepo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(subjects, func(i, j int) bool {
		return subjects[i].CreatedAt.After(subjects[j].CreatedAt)
	})
	return subjects, nil
}

// generateOTP returns a 6-digit code uniformly distributed over [100000, 999999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", 100000+n.Int64()), nil
}

func otpEmailBody(name, otp string, ttl time.Duration) string {
	return fmt.Sprintf(`<html><body style="font-family:Arial,sans-serif;color:#333">
<h2>Hello %s!</h2>
<p>Thank you for your interest in my CV. Use the code below to complete verification:</p>
<div style="font-size:32px;font-weight:bold;letter-spacing:8px;margin:20px 0">%s</div>
<p>This code expires in <strong>%d minutes</strong>.</p>
<p>If you didn't request this code, you can safely ignore this email.</p>
</body></html>`, name, otp, int(ttl.Minutes()))
}
