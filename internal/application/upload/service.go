package upload

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/portfolio-api/internal/domain"
)

// Kinds a file can be uploaded as; each maps to its own S3 prefix.
const (
	KindResume  = "resume"
	KindAvatar  = "avatar"
	KindProject = "project"
)

type UploadInput struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Kind        string
}

type Result struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type Service interface {
	Upload(ctx context.Context, input UploadInput) (*Result, error)
	Delete(ctx context.Context, key string) error
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	store objectStore
}

func NewService(store objectStore) Service {
	return &service{store: store}
}

// Upload stores the file under uploads/<kind>/<timestamp>-<name> and returns
// the URL to record on the profile or project.
func (s *service) Upload(ctx context.Context, input UploadInput) (*Result, error) {
	switch input.Kind {
	case KindResume, KindAvatar, KindProject:
	default:
		return nil, fmt.Errorf("unknown upload kind %q: %w", input.Kind, domain.ErrBadRequest)
	}
	safeName := sanitizeFilename(input.Filename)
	key := fmt.Sprintf("uploads/%s/%d-%s", input.Kind, time.Now().Unix(), safeName)

	contentType := input.ContentType
	if contentType == "" {
		contentType = contentTypeFromName(safeName)
	}
	url, err := s.store.Upload(ctx, key, input.Reader, contentType)
	if err != nil {
		return nil, err
	}
	return &Result{URL: url, Key: key}, nil
}

// Delete removes a previously uploaded object. Keys outside the uploads/
// prefix are refused so the endpoint cannot touch arbitrary bucket objects.
func (s *service) Delete(ctx context.Context, key string) error {
	if !strings.HasPrefix(key, "uploads/") || strings.Contains(key, "..") {
		return fmt.Errorf("invalid object key %q: %w", key, domain.ErrBadRequest)
	}
	return s.store.Delete(ctx, key)
}

func contentTypeFromName(filename string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".pdf"):
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// sanitizeFilename strips directory components and keeps only safe characters
// (alphanumeric, dot, dash, underscore) to prevent path traversal in S3 keys.
func sanitizeFilename(name string) string {
	name = path.Base(name)
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	if result := b.String(); result != "" && result != "." {
		return result
	}
	return "_"
}
