// Package media relays uploaded files to the media CDN and returns their public urls.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
)

var (
	// ErrUploadFailed is returned when the provider rejected an upload or could not be reached.
	ErrUploadFailed = errors.New("upload failed")
	// ErrDeleteFailed is returned when the provider could not delete an asset.
	ErrDeleteFailed = errors.New("delete failed")
	// ErrNotConfigured is returned by every call when no provider credentials are set.
	ErrNotConfigured = fmt.Errorf("%w: media provider is not configured", ErrUploadFailed)
)

// Asset is an uploaded file.
type Asset struct {
	URL          string `json:"url"`
	PublicID     string `json:"publicId"`
	ResourceType string `json:"resourceType"`
}

// Provider stores files at the media host. Each call is a single attempt.
type Provider interface {
	Upload(ctx context.Context, r io.Reader, filename string) (*Asset, error)
	Destroy(ctx context.Context, publicID, resourceType string) error
}

// New returns the Cloudinary provider when cfg is complete, Unconfigured otherwise.
func New(cfg config.Media) (Provider, error) {
	if !cfg.Configured() {
		return Unconfigured{}, nil
	}

	return NewCloudinary(cfg)
}

// Unconfigured fails every call with ErrNotConfigured.
type Unconfigured struct{}

// Upload implements Provider.
func (Unconfigured) Upload(context.Context, io.Reader, string) (*Asset, error) {
	return nil, ErrNotConfigured
}

// Destroy implements Provider.
func (Unconfigured) Destroy(context.Context, string, string) error {
	return ErrNotConfigured
}
