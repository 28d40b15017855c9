package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"

	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
)

const (
	defaultFolder       = "madrasa"
	resourceTypeAuto    = "auto"
	defaultResourceType = "image"
	destroyResultOK     = "ok"
)

// uploadAPI is the part of the Cloudinary upload API in use.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// Cloudinary uploads into one folder with automatic resource type detection.
type Cloudinary struct {
	api    uploadAPI
	folder string
}

// NewCloudinary creates the provider from the configured credentials.
func NewCloudinary(cfg config.Media) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	return newCloudinary(&cld.Upload, cfg.Folder), nil
}

func newCloudinary(api uploadAPI, folder string) *Cloudinary {
	if folder == "" {
		folder = defaultFolder
	}

	return &Cloudinary{api: api, folder: folder}
}

// Upload implements Provider.
func (c *Cloudinary) Upload(ctx context.Context, r io.Reader, filename string) (*Asset, error) {
	res, err := c.api.Upload(ctx, r, uploader.UploadParams{
		Folder:       c.folder,
		ResourceType: resourceTypeAuto,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	if res == nil {
		return nil, fmt.Errorf("%w: empty response", ErrUploadFailed)
	}

	if res.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s", ErrUploadFailed, res.Error.Message)
	}

	if res.SecureURL == "" {
		return nil, fmt.Errorf("%w: no url in response", ErrUploadFailed)
	}

	log.Info().Str("file", filename).Str("public_id", res.PublicID).Str("resource_type", res.ResourceType).
		Msg("media uploaded")

	return &Asset{
		URL:          res.SecureURL,
		PublicID:     res.PublicID,
		ResourceType: res.ResourceType,
	}, nil
}

// Destroy implements Provider. An empty resource type means image.
func (c *Cloudinary) Destroy(ctx context.Context, publicID, resourceType string) error {
	if resourceType == "" {
		resourceType = defaultResourceType
	}

	res, err := c.api.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	if res == nil {
		return fmt.Errorf("%w: empty response", ErrDeleteFailed)
	}

	if res.Error.Message != "" {
		return fmt.Errorf("%w: %s", ErrDeleteFailed, res.Error.Message)
	}

	if res.Result != destroyResultOK {
		return fmt.Errorf("%w: %s", ErrDeleteFailed, res.Result)
	}

	log.Info().Str("public_id", publicID).Msg("media deleted")

	return nil
}
