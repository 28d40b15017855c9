// Package schema validates raw request bodies of every content kind and returns typed values.
// Missing or null required fields, JSON type mismatches and enum violations are reported
// as Errors keyed by json field name. Keys match field names exactly, unknown fields are ignored.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/site"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
)

// Kind names an entity schema.
type Kind string

// Entity kinds.
const (
	KindHero           Kind = "hero"
	KindAbout          Kind = "about"
	KindBranding       Kind = "branding"
	KindNotice         Kind = "notice"
	KindGalleryImage   Kind = "gallery-image"
	KindHeroSlide      Kind = "hero-slide"
	KindLogin          Kind = "login"
	KindChangePassword Kind = "change-password"
	KindDestroyAsset   Kind = "destroy-asset"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Login holds the credentials of a login request.
type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// DestroyAsset names an uploaded asset to delete. resourceType defaults to image.
type DestroyAsset struct {
	PublicID     string `json:"publicId"     validate:"required"`
	ResourceType string `json:"resourceType" validate:"omitempty,oneof=image video raw"`
}

// ChangePassword holds a password change request. ConfirmPassword is optional.
type ChangePassword struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=NewPassword"`
}

// Pointer fields tell a missing or null value apart from an empty string.

type heroInput struct {
	Name        *string `json:"name"        validate:"required"`
	Slogan      *string `json:"slogan"      validate:"required"`
	Description *string `json:"description" validate:"required"`
	ButtonText  *string `json:"buttonText"  validate:"required"`
}

type aboutInput struct {
	Text    *string `json:"text"    validate:"required"`
	Mission *string `json:"mission" validate:"required"`
}

type brandingInput struct {
	SiteName *string `json:"siteName" validate:"required"`
	LogoURL  *string `json:"logoUrl"`
}

type noticeInput struct {
	Title       *string `json:"title"       validate:"required"`
	Description *string `json:"description" validate:"required"`
	Date        *string `json:"date"        validate:"required,max=20"`
}

type galleryImageInput struct {
	Title      *string         `json:"title"      validate:"required"`
	ImageURL   *string         `json:"imageUrl"   validate:"required"`
	Caption    *string         `json:"caption"`
	MediaType  *string         `json:"mediaType"  validate:"omitempty,oneof=image video"`
	IsFeatured models.Featured `json:"isFeatured"` // null fails in Featured.UnmarshalJSON
}

type heroSlideInput struct {
	Title     *string `json:"title"     validate:"required"`
	MediaURL  *string `json:"mediaUrl"  validate:"required"`
	MediaType *string `json:"mediaType" validate:"omitempty,oneof=image video"`
}

func decode(raw []byte, in any) error {
	raw, err := exactKeys(raw, in)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, in); err != nil {
		return fromDecode(err)
	}

	if err := validate.Struct(in); err != nil {
		return fromValidator(err)
	}

	return nil
}

type jsonField struct {
	enum string // allowed values of a oneof field, "" otherwise
}

func jsonFields(t reflect.Type) map[string]jsonField {
	out := make(map[string]jsonField, t.NumField())

	for i := range t.NumField() {
		f := t.Field(i)

		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		var jf jsonField

		for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
			if values, ok := strings.CutPrefix(rule, "oneof="); ok {
				jf.enum = strings.ReplaceAll(values, " ", ", ")
			}
		}

		out[name] = jf
	}

	return out
}

// exactKeys drops keys that match a field name only when case is ignored, as encoding/json
// would otherwise bind them. An explicit null for an enum field is rejected, a missing one
// takes the default.
func exactKeys(raw []byte, in any) ([]byte, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fromDecode(err)
	}

	if obj == nil {
		return raw, nil
	}

	fields := jsonFields(reflect.TypeOf(in).Elem())

	var errs Errors

	for key, val := range obj {
		f, ok := fields[key]
		if !ok {
			for name := range fields {
				if strings.EqualFold(name, key) {
					delete(obj, key)
					break
				}
			}

			continue
		}

		if f.enum != "" && bytes.Equal(bytes.TrimSpace(val), []byte("null")) {
			errs = append(errs, FieldError{
				Field:   key,
				Tag:     "oneof",
				Message: fmt.Sprintf("%s must be one of: %s", key, f.enum),
			})
		}
	}

	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })

		return nil, errs
	}

	out, err := json.Marshal(obj)
	if err != nil {
		return nil, fromDecode(err)
	}

	return out, nil
}

func mediaType(s *string) models.MediaType {
	if s == nil {
		return models.MediaImage
	}

	return models.MediaType(*s).Normalize()
}

// Hero validates a hero body.
func Hero(raw []byte) (site.Hero, error) {
	var in heroInput
	if err := decode(raw, &in); err != nil {
		return site.Hero{}, err
	}

	return site.Hero{
		Name:        *in.Name,
		Slogan:      *in.Slogan,
		Description: *in.Description,
		ButtonText:  *in.ButtonText,
	}, nil
}

// About validates an about body.
func About(raw []byte) (site.About, error) {
	var in aboutInput
	if err := decode(raw, &in); err != nil {
		return site.About{}, err
	}

	return site.About{Text: *in.Text, Mission: *in.Mission}, nil
}

// Branding validates a branding body.
func Branding(raw []byte) (site.Branding, error) {
	var in brandingInput
	if err := decode(raw, &in); err != nil {
		return site.Branding{}, err
	}

	return site.Branding{SiteName: *in.SiteName, LogoURL: in.LogoURL}, nil
}

// Notice validates a notice body. An id in the body is ignored.
func Notice(raw []byte) (models.Notice, error) {
	var in noticeInput
	if err := decode(raw, &in); err != nil {
		return models.Notice{}, err
	}

	return models.Notice{Title: *in.Title, Description: *in.Description, Date: *in.Date}, nil
}

// GalleryImage validates a gallery item body. mediaType defaults to image, isFeatured to false.
func GalleryImage(raw []byte) (models.GalleryImage, error) {
	var in galleryImageInput
	if err := decode(raw, &in); err != nil {
		return models.GalleryImage{}, err
	}

	out := models.GalleryImage{
		Title:      *in.Title,
		ImageURL:   *in.ImageURL,
		Caption:    in.Caption,
		MediaType:  mediaType(in.MediaType),
		IsFeatured: in.IsFeatured,
	}

	return out, nil
}

// HeroSlide validates a hero slide body. The sort order is assigned on creation, never taken from input.
func HeroSlide(raw []byte) (models.HeroSlide, error) {
	var in heroSlideInput
	if err := decode(raw, &in); err != nil {
		return models.HeroSlide{}, err
	}

	return models.HeroSlide{
		Title:     *in.Title,
		MediaURL:  *in.MediaURL,
		MediaType: mediaType(in.MediaType),
	}, nil
}

// LoginRequest validates a login body.
func LoginRequest(raw []byte) (Login, error) {
	var in Login
	if err := decode(raw, &in); err != nil {
		return Login{}, err
	}

	return in, nil
}

// ChangePasswordRequest validates a password change body.
func ChangePasswordRequest(raw []byte) (ChangePassword, error) {
	var in ChangePassword
	if err := decode(raw, &in); err != nil {
		return ChangePassword{}, err
	}

	return in, nil
}

// DestroyAssetRequest validates an asset delete body.
func DestroyAssetRequest(raw []byte) (DestroyAsset, error) {
	var in DestroyAsset
	if err := decode(raw, &in); err != nil {
		return DestroyAsset{}, err
	}

	return in, nil
}

// Validate dispatches raw to the schema of kind and returns the typed value, nil on error.
func Validate(kind Kind, raw []byte) (any, error) {
	var (
		out any
		err error
	)

	switch kind {
	case KindHero:
		out, err = Hero(raw)
	case KindAbout:
		out, err = About(raw)
	case KindBranding:
		out, err = Branding(raw)
	case KindNotice:
		out, err = Notice(raw)
	case KindGalleryImage:
		out, err = GalleryImage(raw)
	case KindHeroSlide:
		out, err = HeroSlide(raw)
	case KindLogin:
		out, err = LoginRequest(raw)
	case KindChangePassword:
		out, err = ChangePasswordRequest(raw)
	case KindDestroyAsset:
		out, err = DestroyAssetRequest(raw)
	default:
		return nil, ErrUnknownKind
	}

	if err != nil {
		return nil, err
	}

	return out, nil
}
