package dashboard

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	galleryctl "github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/gallery"
	heroslidectl "github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/heroslide"
	noticectl "github.com/mohozompur-madrasa/madrasa-site/internal/db/controller/notice"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/handlertest"
)

func TestDashboard(t *testing.T) {
	env := handlertest.New(t, &Service{})

	resp, _ := env.Do(t, handlertest.Request{Method: fiber.MethodGet, Path: Path})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	cookie := env.AdminCookie(t)

	resp, out := env.Do(t, handlertest.Request{Method: fiber.MethodGet, Path: Path, Cookie: cookie})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t,
		`{"notices":0,"galleryItems":0,"featuredItems":0,"heroSlides":0,"latestNotice":null}`,
		string(out))

	db := env.Deps.DB

	_, err := noticectl.Create(db, models.Notice{Title: "old", Description: "d", Date: "2024-01-01"})
	require.NoError(t, err)
	_, err = noticectl.Create(db, models.Notice{Title: "new", Description: "d", Date: "2024-06-01"})
	require.NoError(t, err)
	_, err = galleryctl.Create(db, models.GalleryImage{Title: "a", ImageURL: "u", IsFeatured: true})
	require.NoError(t, err)
	_, err = galleryctl.Create(db, models.GalleryImage{Title: "b", ImageURL: "u"})
	require.NoError(t, err)
	_, err = heroslidectl.Create(db, models.HeroSlide{Title: "s", MediaURL: "u"})
	require.NoError(t, err)

	stats, err := Collect(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Notices)
	assert.Equal(t, int64(2), stats.GalleryItems)
	assert.Equal(t, int64(1), stats.FeaturedItems)
	assert.Equal(t, int64(1), stats.HeroSlides)
	require.NotNil(t, stats.LatestNotice)
	assert.Equal(t, "new", stats.LatestNotice.Title)
}
