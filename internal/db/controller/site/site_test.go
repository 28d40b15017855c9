package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "github.com/mohozompur-madrasa/madrasa-site/internal/db"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/dbtest"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
)

func TestDefaultsOnFreshStore(t *testing.T) {
	db := dbtest.New(t)

	hero, err := GetHero(db)
	require.NoError(t, err)
	assert.Equal(t, DefaultHero(), hero)

	about, err := GetAbout(db)
	require.NoError(t, err)
	assert.Equal(t, DefaultAbout(), about)

	branding, err := GetBranding(db)
	require.NoError(t, err)
	assert.Equal(t, DefaultHero().Name, branding.SiteName)
	require.NotNil(t, branding.LogoURL)
	assert.Empty(t, *branding.LogoURL)

	// reading never writes
	var count int64
	require.NoError(t, db.Model(&models.Setting{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSaveAndGet(t *testing.T) {
	db := dbtest.New(t)

	hero := Hero{Name: "N", Slogan: "S", Description: "", ButtonText: "B"}
	saved, err := SaveHero(db, hero)
	require.NoError(t, err)
	assert.Equal(t, hero, saved)

	got, err := GetHero(db)
	require.NoError(t, err)
	assert.Equal(t, hero, got)

	hero.Slogan = "S2"
	_, err = SaveHero(db, hero)
	require.NoError(t, err)

	got, err = GetHero(db)
	require.NoError(t, err)
	assert.Equal(t, "S2", got.Slogan)

	_, err = SaveAbout(db, About{Text: "T", Mission: "M"})
	require.NoError(t, err)

	about, err := GetAbout(db)
	require.NoError(t, err)
	assert.Equal(t, About{Text: "T", Mission: "M"}, about)

	_, err = SaveBranding(db, Branding{SiteName: "Site"})
	require.NoError(t, err)

	branding, err := GetBranding(db)
	require.NoError(t, err)
	assert.Equal(t, "Site", branding.SiteName)
	assert.Nil(t, branding.LogoURL)

	var count int64
	require.NoError(t, db.Model(&models.Setting{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestStorageUnavailable(t *testing.T) {
	db := dbtest.Closed(t)

	_, err := GetHero(db)
	require.ErrorIs(t, err, database.ErrStorageUnavailable)

	_, err = SaveAbout(db, About{})
	require.ErrorIs(t, err, database.ErrStorageUnavailable)
}

func TestDefaultNotices(t *testing.T) {
	notices := DefaultNotices()
	require.Len(t, notices, 3)

	for _, n := range notices {
		assert.NotEmpty(t, n.Title)
		assert.NotEmpty(t, n.Description)
		assert.Len(t, n.Date, len("2025-01-15"))
	}
}
