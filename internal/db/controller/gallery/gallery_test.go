package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohozompur-madrasa/madrasa-site/internal/db/dbtest"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
)

func TestListFeaturedFirst(t *testing.T) {
	db := dbtest.New(t)

	items := []models.GalleryImage{
		{Title: "a", ImageURL: "https://cdn/a.jpg"},
		{Title: "b", ImageURL: "https://cdn/b.jpg", IsFeatured: true},
		{Title: "c", ImageURL: "https://cdn/c.mp4", MediaType: models.MediaVideo},
		{Title: "d", ImageURL: "https://cdn/d.jpg", IsFeatured: true},
	}

	for _, it := range items {
		_, err := Create(db, it)
		require.NoError(t, err)
	}

	list, err := List(db)
	require.NoError(t, err)

	titles := make([]string, 0, len(list))
	for _, it := range list {
		titles = append(titles, it.Title)
	}

	assert.Equal(t, []string{"b", "d", "a", "c"}, titles)

	featured, err := CountFeatured(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), featured)

	total, err := Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestCreateNormalizesMediaType(t *testing.T) {
	db := dbtest.New(t)

	created, err := Create(db, models.GalleryImage{Title: "x", ImageURL: "u", MediaType: "audio"})
	require.NoError(t, err)
	assert.Equal(t, models.MediaImage, created.MediaType)
	assert.False(t, bool(created.IsFeatured))
	assert.Nil(t, created.Caption)
}

func TestUpdateAndDelete(t *testing.T) {
	db := dbtest.New(t)

	caption := "caption"

	created, err := Create(db, models.GalleryImage{Title: "x", ImageURL: "u", Caption: &caption})
	require.NoError(t, err)

	updated, err := Update(db, created.ID, models.GalleryImage{
		Title:      "y",
		ImageURL:   "v",
		MediaType:  models.MediaVideo,
		IsFeatured: true,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "y", updated.Title)
	assert.Nil(t, updated.Caption, "update replaces every field")
	assert.Equal(t, models.MediaVideo, updated.MediaType)
	assert.True(t, bool(updated.IsFeatured))

	// unfeature round trips through the database
	updated, err = Update(db, created.ID, models.GalleryImage{Title: "y", ImageURL: "v"})
	require.NoError(t, err)
	require.NotNil(t, updated)

	list, err := List(db)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, bool(list[0].IsFeatured))

	missing, err := Update(db, 999, models.GalleryImage{Title: "z"})
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := Delete(db, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = Delete(db, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
