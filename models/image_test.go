package models

import (
	"os"
	"testing"

	"gallery/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageCreateRequiresOwnedAlbum(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice", "alice@example.com")
	bob := createTestUser(t, "bob", "bob@example.com")

	album, err := AlbumCreate("Trip", alice.ID)
	require.NoError(t, err)

	_, err = ImageCreate("Sneaky", "", "/images/sneaky.jpg", album.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ImageCreate("Sunset", "", storeTestFile(t, "sunset.jpg"), album.ID, alice.ID)
	assert.NoError(t, err)
}

func TestImageOwnershipViaAlbumJoin(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice", "alice@example.com")
	bob := createTestUser(t, "bob", "bob@example.com")

	album, err := AlbumCreate("Trip", alice.ID)
	require.NoError(t, err)
	image, err := ImageCreate("Sunset", "evening", storeTestFile(t, "sunset.jpg"), album.ID, alice.ID)
	require.NoError(t, err)

	_, err = ImageByID(image.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ImageSave(image.ID, "Hijacked", "", bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, ImageDelete(image.ID, bob.ID), ErrNotFound)

	_, err = ImagesForAlbum(album.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	fetched, err := ImageByID(image.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunset", fetched.Title)
	assert.Equal(t, "evening", fetched.Description)
}

func TestImageSaveTouchesTitleAndDescriptionOnly(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice", "alice@example.com")

	album, err := AlbumCreate("Trip", alice.ID)
	require.NoError(t, err)
	image, err := ImageCreate("Sunset", "", storeTestFile(t, "sunset.jpg"), album.ID, alice.ID)
	require.NoError(t, err)

	updated, err := ImageSave(image.ID, "Dusk", "updated", alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dusk", updated.Title)
	assert.Equal(t, "updated", updated.Description)
	assert.Equal(t, image.AlbumID, updated.AlbumID)
	assert.Equal(t, image.URL, updated.URL)
}

func TestImageDeleteRemovesRowAndFile(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice", "alice@example.com")

	album, err := AlbumCreate("Trip", alice.ID)
	require.NoError(t, err)
	image, err := ImageCreate("Sunset", "", storeTestFile(t, "sunset.jpg"), album.ID, alice.ID)
	require.NoError(t, err)

	require.NoError(t, ImageDelete(image.ID, alice.ID))

	_, err = ImageByID(image.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = os.Stat(storage.GetFullPath("sunset.jpg"))
	assert.True(t, os.IsNotExist(err))

	// deleting again reports not found, not a filesystem error
	assert.ErrorIs(t, ImageDelete(image.ID, alice.ID), ErrNotFound)
}

func TestImagesForAlbumOrdering(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice", "alice@example.com")

	album, err := AlbumCreate("Trip", alice.ID)
	require.NoError(t, err)
	for _, name := range []string{"one.jpg", "two.jpg", "three.jpg"} {
		_, err = ImageCreate(name, "", storeTestFile(t, name), album.ID, alice.ID)
		require.NoError(t, err)
	}

	images, err := ImagesForAlbum(album.ID, alice.ID)
	require.NoError(t, err)
	assert.Len(t, images, 3)
}

func TestImageStats(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice", "alice@example.com")
	bob := createTestUser(t, "bob", "bob@example.com")

	tripA, err := AlbumCreate("Trip", alice.ID)
	require.NoError(t, err)
	tripB, err := AlbumCreate("Trip", bob.ID)
	require.NoError(t, err)

	_, err = ImageCreate("One", "", storeTestFile(t, "one.jpg"), tripA.ID, alice.ID)
	require.NoError(t, err)
	_, err = ImageCreate("Two", "", storeTestFile(t, "two.jpg"), tripA.ID, alice.ID)
	require.NoError(t, err)
	_, err = ImageCreate("Other", "", storeTestFile(t, "other.jpg"), tripB.ID, bob.ID)
	require.NoError(t, err)

	stats, err := ImageStats(alice.ID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, tripA.ID, stats[0].AlbumID)
	assert.Equal(t, int64(2), stats[0].ImageCount)
}
