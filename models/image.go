package models

import (
	"errors"

	"gallery/db"
	"gallery/storage"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Image has no owner column of its own. Its effective owner is the owning
// album's user, so every lookup joins through albums. AlbumID is set once at
// creation and never reassigned.
type Image struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	AlbumID     uint64 `gorm:"not null;index" json:"albumId"`
	Album       Album  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	URL         string `gorm:"type:varchar(255);not null" json:"url"`
}

type ImageStat struct {
	AlbumID    uint64 `json:"albumId"`
	AlbumName  string `json:"albumName"`
	ImageCount int64  `json:"imageCount"`
}

// ImagesForAlbum lists the album's images, newest first. The album itself is
// resolved under the ownership predicate first.
func ImagesForAlbum(albumID, userID uint64) ([]Image, error) {
	if err := AlbumOwned(albumID, userID); err != nil {
		return nil, err
	}
	images := []Image{}
	err := db.Instance.
		Where("album_id = ?", albumID).
		Order("created_at DESC").
		Find(&images).Error
	return images, err
}

// ImageByID resolves the image through the albums join, so the ownership
// chain is part of the fetch predicate.
func ImageByID(imageID, userID uint64) (Image, error) {
	var image Image
	err := db.Instance.
		Select("images.*").
		Joins("join albums on albums.id = images.album_id").
		Where("images.id = ? AND albums.user_id = ?", imageID, userID).
		First(&image).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Image{}, ErrNotFound
	}
	return image, err
}

// ImageCreate stores the metadata row for an already-stored file. The album
// ownership check runs before anything is written.
func ImageCreate(title, description, url string, albumID, userID uint64) (Image, error) {
	if err := AlbumOwned(albumID, userID); err != nil {
		return Image{}, err
	}
	image := Image{
		Title:       title,
		Description: description,
		URL:         url,
		AlbumID:     albumID,
	}
	return image, db.Instance.Create(&image).Error
}

// ImageSave updates title and description. AlbumID and URL have no update path.
func ImageSave(imageID uint64, title, description string, userID uint64) (Image, error) {
	image, err := ImageByID(imageID, userID)
	if err != nil {
		return Image{}, err
	}
	err = db.Instance.Model(&image).Updates(map[string]interface{}{
		"title":       title,
		"description": description,
	}).Error
	if err != nil {
		return Image{}, err
	}
	image.Title = title
	image.Description = description
	return image, nil
}

// ImageDelete removes the metadata row and then the backing file. The row is
// the source of truth, so a missing file is not an error.
func ImageDelete(imageID, userID uint64) error {
	image, err := ImageByID(imageID, userID)
	if err != nil {
		return err
	}
	if err = db.Instance.Delete(&Image{}, image.ID).Error; err != nil {
		return err
	}
	if err = storage.Remove(image.URL); err != nil {
		logrus.WithError(err).WithField("url", image.URL).Warn("Could not remove image file")
	}
	return nil
}

// ImageStats returns per-album image counts for the user's albums.
func ImageStats(userID uint64) ([]ImageStat, error) {
	stats := []ImageStat{}
	err := db.Instance.Table("images").
		Select("images.album_id, albums.name as album_name, count(images.id) as image_count").
		Joins("join albums on albums.id = images.album_id").
		Where("albums.user_id = ?", userID).
		Group("images.album_id, albums.name").
		Scan(&stats).Error
	return stats, err
}
