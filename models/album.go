package models

import (
	"errors"

	"gallery/db"
	"gallery/storage"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Album is an owned collection of images. UserID is set once at creation and
// no operation here reassigns it.
type Album struct {
	ID        uint64  `gorm:"primaryKey" json:"id"`
	UserID    uint64  `gorm:"not null;index:user_album_created,priority:1" json:"userId"`
	User      User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt int64   `gorm:"index:user_album_created,priority:2" json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Images    []Image `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images"`
}

type AlbumStat struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	ImageCount int64  `json:"imageCount"`
}

// AlbumsForUser returns all albums owned by the user, newest first, with a
// lightweight projection of their images.
func AlbumsForUser(userID uint64) ([]Album, error) {
	albums := []Album{}
	err := db.Instance.
		Preload("Images", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "title", "url", "album_id")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&albums).Error
	return albums, err
}

// AlbumByID looks the album up under the ownership predicate. A non-owned
// album is indistinguishable from a missing one.
func AlbumByID(albumID, userID uint64) (Album, error) {
	var album Album
	err := db.Instance.
		Preload("Images", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC")
		}).
		First(&album, "id = ? AND user_id = ?", albumID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Album{}, ErrNotFound
	}
	return album, err
}

// AlbumOwned reports whether the album exists and belongs to the user,
// without loading it.
func AlbumOwned(albumID, userID uint64) error {
	var count int64
	err := db.Instance.Model(&Album{}).
		Where("id = ? AND user_id = ?", albumID, userID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func AlbumCreate(name string, userID uint64) (Album, error) {
	album := Album{
		Name:   name,
		UserID: userID,
		Images: []Image{},
	}
	return album, db.Instance.Create(&album).Error
}

// AlbumSave renames the album. Name is the only mutable column.
func AlbumSave(albumID uint64, name string, userID uint64) (Album, error) {
	album, err := AlbumByID(albumID, userID)
	if err != nil {
		return Album{}, err
	}
	if err = db.Instance.Model(&album).Update("name", name).Error; err != nil {
		return Album{}, err
	}
	album.Name = name
	return album, nil
}

// AlbumDelete removes the album, its image rows and their backing files.
// Rows go first in a single transaction; files are cleaned up afterwards, so
// a failed unlink can orphan a file but never a metadata row.
func AlbumDelete(albumID, userID uint64) error {
	var album Album
	err := db.Instance.Preload("Images").
		First(&album, "id = ? AND user_id = ?", albumID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Image{}, "album_id = ?", album.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&Album{}, "id = ? AND user_id = ?", album.ID, userID).Error
	})
	if err != nil {
		return err
	}
	for _, image := range album.Images {
		if err := storage.Remove(image.URL); err != nil {
			logrus.WithError(err).WithField("url", image.URL).Warn("Could not remove image file")
		}
	}
	return nil
}

// AlbumStats returns the user's albums with their image counts, newest first.
func AlbumStats(userID uint64) ([]AlbumStat, error) {
	stats := []AlbumStat{}
	err := db.Instance.Table("albums").
		Select("albums.id, albums.name, count(images.id) as image_count").
		Joins("left join images on images.album_id = albums.id").
		Where("albums.user_id = ?", userID).
		Group("albums.id, albums.name, albums.created_at").
		Order("albums.created_at DESC").
		Scan(&stats).Error
	return stats, err
}
