package handlers

import (
	"net/http"
	"strings"

	"gallery/models"
	"gallery/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxBatchUpload = 10

type ImageUpdateRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

func ImageListForAlbum(c *gin.Context, user *models.User) {
	albumID, err := pathID(c, "albumId")
	if err != nil {
		abortWithError(c, err)
		return
	}
	images, err := models.ImagesForAlbum(albumID, user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Images retrieved successfully",
		"data":    images,
	})
}

func ImageGet(c *gin.Context, user *models.User) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}
	image, err := models.ImageByID(id, user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Image retrieved successfully",
		"data":    image,
	})
}

// ImageUpload accepts a single multipart upload. Album ownership is resolved
// before the file touches the disk, so a rejected caller never leaves an
// orphaned file behind.
func ImageUpload(c *gin.Context, user *models.User) {
	albumID, err := pathID(c, "albumId")
	if err != nil {
		abortWithError(c, err)
		return
	}
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image title is required"})
		return
	}
	description := strings.TrimSpace(c.PostForm("description"))
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if err := models.AlbumOwned(albumID, user.ID); err != nil {
		abortWithError(c, err)
		return
	}
	stored, err := storage.Accept(file)
	if err != nil {
		logrus.WithError(err).WithField("userId", user.ID).Warn("Upload rejected")
		abortWithError(c, err)
		return
	}
	image, err := models.ImageCreate(title, description, stored.URL, albumID, user.ID)
	if err != nil {
		// no metadata row, so the file must not stay either
		_ = storage.Remove(stored.URL)
		abortWithError(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{"imageId": image.ID, "albumId": albumID, "userId": user.ID}).Info("Image uploaded")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Image uploaded successfully",
		"data":    image,
	})
}

// ImageUploadMultiple accepts up to 10 files in one request. All files are
// validated before any is written; titles default to the original filename
// up to the first dot.
func ImageUploadMultiple(c *gin.Context, user *models.User) {
	albumID, err := pathID(c, "albumId")
	if err != nil {
		abortWithError(c, err)
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}
	if len(files) > maxBatchUpload {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Too many files in one upload"})
		return
	}
	if err := models.AlbumOwned(albumID, user.ID); err != nil {
		abortWithError(c, err)
		return
	}
	storedFiles, err := storage.AcceptMany(files)
	if err != nil {
		logrus.WithError(err).WithField("userId", user.ID).Warn("Batch upload rejected")
		abortWithError(c, err)
		return
	}
	images := []models.Image{}
	for i := range storedFiles {
		image, err := models.ImageCreate(storage.DefaultTitle(files[i].Filename), "", storedFiles[i].URL, albumID, user.ID)
		if err != nil {
			// no rows exist for this file or the rest of the batch, so none
			// of those files may stay either
			for _, stored := range storedFiles[i:] {
				_ = storage.Remove(stored.URL)
			}
			abortWithError(c, err)
			return
		}
		images = append(images, image)
	}
	logrus.WithFields(logrus.Fields{"count": len(images), "albumId": albumID, "userId": user.ID}).Info("Images uploaded")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Images uploaded successfully",
		"data":    images,
	})
}

func ImageUpdate(c *gin.Context, user *models.User) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}
	r := ImageUpdateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	title := strings.TrimSpace(r.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image title is required"})
		return
	}
	image, err := models.ImageSave(id, title, strings.TrimSpace(r.Description), user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Image updated successfully",
		"data":    image,
	})
}

func ImageDelete(c *gin.Context, user *models.User) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := models.ImageDelete(id, user.ID); err != nil {
		abortWithError(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{"imageId": id, "userId": user.ID}).Info("Image deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}

func ImageStats(c *gin.Context, user *models.User) {
	stats, err := models.ImageStats(user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Image statistics retrieved successfully",
		"data":    stats,
	})
}
