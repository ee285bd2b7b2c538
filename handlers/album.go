package handlers

import (
	"net/http"
	"strings"

	"gallery/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AlbumRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

func AlbumList(c *gin.Context, user *models.User) {
	albums, err := models.AlbumsForUser(user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Albums retrieved successfully",
		"data":    albums,
	})
}

func AlbumGet(c *gin.Context, user *models.User) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}
	album, err := models.AlbumByID(id, user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Album retrieved successfully",
		"data":    album,
	})
}

func AlbumCreate(c *gin.Context, user *models.User) {
	r := AlbumRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Album name is required"})
		return
	}
	album, err := models.AlbumCreate(name, user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{"albumId": album.ID, "userId": user.ID}).Info("Album created")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Album created successfully",
		"data":    album,
	})
}

func AlbumUpdate(c *gin.Context, user *models.User) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}
	r := AlbumRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Album name is required"})
		return
	}
	album, err := models.AlbumSave(id, name, user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Album updated successfully",
		"data":    album,
	})
}

func AlbumDelete(c *gin.Context, user *models.User) {
	id, err := pathID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := models.AlbumDelete(id, user.ID); err != nil {
		abortWithError(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{"albumId": id, "userId": user.ID}).Info("Album deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Album deleted successfully"})
}

func AlbumStats(c *gin.Context, user *models.User) {
	stats, err := models.AlbumStats(user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Album statistics retrieved successfully",
		"data":    stats,
	})
}
