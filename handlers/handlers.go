package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gallery/models"
	"gallery/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ApiInfo behaves differently for anonymous and authenticated callers, so it
// sits behind the optional auth variant.
func ApiInfo(c *gin.Context, user *models.User) {
	info := gin.H{
		"message": "Gallery API is running!",
		"status":  "success",
	}
	if user != nil {
		info["user"] = user.Username
	}
	c.JSON(http.StatusOK, info)
}

// pathID parses a numeric path parameter. Garbage is treated the same as a
// missing resource.
func pathID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, models.ErrNotFound
	}
	return id, nil
}

func abortWithError(c *gin.Context, err error) {
	var uploadErr *storage.UploadError
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrDuplicateIdentity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &uploadErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": uploadErr.Reason})
	default:
		logrus.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
