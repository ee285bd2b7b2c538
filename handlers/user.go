package handlers

import (
	"net/http"

	"gallery/auth"
	"gallery/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	r := RegisterRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := models.UserCreate(r.Username, r.Email, r.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	token, err := auth.IssueToken(&user)
	if err != nil {
		abortWithError(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{"userId": user.ID, "email": user.Email}).Info("User registered")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"data":    gin.H{"user": user, "token": token},
	})
}

func Login(c *gin.Context) {
	r := LoginRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := models.UserLogin(r.Email, r.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	token, err := auth.IssueToken(&user)
	if err != nil {
		abortWithError(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{"userId": user.ID, "email": user.Email}).Info("User logged in")
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    gin.H{"user": user, "token": token},
	})
}

func Profile(c *gin.Context, user *models.User) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"data":    user,
	})
}
