package main

import (
	"time"

	"gallery/auth"
	"gallery/config"
	"gallery/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func setupRouter() *gin.Engine {
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	router.MaxMultipartMemory = 16 << 20
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PUT", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/images"})))
	}

	// Uploaded files are served directly off the upload root
	router.Static("/images", config.UPLOAD_DIR)

	rootRouter := &auth.Router{Base: router}
	rootRouter.OptionalGET("/", handlers.ApiInfo)
	router.GET("/health", handlers.Health)

	api := router.Group("/api")
	authRouter := &auth.Router{Base: api}

	api.POST("/auth/register", handlers.Register)
	api.POST("/auth/login", handlers.Login)
	authRouter.GET("/auth/profile", handlers.Profile)

	authRouter.GET("/albums", handlers.AlbumList)
	authRouter.GET("/albums/stats", handlers.AlbumStats)
	authRouter.POST("/albums", handlers.AlbumCreate)
	authRouter.GET("/albums/:id", handlers.AlbumGet)
	authRouter.PUT("/albums/:id", handlers.AlbumUpdate)
	authRouter.DELETE("/albums/:id", handlers.AlbumDelete)

	authRouter.GET("/images/album/:albumId", handlers.ImageListForAlbum)
	authRouter.POST("/images/album/:albumId", handlers.ImageUpload)
	authRouter.POST("/images/album/:albumId/multiple", handlers.ImageUploadMultiple)
	authRouter.GET("/images/stats", handlers.ImageStats)
	authRouter.GET("/images/:id", handlers.ImageGet)
	authRouter.PUT("/images/:id", handlers.ImageUpdate)
	authRouter.DELETE("/images/:id", handlers.ImageDelete)

	return router
}
