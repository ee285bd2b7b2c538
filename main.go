package main

import (
	"strings"

	"gallery/auth"
	"gallery/config"
	"gallery/db"
	"gallery/models"
	"gallery/storage"

	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	db.Init()
	models.Init()
	auth.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := setupRouter()

	logrus.WithField("address", config.BIND_ADDRESS).Info("Starting gallery server")
	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	logrus.Fatalf("Server stopped: %v", err)
}
