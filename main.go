package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.WithFields(log.Fields{
			"function": "loadConfig",
			"error":    err,
		}).Fatal("Invalid configuration")
	}

	setupLogging(cfg.Debug)
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: newRouter(time.Now, requestLogger(log.StandardLogger())),
	}

	log.Infof("Starting server on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithFields(log.Fields{
			"function": "http.Server.ListenAndServe",
			"addr":     srv.Addr,
			"error":    err,
		}).Fatal("Server failed to start")
	}
}
