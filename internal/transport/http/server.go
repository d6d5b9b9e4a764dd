package http

import (
	"fmt"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/tweetboard/internal/config"
	"github.com/vovakirdan/tweetboard/internal/store"
)

// NewServer builds the development message service.
func NewServer(st store.Store, cfg config.ServerConfig, logger *zerolog.Logger) *stdhttp.Server {
	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(st, logger),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

// NewRouter registers the /tweets and /tweet routes.
func NewRouter(st store.Store, logger *zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger), CORSMiddleware())

	router.GET("/health", healthHandler)

	tweets := NewTweetHandlers(st, logger)
	router.GET("/tweets", tweets.List)
	router.POST("/tweet", tweets.Create)
	router.DELETE("/tweet/:id", tweets.Delete)

	router.NoRoute(func(c *gin.Context) {
		c.String(stdhttp.StatusNotFound, "404 - Not Found")
	})

	return router
}

func healthHandler(c *gin.Context) {
	_, _ = fmt.Fprint(c.Writer, "ok")
}
