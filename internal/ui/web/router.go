package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	stdhttp "net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/tweetboard/internal/config"
	transporthttp "github.com/vovakirdan/tweetboard/internal/transport/http"
	"github.com/vovakirdan/tweetboard/internal/tweet"
	"github.com/vovakirdan/tweetboard/internal/view"
)

//go:embed templates/index.html static/style.css
var assets embed.FS

// NewServer builds the HTTP server of the web surface.
func NewServer(ctrl *view.Controller, surface *Surface, cfg config.ServerConfig, logger *zerolog.Logger) (*stdhttp.Server, error) {
	router, err := NewRouter(ctrl, surface, logger)
	if err != nil {
		return nil, err
	}
	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}, nil
}

// NewRouter wires the page, form actions and static assets.
func NewRouter(ctrl *view.Controller, surface *Surface, logger *zerolog.Logger) (*gin.Engine, error) {
	tmpl, err := template.New("index.html").
		Funcs(template.FuncMap{"pathEscape": url.PathEscape}).
		ParseFS(assets, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.UseRawPath = true
	router.Use(gin.Recovery(), transporthttp.LoggerMiddleware(logger))
	router.SetHTMLTemplate(tmpl)

	h := &handlers{ctrl: ctrl, surface: surface}
	router.GET("/", h.index)
	router.POST("/compose", h.compose)
	router.POST("/refresh", h.refresh)
	router.POST("/entries/:id/delete", h.remove)
	router.StaticFS("/static", stdhttp.FS(static))
	router.GET("/health", func(c *gin.Context) {
		c.String(stdhttp.StatusOK, "ok")
	})

	return router, nil
}

type handlers struct {
	ctrl    *view.Controller
	surface *Surface
}

// GET /
//
// Every page load refreshes first. A failed fetch still serves the last
// render.
func (h *handlers) index(c *gin.Context) {
	h.ctrl.RefreshList(c.Request.Context())
	c.HTML(stdhttp.StatusOK, "index.html", h.surface.Snapshot())
}

// POST /compose
func (h *handlers) compose(c *gin.Context) {
	text := c.PostForm("message")
	h.surface.SetDraft(text)
	h.ctrl.SubmitMessage(c.Request.Context(), text)
	c.Redirect(stdhttp.StatusSeeOther, "/")
}

// POST /refresh
func (h *handlers) refresh(c *gin.Context) {
	h.ctrl.RefreshList(c.Request.Context())
	c.Redirect(stdhttp.StatusSeeOther, "/")
}

// POST /entries/:id/delete
func (h *handlers) remove(c *gin.Context) {
	entry, ok := h.surface.Lookup(tweet.ID(c.Param("id")))
	if !ok {
		c.String(stdhttp.StatusNotFound, "message not displayed")
		return
	}
	entry.Delete(c.Request.Context())
	c.Redirect(stdhttp.StatusSeeOther, "/")
}
