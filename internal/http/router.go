package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/harinagireddy-katta/DeKart/internal/http/handlers"
	"github.com/harinagireddy-katta/DeKart/internal/http/middleware"
	"github.com/harinagireddy-katta/DeKart/internal/modules/products"
	"github.com/harinagireddy-katta/DeKart/internal/shared/apperr"
)

// Deps are the collaborators the router hands to its handlers.
type Deps struct {
	Loader   products.Loader
	Gatherer prometheus.Gatherer // nil disables /metrics
}

func NewRouter(l *slog.Logger, d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(l),
		middleware.ErrorHandler(l),
		middleware.Recovery(l),
	)

	about := handlers.NewAboutHandler()
	recent := handlers.NewRecentHandler(d.Loader, l)

	r.GET("/", func(c *gin.Context) { c.Redirect(nethttp.StatusFound, "/recent") })
	r.GET("/about", about.Get)
	r.GET("/recent", recent.List)

	api := r.Group("/api")
	api.GET("/recent", recent.List)

	r.GET("/healthz", func(c *gin.Context) { c.String(nethttp.StatusOK, "ok") })
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	r.NoRoute(func(c *gin.Context) {
		middleware.Fail(c, apperr.NotFoundErr("Page not found."))
	})
	return r
}
