package bootstrap

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/tech0-step3/portal-web/internal/api/http"
	"github.com/tech0-step3/portal-web/internal/api/http/middleware"
	"github.com/tech0-step3/portal-web/internal/backend"
	"github.com/tech0-step3/portal-web/internal/metrics"
	projectshttp "github.com/tech0-step3/portal-web/internal/projects/http"
	usershttp "github.com/tech0-step3/portal-web/internal/users/http"
	"github.com/tech0-step3/portal-web/internal/web"
)

// RouterDeps carries what the router needs. Without a Backend the health
// check reports "disabled" and the pages are not mounted.
type RouterDeps struct {
	ServiceName string
	Version     string
	Backend     *backend.Client
	Metrics     *metrics.Collector
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(dep.Metrics))

	var pinger httpapi.Pinger
	if dep.Backend != nil {
		pinger = dep.Backend
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, pinger)
	healthHandler.RegisterRoutes(r)
	if dep.Metrics != nil {
		r.GET("/metrics", gin.WrapH(dep.Metrics.Handler()))
	}

	web.MustInstall(r)

	pages := r.Group("")
	pages.Use(middleware.NoStore())

	pages.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/projects")
	})
	if dep.Backend != nil {
		projectshttp.New(dep.Backend).Register(pages.Group("/projects"))
		usershttp.New(dep.Backend).Register(pages.Group("/users"))
	}

	r.NoRoute(middleware.NoStore(), func(c *gin.Context) {
		web.NotFound(c, "")
	})

	return r
}
