package handler

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/rs/cors"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/api"
	portalMiddleware "github.com/userportal/userportal/api/middleware"
	"github.com/userportal/userportal/metrics"
)

// NewHandler creates new api handler request uris based on github.com/go-chi/chi
func NewHandler(
	directory userportal.Directory,
	source userportal.MetricSource,
	log userportal.Logger,
	config *api.Config,
	authMetrics *metrics.AuthorizationMetrics,
) http.Handler {
	router := chi.NewRouter()
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(portalMiddleware.RequestLogger(log))
	router.Use(middleware.NoCache)

	router.NotFound(notFoundHandler)
	router.MethodNotAllowed(methodNotAllowedHandler)

	router.Route("/api", func(router chi.Router) {
		router.Use(portalMiddleware.DirectoryContext(directory))
		router.Use(portalMiddleware.MetricSourceContext(source))
		router.Use(portalMiddleware.QueriesContext(config.Queries))
		router.Use(portalMiddleware.AuthorizationMetricsContext(authMetrics))
		router.Use(portalMiddleware.UserContext(config, directory))

		router.Route("/user", user)
		router.Route("/users/{username}", users)
		router.Route("/uids/{uid}", uids)
		router.Route("/accounts/{account}", accounts)
		router.Route("/cloud/projects/{project}", cloudProjects)
		router.Route("/metrics", queries)
	})

	if config.EnableCORS {
		return cors.AllowAll().Handler(router)
	}
	return router
}

func notFoundHandler(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("X-Content-Type-Options", "nosniff")
	render.Render(writer, request, api.ErrNotFound) //nolint
}

func methodNotAllowedHandler(writer http.ResponseWriter, request *http.Request) {
	render.Render(writer, request, api.ErrMethodNotAllowed) //nolint
}
