package handler

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/api/controller"
	"github.com/userportal/userportal/api/middleware"
)

func cloudProjects(router chi.Router) {
	router.Use(middleware.OpenstackProjectOrStaff())
	router.With(middleware.DateRange(defaultFrom, defaultTo)).Get("/usage", getProjectUsage)
}

func getProjectUsage(writer http.ResponseWriter, request *http.Request) {
	project := chi.URLParam(request, "project")
	timeRange, errorResponse := getTimeRange(request)
	if errorResponse != nil {
		render.Render(writer, request, errorResponse) //nolint
		return
	}

	usage, errorResponse := controller.GetProjectUsage(
		request.Context(),
		middleware.GetMetricSource(request),
		middleware.GetQueries(request),
		project,
		timeRange.from,
		timeRange.to,
		timeRange.step,
	)
	if errorResponse != nil {
		render.Render(writer, request, errorResponse) //nolint
		return
	}

	if err := render.Render(writer, request, usage); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}
