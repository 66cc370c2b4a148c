package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/api/controller"
	"github.com/userportal/userportal/api/middleware"
)

func queries(router chi.Router) {
	router.Use(middleware.StaffOnly())
	router.Get("/query", getQuery)
	router.With(middleware.DateRange(defaultFrom, defaultTo)).Get("/query_range", getQueryRange)
}

func getQueryParam(writer http.ResponseWriter, request *http.Request) (string, bool) {
	query := request.URL.Query().Get("query")
	if query == "" {
		render.Render(writer, request, api.ErrorInvalidRequest(fmt.Errorf("query must be set"))) //nolint
		return "", false
	}
	return query, true
}

func getQuery(writer http.ResponseWriter, request *http.Request) {
	query, ok := getQueryParam(writer, request)
	if !ok {
		return
	}

	result, errorResponse := controller.QueryLast(request.Context(), middleware.GetMetricSource(request), query)
	if errorResponse != nil {
		render.Render(writer, request, errorResponse) //nolint
		return
	}

	if err := render.Render(writer, request, result); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}

func getQueryRange(writer http.ResponseWriter, request *http.Request) {
	query, ok := getQueryParam(writer, request)
	if !ok {
		return
	}

	timeRange, errorResponse := getTimeRange(request)
	if errorResponse != nil {
		render.Render(writer, request, errorResponse) //nolint
		return
	}

	series, errorResponse := controller.QueryRange(request.Context(), middleware.GetMetricSource(request), query, timeRange.from, timeRange.to, timeRange.step)
	if errorResponse != nil {
		render.Render(writer, request, errorResponse) //nolint
		return
	}

	if err := render.Render(writer, request, series); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}
