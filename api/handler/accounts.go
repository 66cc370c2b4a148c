package handler

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/api/controller"
	"github.com/userportal/userportal/api/middleware"
)

func accounts(router chi.Router) {
	router.Use(middleware.AccountOrStaff())
	router.Get("/allocation", getAccountAllocation)
	router.Get("/quota", getAccountQuota)
	router.With(middleware.DateRange(defaultFrom, defaultTo)).Get("/usage", getAccountUsage)
}

func getAccountAllocation(writer http.ResponseWriter, request *http.Request) {
	account := chi.URLParam(request, "account")
	allocations, errorResponse := controller.GetComputeAllocationByAccount(request.Context(), middleware.GetDirectory(request), account)
	if errorResponse != nil {
		render.Render(writer, request, errorResponse) //nolint
		return
	}

	if err := render.Render(writer, request, allocations); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}

func getAccountQuota(writer http.ResponseWriter, request *http.Request) {
	account := chi.URLParam(request, "account")
	quota, errorResponse := controller.GetSlurmAccountQuota(request.Context(), middleware.GetDirectory(request), account)
	if errorResponse != nil {
		render.Render(writer, request, errorResponse) //nolint
		return
	}

	if err := render.Render(writer, request, quota); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}

func getAccountUsage(writer http.ResponseWriter, request *http.Request) {
	account := chi.URLParam(request, "account")
	timeRange, errorResponse := getTimeRange(request)
	if errorResponse != nil {
		render.Render(writer, request, errorResponse) //nolint
		return
	}

	usage, errorResponse := controller.GetAccountUsage(
		request.Context(),
		middleware.GetMetricSource(request),
		middleware.GetQueries(request),
		account,
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
