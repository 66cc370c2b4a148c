package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/api/controller"
	"github.com/userportal/userportal/api/middleware"
)

func users(router chi.Router) {
	router.Use(middleware.UserOrStaff())
	router.Get("/allocations", getUserAllocations)
	router.Get("/allocations/default", getUserDefaultAllocations)
	router.Get("/storage/project", getUserStorage(userportal.StorageTypeProject))
	router.Get("/storage/nearline", getUserStorage(userportal.StorageTypeNearline))
	router.Get("/uid", getUserUID)
}

func uids(router chi.Router) {
	router.Use(middleware.StaffOnly())
	router.Get("/", getUsernameByUID)
}

func getUserAllocations(writer http.ResponseWriter, request *http.Request) {
	username := chi.URLParam(request, "username")
	allocations, errorResponse := controller.GetComputeAllocationsByUser(request.Context(), middleware.GetDirectory(request), username)
	if errorResponse != nil {
		render.Render(writer, request, errorResponse) //nolint
		return
	}

	if err := render.Render(writer, request, allocations); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}

func getUserDefaultAllocations(writer http.ResponseWriter, request *http.Request) {
	username := chi.URLParam(request, "username")
	allocations, errorResponse := controller.GetDefaultAllocationsByUser(request.Context(), middleware.GetDirectory(request), username)
	if errorResponse != nil {
		render.Render(writer, request, errorResponse) //nolint
		return
	}

	if err := render.Render(writer, request, allocations); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}

func getUserStorage(storageType userportal.StorageType) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		username := chi.URLParam(request, "username")
		allocations, errorResponse := controller.GetStorageAllocationsByUser(request.Context(), middleware.GetDirectory(request), username, storageType)
		if errorResponse != nil {
			render.Render(writer, request, errorResponse) //nolint
			return
		}

		if err := render.Render(writer, request, allocations); err != nil {
			render.Render(writer, request, api.ErrorRender(err)) //nolint
		}
	}
}

func getUserUID(writer http.ResponseWriter, request *http.Request) {
	username := chi.URLParam(request, "username")
	uid, errorResponse := controller.GetUIDByUsername(request.Context(), middleware.GetDirectory(request), username)
	if errorResponse != nil {
		render.Render(writer, request, errorResponse) //nolint
		return
	}

	if err := render.Render(writer, request, uid); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}

func getUsernameByUID(writer http.ResponseWriter, request *http.Request) {
	uidStr := chi.URLParam(request, "uid")
	uid, err := strconv.Atoi(uidStr)
	if err != nil || uid < 0 {
		render.Render(writer, request, api.ErrorInvalidRequest(fmt.Errorf("uid must be a non negative integer, got %s", uidStr))) //nolint
		return
	}

	userUID, errorResponse := controller.GetUsernameByUID(request.Context(), middleware.GetDirectory(request), uid)
	if errorResponse != nil {
		render.Render(writer, request, errorResponse) //nolint
		return
	}

	if err := render.Render(writer, request, userUID); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}
