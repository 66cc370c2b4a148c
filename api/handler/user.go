package handler

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/api/controller"
	"github.com/userportal/userportal/api/middleware"
)

func user(router chi.Router) {
	router.Get("/", getUserName)
}

func getUserName(writer http.ResponseWriter, request *http.Request) {
	userLogin := middleware.GetLogin(request)
	isStaff := middleware.IsStaff(request)

	if err := render.Render(writer, request, controller.GetUser(userLogin, isStaff)); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}
