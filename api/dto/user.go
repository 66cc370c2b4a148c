package dto

import (
	"net/http"

	"github.com/userportal/userportal/api"
)

// User describes the requester.
type User struct {
	Login string   `json:"login" example:"jsmith"`
	Role  api.Role `json:"role" example:"user"`
}

func (*User) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// UserUID maps username to its numeric uid.
type UserUID struct {
	Username string `json:"username" example:"jsmith"`
	UID      int    `json:"uid" example:"3000123"`
}

func (*UserUID) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
