package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/api/dto"
)

// GetUser describes the requester.
func GetUser(login string, isStaff bool) *dto.User {
	return &dto.User{
		Login: login,
		Role:  api.GetRole(login, isStaff),
	}
}

// GetUIDByUsername returns uid of the user with given username.
func GetUIDByUsername(ctx context.Context, directory userportal.Directory, username string) (*dto.UserUID, *api.ErrorResponse) {
	user, err := directory.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, userLookupError(err, fmt.Sprintf("user %s does not exist", username))
	}
	return &dto.UserUID{Username: user.Username, UID: user.UID}, nil
}

// GetUsernameByUID returns username of the user with given uid.
func GetUsernameByUID(ctx context.Context, directory userportal.Directory, uid int) (*dto.UserUID, *api.ErrorResponse) {
	user, err := directory.FindUserByUID(ctx, uid)
	if err != nil {
		return nil, userLookupError(err, fmt.Sprintf("user with uid %d does not exist", uid))
	}
	return &dto.UserUID{Username: user.Username, UID: user.UID}, nil
}

func userLookupError(err error, notFoundText string) *api.ErrorResponse {
	if errors.Is(err, userportal.ErrNotFound) {
		return api.ErrorNotFound(notFoundText)
	}
	return api.ErrorInternalServer(err)
}
