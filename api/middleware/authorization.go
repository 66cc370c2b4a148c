package middleware

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/api/controller"
)

type permitFunc func(request *http.Request) (bool, error)

// UserOrStaff lets the request through if requester is the user named by {username} URL param or a staff member.
func UserOrStaff() func(next http.Handler) http.Handler {
	return authorize(api.PolicyUserOrStaff, func(request *http.Request) (bool, error) {
		login := GetLogin(request)
		return login != "" && login == chi.URLParam(request, "username"), nil
	})
}

// AccountOrStaff lets the request through if requester is a staff member or
// an active member of the allocation behind {account} URL param.
func AccountOrStaff() func(next http.Handler) http.Handler {
	return authorize(api.PolicyAccountOrStaff, func(request *http.Request) (bool, error) {
		login := GetLogin(request)
		allocation := userportal.AllocationNameFromAccount(chi.URLParam(request, "account"))
		if login == "" || allocation == "" {
			return false, nil
		}
		return controller.IsAllocationMember(request.Context(), GetDirectory(request), allocation, login)
	})
}

// OpenstackProjectOrStaff guards cloud project resources. Project membership is not kept
// in the directory, so only staff members get through.
func OpenstackProjectOrStaff() func(next http.Handler) http.Handler {
	return authorize(api.PolicyOpenstackProjectOrStaff, nil)
}

// StaffOnly lets only staff members through.
func StaffOnly() func(next http.Handler) http.Handler {
	return authorize(api.PolicyStaff, nil)
}

// authorize replies 404 to denied requests, so a forbidden resource is indistinguishable from a missing one.
// Staff is checked first and never reaches permit.
func authorize(policy string, permit permitFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(writer http.ResponseWriter, request *http.Request) {
			if IsStaff(request) {
				next.ServeHTTP(writer, request)
				return
			}

			allowed := false
			if permit != nil {
				var err error
				allowed, err = permit(request)
				if err != nil {
					render.Render(writer, request, api.ErrorInternalServer(err)) //nolint:errcheck
					return
				}
			}

			if !allowed {
				GetAuthorizationMetrics(request).MarkDenied(policy)
				if logger := getLogEntryLogger(request); logger != nil {
					logger.Debug().
						String(userportal.LogFieldNamePolicy, policy).
						Msg("Request denied")
				}
				render.Render(writer, request, api.ErrNotFound) //nolint:errcheck
				return
			}
			next.ServeHTTP(writer, request)
		}
		return http.HandlerFunc(fn)
	}
}
