package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/mock/gomock"

	"github.com/userportal/userportal/api"
	mock_userportal "github.com/userportal/userportal/mock/userportal"
)

type requester struct {
	login   string
	isStaff bool
}

func serveUserContext(config *api.Config, middleware func(http.Handler) http.Handler, header, login string) (int, requester) {
	var got requester
	handler := middleware(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		got = requester{login: GetLogin(request), isStaff: IsStaff(request)}
	}))

	request := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	if login != "" {
		request.Header.Set(header, login)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder.Code, got
}

func TestUserContext(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	directory := mock_userportal.NewMockDirectory(mockCtrl)

	Convey("Without staff group", t, func() {
		config := &api.Config{
			Authorization: api.Authorization{StaffList: map[string]struct{}{"admin": {}}},
		}
		userContext := UserContext(config, directory)

		Convey("Listed staff", func() {
			code, got := serveUserContext(config, userContext, api.DefaultUserHeader, "admin")
			So(code, ShouldEqual, http.StatusOK)
			So(got, ShouldResemble, requester{login: "admin", isStaff: true})
		})

		Convey("Regular user", func() {
			_, got := serveUserContext(config, userContext, api.DefaultUserHeader, "jsmith")
			So(got, ShouldResemble, requester{login: "jsmith", isStaff: false})
		})

		Convey("Anonymous", func() {
			_, got := serveUserContext(config, userContext, api.DefaultUserHeader, "")
			So(got, ShouldResemble, requester{})
		})
	})

	Convey("With staff group", t, func() {
		config := &api.Config{
			UserHeader:    "Remote-User",
			Authorization: api.Authorization{StaffGroup: "cc_staff"},
		}
		userContext := UserContext(config, directory)

		Convey("Group member is staff", func() {
			directory.EXPECT().IsGroupMember(gomock.Any(), "cc_staff", "jsmith").Return(true, nil)
			_, got := serveUserContext(config, userContext, "Remote-User", "jsmith")
			So(got, ShouldResemble, requester{login: "jsmith", isStaff: true})
		})

		Convey("Default header is ignored when another one is configured", func() {
			_, got := serveUserContext(config, userContext, api.DefaultUserHeader, "jsmith")
			So(got, ShouldResemble, requester{})
		})

		Convey("Anonymous does not reach directory", func() {
			_, got := serveUserContext(config, userContext, "Remote-User", "")
			So(got.isStaff, ShouldBeFalse)
		})

		Convey("Directory failure gives internal error", func() {
			directory.EXPECT().IsGroupMember(gomock.Any(), "cc_staff", "jsmith").Return(false, errors.New("timeout"))
			code, _ := serveUserContext(config, userContext, "Remote-User", "jsmith")
			So(code, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestDateRange(t *testing.T) {
	Convey("Date range defaults and overrides", t, func() {
		var from, to string
		handler := DateRange("-1d", "now")(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
			from, to = GetFromStr(request), GetToStr(request)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/usage", nil))
		So(from, ShouldEqual, "-1d")
		So(to, ShouldEqual, "now")

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/usage?from=-7d&to=-1h", nil))
		So(from, ShouldEqual, "-7d")
		So(to, ShouldEqual, "-1h")
	})
}

func TestGetLogin(t *testing.T) {
	Convey("Request without user context is anonymous", t, func() {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		So(GetLogin(request), ShouldBeEmpty)
		So(IsStaff(request), ShouldBeFalse)
	})
}
