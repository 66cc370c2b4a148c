package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/common/model"
	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/mock/gomock"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/api/dto"
	logging "github.com/userportal/userportal/logging/zerolog_adapter"
	"github.com/userportal/userportal/metrics"
	mock_userportal "github.com/userportal/userportal/mock/userportal"
)

const (
	testUser  = "jsmith"
	testStaff = "admin"
)

var testConfig = &api.Config{
	Authorization: api.Authorization{StaffList: map[string]struct{}{testStaff: {}}},
	Queries: api.Queries{
		AccountCPUUsage: "sum(slurm_job_core_usage{%s})",
		AccountGPUUsage: "sum(slurm_job_gpu_usage{%s})",
		ProjectUsage:    "sum by (instance_name) (openstack_vcpu_usage{%s})",
	},
}

func floatPtr(value float64) *float64 {
	return &value
}

func serve(handler http.Handler, method, login, url string) *http.Response {
	request := httptest.NewRequest(method, url, nil)
	if login != "" {
		request.Header.Set(api.DefaultUserHeader, login)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder.Result()
}

func decode(response *http.Response, value interface{}) {
	defer response.Body.Close()
	content, err := io.ReadAll(response.Body)
	So(err, ShouldBeNil)
	So(json.Unmarshal(content, value), ShouldBeNil)
}

func TestUserRoutes(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	directory := mock_userportal.NewMockDirectory(mockCtrl)
	source := mock_userportal.NewMockMetricSource(mockCtrl)
	logger, _ := logging.GetLogger("api")
	authMetrics := metrics.ConfigureAuthorizationMetrics(metrics.NewDummyRegistry(), api.Policies...)
	handler := NewHandler(directory, source, logger, testConfig, authMetrics)

	userAllocations := userportal.AllocationFilter{Member: testUser, Status: userportal.AllocationStatusActive}

	Convey("Get current user", t, func() {
		response := serve(handler, http.MethodGet, testUser, "/api/user")
		So(response.StatusCode, ShouldEqual, http.StatusOK)

		actual := &dto.User{}
		decode(response, actual)
		So(actual, ShouldResemble, &dto.User{Login: testUser, Role: api.RoleUser})
	})

	Convey("Get current staff user", t, func() {
		actual := &dto.User{}
		decode(serve(handler, http.MethodGet, testStaff, "/api/user"), actual)
		So(actual.Role, ShouldEqual, api.RoleStaff)
	})

	Convey("Get own allocations", t, func() {
		directory.EXPECT().FindAllocations(gomock.Any(), userAllocations).Return([]userportal.AllocationRecord{
			{Name: "def-jsmith", Status: userportal.AllocationStatusActive, CPU: floatPtr(50)},
			{Name: "rrg-lab", Status: userportal.AllocationStatusActive, GPU: floatPtr(4)},
		}, nil)

		response := serve(handler, http.MethodGet, testUser, "/api/users/jsmith/allocations")
		So(response.StatusCode, ShouldEqual, http.StatusOK)

		actual := &dto.ComputeAllocationList{}
		decode(response, actual)
		So(actual, ShouldResemble, &dto.ComputeAllocationList{List: []userportal.ComputeAllocation{
			{Name: "def-jsmith", CPU: floatPtr(50)},
			{Name: "rrg-lab", GPU: floatPtr(4)},
		}})
	})

	Convey("Allocations of another user are hidden", t, func() {
		response := serve(handler, http.MethodGet, "jdoe", "/api/users/jsmith/allocations")
		So(response.StatusCode, ShouldEqual, http.StatusNotFound)
	})

	Convey("Staff sees default allocations of any user", t, func() {
		directory.EXPECT().FindAllocations(gomock.Any(), userAllocations).Return([]userportal.AllocationRecord{
			{Name: "def-jsmith"},
			{Name: "rrg-lab"},
		}, nil)

		actual := &dto.DefaultAllocationList{}
		decode(serve(handler, http.MethodGet, testStaff, "/api/users/jsmith/allocations/default"), actual)
		So(actual.List, ShouldResemble, []string{"def-jsmith"})
	})

	Convey("Get project storage", t, func() {
		projectStorage := int64(1 << 40)
		directory.EXPECT().FindAllocations(gomock.Any(), userAllocations).Return([]userportal.AllocationRecord{
			{Name: "def-jsmith"},
			{Name: "rrg-lab", ProjectStorage: &projectStorage},
		}, nil)

		actual := &dto.StorageAllocationList{}
		decode(serve(handler, http.MethodGet, testUser, "/api/users/jsmith/storage/project"), actual)
		So(actual.List, ShouldHaveLength, 1)
		So(actual.List[0].Name, ShouldEqual, "rrg-lab")
		So(actual.List[0].QuotaBytes, ShouldEqual, projectStorage)
	})

	Convey("Get uid", t, func() {
		directory.EXPECT().FindUserByUsername(gomock.Any(), testUser).Return(userportal.DirectoryUser{Username: testUser, UID: 3000123}, nil)

		actual := &dto.UserUID{}
		decode(serve(handler, http.MethodGet, testUser, "/api/users/jsmith/uid"), actual)
		So(actual, ShouldResemble, &dto.UserUID{Username: testUser, UID: 3000123})
	})

	Convey("Directory failure is internal error", t, func() {
		directory.EXPECT().FindUserByUsername(gomock.Any(), testUser).Return(userportal.DirectoryUser{}, errors.New("timeout"))

		response := serve(handler, http.MethodGet, testUser, "/api/users/jsmith/uid")
		So(response.StatusCode, ShouldEqual, http.StatusInternalServerError)
	})
}

func TestUIDRoutes(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	directory := mock_userportal.NewMockDirectory(mockCtrl)
	source := mock_userportal.NewMockMetricSource(mockCtrl)
	logger, _ := logging.GetLogger("api")
	handler := NewHandler(directory, source, logger, testConfig, nil)

	Convey("Staff resolves uid to username", t, func() {
		directory.EXPECT().FindUserByUID(gomock.Any(), 3000123).Return(userportal.DirectoryUser{Username: testUser, UID: 3000123}, nil)

		actual := &dto.UserUID{}
		decode(serve(handler, http.MethodGet, testStaff, "/api/uids/3000123"), actual)
		So(actual.Username, ShouldEqual, testUser)
	})

	Convey("Unknown uid", t, func() {
		directory.EXPECT().FindUserByUID(gomock.Any(), 42).Return(userportal.DirectoryUser{}, userportal.ErrNotFound)

		response := serve(handler, http.MethodGet, testStaff, "/api/uids/42")
		So(response.StatusCode, ShouldEqual, http.StatusNotFound)
	})

	Convey("Invalid uid", t, func() {
		response := serve(handler, http.MethodGet, testStaff, "/api/uids/jsmith")
		So(response.StatusCode, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Regular user can not resolve uids", t, func() {
		response := serve(handler, http.MethodGet, testUser, "/api/uids/3000123")
		So(response.StatusCode, ShouldEqual, http.StatusNotFound)
	})
}

func TestAccountRoutes(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	directory := mock_userportal.NewMockDirectory(mockCtrl)
	source := mock_userportal.NewMockMetricSource(mockCtrl)
	logger, _ := logging.GetLogger("api")
	handler := NewHandler(directory, source, logger, testConfig, nil)

	membership := userportal.AllocationFilter{Name: "def-jsmith", Member: testUser, Status: userportal.AllocationStatusActive}
	allocation := userportal.AllocationFilter{Name: "def-jsmith", Status: userportal.AllocationStatusActive}
	records := []userportal.AllocationRecord{
		{Name: "def-jsmith", Status: userportal.AllocationStatusActive, Members: []string{testUser}, CPU: floatPtr(50)},
	}

	Convey("Member gets cpu quota", t, func() {
		directory.EXPECT().FindAllocations(gomock.Any(), membership).Return(records, nil)
		directory.EXPECT().FindAllocations(gomock.Any(), allocation).Return(records, nil)

		actual := &dto.SlurmAccountQuota{}
		decode(serve(handler, http.MethodGet, testUser, "/api/accounts/def-jsmith_cpu/quota"), actual)
		So(actual, ShouldResemble, &dto.SlurmAccountQuota{
			Account:    "def-jsmith_cpu",
			Allocation: "def-jsmith",
			Resource:   "cpu",
			Quota:      50,
		})
	})

	Convey("Missing gpu quota is not found", t, func() {
		directory.EXPECT().FindAllocations(gomock.Any(), allocation).Return(records, nil)

		response := serve(handler, http.MethodGet, testStaff, "/api/accounts/def-jsmith_gpu/quota")
		So(response.StatusCode, ShouldEqual, http.StatusNotFound)
	})

	Convey("Non member gets not found", t, func() {
		directory.EXPECT().FindAllocations(gomock.Any(), membership).Return(nil, nil)

		response := serve(handler, http.MethodGet, testUser, "/api/accounts/def-jsmith_cpu/allocation")
		So(response.StatusCode, ShouldEqual, http.StatusNotFound)
	})

	Convey("Account usage", t, func() {
		start := time.Unix(1700000000, 0)
		source.EXPECT().Filter().Return(`cluster="narval"`)
		source.EXPECT().QueryRange(gomock.Any(), `sum(slurm_job_gpu_usage{account="def-jsmith",cluster="narval"})`, gomock.Any(), gomock.Any(), 5*time.Minute).
			Return([]time.Time{start}, []float64{1.5}, nil)

		response := serve(handler, http.MethodGet, testStaff, "/api/accounts/def-jsmith_gpu/usage?from=-2h&step=5m")
		So(response.StatusCode, ShouldEqual, http.StatusOK)

		actual := &dto.SeriesList{}
		decode(response, actual)
		So(actual.List, ShouldHaveLength, 1)
		So(actual.List[0].Y, ShouldResemble, []float64{1.5})
	})

	Convey("Account usage with invalid range", t, func() {
		response := serve(handler, http.MethodGet, testStaff, "/api/accounts/def-jsmith_gpu/usage?from=garbage")
		So(response.StatusCode, ShouldEqual, http.StatusBadRequest)

		response = serve(handler, http.MethodGet, testStaff, "/api/accounts/def-jsmith_gpu/usage?step=fast")
		So(response.StatusCode, ShouldEqual, http.StatusBadRequest)
	})
}

func TestMetricRoutes(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	directory := mock_userportal.NewMockDirectory(mockCtrl)
	source := mock_userportal.NewMockMetricSource(mockCtrl)
	logger, _ := logging.GetLogger("api")
	handler := NewHandler(directory, source, logger, testConfig, nil)

	Convey("Cloud project usage is staff only", t, func() {
		response := serve(handler, http.MethodGet, testUser, "/api/cloud/projects/rrg-lab/usage")
		So(response.StatusCode, ShouldEqual, http.StatusNotFound)
	})

	Convey("Cloud project usage", t, func() {
		source.EXPECT().Filter().Return("")
		source.EXPECT().QueryRangeMultiple(gomock.Any(), `sum by (instance_name) (openstack_vcpu_usage{project_name="rrg-lab"})`, gomock.Any(), gomock.Any(), time.Duration(0)).
			Return([]userportal.Series{
				{Metric: map[string]string{"instance_name": "vm1"}, Values: []float64{2}},
				{Metric: map[string]string{"instance_name": "vm2"}, Values: []float64{4}},
			}, nil)

		actual := &dto.SeriesList{}
		decode(serve(handler, http.MethodGet, testStaff, "/api/cloud/projects/rrg-lab/usage"), actual)
		So(actual.List, ShouldHaveLength, 2)
	})

	Convey("Instant query", t, func() {
		source.EXPECT().QueryLast(gomock.Any(), "up").Return(model.Vector{}, nil)

		response := serve(handler, http.MethodGet, testStaff, "/api/metrics/query?query=up")
		So(response.StatusCode, ShouldEqual, http.StatusOK)
	})

	Convey("Query is required", t, func() {
		response := serve(handler, http.MethodGet, testStaff, "/api/metrics/query_range")
		So(response.StatusCode, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Unavailable metrics database", t, func() {
		source.EXPECT().QueryRangeMultiple(gomock.Any(), "up", gomock.Any(), gomock.Any(), time.Duration(0)).
			Return(nil, errors.New("connection refused"))

		response := serve(handler, http.MethodGet, testStaff, "/api/metrics/query_range?query=up")
		So(response.StatusCode, ShouldEqual, http.StatusServiceUnavailable)
	})
}

func TestRouter(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	directory := mock_userportal.NewMockDirectory(mockCtrl)
	source := mock_userportal.NewMockMetricSource(mockCtrl)
	logger, _ := logging.GetLogger("api")

	Convey("Unknown route", t, func() {
		handler := NewHandler(directory, source, logger, testConfig, nil)
		response := serve(handler, http.MethodGet, testUser, "/api/unknown")
		So(response.StatusCode, ShouldEqual, http.StatusNotFound)
	})

	Convey("Unsupported method", t, func() {
		handler := NewHandler(directory, source, logger, testConfig, nil)
		response := serve(handler, http.MethodPost, testUser, "/api/user")
		So(response.StatusCode, ShouldEqual, http.StatusMethodNotAllowed)
	})

	Convey("CORS preflight", t, func() {
		config := *testConfig
		config.EnableCORS = true
		handler := NewHandler(directory, source, logger, &config, nil)

		request := httptest.NewRequest(http.MethodOptions, "/api/user", nil)
		request.Header.Set("Origin", "https://portal.example.org")
		request.Header.Set("Access-Control-Request-Method", http.MethodGet)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		So(recorder.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
	})
}
