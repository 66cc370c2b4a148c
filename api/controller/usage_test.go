package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/common/model"
	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/mock/gomock"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/api/dto"
	mock_userportal "github.com/userportal/userportal/mock/userportal"
)

var testQueries = api.Queries{
	AccountCPUUsage: "sum(cpu{%s})",
	AccountGPUUsage: "sum(gpu{%s})",
	ProjectUsage:    "sum(vcpu{%s}) by (instance)",
}

func TestGetAccountUsage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	source := mock_userportal.NewMockMetricSource(mockCtrl)
	ctx := context.Background()
	from := time.Unix(1700000000, 0)
	to := from.Add(time.Hour)
	times := []time.Time{from, from.Add(3 * time.Minute)}

	Convey("CPU account", t, func() {
		source.EXPECT().Filter().Return(`cluster="narval"`)
		source.EXPECT().QueryRange(ctx, `sum(cpu{account="def-smith",cluster="narval"})`, from, to, 3*time.Minute).
			Return(times, []float64{1, 2}, nil)

		list, err := GetAccountUsage(ctx, source, testQueries, "def-smith_cpu", from, to, 3*time.Minute)
		So(err, ShouldBeNil)
		So(list, ShouldResemble, &dto.SeriesList{List: []dto.Series{{
			Metric: map[string]string{"account": "def-smith_cpu"},
			X:      times,
			Y:      []float64{1, 2},
		}}})
	})

	Convey("GPU account without filter", t, func() {
		source.EXPECT().Filter().Return("")
		source.EXPECT().QueryRange(ctx, `sum(gpu{account="def-smith"})`, from, to, time.Duration(0)).
			Return(times, []float64{0.5, 0.75}, nil)

		list, err := GetAccountUsage(ctx, source, testQueries, "def-smith_gpu", from, to, 0)
		So(err, ShouldBeNil)
		So(list.List[0].Y, ShouldResemble, []float64{0.5, 0.75})
	})

	Convey("No series", t, func() {
		source.EXPECT().Filter().Return("")
		source.EXPECT().QueryRange(ctx, gomock.Any(), from, to, time.Duration(0)).Return(nil, nil, userportal.ErrNoSeries)

		list, err := GetAccountUsage(ctx, source, testQueries, "def-smith", from, to, 0)
		So(list, ShouldBeNil)
		So(err.HTTPStatusCode, ShouldEqual, http.StatusNotFound)
	})

	Convey("Metrics database unavailable", t, func() {
		queryErr := errors.New("connection refused")
		source.EXPECT().Filter().Return("")
		source.EXPECT().QueryRange(ctx, gomock.Any(), from, to, time.Duration(0)).Return(nil, nil, queryErr)

		_, err := GetAccountUsage(ctx, source, testQueries, "def-smith", from, to, 0)
		So(err, ShouldResemble, api.ErrorRemoteServerUnavailable(queryErr))
	})
}

func TestGetProjectUsage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	source := mock_userportal.NewMockMetricSource(mockCtrl)
	ctx := context.Background()
	from := time.Unix(1700000000, 0)
	to := from.Add(time.Hour)

	Convey("Every instance series is returned", t, func() {
		source.EXPECT().Filter().Return("")
		source.EXPECT().QueryRangeMultiple(ctx, `sum(vcpu{project_name="my-project"}) by (instance)`, from, to, time.Minute).
			Return([]userportal.Series{
				{Metric: map[string]string{"instance": "a"}, Times: []time.Time{from}, Values: []float64{1}},
				{Metric: map[string]string{"instance": "b"}, Times: []time.Time{from}, Values: []float64{2}},
			}, nil)

		list, err := GetProjectUsage(ctx, source, testQueries, "my-project", from, to, time.Minute)
		So(err, ShouldBeNil)
		So(list.List, ShouldHaveLength, 2)
		So(list.List[1], ShouldResemble, dto.Series{Metric: map[string]string{"instance": "b"}, X: []time.Time{from}, Y: []float64{2}})
	})

	Convey("Label values are escaped", t, func() {
		source.EXPECT().Filter().Return("")
		source.EXPECT().QueryRangeMultiple(ctx, `sum(vcpu{project_name="a\"b"}) by (instance)`, from, to, time.Minute).Return(nil, nil)

		list, err := GetProjectUsage(ctx, source, testQueries, `a"b`, from, to, time.Minute)
		So(err, ShouldBeNil)
		So(list.List, ShouldBeEmpty)
	})
}

func TestQueryLast(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	source := mock_userportal.NewMockMetricSource(mockCtrl)
	ctx := context.Background()

	Convey("Raw value is passed through", t, func() {
		vector := model.Vector{&model.Sample{Metric: model.Metric{"__name__": "up"}, Value: 1}}
		source.EXPECT().QueryLast(ctx, "up").Return(vector, nil)

		result, err := QueryLast(ctx, source, "up")
		So(err, ShouldBeNil)
		So(result, ShouldResemble, &dto.QueryResult{ResultType: "vector", Result: vector})
	})

	Convey("Query error", t, func() {
		queryErr := fmt.Errorf("bad_data: parse error")
		source.EXPECT().QueryLast(ctx, "up{").Return(nil, queryErr)

		_, err := QueryLast(ctx, source, "up{")
		So(err, ShouldResemble, api.ErrorRemoteServerUnavailable(queryErr))
	})
}
