package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-graphite/carbonapi/date"

	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/api/middleware"
)

const (
	defaultFrom = "-1d"
	defaultTo   = "now"
)

type timeRange struct {
	from time.Time
	to   time.Time
	step time.Duration
}

// getTimeRange parses from and to set by DateRange middleware and the optional step query param.
// Zero step leaves the choice to the metric source.
func getTimeRange(request *http.Request) (timeRange, *api.ErrorResponse) {
	fromStr := middleware.GetFromStr(request)
	from := date.DateParamToEpoch(fromStr, "UTC", 0, time.UTC)
	if from == 0 {
		return timeRange{}, api.ErrorInvalidRequest(fmt.Errorf("can not parse from: %s", fromStr))
	}

	toStr := middleware.GetToStr(request)
	to := date.DateParamToEpoch(toStr, "UTC", 0, time.UTC)
	if to == 0 {
		return timeRange{}, api.ErrorInvalidRequest(fmt.Errorf("can not parse to: %s", toStr))
	}

	if from > to {
		return timeRange{}, api.ErrorInvalidRequest(fmt.Errorf("from %s is after to %s", fromStr, toStr))
	}

	var step time.Duration
	if stepStr := request.URL.Query().Get("step"); stepStr != "" {
		var err error
		step, err = time.ParseDuration(stepStr)
		if err != nil || step <= 0 {
			return timeRange{}, api.ErrorInvalidRequest(fmt.Errorf("can not parse step: %s", stepStr))
		}
	}

	return timeRange{from: time.Unix(from, 0), to: time.Unix(to, 0), step: step}, nil
}
