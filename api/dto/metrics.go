package dto

import (
	"net/http"
	"time"

	"github.com/prometheus/common/model"
)

// Series is a time series with paired timestamps and values.
type Series struct {
	Metric map[string]string `json:"metric"`
	X      []time.Time       `json:"x"`
	Y      []float64         `json:"y"`
}

type SeriesList struct {
	List []Series `json:"list"`
}

func (*SeriesList) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// QueryResult is a raw instant query result.
type QueryResult struct {
	ResultType string      `json:"resultType" example:"vector"`
	Result     model.Value `json:"result"`
}

func (*QueryResult) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
