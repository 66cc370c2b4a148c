package prometheus

import (
	"time"

	"github.com/prometheus/common/model"

	"github.com/userportal/userportal"
)

func convertMatrix(matrix model.Matrix) []userportal.Series {
	result := make([]userportal.Series, 0, len(matrix))
	for _, stream := range matrix {
		result = append(result, convertStream(stream))
	}
	return result
}

func convertStream(stream *model.SampleStream) userportal.Series {
	series := userportal.Series{
		Metric: make(map[string]string, len(stream.Metric)),
		Times:  make([]time.Time, 0, len(stream.Values)),
		Values: make([]float64, 0, len(stream.Values)),
	}
	for name, value := range stream.Metric {
		series.Metric[string(name)] = string(value)
	}
	for _, pair := range stream.Values {
		series.Times = append(series.Times, pair.Timestamp.Time())
		series.Values = append(series.Values, float64(pair.Value))
	}
	return series
}
