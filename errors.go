package userportal

import "errors"

var (
	// ErrNotFound is returned when directory holds no matching record.
	ErrNotFound = errors.New("record not found")
	// ErrMultipleFound is returned when a lookup expected to be unique matched several records.
	ErrMultipleFound = errors.New("multiple records found")
	// ErrNoSeries is returned when a range query returned no time series.
	ErrNoSeries = errors.New("query returned no series")
)
