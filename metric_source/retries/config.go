package retries

import (
	"errors"
	"time"
)

// Config for exponential backoff retries.
type Config struct {
	// InitialInterval between requests.
	InitialInterval time.Duration
	// RandomizationFactor adds jitter, every interval is multiplied by a random value in
	// [1 - RandomizationFactor, 1 + RandomizationFactor].
	RandomizationFactor float64
	// Each new interval is multiplied by Multiplier.
	Multiplier float64
	// MaxInterval caps the interval between requests, jitter is applied on top of it.
	MaxInterval time.Duration
	// MaxElapsedTime caps the time passed since the first try.
	MaxElapsedTime time.Duration
	// MaxRetriesCount is the amount of allowed retries after the first try.
	MaxRetriesCount uint64
}

var (
	errNoInitialInterval                  = errors.New("initial_interval must be specified and can't be 0")
	errNoMaxInterval                      = errors.New("max_interval must be specified and can't be 0")
	errNoMaxElapsedTimeAndMaxRetriesCount = errors.New("at least one of max_elapsed_time, max_retries_count must be specified")
)

// Validate checks that retries Config has all necessary fields.
func (conf Config) Validate() error {
	resErrors := make([]error, 0)

	if conf.InitialInterval == 0 {
		resErrors = append(resErrors, errNoInitialInterval)
	}

	if conf.MaxInterval == 0 {
		resErrors = append(resErrors, errNoMaxInterval)
	}

	if conf.MaxElapsedTime == 0 && conf.MaxRetriesCount == 0 {
		resErrors = append(resErrors, errNoMaxElapsedTimeAndMaxRetriesCount)
	}

	return errors.Join(resErrors...)
}
