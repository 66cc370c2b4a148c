package logging

import (
	"github.com/rs/zerolog"

	"github.com/userportal/userportal"
)

// EventBuilder wraps zerolog event. Disabled levels produce a nil event which is silently skipped.
type EventBuilder struct {
	*zerolog.Event
}

func (e EventBuilder) Msg(msg string) {
	if e.Event != nil {
		e.Event.Msg(msg)
	}
}

func (e EventBuilder) String(key, value string) userportal.EventBuilder {
	if e.Event != nil {
		e.Event.Str(key, value)
	}
	return e
}

func (e EventBuilder) Error(err error) userportal.EventBuilder {
	if e.Event != nil && err != nil {
		e.Event.Str("error", err.Error())
	}
	return e
}

func (e EventBuilder) Int(key string, value int) userportal.EventBuilder {
	if e.Event != nil {
		e.Event.Int(key, value)
	}
	return e
}

func (e EventBuilder) Int64(key string, value int64) userportal.EventBuilder {
	if e.Event != nil {
		e.Event.Int64(key, value)
	}
	return e
}

func (e EventBuilder) Interface(key string, value interface{}) userportal.EventBuilder {
	if e.Event != nil {
		e.Event.Interface(key, value)
	}
	return e
}

func (e EventBuilder) Fields(fields map[string]interface{}) userportal.EventBuilder {
	if e.Event != nil {
		e.Event.Fields(fields)
	}
	return e
}
