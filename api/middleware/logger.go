package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/gofrs/uuid"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/api"
)

const (
	anonymousUser   = "anonymous"
	RequestIDHeader = "X-Request-Id"
)

type apiLoggerEntry struct {
	logger    userportal.Logger
	request   *http.Request
	requestID string
	login     string
	buf       *bytes.Buffer
}

func getLogEntryLogger(request *http.Request) userportal.Logger {
	entry, ok := request.Context().Value(middleware.LogEntryCtxKey).(*apiLoggerEntry)
	if !ok {
		return nil
	}
	return entry.logger
}

func setLogEntryLogin(request *http.Request, login string) {
	entry, ok := request.Context().Value(middleware.LogEntryCtxKey).(*apiLoggerEntry)
	if !ok {
		return
	}
	entry.login = login
	if login != "" {
		entry.logger.String(userportal.LogFieldNameUsername, login)
	}
}

// WithLogEntry sets to context configured logger entry
func WithLogEntry(r *http.Request, entry *apiLoggerEntry) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.LogEntryCtxKey, entry))
}

// RequestLogger is overload method of go-chi.middleware RequestLogger with custom response logging
func RequestLogger(logger userportal.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(writer http.ResponseWriter, request *http.Request) {
			entry := newLogEntry(logger, request)
			writer.Header().Set(RequestIDHeader, entry.requestID)
			wrapWriter := middleware.NewWrapResponseWriter(&responseWriterWithBody{ResponseWriter: writer}, request.ProtoMajor)

			t1 := time.Now()
			defer func() {
				if rvr := recover(); rvr != nil {
					render.Render(wrapWriter, request, api.ErrorInternalServer(fmt.Errorf("internal Server Error"))) //nolint
					entry.writePanic(wrapWriter.Status(), wrapWriter.BytesWritten(), time.Since(t1), rvr, debug.Stack())
				} else {
					entry.write(wrapWriter.Status(), wrapWriter.BytesWritten(), time.Since(t1), wrapWriter.Unwrap())
				}
			}()

			next.ServeHTTP(wrapWriter, WithLogEntry(request, entry))
		}
		return http.HandlerFunc(fn)
	}
}

func getErrorResponseIfItHas(writer http.ResponseWriter) *api.ErrorResponse {
	writerWithBody, ok := writer.(*responseWriterWithBody)
	if !ok {
		return nil
	}
	var errResp = &api.ErrorResponse{}
	json.NewDecoder(&writerWithBody.body).Decode(errResp) //nolint
	return errResp
}

func newLogEntry(logger userportal.Logger, request *http.Request) *apiLoggerEntry {
	entry := &apiLoggerEntry{
		logger:  logger.Clone(),
		request: request,
		buf:     &bytes.Buffer{},
	}

	entry.requestID = request.Header.Get(RequestIDHeader)
	if entry.requestID == "" {
		if id, err := uuid.NewV4(); err == nil {
			entry.requestID = id.String()
		}
	}

	scheme := "http"
	if request.TLS != nil {
		scheme = "https"
	}
	uri := fmt.Sprintf("%s://%s%s", scheme, request.Host, request.RequestURI)

	log := entry.logger
	log.String(userportal.LogFieldNameContext, "http")
	log.String("http.request_id", entry.requestID)
	log.String("http.method", request.Method)
	log.String("http.uri", uri)
	log.String("http.protocol", request.Proto)
	log.String("http.remote_addr", request.RemoteAddr)

	entry.buf.WriteString("\"")
	fmt.Fprintf(entry.buf, "%s ", request.Method)
	fmt.Fprintf(entry.buf, "%s %s\"", uri, request.Proto)
	entry.buf.WriteString(" from ")
	entry.buf.WriteString(request.RemoteAddr)

	return entry
}

func (entry *apiLoggerEntry) writeSummary(status, bytes int, elapsed time.Duration) {
	userName := entry.login
	if userName == "" {
		userName = anonymousUser
	}
	entry.buf.WriteString(" by ")
	entry.buf.WriteString(userName)
	entry.buf.WriteString(" - ")

	fmt.Fprintf(entry.buf, "%03d", status)
	fmt.Fprintf(entry.buf, " %dB", bytes)
	entry.buf.WriteString(" in ")
	fmt.Fprintf(entry.buf, "%s", elapsed)
}

func (entry *apiLoggerEntry) write(status, bytes int, elapsed time.Duration, response http.ResponseWriter) {
	if status == 0 {
		status = http.StatusOK
	}
	log := entry.logger
	log.Int("http.http_status", status)
	log.Int("http.content_length", bytes)
	log.Int64("elapsed_time_ms", elapsed.Milliseconds())

	entry.writeSummary(status, bytes, elapsed)
	if status >= http.StatusInternalServerError {
		errorResponse := getErrorResponseIfItHas(response)
		if errorResponse != nil {
			fmt.Fprintf(entry.buf, " - Error : %s", errorResponse.ErrorText)
		}
		log.Error().Msg(entry.buf.String())
	} else {
		log.Info().Msg(entry.buf.String())
	}
}

func (entry *apiLoggerEntry) writePanic(status, bytes int, elapsed time.Duration, v interface{}, stack []byte) {
	log := entry.logger
	log.Int("http.http_status", status)
	log.Int("http.content_length", bytes)
	log.Int64("elapsed_time_ms", elapsed.Milliseconds())

	entry.writeSummary(status, bytes, elapsed)
	fmt.Fprintf(entry.buf, " - Panic: %+v", v)
	entry.buf.WriteString("\n")
	entry.buf.WriteString(string(stack))
	log.Error().Msg(entry.buf.String())
}

type responseWriterWithBody struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (w *responseWriterWithBody) Write(buf []byte) (int, error) {
	n, err := w.ResponseWriter.Write(buf)
	_, err2 := w.body.Write(buf[:n])
	if err == nil {
		err = err2
	}
	return n, err
}
