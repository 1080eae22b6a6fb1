package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/diewo77/go-duerp/internal/logging"
)

// RequestIDHeader carries the request id in and out of the server.
const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusRecorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusRecorder) Unwrap() http.ResponseWriter { return w.ResponseWriter }

func requestID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(RequestIDHeader)); id != "" {
		return id
	}
	return uuid.New().String()
}

// WithLogger attaches a request id and a request-scoped logrus entry to every
// request, and logs its completion.
func WithLogger(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			id := requestID(r)
			w.Header().Set(RequestIDHeader, id)

			entry := logger.WithFields(logrus.Fields{
				"request-id": id,
				"method":     r.Method,
				"path":       r.URL.Path,
			})
			ctx := logging.WithRequestID(r.Context(), id)
			ctx = logging.WithLogger(ctx, entry)

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(ctx))

			done := entry.WithFields(logrus.Fields{
				"status":   rec.Status(),
				"bytes":    rec.bytes,
				"duration": time.Since(start).String(),
			})
			switch {
			case rec.Status() >= http.StatusInternalServerError:
				done.Error("request completed")
			case rec.Status() >= http.StatusBadRequest:
				done.Warn("request completed")
			case strings.HasPrefix(r.URL.Path, "/static/"):
				done.Debug("request completed")
			default:
				done.Info("request completed")
			}
		})
	}
}
