package apiclient

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/diewo77/go-duerp/internal/logging"
)

var (
	// ErrNotFound matches API errors carrying a 404 status.
	ErrNotFound = errors.New("apiclient: resource not found")
	// ErrUnsupportedFormat is returned for document formats other than pdf and docx.
	ErrUnsupportedFormat = errors.New(`apiclient: unsupported format, use "pdf" or "docx"`)
)

// APIError describes a failed API call.
// Status is 0 when the request never got an HTTP response.
type APIError struct {
	Op      string
	Status  int
	Message string // server-provided error text, if any
	Payload string // raw response body, truncated
	Err     error
}

func (e *APIError) Error() string {
	switch {
	case e.Status == 0 && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == 404
}

// ErrorMessage returns the server-provided message of err, or fallback when
// the error carries none.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// intercept is applied to every failed call. It logs the server payload, or
// the transport message when there is none, and returns err unchanged.
func (c *Client) intercept(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	entry := logging.FromContext(ctx, c.logger)
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		entry = entry.WithFields(logrus.Fields{"op": apiErr.Op, "status": apiErr.Status})
		if apiErr.Payload != "" {
			entry.WithField("payload", apiErr.Payload).Error("API error")
			return err
		}
	}
	entry.WithError(err).Error("API error")
	return err
}
