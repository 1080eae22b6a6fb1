// Package handlers serves the DUERP pages.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/form"
	"github.com/sirupsen/logrus"

	"github.com/diewo77/go-duerp/httpx"
	"github.com/diewo77/go-duerp/internal/apiclient"
	"github.com/diewo77/go-duerp/internal/logging"
	"github.com/diewo77/go-duerp/internal/middleware"
	"github.com/diewo77/go-duerp/internal/services"
	"github.com/diewo77/go-duerp/view"
)

// confirmValue is posted by the confirmation pages.
const confirmValue = "yes"

// base carries what every page handler needs.
type base struct {
	view    *view.Renderer
	logger  *logrus.Logger
	decoder *form.Decoder
}

func newBase(v *view.Renderer, logger *logrus.Logger) base {
	return base{view: v, logger: logger, decoder: form.NewDecoder()}
}

func (b base) log(r *http.Request) *logrus.Entry {
	return logging.FromContext(r.Context(), b.logger)
}

func (b base) render(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = middleware.ConsumeFlash(w, r)
	}
	if err := b.view.RenderStatus(w, r, status, name, data); err != nil {
		b.log(r).WithError(err).WithField("template", name).Error("render failed")
		http.Error(w, "template render error", http.StatusInternalServerError)
	}
}

// renderError shows the error page with a translated message.
func (b base) renderError(w http.ResponseWriter, r *http.Request, status int, code string) {
	if httpx.WantsJSON(r) {
		httpx.JSONError(w, status, code, nil)
		return
	}
	b.render(w, r, status, "error.html", map[string]any{
		"Status":  status,
		"Message": middleware.T(r, code),
	})
}

// decode fills dst from the posted form. Values that do not convert are left
// at their zero value and reported by validation.
func (b base) decode(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	if err := b.decoder.Decode(dst, r.PostForm); err != nil {
		var derr form.DecodeErrors
		if !errors.As(err, &derr) {
			return err
		}
		b.log(r).WithField("fields", len(derr)).Debug("form decode errors")
	}
	return nil
}

// redirect ends a successful POST (post/redirect/get).
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// pathID parses a positive integer path value.
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func isNotFound(err error) bool {
	return errors.Is(err, apiclient.ErrNotFound) || errors.Is(err, services.ErrNotFound)
}

// loadStatus is the status of a page whose main load failed.
func loadStatus(err error) int {
	if isNotFound(err) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// notFoundOr picks the i18n code matching err.
func notFoundOr(err error, notFound, failed string) string {
	if isNotFound(err) {
		return notFound
	}
	return failed
}

// loadMessage is the inline alert of a page whose main load failed.
func loadMessage(r *http.Request, err error, notFound, failed string) string {
	return middleware.T(r, notFoundOr(err, notFound, failed))
}

// orNotFound turns an empty answer into services.ErrNotFound.
func orNotFound(err error) error {
	if err == nil {
		return services.ErrNotFound
	}
	return err
}

// confirmData feeds confirm.html. code names the "<code>_title" and "<code>"
// messages; the latter receives name.
func confirmData(r *http.Request, code, name, action, cancel string) map[string]any {
	return map[string]any{
		"Title":   middleware.T(r, code+"_title"),
		"Message": fmt.Sprintf(middleware.T(r, code), name),
		"Action":  action,
		"Cancel":  cancel,
	}
}

func formStatus(err error) int {
	if errors.Is(err, services.ErrInvalidForm) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadGateway
}

// NotFoundHandler renders the 404 page for unknown routes.
func NotFoundHandler(v *view.Renderer, logger *logrus.Logger) http.HandlerFunc {
	b := newBase(v, logger)
	return func(w http.ResponseWriter, r *http.Request) {
		b.renderError(w, r, http.StatusNotFound, "page_not_found")
	}
}
