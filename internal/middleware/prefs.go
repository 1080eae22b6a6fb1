package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/diewo77/go-duerp/i18n"
)

type ctxKey string

const ctxLang ctxKey = "pref_lang"

const (
	langCookie  = "lang"
	flashCookie = "flash"
)

// Prefs resolves the UI language (query > cookie > Accept-Language > fallback)
// and stores it in the request context. A language given in the query is
// persisted in a cookie for ~30 days.
func Prefs(fallback string) func(http.Handler) http.Handler {
	if !i18n.Supported(fallback) {
		fallback = i18n.Default
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if c, err := r.Cookie(langCookie); err == nil {
				lang = c.Value
			}
			if ql := r.URL.Query().Get("lang"); i18n.Supported(ql) {
				lang = ql
				http.SetCookie(w, &http.Cookie{Name: langCookie, Value: lang, Path: "/", MaxAge: 86400 * 30, HttpOnly: true})
			}
			if !i18n.Supported(lang) {
				if h := r.Header.Get("Accept-Language"); h != "" {
					lang = i18n.DetectLanguage(h)
				} else {
					lang = fallback
				}
			}
			ctx := context.WithValue(r.Context(), ctxLang, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LangFrom returns the language preference from the request context, or the default.
func LangFrom(r *http.Request) string {
	if v, ok := r.Context().Value(ctxLang).(string); ok && v != "" {
		return v
	}
	return i18n.Default
}

// T translates code into the request language.
func T(r *http.Request, code string) string {
	return i18n.T(LangFrom(r), code)
}

// Flash sets a translated flash message cookie using a translation code (or the literal if missing).
func Flash(w http.ResponseWriter, r *http.Request, code string) {
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: url.QueryEscape(T(r, code)), Path: "/", HttpOnly: true})
}

// ConsumeFlash returns the pending flash message and clears it.
func ConsumeFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}
