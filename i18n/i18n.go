// Package i18n provides the UI message catalogue and language negotiation.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Default is the language used when nothing better can be negotiated.
const Default = "fr"

var supported = []language.Tag{language.French, language.English}

var matcher = language.NewMatcher(supported)

// Supported reports whether lang has its own catalogue.
func Supported(lang string) bool {
	_, ok := catalog[strings.ToLower(lang)]
	return ok
}

// DetectLanguage picks the best supported language for an Accept-Language header value.
func DetectLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}
	tag, _, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	base, _ := tag.Base()
	if !Supported(base.String()) {
		return Default
	}
	return base.String()
}

// T translates code into lang, falling back to French and then to the code itself.
func T(lang, code string) string {
	if m, ok := catalog[strings.ToLower(lang)]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := catalog[Default][code]; ok {
		return s
	}
	return code
}
