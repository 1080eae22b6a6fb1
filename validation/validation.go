// Package validation collects field violations for HTML forms.
package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Violations maps a form field name to an i18n error code.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Has reports whether field has a violation.
func (v Violations) Has(field string) bool {
	_, ok := v[field]
	return ok
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates s against its `validate` tags and reports violations keyed by `form` tag.
func Struct(s any) Violations {
	v := make(Violations)
	err := engine().Struct(s)
	if err == nil {
		return v
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		v["_"] = "invalid"
		return v
	}
	for _, fe := range verrs {
		v[fe.Field()] = codeFor(fe.Tag())
	}
	return v
}

func codeFor(tag string) string {
	switch tag {
	case "required", "required_if", "required_with":
		return "required"
	case "min", "max", "gte", "lte", "gt", "lt":
		return "out_of_range"
	case "oneof":
		return "invalid_choice"
	case "len", "numeric", "datetime":
		return "invalid_format"
	default:
		return "invalid"
	}
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func RangeInt(field string, val, minVal, maxVal int, v Violations) {
	if val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}

// OptionalInt parses a form value into an integer, or nil when blank.
// A non-numeric value records a violation and yields nil.
func OptionalInt(field, value string, v Violations) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		v[field] = "must_be_number"
		return nil
	}
	return &n
}

// OptionalFloat parses a form value into a float, or nil when blank.
func OptionalFloat(field, value string, v Violations) *float64 {
	value = strings.TrimSpace(strings.ReplaceAll(value, ",", "."))
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		v[field] = "must_be_number"
		return nil
	}
	if f < 0 {
		v[field] = "must_be_positive"
		return nil
	}
	return &f
}
