package services

import (
	"strconv"
	"strings"
)

func itoa(n int) string { return strconv.Itoa(n) }

func strconvFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// dateOnly keeps the yyyy-mm-dd part of an ISO timestamp for date inputs.
func dateOnly(s string) string {
	if i := strings.IndexByte(s, 'T'); i > 0 {
		return s[:i]
	}
	return s
}
