package models

import (
	"strings"
	"time"
)

// Risk levels, ordered from lowest to highest.
const (
	LevelAcceptable = "Acceptable"
	LevelModerate   = "Modéré"
	LevelImportant  = "Important"
	LevelCritical   = "Critique"
)

// Levels lists the risk levels in display order.
var Levels = []string{LevelAcceptable, LevelModerate, LevelImportant, LevelCritical}

// LevelFor maps a criticity score (severity × probability) to its risk level.
func LevelFor(criticity int) string {
	switch {
	case criticity <= 2:
		return LevelAcceptable
	case criticity <= 6:
		return LevelModerate
	case criticity <= 12:
		return LevelImportant
	default:
		return LevelCritical
	}
}

// Stats is the read-only summary the server computes for a document.
type Stats struct {
	Units             int            `json:"nombre_unites"`
	HazardsTotal      int            `json:"nombre_risques_total"`
	HazardsByLevel    map[string]int `json:"nombre_risques_par_niveau"`
	Measures          int            `json:"nombre_mesures_prevention"`
	MeasuresByStatus  map[string]int `json:"mesures_par_statut,omitempty"`
	HazardsByCategory map[string]int `json:"risques_par_categorie,omitempty"`
}

// Critical returns the number of hazards at the critical level.
func (s *Stats) Critical() int {
	if s == nil {
		return 0
	}
	return s.HazardsByLevel[LevelCritical]
}

// HistoryEntry records one evaluation event of a document.
type HistoryEntry struct {
	ID                int    `json:"id"`
	EvaluatedAt       string `json:"date_evaluation"`
	Version           string `json:"version"`
	ChangeType        string `json:"type_modification"`
	ChangeDescription string `json:"description_modifications"`
	Evaluator         string `json:"evaluateur"`
	HazardsTotal      int    `json:"nombre_risques_total"`
	HazardsCritical   int    `json:"nombre_risques_critiques"`
	Measures          int    `json:"nombre_mesures_prevention"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses the ISO-8601 variants the API emits (with or without
// zone, with or without a time part).
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an API timestamp as dd/mm/yyyy, or returns the input
// unchanged when it cannot be parsed.
func FormatDate(s string) string {
	t, ok := ParseTimestamp(s)
	if !ok {
		return s
	}
	return t.Format("02/01/2006")
}
