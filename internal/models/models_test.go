package models

import (
	"encoding/json"
	"testing"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		criticity int
		want      string
	}{
		{1, LevelAcceptable},
		{2, LevelAcceptable},
		{3, LevelModerate},
		{6, LevelModerate},
		{8, LevelImportant},
		{12, LevelImportant},
		{16, LevelCritical},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.criticity); got != tt.want {
			t.Errorf("LevelFor(%d) = %q, want %q", tt.criticity, got, tt.want)
		}
	}
}

func TestHazard_DisplayLevel(t *testing.T) {
	h := &Hazard{Level: LevelImportant, Severity: 1, Probability: 1}
	if got := h.DisplayLevel(); got != LevelImportant {
		t.Errorf("DisplayLevel() = %q, want server level", got)
	}
	h = &Hazard{Severity: 4, Probability: 4}
	if got := h.DisplayLevel(); got != LevelCritical {
		t.Errorf("DisplayLevel() = %q, want %q", got, LevelCritical)
	}
	h = &Hazard{}
	if got := h.DisplayLevel(); got != "" {
		t.Errorf("DisplayLevel() = %q, want empty", got)
	}
}

func TestDocument_HeadcountNull(t *testing.T) {
	b, err := json.Marshal(Document{CompanyName: "ACME"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	v, ok := m["effectif"]
	if !ok || v != nil {
		t.Errorf("effectif = %v (present=%v), want explicit null", v, ok)
	}
}

func TestDocument_HazardCount(t *testing.T) {
	d := &Document{Units: []Unit{
		{Hazards: []Hazard{{ID: 1}, {ID: 2}}},
		{},
		{Hazards: []Hazard{{ID: 3}}},
	}}
	if got := d.HazardCount(); got != 3 {
		t.Errorf("HazardCount() = %d, want 3", got)
	}
}

func TestStats_CriticalNil(t *testing.T) {
	var s *Stats
	if got := s.Critical(); got != 0 {
		t.Errorf("Critical() on nil = %d, want 0", got)
	}
	s = &Stats{HazardsByLevel: map[string]int{LevelCritical: 4}}
	if got := s.Critical(); got != 4 {
		t.Errorf("Critical() = %d, want 4", got)
	}
}

func TestFormatDate(t *testing.T) {
	tests := map[string]string{
		"2024-03-05T10:11:12.123456": "05/03/2024",
		"2024-03-05T10:11:12":        "05/03/2024",
		"2024-03-05":                 "05/03/2024",
		"2024-03-05T10:11:12Z":       "05/03/2024",
		"":                           "",
		"n/a":                        "n/a",
	}
	for in, want := range tests {
		if got := FormatDate(in); got != want {
			t.Errorf("FormatDate(%q) = %q, want %q", in, got, want)
		}
	}
}
