package services

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/diewo77/go-duerp/internal/logging"
	"github.com/diewo77/go-duerp/internal/models"
	"github.com/diewo77/go-duerp/internal/viewstate"
)

// DashboardMetrics are the headline counts of the dashboard.
type DashboardMetrics struct {
	Total           int
	Validated       int
	CriticalHazards int
	Conformity      int // percent of validated documents
}

// Dashboard is the data behind the landing page.
type Dashboard struct {
	Metrics DashboardMetrics
	Recent  []models.Document
}

const recentDocuments = 5

// ComputeMetrics derives the dashboard counts from the document list.
// Critical hazards are counted from the hazards nested in each document.
func ComputeMetrics(docs []models.Document) DashboardMetrics {
	m := DashboardMetrics{Total: len(docs)}
	for i := range docs {
		if docs[i].IsValidated() {
			m.Validated++
		}
		for _, u := range docs[i].Units {
			for j := range u.Hazards {
				if u.Hazards[j].DisplayLevel() == models.LevelCritical {
					m.CriticalHazards++
				}
			}
		}
	}
	if m.Total > 0 {
		m.Conformity = int(math.Round(float64(m.Validated) / float64(m.Total) * 100))
	}
	return m
}

type DashboardService struct {
	api    DocumentAPI
	logger *logrus.Logger
}

func NewDashboardService(api DocumentAPI, logger *logrus.Logger) *DashboardService {
	return &DashboardService{api: api, logger: logger}
}

// Load fetches the document list and derives the dashboard.
func (s *DashboardService) Load(ctx context.Context) viewstate.State[Dashboard] {
	docs, err := s.api.ListDocuments(ctx)
	if err != nil {
		logging.FromContext(ctx, s.logger).WithError(err).Warn("dashboard: list documents failed")
		return viewstate.NewFailed[Dashboard](err)
	}
	d := Dashboard{Metrics: ComputeMetrics(docs)}
	n := min(len(docs), recentDocuments)
	d.Recent = make([]models.Document, 0, n)
	for i := len(docs) - 1; i >= len(docs)-n; i-- {
		d.Recent = append(d.Recent, docs[i])
	}
	return viewstate.NewReady(d)
}
