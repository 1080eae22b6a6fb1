package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/diewo77/go-duerp/internal/logging"
	"github.com/diewo77/go-duerp/internal/models"
	"github.com/diewo77/go-duerp/internal/viewstate"
)

// HazardDetail is the data behind the hazard page.
// MeasureTypes is nil when the prevention hierarchy could not be loaded.
type HazardDetail struct {
	Hazard       *models.Hazard
	Categories   []models.HazardCategory
	MeasureTypes []models.MeasureType
}

type HazardService struct {
	hazards  HazardAPI
	measures MeasureAPI
	logger   *logrus.Logger
}

func NewHazardService(hazards HazardAPI, measures MeasureAPI, logger *logrus.Logger) *HazardService {
	return &HazardService{hazards: hazards, measures: measures, logger: logger}
}

// Load fetches the hazard and both catalogues concurrently.
func (s *HazardService) Load(ctx context.Context, id int) viewstate.State[*HazardDetail] {
	var (
		detail    HazardDetail
		hazardErr error
		g         errgroup.Group
	)
	log := logging.FromContext(ctx, s.logger)
	g.Go(func() error {
		detail.Hazard, hazardErr = s.hazards.GetHazard(ctx, id)
		return nil
	})
	g.Go(func() error {
		types, err := s.measures.MeasureTypes(ctx)
		if err != nil {
			log.WithError(err).Warn("load measure types failed")
			return nil
		}
		detail.MeasureTypes = types
		return nil
	})
	g.Go(func() error {
		cats, err := s.hazards.HazardCategories(ctx)
		if err != nil {
			log.WithError(err).Warn("load hazard categories failed")
			return nil
		}
		detail.Categories = cats
		return nil
	})
	_ = g.Wait()
	if hazardErr != nil {
		return viewstate.NewFailed[*HazardDetail](hazardErr)
	}
	if detail.Hazard == nil {
		return viewstate.NewFailed[*HazardDetail](ErrNotFound)
	}
	return viewstate.NewReady(&detail)
}

func (s *HazardService) Update(ctx context.Context, id int, h *models.Hazard) error {
	_, err := s.hazards.UpdateHazard(ctx, id, h)
	return err
}

// RemoveMeasure deletes a measure once confirmed, then runs reload exactly once.
func (s *HazardService) RemoveMeasure(ctx context.Context, measureID int, confirmed bool, reload func()) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if err := s.measures.DeleteMeasure(ctx, measureID); err != nil {
		return false, err
	}
	if reload != nil {
		reload()
	}
	return true, nil
}

// UpdateMeasureStatus moves a measure to a new implementation status.
func (s *HazardService) UpdateMeasureStatus(ctx context.Context, measureID int, status string) error {
	switch status {
	case models.MeasurePlanned, models.MeasureInProgress, models.MeasureDone:
	default:
		return ErrInvalidForm
	}
	m, err := s.measures.GetMeasure(ctx, measureID)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrNotFound
	}
	m.Status = status
	_, err = s.measures.UpdateMeasure(ctx, measureID, m)
	return err
}
