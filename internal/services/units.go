package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/diewo77/go-duerp/internal/logging"
	"github.com/diewo77/go-duerp/internal/models"
	"github.com/diewo77/go-duerp/internal/viewstate"
)

// UnitDetail is the data behind the work unit page.
// Categories is nil when the catalogue could not be loaded.
type UnitDetail struct {
	Unit       *models.Unit
	Categories []models.HazardCategory
}

type UnitService struct {
	units   UnitAPI
	hazards HazardAPI
	logger  *logrus.Logger
}

func NewUnitService(units UnitAPI, hazards HazardAPI, logger *logrus.Logger) *UnitService {
	return &UnitService{units: units, hazards: hazards, logger: logger}
}

// Load fetches the unit and the hazard category catalogue concurrently.
func (s *UnitService) Load(ctx context.Context, id int) viewstate.State[*UnitDetail] {
	var (
		detail  UnitDetail
		unitErr error
		g       errgroup.Group
	)
	g.Go(func() error {
		detail.Unit, unitErr = s.units.GetUnit(ctx, id)
		return nil
	})
	g.Go(func() error {
		cats, err := s.hazards.HazardCategories(ctx)
		if err != nil {
			logging.FromContext(ctx, s.logger).WithError(err).Warn("load hazard categories failed")
			return nil
		}
		detail.Categories = cats
		return nil
	})
	_ = g.Wait()
	if unitErr != nil {
		return viewstate.NewFailed[*UnitDetail](unitErr)
	}
	if detail.Unit == nil {
		return viewstate.NewFailed[*UnitDetail](ErrNotFound)
	}
	return viewstate.NewReady(&detail)
}

func (s *UnitService) Get(ctx context.Context, id int) (*models.Unit, error) {
	return s.units.GetUnit(ctx, id)
}

func (s *UnitService) Update(ctx context.Context, id int, u *models.Unit) error {
	_, err := s.units.UpdateUnit(ctx, id, u)
	return err
}

// RemoveHazard deletes a hazard once confirmed, then runs reload exactly once.
func (s *UnitService) RemoveHazard(ctx context.Context, hazardID int, confirmed bool, reload func()) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if err := s.hazards.DeleteHazard(ctx, hazardID); err != nil {
		return false, err
	}
	if reload != nil {
		reload()
	}
	return true, nil
}
