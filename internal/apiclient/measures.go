package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/diewo77/go-duerp/internal/models"
)

// CreateMeasure creates a prevention measure; m.HazardID, Type and Description must be set.
func (c *Client) CreateMeasure(ctx context.Context, m *models.Measure) (*models.Measure, error) {
	return call[*models.Measure](ctx, c, "mesure.create", http.MethodPost, "/mesure/", m)
}

func (c *Client) GetMeasure(ctx context.Context, id int) (*models.Measure, error) {
	return call[*models.Measure](ctx, c, "mesure.get", http.MethodGet, fmt.Sprintf("/mesure/%d", id), nil)
}

func (c *Client) UpdateMeasure(ctx context.Context, id int, m *models.Measure) (*models.Measure, error) {
	return call[*models.Measure](ctx, c, "mesure.update", http.MethodPut, fmt.Sprintf("/mesure/%d", id), newMeasureUpdate(m))
}

func (c *Client) DeleteMeasure(ctx context.Context, id int) error {
	return exec(ctx, c, "mesure.delete", http.MethodDelete, fmt.Sprintf("/mesure/%d", id), nil)
}

// MeasureTypes returns the prevention hierarchy, best rank first.
func (c *Client) MeasureTypes(ctx context.Context) ([]models.MeasureType, error) {
	return call[[]models.MeasureType](ctx, c, "mesure.types", http.MethodGet, "/mesure/types", nil)
}
