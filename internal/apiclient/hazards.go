package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/diewo77/go-duerp/internal/models"
)

// CreateHazard creates a hazard; h.UnitID, Category and Description must be set.
// The server computes criticity and level.
func (c *Client) CreateHazard(ctx context.Context, h *models.Hazard) (*models.Hazard, error) {
	return call[*models.Hazard](ctx, c, "risque.create", http.MethodPost, "/risque/", h)
}

func (c *Client) GetHazard(ctx context.Context, id int) (*models.Hazard, error) {
	return call[*models.Hazard](ctx, c, "risque.get", http.MethodGet, fmt.Sprintf("/risque/%d", id), nil)
}

func (c *Client) UpdateHazard(ctx context.Context, id int, h *models.Hazard) (*models.Hazard, error) {
	return call[*models.Hazard](ctx, c, "risque.update", http.MethodPut, fmt.Sprintf("/risque/%d", id), newHazardUpdate(h))
}

func (c *Client) DeleteHazard(ctx context.Context, id int) error {
	return exec(ctx, c, "risque.delete", http.MethodDelete, fmt.Sprintf("/risque/%d", id), nil)
}

// HazardCategories returns the server's hazard category catalogue.
func (c *Client) HazardCategories(ctx context.Context) ([]models.HazardCategory, error) {
	return call[[]models.HazardCategory](ctx, c, "risque.categories", http.MethodGet, "/risque/categories", nil)
}
