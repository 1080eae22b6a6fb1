package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/diewo77/go-duerp/internal/models"
)

// CreateUnit creates a work unit; u.DocumentID must be set.
func (c *Client) CreateUnit(ctx context.Context, u *models.Unit) (*models.Unit, error) {
	return call[*models.Unit](ctx, c, "unite.create", http.MethodPost, "/unite/", u)
}

func (c *Client) GetUnit(ctx context.Context, id int) (*models.Unit, error) {
	return call[*models.Unit](ctx, c, "unite.get", http.MethodGet, fmt.Sprintf("/unite/%d", id), nil)
}

func (c *Client) UpdateUnit(ctx context.Context, id int, u *models.Unit) (*models.Unit, error) {
	return call[*models.Unit](ctx, c, "unite.update", http.MethodPut, fmt.Sprintf("/unite/%d", id), newUnitUpdate(u))
}

func (c *Client) DeleteUnit(ctx context.Context, id int) error {
	return exec(ctx, c, "unite.delete", http.MethodDelete, fmt.Sprintf("/unite/%d", id), nil)
}
