package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/diewo77/go-duerp/internal/services"
	"github.com/diewo77/go-duerp/view"
)

type DashboardHandler struct {
	base
	svc *services.DashboardService
}

func NewDashboardHandler(v *view.Renderer, logger *logrus.Logger, svc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{base: newBase(v, logger), svc: svc}
}

// Show renders the landing page with the headline metrics.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	state := h.svc.Load(r.Context())
	status := http.StatusOK
	if state.IsFailed() {
		status = http.StatusBadGateway
	}
	h.render(w, r, status, "dashboard.html", map[string]any{"State": state})
}
