package handlers

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/diewo77/go-duerp/internal/apiclient"
	"github.com/diewo77/go-duerp/internal/middleware"
	"github.com/diewo77/go-duerp/internal/models"
	"github.com/diewo77/go-duerp/internal/services"
	"github.com/diewo77/go-duerp/internal/viewstate"
	"github.com/diewo77/go-duerp/view"
)

// UnitHandler serves the work unit page and its hazards.
type UnitHandler struct {
	base
	units   *services.UnitService
	hazards services.HazardAPI
}

func NewUnitHandler(v *view.Renderer, logger *logrus.Logger, units *services.UnitService, hazards services.HazardAPI) *UnitHandler {
	return &UnitHandler{base: newBase(v, logger), units: units, hazards: hazards}
}

func unitURL(docID, unitID int) string { return fmt.Sprintf("/duerp/%d/unites/%d", docID, unitID) }

func (h *UnitHandler) ids(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	id, ok1 := pathID(r, "id")
	uid, ok2 := pathID(r, "uid")
	if !ok1 || !ok2 {
		h.renderError(w, r, http.StatusNotFound, "unit_not_found")
		return 0, 0, false
	}
	return id, uid, true
}

func (h *UnitHandler) hazardModal(r *http.Request, uid int, onSuccess func()) *services.HazardModal {
	return services.NewHazardModal(h.hazards, uid, middleware.T(r, "error_create_hazard"), onSuccess)
}

// belongs rejects a unit requested under another document's path.
func belongs(u *models.Unit, docID int) bool {
	return u.DocumentID == 0 || u.DocumentID == docID
}

func (h *UnitHandler) renderUnit(w http.ResponseWriter, r *http.Request, id, uid, status int, data map[string]any) {
	state := h.units.Load(r.Context(), uid)
	if state.IsReady() && !belongs(state.Data().Unit, id) {
		state = viewstate.NewFailed[*services.UnitDetail](services.ErrNotFound)
	}
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Modal"]; !ok {
		data["Modal"] = h.hazardModal(r, uid, nil)
	}
	data["DocumentID"] = id
	data["State"] = state
	if state.IsFailed() {
		h.log(r).WithError(state.Err()).WithField("unite_id", uid).Warn("load unit failed")
		data["LoadError"] = loadMessage(r, state.Err(), "unit_not_found", "error_load_unit")
		status = loadStatus(state.Err())
	}
	h.render(w, r, status, "unit/show.html", data)
}

// Show renders the work unit page. ?modal=risque opens the new hazard dialog.
func (h *UnitHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, uid, ok := h.ids(w, r)
	if !ok {
		return
	}
	modal := h.hazardModal(r, uid, nil)
	if r.URL.Query().Get("modal") == "risque" {
		modal.Show()
	}
	h.renderUnit(w, r, id, uid, http.StatusOK, map[string]any{"Modal": modal})
}

// CreateHazard submits the new hazard dialog.
func (h *UnitHandler) CreateHazard(w http.ResponseWriter, r *http.Request) {
	id, uid, ok := h.ids(w, r)
	if !ok {
		return
	}
	var f services.HazardForm
	if err := h.decode(r, &f); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "error_form_invalid")
		return
	}
	modal := h.hazardModal(r, uid, func() {
		middleware.Flash(w, r, "flash_hazard_created")
		redirect(w, r, unitURL(id, uid))
	})
	if err := modal.Submit(r.Context(), f); err != nil {
		h.renderUnit(w, r, id, uid, formStatus(err), map[string]any{"Modal": modal})
	}
}

func (h *UnitHandler) renderEdit(w http.ResponseWriter, r *http.Request, status, id, uid int, f services.UnitForm, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["DocumentID"] = id
	data["ID"] = uid
	data["Form"] = f
	h.render(w, r, status, "unit/edit.html", data)
}

func (h *UnitHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, uid, ok := h.ids(w, r)
	if !ok {
		return
	}
	u, err := h.units.Get(r.Context(), uid)
	if err == nil && (u == nil || !belongs(u, id)) {
		err = services.ErrNotFound
	}
	if err != nil {
		h.renderError(w, r, loadStatus(err), notFoundOr(err, "unit_not_found", "error_load_unit"))
		return
	}
	h.renderEdit(w, r, http.StatusOK, id, uid, services.UnitFormFrom(u), nil)
}

func (h *UnitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, uid, ok := h.ids(w, r)
	if !ok {
		return
	}
	var f services.UnitForm
	if err := h.decode(r, &f); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "error_form_invalid")
		return
	}
	u, v := f.Build()
	if !v.Empty() {
		h.renderEdit(w, r, http.StatusUnprocessableEntity, id, uid, f, map[string]any{"Errors": v})
		return
	}
	if err := h.units.Update(r.Context(), uid, u); err != nil {
		h.renderEdit(w, r, http.StatusBadGateway, id, uid, f, map[string]any{
			"Error": apiclient.ErrorMessage(err, middleware.T(r, "error_update")),
		})
		return
	}
	middleware.Flash(w, r, "flash_unit_updated")
	redirect(w, r, unitURL(id, uid))
}
