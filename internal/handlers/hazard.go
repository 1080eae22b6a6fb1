package handlers

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/diewo77/go-duerp/internal/apiclient"
	"github.com/diewo77/go-duerp/internal/middleware"
	"github.com/diewo77/go-duerp/internal/services"
	"github.com/diewo77/go-duerp/view"
)

// HazardHandler serves the hazard page, its prevention measures and hazard
// deletion.
type HazardHandler struct {
	base
	hazards  *services.HazardService
	units    *services.UnitService
	api      services.HazardAPI
	measures services.MeasureAPI
}

func NewHazardHandler(v *view.Renderer, logger *logrus.Logger, hazards *services.HazardService, units *services.UnitService, api services.HazardAPI, measures services.MeasureAPI) *HazardHandler {
	return &HazardHandler{base: newBase(v, logger), hazards: hazards, units: units, api: api, measures: measures}
}

func hazardURL(docID, hazardID int) string { return fmt.Sprintf("/duerp/%d/risques/%d", docID, hazardID) }

func (h *HazardHandler) ids(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	id, ok1 := pathID(r, "id")
	rid, ok2 := pathID(r, "rid")
	if !ok1 || !ok2 {
		h.renderError(w, r, http.StatusNotFound, "hazard_not_found")
		return 0, 0, false
	}
	return id, rid, true
}

func (h *HazardHandler) measureModal(r *http.Request, rid int, onSuccess func()) *services.MeasureModal {
	return services.NewMeasureModal(h.measures, rid, middleware.T(r, "error_create_measure"), onSuccess)
}

func (h *HazardHandler) renderHazard(w http.ResponseWriter, r *http.Request, id, rid, status int, data map[string]any) {
	state := h.hazards.Load(r.Context(), rid)
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Modal"]; !ok {
		data["Modal"] = h.measureModal(r, rid, nil)
	}
	data["DocumentID"] = id
	data["State"] = state
	if state.IsFailed() {
		h.log(r).WithError(state.Err()).WithField("risque_id", rid).Warn("load hazard failed")
		data["LoadError"] = loadMessage(r, state.Err(), "hazard_not_found", "error_load_hazard")
		status = loadStatus(state.Err())
	}
	h.render(w, r, status, "hazard/show.html", data)
}

// Show renders the hazard page. ?modal=mesure opens the new measure dialog.
func (h *HazardHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, rid, ok := h.ids(w, r)
	if !ok {
		return
	}
	modal := h.measureModal(r, rid, nil)
	if r.URL.Query().Get("modal") == "mesure" {
		modal.Show()
	}
	h.renderHazard(w, r, id, rid, http.StatusOK, map[string]any{"Modal": modal})
}

// CreateMeasure submits the new measure dialog.
func (h *HazardHandler) CreateMeasure(w http.ResponseWriter, r *http.Request) {
	id, rid, ok := h.ids(w, r)
	if !ok {
		return
	}
	var f services.MeasureForm
	if err := h.decode(r, &f); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "error_form_invalid")
		return
	}
	modal := h.measureModal(r, rid, func() {
		middleware.Flash(w, r, "flash_measure_created")
		redirect(w, r, hazardURL(id, rid))
	})
	if err := modal.Submit(r.Context(), f); err != nil {
		h.renderHazard(w, r, id, rid, formStatus(err), map[string]any{"Modal": modal})
	}
}

func (h *HazardHandler) renderEdit(w http.ResponseWriter, r *http.Request, status, id, rid int, f services.HazardForm, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Categories"]; !ok {
		cats, err := h.api.HazardCategories(r.Context())
		if err != nil {
			h.log(r).WithError(err).Warn("load hazard categories failed")
		}
		data["Categories"] = cats
	}
	data["DocumentID"] = id
	data["ID"] = rid
	data["Form"] = f
	h.render(w, r, status, "hazard/edit.html", data)
}

func (h *HazardHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, rid, ok := h.ids(w, r)
	if !ok {
		return
	}
	state := h.hazards.Load(r.Context(), rid)
	if state.IsFailed() {
		h.renderError(w, r, loadStatus(state.Err()), notFoundOr(state.Err(), "hazard_not_found", "error_load_hazard"))
		return
	}
	d := state.Data()
	h.renderEdit(w, r, http.StatusOK, id, rid, services.HazardFormFrom(d.Hazard), map[string]any{"Categories": d.Categories})
}

func (h *HazardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, rid, ok := h.ids(w, r)
	if !ok {
		return
	}
	var f services.HazardForm
	if err := h.decode(r, &f); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "error_form_invalid")
		return
	}
	hz, v := f.Build()
	if !v.Empty() {
		h.renderEdit(w, r, http.StatusUnprocessableEntity, id, rid, f, map[string]any{"Errors": v})
		return
	}
	if err := h.hazards.Update(r.Context(), rid, hz); err != nil {
		h.renderEdit(w, r, http.StatusBadGateway, id, rid, f, map[string]any{
			"Error": apiclient.ErrorMessage(err, middleware.T(r, "error_update")),
		})
		return
	}
	middleware.Flash(w, r, "flash_hazard_updated")
	redirect(w, r, hazardURL(id, rid))
}

// ConfirmDelete asks before deleting the hazard.
func (h *HazardHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, rid, ok := h.ids(w, r)
	if !ok {
		return
	}
	hz, err := h.api.GetHazard(r.Context(), rid)
	if err != nil || hz == nil {
		err = orNotFound(err)
		h.renderError(w, r, loadStatus(err), notFoundOr(err, "hazard_not_found", "error_load_hazard"))
		return
	}
	h.render(w, r, http.StatusOK, "confirm.html", confirmData(r, "confirm_delete_hazard", hz.Description,
		hazardURL(id, rid)+"/supprimer", hazardURL(id, rid)))
}

// Delete removes the hazard once confirmed, then reloads its work unit page.
func (h *HazardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, rid, ok := h.ids(w, r)
	if !ok {
		return
	}
	if r.PostFormValue("confirm") != confirmValue {
		redirect(w, r, hazardURL(id, rid)+"/supprimer")
		return
	}
	hz, err := h.api.GetHazard(r.Context(), rid)
	if err != nil || hz == nil {
		err = orNotFound(err)
		h.renderError(w, r, loadStatus(err), notFoundOr(err, "hazard_not_found", "error_load_hazard"))
		return
	}
	back := documentURL(id)
	if hz.UnitID != 0 {
		back = unitURL(id, hz.UnitID)
	}
	_, err = h.units.RemoveHazard(r.Context(), rid, true, func() {
		middleware.Flash(w, r, "flash_hazard_deleted")
		redirect(w, r, back)
	})
	if err != nil {
		h.log(r).WithError(err).WithField("risque_id", rid).Warn("delete hazard failed")
		h.renderHazard(w, r, id, rid, http.StatusBadGateway, map[string]any{
			"Error": apiclient.ErrorMessage(err, middleware.T(r, "error_delete")),
		})
	}
}

func measureURL(docID, hazardID, measureID int) string {
	return fmt.Sprintf("%s/mesures/%d", hazardURL(docID, hazardID), measureID)
}

func (h *HazardHandler) measureIDs(w http.ResponseWriter, r *http.Request) (int, int, int, bool) {
	id, rid, ok := h.ids(w, r)
	if !ok {
		return 0, 0, 0, false
	}
	mid, ok := pathID(r, "mid")
	if !ok {
		h.renderError(w, r, http.StatusNotFound, "measure_not_found")
		return 0, 0, 0, false
	}
	return id, rid, mid, true
}

// ConfirmDeleteMeasure asks before deleting a prevention measure.
func (h *HazardHandler) ConfirmDeleteMeasure(w http.ResponseWriter, r *http.Request) {
	id, rid, mid, ok := h.measureIDs(w, r)
	if !ok {
		return
	}
	m, err := h.measures.GetMeasure(r.Context(), mid)
	if err != nil || m == nil {
		err = orNotFound(err)
		h.renderError(w, r, loadStatus(err), notFoundOr(err, "measure_not_found", "error_generic"))
		return
	}
	h.render(w, r, http.StatusOK, "confirm.html", confirmData(r, "confirm_delete_measure", m.Description,
		measureURL(id, rid, mid)+"/supprimer", hazardURL(id, rid)))
}

// DeleteMeasure removes the measure once confirmed, then reloads the hazard page.
func (h *HazardHandler) DeleteMeasure(w http.ResponseWriter, r *http.Request) {
	id, rid, mid, ok := h.measureIDs(w, r)
	if !ok {
		return
	}
	confirmed := r.PostFormValue("confirm") == confirmValue
	done, err := h.hazards.RemoveMeasure(r.Context(), mid, confirmed, func() {
		middleware.Flash(w, r, "flash_measure_deleted")
		redirect(w, r, hazardURL(id, rid))
	})
	switch {
	case err != nil:
		h.log(r).WithError(err).WithField("mesure_id", mid).Warn("delete measure failed")
		h.renderHazard(w, r, id, rid, http.StatusBadGateway, map[string]any{
			"Error": apiclient.ErrorMessage(err, middleware.T(r, "error_delete")),
		})
	case !done:
		redirect(w, r, measureURL(id, rid, mid)+"/supprimer")
	}
}

// UpdateMeasureStatus moves a measure along planifié → en_cours → réalisé.
func (h *HazardHandler) UpdateMeasureStatus(w http.ResponseWriter, r *http.Request) {
	id, rid, mid, ok := h.measureIDs(w, r)
	if !ok {
		return
	}
	if err := h.hazards.UpdateMeasureStatus(r.Context(), mid, r.PostFormValue("statut")); err != nil {
		h.renderHazard(w, r, id, rid, formStatus(err), map[string]any{
			"Error": apiclient.ErrorMessage(err, middleware.T(r, "error_update")),
		})
		return
	}
	middleware.Flash(w, r, "flash_measure_updated")
	redirect(w, r, hazardURL(id, rid))
}
