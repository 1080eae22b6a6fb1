package handlers

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/diewo77/go-duerp/internal/apiclient"
	"github.com/diewo77/go-duerp/internal/middleware"
	"github.com/diewo77/go-duerp/internal/models"
	"github.com/diewo77/go-duerp/internal/services"
	"github.com/diewo77/go-duerp/view"
)

// DocumentHandler serves the document list, wizard, detail page and the
// actions triggered from it.
type DocumentHandler struct {
	base
	docs  *services.DocumentService
	units services.UnitAPI
}

func NewDocumentHandler(v *view.Renderer, logger *logrus.Logger, docs *services.DocumentService, units services.UnitAPI) *DocumentHandler {
	return &DocumentHandler{base: newBase(v, logger), docs: docs, units: units}
}

func documentURL(id int) string { return "/duerp/" + strconv.Itoa(id) }

// List renders every document, or the empty-state call to action.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	state := h.docs.List(r.Context())
	status := http.StatusOK
	if state.IsFailed() {
		status = http.StatusBadGateway
	}
	h.render(w, r, status, "duerp/list.html", map[string]any{"State": state})
}

// ─────────────────────────────────────────────────────────────────────────────
// Creation wizard
// ─────────────────────────────────────────────────────────────────────────────

func (h *DocumentHandler) renderWizard(w http.ResponseWriter, r *http.Request, status int, wz *services.DocumentWizard, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["Wizard"] = wz
	data["Steps"] = services.WizardSteps
	h.render(w, r, status, "duerp/new.html", data)
}

// New renders the first wizard step.
func (h *DocumentHandler) New(w http.ResponseWriter, r *http.Request) {
	h.renderWizard(w, r, http.StatusOK, services.NewDocumentWizard(), nil)
}

// Create moves the wizard and, on the final step, creates the document.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	wz := services.NewDocumentWizard()
	if err := h.decode(r, &wz.Form); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "error_form_invalid")
		return
	}
	wz.Step, _ = strconv.Atoi(r.PostFormValue("step"))
	if !wz.Apply(r.PostFormValue("action")) {
		status := http.StatusOK
		if !wz.Errors.Empty() {
			status = http.StatusUnprocessableEntity
		}
		h.renderWizard(w, r, status, wz, nil)
		return
	}
	payload, ok := wz.Payload()
	if !ok {
		h.renderWizard(w, r, http.StatusUnprocessableEntity, wz, nil)
		return
	}
	created, err := h.docs.Create(r.Context(), payload)
	if err != nil {
		h.log(r).WithError(err).Warn("create document failed")
		h.renderWizard(w, r, http.StatusBadGateway, wz, map[string]any{
			"Error": apiclient.ErrorMessage(err, middleware.T(r, "error_create_document")),
		})
		return
	}
	h.log(r).WithField("duerp_id", created.ID).Info("document created")
	h.renderWizard(w, r, http.StatusCreated, wz, map[string]any{"Created": created})
}

// ─────────────────────────────────────────────────────────────────────────────
// Detail page
// ─────────────────────────────────────────────────────────────────────────────

func (h *DocumentHandler) unitModal(r *http.Request, id int, onSuccess func()) *services.UnitModal {
	return services.NewUnitModal(h.units, id, middleware.T(r, "error_create_unit"), onSuccess)
}

// renderDetail loads the document page and renders it with extra data
// (modal state, action error).
func (h *DocumentHandler) renderDetail(w http.ResponseWriter, r *http.Request, id int, status int, data map[string]any) {
	state := h.docs.LoadDetail(r.Context(), id)
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Modal"]; !ok {
		data["Modal"] = h.unitModal(r, id, nil)
	}
	data["State"] = state
	if state.IsFailed() {
		h.log(r).WithError(state.Err()).WithField("duerp_id", id).Warn("load document failed")
		data["LoadError"] = loadMessage(r, state.Err(), "document_not_found", "error_load_document")
		status = loadStatus(state.Err())
	}
	h.render(w, r, status, "duerp/show.html", data)
}

// Show renders the document page. ?modal=unite opens the new unit dialog.
func (h *DocumentHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.renderError(w, r, http.StatusNotFound, "document_not_found")
		return
	}
	modal := h.unitModal(r, id, nil)
	if r.URL.Query().Get("modal") == "unite" {
		modal.Show()
	}
	h.renderDetail(w, r, id, http.StatusOK, map[string]any{"Modal": modal})
}

// CreateUnit submits the new unit dialog of the document page.
func (h *DocumentHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.renderError(w, r, http.StatusNotFound, "document_not_found")
		return
	}
	var f services.UnitForm
	if err := h.decode(r, &f); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "error_form_invalid")
		return
	}
	modal := h.unitModal(r, id, func() {
		middleware.Flash(w, r, "flash_unit_created")
		redirect(w, r, documentURL(id))
	})
	if err := modal.Submit(r.Context(), f); err != nil {
		h.renderDetail(w, r, id, formStatus(err), map[string]any{"Modal": modal})
	}
}

// Download streams the generated PDF or DOCX as an attachment.
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.renderError(w, r, http.StatusNotFound, "document_not_found")
		return
	}
	format := r.PostFormValue("format")
	switch format {
	case "":
		format = apiclient.FormatPDF
	case apiclient.FormatPDF, apiclient.FormatDOCX:
	default:
		h.renderDetail(w, r, id, http.StatusBadRequest, map[string]any{"Error": middleware.T(r, "error_download")})
		return
	}
	dl, err := h.docs.Download(r.Context(), id, format)
	if err != nil {
		h.log(r).WithError(err).WithField("duerp_id", id).Warn("download failed")
		h.renderDetail(w, r, id, http.StatusBadGateway, map[string]any{
			"Error": apiclient.ErrorMessage(err, middleware.T(r, "error_download")),
		})
		return
	}
	w.Header().Set("Content-Type", dl.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": dl.Filename}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(dl.Data); err != nil {
		h.log(r).WithError(err).Debug("download write aborted")
	}
}

// Validate marks the document as validated.
func (h *DocumentHandler) Validate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.renderError(w, r, http.StatusNotFound, "document_not_found")
		return
	}
	if err := h.docs.Validate(r.Context(), id, r.PostFormValue("validateur")); err != nil {
		h.renderDetail(w, r, id, http.StatusBadGateway, map[string]any{
			"Error": apiclient.ErrorMessage(err, middleware.T(r, "error_validate")),
		})
		return
	}
	middleware.Flash(w, r, "flash_document_validated")
	redirect(w, r, documentURL(id))
}

// ─────────────────────────────────────────────────────────────────────────────
// Edit & delete
// ─────────────────────────────────────────────────────────────────────────────

func (h *DocumentHandler) renderEdit(w http.ResponseWriter, r *http.Request, status int, id int, f services.DocumentForm, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["ID"] = id
	data["Form"] = f
	h.render(w, r, status, "duerp/edit.html", data)
}

func (h *DocumentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.renderError(w, r, http.StatusNotFound, "document_not_found")
		return
	}
	doc, err := h.docs.Get(r.Context(), id)
	if err != nil {
		h.renderError(w, r, loadStatus(err), notFoundOr(err, "document_not_found", "error_load_document"))
		return
	}
	h.renderEdit(w, r, http.StatusOK, id, services.DocumentFormFrom(doc), nil)
}

func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.renderError(w, r, http.StatusNotFound, "document_not_found")
		return
	}
	var f services.DocumentForm
	if err := h.decode(r, &f); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "error_form_invalid")
		return
	}
	doc, v := f.Build()
	if !v.Empty() {
		h.renderEdit(w, r, http.StatusUnprocessableEntity, id, f, map[string]any{"Errors": v})
		return
	}
	if err := h.docs.Update(r.Context(), id, doc); err != nil {
		h.renderEdit(w, r, http.StatusBadGateway, id, f, map[string]any{
			"Error": apiclient.ErrorMessage(err, middleware.T(r, "error_update")),
		})
		return
	}
	middleware.Flash(w, r, "flash_document_updated")
	redirect(w, r, documentURL(id))
}

// ConfirmDelete asks before deleting the document.
func (h *DocumentHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.renderError(w, r, http.StatusNotFound, "document_not_found")
		return
	}
	doc, err := h.docs.Get(r.Context(), id)
	if err != nil {
		h.renderError(w, r, loadStatus(err), notFoundOr(err, "document_not_found", "error_load_document"))
		return
	}
	h.render(w, r, http.StatusOK, "confirm.html", confirmData(r, "confirm_delete_document", doc.CompanyName,
		documentURL(id)+"/supprimer", documentURL(id)))
}

// Delete removes the document once the confirmation was posted.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.renderError(w, r, http.StatusNotFound, "document_not_found")
		return
	}
	if r.PostFormValue("confirm") != confirmValue {
		redirect(w, r, documentURL(id)+"/supprimer")
		return
	}
	if err := h.docs.Delete(r.Context(), id); err != nil {
		h.log(r).WithError(err).WithField("duerp_id", id).Warn("delete document failed")
		h.renderDetail(w, r, id, http.StatusBadGateway, map[string]any{
			"Error": apiclient.ErrorMessage(err, middleware.T(r, "error_delete")),
		})
		return
	}
	middleware.Flash(w, r, "flash_document_deleted")
	redirect(w, r, "/duerp")
}

// ConfirmDeleteUnit asks before deleting a work unit of the document.
func (h *DocumentHandler) ConfirmDeleteUnit(w http.ResponseWriter, r *http.Request) {
	id, ok1 := pathID(r, "id")
	uid, ok2 := pathID(r, "uid")
	if !ok1 || !ok2 {
		h.renderError(w, r, http.StatusNotFound, "unit_not_found")
		return
	}
	u, err := h.unitOf(r, id, uid)
	if err != nil {
		h.renderError(w, r, loadStatus(err), notFoundOr(err, "unit_not_found", "error_load_unit"))
		return
	}
	h.render(w, r, http.StatusOK, "confirm.html", confirmData(r, "confirm_delete_unit", u.Name,
		fmt.Sprintf("/duerp/%d/unites/%d/supprimer", id, uid), documentURL(id)))
}

// unitOf loads a unit and reports it as not found outside document id.
func (h *DocumentHandler) unitOf(r *http.Request, id, uid int) (*models.Unit, error) {
	u, err := h.units.GetUnit(r.Context(), uid)
	if err == nil && (u == nil || !belongs(u, id)) {
		err = services.ErrNotFound
	}
	return u, err
}

// DeleteUnit deletes the work unit once confirmed, then reloads the document
// page.
func (h *DocumentHandler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	id, ok1 := pathID(r, "id")
	uid, ok2 := pathID(r, "uid")
	if !ok1 || !ok2 {
		h.renderError(w, r, http.StatusNotFound, "unit_not_found")
		return
	}
	confirmed := r.PostFormValue("confirm") == confirmValue
	if confirmed {
		if _, err := h.unitOf(r, id, uid); err != nil {
			h.renderError(w, r, loadStatus(err), notFoundOr(err, "unit_not_found", "error_load_unit"))
			return
		}
	}
	done, err := h.docs.RemoveUnit(r.Context(), uid, confirmed, func() {
		middleware.Flash(w, r, "flash_unit_deleted")
		redirect(w, r, documentURL(id))
	})
	switch {
	case err != nil:
		h.log(r).WithError(err).WithField("unite_id", uid).Warn("delete unit failed")
		h.renderDetail(w, r, id, http.StatusBadGateway, map[string]any{
			"Error": apiclient.ErrorMessage(err, middleware.T(r, "error_delete")),
		})
	case !done:
		redirect(w, r, fmt.Sprintf("/duerp/%d/unites/%d/supprimer", id, uid))
	}
}
