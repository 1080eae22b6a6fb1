package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/go-duerp/internal/apiclient"
	"github.com/diewo77/go-duerp/internal/models"
	"github.com/diewo77/go-duerp/internal/services"
	"github.com/diewo77/go-duerp/internal/theme"
	"github.com/diewo77/go-duerp/view"
)

func newTestMux(t *testing.T, api *fakeAPI) *http.ServeMux {
	t.Helper()
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	v := view.New(theme.Default())

	unitSvc := services.NewUnitService(api, api, logger)
	dh := NewDashboardHandler(v, logger, services.NewDashboardService(api, logger))
	doc := NewDocumentHandler(v, logger, services.NewDocumentService(api, api, logger), api)
	uh := NewUnitHandler(v, logger, unitSvc, api)
	hh := NewHazardHandler(v, logger, services.NewHazardService(api, api, logger), unitSvc, api, api)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", dh.Show)
	mux.HandleFunc("GET /duerp", doc.List)
	mux.HandleFunc("GET /duerp/nouveau", doc.New)
	mux.HandleFunc("POST /duerp/nouveau", doc.Create)
	mux.HandleFunc("GET /duerp/{id}", doc.Show)
	mux.HandleFunc("POST /duerp/{id}/modifier", doc.Update)
	mux.HandleFunc("POST /duerp/{id}/valider", doc.Validate)
	mux.HandleFunc("GET /duerp/{id}/supprimer", doc.ConfirmDelete)
	mux.HandleFunc("POST /duerp/{id}/supprimer", doc.Delete)
	mux.HandleFunc("POST /duerp/{id}/telecharger", doc.Download)
	mux.HandleFunc("POST /duerp/{id}/unites", doc.CreateUnit)
	mux.HandleFunc("GET /duerp/{id}/unites/{uid}", uh.Show)
	mux.HandleFunc("GET /duerp/{id}/unites/{uid}/supprimer", doc.ConfirmDeleteUnit)
	mux.HandleFunc("POST /duerp/{id}/unites/{uid}/supprimer", doc.DeleteUnit)
	mux.HandleFunc("POST /duerp/{id}/risques/{rid}/supprimer", hh.Delete)
	mux.HandleFunc("POST /duerp/{id}/risques/{rid}/mesures/{mid}/statut", hh.UpdateMeasureStatus)
	mux.HandleFunc("/", NotFoundHandler(v, logger))
	return mux
}

func get(t *testing.T, mux http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func post(t *testing.T, mux http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func parse(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	require.NoError(t, err)
	return doc
}

func sampleDocument() *models.Document {
	n := 12
	return &models.Document{
		ID:          7,
		CompanyName: "ACME",
		Version:     "1.0",
		Headcount:   &n,
		Status:      models.StatusDraft,
		Units:       []models.Unit{{ID: 3, DocumentID: 7, Name: "Atelier"}},
	}
}

func TestDocumentList_EmptyShowsCallToAction(t *testing.T) {
	api := newFakeAPI()
	rr := get(t, newTestMux(t, api), "/duerp")

	assert.Equal(t, http.StatusOK, rr.Code)
	doc := parse(t, rr)
	assert.Equal(t, 1, doc.Find("#empty-state").Length())
	assert.Equal(t, 0, doc.Find(".document-card").Length())
	assert.Equal(t, "/duerp/nouveau", doc.Find("#empty-state a.btn").AttrOr("href", ""))
}

func TestDocumentList_Cards(t *testing.T) {
	api := newFakeAPI()
	api.docs = []models.Document{*sampleDocument(), {ID: 8, CompanyName: "Globex", Status: models.StatusValidated}}
	doc := parse(t, get(t, newTestMux(t, api), "/duerp"))

	assert.Equal(t, 2, doc.Find(".document-card").Length())
	assert.Equal(t, 0, doc.Find("#empty-state").Length())
}

func TestDocumentList_LoadFailure(t *testing.T) {
	api := newFakeAPI()
	api.errs["ListDocuments"] = &apiclient.APIError{Op: "list", Status: 500}
	rr := get(t, newTestMux(t, api), "/duerp")

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Equal(t, 1, parse(t, rr).Find(".alert-error").Length())
}

func TestDashboard_Conformity(t *testing.T) {
	api := newFakeAPI()
	api.docs = []models.Document{
		{ID: 1, Status: models.StatusValidated},
		{ID: 2, Status: models.StatusValidated},
		{ID: 3, Status: models.StatusDraft},
	}
	rr := get(t, newTestMux(t, api), "/")

	require.Equal(t, http.StatusOK, rr.Code)
	values := parse(t, rr).Find("#metrics .stat-value")
	require.Equal(t, 4, values.Length())
	assert.Equal(t, "3", strings.TrimSpace(values.Eq(0).Text()))
	assert.Equal(t, "2", strings.TrimSpace(values.Eq(1).Text()))
	assert.Equal(t, "67%", strings.TrimSpace(values.Eq(3).Text()))
	assert.Equal(t, 1, api.count("ListDocuments"))
}

func TestWizard_NextRequiresCompanyName(t *testing.T) {
	api := newFakeAPI()
	rr := post(t, newTestMux(t, api), "/duerp/nouveau", url.Values{"step": {"0"}, "action": {"next"}})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	doc := parse(t, rr)
	assert.Equal(t, "0", doc.Find(`input[name="step"]`).AttrOr("value", ""))
	assert.Equal(t, 0, api.count("CreateDocument"))
}

func TestWizard_CarriesValuesBetweenSteps(t *testing.T) {
	api := newFakeAPI()
	rr := post(t, newTestMux(t, api), "/duerp/nouveau", url.Values{
		"step": {"0"}, "action": {"next"}, "entreprise_nom": {"ACME"}, "effectif": {"15"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	doc := parse(t, rr)
	assert.Equal(t, "1", doc.Find(`input[name="step"]`).AttrOr("value", ""))
	assert.Equal(t, "ACME", doc.Find(`input[type="hidden"][name="entreprise_nom"]`).AttrOr("value", ""))
	assert.Equal(t, "15", doc.Find(`input[type="hidden"][name="effectif"]`).AttrOr("value", ""))
}

func TestWizard_Submit(t *testing.T) {
	tests := []struct {
		name      string
		headcount string
		siret     string
		want      *int
	}{
		{"with headcount", "15", "", intPtr(15)},
		{"without headcount", "", "", nil},
		{"with a SIREN", "", "732829320", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI()
			rr := post(t, newTestMux(t, api), "/duerp/nouveau", url.Values{
				"step": {"2"}, "action": {"submit"}, "entreprise_nom": {"ACME"},
				"effectif": {tt.headcount}, "entreprise_siret": {tt.siret},
			})

			require.Equal(t, http.StatusCreated, rr.Code)
			require.Equal(t, 1, api.count("CreateDocument"))
			assert.Equal(t, "ACME", api.createdDoc.CompanyName)
			assert.Equal(t, tt.siret, api.createdDoc.CompanySIRET)
			assert.Equal(t, tt.want, api.createdDoc.Headcount)

			doc := parse(t, rr)
			assert.Equal(t, "2;url=/duerp/99", doc.Find(`meta[http-equiv="refresh"]`).AttrOr("content", ""))
			assert.Equal(t, 1, doc.Find("#created").Length())
			submit := doc.Find(`button[value="submit"]`)
			require.Equal(t, 1, submit.Length())
			_, disabled := submit.Attr("disabled")
			assert.True(t, disabled)
			_, scripted := submit.Attr("data-requires")
			assert.False(t, scripted, "a created document must not re-enable the submit button")
		})
	}
}

func TestWizard_SubmitRejectsBadHeadcount(t *testing.T) {
	api := newFakeAPI()
	rr := post(t, newTestMux(t, api), "/duerp/nouveau", url.Values{
		"step": {"2"}, "action": {"submit"}, "entreprise_nom": {"ACME"}, "effectif": {"beaucoup"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, 0, api.count("CreateDocument"))
	assert.Equal(t, "0", parse(t, rr).Find(`input[name="step"]`).AttrOr("value", ""))
}

func TestDocumentShow_NotFound(t *testing.T) {
	api := newFakeAPI()
	api.errs["GetDocument"] = &apiclient.APIError{Op: "get document", Status: 404}
	mux := newTestMux(t, api)

	assert.Equal(t, http.StatusNotFound, get(t, mux, "/duerp/42").Code)
	assert.Equal(t, http.StatusNotFound, get(t, mux, "/duerp/abc").Code)
}

func TestDocumentShow_OpensUnitModal(t *testing.T) {
	api := newFakeAPI()
	api.doc = sampleDocument()
	mux := newTestMux(t, api)

	closed := parse(t, get(t, mux, "/duerp/7"))
	assert.Equal(t, 0, closed.Find(".modal").Length())
	assert.Equal(t, 1, closed.Find("tr.unit-row").Length())

	open := parse(t, get(t, mux, "/duerp/7?modal=unite"))
	assert.Equal(t, 1, open.Find(".modal").Length())
	_, disabled := open.Find(`.modal button[type="submit"]`).Attr("disabled")
	assert.True(t, disabled)
}

func TestCreateUnit_SuccessRedirectsOnce(t *testing.T) {
	api := newFakeAPI()
	api.doc = sampleDocument()
	rr := post(t, newTestMux(t, api), "/duerp/7/unites", url.Values{"nom": {"Bureau"}, "nombre_employes": {"4"}})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/duerp/7", rr.Header().Get("Location"))
	assert.Equal(t, 1, api.count("CreateUnit"))
	require.NotNil(t, api.createdUnit)
	assert.Equal(t, 7, api.createdUnit.DocumentID)
	assert.Equal(t, "Bureau", api.createdUnit.Name)

	var flash bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == "flash" && c.Value != "" {
			flash = true
		}
	}
	assert.True(t, flash)
}

func TestCreateUnit_FailureKeepsModalOpen(t *testing.T) {
	api := newFakeAPI()
	api.doc = sampleDocument()
	api.errs["CreateUnit"] = &apiclient.APIError{Op: "create unit", Status: 500, Message: "unité en double"}
	rr := post(t, newTestMux(t, api), "/duerp/7/unites", url.Values{"nom": {"Bureau"}})

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	doc := parse(t, rr)
	modal := doc.Find(".modal")
	require.Equal(t, 1, modal.Length())
	assert.Contains(t, modal.Find(".alert-error").Text(), "unité en double")
	assert.Equal(t, "Bureau", modal.Find(`input[name="nom"]`).AttrOr("value", ""))
}

func TestCreateUnit_InvalidFormSkipsAPI(t *testing.T) {
	api := newFakeAPI()
	api.doc = sampleDocument()
	rr := post(t, newTestMux(t, api), "/duerp/7/unites", url.Values{"nom": {"  "}})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, 0, api.count("CreateUnit"))
	assert.Equal(t, 1, parse(t, rr).Find(".modal").Length())
}

func TestDeleteUnit_RequiresConfirmation(t *testing.T) {
	api := newFakeAPI()
	api.unit = &models.Unit{ID: 3, DocumentID: 7, Name: "Atelier"}
	mux := newTestMux(t, api)

	page := parse(t, get(t, mux, "/duerp/7/unites/3/supprimer"))
	assert.Equal(t, "/duerp/7/unites/3/supprimer", page.Find("#confirm form").AttrOr("action", ""))
	assert.Contains(t, page.Find("#confirm").Text(), "Atelier")

	rr := post(t, mux, "/duerp/7/unites/3/supprimer", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/duerp/7/unites/3/supprimer", rr.Header().Get("Location"))
	assert.Equal(t, 0, api.count("DeleteUnit"))

	rr = post(t, mux, "/duerp/7/unites/3/supprimer", url.Values{"confirm": {"yes"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/duerp/7", rr.Header().Get("Location"))
	assert.Equal(t, 1, api.count("DeleteUnit"))
}

func TestDeleteUnit_OtherDocument(t *testing.T) {
	api := newFakeAPI()
	api.unit = &models.Unit{ID: 3, DocumentID: 8, Name: "Atelier"}
	mux := newTestMux(t, api)

	assert.Equal(t, http.StatusNotFound, get(t, mux, "/duerp/7/unites/3/supprimer").Code)

	rr := post(t, mux, "/duerp/7/unites/3/supprimer", url.Values{"confirm": {"yes"}})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, 0, api.count("DeleteUnit"))
}

func TestDeleteDocument_ConfirmPage(t *testing.T) {
	api := newFakeAPI()
	api.doc = sampleDocument()
	mux := newTestMux(t, api)

	doc := parse(t, get(t, mux, "/duerp/7/supprimer"))
	form := doc.Find("#confirm form")
	assert.Equal(t, "/duerp/7/supprimer", form.AttrOr("action", ""))
	assert.Equal(t, "yes", form.Find(`input[name="confirm"]`).AttrOr("value", ""))
	assert.Contains(t, doc.Find("#confirm").Text(), "ACME")

	rr := post(t, mux, "/duerp/7/supprimer", url.Values{"confirm": {"yes"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/duerp", rr.Header().Get("Location"))
	assert.Equal(t, 1, api.count("DeleteDocument"))
}

func TestUpdateDocument(t *testing.T) {
	api := newFakeAPI()
	mux := newTestMux(t, api)

	rr := post(t, mux, "/duerp/7/modifier", url.Values{"entreprise_nom": {"  "}, "entreprise_siret": {"123"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, 0, api.count("UpdateDocument"))
	assert.Equal(t, "123", parse(t, rr).Find(`input[name="entreprise_siret"]`).AttrOr("value", ""))

	rr = post(t, mux, "/duerp/7/modifier", url.Values{"entreprise_nom": {"ACME"}, "entreprise_siret": {"732 829 320"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/duerp/7", rr.Header().Get("Location"))
	require.Equal(t, 1, api.count("UpdateDocument"))
	assert.Equal(t, "732829320", api.updatedDoc.CompanySIRET)
}

func TestUpdateDocument_ClearsBlankFields(t *testing.T) {
	api := newFakeAPI()
	rr := post(t, newTestMux(t, api), "/duerp/7/modifier", url.Values{
		"entreprise_nom": {"ACME"}, "entreprise_siret": {""}, "responsable_validation": {" "},
	})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	require.NotNil(t, api.updatedDoc)
	assert.Empty(t, api.updatedDoc.CompanySIRET)
	assert.Empty(t, api.updatedDoc.ValidationResponsible)
}

func TestValidateDocument_Failure(t *testing.T) {
	api := newFakeAPI()
	api.doc = sampleDocument()
	api.errs["ValidateDocument"] = &apiclient.APIError{Op: "validate", Status: 409, Message: "déjà validé"}
	rr := post(t, newTestMux(t, api), "/duerp/7/valider", url.Values{"validateur": {"Mme Martin"}})

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, parse(t, rr).Find(".alert-error").Text(), "déjà validé")
}

func TestDownload_Headers(t *testing.T) {
	api := newFakeAPI()
	api.doc = sampleDocument()
	api.file = &apiclient.GeneratedFile{Data: []byte("%PDF-1.7"), ContentType: "application/pdf"}
	rr := post(t, newTestMux(t, api), "/duerp/7/telecharger", url.Values{"format": {"pdf"}})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=DUERP_ACME_1.0.pdf", rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.7", rr.Body.String())
}

func TestDownload_UnknownFormat(t *testing.T) {
	api := newFakeAPI()
	api.doc = sampleDocument()
	rr := post(t, newTestMux(t, api), "/duerp/7/telecharger", url.Values{"format": {"odt"}})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 0, api.count("GenerateDocument"))
}

func TestUnitShow_UnderOtherDocument(t *testing.T) {
	api := newFakeAPI()
	api.unit = &models.Unit{ID: 3, DocumentID: 8, Name: "Atelier"}
	rr := get(t, newTestMux(t, api), "/duerp/7/unites/3")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUnitShow_OpensHazardModal(t *testing.T) {
	api := newFakeAPI()
	api.unit = &models.Unit{ID: 3, DocumentID: 7, Name: "Atelier", Hazards: []models.Hazard{
		{ID: 5, Category: "Chute", Description: "Sol glissant", Severity: 3, Probability: 2},
	}}
	api.categories = []models.HazardCategory{{Name: "Chute", Examples: []string{"escalier"}}}
	doc := parse(t, get(t, newTestMux(t, api), "/duerp/7/unites/3?modal=risque"))

	assert.Equal(t, 1, doc.Find("tr.hazard-row").Length())
	assert.Equal(t, 1, doc.Find(".modal").Length())
	assert.Equal(t, "/duerp/7/unites/3/risques", doc.Find(".modal form").AttrOr("action", ""))
}

func TestDeleteHazard_ReturnsToUnit(t *testing.T) {
	api := newFakeAPI()
	api.hazard = &models.Hazard{ID: 5, UnitID: 3}
	rr := post(t, newTestMux(t, api), "/duerp/7/risques/5/supprimer", url.Values{"confirm": {"yes"}})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/duerp/7/unites/3", rr.Header().Get("Location"))
	assert.Equal(t, 1, api.count("DeleteHazard"))
}

func TestUpdateMeasureStatus(t *testing.T) {
	api := newFakeAPI()
	api.measure = &models.Measure{ID: 9, HazardID: 5, Type: "Protection collective", Description: "Garde-corps", Status: models.MeasurePlanned}
	rr := post(t, newTestMux(t, api), "/duerp/7/risques/5/mesures/9/statut", url.Values{"statut": {models.MeasureDone}})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/duerp/7/risques/5", rr.Header().Get("Location"))
	assert.Equal(t, 1, api.count("GetMeasure"))
	require.NotNil(t, api.updatedMeasure)
	assert.Equal(t, models.MeasureDone, api.updatedMeasure.Status)
	assert.Equal(t, "Garde-corps", api.updatedMeasure.Description)
}

func TestNotFoundHandler(t *testing.T) {
	mux := newTestMux(t, newFakeAPI())

	rr := get(t, mux, "/nulle-part")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, 1, parse(t, rr).Find("#error").Length())

	req := httptest.NewRequest(http.MethodGet, "/nulle-part", nil)
	req.Header.Set("Accept", "application/json")
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"page_not_found"}`, rr.Body.String())
}

func intPtr(n int) *int { return &n }
