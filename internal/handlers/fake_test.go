package handlers

import (
	"context"
	"sync"

	"github.com/diewo77/go-duerp/internal/apiclient"
	"github.com/diewo77/go-duerp/internal/models"
	"github.com/diewo77/go-duerp/internal/services"
)

// fakeAPI is an in-memory API that counts calls per operation.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	docs       []models.Document
	doc        *models.Document
	stats      *models.Stats
	history    []models.HistoryEntry
	unit       *models.Unit
	hazard     *models.Hazard
	measure    *models.Measure
	categories []models.HazardCategory
	types      []models.MeasureType
	file       *apiclient.GeneratedFile

	errs map[string]error

	createdDoc     *models.Document
	createdUnit    *models.Unit
	createdHazard  *models.Hazard
	createdMeasure *models.Measure
	updatedMeasure *models.Measure
	updatedDoc     *models.Document
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: map[string]int{}, errs: map[string]error{}}
}

func (f *fakeAPI) hit(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	return f.errs[op]
}

func (f *fakeAPI) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeAPI) ListDocuments(ctx context.Context) ([]models.Document, error) {
	if err := f.hit("ListDocuments"); err != nil {
		return nil, err
	}
	return f.docs, nil
}

func (f *fakeAPI) GetDocument(ctx context.Context, id int) (*models.Document, error) {
	if err := f.hit("GetDocument"); err != nil {
		return nil, err
	}
	return f.doc, nil
}

func (f *fakeAPI) CreateDocument(ctx context.Context, doc *models.Document) (*models.Document, error) {
	if err := f.hit("CreateDocument"); err != nil {
		return nil, err
	}
	f.createdDoc = doc
	out := *doc
	out.ID = 99
	return &out, nil
}

func (f *fakeAPI) UpdateDocument(ctx context.Context, id int, doc *models.Document) (*models.Document, error) {
	f.updatedDoc = doc
	return doc, f.hit("UpdateDocument")
}

func (f *fakeAPI) DeleteDocument(ctx context.Context, id int) error { return f.hit("DeleteDocument") }

func (f *fakeAPI) ValidateDocument(ctx context.Context, id int, validator string) (*models.Document, error) {
	return f.doc, f.hit("ValidateDocument")
}

func (f *fakeAPI) DocumentStats(ctx context.Context, id int) (*models.Stats, error) {
	if err := f.hit("DocumentStats"); err != nil {
		return nil, err
	}
	return f.stats, nil
}

func (f *fakeAPI) DocumentHistory(ctx context.Context, id int) ([]models.HistoryEntry, error) {
	if err := f.hit("DocumentHistory"); err != nil {
		return nil, err
	}
	return f.history, nil
}

func (f *fakeAPI) GenerateDocument(ctx context.Context, id int, format string) (*apiclient.GeneratedFile, error) {
	if err := f.hit("GenerateDocument"); err != nil {
		return nil, err
	}
	return f.file, nil
}

func (f *fakeAPI) CreateUnit(ctx context.Context, u *models.Unit) (*models.Unit, error) {
	if err := f.hit("CreateUnit"); err != nil {
		return nil, err
	}
	f.createdUnit = u
	return u, nil
}

func (f *fakeAPI) GetUnit(ctx context.Context, id int) (*models.Unit, error) {
	if err := f.hit("GetUnit"); err != nil {
		return nil, err
	}
	return f.unit, nil
}

func (f *fakeAPI) UpdateUnit(ctx context.Context, id int, u *models.Unit) (*models.Unit, error) {
	return u, f.hit("UpdateUnit")
}

func (f *fakeAPI) DeleteUnit(ctx context.Context, id int) error { return f.hit("DeleteUnit") }

func (f *fakeAPI) CreateHazard(ctx context.Context, h *models.Hazard) (*models.Hazard, error) {
	if err := f.hit("CreateHazard"); err != nil {
		return nil, err
	}
	f.createdHazard = h
	return h, nil
}

func (f *fakeAPI) GetHazard(ctx context.Context, id int) (*models.Hazard, error) {
	if err := f.hit("GetHazard"); err != nil {
		return nil, err
	}
	return f.hazard, nil
}

func (f *fakeAPI) UpdateHazard(ctx context.Context, id int, h *models.Hazard) (*models.Hazard, error) {
	return h, f.hit("UpdateHazard")
}

func (f *fakeAPI) DeleteHazard(ctx context.Context, id int) error { return f.hit("DeleteHazard") }

func (f *fakeAPI) HazardCategories(ctx context.Context) ([]models.HazardCategory, error) {
	if err := f.hit("HazardCategories"); err != nil {
		return nil, err
	}
	return f.categories, nil
}

func (f *fakeAPI) CreateMeasure(ctx context.Context, m *models.Measure) (*models.Measure, error) {
	if err := f.hit("CreateMeasure"); err != nil {
		return nil, err
	}
	f.createdMeasure = m
	return m, nil
}

func (f *fakeAPI) GetMeasure(ctx context.Context, id int) (*models.Measure, error) {
	if err := f.hit("GetMeasure"); err != nil {
		return nil, err
	}
	return f.measure, nil
}

func (f *fakeAPI) UpdateMeasure(ctx context.Context, id int, m *models.Measure) (*models.Measure, error) {
	f.updatedMeasure = m
	return m, f.hit("UpdateMeasure")
}

func (f *fakeAPI) DeleteMeasure(ctx context.Context, id int) error { return f.hit("DeleteMeasure") }

func (f *fakeAPI) MeasureTypes(ctx context.Context) ([]models.MeasureType, error) {
	if err := f.hit("MeasureTypes"); err != nil {
		return nil, err
	}
	return f.types, nil
}

var _ services.API = (*fakeAPI)(nil)
