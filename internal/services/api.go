package services

import (
	"context"

	"github.com/diewo77/go-duerp/internal/apiclient"
	"github.com/diewo77/go-duerp/internal/models"
)

// DocumentAPI is the subset of the API client used for documents.
type DocumentAPI interface {
	ListDocuments(ctx context.Context) ([]models.Document, error)
	GetDocument(ctx context.Context, id int) (*models.Document, error)
	CreateDocument(ctx context.Context, doc *models.Document) (*models.Document, error)
	UpdateDocument(ctx context.Context, id int, doc *models.Document) (*models.Document, error)
	DeleteDocument(ctx context.Context, id int) error
	ValidateDocument(ctx context.Context, id int, validator string) (*models.Document, error)
	DocumentStats(ctx context.Context, id int) (*models.Stats, error)
	DocumentHistory(ctx context.Context, id int) ([]models.HistoryEntry, error)
	GenerateDocument(ctx context.Context, id int, format string) (*apiclient.GeneratedFile, error)
}

type UnitAPI interface {
	CreateUnit(ctx context.Context, u *models.Unit) (*models.Unit, error)
	GetUnit(ctx context.Context, id int) (*models.Unit, error)
	UpdateUnit(ctx context.Context, id int, u *models.Unit) (*models.Unit, error)
	DeleteUnit(ctx context.Context, id int) error
}

type HazardAPI interface {
	CreateHazard(ctx context.Context, h *models.Hazard) (*models.Hazard, error)
	GetHazard(ctx context.Context, id int) (*models.Hazard, error)
	UpdateHazard(ctx context.Context, id int, h *models.Hazard) (*models.Hazard, error)
	DeleteHazard(ctx context.Context, id int) error
	HazardCategories(ctx context.Context) ([]models.HazardCategory, error)
}

type MeasureAPI interface {
	CreateMeasure(ctx context.Context, m *models.Measure) (*models.Measure, error)
	GetMeasure(ctx context.Context, id int) (*models.Measure, error)
	UpdateMeasure(ctx context.Context, id int, m *models.Measure) (*models.Measure, error)
	DeleteMeasure(ctx context.Context, id int) error
	MeasureTypes(ctx context.Context) ([]models.MeasureType, error)
}

// API is everything the pages need from the REST API.
type API interface {
	DocumentAPI
	UnitAPI
	HazardAPI
	MeasureAPI
}

var _ API = (*apiclient.Client)(nil)
