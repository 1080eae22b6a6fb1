package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/diewo77/go-duerp/internal/apiclient"
	"github.com/diewo77/go-duerp/internal/logging"
	"github.com/diewo77/go-duerp/internal/models"
	"github.com/diewo77/go-duerp/internal/viewstate"
)

// ErrNotFound is reported when the API answers without the requested record.
var ErrNotFound = errors.New("services: not found")

// DocumentDetail is the data behind the document page.
// Stats and History are nil when their loads failed.
type DocumentDetail struct {
	Document *models.Document
	Stats    *models.Stats
	History  []models.HistoryEntry
}

type DocumentService struct {
	api    DocumentAPI
	units  UnitAPI
	logger *logrus.Logger
}

func NewDocumentService(api DocumentAPI, units UnitAPI, logger *logrus.Logger) *DocumentService {
	return &DocumentService{api: api, units: units, logger: logger}
}

func (s *DocumentService) log(ctx context.Context) *logrus.Entry {
	return logging.FromContext(ctx, s.logger)
}

// List loads every document.
func (s *DocumentService) List(ctx context.Context) viewstate.State[[]models.Document] {
	docs, err := s.api.ListDocuments(ctx)
	if err != nil {
		s.log(ctx).WithError(err).Warn("list documents failed")
	}
	return viewstate.From(docs, err)
}

// LoadDetail fetches the document, its stats and its history concurrently.
// Only a document failure fails the page; the other loads are logged and dropped.
func (s *DocumentService) LoadDetail(ctx context.Context, id int) viewstate.State[*DocumentDetail] {
	var (
		detail DocumentDetail
		docErr error
	)
	var g errgroup.Group
	g.Go(func() error {
		detail.Document, docErr = s.api.GetDocument(ctx, id)
		return nil
	})
	g.Go(func() error {
		stats, err := s.api.DocumentStats(ctx, id)
		if err != nil {
			s.log(ctx).WithError(err).WithField("duerp_id", id).Warn("load stats failed")
			return nil
		}
		detail.Stats = stats
		return nil
	})
	g.Go(func() error {
		history, err := s.api.DocumentHistory(ctx, id)
		if err != nil {
			s.log(ctx).WithError(err).WithField("duerp_id", id).Warn("load history failed")
			return nil
		}
		detail.History = history
		return nil
	})
	_ = g.Wait()

	if docErr != nil {
		return viewstate.NewFailed[*DocumentDetail](docErr)
	}
	if detail.Document == nil {
		return viewstate.NewFailed[*DocumentDetail](ErrNotFound)
	}
	return viewstate.NewReady(&detail)
}

// Get loads a single document.
func (s *DocumentService) Get(ctx context.Context, id int) (*models.Document, error) {
	doc, err := s.api.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

// Create sends the wizard form as one payload.
func (s *DocumentService) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	created, err := s.api.CreateDocument(ctx, doc)
	if err != nil {
		return nil, err
	}
	if created == nil || created.ID == 0 {
		return nil, errors.New("services: created document has no id")
	}
	return created, nil
}

func (s *DocumentService) Update(ctx context.Context, id int, doc *models.Document) error {
	_, err := s.api.UpdateDocument(ctx, id, doc)
	return err
}

func (s *DocumentService) Delete(ctx context.Context, id int) error {
	return s.api.DeleteDocument(ctx, id)
}

func (s *DocumentService) Validate(ctx context.Context, id int, validator string) error {
	_, err := s.api.ValidateDocument(ctx, id, strings.TrimSpace(validator))
	return err
}

// RemoveUnit deletes a work unit once the user confirmed, then runs reload
// exactly once. Without confirmation nothing is called.
func (s *DocumentService) RemoveUnit(ctx context.Context, unitID int, confirmed bool, reload func()) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if err := s.units.DeleteUnit(ctx, unitID); err != nil {
		return false, err
	}
	if reload != nil {
		reload()
	}
	return true, nil
}

// Download is a generated document ready to be sent to the browser.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Download renders the document in format through the API.
func (s *DocumentService) Download(ctx context.Context, id int, format string) (*Download, error) {
	if format == "" {
		format = apiclient.FormatPDF
	}
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	f, err := s.api.GenerateDocument(ctx, id, format)
	if err != nil {
		return nil, err
	}
	return &Download{
		Filename:    DownloadName(doc, format),
		ContentType: f.ContentType,
		Data:        f.Data,
	}, nil
}

var unsafeFilename = regexp.MustCompile(`[\\/:*?"<>|\r\n]+`)

// DownloadName builds DUERP_{company}_{version}.{format}.
func DownloadName(doc *models.Document, format string) string {
	name := unsafeFilename.ReplaceAllString(doc.CompanyName, "_")
	return fmt.Sprintf("DUERP_%s_%s.%s", name, doc.Version, format)
}
