package apiclient

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/diewo77/go-duerp/internal/models"
)

// Document formats accepted by GenerateDocument.
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

// ListDocuments returns every document.
func (c *Client) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return call[[]models.Document](ctx, c, "duerp.list", http.MethodGet, "/duerp/", nil)
}

// GetDocument returns one document with its units, hazards and measures.
func (c *Client) GetDocument(ctx context.Context, id int) (*models.Document, error) {
	return call[*models.Document](ctx, c, "duerp.get", http.MethodGet, fmt.Sprintf("/duerp/%d", id), nil)
}

// CreateDocument creates a document and returns it with its server id.
func (c *Client) CreateDocument(ctx context.Context, doc *models.Document) (*models.Document, error) {
	return call[*models.Document](ctx, c, "duerp.create", http.MethodPost, "/duerp/", doc)
}

// UpdateDocument replaces the editable fields of a document; blank strings clear them.
func (c *Client) UpdateDocument(ctx context.Context, id int, doc *models.Document) (*models.Document, error) {
	return call[*models.Document](ctx, c, "duerp.update", http.MethodPut, fmt.Sprintf("/duerp/%d", id), newDocumentUpdate(doc))
}

func (c *Client) DeleteDocument(ctx context.Context, id int) error {
	return exec(ctx, c, "duerp.delete", http.MethodDelete, fmt.Sprintf("/duerp/%d", id), nil)
}

// ValidateDocument moves a document to the validated status on behalf of validator.
// An empty validator lets the server use the document's validation responsible.
func (c *Client) ValidateDocument(ctx context.Context, id int, validator string) (*models.Document, error) {
	body := map[string]string{}
	if validator != "" {
		body["validateur"] = validator
	}
	return call[*models.Document](ctx, c, "duerp.validate", http.MethodPost, fmt.Sprintf("/duerp/%d/validate", id), body)
}

func (c *Client) DocumentStats(ctx context.Context, id int) (*models.Stats, error) {
	return call[*models.Stats](ctx, c, "duerp.stats", http.MethodGet, fmt.Sprintf("/duerp/%d/stats", id), nil)
}

func (c *Client) DocumentHistory(ctx context.Context, id int) ([]models.HistoryEntry, error) {
	return call[[]models.HistoryEntry](ctx, c, "duerp.history", http.MethodGet, fmt.Sprintf("/duerp/%d/history", id), nil)
}

// GeneratedFile is a rendered document returned by the API.
type GeneratedFile struct {
	Data        []byte
	ContentType string
	Filename    string // from Content-Disposition, may be empty
}

// GenerateDocument asks the API to render a document as pdf or docx.
func (c *Client) GenerateDocument(ctx context.Context, id int, format string) (*GeneratedFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatPDF
	}
	if format != FormatPDF && format != FormatDOCX {
		return nil, ErrUnsupportedFormat
	}
	res, err := c.send(ctx, "duerp.generate", http.MethodPost, fmt.Sprintf("/duerp/%d/generate", id), map[string]string{"format": format})
	if err != nil {
		return nil, err
	}
	f := &GeneratedFile{Data: res.body, ContentType: res.contentType}
	if f.ContentType == "" || strings.HasPrefix(f.ContentType, "application/octet-stream") {
		f.ContentType = mimetype.Detect(res.body).String()
	}
	if res.disposition != "" {
		if _, params, err := mime.ParseMediaType(res.disposition); err == nil {
			f.Filename = params["filename"]
		}
	}
	return f, nil
}
