package services

import (
	"context"
	"errors"

	"github.com/diewo77/go-duerp/internal/apiclient"
	"github.com/diewo77/go-duerp/internal/models"
	"github.com/diewo77/go-duerp/validation"
)

// ErrInvalidForm is returned by Submit when the form has field violations.
var ErrInvalidForm = errors.New("services: invalid form")

// Builder is a form that validates itself and builds an API payload.
type Builder[P any] interface {
	Build() (P, validation.Violations)
	Ready() bool
}

// CreateModal is a create dialog owned by a parent page.
//
// On success the form is reset, the success callback runs exactly once and the
// dialog closes. On failure the dialog stays open with the typed values and an
// inline error.
type CreateModal[F Builder[P], P any] struct {
	Open   bool
	Form   F
	Errors validation.Violations
	Error  string

	blank     F
	fallback  string
	create    func(ctx context.Context, payload P) error
	onSuccess func()
}

func newCreateModal[F Builder[P], P any](blank F, fallback string, create func(context.Context, P) error, onSuccess func()) *CreateModal[F, P] {
	return &CreateModal[F, P]{
		Form:      blank,
		blank:     blank,
		fallback:  fallback,
		create:    create,
		onSuccess: onSuccess,
	}
}

// Show opens the dialog.
func (m *CreateModal[F, P]) Show() { m.Open = true }

// Close closes the dialog and clears any error.
func (m *CreateModal[F, P]) Close() {
	m.Open = false
	m.Error = ""
	m.Errors = nil
}

// CanSubmit reports whether the submit button is enabled.
func (m *CreateModal[F, P]) CanSubmit() bool { return m.Form.Ready() }

// Submit validates form and creates the record.
func (m *CreateModal[F, P]) Submit(ctx context.Context, form F) error {
	m.Open = true
	m.Form = form
	m.Error = ""
	payload, v := form.Build()
	if !v.Empty() {
		m.Errors = v
		return ErrInvalidForm
	}
	m.Errors = nil
	if err := m.create(ctx, payload); err != nil {
		m.Error = apiclient.ErrorMessage(err, m.fallback)
		return err
	}
	m.Form = m.blank
	if m.onSuccess != nil {
		m.onSuccess()
	}
	m.Close()
	return nil
}

type (
	UnitModal    = CreateModal[UnitForm, *models.Unit]
	HazardModal  = CreateModal[HazardForm, *models.Hazard]
	MeasureModal = CreateModal[MeasureForm, *models.Measure]
)

// NewUnitModal returns the "new work unit" dialog of a document.
func NewUnitModal(api UnitAPI, documentID int, fallback string, onSuccess func()) *UnitModal {
	return newCreateModal(UnitForm{}, fallback, func(ctx context.Context, u *models.Unit) error {
		u.DocumentID = documentID
		_, err := api.CreateUnit(ctx, u)
		return err
	}, onSuccess)
}

// NewHazardModal returns the "new hazard" dialog of a work unit.
func NewHazardModal(api HazardAPI, unitID int, fallback string, onSuccess func()) *HazardModal {
	return newCreateModal(NewHazardForm(), fallback, func(ctx context.Context, h *models.Hazard) error {
		h.UnitID = unitID
		_, err := api.CreateHazard(ctx, h)
		return err
	}, onSuccess)
}

// NewMeasureModal returns the "new prevention measure" dialog of a hazard.
func NewMeasureModal(api MeasureAPI, hazardID int, fallback string, onSuccess func()) *MeasureModal {
	return newCreateModal(NewMeasureForm(), fallback, func(ctx context.Context, m *models.Measure) error {
		m.HazardID = hazardID
		_, err := api.CreateMeasure(ctx, m)
		return err
	}, onSuccess)
}
