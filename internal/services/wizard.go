package services

import (
	"github.com/diewo77/go-duerp/internal/models"
	"github.com/diewo77/go-duerp/validation"
)

// Wizard steps of the document creation form.
const (
	StepCompany = iota
	StepResponsibles
	StepReview
)

// WizardSteps are the i18n codes of the step labels.
var WizardSteps = []string{"wizard_step_company", "wizard_step_responsibles", "wizard_step_review"}

// Wizard actions posted by the step buttons.
const (
	ActionNext   = "next"
	ActionPrev   = "prev"
	ActionSubmit = "submit"
)

// DocumentWizard is the three-step document creation form.
// Values typed on earlier steps travel with each post.
type DocumentWizard struct {
	Step   int
	Form   DocumentForm
	Errors validation.Violations
}

func NewDocumentWizard() *DocumentWizard {
	return &DocumentWizard{Form: NewDocumentForm()}
}

// CanAdvance reports whether "next" and "submit" are enabled.
func (w *DocumentWizard) CanAdvance() bool {
	return w.Form.missing().Empty()
}

// missing lists the fields that gate the wizard steps.
func (f DocumentForm) missing() validation.Violations {
	v := make(validation.Violations)
	validation.Required("entreprise_nom", f.CompanyName, v)
	return v
}

func (w *DocumentWizard) IsFirst() bool { return w.Step == StepCompany }
func (w *DocumentWizard) IsLast() bool  { return w.Step == StepReview }

// Apply moves the wizard according to action and reports whether the form is
// ready to be submitted.
func (w *DocumentWizard) Apply(action string) bool {
	w.Step = clampStep(w.Step)
	w.Errors = nil
	switch action {
	case ActionPrev:
		if w.Step > StepCompany {
			w.Step--
		}
	case ActionNext:
		if v := w.Form.missing(); !v.Empty() {
			w.Errors = v
			return false
		}
		if w.Step < StepReview {
			w.Step++
		}
	case ActionSubmit:
		if v := w.Form.missing(); !v.Empty() {
			w.Errors = v
			return false
		}
		return w.Step == StepReview
	}
	return false
}

// Payload validates the accumulated values and returns the create payload.
// On violations the wizard returns to the company step, where every
// validated field lives.
func (w *DocumentWizard) Payload() (*models.Document, bool) {
	doc, v := w.Form.Build()
	if v.Empty() {
		return doc, true
	}
	w.Errors = v
	w.Step = StepCompany
	return nil, false
}

func clampStep(s int) int {
	if s < StepCompany {
		return StepCompany
	}
	if s > StepReview {
		return StepReview
	}
	return s
}
