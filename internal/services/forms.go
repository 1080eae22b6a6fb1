package services

import (
	"strings"

	"github.com/diewo77/go-duerp/internal/models"
	"github.com/diewo77/go-duerp/validation"
)

// DocumentForm holds the raw values of the document wizard and edit form.
type DocumentForm struct {
	CompanyName           string `form:"entreprise_nom" validate:"required"`
	CompanySIRET          string `form:"entreprise_siret"`
	CompanyAddress        string `form:"entreprise_adresse"`
	CompanyActivity       string `form:"entreprise_activite"`
	Headcount             string `form:"effectif"`
	EvaluationResponsible string `form:"responsable_evaluation"`
	ValidationResponsible string `form:"responsable_validation"`
	Version               string `form:"version"`
}

// NewDocumentForm returns a blank form with the default version.
func NewDocumentForm() DocumentForm {
	return DocumentForm{Version: "1.0"}
}

// DocumentFormFrom pre-fills a form from an existing document.
func DocumentFormFrom(d *models.Document) DocumentForm {
	f := DocumentForm{
		CompanyName:           d.CompanyName,
		CompanySIRET:          d.CompanySIRET,
		CompanyAddress:        d.CompanyAddress,
		CompanyActivity:       d.CompanyActivity,
		EvaluationResponsible: d.EvaluationResponsible,
		ValidationResponsible: d.ValidationResponsible,
		Version:               d.Version,
	}
	if d.Headcount != nil {
		f.Headcount = itoa(*d.Headcount)
	}
	return f
}

func (f *DocumentForm) trim() {
	f.CompanyName = strings.TrimSpace(f.CompanyName)
	f.CompanySIRET = strings.ReplaceAll(strings.TrimSpace(f.CompanySIRET), " ", "")
	f.Version = strings.TrimSpace(f.Version)
}

// Build validates the form and returns the API payload.
// An empty headcount is sent as null.
func (f DocumentForm) Build() (*models.Document, validation.Violations) {
	f.trim()
	v := validation.Struct(f)
	doc := &models.Document{
		CompanyName:           f.CompanyName,
		CompanySIRET:          f.CompanySIRET,
		CompanyAddress:        strings.TrimSpace(f.CompanyAddress),
		CompanyActivity:       strings.TrimSpace(f.CompanyActivity),
		Headcount:             validation.OptionalInt("effectif", f.Headcount, v),
		EvaluationResponsible: strings.TrimSpace(f.EvaluationResponsible),
		ValidationResponsible: strings.TrimSpace(f.ValidationResponsible),
		Version:               f.Version,
	}
	if doc.Version == "" {
		doc.Version = "1.0"
	}
	return doc, v
}

// UnitForm holds the raw values of the work unit form.
type UnitForm struct {
	Name        string `form:"nom" validate:"required"`
	Description string `form:"description"`
	Location    string `form:"localisation"`
	Employees   string `form:"nombre_employes"`
}

// UnitFormFrom pre-fills a form from an existing unit.
func UnitFormFrom(u *models.Unit) UnitForm {
	f := UnitForm{Name: u.Name, Description: u.Description, Location: u.Location}
	if u.Employees != nil {
		f.Employees = itoa(*u.Employees)
	}
	return f
}

// Ready reports whether the required fields are filled.
func (f UnitForm) Ready() bool {
	v := make(validation.Violations)
	validation.Required("nom", f.Name, v)
	return v.Empty()
}

func (f UnitForm) Build() (*models.Unit, validation.Violations) {
	f.Name = strings.TrimSpace(f.Name)
	v := validation.Struct(f)
	u := &models.Unit{
		Name:        f.Name,
		Description: strings.TrimSpace(f.Description),
		Location:    strings.TrimSpace(f.Location),
		Employees:   validation.OptionalInt("nombre_employes", f.Employees, v),
	}
	return u, v
}

// HazardForm holds the raw values of the hazard form.
type HazardForm struct {
	Category           string `form:"categorie" validate:"required"`
	SubCategory        string `form:"sous_categorie"`
	Description        string `form:"description" validate:"required"`
	DangerousSituation string `form:"situation_danger"`
	Severity           int    `form:"gravite" validate:"min=1,max=4"`
	Probability        int    `form:"probabilite" validate:"min=1,max=4"`
	ExposureFrequency  string `form:"frequence_exposition" validate:"omitempty,oneof=Permanente Fréquente Occasionnelle Rare"`
	ExposedCount       string `form:"personnes_exposees"`
	ExposedPeople      string `form:"personnes_concernees"`
}

// NewHazardForm returns a blank form with the lowest scores selected.
func NewHazardForm() HazardForm {
	return HazardForm{Severity: 1, Probability: 1}
}

func HazardFormFrom(h *models.Hazard) HazardForm {
	f := HazardForm{
		Category:           h.Category,
		SubCategory:        h.SubCategory,
		Description:        h.Description,
		DangerousSituation: h.DangerousSituation,
		Severity:           h.Severity,
		Probability:        h.Probability,
		ExposureFrequency:  h.ExposureFrequency,
		ExposedPeople:      h.ExposedPeople,
	}
	if h.ExposedCount != nil {
		f.ExposedCount = itoa(*h.ExposedCount)
	}
	return f
}

func (f HazardForm) Ready() bool {
	v := make(validation.Violations)
	validation.Required("categorie", f.Category, v)
	validation.Required("description", f.Description, v)
	return v.Empty()
}

// Criticity previews the score the server will compute.
func (f HazardForm) Criticity() int { return f.Severity * f.Probability }

func (f HazardForm) Build() (*models.Hazard, validation.Violations) {
	f.Category = strings.TrimSpace(f.Category)
	f.Description = strings.TrimSpace(f.Description)
	v := validation.Struct(f)
	h := &models.Hazard{
		Category:           f.Category,
		SubCategory:        strings.TrimSpace(f.SubCategory),
		Description:        f.Description,
		DangerousSituation: strings.TrimSpace(f.DangerousSituation),
		Severity:           f.Severity,
		Probability:        f.Probability,
		ExposureFrequency:  f.ExposureFrequency,
		ExposedCount:       validation.OptionalInt("personnes_exposees", f.ExposedCount, v),
		ExposedPeople:      strings.TrimSpace(f.ExposedPeople),
	}
	return h, v
}

// MeasureForm holds the raw values of the prevention measure form.
type MeasureForm struct {
	Type          string `form:"type_mesure" validate:"required"`
	HierarchyRank string `form:"niveau_hierarchie"`
	Description   string `form:"description" validate:"required"`
	Status        string `form:"statut" validate:"omitempty,oneof=planifié en_cours réalisé"`
	ImplementedOn string `form:"date_mise_en_oeuvre" validate:"omitempty,datetime=2006-01-02"`
	DueOn         string `form:"date_echeance" validate:"omitempty,datetime=2006-01-02"`
	Responsible   string `form:"responsable"`
	EstimatedCost string `form:"cout_estime"`
	Efficiency    string `form:"efficacite" validate:"omitempty,oneof=Faible Moyenne Bonne Excellente"`
}

func NewMeasureForm() MeasureForm {
	return MeasureForm{Status: models.MeasurePlanned}
}

func MeasureFormFrom(m *models.Measure) MeasureForm {
	f := MeasureForm{
		Type:          m.Type,
		Description:   m.Description,
		Status:        m.Status,
		ImplementedOn: dateOnly(m.ImplementedOn),
		DueOn:         dateOnly(m.DueOn),
		Responsible:   m.Responsible,
		Efficiency:    m.Efficiency,
	}
	if m.HierarchyRank != nil {
		f.HierarchyRank = itoa(*m.HierarchyRank)
	}
	if m.EstimatedCost != nil {
		f.EstimatedCost = strconvFloat(*m.EstimatedCost)
	}
	return f
}

func (f MeasureForm) Ready() bool {
	v := make(validation.Violations)
	validation.Required("type_mesure", f.Type, v)
	validation.Required("description", f.Description, v)
	return v.Empty()
}

func (f MeasureForm) Build() (*models.Measure, validation.Violations) {
	f.Type = strings.TrimSpace(f.Type)
	f.Description = strings.TrimSpace(f.Description)
	v := validation.Struct(f)
	m := &models.Measure{
		Type:          f.Type,
		HierarchyRank: validation.OptionalInt("niveau_hierarchie", f.HierarchyRank, v),
		Description:   f.Description,
		Status:        f.Status,
		ImplementedOn: f.ImplementedOn,
		DueOn:         f.DueOn,
		Responsible:   strings.TrimSpace(f.Responsible),
		EstimatedCost: validation.OptionalFloat("cout_estime", f.EstimatedCost, v),
		Efficiency:    f.Efficiency,
	}
	if m.HierarchyRank != nil {
		validation.RangeInt("niveau_hierarchie", *m.HierarchyRank, 1, 5, v)
	}
	if m.Status == "" {
		m.Status = models.MeasurePlanned
	}
	return m, v
}
