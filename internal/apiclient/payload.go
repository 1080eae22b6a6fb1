package apiclient

import "github.com/diewo77/go-duerp/internal/models"

// The update payloads always carry the editable fields so that a blank form
// value clears the stored one. Server-owned fields are left out.

type documentUpdate struct {
	CompanyName           string `json:"entreprise_nom"`
	CompanySIRET          string `json:"entreprise_siret"`
	CompanyAddress        string `json:"entreprise_adresse"`
	CompanyActivity       string `json:"entreprise_activite"`
	Headcount             *int   `json:"effectif"`
	Version               string `json:"version,omitempty"`
	EvaluationResponsible string `json:"responsable_evaluation"`
	ValidationResponsible string `json:"responsable_validation"`
}

func newDocumentUpdate(d *models.Document) documentUpdate {
	return documentUpdate{
		CompanyName:           d.CompanyName,
		CompanySIRET:          d.CompanySIRET,
		CompanyAddress:        d.CompanyAddress,
		CompanyActivity:       d.CompanyActivity,
		Headcount:             d.Headcount,
		Version:               d.Version,
		EvaluationResponsible: d.EvaluationResponsible,
		ValidationResponsible: d.ValidationResponsible,
	}
}

type unitUpdate struct {
	Name        string `json:"nom"`
	Description string `json:"description"`
	Location    string `json:"localisation"`
	Employees   *int   `json:"nombre_employes"`
}

func newUnitUpdate(u *models.Unit) unitUpdate {
	return unitUpdate{Name: u.Name, Description: u.Description, Location: u.Location, Employees: u.Employees}
}

type hazardUpdate struct {
	Category           string `json:"categorie"`
	SubCategory        string `json:"sous_categorie"`
	Description        string `json:"description"`
	DangerousSituation string `json:"situation_danger"`
	Severity           int    `json:"gravite,omitempty"`
	Probability        int    `json:"probabilite,omitempty"`
	ExposureFrequency  string `json:"frequence_exposition"`
	ExposedCount       *int   `json:"personnes_exposees"`
	ExposedPeople      string `json:"personnes_concernees"`
}

func newHazardUpdate(h *models.Hazard) hazardUpdate {
	return hazardUpdate{
		Category:           h.Category,
		SubCategory:        h.SubCategory,
		Description:        h.Description,
		DangerousSituation: h.DangerousSituation,
		Severity:           h.Severity,
		Probability:        h.Probability,
		ExposureFrequency:  h.ExposureFrequency,
		ExposedCount:       h.ExposedCount,
		ExposedPeople:      h.ExposedPeople,
	}
}

// A blank status is never a valid measure status, so it stays optional.
type measureUpdate struct {
	Type          string   `json:"type_mesure"`
	HierarchyRank *int     `json:"niveau_hierarchie"`
	Description   string   `json:"description"`
	Status        string   `json:"statut,omitempty"`
	ImplementedOn string   `json:"date_mise_en_oeuvre"`
	DueOn         string   `json:"date_echeance"`
	Responsible   string   `json:"responsable"`
	EstimatedCost *float64 `json:"cout_estime"`
	Efficiency    string   `json:"efficacite"`
}

func newMeasureUpdate(m *models.Measure) measureUpdate {
	return measureUpdate{
		Type:          m.Type,
		HierarchyRank: m.HierarchyRank,
		Description:   m.Description,
		Status:        m.Status,
		ImplementedOn: m.ImplementedOn,
		DueOn:         m.DueOn,
		Responsible:   m.Responsible,
		EstimatedCost: m.EstimatedCost,
		Efficiency:    m.Efficiency,
	}
}
