// Package models holds the records exchanged with the DUERP REST API.
// Field names follow the API's JSON payloads; the server owns every invariant.
package models

// Document statuses.
const (
	StatusDraft     = "brouillon"
	StatusValidated = "validé"
	StatusArchived  = "archivé"
)

// ExposureFrequencies are the accepted values of Hazard.ExposureFrequency.
var ExposureFrequencies = []string{"Permanente", "Fréquente", "Occasionnelle", "Rare"}

// Document is a DUERP: one company's risk-assessment record.
type Document struct {
	ID                    int    `json:"id"`
	CompanyName           string `json:"entreprise_nom"`
	CompanySIRET          string `json:"entreprise_siret,omitempty"`
	CompanyAddress        string `json:"entreprise_adresse,omitempty"`
	CompanyActivity       string `json:"entreprise_activite,omitempty"`
	Headcount             *int   `json:"effectif"`
	Version               string `json:"version,omitempty"`
	CreatedAt             string `json:"date_creation,omitempty"`
	UpdatedAt             string `json:"date_derniere_maj,omitempty"`
	NextEvaluation        string `json:"date_prochaine_evaluation,omitempty"`
	EvaluationResponsible string `json:"responsable_evaluation,omitempty"`
	ValidationResponsible string `json:"responsable_validation,omitempty"`
	Status                string `json:"statut,omitempty"`
	Units                 []Unit `json:"unites_travail,omitempty"`
}

// IsValidated reports whether the document reached the validated status.
func (d *Document) IsValidated() bool { return d.Status == StatusValidated }

// HazardCount returns the number of hazards across all units.
func (d *Document) HazardCount() int {
	n := 0
	for _, u := range d.Units {
		n += len(u.Hazards)
	}
	return n
}

// Unit is a work unit of a document.
type Unit struct {
	ID          int      `json:"id"`
	DocumentID  int      `json:"duerp_id,omitempty"`
	Name        string   `json:"nom"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"localisation,omitempty"`
	Employees   *int     `json:"nombre_employes"`
	Hazards     []Hazard `json:"risques,omitempty"`
}

// Hazard is an identified risk within a work unit.
type Hazard struct {
	ID                 int       `json:"id"`
	UnitID             int       `json:"unite_travail_id,omitempty"`
	Category           string    `json:"categorie"`
	SubCategory        string    `json:"sous_categorie,omitempty"`
	Description        string    `json:"description"`
	DangerousSituation string    `json:"situation_danger,omitempty"`
	Severity           int       `json:"gravite,omitempty"`
	Probability        int       `json:"probabilite,omitempty"`
	ExposureFrequency  string    `json:"frequence_exposition,omitempty"`
	Criticity          int       `json:"criticite,omitempty"`
	Level              string    `json:"niveau_risque,omitempty"`
	ExposedCount       *int      `json:"personnes_exposees"`
	ExposedPeople      string    `json:"personnes_concernees,omitempty"`
	Measures           []Measure `json:"mesures_prevention,omitempty"`
}

// DisplayLevel returns the server-provided level, or the level derived from
// severity and probability when the server left it empty.
func (h *Hazard) DisplayLevel() string {
	if h.Level != "" {
		return h.Level
	}
	c := h.Criticity
	if c == 0 {
		c = h.Severity * h.Probability
	}
	if c == 0 {
		return ""
	}
	return LevelFor(c)
}

// Measure statuses.
const (
	MeasurePlanned    = "planifié"
	MeasureInProgress = "en_cours"
	MeasureDone       = "réalisé"
)

// MeasureStatuses lists the measure statuses in workflow order.
var MeasureStatuses = []string{MeasurePlanned, MeasureInProgress, MeasureDone}

// Efficiencies are the accepted values of Measure.Efficiency.
var Efficiencies = []string{"Faible", "Moyenne", "Bonne", "Excellente"}

// Measure is a prevention measure attached to a hazard.
type Measure struct {
	ID            int      `json:"id"`
	HazardID      int      `json:"risque_id,omitempty"`
	Type          string   `json:"type_mesure"`
	HierarchyRank *int     `json:"niveau_hierarchie"`
	Description   string   `json:"description"`
	Status        string   `json:"statut,omitempty"`
	ImplementedOn string   `json:"date_mise_en_oeuvre,omitempty"`
	DueOn         string   `json:"date_echeance,omitempty"`
	Responsible   string   `json:"responsable,omitempty"`
	EstimatedCost *float64 `json:"cout_estime"`
	Efficiency    string   `json:"efficacite,omitempty"`
}

// HazardCategory is one entry of the server's hazard category catalogue.
type HazardCategory struct {
	Name     string   `json:"nom"`
	Examples []string `json:"exemples"`
}

// MeasureType is one rank of the prevention hierarchy.
type MeasureType struct {
	Rank        int    `json:"niveau"`
	Type        string `json:"type"`
	Description string `json:"description"`
}
