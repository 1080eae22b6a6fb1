package i18n

var catalog = map[string]map[string]string{
	"fr": {
		"app_name":         "DUERP Manager",
		"nav_dashboard":    "Tableau de bord",
		"nav_documents":    "Mes DUERP",
		"nav_new_document": "Nouveau DUERP",

		// validation
		"required":         "Requis",
		"must_be_number":   "Doit être un nombre",
		"must_be_positive": "Doit être positif",
		"out_of_range":     "Valeur hors limites",
		"invalid_choice":   "Choix invalide",
		"invalid_format":   "Format invalide",
		"invalid":          "Valeur invalide",

		// statuses
		"status_brouillon":         "Brouillon",
		"status_validé":            "Validé",
		"status_archivé":           "Archivé",
		"measure_status_planifié":  "Planifiée",
		"measure_status_en_cours":  "En cours",
		"measure_status_réalisé":   "Réalisée",
		"severity_1":               "Mineure",
		"severity_2":               "Moyenne",
		"severity_3":               "Grave",
		"severity_4":               "Très grave",
		"probability_1":            "Très improbable",
		"probability_2":            "Improbable",
		"probability_3":            "Probable",
		"probability_4":            "Très probable",
		"wizard_step_company":      "Informations entreprise",
		"wizard_step_responsibles": "Responsables",
		"wizard_step_review":       "Finalisation",

		// dashboard
		"dashboard_title":    "Tableau de bord",
		"dashboard_subtitle": "Vue d'ensemble de vos documents uniques d'évaluation des risques",
		"metric_total":       "Total DUERP",
		"metric_validated":   "DUERP validés",
		"metric_critical":    "Risques critiques",
		"metric_conformity":  "Taux de conformité",
		"recent_documents":   "DUERP récents",
		"quick_actions":      "Actions rapides",
		"see_all_documents":  "Voir tous les DUERP",
		"risk_scale":         "Échelle des risques",

		// documents
		"documents_title":             "Mes DUERP",
		"document":                    "DUERP",
		"new_document":                "Nouveau DUERP",
		"create_document":             "Créer le DUERP",
		"create_first_document":       "Créer mon premier DUERP",
		"no_documents":                "Aucun DUERP créé",
		"no_documents_help":           "Commencez par créer votre premier document unique d'évaluation des risques.",
		"document_created":            "DUERP créé avec succès ! Redirection...",
		"edit_document":               "Modifier le DUERP",
		"general_info":                "Informations générales",
		"company":                     "Entreprise",
		"company_name":                "Nom de l'entreprise",
		"siret":                       "SIRET",
		"headcount":                   "Effectif",
		"address":                     "Adresse",
		"activity":                    "Activité principale",
		"version":                     "Version",
		"created_on":                  "Créé le",
		"updated_on":                  "Mis à jour le",
		"next_evaluation":             "Prochaine évaluation",
		"evaluation_responsible":      "Responsable de l'évaluation",
		"evaluation_responsible_help": "Personne en charge de l'évaluation des risques",
		"validation_responsible":      "Responsable de la validation",
		"validation_responsible_help": "Personne qui valide le document (généralement le dirigeant)",
		"validator":                   "Validateur",
		"validate":                    "Valider",
		"download":                    "Télécharger",
		"format":                      "Format",
		"statistics":                  "Statistiques",
		"stats_unavailable":           "Statistiques indisponibles",
		"units":                       "Unités de travail",
		"hazards_total":               "Risques identifiés",
		"hazards_by_level":            "Risques par niveau",
		"critical_hazards":            "Risques critiques",
		"measures":                    "Mesures de prévention",
		"history":                     "Historique",
		"date":                        "Date",
		"change":                      "Modification",
		"evaluator":                   "Évaluateur",
		"summary":                     "Récapitulatif",

		// units
		"work_unit":                    "Unité de travail",
		"work_units":                   "Unités de travail",
		"add_unit":                     "Ajouter une unité",
		"new_unit_title":               "Nouvelle unité de travail",
		"create_unit":                  "Créer",
		"edit_unit":                    "Modifier l'unité de travail",
		"unit_name":                    "Nom de l'unité",
		"unit_name_placeholder":        "Ex : Atelier de production",
		"unit_description_placeholder": "Décrivez les activités réalisées dans cette unité",
		"location":                     "Localisation",
		"location_placeholder":         "Ex : Bâtiment A, 1er étage",
		"employees":                    "Nombre d'employés",
		"no_units":                     "Aucune unité de travail. Ajoutez-en une pour commencer l'évaluation.",

		// hazards
		"hazard":              "Risque",
		"hazards":             "Risques",
		"add_hazard":          "Ajouter un risque",
		"new_hazard_title":    "Nouveau risque",
		"create_hazard":       "Créer",
		"edit_hazard":         "Modifier le risque",
		"category":            "Catégorie",
		"sub_category":        "Sous-catégorie",
		"dangerous_situation": "Situation dangereuse",
		"severity":            "Gravité",
		"probability":         "Probabilité",
		"criticity":           "Criticité",
		"level":               "Niveau",
		"exposure_frequency":  "Fréquence d'exposition",
		"exposed_count":       "Personnes exposées",
		"exposed_people":      "Personnes concernées",
		"no_hazards":          "Aucun risque identifié pour cette unité.",

		// measures
		"prevention_measures": "Mesures de prévention",
		"add_measure":         "Ajouter une mesure",
		"new_measure_title":   "Nouvelle mesure de prévention",
		"create_measure":      "Créer",
		"measure_type":        "Type de mesure",
		"hierarchy_rank":      "Niveau de hiérarchie",
		"hierarchy_rank_help": "1 = suppression du risque, 5 = protection individuelle",
		"responsible":         "Responsable",
		"implemented_on":      "Date de mise en œuvre",
		"due_on":              "Échéance",
		"estimated_cost":      "Coût estimé (€)",
		"efficiency":          "Efficacité",
		"no_measures":         "Aucune mesure de prévention pour ce risque.",

		// common
		"back":         "Retour",
		"back_home":    "Retour à l'accueil",
		"cancel":       "Annuler",
		"save":         "Enregistrer",
		"edit":         "Modifier",
		"delete":       "Supprimer",
		"update":       "Mettre à jour",
		"open":         "Ouvrir",
		"next":         "Suivant",
		"previous":     "Précédent",
		"description":  "Description",
		"status":       "Statut",
		"not_provided": "Non renseigné",
		"not_set":      "Non évalué",
		"irreversible": "Cette action est irréversible.",

		// confirmations
		"confirm_delete_document_title": "Supprimer le DUERP",
		"confirm_delete_document":       "Êtes-vous sûr de vouloir supprimer le DUERP « %s » et toutes ses données ?",
		"confirm_delete_unit_title":     "Supprimer l'unité de travail",
		"confirm_delete_unit":           "Êtes-vous sûr de vouloir supprimer l'unité « %s » et tous ses risques ?",
		"confirm_delete_hazard_title":   "Supprimer le risque",
		"confirm_delete_hazard":         "Êtes-vous sûr de vouloir supprimer le risque « %s » ?",
		"confirm_delete_measure_title":  "Supprimer la mesure",
		"confirm_delete_measure":        "Êtes-vous sûr de vouloir supprimer la mesure « %s » ?",

		// errors
		"error_generic":         "Une erreur est survenue",
		"error_load_dashboard":  "Impossible de charger le tableau de bord",
		"error_load_documents":  "Impossible de charger la liste des DUERP",
		"error_load_document":   "Impossible de charger le DUERP",
		"error_load_unit":       "Impossible de charger l'unité de travail",
		"error_load_hazard":     "Impossible de charger le risque",
		"document_not_found":    "DUERP introuvable",
		"unit_not_found":        "Unité de travail introuvable",
		"hazard_not_found":      "Risque introuvable",
		"measure_not_found":     "Mesure introuvable",
		"page_not_found":        "Page introuvable",
		"error_create_document": "Une erreur est survenue lors de la création du DUERP",
		"error_create_unit":     "Erreur lors de la création de l'unité de travail",
		"error_create_hazard":   "Erreur lors de la création du risque",
		"error_create_measure":  "Erreur lors de la création de la mesure",
		"error_update":          "Erreur lors de l'enregistrement",
		"error_delete":          "Erreur lors de la suppression",
		"error_validate":        "Erreur lors de la validation du DUERP",
		"error_download":        "Erreur lors du téléchargement du document",
		"error_form_invalid":    "Le formulaire contient des erreurs",

		// flashes
		"flash_document_updated":   "DUERP mis à jour",
		"flash_document_deleted":   "DUERP supprimé",
		"flash_document_validated": "DUERP validé",
		"flash_unit_created":       "Unité de travail créée",
		"flash_unit_updated":       "Unité de travail mise à jour",
		"flash_unit_deleted":       "Unité de travail supprimée",
		"flash_hazard_created":     "Risque ajouté",
		"flash_hazard_updated":     "Risque mis à jour",
		"flash_hazard_deleted":     "Risque supprimé",
		"flash_measure_created":    "Mesure de prévention ajoutée",
		"flash_measure_updated":    "Statut de la mesure mis à jour",
		"flash_measure_deleted":    "Mesure de prévention supprimée",
	},
	"en": {
		"app_name":         "DUERP Manager",
		"nav_dashboard":    "Dashboard",
		"nav_documents":    "My DUERPs",
		"nav_new_document": "New DUERP",

		"required":         "Required",
		"must_be_number":   "Must be a number",
		"must_be_positive": "Must be positive",
		"out_of_range":     "Out of range",
		"invalid_choice":   "Invalid choice",
		"invalid_format":   "Invalid format",
		"invalid":          "Invalid value",

		"status_brouillon":         "Draft",
		"status_validé":            "Validated",
		"status_archivé":           "Archived",
		"measure_status_planifié":  "Planned",
		"measure_status_en_cours":  "In progress",
		"measure_status_réalisé":   "Done",
		"severity_1":               "Minor",
		"severity_2":               "Medium",
		"severity_3":               "Serious",
		"severity_4":               "Very serious",
		"probability_1":            "Very unlikely",
		"probability_2":            "Unlikely",
		"probability_3":            "Likely",
		"probability_4":            "Very likely",
		"wizard_step_company":      "Company information",
		"wizard_step_responsibles": "Responsible parties",
		"wizard_step_review":       "Review",

		"dashboard_title":    "Dashboard",
		"dashboard_subtitle": "Overview of your workplace risk assessments",
		"metric_total":       "Total DUERPs",
		"metric_validated":   "Validated DUERPs",
		"metric_critical":    "Critical hazards",
		"metric_conformity":  "Conformity rate",
		"recent_documents":   "Recent DUERPs",
		"quick_actions":      "Quick actions",
		"see_all_documents":  "See all DUERPs",
		"risk_scale":         "Risk scale",

		"documents_title":             "My DUERPs",
		"document":                    "DUERP",
		"new_document":                "New DUERP",
		"create_document":             "Create DUERP",
		"create_first_document":       "Create my first DUERP",
		"no_documents":                "No DUERP yet",
		"no_documents_help":           "Start by creating your first risk assessment document.",
		"document_created":            "DUERP created! Redirecting...",
		"edit_document":               "Edit DUERP",
		"general_info":                "General information",
		"company":                     "Company",
		"company_name":                "Company name",
		"siret":                       "SIRET",
		"headcount":                   "Headcount",
		"address":                     "Address",
		"activity":                    "Main activity",
		"version":                     "Version",
		"created_on":                  "Created on",
		"updated_on":                  "Updated on",
		"next_evaluation":             "Next evaluation",
		"evaluation_responsible":      "Evaluation owner",
		"evaluation_responsible_help": "Person in charge of the risk assessment",
		"validation_responsible":      "Validation owner",
		"validation_responsible_help": "Person who signs off the document (usually the manager)",
		"validator":                   "Validator",
		"validate":                    "Validate",
		"download":                    "Download",
		"format":                      "Format",
		"statistics":                  "Statistics",
		"stats_unavailable":           "Statistics unavailable",
		"units":                       "Work units",
		"hazards_total":               "Identified hazards",
		"hazards_by_level":            "Hazards by level",
		"critical_hazards":            "Critical hazards",
		"measures":                    "Prevention measures",
		"history":                     "History",
		"date":                        "Date",
		"change":                      "Change",
		"evaluator":                   "Evaluator",
		"summary":                     "Summary",

		"work_unit":                    "Work unit",
		"work_units":                   "Work units",
		"add_unit":                     "Add a unit",
		"new_unit_title":               "New work unit",
		"create_unit":                  "Create",
		"edit_unit":                    "Edit work unit",
		"unit_name":                    "Unit name",
		"unit_name_placeholder":        "e.g. Production workshop",
		"unit_description_placeholder": "Describe the activities carried out in this unit",
		"location":                     "Location",
		"location_placeholder":         "e.g. Building A, 1st floor",
		"employees":                    "Employees",
		"no_units":                     "No work unit yet. Add one to start the assessment.",

		"hazard":              "Hazard",
		"hazards":             "Hazards",
		"add_hazard":          "Add a hazard",
		"new_hazard_title":    "New hazard",
		"create_hazard":       "Create",
		"edit_hazard":         "Edit hazard",
		"category":            "Category",
		"sub_category":        "Sub-category",
		"dangerous_situation": "Dangerous situation",
		"severity":            "Severity",
		"probability":         "Probability",
		"criticity":           "Criticity",
		"level":               "Level",
		"exposure_frequency":  "Exposure frequency",
		"exposed_count":       "Exposed people",
		"exposed_people":      "People concerned",
		"no_hazards":          "No hazard identified for this unit.",

		"prevention_measures": "Prevention measures",
		"add_measure":         "Add a measure",
		"new_measure_title":   "New prevention measure",
		"create_measure":      "Create",
		"measure_type":        "Measure type",
		"hierarchy_rank":      "Hierarchy rank",
		"hierarchy_rank_help": "1 = remove the hazard, 5 = personal protection",
		"responsible":         "Owner",
		"implemented_on":      "Implemented on",
		"due_on":              "Due",
		"estimated_cost":      "Estimated cost (€)",
		"efficiency":          "Efficiency",
		"no_measures":         "No prevention measure for this hazard.",

		"back":         "Back",
		"back_home":    "Back to home",
		"cancel":       "Cancel",
		"save":         "Save",
		"edit":         "Edit",
		"delete":       "Delete",
		"update":       "Update",
		"open":         "Open",
		"next":         "Next",
		"previous":     "Previous",
		"description":  "Description",
		"status":       "Status",
		"not_provided": "Not provided",
		"not_set":      "Not assessed",
		"irreversible": "This cannot be undone.",

		"confirm_delete_document_title": "Delete DUERP",
		"confirm_delete_document":       "Delete the DUERP \"%s\" and all of its data?",
		"confirm_delete_unit_title":     "Delete work unit",
		"confirm_delete_unit":           "Delete the unit \"%s\" and all of its hazards?",
		"confirm_delete_hazard_title":   "Delete hazard",
		"confirm_delete_hazard":         "Delete the hazard \"%s\"?",
		"confirm_delete_measure_title":  "Delete measure",
		"confirm_delete_measure":        "Delete the measure \"%s\"?",

		"error_generic":         "Something went wrong",
		"error_load_dashboard":  "Unable to load the dashboard",
		"error_load_documents":  "Unable to load the DUERP list",
		"error_load_document":   "Unable to load the DUERP",
		"error_load_unit":       "Unable to load the work unit",
		"error_load_hazard":     "Unable to load the hazard",
		"document_not_found":    "DUERP not found",
		"unit_not_found":        "Work unit not found",
		"hazard_not_found":      "Hazard not found",
		"measure_not_found":     "Measure not found",
		"page_not_found":        "Page not found",
		"error_create_document": "Something went wrong while creating the DUERP",
		"error_create_unit":     "Could not create the work unit",
		"error_create_hazard":   "Could not create the hazard",
		"error_create_measure":  "Could not create the measure",
		"error_update":          "Could not save the changes",
		"error_delete":          "Could not delete",
		"error_validate":        "Could not validate the DUERP",
		"error_download":        "Could not download the document",
		"error_form_invalid":    "The form contains errors",

		"flash_document_updated":   "DUERP updated",
		"flash_document_deleted":   "DUERP deleted",
		"flash_document_validated": "DUERP validated",
		"flash_unit_created":       "Work unit created",
		"flash_unit_updated":       "Work unit updated",
		"flash_unit_deleted":       "Work unit deleted",
		"flash_hazard_created":     "Hazard added",
		"flash_hazard_updated":     "Hazard updated",
		"flash_hazard_deleted":     "Hazard deleted",
		"flash_measure_created":    "Prevention measure added",
		"flash_measure_updated":    "Measure status updated",
		"flash_measure_deleted":    "Prevention measure deleted",
	},
}
