package domain

// Course is the canonical representation of a Research Opportunity Program
// posting inside this toolkit. The catalog loader maps the published JSON
// (with its historical field-name variants) into this model, and every
// destination (HTML page, CSV/XLSX export, email digest) maps from it.
type Course struct {
	ID          string // normalized posting id ("Course ID" / "Posting ID")
	Title       string
	Description string

	Department     string
	DPTCode        string
	Terms          []string // non-unique across courses, a course may list several
	DeliveryMethod string

	Posted  string // calendar dates, ISO strings as published
	Expires string

	OpeningsPerTerm    int
	FacultySupervisors []Supervisor
	RequiredDocuments  []string

	StudentRoles       string
	AcademicOutcomes   string
	TrainingMentorship string
	SelectionCriteria  string

	// Plain-language rewrites of the four text fields above. Empty until
	// cmd/variants fills them in; never included in CSV/XLSX exports.
	StudentRolesAlt       string
	AcademicOutcomesAlt   string
	TrainingMentorshipAlt string
	SelectionCriteriaAlt  string
}

// Supervisor is one faculty supervisor with an optional profile link.
type Supervisor struct {
	Name string
	URL  string
}

// HasTerm reports whether the course lists the given term.
func (c Course) HasTerm(term string) bool {
	for _, t := range c.Terms {
		if t == term {
			return true
		}
	}
	return false
}
