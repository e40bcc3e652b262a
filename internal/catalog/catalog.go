// Package catalog loads the published Research Opportunity Program posting
// JSON and normalizes it into the internal course model. All field-name
// variants that accumulated across page versions are resolved here, at the
// ingestion boundary, so nothing downstream has to know about them.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"

	"ropboard/internal/domain"
	"ropboard/internal/httpx"
)

// flexString accepts a JSON string or number. Posting ids were published as
// numbers in early exports and as strings later on.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = flexString(v)
		return nil
	}
	// Bare number: keep its decimal form.
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// flexInt accepts a JSON number or numeric string; anything else becomes 0.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(n)
	return nil
}

// rawCourse mirrors the published JSON record, all variants included.
type rawCourse struct {
	CourseID  flexString `json:"Course ID,omitempty"`
	PostingID flexString `json:"Posting ID,omitempty"`

	Title       string `json:"Title"`
	Description string `json:"Description"`

	Department     string   `json:"Department"`
	DPTCode        string   `json:"DPT Code,omitempty"`
	Terms          []string `json:"Terms"`
	DeliveryMethod string   `json:"Delivery Method"`

	Posted  string `json:"Posted"`
	Expires string `json:"Expires"`

	OpeningsPerTerm flexInt             `json:"Openings per Term,omitempty"`
	Supervisors     map[string][]string `json:"Faculty Supervisor(s),omitempty"`
	RequiredDocs    []string            `json:"Required Documents,omitempty"`

	StudentRoles       string `json:"Student Roles,omitempty"`
	AcademicOutcomes   string `json:"Academic Outcomes,omitempty"`
	TrainingMentorship string `json:"Training & Mentorship,omitempty"`
	SelectionCriteria  string `json:"Selection Criteria,omitempty"`

	StudentRolesAlt       string `json:"Student Roles (AI),omitempty"`
	AcademicOutcomesAlt   string `json:"Academic Outcomes (AI),omitempty"`
	TrainingMentorshipAlt string `json:"Training & Mentorship (AI),omitempty"`
	SelectionCriteriaAlt  string `json:"Selection Criteria (AI),omitempty"`
}

// Parse decodes a JSON array of posting records.
func Parse(data []byte) ([]domain.Course, error) {
	var raws []rawCourse
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("catalog: parse postings: %w", err)
	}

	courses := make([]domain.Course, 0, len(raws))
	for _, r := range raws {
		courses = append(courses, r.toCourse())
	}
	return courses, nil
}

func (r rawCourse) toCourse() domain.Course {
	id := string(r.CourseID)
	if id == "" {
		id = string(r.PostingID)
	}

	// Supervisor maps carry [name, url] pairs under arbitrary keys; sort by
	// key so the order is stable across loads.
	var sups []domain.Supervisor
	if len(r.Supervisors) > 0 {
		keys := make([]string, 0, len(r.Supervisors))
		for k := range r.Supervisors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			pair := r.Supervisors[k]
			s := domain.Supervisor{}
			if len(pair) > 0 {
				s.Name = pair[0]
			}
			if len(pair) > 1 {
				s.URL = pair[1]
			}
			if s.Name != "" {
				sups = append(sups, s)
			}
		}
	}

	return domain.Course{
		ID:                    id,
		Title:                 r.Title,
		Description:           r.Description,
		Department:            r.Department,
		DPTCode:               r.DPTCode,
		Terms:                 r.Terms,
		DeliveryMethod:        r.DeliveryMethod,
		Posted:                r.Posted,
		Expires:               r.Expires,
		OpeningsPerTerm:       int(r.OpeningsPerTerm),
		FacultySupervisors:    sups,
		RequiredDocuments:     r.RequiredDocs,
		StudentRoles:          r.StudentRoles,
		AcademicOutcomes:      r.AcademicOutcomes,
		TrainingMentorship:    r.TrainingMentorship,
		SelectionCriteria:     r.SelectionCriteria,
		StudentRolesAlt:       r.StudentRolesAlt,
		AcademicOutcomesAlt:   r.AcademicOutcomesAlt,
		TrainingMentorshipAlt: r.TrainingMentorshipAlt,
		SelectionCriteriaAlt:  r.SelectionCriteriaAlt,
	}
}

// LoadFile reads and parses a posting JSON file on disk.
func LoadFile(path string) ([]domain.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}

// FetchURL downloads and parses the posting JSON over HTTP, retrying
// transient failures. Brotli responses are accepted and decoded.
func FetchURL(ctx context.Context, client *http.Client, url string) ([]domain.Course, error) {
	if client == nil {
		client = http.DefaultClient
	}

	buildReq := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Accept-Encoding", "br")
		return req, nil
	}

	_, body, err := httpx.DoWithRetry(ctx, client, buildReq, httpx.DefaultRetryConfig())
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch %s: %w", url, err)
	}
	return Parse(body)
}

// Load resolves src as an HTTP(S) URL or a local path.
func Load(ctx context.Context, client *http.Client, src string) ([]domain.Course, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return FetchURL(ctx, client, src)
	}
	return LoadFile(src)
}

// SaveFile writes courses back out in the published JSON shape. Used by
// cmd/variants to persist an enriched catalog.
func SaveFile(path string, courses []domain.Course) error {
	raws := make([]rawCourse, 0, len(courses))
	for _, c := range courses {
		raws = append(raws, fromCourse(c))
	}

	data, err := json.MarshalIndent(raws, "", "  ")
	if err != nil {
		return fmt.Errorf("catalog: marshal postings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("catalog: write %s: %w", path, err)
	}
	return nil
}

func fromCourse(c domain.Course) rawCourse {
	var sups map[string][]string
	if len(c.FacultySupervisors) > 0 {
		sups = make(map[string][]string, len(c.FacultySupervisors))
		for i, s := range c.FacultySupervisors {
			sups[strconv.Itoa(i+1)] = []string{s.Name, s.URL}
		}
	}

	return rawCourse{
		CourseID:              flexString(c.ID),
		Title:                 c.Title,
		Description:           c.Description,
		Department:            c.Department,
		DPTCode:               c.DPTCode,
		Terms:                 c.Terms,
		DeliveryMethod:        c.DeliveryMethod,
		Posted:                c.Posted,
		Expires:               c.Expires,
		OpeningsPerTerm:       flexInt(c.OpeningsPerTerm),
		Supervisors:           sups,
		RequiredDocs:          c.RequiredDocuments,
		StudentRoles:          c.StudentRoles,
		AcademicOutcomes:      c.AcademicOutcomes,
		TrainingMentorship:    c.TrainingMentorship,
		SelectionCriteria:     c.SelectionCriteria,
		StudentRolesAlt:       c.StudentRolesAlt,
		AcademicOutcomesAlt:   c.AcademicOutcomesAlt,
		TrainingMentorshipAlt: c.TrainingMentorshipAlt,
		SelectionCriteriaAlt:  c.SelectionCriteriaAlt,
	}
}
