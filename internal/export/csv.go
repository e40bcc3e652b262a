package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ropboard/internal/domain"
)

// Shortlist CSV column order follows the published JSON field order.
// AI-variant fields are deliberately absent.
// Keep header order EXACT: downstream spreadsheets key on position.
var shortlistHeader = []string{
	"Course ID",
	"Title",
	"Posted",
	"Expires",
	"Terms",
	"Delivery Method",
	"Department",
	"DPT Code",
	"Openings per Term",
	"Faculty Supervisor(s)",
	"Description",
	"Student Roles",
	"Academic Outcomes",
	"Training & Mentorship",
	"Selection Criteria",
	"Required Documents",
}

// WriteShortlistCSV writes the shortlisted courses in the legacy download
// format: text cells quoted with embedded quotes doubled, sequences as a
// quoted comma-joined string, supervisors as quoted escaped JSON, absent
// values as empty cells. encoding/csv is not used here because it quotes
// minimally, and the historical files always quote populated text cells.
func WriteShortlistCSV(w io.Writer, courses []domain.Course) error {
	lines := make([]string, 0, len(courses)+1)
	lines = append(lines, strings.Join(shortlistHeader, ","))

	for _, c := range courses {
		lines = append(lines, strings.Join(shortlistRow(c), ","))
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	return nil
}

func shortlistRow(c domain.Course) []string {
	return []string{
		quoteText(c.ID),
		quoteText(c.Title),
		quoteText(c.Posted),
		quoteText(c.Expires),
		quoteSeq(c.Terms),
		quoteText(c.DeliveryMethod),
		quoteText(c.Department),
		quoteText(c.DPTCode),
		plainInt(c.OpeningsPerTerm),
		quoteJSON(supervisorMap(c.FacultySupervisors)),
		quoteText(c.Description),
		quoteText(c.StudentRoles),
		quoteText(c.AcademicOutcomes),
		quoteText(c.TrainingMentorship),
		quoteText(c.SelectionCriteria),
		quoteSeq(c.RequiredDocuments),
	}
}

// quoteText renders a text cell: empty stays empty, anything else is quoted
// with embedded quotes doubled.
func quoteText(s string) string {
	if s == "" {
		return ""
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// quoteSeq renders a sequence as one quoted comma-joined cell.
func quoteSeq(xs []string) string {
	if len(xs) == 0 {
		return ""
	}
	return quoteText(strings.Join(xs, ", "))
}

func plainInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// quoteJSON renders a structured value as quoted escaped JSON.
func quoteJSON(v any) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return quoteText(string(b))
}

// supervisorMap rebuilds the published {"1": [name, url]} object so the CSV
// cell matches what the page exported.
func supervisorMap(sups []domain.Supervisor) any {
	if len(sups) == 0 {
		return nil
	}
	m := make(map[string][]string, len(sups))
	for i, s := range sups {
		m[strconv.Itoa(i+1)] = []string{s.Name, s.URL}
	}
	return m
}
