package export

import (
	"strings"
	"testing"

	"ropboard/internal/domain"
)

func TestQuoteText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain", `"plain"`},
		{`say "hi"`, `"say ""hi"""`},
		{"line1\nline2", "\"line1\nline2\""},
	}

	for _, tc := range testCases {
		result := quoteText(tc.input)
		if result != tc.expected {
			t.Errorf("quoteText(%q) = %q, want %q", tc.input, result, tc.expected)
		}
	}
}

func TestQuoteSeq(t *testing.T) {
	testCases := []struct {
		input    []string
		expected string
	}{
		{nil, ""},
		{[]string{}, ""},
		{[]string{"Fall"}, `"Fall"`},
		{[]string{"Fall", "Winter"}, `"Fall, Winter"`},
	}

	for _, tc := range testCases {
		result := quoteSeq(tc.input)
		if result != tc.expected {
			t.Errorf("quoteSeq(%v) = %q, want %q", tc.input, result, tc.expected)
		}
	}
}

func TestWriteShortlistCSV(t *testing.T) {
	courses := []domain.Course{
		{
			ID:             "101",
			Title:          `Field Study "Wetlands"`,
			Posted:         "2026-01-05",
			Expires:        "2026-03-20",
			Terms:          []string{"Fall", "Winter"},
			DeliveryMethod: "In Person",
			Department:     "Biology",
			DPTCode:        "BIO",
			OpeningsPerTerm: 2,
			FacultySupervisors: []domain.Supervisor{
				{Name: "Dr. A. Heron", URL: "https://example.edu/heron"},
			},
			Description:       "Sampling and species counts.",
			RequiredDocuments: []string{"CV", "Transcript"},

			// Must never surface in the export.
			StudentRolesAlt: "ai rewrite",
		},
		{
			ID:    "RP-7",
			Title: "Oral History Transcription",
		},
	}

	var sb strings.Builder
	if err := WriteShortlistCSV(&sb, courses); err != nil {
		t.Fatalf("WriteShortlistCSV error: %v", err)
	}
	out := sb.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (header + 2 rows)", len(lines))
	}

	wantHeader := "Course ID,Title,Posted,Expires,Terms,Delivery Method,Department,DPT Code,Openings per Term,Faculty Supervisor(s),Description,Student Roles,Academic Outcomes,Training & Mentorship,Selection Criteria,Required Documents"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}

	if !strings.Contains(lines[1], `"Field Study ""Wetlands"""`) {
		t.Errorf("embedded quotes not doubled: %q", lines[1])
	}
	if !strings.Contains(lines[1], `"Fall, Winter"`) {
		t.Errorf("terms not comma-joined and quoted: %q", lines[1])
	}
	if !strings.Contains(lines[1], `""1"":[""Dr. A. Heron""`) {
		t.Errorf("supervisors not rendered as quoted escaped JSON: %q", lines[1])
	}
	if strings.Contains(out, "ai rewrite") || strings.Contains(out, "(AI)") {
		t.Errorf("AI variant fields leaked into export: %q", out)
	}

	// Sparse course: empty cells for everything absent.
	if !strings.HasPrefix(lines[2], `"RP-7","Oral History Transcription",,,,`) {
		t.Errorf("sparse row = %q", lines[2])
	}
}

func TestWriteShortlistCSVEmpty(t *testing.T) {
	var sb strings.Builder
	if err := WriteShortlistCSV(&sb, nil); err != nil {
		t.Fatalf("WriteShortlistCSV error: %v", err)
	}
	if strings.Count(sb.String(), "\n") != 1 {
		t.Errorf("empty shortlist should produce header only, got %q", sb.String())
	}
}
