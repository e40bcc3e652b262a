package ai

import (
	"strings"
	"testing"

	"ropboard/internal/domain"
)

func TestBuildPrompt(t *testing.T) {
	c := domain.Course{
		ID:           "101",
		Title:        "Wetland Ecology",
		StudentRoles: "- collect samples",
	}

	prompt := buildPrompt(c)
	if !strings.Contains(prompt, "Posting 101 - Wetland Ecology") {
		t.Errorf("prompt missing posting header: %q", prompt)
	}
	if !strings.Contains(prompt, "## Student Roles\n- collect samples") {
		t.Errorf("prompt missing roles section: %q", prompt)
	}

	// All-empty fields: no prompt, no API call.
	if got := buildPrompt(domain.Course{ID: "X"}); got != "" {
		t.Errorf("buildPrompt with empty fields = %q, want \"\"", got)
	}
}

func TestApply(t *testing.T) {
	c := domain.Course{StudentRolesAlt: "keep me"}

	Apply(&c, Variants{
		AcademicOutcomes:  "simpler outcomes",
		SelectionCriteria: "  ",
	})

	if c.AcademicOutcomesAlt != "simpler outcomes" {
		t.Errorf("AcademicOutcomesAlt = %q", c.AcademicOutcomesAlt)
	}
	if c.StudentRolesAlt != "keep me" {
		t.Error("empty variant overwrote an existing alternate")
	}
	if c.SelectionCriteriaAlt != "" {
		t.Errorf("whitespace variant applied: %q", c.SelectionCriteriaAlt)
	}
}

func TestNewGeneratorRequiresKey(t *testing.T) {
	if _, err := NewGenerator(t.Context(), "", DefaultModel, 0); err == nil {
		t.Error("NewGenerator without key expected error, got nil")
	}
}
