/*
Package ai rewrites posting text fields into plain language using the Gemini
API. The rewrites are stored alongside the originals as the "(AI)" variant
fields and are display-only; exports never include them.
*/
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"ropboard/internal/domain"
)

const DefaultModel = "gemini-2.0-flash"

// Variants are the plain-language rewrites for one posting.
type Variants struct {
	StudentRoles       string `json:"student_roles"`
	AcademicOutcomes   string `json:"academic_outcomes"`
	TrainingMentorship string `json:"training_mentorship"`
	SelectionCriteria  string `json:"selection_criteria"`
}

var systemInstruction = `
You rewrite research-opportunity posting text for undergraduate students.

For each provided field, produce a plain-language version that:
1. Keeps every concrete requirement, task, and deadline from the original.
2. Uses short sentences and everyday vocabulary.
3. Keeps list structure: one line per item, "-" for bullets, "1." for steps.
4. Never invents duties, outcomes, or criteria that are not in the original.

Return an empty string for any field whose input is empty.
`

// Generator wraps a Gemini client with request pacing.
type Generator struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewGenerator creates a generator. requestsPerMinute caps the call rate;
// zero means the free-tier default of 10.
func NewGenerator(ctx context.Context, apiKey, model string, requestsPerMinute int) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ai: missing API key")
	}
	if model == "" {
		model = DefaultModel
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = 10
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("ai: create gemini client: %w", err)
	}

	return &Generator{
		client:  client,
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1),
	}, nil
}

// Rewrite generates the variant fields for one course. Courses with no text
// fields at all return empty variants without an API call.
func (g *Generator) Rewrite(ctx context.Context, c domain.Course) (Variants, error) {
	prompt := buildPrompt(c)
	if prompt == "" {
		return Variants{}, nil
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return Variants{}, err
	}

	contents := []*genai.Content{
		{Role: "system", Parts: []*genai.Part{{Text: systemInstruction}}},
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   variantSchema(),
	})
	if err != nil {
		return Variants{}, fmt.Errorf("ai: generate for %s: %w", c.ID, err)
	}

	var v Variants
	if err := json.Unmarshal([]byte(resp.Text()), &v); err != nil {
		return Variants{}, fmt.Errorf("ai: unmarshal response for %s: %w", c.ID, err)
	}
	return v, nil
}

func buildPrompt(c domain.Course) string {
	fields := []struct {
		label string
		text  string
	}{
		{"Student Roles", c.StudentRoles},
		{"Academic Outcomes", c.AcademicOutcomes},
		{"Training & Mentorship", c.TrainingMentorship},
		{"Selection Criteria", c.SelectionCriteria},
	}

	var sb strings.Builder
	hasText := false
	for _, f := range fields {
		sb.WriteString(fmt.Sprintf("## %s\n%s\n\n", f.label, f.text))
		if strings.TrimSpace(f.text) != "" {
			hasText = true
		}
	}
	if !hasText {
		return ""
	}
	return fmt.Sprintf("Posting %s - %s\n\n%s", c.ID, c.Title, sb.String())
}

func variantSchema() *genai.Schema {
	field := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"student_roles":       field("Plain-language rewrite of Student Roles."),
			"academic_outcomes":   field("Plain-language rewrite of Academic Outcomes."),
			"training_mentorship": field("Plain-language rewrite of Training & Mentorship."),
			"selection_criteria":  field("Plain-language rewrite of Selection Criteria."),
		},
		Required: []string{"student_roles", "academic_outcomes", "training_mentorship", "selection_criteria"},
	}
}

// Apply copies non-empty variants into the course's alternate fields.
func Apply(c *domain.Course, v Variants) {
	if s := strings.TrimSpace(v.StudentRoles); s != "" {
		c.StudentRolesAlt = s
	}
	if s := strings.TrimSpace(v.AcademicOutcomes); s != "" {
		c.AcademicOutcomesAlt = s
	}
	if s := strings.TrimSpace(v.TrainingMentorship); s != "" {
		c.TrainingMentorshipAlt = s
	}
	if s := strings.TrimSpace(v.SelectionCriteria); s != "" {
		c.SelectionCriteriaAlt = s
	}
}
