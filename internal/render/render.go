// Package render produces the static listing page. It is the replacement for
// the original browser-side DOM building: the filtered collection comes in,
// one self-contained HTML document comes out.
package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ropboard/internal/catalog"
	"ropboard/internal/domain"
	"ropboard/internal/expiry"
	"ropboard/internal/listfmt"
)

var titleCaser = cases.Title(language.English)

// Page is everything the listing template needs.
type Page struct {
	Title       string
	Theme       string // "light" or "dark"
	GeneratedAt string
	Shown       int
	Total       int
	Facets      catalog.Facets
	Cards       []Card
}

// Card is one posting prepared for display: text fields already formatted,
// expiry classified, shortlist membership resolved.
type Card struct {
	Course       domain.Course
	Shortlisted  bool
	Expired      bool
	ExpiringSoon bool

	Description        template.HTML
	StudentRoles       template.HTML
	AcademicOutcomes   template.HTML
	TrainingMentorship template.HTML
	SelectionCriteria  template.HTML
}

// Options control page assembly.
type Options struct {
	Title string
	Theme string    // defaults to "light"
	Total int       // size of the unfiltered collection
	Now   time.Time // anchors expiry badges
}

// BuildPage assembles the page model from an already-filtered collection.
func BuildPage(visible []domain.Course, facets catalog.Facets, shortlist map[string]bool, opts Options) Page {
	theme := opts.Theme
	if theme != "dark" {
		theme = "light"
	}
	title := opts.Title
	if title == "" {
		title = "Research Opportunity Program Postings"
	}

	// Facet labels are display-only; prettify the inconsistent casing the
	// source data carries.
	facets.DeliveryMethods = titleAll(facets.DeliveryMethods)

	cards := make([]Card, 0, len(visible))
	for _, c := range visible {
		card := Card{
			Course:             c,
			Shortlisted:        shortlist[c.ID],
			Description:        template.HTML(listfmt.Format(c.Description)),
			StudentRoles:       template.HTML(listfmt.Format(c.StudentRoles)),
			AcademicOutcomes:   template.HTML(listfmt.Format(c.AcademicOutcomes)),
			TrainingMentorship: template.HTML(listfmt.Format(c.TrainingMentorship)),
			SelectionCriteria:  template.HTML(listfmt.Format(c.SelectionCriteria)),
		}
		if st, err := expiry.Classify(c.Expires, opts.Now); err == nil {
			card.Expired = st.Expired
			card.ExpiringSoon = st.ExpiringSoon
		}
		cards = append(cards, card)
	}

	return Page{
		Title:       title,
		Theme:       theme,
		GeneratedAt: opts.Now.Format("2006-01-02 15:04 MST"),
		Shown:       len(cards),
		Total:       opts.Total,
		Facets:      facets,
		Cards:       cards,
	}
}

// Render writes the full HTML document for the page.
func Render(w io.Writer, p Page) error {
	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("render: execute template: %w", err)
	}
	return nil
}

func titleAll(xs []string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, titleCaser.String(strings.ToLower(x)))
	}
	return out
}

func joinTerms(terms []string) string {
	return strings.Join(terms, ", ")
}
