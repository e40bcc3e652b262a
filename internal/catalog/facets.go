package catalog

import (
	"sort"

	"ropboard/internal/domain"
)

// Facets are the distinct values the filter controls offer, mirroring the
// original page's department/term/delivery dropdowns.
type Facets struct {
	Departments     []string
	Terms           []string
	DeliveryMethods []string
}

// CollectFacets walks the collection once and returns each facet sorted,
// without duplicates or empty values.
func CollectFacets(courses []domain.Course) Facets {
	depts := map[string]bool{}
	terms := map[string]bool{}
	deliveries := map[string]bool{}

	for _, c := range courses {
		if c.Department != "" {
			depts[c.Department] = true
		}
		for _, t := range c.Terms {
			if t != "" {
				terms[t] = true
			}
		}
		if c.DeliveryMethod != "" {
			deliveries[c.DeliveryMethod] = true
		}
	}

	return Facets{
		Departments:     sortedKeys(depts),
		Terms:           sortedKeys(terms),
		DeliveryMethods: sortedKeys(deliveries),
	}
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
