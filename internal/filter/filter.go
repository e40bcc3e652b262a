// Package filter selects the visible subset of a posting collection.
package filter

import (
	"strings"
	"time"

	"ropboard/internal/domain"
	"ropboard/internal/expiry"
)

// Criteria is one snapshot of the active filter controls. Zero values mean
// "no constraint"; the struct is rebuilt for every filter invocation rather
// than carried as shared state.
type Criteria struct {
	SearchText      string // case-insensitive substring over id, title, description
	Department      string // exact match, case-sensitive
	Term            string // must appear in the course's term list
	DeliveryMethod  string // exact match
	ActiveOnly      bool   // drop courses whose expiry date has passed
	ShortlistedOnly bool   // restrict to ids in the shortlist snapshot
}

// Apply returns the courses matching every active criterion, preserving the
// original relative order. Inputs are never mutated. The shortlist is a
// read-only membership snapshot keyed by course id; now anchors the
// active-only check and should come from an expiry.Clock.
//
// Missing optional fields degrade instead of failing: an absent department
// never matches an equality filter, and an unparseable expiry date leaves a
// course visible under ActiveOnly.
func Apply(courses []domain.Course, c Criteria, shortlist map[string]bool, now time.Time) []domain.Course {
	search := strings.ToLower(strings.TrimSpace(c.SearchText))

	out := make([]domain.Course, 0, len(courses))
	for _, course := range courses {
		if !matchesSearch(course, search) {
			continue
		}
		if c.Department != "" && course.Department != c.Department {
			continue
		}
		if c.Term != "" && !course.HasTerm(c.Term) {
			continue
		}
		if c.DeliveryMethod != "" && course.DeliveryMethod != c.DeliveryMethod {
			continue
		}
		if c.ActiveOnly && isExpired(course, now) {
			continue
		}
		if c.ShortlistedOnly && !shortlist[course.ID] {
			continue
		}
		out = append(out, course)
	}
	return out
}

func matchesSearch(course domain.Course, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(course.ID), search) ||
		strings.Contains(strings.ToLower(course.Title), search) ||
		strings.Contains(strings.ToLower(course.Description), search)
}

func isExpired(course domain.Course, now time.Time) bool {
	st, err := expiry.Classify(course.Expires, now)
	if err != nil {
		return false
	}
	return st.Expired
}
