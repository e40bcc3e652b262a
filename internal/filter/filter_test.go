package filter

import (
	"testing"
	"time"

	"ropboard/internal/domain"
)

func sampleCourses() []domain.Course {
	return []domain.Course{
		{
			ID:             "A",
			Title:          "Machine Learning in Biology",
			Description:    "Train models on genomic data.",
			Department:     "X",
			Terms:          []string{"Fall", "Winter"},
			DeliveryMethod: "In Person",
			Expires:        "2026-06-01",
		},
		{
			ID:             "B",
			Title:          "Archival Research",
			Description:    "Digitize and catalogue manuscripts.",
			Department:     "Y",
			Terms:          []string{"Summer"},
			DeliveryMethod: "Online",
			Expires:        "2026-01-01",
		},
		{
			ID:             "C",
			Title:          "Robotics Lab Assistant",
			Description:    "Assist with sensor calibration.",
			Department:     "X",
			Terms:          []string{"Winter"},
			DeliveryMethod: "Hybrid",
			Expires:        "2026-03-12",
		},
	}
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func ids(courses []domain.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.ID)
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyIdentity(t *testing.T) {
	// Every field unset: the filter is the order-preserving identity.
	got := Apply(sampleCourses(), Criteria{}, nil, testNow)
	if !equalIDs(ids(got), "A", "B", "C") {
		t.Errorf("identity filter = %v, want [A B C]", ids(got))
	}
}

func TestApplyDepartment(t *testing.T) {
	got := Apply(sampleCourses(), Criteria{Department: "X"}, nil, testNow)
	if !equalIDs(ids(got), "A", "C") {
		t.Errorf("department X = %v, want [A C]", ids(got))
	}
}

func TestApplySearch(t *testing.T) {
	testCases := []struct {
		search   string
		expected []string
	}{
		{"robotics", []string{"C"}},
		{"RESEARCH", []string{"B"}},  // case-insensitive
		{"a", []string{"A", "B", "C"}}, // matches ids and titles alike
		{"genomic", []string{"A"}},   // description match
		{"zzz", nil},
	}

	for _, tc := range testCases {
		got := ids(Apply(sampleCourses(), Criteria{SearchText: tc.search}, nil, testNow))
		if !equalIDs(got, tc.expected...) {
			t.Errorf("search %q = %v, want %v", tc.search, got, tc.expected)
		}
	}
}

func TestApplyTermAndDelivery(t *testing.T) {
	got := Apply(sampleCourses(), Criteria{Term: "Winter"}, nil, testNow)
	if !equalIDs(ids(got), "A", "C") {
		t.Errorf("term Winter = %v, want [A C]", ids(got))
	}

	got = Apply(sampleCourses(), Criteria{DeliveryMethod: "Online"}, nil, testNow)
	if !equalIDs(ids(got), "B") {
		t.Errorf("delivery Online = %v, want [B]", ids(got))
	}
}

func TestApplyActiveOnly(t *testing.T) {
	// B expired on 2026-01-01; A and C are still active on 2026-03-10.
	got := Apply(sampleCourses(), Criteria{ActiveOnly: true}, nil, testNow)
	if !equalIDs(ids(got), "A", "C") {
		t.Errorf("activeOnly = %v, want [A C]", ids(got))
	}
}

func TestApplyActiveOnlyBadDateKeepsCourse(t *testing.T) {
	courses := []domain.Course{{ID: "A", Expires: "when the funding runs out"}}
	got := Apply(courses, Criteria{ActiveOnly: true}, nil, testNow)
	if !equalIDs(ids(got), "A") {
		t.Errorf("unparseable expiry under activeOnly = %v, want [A]", ids(got))
	}
}

func TestApplyShortlistedOnly(t *testing.T) {
	shortlist := map[string]bool{"A": true, "C": true}
	got := Apply(sampleCourses(), Criteria{ShortlistedOnly: true}, shortlist, testNow)
	if !equalIDs(ids(got), "A", "C") {
		t.Errorf("shortlistedOnly = %v, want [A C]", ids(got))
	}

	got = Apply(sampleCourses(), Criteria{ShortlistedOnly: true}, nil, testNow)
	if len(got) != 0 {
		t.Errorf("shortlistedOnly with empty shortlist = %v, want []", ids(got))
	}
}

func TestApplyConjunction(t *testing.T) {
	// All criteria must hold at once.
	c := Criteria{
		SearchText: "a",
		Department: "X",
		Term:       "Winter",
		ActiveOnly: true,
	}
	got := Apply(sampleCourses(), c, nil, testNow)
	if !equalIDs(ids(got), "A", "C") {
		t.Errorf("conjunction = %v, want [A C]", ids(got))
	}

	c.DeliveryMethod = "Hybrid"
	got = Apply(sampleCourses(), c, nil, testNow)
	if !equalIDs(ids(got), "C") {
		t.Errorf("conjunction with delivery = %v, want [C]", ids(got))
	}
}

func TestApplyEmptyCollection(t *testing.T) {
	got := Apply(nil, Criteria{SearchText: "x"}, nil, testNow)
	if len(got) != 0 {
		t.Errorf("empty collection = %v, want []", ids(got))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	courses := sampleCourses()
	Apply(courses, Criteria{Department: "X"}, nil, testNow)
	if !equalIDs(ids(courses), "A", "B", "C") {
		t.Errorf("input mutated: %v", ids(courses))
	}
}
