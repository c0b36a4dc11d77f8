package model

import "strings"

// SearchFilters holds the active search criteria. Zero values impose no
// constraint, so an empty SearchFilters matches every college.
type SearchFilters struct {
	Location string     `json:"location,omitempty"` // substring of city or state, case-insensitive
	Courses  []string   `json:"courses,omitempty"`  // exact-match membership
	Fees     *FeeBounds `json:"fees,omitempty"`
	Ranking  int        `json:"ranking,omitempty"` // maximum acceptable ranking, inclusive
	Stream   string     `json:"stream,omitempty"`  // substring of any course name, case-insensitive
}

// FeeBounds constrains the college fee band. A nil bound is unconstrained.
type FeeBounds struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// DefaultFilters returns the criteria active before the user touches the
// search form.
func DefaultFilters() SearchFilters {
	return SearchFilters{Location: "Mumbai"}
}

// FilterPatch is a shallow-merge patch for SearchFilters. A nil field retains
// the previous criterion; a non-nil field replaces it wholesale, so a pointer
// to a zero value clears the criterion.
type FilterPatch struct {
	Location *string    `json:"location"`
	Courses  *[]string  `json:"courses"`
	Fees     *FeeBounds `json:"fees"`
	Ranking  *int       `json:"ranking"`
	Stream   *string    `json:"stream"`
}

// Apply merges the patch into f.
func (p FilterPatch) Apply(f *SearchFilters) {
	if p.Location != nil {
		f.Location = *p.Location
	}
	if p.Courses != nil {
		f.Courses = append([]string(nil), (*p.Courses)...)
	}
	if p.Fees != nil {
		fees := *p.Fees
		f.Fees = &fees
	}
	if p.Ranking != nil {
		f.Ranking = *p.Ranking
	}
	if p.Stream != nil {
		f.Stream = *p.Stream
	}
}

// Clone returns a copy of f that shares no pointers or slices with the
// original.
func (f SearchFilters) Clone() SearchFilters {
	out := f
	out.Courses = append([]string(nil), f.Courses...)
	if f.Fees != nil {
		fees := *f.Fees
		if f.Fees.Min != nil {
			min := *f.Fees.Min
			fees.Min = &min
		}
		if f.Fees.Max != nil {
			max := *f.Fees.Max
			fees.Max = &max
		}
		out.Fees = &fees
	}
	return out
}

// Matches reports whether c satisfies every present criterion. Criteria are
// conjunctive; absent criteria impose no constraint.
func (f SearchFilters) Matches(c College) bool {
	if f.Location != "" {
		loc := strings.ToLower(f.Location)
		if !strings.Contains(strings.ToLower(c.Location.City), loc) &&
			!strings.Contains(strings.ToLower(c.Location.State), loc) {
			return false
		}
	}
	if len(f.Courses) > 0 && !hasAnyCourse(c.Courses, f.Courses) {
		return false
	}
	if f.Fees != nil {
		if f.Fees.Min != nil && c.Fees.Min < *f.Fees.Min {
			return false
		}
		if f.Fees.Max != nil && c.Fees.Max > *f.Fees.Max {
			return false
		}
	}
	if f.Ranking > 0 && c.Ranking > f.Ranking {
		return false
	}
	if f.Stream != "" {
		stream := strings.ToLower(f.Stream)
		found := false
		for _, course := range c.Courses {
			if strings.Contains(strings.ToLower(course), stream) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func hasAnyCourse(courses, wanted []string) bool {
	for _, course := range courses {
		for _, w := range wanted {
			if course == w {
				return true
			}
		}
	}
	return false
}
