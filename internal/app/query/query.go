// Package query computes the in-memory views the directory screens render.
// Every function is pure and total over an already-fetched instructor list:
// no I/O, no failure modes, empty input yields empty output.
package query

import (
	"sort"
	"strings"

	"github.com/yongsanfmc/instructor-directory/internal/app/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GenderLabel returns the localized display label for an instructor's gender
func GenderLabel(g *models.Gender) string {
	if g == nil {
		return ""
	}
	switch *g {
	case models.GenderMale:
		return "남자"
	case models.GenderFemale:
		return "여자"
	}
	return ""
}

// FilterByCenterAndCategory keeps instructors matching both filters. Either
// filter may be empty, in which case it does not constrain the result.
func FilterByCenterAndCategory(list []models.Instructor, center, category string) []models.Instructor {
	out := make([]models.Instructor, 0, len(list))
	for _, inst := range list {
		if center != "" && inst.CurrentCenter != center {
			continue
		}
		if category != "" && inst.Category != category {
			continue
		}
		out = append(out, inst)
	}
	return out
}

// CategoryGroup is one (category, instructors) bucket within a center section
type CategoryGroup struct {
	Category    string              `json:"category"`
	Instructors []models.Instructor `json:"instructors"`
}

// CenterGroup is one center section of the overview
type CenterGroup struct {
	Center         string          `json:"center"`
	CategoryGroups []CategoryGroup `json:"categoryGroups"`
}

// GroupByCenterThenCategory buckets instructors by center, then by category,
// iterating both in the caller-supplied order. That order is the fixed
// display priority from the reference configuration and must survive as-is.
// Empty buckets and centers with no non-empty bucket are omitted.
func GroupByCenterThenCategory(list []models.Instructor, centers, categories []string) []CenterGroup {
	out := make([]CenterGroup, 0, len(centers))
	for _, center := range centers {
		groups := make([]CategoryGroup, 0, len(categories))
		for _, category := range categories {
			var bucket []models.Instructor
			for _, inst := range list {
				if inst.CurrentCenter == center && inst.Category == category {
					bucket = append(bucket, inst)
				}
			}
			if len(bucket) > 0 {
				groups = append(groups, CategoryGroup{Category: category, Instructors: bucket})
			}
		}
		if len(groups) > 0 {
			out = append(out, CenterGroup{Center: center, CategoryGroups: groups})
		}
	}
	return out
}

// SearchText keeps instructors whose concatenated fields contain the term,
// case-insensitively. The haystack joins name, position, category, the
// localized gender label, center, and the assigned-class lines; a blank term
// matches everything. Single substring test, no tokenization or ranking.
func SearchText(list []models.Instructor, term string) []models.Instructor {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return list
	}
	out := make([]models.Instructor, 0, len(list))
	for _, inst := range list {
		haystack := strings.ToLower(strings.Join([]string{
			inst.Name,
			inst.Position,
			inst.Category,
			GenderLabel(inst.Gender),
			inst.CurrentCenter,
			strings.Join(inst.AssignedClasses, " "),
		}, " "))
		if strings.Contains(haystack, t) {
			out = append(out, inst)
		}
	}
	return out
}

// SortByName returns a copy ordered by name under Korean collation, so
// Hangul names sort in reading order rather than raw code-point order. The
// sort is stable: records with equal names keep their relative input order,
// which later grouping relies on.
func SortByName(list []models.Instructor) []models.Instructor {
	out := make([]models.Instructor, len(list))
	copy(out, list)
	c := collate.New(language.Korean)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
