package match

import (
	"sort"
)

// Candidate is a name with its distance from the looked-up name.
type Candidate struct {
	Name     string
	Distance int
}

// Nearest returns the candidates within maxDistance edits of name, closest
// first. Candidates equal to name after NormalizeHeader have distance 0;
// exact duplicates of name are skipped.
func Nearest(name string, candidates []string, maxDistance int) []Candidate {
	norm := NormalizeHeader(name)

	var result []Candidate

	for _, c := range candidates {
		if c == name {
			continue
		}

		d := Levenshtein(norm, NormalizeHeader(c))
		if d <= maxDistance {
			result = append(result, Candidate{Name: c, Distance: d})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Distance < result[j].Distance
	})

	return result
}
