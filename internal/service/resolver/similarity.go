package resolver

import (
	"strings"
	"unicode/utf8"
)

const (
	// SimilarityFloor is the exclusive lower bound a fuzzy score must exceed
	SimilarityFloor = 0.3

	// ContainmentScore is returned when one string contains the other
	ContainmentScore = 0.8

	// WordOverlapWeight scales the shared-word bonus
	WordOverlapWeight = 0.3
)

// Similarity scores two strings in [0, 1]
// 정확히 일치: 1.0, 포함 관계: 0.8, 그 외: 편집 거리 유사도 + 단어 중복 보너스
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return ContainmentScore
	}

	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	edit := 1.0 - float64(Levenshtein(a, b))/float64(max(la, lb))

	score := edit + wordOverlap(a, b)
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// wordOverlap counts query words that contain or are contained by some candidate word
func wordOverlap(query, candidate string) float64 {
	qWords := strings.Fields(query)
	cWords := strings.Fields(candidate)

	denom := max(len(qWords), len(cWords))
	if denom == 0 {
		return 0.0
	}

	matched := 0
	for _, qw := range qWords {
		for _, cw := range cWords {
			if strings.Contains(cw, qw) || strings.Contains(qw, cw) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(denom) * WordOverlapWeight
}

// Levenshtein returns the unit-cost edit distance between a and b, counted in runes
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
