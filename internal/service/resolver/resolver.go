package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Resolve finds the best record for query
// 매칭 우선순위: 정확 일치 → 부분 문자열 → 유사도 (첫 번째로 결과를 낸 단계가 채택됨)
func Resolve[T any](query string, corpus []Record[T]) (Match[T], error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Match[T]{}, fmt.Errorf("%w: query must not be blank", ErrInvalidArgument)
	}

	none := Match[T]{Query: q, Stage: StageNone}
	if len(corpus) == 0 {
		return none, nil
	}

	lq := strings.ToLower(q)

	for _, rec := range corpus {
		if strings.ToLower(rec.Name) == lq {
			return Match[T]{Record: rec, Query: q, Stage: StageExact, Score: 1.0, Found: true}, nil
		}
	}

	for _, rec := range corpus {
		if strings.Contains(strings.ToLower(rec.Name), lq) {
			return Match[T]{Record: rec, Query: q, Stage: StageSubstring, Score: ContainmentScore, Found: true}, nil
		}
	}

	best, bestScore := -1, 0.0
	for i, rec := range corpus {
		// strict > keeps the earliest record on ties
		if score := Similarity(lq, rec.Name); best < 0 || score > bestScore {
			best, bestScore = i, score
		}
	}

	if clearsFloor(bestScore) {
		return Match[T]{Record: corpus[best], Query: q, Stage: StageSimilarity, Score: bestScore, Found: true}, nil
	}

	none.Score = bestScore
	return none, nil
}

// clearsFloor reports whether score is strictly above SimilarityFloor
func clearsFloor(score float64) bool {
	return score > SimilarityFloor
}

// Suggest returns up to limit records ranked by similarity, highest first
// Ties keep corpus order. Records at or below the floor are dropped.
func Suggest[T any](query string, corpus []Record[T], limit int) ([]Candidate[T], error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("%w: query must not be blank", ErrInvalidArgument)
	}
	if limit <= 0 {
		return []Candidate[T]{}, nil
	}

	candidates := make([]Candidate[T], 0, len(corpus))
	for i, rec := range corpus {
		score := Similarity(q, rec.Name)
		if clearsFloor(score) {
			candidates = append(candidates, Candidate[T]{Record: rec, Index: i, Score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// Resolver wraps Resolve with logging
// Stateless; safe for concurrent use.
type Resolver[T any] struct {
	logger zerolog.Logger
}

// New creates a new Resolver
func New[T any](logger zerolog.Logger) *Resolver[T] {
	return &Resolver[T]{logger: logger.With().Str("component", "resolver").Logger()}
}

// Resolve runs Resolve and logs the outcome
func (r *Resolver[T]) Resolve(query string, corpus []Record[T]) (Match[T], error) {
	m, err := Resolve(query, corpus)
	if err != nil {
		r.logger.Warn().Err(err).Msg("Rejected query")
		return m, err
	}

	event := r.logger.Debug().
		Str("query", m.Query).
		Int("candidates", len(corpus)).
		Str("stage", string(m.Stage)).
		Float64("score", m.Score)
	if m.Found {
		event = event.Str("matched", m.Record.Name)
	}
	event.Msg("Resolved name")

	return m, nil
}

// Suggest runs Suggest
func (r *Resolver[T]) Suggest(query string, corpus []Record[T], limit int) ([]Candidate[T], error) {
	return Suggest(query, corpus, limit)
}
