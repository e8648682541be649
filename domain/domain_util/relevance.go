package domain_util

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenreTagged is anything that can take part in genre-overlap ranking.
type GenreTagged interface {
	GenreIDs() []primitive.ObjectID
	PublishedAt() time.Time
}

// ScoredCandidate pairs a candidate with its genre overlap against a reference.
type ScoredCandidate[T GenreTagged] struct {
	Item  T
	Score int
}

// GenreOverlap counts the candidate genre ids that also appear in the
// reference set. Duplicate ids on the candidate side are counted each time.
func GenreOverlap(reference map[primitive.ObjectID]struct{}, candidate []primitive.ObjectID) int {
	score := 0
	for _, id := range candidate {
		if _, ok := reference[id]; ok {
			score++
		}
	}
	return score
}

// RelatedItems ranks pool by genre overlap with reference, newest first on
// equal scores, and keeps at most limit entries. Zero-overlap candidates are
// ranked, not dropped. The pool is expected to exclude the reference itself.
func RelatedItems[T GenreTagged](reference GenreTagged, pool []T, limit int) []ScoredCandidate[T] {
	if reference == nil || limit <= 0 || len(pool) == 0 {
		return []ScoredCandidate[T]{}
	}

	refIDs := reference.GenreIDs()
	if len(refIDs) == 0 {
		return []ScoredCandidate[T]{}
	}
	refSet := make(map[primitive.ObjectID]struct{}, len(refIDs))
	for _, id := range refIDs {
		refSet[id] = struct{}{}
	}

	scored := make([]ScoredCandidate[T], 0, len(pool))
	for _, item := range pool {
		scored = append(scored, ScoredCandidate[T]{
			Item:  item,
			Score: GenreOverlap(refSet, item.GenreIDs()),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Item.PublishedAt().After(scored[j].Item.PublishedAt())
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
