// Package vector ranks embeddings by cosine similarity with a linear scan.
package vector

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrDimensionMismatch = errors.New("vector dimension mismatch")

// CosineSimilarity returns dot(a,b) / (|a| * |b|), or 0 when either vector has zero magnitude.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / math.Sqrt(normA*normB), nil
}

type Scored[T any] struct {
	Item       T
	Similarity float64
}

// Rank scores every item against query, drops those below threshold, sorts
// by similarity descending and keeps at most limit results. A limit <= 0
// keeps everything above the threshold.
func Rank[T any](items []T, embeddingOf func(T) []float32, query []float32, threshold float64, limit int) ([]Scored[T], error) {
	scored := make([]Scored[T], 0, len(items))
	for _, item := range items {
		sim, err := CosineSimilarity(query, embeddingOf(item))
		if err != nil {
			return nil, err
		}
		if sim < threshold {
			continue
		}
		scored = append(scored, Scored[T]{Item: item, Similarity: sim})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}
