package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/rocketscienceinc/blokus-backend/internal/entity"
)

type memoryResult struct {
	mu      sync.RWMutex
	results []entity.Result
}

func NewMemoryResultRepository() ResultRepository {
	return &memoryResult{}
}

func (that *memoryResult) Save(_ context.Context, result *entity.Result) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	saved := *result
	saved.Remaining = slices.Clone(result.Remaining)
	that.results = append(that.results, saved)

	return nil
}

func (that *memoryResult) ListRecent(_ context.Context, limit int64) ([]entity.Result, error) {
	if limit <= 0 {
		limit = defaultResultsLimit
	}

	that.mu.RLock()
	results := append(make([]entity.Result, 0, len(that.results)), that.results...)
	that.mu.RUnlock()

	slices.SortStableFunc(results, func(a, b entity.Result) int {
		return b.FinishedAt.Compare(a.FinishedAt)
	})

	if int64(len(results)) > limit {
		results = results[:limit]
	}

	return results, nil
}
