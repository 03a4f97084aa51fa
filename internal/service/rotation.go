package service

import (
	"context"
	"math/rand"
	"slices"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
)

// DefaultRotationBuffer is the number of unused words below which a rotation
// is considered exhausted.
const DefaultRotationBuffer = 5

// RotationTracker keeps words from repeating across consecutive exams until
// the pool is exhausted. The used ids are persisted per user.
type RotationTracker struct {
	store  IDSetStore
	buffer int
	logger *zap.Logger

	rng *rand.Rand
}

// NewRotationTracker creates a new RotationTracker.
func NewRotationTracker(store IDSetStore, buffer int, logger *zap.Logger) *RotationTracker {
	if buffer < 0 {
		buffer = DefaultRotationBuffer
	}
	return &RotationTracker{
		store:  store,
		buffer: buffer,
		logger: logger,
	}
}

// SelectBatch draws up to requested words from pool, preferring words not used
// in the current rotation. It never returns a short batch while the pool holds
// enough words: when the rotation cannot supply them it starts over.
func (t *RotationTracker) SelectBatch(
	ctx context.Context, userID int64, pool []*entities.Word, requested int,
) []*entities.Word {
	if requested <= 0 || len(pool) == 0 {
		return nil
	}

	used := t.load(ctx, userID)
	selected, used := selectBatch(t.rng, used, pool, requested, t.buffer)
	t.save(ctx, userID, used)

	return selected
}

// Used returns the ids used in the current rotation.
func (t *RotationTracker) Used(ctx context.Context, userID int64) map[string]struct{} {
	return t.load(ctx, userID)
}

// Reset starts a new rotation.
func (t *RotationTracker) Reset(ctx context.Context, userID int64) {
	if err := t.store.Delete(ctx, userID, KeyUsedExamWords); err != nil {
		t.logger.Warn("failed to reset exam rotation",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

func (t *RotationTracker) load(ctx context.Context, userID int64) map[string]struct{} {
	ids, err := t.store.Load(ctx, userID, KeyUsedExamWords)
	if err != nil {
		t.logger.Warn("failed to load exam rotation, starting empty",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		ids = nil
	}

	used := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		used[id] = struct{}{}
	}
	return used
}

func (t *RotationTracker) save(ctx context.Context, userID int64, used map[string]struct{}) {
	if err := t.store.Save(ctx, userID, KeyUsedExamWords, sortedIDs(used)); err != nil {
		t.logger.Warn("failed to save exam rotation",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

// selectBatch implements the rotation policy on an in-memory used set and
// returns the selection together with the updated set.
func selectBatch(
	rng *rand.Rand, used map[string]struct{}, pool []*entities.Word, requested, buffer int,
) ([]*entities.Word, map[string]struct{}) {
	// 1. Forget ids that are no longer in the pool.
	inPool := make(map[string]struct{}, len(pool))
	for _, w := range pool {
		inPool[w.ID] = struct{}{}
	}
	for id := range used {
		if _, ok := inPool[id]; !ok {
			delete(used, id)
		}
	}

	// 2. The rotation is exhausted once fewer than buffer words are left.
	if len(used) >= len(pool)-buffer {
		used = make(map[string]struct{})
	}

	// 3. Keep only words not used yet.
	available := make([]*entities.Word, 0, len(pool))
	for _, w := range pool {
		if _, ok := used[w.ID]; !ok {
			available = append(available, w)
		}
	}

	// 4. Allow repeats rather than a short batch.
	if len(available) < requested {
		used = make(map[string]struct{})
		available = pool
	}

	// 5. Uniform draw without replacement.
	selected := sample(rng, available, requested)

	// 6. Remember what was drawn.
	for _, w := range selected {
		used[w.ID] = struct{}{}
	}

	return selected, used
}

func sortedIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
