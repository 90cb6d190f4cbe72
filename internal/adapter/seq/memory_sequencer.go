// Package seq implements the order sequencer: monotonically increasing
// order numbers rendered as "#0001".
package seq

import (
	"context"
	"sync/atomic"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
	"github.com/LeonardBuda/forever-zama/internal/usecase"
)

// MemorySequencer issues numbers from an atomic in-process counter seeded
// at 1. Restarting the process restarts the numbering, so previously used
// numbers can be reissued; use the Redis sequencer where that matters.
type MemorySequencer struct {
	n atomic.Int64
}

func NewMemorySequencer() *MemorySequencer {
	return &MemorySequencer{}
}

func (s *MemorySequencer) Next(_ context.Context) (string, error) {
	return domain.FormatOrderNumber(s.n.Add(1)), nil
}

var _ usecase.Sequencer = (*MemorySequencer)(nil)
