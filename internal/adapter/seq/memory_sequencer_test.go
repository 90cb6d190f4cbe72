package seq

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySequencerFormat(t *testing.T) {
	s := NewMemorySequencer()

	n1, err := s.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "#0001", n1)

	n2, err := s.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "#0002", n2)
}

func TestMemorySequencerConcurrentUnique(t *testing.T) {
	s := NewMemorySequencer()

	const goroutines = 50
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]bool, goroutines)
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := s.Next(context.Background())
			if err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			seen[n] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, goroutines, "every issued number is distinct")
	assert.True(t, seen["#0001"])
	assert.True(t, seen["#0050"])
}
