package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeonardBuda/forever-zama/internal/catalog"
)

func newTestCart(t *testing.T) (*Cart, *fakeCartRepo) {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	repo := &fakeCartRepo{}
	return NewCart(cat, repo), repo
}

func TestAddPersistsLineWithComputedTotal(t *testing.T) {
	cart, repo := newTestCart(t)

	msg, err := cart.Add(context.Background(), "Aloe Vera Gel", 2)
	require.NoError(t, err)
	assert.Equal(t, "Added 2 x Aloe Vera Gel to cart! 🛒", msg)

	lines := repo.snapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(56146), lines[0].AmountCents)
	assert.Equal(t, int64(112292), lines[0].TotalCents)
}

func TestAddUnknownProduct(t *testing.T) {
	cart, repo := newTestCart(t)

	_, err := cart.Add(context.Background(), "Unicorn Dust", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Empty(t, repo.snapshot())
}

func TestAddInvalidQuantityPersistsNothing(t *testing.T) {
	cart, repo := newTestCart(t)

	for _, q := range []int{0, -3} {
		_, err := cart.Add(context.Background(), "Aloe Lips", q)
		assert.Error(t, err, "quantity %d", q)
	}
	assert.Empty(t, repo.snapshot())
}

// Repeated adds append separate lines; nothing merges.
func TestRepeatedAddsDoNotMerge(t *testing.T) {
	cart, repo := newTestCart(t)

	_, err := cart.Add(context.Background(), "Bee Pollen", 1)
	require.NoError(t, err)
	_, err = cart.Add(context.Background(), "Bee Pollen", 2)
	require.NoError(t, err)

	assert.Len(t, repo.snapshot(), 2)
}

func TestRemoveDeletesAllMatchingLines(t *testing.T) {
	cart, repo := newTestCart(t)

	for i := 0; i < 3; i++ {
		_, err := cart.Add(context.Background(), "Bee Pollen", 1)
		require.NoError(t, err)
	}
	_, err := cart.Add(context.Background(), "Aloe Lips", 1)
	require.NoError(t, err)

	msg, err := cart.Remove(context.Background(), "Bee Pollen")
	require.NoError(t, err)
	assert.Equal(t, "Removed Bee Pollen from cart! 🗑️", msg)

	lines := repo.snapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, "Aloe Lips", lines[0].Name)
}

func TestRemoveNoMatchLeavesStoreUnchanged(t *testing.T) {
	cart, repo := newTestCart(t)

	_, err := cart.Add(context.Background(), "Aloe Lips", 1)
	require.NoError(t, err)

	_, err = cart.Remove(context.Background(), "Bee Pollen")
	assert.ErrorIs(t, err, ErrLineNotFound)
	assert.Len(t, repo.snapshot(), 1)
}

func TestRemoveMissingName(t *testing.T) {
	cart, _ := newTestCart(t)

	_, err := cart.Remove(context.Background(), "")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestViewTotals(t *testing.T) {
	cart, _ := newTestCart(t)

	_, err := cart.Add(context.Background(), "Aloe Vera Gel", 2)
	require.NoError(t, err)
	_, err = cart.Add(context.Background(), "Aloe Lips", 1)
	require.NoError(t, err)

	lines, total, err := cart.View(context.Background())
	require.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Equal(t, int64(112292+7480), total)
}

func TestStoreFailureWrapped(t *testing.T) {
	cart, repo := newTestCart(t)
	repo.failList = errors.New("deadline exceeded")

	_, _, err := cart.View(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart store list")
}
