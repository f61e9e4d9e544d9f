package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_NewestFirstAndBounded(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2)

	for _, msg := range []string{"one", "two", "three"} {
		_, err := s.Save(ctx, Notification{Message: msg})
		require.NoError(t, err)
	}

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "three", got[0].Message)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, "two", got[1].Message)

	require.NoError(t, s.Clear(ctx))
	got, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewMemoryStore_MinimumLimit(t *testing.T) {
	s := NewMemoryStore(0)
	_, _ = s.Save(context.Background(), Notification{Message: "a"})
	_, _ = s.Save(context.Background(), Notification{Message: "b"})

	got, _ := s.List(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Message)
}
