package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jurisflow/internal/cache/memory"
	"jurisflow/internal/domain"
)

func TestCache_SetGet(t *testing.T) {
	c := memory.NewCache()
	ctx := context.Background()

	_, found, err := c.Get(ctx, "pdf_extract:abc")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "pdf_extract:abc", &domain.ExtractionResult{Text: "texto", Pages: 2}, time.Hour))

	got, found, err := c.Get(ctx, "pdf_extract:abc")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "texto", got.Text)
	assert.Equal(t, 2, got.Pages)
}

func TestCache_ReturnsCopy(t *testing.T) {
	c := memory.NewCache()
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", &domain.ExtractionResult{Text: "a"}, time.Hour))

	got, _, _ := c.Get(ctx, "k")
	got.Text = "mutated"

	again, _, _ := c.Get(ctx, "k")
	assert.Equal(t, "a", again.Text)
}

func TestCache_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := memory.NewCacheWithClock(func() time.Time { return now })
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", &domain.ExtractionResult{Text: "a"}, time.Hour))

	now = now.Add(59 * time.Minute)
	_, found, _ := c.Get(ctx, "k")
	assert.True(t, found)

	now = now.Add(time.Minute)
	_, found, _ = c.Get(ctx, "k")
	assert.False(t, found)
	assert.Equal(t, 0, c.Len())
}

func TestCache_Concurrent(t *testing.T) {
	c := memory.NewCache()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Set(ctx, "k", &domain.ExtractionResult{Text: "a"}, time.Hour)
			_, _, _ = c.Get(ctx, "k")
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, c.Len())
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}
