package trylock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func Test_General(t *testing.T) {
	t.Run("trylock fails while held", func(t *testing.T) {
		c := NewCell(42)
		require.True(t, c.TryLock())
		require.True(t, c.IsLocked())
		require.False(t, c.TryLock())

		c.Unlock()
		require.False(t, c.IsLocked())
		require.True(t, c.TryLock())
		c.Unlock()
	})

	t.Run("value is kept across lock cycles", func(t *testing.T) {
		c := NewCell("hello")
		require.True(t, c.TryLock())
		assert.Equal(t, "hello", *c.Get())
		*c.Get() = "world"
		c.Unlock()

		require.True(t, c.TryLock())
		assert.Equal(t, "world", *c.Get())
		c.Unlock()
	})

	t.Run("unlock of unlocked cell panics", func(t *testing.T) {
		c := NewCell(0)
		require.PanicsWithValue(t, "trylock: unlock of unlocked cell", func() {
			c.Unlock()
		})
	})

	t.Run("zero value is unlocked", func(t *testing.T) {
		var c Cell[int]
		require.False(t, c.IsLocked())
		require.True(t, c.TryLock())
		c.Unlock()
	})
}

func Test_Atomicity(t *testing.T) {
	c := NewCell(0)

	eg, _ := errgroup.WithContext(context.Background())
	eg.SetLimit(20)
	for i := 0; i < 100; i++ {
		eg.Go(func() error {
			for {
				if !c.TryLock() {
					continue
				}
				*c.Get() += 1
				c.Unlock()

				return nil
			}
		})
	}

	err := eg.Wait()
	require.NoError(t, err)

	require.True(t, c.TryLock())
	require.Equal(t, 100, *c.Get())
	c.Unlock()
}
