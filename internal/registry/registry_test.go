package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("first", "a")
	require.NoError(t, err)
	assert.True(t, isNew)

	got, exists := r.Get("first")
	assert.True(t, exists)
	assert.Equal(t, "a", got)

	// Re-registering overwrites and reports not-new
	isNew, err = r.Register("first", "b")
	require.NoError(t, err)
	assert.False(t, isNew)

	got, _ = r.Get("first")
	assert.Equal(t, "b", got)
}

func TestRegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()

	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestGetOrCreateRunsCreatorOnce(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0

	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := r.GetOrCreate("answer", creator)
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}

func TestGetOrCreateCreatorError(t *testing.T) {
	r := NewRegistry[int]()

	_, err := r.GetOrCreate("broken", func() (int, error) {
		return 0, errors.New("boom")
	})
	require.Error(t, err)

	_, exists := r.Get("broken")
	assert.False(t, exists)
}

func TestClearRunsCleanup(t *testing.T) {
	r := NewRegistry[string]()
	_, err := r.Register("item", "value")
	require.NoError(t, err)

	var cleaned string
	deleted, err := r.Clear("item", func(v string) error {
		cleaned = v
		return nil
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, "value", cleaned)

	_, exists := r.Get("item")
	assert.False(t, exists)

	// Clearing an absent name is a no-op
	deleted, err = r.Clear("item", nil)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	count, err := r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
