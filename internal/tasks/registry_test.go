package tasks

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndDone(t *testing.T) {
	r := NewRegistry()

	a := r.Add("engine", false)
	b := r.Add("journal-flusher", true)
	require.Len(t, r.Snapshot(), 2)

	a.Done()
	snap := r.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "journal-flusher", snap[0].Name)
	assert.True(t, snap[0].Background)

	b.Done()
	assert.Empty(t, r.Snapshot())
}

func TestDoneTwice(t *testing.T) {
	r := NewRegistry()
	task := r.Add("engine", false)
	task.Done()
	task.Done()
	assert.Empty(t, r.Snapshot())
}

func TestConcurrentRegistration(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task := r.Add("worker", i%2 == 0)
			task.Done()
		}()
	}
	wg.Wait()
	assert.Empty(t, r.Snapshot())
}
