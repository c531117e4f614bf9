package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeDefaultsToMenu(t *testing.T) {
	tr := NewTracker()

	assert.Equal(t, ModeMenu, tr.Mode(1))
	assert.Equal(t, ToMenu, tr.Route(1))
}

func TestSetModeTransitions(t *testing.T) {
	tr := NewTracker()

	tr.SetMode(1, ModeChat)
	assert.Equal(t, ModeChat, tr.Mode(1))
	assert.Equal(t, ToChat, tr.Route(1))

	tr.SetMode(1, ModeMenu)
	assert.Equal(t, ToMenu, tr.Route(1))
}

func TestModesAreIndependentPerUser(t *testing.T) {
	tr := NewTracker()

	tr.SetMode(1, ModeChat)

	assert.Equal(t, ToChat, tr.Route(1))
	assert.Equal(t, ToMenu, tr.Route(2))
}

func TestConcurrentAccess(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		id := int64(i % 10)
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.SetMode(id, ModeChat)
			_ = tr.Route(id)
		}()
	}
	wg.Wait()

	for id := int64(0); id < 10; id++ {
		assert.Equal(t, ModeChat, tr.Mode(id))
	}
}
