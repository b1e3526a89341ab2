package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_MutualExclusion(t *testing.T) {
	locks := NewKeyedMutex()

	const goroutines = 32
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.Lock(1)
			defer locks.Unlock(1)
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	locks := NewKeyedMutex()

	locks.Lock(1)
	defer locks.Unlock(1)

	done := make(chan struct{})
	go func() {
		locks.Lock(2)
		locks.Unlock(2)
		close(done)
	}()

	// Key 2 must not block behind key 1.
	<-done
}
