package worker

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSubmit(t *testing.T) {
	var (
		wg    sync.WaitGroup
		count atomic.Int64
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		Submit(func() {
			defer wg.Done()
			count.Add(1)
		})
	}
	wg.Wait()
	if count.Load() != 100 {
		t.Fatalf("expected 100 jobs to run, got %d", count.Load())
	}
}

func TestPanicDoesNotStopWorkers(t *testing.T) {
	for i := 0; i < Workers()*2; i++ {
		var wg sync.WaitGroup
		wg.Add(1)
		Submit(func() {
			defer wg.Done()
			panic("job failed")
		})
		wg.Wait()
	}

	done := make(chan struct{})
	Submit(func() { close(done) })
	<-done
}
