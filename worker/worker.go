package worker

import (
	"runtime"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for f := range workerQueue {
		run(f)
	}
}

// run executes a job, reporting a panic to sentry instead of taking the worker down with it.
func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues a function that may be CPU intensive. Submit blocks while every worker is busy
// and the queue is full.
func Submit(f func()) {
	workerQueue <- f
}

// Workers returns the amount of workers running jobs.
func Workers() int {
	return runtime.NumCPU()
}
