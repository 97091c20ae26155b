// Package workers provides abstractions for managing and running
// background workers. It defines the Worker interface, a Workers aggregate
// for running several workers uniformly, and the auto-lock worker that
// relocks idle vault sessions.
package workers

// Worker is the interface implemented by any background worker. Run starts
// the worker; implementations block for the duration of their work or spawn
// goroutines internally.
type Worker interface {
	Run()
}

// Workers runs a set of workers in order.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
