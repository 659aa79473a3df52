// File: internal/worker/worker.go
package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool. The number of workers bounds how
// many submitted tasks run at the same time.
type Pool interface {
	Submit(Task)
	Do(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Do submits the task and blocks until a worker has finished running it.
func (p *pool) Do(t Task) {
	done := make(chan struct{})
	p.jobs <- func() {
		defer close(done)
		if t != nil {
			t()
		}
	}
	<-done
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
