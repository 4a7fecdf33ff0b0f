package worker

import "sync"

// Task represents a unit of work executed by the pool. Handlers submit
// best-effort side tasks here (media cleanup, admin notification) so the
// response never waits on an external collaborator.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	Stop()
}

const queueSize = 64

// NewPool creates a pool with n workers over a bounded queue. n<=0
// defaults to 1. Submit blocks only once the queue is full.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, queueSize)}
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

// Stop closes the queue and waits for queued tasks to drain.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
