package main

import (
	"errors"
	"sync"
)

var errPoolClosed = errors.New("vertex pool closed")

// vertexPool runs a per-vertex job over the grid on persistent worker
// goroutines. run blocks until every worker has finished its rows.
type vertexPool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	step    int
	pending int
	closed  bool
	work    []workerRows
	job     func(start, end int)
	wg      sync.WaitGroup
}

// newVertexPool launches workerCount goroutines over a rows x columns grid.
func newVertexPool(workerCount, rows, columns int) *vertexPool {
	p := &vertexPool{work: assignRowSpans(workerCount, rows, columns)}
	p.cond = sync.NewCond(&p.mu)
	for i := range p.work {
		p.wg.Add(1)
		go p.workerLoop(i)
	}
	return p
}

func (p *vertexPool) workerCount() int { return len(p.work) }

// workerLoop waits for each new step and runs the current job over its rows.
func (p *vertexPool) workerLoop(index int) {
	defer p.wg.Done()
	lastStep := 0
	p.mu.Lock()
	for {
		for p.step == lastStep && !p.closed {
			p.cond.Wait()
		}
		if p.closed {
			p.mu.Unlock()
			return
		}
		lastStep = p.step
		job := p.job
		rows := p.work[index].rows
		p.mu.Unlock()

		for _, r := range rows {
			job(r.start, r.end)
		}

		p.mu.Lock()
		p.pending--
		if p.pending == 0 {
			p.cond.Broadcast()
		}
	}
}

// run executes job for every row and returns once all workers are done.
// It reports false without running job when the pool is closed.
func (p *vertexPool) run(job func(start, end int)) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false
	}
	p.job = job
	p.pending = len(p.work)
	p.step++
	p.cond.Broadcast()
	for p.pending > 0 {
		p.cond.Wait()
	}
	p.job = nil
	return true
}

// close stops the workers and waits for them to exit.
func (p *vertexPool) close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()
	p.wg.Wait()
}
