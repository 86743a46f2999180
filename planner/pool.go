package planner

import (
	"github.com/cubefs/cubefs/blobstore/util/taskpool"
)

// workerPool runs planning units. A positive size uses a fixed pool; zero
// spawns one goroutine per unit, mirroring an elastic executor.
type workerPool struct {
	pool    taskpool.TaskPool
	bounded bool
}

func newWorkerPool(size int) *workerPool {
	if size > 0 {
		return &workerPool{pool: taskpool.New(size, size), bounded: true}
	}
	return &workerPool{}
}

func (p *workerPool) Run(f func()) {
	if p.bounded {
		p.pool.Run(f)
		return
	}
	go f()
}

func (p *workerPool) Close() {
	if p.bounded {
		p.pool.Close()
	}
}
