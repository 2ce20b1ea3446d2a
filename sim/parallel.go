package sim

import (
	"runtime"
	"sync"

	"github.com/strobework/cubestorm/components"
	"github.com/strobework/cubestorm/vecmath"
)

// parallelThreshold is the minimum entity count to use parallel processing.
// Below this, single-threaded is faster due to goroutine overhead.
const parallelThreshold = 64

// spinTarget captures a live rotation target for one frame. The component
// pointer stays valid for the whole phase: no structural world changes
// happen while spins are applied.
type spinTarget struct {
	tr    *components.Transform
	speed float32
}

// workChunk represents a range of targets for a worker to process.
type workChunk struct {
	start, end int
	dt         float32
}

// parallelState holds resources for parallel spin computation.
type parallelState struct {
	targets    []spinTarget
	numWorkers int

	// Worker pool channels
	workChan chan workChunk // sends work to workers
	doneChan chan struct{}  // workers signal completion
	stopChan chan struct{}  // signals workers to exit
	wg       sync.WaitGroup // tracks active workers
	running  bool           // true if workers are running
}

func newParallelState() *parallelState {
	return &parallelState{
		numWorkers: runtime.GOMAXPROCS(0),
		targets:    make([]spinTarget, 0, 1024),
	}
}

// startWorkers launches persistent worker goroutines.
func (p *parallelState) startWorkers(e *Engine) {
	if p.running {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(e)
	}
}

// stopWorkers signals all workers to exit and waits for them.
func (p *parallelState) stopWorkers() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

// worker runs in a goroutine, processing chunks until stopped.
func (p *parallelState) worker(e *Engine) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			e.spinChunk(chunk.start, chunk.end, chunk.dt)
			p.doneChan <- struct{}{}
		}
	}
}

// updateSpins advances every entity's rotation by one frame. Frames with
// dt <= 0 leave all rotations untouched.
func (e *Engine) updateSpins(dt float32) {
	if dt <= 0 {
		return
	}

	// Phase A: Collect targets (single-threaded)
	e.parallel.targets = e.parallel.targets[:0]

	query := e.spinFilter.Query()
	for query.Next() {
		tr, spin := query.Get()
		e.parallel.targets = append(e.parallel.targets, spinTarget{
			tr:    tr,
			speed: spin.Speed,
		})
	}

	n := len(e.parallel.targets)
	if n == 0 {
		return
	}

	// Phase B: Apply - single or parallel based on entity count
	if n < parallelThreshold {
		e.spinChunk(0, n, dt)
		return
	}
	e.spinParallel(n, dt)
}

// spinParallel dispatches work to the worker pool. Chunks never overlap,
// so every rotation advances exactly once per frame.
func (e *Engine) spinParallel(n int, dt float32) {
	// Ensure workers are running
	if !e.parallel.running {
		e.parallel.startWorkers(e)
	}

	numWorkers := e.parallel.numWorkers
	chunkSize := (n + numWorkers - 1) / numWorkers

	// Dispatch chunks to workers
	chunksDispatched := 0
	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		e.parallel.workChan <- workChunk{start: start, end: end, dt: dt}
		chunksDispatched++
	}

	// Wait for all chunks to complete
	for i := 0; i < chunksDispatched; i++ {
		<-e.parallel.doneChan
	}
}

// spinChunk applies one rotation step to a range of targets.
func (e *Engine) spinChunk(i0, i1 int, dt float32) {
	d := &e.cfg.Derived
	for i := i0; i < i1; i++ {
		t := &e.parallel.targets[i]
		step := t.speed * dt
		t.tr.Rotation = vecmath.SpinStep(t.tr.Rotation, d.WeightY32*step, d.WeightX32*step, d.WeightZ32*step)
	}
}
