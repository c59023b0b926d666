package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// maintenanceJob stands in for the periodic account maintenance work the
// pool runs in production.
type maintenanceJob struct {
	runs *int32
	err  error
}

func (j *maintenanceJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.runs, 1)
	return j.err
}

func TestPool(t *testing.T) {
	var runs int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &maintenanceJob{runs: &runs}
	pool.Enqueue(job)
	pool.Enqueue(job)

	// Give the workers time to drain the queue before stopping.
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	assert.EqualValues(t, TestExpectedJobCount, atomic.LoadInt32(&runs))
}

func TestPoolSurvivesFailingJob(t *testing.T) {
	var runs int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()

	pool.Enqueue(&maintenanceJob{runs: &runs, err: errors.New("restore failed")})
	pool.Enqueue(&maintenanceJob{runs: &runs})

	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	// A failing job is logged, not fatal; the next job still runs.
	assert.EqualValues(t, 2, atomic.LoadInt32(&runs))
}
