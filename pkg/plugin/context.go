package plugin

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/oops"

	"github.com/justyntemme/ofxgo/pkg/framework/handle"
	"github.com/justyntemme/ofxgo/pkg/framework/registry"
	"github.com/justyntemme/ofxgo/pkg/framework/suite"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// Context is what an effect sees of the host while it handles one action.
type Context struct {
	host   ofx.Host
	suites *suite.Table
	logger zerolog.Logger
	tiles  int
}

// Host returns the host descriptor recorded by setHost.
func (c *Context) Host() ofx.Host { return c.host }

// Suites returns the suite table loaded by the Load action.
func (c *Context) Suites() *suite.Table { return c.suites }

// Logger returns a logger tagged with the plugin identifier and action.
func (c *Context) Logger() zerolog.Logger { return c.logger }

// Tiles returns the configured tile count for renders, 0 meaning one tile
// per host CPU.
func (c *Context) Tiles() int { return c.tiles }

// NumThreads returns the number of CPUs the host is willing to run
// RunInThreads work on.
func (c *Context) NumThreads() (int, error) {
	mt, err := c.suites.MultiThread()
	if err != nil {
		return 0, err
	}
	n, st := mt.MultiThreadNumCPUs()
	return n, ofx.FromStatus(st, "multiThreadNumCPUs")
}

// ThreadIndex returns the index of the calling host thread.
func (c *Context) ThreadIndex() (int, error) {
	mt, err := c.suites.MultiThread()
	if err != nil {
		return 0, err
	}
	n, st := mt.MultiThreadIndex()
	return n, ofx.FromStatus(st, "multiThreadIndex")
}

// IsSpawnedThread reports whether the caller runs on a thread spawned by
// RunInThreads.
func (c *Context) IsSpawnedThread() bool {
	mt, err := c.suites.MultiThread()
	if err != nil {
		return false
	}
	return mt.MultiThreadIsSpawnedThread()
}

// NewMutex creates a host mutex.
func (c *Context) NewMutex(lockCount int) (*handle.HostMutex, error) {
	return handle.NewHostMutex(c.suites, lockCount)
}

// Runnable is work split across host threads.
type Runnable interface {
	Run(threadIndex, threadCount int)
}

// RunnableFunc adapts a function to Runnable.
type RunnableFunc func(threadIndex, threadCount int)

// Run calls f.
func (f RunnableFunc) Run(threadIndex, threadCount int) { f(threadIndex, threadCount) }

type threadJob struct {
	runnable Runnable
	logger   zerolog.Logger

	mu  sync.Mutex
	err error
}

func (j *threadJob) fail(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err == nil {
		j.err = err
	}
}

// Runnables live here while RunInThreads blocks; the host only carries the id.
var threadJobs = registry.New[*threadJob]()

// RunInThreads runs r on n host threads and blocks until all of them
// return. n of 0 lets the host choose. A panic on any thread is logged and
// returned once every thread has finished.
func (c *Context) RunInThreads(n int, r Runnable) error {
	mt, err := c.suites.MultiThread()
	if err != nil {
		return err
	}
	job := &threadJob{runnable: r, logger: c.logger}
	id := threadJobs.Register(job)
	defer threadJobs.Take(id)

	if err := ofx.FromStatus(mt.MultiThread(n, id), "multiThread"); err != nil {
		return err
	}
	job.mu.Lock()
	defer job.mu.Unlock()
	return job.err
}

// RunThreadEntry is called by the bridge on every host thread started by
// RunInThreads.
func RunThreadEntry(id uintptr, index, count int) {
	job, ok := threadJobs.Lookup(id)
	if !ok {
		return
	}
	err := oops.In("plugin").
		With("thread", index, "threads", count).
		Recoverf(func() { job.runnable.Run(index, count) }, "runnable panicked on thread %d", index)
	if err != nil {
		job.logger.Error().Err(err).Int("thread", index).Msg("thread panicked")
		job.fail(err)
	}
}
