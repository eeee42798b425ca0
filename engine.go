package tradecore

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/xid"
)

// DefaultShutdownGrace bounds how long Close waits for the worker to
// drain the queue and exit.
const DefaultShutdownGrace = 2 * time.Second

// drainPollInterval bounds the wait for stragglers that acquired capacity
// but have not enqueued yet when shutdown begins.
const drainPollInterval = 5 * time.Millisecond

type task struct {
	id  xid.ID
	run func(ctx *CommandContext)
}

// CommandEngine executes all commands against the shared trading state on
// one dedicated worker. Admission is controlled by a capacity semaphore
// sized to the queue: a submission either enqueues and returns a pending
// handle, or fails fast with a backpressure error. It never blocks the
// caller. The single writer is the sole concurrency-safety mechanism for
// the book, wallets and stores.
type CommandEngine struct {
	context          *CommandContext
	capacity         chan struct{}
	tasks            chan task
	isShutdown       atomic.Bool
	done             chan struct{}
	shutdownComplete chan struct{}
}

// NewCommandEngine creates the engine and starts its worker. Capacity
// bounds the number of admitted (queued + in-flight) commands.
func NewCommandEngine(ctx *CommandContext, capacity int) (*CommandEngine, error) {
	if ctx == nil || capacity <= 0 {
		return nil, ErrInvalidParam
	}

	engine := &CommandEngine{
		context:          ctx,
		capacity:         make(chan struct{}, capacity),
		tasks:            make(chan task, capacity),
		done:             make(chan struct{}),
		shutdownComplete: make(chan struct{}),
	}
	go engine.run()

	return engine, nil
}

// Submit admits the command and returns its result handle immediately.
// The handle fails with ErrShutdown after shutdown begins, or with
// ErrBackpressure when capacity is exhausted; otherwise it is fulfilled
// by the worker once the command has run.
func Submit[R any](engine *CommandEngine, cmd Command[R]) *Result[R] {
	res := newResult[R]()

	if cmd == nil {
		res.fail(ErrInvalidParam)
		return res
	}
	if engine.isShutdown.Load() {
		res.fail(ErrShutdown)
		return res
	}

	select {
	case engine.capacity <- struct{}{}:
	default:
		res.fail(ErrBackpressure)
		return res
	}

	id := xid.New()
	t := task{
		id: id,
		run: func(ctx *CommandContext) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("command panicked",
						"command_id", id.String(),
						"panic", fmt.Sprintf("%v", r))
					res.fail(&CommandError{CommandID: id.String(), Err: fmt.Errorf("panic: %v", r)})
				}
			}()

			value, err := cmd.Execute(ctx)
			if err != nil {
				logger.Warn("command execution failed",
					"command_id", id.String(),
					"error", err.Error())
				res.fail(&CommandError{CommandID: id.String(), Err: err})
				return
			}
			res.complete(value)
		},
	}

	select {
	case engine.tasks <- t:
	default:
		// Should not happen: the queue is sized to the semaphore.
		<-engine.capacity
		res.fail(ErrBackpressure)
	}

	return res
}

// run executes tasks one at a time in enqueue order until shutdown.
func (engine *CommandEngine) run() {
	for {
		select {
		case <-engine.done:
			engine.drain()
			return
		case t := <-engine.tasks:
			engine.execute(t)
		}
	}
}

// drain runs every admitted task before the worker exits. A submission
// holds a capacity unit from admission until after execution, so the
// queue is fully drained once the semaphore is empty.
func (engine *CommandEngine) drain() {
	defer close(engine.shutdownComplete)

	for {
		select {
		case t := <-engine.tasks:
			engine.execute(t)
		default:
			if len(engine.capacity) == 0 {
				return
			}
			// An admitted submission has not reached the queue yet.
			time.Sleep(drainPollInterval)
		}
	}
}

// execute runs one task and releases its capacity unit, whether the
// command succeeded or failed.
func (engine *CommandEngine) execute(t task) {
	t.run(engine.context)
	<-engine.capacity
}

// Shutdown stops admissions, waits for the worker to drain every already
// admitted command, and returns once the worker has exited or ctx expires.
func (engine *CommandEngine) Shutdown(ctx context.Context) error {
	if engine.isShutdown.CompareAndSwap(false, true) {
		close(engine.done)
	}

	select {
	case <-engine.shutdownComplete:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close shuts the engine down with the default grace period.
func (engine *CommandEngine) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownGrace)
	defer cancel()
	return engine.Shutdown(ctx)
}
