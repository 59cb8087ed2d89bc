package dispatch

import (
	"context"
	"sync"
)

const defaultQueueBuffer = 32

// QueueOptions controls per-chat queue behaviour.
type QueueOptions struct {
	// Buffer is the number of pending events one chat may accumulate
	// before further events are rejected with ErrQueueFull.
	Buffer int
}

type job struct {
	ctx context.Context
	run func(ctx context.Context)
}

// Queues serializes event handling per chat: every chat gets its own
// FIFO queue drained by a dedicated goroutine, so one conversation's
// events never interleave while separate conversations proceed in
// parallel.
type Queues struct {
	buffer int

	mu    sync.Mutex
	chans map[int64]chan job

	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// NewQueues creates an empty queue set with sane defaults if options are zeroed.
func NewQueues(opts QueueOptions) *Queues {
	if opts.Buffer <= 0 {
		opts.Buffer = defaultQueueBuffer
	}
	return &Queues{
		buffer: opts.Buffer,
		chans:  make(map[int64]chan job),
		stop:   make(chan struct{}),
	}
}

// Enqueue schedules run on the chat's serialized queue, creating the queue
// on first contact. It never blocks: a saturated queue rejects the event.
func (q *Queues) Enqueue(ctx context.Context, chatID int64, run func(ctx context.Context)) error {
	if run == nil {
		return nil
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	select {
	case <-q.stop:
		return ErrQueueClosed
	default:
	}
	if q.chans == nil {
		return ErrQueueClosed
	}

	ch, ok := q.chans[chatID]
	if !ok {
		ch = make(chan job, q.buffer)
		q.chans[chatID] = ch
		q.wg.Add(1)
		go q.worker(ch)
	}

	select {
	case ch <- job{ctx: ctx, run: run}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events and waits for every queue to drain.
func (q *Queues) Close() {
	q.once.Do(func() {
		close(q.stop)
		q.mu.Lock()
		for _, ch := range q.chans {
			close(ch)
		}
		q.chans = nil
		q.mu.Unlock()
		q.wg.Wait()
	})
}

func (q *Queues) worker(ch chan job) {
	defer q.wg.Done()
	for j := range ch {
		ctx := j.ctx
		if ctx == nil {
			ctx = context.Background()
		}
		j.run(ctx)
	}
}
