package hci

import "sync"

// Handler is a serial executor: tasks posted to it run one at a time, in
// post order, on a single owned goroutine. The core runs entirely on one
// Handler; callers supply their own to receive callbacks on.
type Handler struct {
	name string

	mu    sync.Mutex
	tasks []func()
	wake  chan struct{}

	done      chan struct{}
	closeOnce sync.Once
}

// NewHandler starts a handler goroutine. The name tags log output.
func NewHandler(name string) *Handler {
	h := &Handler{
		name: name,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go h.loop()
	return h
}

// Post enqueues f. It never blocks and is safe from any goroutine. Tasks
// posted after Close are dropped.
func (h *Handler) Post(f func()) {
	h.mu.Lock()
	h.tasks = append(h.tasks, f)
	h.mu.Unlock()

	select {
	case h.wake <- struct{}{}:
	default:
	}
}

// Close stops the handler after the task in progress. Pending tasks are
// dropped.
func (h *Handler) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

func (h *Handler) loop() {
	for {
		select {
		case <-h.done:
			return
		case <-h.wake:
		}

		for {
			h.mu.Lock()
			if len(h.tasks) == 0 {
				h.mu.Unlock()
				break
			}
			f := h.tasks[0]
			h.tasks = h.tasks[1:]
			h.mu.Unlock()

			select {
			case <-h.done:
				return
			default:
			}
			f()
		}
	}
}
