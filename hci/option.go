package hci

import (
	"time"

	"github.com/pkg/errors"
)

// Option configures the layer at construction.
type Option func(*HCI) error

// OptCommandTimeout sets how long the pipeline waits for a response before
// declaring the controller dead.
func OptCommandTimeout(d time.Duration) Option {
	return func(h *HCI) error {
		if d <= 0 {
			return errors.New("command timeout must be positive")
		}
		h.timeout = d
		return nil
	}
}

// OptAclQueueDepth sets the depth of the bidirectional ACL queue.
func OptAclQueueDepth(n int) Option {
	return func(h *HCI) error {
		if n <= 0 {
			return errors.New("acl queue depth must be positive")
		}
		h.aclDepth = n
		return nil
	}
}

// OptFatalHandler replaces the reaction to unrecoverable faults (protocol
// violations, controller stall, registration conflicts). The default logs
// and terminates the process.
func OptFatalHandler(f func(error)) Option {
	return func(h *HCI) error {
		if f == nil {
			return errors.New("fatal handler must not be nil")
		}
		h.fatal = f
		return nil
	}
}
