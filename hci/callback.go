package hci

import (
	"sync"

	"github.com/halcyon-bt/bthost/hci/evt"
)

// Callbacks pair a function with the Handler it must run on; the core never
// invokes caller code on its own handler. Event callbacks are repeated;
// command sinks are single-shot and enforce it.

// EventCallback handles every delivered event for a registered code.
type EventCallback struct {
	run *Handler
	fn  func(evt.EventPacket)
}

// OnEvent binds fn to run on h.
func OnEvent(h *Handler, fn func(evt.EventPacket)) EventCallback {
	return EventCallback{run: h, fn: fn}
}

func (c EventCallback) valid() bool {
	return c.run != nil && c.fn != nil
}

func (c EventCallback) post(e evt.EventPacket) {
	c.run.Post(func() { c.fn(e) })
}

// LeEventCallback handles every delivered LE meta event for a registered
// subevent code.
type LeEventCallback struct {
	run *Handler
	fn  func(evt.LEMeta)
}

// OnLeEvent binds fn to run on h.
func OnLeEvent(h *Handler, fn func(evt.LEMeta)) LeEventCallback {
	return LeEventCallback{run: h, fn: fn}
}

func (c LeEventCallback) valid() bool {
	return c.run != nil && c.fn != nil
}

func (c LeEventCallback) post(e evt.LEMeta) {
	c.run.Post(func() { c.fn(e) })
}

// CompleteCallback is the single-shot sink for a command expecting a
// Command Complete response.
type CompleteCallback struct {
	run  *Handler
	once sync.Once
	fn   func(evt.CommandComplete)
}

// OnceComplete binds fn to run on h, at most once.
func OnceComplete(h *Handler, fn func(evt.CommandComplete)) *CompleteCallback {
	return &CompleteCallback{run: h, fn: fn}
}

func (c *CompleteCallback) post(e evt.CommandComplete) {
	c.once.Do(func() {
		c.run.Post(func() { c.fn(e) })
	})
}

// StatusCallback is the single-shot sink for a command expecting a Command
// Status response.
type StatusCallback struct {
	run  *Handler
	once sync.Once
	fn   func(evt.CommandStatus)
}

// OnceStatus binds fn to run on h, at most once.
func OnceStatus(h *Handler, fn func(evt.CommandStatus)) *StatusCallback {
	return &StatusCallback{run: h, fn: fn}
}

func (c *StatusCallback) post(e evt.CommandStatus) {
	c.once.Do(func() {
		c.run.Post(func() { c.fn(e) })
	})
}
