package hci

import (
	"time"

	"github.com/pkg/errors"

	"github.com/halcyon-bt/bthost/hci/cmd"
	"github.com/halcyon-bt/bthost/hci/evt"
	"github.com/halcyon-bt/bthost/hci/hal"
)

// commandEntry owns a queued command builder and exactly one completion
// sink; forStatus records which.
type commandEntry struct {
	c          cmd.Command
	forStatus  bool
	onStatus   *StatusCallback
	onComplete *CompleteCallback
}

// commandQueue serializes commands toward the controller: FIFO order, at
// most one in flight, gated on the controller's command credits
// [Vol 2, Part E, 4.4]. All fields are owned by the core handler.
type commandQueue struct {
	run   *Handler
	hal   hal.Hal
	fatal func(error)

	queue   []*commandEntry
	credits int
	waiting int
	// inFlight qualifies waiting: 0x0000 is a real opcode (NOP), so the
	// sentinel is a flag, not a magic value.
	inFlight bool

	timeout time.Duration
	alarm   *alarm
}

func newCommandQueue(run *Handler, h hal.Hal, timeout time.Duration, fatal func(error)) *commandQueue {
	return &commandQueue{
		run:     run,
		hal:     h,
		fatal:   fatal,
		credits: 1, // send reset first
		timeout: timeout,
		alarm:   newAlarm(run),
	}
}

func (q *commandQueue) enqueueForComplete(c cmd.Command, onComplete *CompleteCallback) {
	q.queue = append(q.queue, &commandEntry{c: c, onComplete: onComplete})
	q.trySend()
}

func (q *commandQueue) enqueueForStatus(c cmd.Command, onStatus *StatusCallback) {
	q.queue = append(q.queue, &commandEntry{c: c, forStatus: true, onStatus: onStatus})
	q.trySend()
}

// trySend dispatches the head command if credits allow and nothing is in
// flight. Serializing and re-parsing the builder validates it and yields
// the opcode to match the response against.
func (q *commandQueue) trySend() {
	if q.credits == 0 {
		return
	}
	if q.inFlight {
		return
	}
	if len(q.queue) == 0 {
		return
	}

	head := q.queue[0]
	pkt, err := cmd.Build(head.c)
	if err == nil {
		err = pkt.Valid()
	}
	if err != nil {
		q.fatal(errors.Wrapf(err, "malformed command builder for opcode 0x%04X", head.c.OpCode()))
		return
	}

	if err := q.hal.SendCommand(pkt); err != nil {
		q.fatal(errors.Wrapf(err, "can't send command 0x%04X", pkt.OpCode()))
		return
	}

	q.waiting = pkt.OpCode()
	q.inFlight = true
	// only allow one outstanding command, whatever the controller offered
	q.credits = 0
	op := q.waiting
	q.alarm.schedule(q.timeout, func() { q.onTimeout(op) })
}

func (q *commandQueue) onTimeout(op int) {
	q.fatal(errors.Errorf("timed out waiting for response to opcode 0x%04X", op))
}

func (q *commandQueue) handleCommandComplete(e evt.EventPacket) {
	cc := evt.CommandComplete(e.Payload())
	if err := cc.Valid(); err != nil {
		q.fatal(errors.Wrap(err, "invalid command complete"))
		return
	}
	q.credits = int(cc.NumHCICommandPackets())

	op := int(cc.CommandOpcode())
	if op == opcodeNone {
		// NOP: credit return only
		q.trySend()
		return
	}

	if len(q.queue) == 0 {
		q.fatal(errors.Errorf("unexpected command complete with opcode 0x%04X", op))
		return
	}
	if !q.inFlight || op != q.waiting {
		q.fatal(errors.Errorf("waiting for 0x%04X, got command complete for 0x%04X", q.waiting, op))
		return
	}
	head := q.queue[0]
	if head.forStatus {
		q.fatal(errors.Errorf("waiting for command status 0x%04X, got command complete", op))
		return
	}

	q.alarm.cancel()
	q.inFlight = false
	q.queue = q.queue[1:]
	head.onComplete.post(cc)

	q.trySend()
}

func (q *commandQueue) handleCommandStatus(e evt.EventPacket) {
	cs := evt.CommandStatus(e.Payload())
	if err := cs.Valid(); err != nil {
		q.fatal(errors.Wrap(err, "invalid command status"))
		return
	}
	q.credits = int(cs.NumHCICommandPackets())

	op := int(cs.CommandOpcode())
	if op == opcodeNone {
		// NOP: credit return only
		q.trySend()
		return
	}

	if len(q.queue) == 0 {
		q.fatal(errors.Errorf("unexpected command status with opcode 0x%04X", op))
		return
	}
	if !q.inFlight || op != q.waiting {
		q.fatal(errors.Errorf("waiting for 0x%04X, got command status for 0x%04X", q.waiting, op))
		return
	}
	head := q.queue[0]
	if !head.forStatus {
		q.fatal(errors.Errorf("waiting for command complete 0x%04X, got command status", op))
		return
	}

	q.alarm.cancel()
	q.inFlight = false
	q.queue = q.queue[1:]
	head.onStatus.post(cs)

	q.trySend()
}

// clear drops every queued entry without firing its sink and disarms the
// timeout.
func (q *commandQueue) clear() {
	q.alarm.cancel()
	q.queue = nil
	q.inFlight = false
}
