package hci

import (
	"encoding/binary"
	"strings"
	"testing"
	"time"

	"github.com/halcyon-bt/bthost/hci/evt"
)

func sentOpcode(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

func TestCommandOrdering(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)

	run := NewHandler("test")
	defer run.Close()

	completes := make(chan evt.CommandComplete, 1)
	statuses := make(chan evt.CommandStatus, 1)

	h.EnqueueCommand(testCmd{op: 0x0C01, params: make([]byte, 8)}, OnceComplete(run, func(e evt.CommandComplete) {
		completes <- e
	}))
	h.EnqueueCommandForStatus(testCmd{op: 0x200C, params: []byte{1, 0}}, OnceStatus(run, func(e evt.CommandStatus) {
		statuses <- e
	}))

	a := waitCmd(t, f)
	if sentOpcode(a) != 0x0C01 {
		t.Fatalf("first sent opcode 0x%04X, want 0x0C01", sentOpcode(a))
	}
	// single-flight: B must wait for A's response
	expectNoCmd(t, f)

	f.event(commandCompleteEvt(0x0C01, 1, 0x00))

	select {
	case e := <-completes:
		if e.CommandOpcode() != 0x0C01 {
			t.Fatalf("complete sink got opcode 0x%04X", e.CommandOpcode())
		}
	case <-time.After(time.Second):
		t.Fatalf("complete sink not invoked")
	}

	b := waitCmd(t, f)
	if sentOpcode(b) != 0x200C {
		t.Fatalf("second sent opcode 0x%04X, want 0x200C", sentOpcode(b))
	}

	f.event(commandStatusEvt(0x00, 1, 0x200C))

	select {
	case e := <-statuses:
		if e.CommandOpcode() != 0x200C {
			t.Fatalf("status sink got opcode 0x%04X", e.CommandOpcode())
		}
	case <-time.After(time.Second):
		t.Fatalf("status sink not invoked")
	}

	expectNoFatal(t, fatals)
}

func TestSingleFlight(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)

	run := NewHandler("test")
	defer run.Close()

	for i := 0; i < 3; i++ {
		h.EnqueueCommand(testCmd{op: 0x0C01 + i}, OnceComplete(run, func(evt.CommandComplete) {}))
	}

	first := waitCmd(t, f)
	if sentOpcode(first) != 0x0C01 {
		t.Fatalf("first sent opcode 0x%04X", sentOpcode(first))
	}
	// the next command waits for the first one's response
	expectNoCmd(t, f)

	f.event(commandCompleteEvt(0x0C01, 5, 0x00))
	second := waitCmd(t, f)
	if sentOpcode(second) != 0x0C02 {
		t.Fatalf("second sent opcode 0x%04X", sentOpcode(second))
	}
	// credits were granted for more, but the pipeline stays single-flight
	expectNoCmd(t, f)

	expectNoFatal(t, fatals)
}

func TestCreditReturnOnly(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	h.Start()
	waitCmd(t, f)
	// reset completes without returning any credit
	f.event(commandCompleteEvt(0x0C03, 0, 0x00))
	flush(t, h)

	run := NewHandler("test")
	defer run.Close()

	h.EnqueueCommand(testCmd{op: 0x0C01}, OnceComplete(run, func(evt.CommandComplete) {}))
	// starved: queued but no credit to send with
	expectNoCmd(t, f)

	// NOP response returns a credit without matching any command
	f.event(commandCompleteEvt(opcodeNone, 1))

	b := waitCmd(t, f)
	if sentOpcode(b) != 0x0C01 {
		t.Fatalf("sent opcode 0x%04X after credit return", sentOpcode(b))
	}

	expectNoFatal(t, fatals)
}

func TestOpcodeMismatchIsFatal(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)

	run := NewHandler("test")
	defer run.Close()

	h.EnqueueCommand(testCmd{op: 0x0C01}, OnceComplete(run, func(evt.CommandComplete) {}))
	waitCmd(t, f)

	f.event(commandCompleteEvt(0x200C, 1, 0x00))

	err := expectFatal(t, fatals)
	if !strings.Contains(err.Error(), "0x0C01") {
		t.Fatalf("fatal does not identify the waiting opcode: %v", err)
	}
}

func TestWrongResponseKindIsFatal(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)

	run := NewHandler("test")
	defer run.Close()

	h.EnqueueCommand(testCmd{op: 0x0C01}, OnceComplete(run, func(evt.CommandComplete) {}))
	waitCmd(t, f)

	// the head entry expects a complete; a status for the same opcode is a
	// protocol violation
	f.event(commandStatusEvt(0x00, 1, 0x0C01))

	err := expectFatal(t, fatals)
	if !strings.Contains(err.Error(), "command status") {
		t.Fatalf("unexpected fatal: %v", err)
	}
}

func TestCompleteForStatusCommandIsFatal(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)

	run := NewHandler("test")
	defer run.Close()

	h.EnqueueCommandForStatus(testCmd{op: 0x200C}, OnceStatus(run, func(evt.CommandStatus) {}))
	waitCmd(t, f)

	f.event(commandCompleteEvt(0x200C, 1, 0x00))

	err := expectFatal(t, fatals)
	if !strings.Contains(err.Error(), "command complete") {
		t.Fatalf("unexpected fatal: %v", err)
	}
}

func TestResponseWithEmptyQueueIsFatal(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)
	flush(t, h)

	f.event(commandCompleteEvt(0x0C01, 1, 0x00))

	err := expectFatal(t, fatals)
	if !strings.Contains(err.Error(), "unexpected command complete") {
		t.Fatalf("unexpected fatal: %v", err)
	}
}

func TestCommandTimeoutIsFatal(t *testing.T) {
	h, f, fatals := newTestHCI(t, OptCommandTimeout(50*time.Millisecond))
	defer h.Stop()

	h.Start()
	waitCmd(t, f)
	// never answer the reset

	err := expectFatal(t, fatals)
	if !strings.Contains(err.Error(), "0x0C03") {
		t.Fatalf("timeout fatal does not identify the opcode: %v", err)
	}
}

func TestResponseCancelsTimeout(t *testing.T) {
	h, f, fatals := newTestHCI(t, OptCommandTimeout(80*time.Millisecond))
	defer h.Stop()

	mustStart(t, h, f)

	time.Sleep(150 * time.Millisecond)
	expectNoFatal(t, fatals)
}
