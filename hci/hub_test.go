package hci

import (
	"strings"
	"testing"
	"time"

	"github.com/halcyon-bt/bthost/hci/evt"
)

func TestEventDispatchInArrivalOrder(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)

	run := NewHandler("test")
	defer run.Close()

	got := make(chan evt.EventPacket, 4)
	h.RegisterEventHandler(evt.DisconnectionCompleteCode, OnEvent(run, func(e evt.EventPacket) {
		got <- e
	}))
	flush(t, h)

	f.event(eventPkt(evt.DisconnectionCompleteCode, 0x00, 0x40, 0x00, 0x13))
	f.event(eventPkt(evt.DisconnectionCompleteCode, 0x00, 0x41, 0x00, 0x16))

	for i, wantHandle := range []uint16{0x0040, 0x0041} {
		select {
		case e := <-got:
			dc := evt.DisconnectionComplete(e.Payload())
			if dc.ConnectionHandle() != wantHandle {
				t.Fatalf("event %d: handle 0x%04X, want 0x%04X", i, dc.ConnectionHandle(), wantHandle)
			}
		case <-time.After(time.Second):
			t.Fatalf("event %d not delivered", i)
		}
	}

	expectNoFatal(t, fatals)
}

func TestUnregisteredEventIsDropped(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)
	flush(t, h)

	f.event(eventPkt(0x11, 0x00, 0x40, 0x00))
	flush(t, h)

	expectNoFatal(t, fatals)
}

func TestDropCodesStaySilent(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)
	flush(t, h)

	f.event(eventPkt(evt.PageScanRepetitionModeChangeCode, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x00))
	f.event(eventPkt(evt.MaxSlotsChangeCode, 0x40, 0x00, 0x05))
	f.event(eventPkt(evt.VendorSpecificCode, 0xAA))
	flush(t, h)

	expectNoFatal(t, fatals)
}

func TestDoubleRegistrationIsFatal(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)

	run := NewHandler("test")
	defer run.Close()

	cb := OnEvent(run, func(evt.EventPacket) {})
	h.RegisterEventHandler(evt.RoleChangeCode, cb)
	h.RegisterEventHandler(evt.RoleChangeCode, cb)

	err := expectFatal(t, fatals)
	if !strings.Contains(err.Error(), "second handler") {
		t.Fatalf("unexpected fatal: %v", err)
	}
}

func TestUnregisterUnknownIsFatal(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)

	h.UnregisterEventHandler(evt.RoleChangeCode)

	err := expectFatal(t, fatals)
	if !strings.Contains(err.Error(), "no handler registered") {
		t.Fatalf("unexpected fatal: %v", err)
	}
}

func TestLeDemux(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)

	run := NewHandler("test")
	defer run.Close()

	got := make(chan evt.LEMeta, 2)
	h.RegisterLeEventHandler(0x0A, OnLeEvent(run, func(e evt.LEMeta) {
		got <- e
	}))
	flush(t, h)

	f.event(leMetaEvt(0x0A, 0x00, 0x41, 0x00))

	select {
	case e := <-got:
		if e.SubeventCode() != 0x0A {
			t.Fatalf("subevent 0x%02X, want 0x0A", e.SubeventCode())
		}
	case <-time.After(time.Second):
		t.Fatalf("le handler not invoked")
	}
	expectNoFatal(t, fatals)

	// an unrouted LE subevent is a protocol setup error
	f.event(leMetaEvt(0x0B, 0x00))

	err := expectFatal(t, fatals)
	if !strings.Contains(err.Error(), "0x0B") {
		t.Fatalf("unexpected fatal: %v", err)
	}

	select {
	case <-got:
		t.Fatalf("handler invoked for wrong subevent")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnregisterLeAllowsReregister(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)

	run := NewHandler("test")
	defer run.Close()

	cb := OnLeEvent(run, func(evt.LEMeta) {})
	h.RegisterLeEventHandler(0x0A, cb)
	h.UnregisterLeEventHandler(0x0A)
	h.RegisterLeEventHandler(0x0A, cb)
	flush(t, h)

	expectNoFatal(t, fatals)
}
