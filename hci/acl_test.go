package hci

import (
	"bytes"
	"testing"
	"time"
)

func aclPkt(handle uint16, data ...byte) []byte {
	p := []byte{byte(handle), byte(handle >> 8), byte(len(data)), byte(len(data) >> 8)}
	return append(p, data...)
}

func TestAclPacketView(t *testing.T) {
	p := AclPacket(aclPkt(0x0040, 0x01, 0x02, 0x03))
	if err := p.Valid(); err != nil {
		t.Fatal(err)
	}
	if p.Handle() != 0x0040 {
		t.Fatalf("handle 0x%04X", p.Handle())
	}
	if p.DataLength() != 3 {
		t.Fatalf("data length %d", p.DataLength())
	}
	if !bytes.Equal(p.Data(), []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("data [% X]", p.Data())
	}

	// PB/BC flags live in the top bits of the handle field
	flagged := AclPacket([]byte{0x40, 0x20, 0x00, 0x00})
	if flagged.PacketBoundaryFlag() != 0x2 {
		t.Fatalf("pb flag %d", flagged.PacketBoundaryFlag())
	}

	if err := AclPacket([]byte{0x40, 0x00, 0x05, 0x00, 0x01}).Valid(); err == nil {
		t.Fatal("no error on length mismatch")
	}
}

func TestAclOutboundDrain(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)

	q := h.AclQueue()
	want := [][]byte{
		aclPkt(0x0040, 0x0A),
		aclPkt(0x0040, 0x0B),
		aclPkt(0x0041, 0x0C),
	}
	for _, p := range want {
		if !q.Write(AclPacket(p)) {
			t.Fatalf("write refused")
		}
	}

	for i, w := range want {
		select {
		case got := <-f.aclCh:
			if !bytes.Equal(got, w) {
				t.Fatalf("packet %d: [% X], want [% X]", i, got, w)
			}
		case <-time.After(time.Second):
			t.Fatalf("packet %d not sent", i)
		}
	}

	expectNoFatal(t, fatals)
}

func TestAclInboundDelivery(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)

	want := [][]byte{
		aclPkt(0x0040, 0x01),
		aclPkt(0x0040, 0x02),
	}
	for _, p := range want {
		f.aclData(p)
	}

	q := h.AclQueue()
	for i, w := range want {
		got, ok := q.Read()
		if !ok {
			t.Fatalf("conduit stopped early")
		}
		if !bytes.Equal(got, w) {
			t.Fatalf("packet %d: [% X], want [% X]", i, got, w)
		}
	}

	expectNoFatal(t, fatals)
}

func TestAclInboundAbsorbsBursts(t *testing.T) {
	h, f, fatals := newTestHCI(t)
	defer h.Stop()

	mustStart(t, h, f)

	// burst larger than the bounded queue depth; the enqueue buffer must
	// absorb it without blocking the HAL thread
	const n = 16
	done := make(chan struct{})
	go func() {
		for i := 0; i < n; i++ {
			f.aclData(aclPkt(0x0040, byte(i)))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("hal thread blocked on inbound acl")
	}

	q := h.AclQueue()
	for i := 0; i < n; i++ {
		got, ok := q.Read()
		if !ok {
			t.Fatalf("conduit stopped early")
		}
		if got.Data()[0] != byte(i) {
			t.Fatalf("packet %d out of order: [% X]", i, got)
		}
	}

	expectNoFatal(t, fatals)
}

func TestAclStopUnblocksReaders(t *testing.T) {
	h, f, _ := newTestHCI(t)

	mustStart(t, h, f)

	q := h.AclQueue()
	read := make(chan bool, 1)
	go func() {
		_, ok := q.Read()
		read <- ok
	}()

	h.Stop()

	select {
	case ok := <-read:
		if ok {
			t.Fatalf("read reported success after stop")
		}
	case <-time.After(time.Second):
		t.Fatalf("reader still blocked after stop")
	}
}
