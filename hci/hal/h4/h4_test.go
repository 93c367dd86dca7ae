package h4

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"
)

type recorder struct {
	events [][]byte
	acls   [][]byte
	scos   [][]byte
}

func (r *recorder) EventReceived(b []byte)   { r.events = append(r.events, b) }
func (r *recorder) ACLDataReceived(b []byte) { r.acls = append(r.acls, b) }
func (r *recorder) SCODataReceived(b []byte) { r.scos = append(r.scos, b) }

func newTestH4() (*H4, *recorder) {
	h := &H4{done: make(chan int)}
	r := &recorder{}
	h.RegisterIncomingPacketCallback(r)
	return h, r
}

func TestFrameAssembleWholeEvent(t *testing.T) {
	h, r := newTestH4()

	h.frameAssemble([]byte{0x04, 0x0E, 0x04, 0x01, 0x03, 0x0C, 0x00})

	if len(r.events) != 1 {
		t.Fatalf("%d events", len(r.events))
	}
	if !bytes.Equal(r.events[0], []byte{0x0E, 0x04, 0x01, 0x03, 0x0C, 0x00}) {
		t.Fatalf("event [% X]", r.events[0])
	}
}

func TestFrameAssembleFragmented(t *testing.T) {
	h, r := newTestH4()

	h.frameAssemble([]byte{0x04, 0x0E, 0x04})
	h.frameAssemble([]byte{0x01, 0x03})
	if len(r.events) != 0 {
		t.Fatalf("event dispatched early")
	}
	h.frameAssemble([]byte{0x0C, 0x00})

	if len(r.events) != 1 {
		t.Fatalf("%d events", len(r.events))
	}
	if !bytes.Equal(r.events[0], []byte{0x0E, 0x04, 0x01, 0x03, 0x0C, 0x00}) {
		t.Fatalf("event [% X]", r.events[0])
	}
}

func TestFrameAssembleCoalesced(t *testing.T) {
	h, r := newTestH4()

	// two complete event frames in one read
	h.frameAssemble([]byte{
		0x04, 0x0E, 0x03, 0x01, 0x00, 0x00,
		0x04, 0x0F, 0x04, 0x00, 0x01, 0x0C, 0x20,
	})

	if len(r.events) != 2 {
		t.Fatalf("%d events", len(r.events))
	}
	if r.events[0][0] != 0x0E || r.events[1][0] != 0x0F {
		t.Fatalf("events [% X] [% X]", r.events[0], r.events[1])
	}
}

func TestFrameAssembleAcl(t *testing.T) {
	h, r := newTestH4()

	// 16-bit data length field
	h.frameAssemble([]byte{0x02, 0x40, 0x00, 0x03, 0x00})
	h.frameAssemble([]byte{0x0A, 0x0B, 0x0C})

	if len(r.acls) != 1 {
		t.Fatalf("%d acl packets", len(r.acls))
	}
	if !bytes.Equal(r.acls[0], []byte{0x40, 0x00, 0x03, 0x00, 0x0A, 0x0B, 0x0C}) {
		t.Fatalf("acl [% X]", r.acls[0])
	}
}

func TestFrameAssembleBadIndicator(t *testing.T) {
	h, r := newTestH4()

	h.frameAssemble([]byte{0x7F, 0x01, 0x02})
	h.frameAssemble([]byte{0x04, 0x0E, 0x03, 0x01, 0x00, 0x00})

	// garbage is dropped; the next well-formed frame still parses
	if len(r.events) != 1 {
		t.Fatalf("%d events", len(r.events))
	}
}

func TestLoadPortConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "port.json")
	if err := ioutil.WriteFile(path, []byte(`{"port":"/dev/ttyUSB0","baud_rate":1000000}`), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadPortConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if opts.PortName != "/dev/ttyUSB0" {
		t.Fatalf("port %q", opts.PortName)
	}
	if opts.BaudRate != 1000000 {
		t.Fatalf("baud %d", opts.BaudRate)
	}
	// defaults fill in the rest
	if opts.DataBits != 8 || opts.StopBits != 1 {
		t.Fatalf("framing %d/%d", opts.DataBits, opts.StopBits)
	}
}

func TestLoadPortConfigRejectsMissingPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "port.json")
	if err := ioutil.WriteFile(path, []byte(`{"baud_rate":115200}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPortConfig(path); err == nil {
		t.Fatal("no error on missing port")
	}
}
