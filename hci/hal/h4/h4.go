// Package h4 implements the HAL over a UART serial port using H4 framing:
// every packet is prefixed with a one-byte indicator, and incoming frames
// are reassembled from the raw byte stream.
package h4

import (
	"io"
	"sync"
	"time"

	"github.com/chmorgan/go-serial2/serial"
	"github.com/pkg/errors"

	"github.com/halcyon-bt/bthost"
	"github.com/halcyon-bt/bthost/hci/hal"
)

var logger = bthost.GetLogger()

// Packet indicators [Vol 4, Part A, 2].
const (
	pktTypeCommand = 0x01
	pktTypeACLData = 0x02
	pktTypeSCOData = 0x03
	pktTypeEvent   = 0x04
)

const frameTimeout = 500 * time.Millisecond

// H4 implements hal.Hal over a serial port.
type H4 struct {
	sp  io.ReadWriteCloser
	wmu sync.Mutex

	frame         []byte
	frameDeadline time.Time

	done chan int
	cmu  sync.Mutex

	cbmu sync.Mutex
	cb   hal.Callbacks
}

// New opens the serial port described by opts and returns a transport.
func New(opts serial.OpenOptions) (*H4, error) {
	// force these
	opts.MinimumReadSize = 0
	opts.InterCharacterTimeout = 100

	sp, err := serial.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "can't open serial port")
	}

	h := &H4{
		sp:   sp,
		done: make(chan int),
	}

	go h.rxLoop()

	return h, nil
}

// SendCommand writes a command packet, prefixed with its indicator.
func (h *H4) SendCommand(b []byte) error {
	return h.write(pktTypeCommand, b)
}

// SendACLData writes an ACL data packet, prefixed with its indicator.
func (h *H4) SendACLData(b []byte) error {
	return h.write(pktTypeACLData, b)
}

// SendSCOData writes a SCO data packet, prefixed with its indicator.
func (h *H4) SendSCOData(b []byte) error {
	return h.write(pktTypeSCOData, b)
}

func (h *H4) write(typ byte, b []byte) error {
	if !h.isOpen() {
		return io.EOF
	}

	h.wmu.Lock()
	defer h.wmu.Unlock()
	p := make([]byte, 1+len(b))
	p[0] = typ
	copy(p[1:], b)
	n, err := h.sp.Write(p)
	if err != nil {
		return errors.Wrap(err, "can't write h4")
	}
	if n != len(p) {
		return errors.Errorf("short write to h4: %d of %d", n, len(p))
	}
	return nil
}

// RegisterIncomingPacketCallback installs cb. Frames assembled before a
// callback is installed are dropped.
func (h *H4) RegisterIncomingPacketCallback(cb hal.Callbacks) {
	h.cbmu.Lock()
	h.cb = cb
	h.cbmu.Unlock()
}

func (h *H4) UnregisterIncomingPacketCallback() {
	h.cbmu.Lock()
	h.cb = nil
	h.cbmu.Unlock()
}

func (h *H4) Close() error {
	h.cmu.Lock()
	defer h.cmu.Unlock()

	select {
	case <-h.done:
		return nil

	default:
		close(h.done)
		return errors.Wrap(h.sp.Close(), "can't close h4")
	}
}

func (h *H4) isOpen() bool {
	select {
	case <-h.done:
		return false
	default:
		return h.sp != nil
	}
}

func (h *H4) rxLoop() {
	tmp := make([]byte, 512)
	for {
		select {
		case <-h.done:
			return
		default:
		}

		n, err := h.sp.Read(tmp)
		if err != nil || n == 0 {
			continue
		}

		h.frameAssemble(tmp[:n])
	}
}

// frameAssemble accumulates stream bytes until a full frame is available,
// then dispatches it. A stalled partial frame is abandoned after
// frameTimeout.
func (h *H4) frameAssemble(b []byte) {
	switch {
	case len(b) == 0:
		return
	case time.Now().After(h.frameDeadline):
		fallthrough
	case h.frame == nil:
		h.frameReset()
	default:
		// ok
	}

	var more []byte
	var done []byte
	var started bool

	// new frame?
	if len(h.frame) == 0 {
		hdr := headerLen(b[0])
		if hdr == 0 {
			logger.Debugf("h4: bad indicator 0x%02x, dropping %d bytes", b[0], len(b))
			return
		}
		if len(b) < hdr {
			logger.Debugf("h4: short header %d", len(b))
			return
		}

		started = true
		h.frame = append(h.frame, b[:hdr]...)
	}

	start := 0
	if started {
		start = headerLen(h.frame[0])
	}

	rem := b[start:]
	// payload bytes still missing from the frame under assembly
	exp := h.expectedPayload() - (len(h.frame) - headerLen(h.frame[0]))

	switch {
	case len(rem) < exp:
		h.frame = append(h.frame, rem...)
	case len(rem) == exp:
		done = append(h.frame, rem...)
	case len(rem) > exp:
		done = append(h.frame, rem[:exp]...)
		more = rem[exp:]
	}

	if len(done) != 0 {
		h.dispatch(done)
		h.frameReset()
	}

	if len(more) != 0 {
		h.frameAssemble(more)
	}
}

// headerLen returns indicator+header size for a frame kind, 0 if unknown.
func headerLen(typ byte) int {
	switch typ {
	case pktTypeEvent:
		return 3 // indicator, code, plen
	case pktTypeACLData:
		return 5 // indicator, handle+flags, 16-bit length
	case pktTypeSCOData:
		return 4 // indicator, handle+flags, length
	default:
		return 0
	}
}

func (h *H4) expectedPayload() int {
	switch h.frame[0] {
	case pktTypeEvent:
		return int(h.frame[2])
	case pktTypeACLData:
		return int(h.frame[3]) | int(h.frame[4])<<8
	case pktTypeSCOData:
		return int(h.frame[3])
	default:
		return 0
	}
}

func (h *H4) dispatch(p []byte) {
	h.cbmu.Lock()
	cb := h.cb
	h.cbmu.Unlock()
	if cb == nil {
		return
	}

	typ, b := p[0], p[1:]
	switch typ {
	case pktTypeEvent:
		cb.EventReceived(b)
	case pktTypeACLData:
		cb.ACLDataReceived(b)
	case pktTypeSCOData:
		cb.SCODataReceived(b)
	}
}

func (h *H4) frameReset() {
	h.frame = make([]byte, 0, 256)
	h.frameDeadline = time.Now().Add(frameTimeout)
}
