//go:build linux
// +build linux

// Package socket implements the HAL over a Linux HCI User Channel socket.
package socket

import (
	"fmt"
	"io"
	"sync"
	"time"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/halcyon-bt/bthost"
	"github.com/halcyon-bt/bthost/hci/hal"
)

var logger = bthost.GetLogger()

func ioR(t, nr, size uintptr) uintptr {
	return (2 << 30) | (t << 8) | nr | (size << 16)
}

func ioW(t, nr, size uintptr) uintptr {
	return (1 << 30) | (t << 8) | nr | (size << 16)
}

func ioctl(fd, op, arg uintptr) error {
	if _, _, ep := unix.Syscall(unix.SYS_IOCTL, fd, op, arg); ep != 0 {
		return ep
	}
	return nil
}

const (
	ioctlSize      = 4
	hciMaxDevices  = 16
	typHCI         = 72 // 'H'
	readTimeout    = 1000
	unixPollErrors = int16(unix.POLLHUP | unix.POLLNVAL | unix.POLLERR)
	unixPollDataIn = int16(unix.POLLIN)
)

// Packet indicators [Vol 4, Part A, 2]. The user channel tags packet kinds
// with the same first octet UART transports use.
const (
	pktTypeCommand = 0x01
	pktTypeACLData = 0x02
	pktTypeSCOData = 0x03
	pktTypeEvent   = 0x04
)

var (
	hciUpDevice      = ioW(typHCI, 201, ioctlSize) // HCIDEVUP
	hciDownDevice    = ioW(typHCI, 202, ioctlSize) // HCIDEVDOWN
	hciResetDevice   = ioW(typHCI, 203, ioctlSize) // HCIDEVRESET
	hciGetDeviceList = ioR(typHCI, 210, ioctlSize) // HCIGETDEVLIST
	hciGetDeviceInfo = ioR(typHCI, 211, ioctlSize) // HCIGETDEVINFO
)

type devListRequest struct {
	devNum     uint16
	devRequest [hciMaxDevices]struct {
		id  uint16
		opt uint32
	}
}

// Socket implements hal.Hal over an HCI User Channel.
type Socket struct {
	fd   int
	rmu  sync.Mutex
	wmu  sync.Mutex
	done chan int
	cmu  sync.Mutex

	cbmu sync.Mutex
	cb   hal.Callbacks
}

// New returns a HCI User Channel of the specified device id.
// If id is -1, the first available HCI device is used.
func New(id int) (*Socket, error) {
	var err error
	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_RAW, unix.BTPROTO_HCI)
	if err != nil {
		return nil, errors.Wrap(err, "can't create socket")
	}

	if id != -1 {
		to := time.Now().Add(time.Second * 60)
		var s *Socket
		for time.Now().Before(to) {
			s, err = open(fd, id)
			if err == nil {
				return s, nil
			}
			unix.Close(fd)
			<-time.After(time.Second)
		}

		return nil, err
	}

	req := devListRequest{devNum: hciMaxDevices}
	if err = ioctl(uintptr(fd), hciGetDeviceList, uintptr(unsafe.Pointer(&req))); err != nil {
		unix.Close(fd)
		return nil, errors.Wrap(err, "can't get device list")
	}
	var msg string
	for id := 0; id < int(req.devNum); id++ {
		s, err := open(fd, id)
		if err == nil {
			return s, nil
		}
		msg = msg + fmt.Sprintf("(hci%d: %s)", id, err)
	}
	unix.Close(fd)
	return nil, errors.Errorf("no devices available: %s", msg)
}

func open(fd, id int) (*Socket, error) {
	// HCI User Channel requires exclusive access to the device.
	// The device has to be down at the time of binding.
	if err := ioctl(uintptr(fd), hciDownDevice, uintptr(id)); err != nil {
		return nil, errors.Wrap(err, "can't down device")
	}

	sa := unix.SockaddrHCI{Dev: uint16(id), Channel: unix.HCI_CHANNEL_USER}
	if err := unix.Bind(fd, &sa); err != nil {
		return nil, errors.Wrap(err, "can't bind socket to hci user channel")
	}

	// poll for 20ms to see if any stale data is pending, then clear it
	pfds := []unix.PollFd{{Fd: int32(fd), Events: unixPollDataIn}}
	unix.Poll(pfds, 20)
	evts := pfds[0].Revents

	switch {
	case evts&unixPollErrors != 0:
		return nil, io.EOF

	case evts&unixPollDataIn != 0:
		b := make([]byte, 2048)
		unix.Read(fd, b)
	}

	s := &Socket{fd: fd, done: make(chan int)}
	go s.readLoop()
	return s, nil
}

// SendCommand writes a command packet, prefixed with its indicator.
func (s *Socket) SendCommand(b []byte) error {
	return s.write(pktTypeCommand, b)
}

// SendACLData writes an ACL data packet, prefixed with its indicator.
func (s *Socket) SendACLData(b []byte) error {
	return s.write(pktTypeACLData, b)
}

// SendSCOData writes a SCO data packet, prefixed with its indicator.
func (s *Socket) SendSCOData(b []byte) error {
	return s.write(pktTypeSCOData, b)
}

func (s *Socket) write(typ byte, b []byte) error {
	if !s.isOpen() {
		return io.EOF
	}

	s.wmu.Lock()
	defer s.wmu.Unlock()
	p := make([]byte, 1+len(b))
	p[0] = typ
	copy(p[1:], b)
	n, err := unix.Write(s.fd, p)
	if err != nil {
		return errors.Wrap(err, "can't write hci socket")
	}
	if n != len(p) {
		return errors.Errorf("short write to hci socket: %d of %d", n, len(p))
	}
	return nil
}

// RegisterIncomingPacketCallback installs cb. Packets read before a callback
// is installed are dropped.
func (s *Socket) RegisterIncomingPacketCallback(cb hal.Callbacks) {
	s.cbmu.Lock()
	s.cb = cb
	s.cbmu.Unlock()
}

func (s *Socket) UnregisterIncomingPacketCallback() {
	s.cbmu.Lock()
	s.cb = nil
	s.cbmu.Unlock()
}

func (s *Socket) readLoop() {
	b := make([]byte, 4096)
	for {
		n, err := s.read(b)
		switch {
		case err != nil:
			return
		case n == 0:
			// read timeout
			continue
		}

		p := make([]byte, n)
		copy(p, b)
		s.dispatch(p)
	}
}

func (s *Socket) read(p []byte) (int, error) {
	if !s.isOpen() {
		return 0, io.EOF
	}

	var err error
	n := 0
	s.rmu.Lock()
	defer s.rmu.Unlock()
	// dont need to add unixPollErrors, they are always returned
	pfds := []unix.PollFd{{Fd: int32(s.fd), Events: unixPollDataIn}}
	unix.Poll(pfds, readTimeout)
	evts := pfds[0].Revents

	switch {
	case evts&unixPollErrors != 0:
		logger.Warnf("hci socket error: poll events 0x%04x", evts)
		return 0, io.EOF

	case evts&unixPollDataIn != 0:
		n, err = unix.Read(s.fd, p)

	default:
		// no data, read timeout
		return 0, nil
	}

	// check if we are still open since the read takes a while
	if !s.isOpen() {
		return 0, io.EOF
	}
	return n, errors.Wrap(err, "can't read hci socket")
}

func (s *Socket) dispatch(p []byte) {
	s.cbmu.Lock()
	cb := s.cb
	s.cbmu.Unlock()
	if cb == nil || len(p) < 1 {
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
	default:
		logger.Debugf("hci socket: dropping packet with indicator 0x%02x", typ)
	}
}

func (s *Socket) Close() error {
	s.cmu.Lock()
	defer s.cmu.Unlock()

	select {
	case <-s.done:
		return nil

	default:
		close(s.done)
		s.rmu.Lock()
		err := unix.Close(s.fd)
		s.rmu.Unlock()

		return errors.Wrap(err, "can't close hci socket")
	}
}

func (s *Socket) isOpen() bool {
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}
