package hci

import (
	"encoding/binary"
	"sync"

	"github.com/pkg/errors"
)

// AclPacket is a view over a serialized ACL data packet:
// handle+flags (2 bytes, little-endian), data length (2 bytes), data.
type AclPacket []byte

func (p AclPacket) Handle() uint16 {
	if len(p) < 2 {
		return 0xffff
	}
	return binary.LittleEndian.Uint16(p) & 0x0fff
}

// PacketBoundaryFlag returns the PB flag bits [Vol 2, Part E, 5.4.2].
func (p AclPacket) PacketBoundaryFlag() uint8 {
	if len(p) < 2 {
		return 0
	}
	return uint8(binary.LittleEndian.Uint16(p) >> 12 & 0x3)
}

func (p AclPacket) BroadcastFlag() uint8 {
	if len(p) < 2 {
		return 0
	}
	return uint8(binary.LittleEndian.Uint16(p) >> 14 & 0x3)
}

func (p AclPacket) DataLength() int {
	if len(p) < 4 {
		return 0
	}
	return int(binary.LittleEndian.Uint16(p[2:]))
}

func (p AclPacket) Data() []byte {
	if len(p) < 4 {
		return nil
	}
	return p[4:]
}

// Valid checks the 4-byte header and the declared data length.
func (p AclPacket) Valid() error {
	if len(p) < 4 {
		return errors.Errorf("acl packet too short: %d", len(p))
	}
	if p.DataLength() != len(p)-4 {
		return errors.Errorf("acl length mismatch: declared %d, have %d", p.DataLength(), len(p)-4)
	}
	return nil
}

// enqueueBuffer absorbs ACL packets arriving on the HAL thread. It is the
// only core structure written off the core handler: unbounded, mutex
// protected, drained by the conduit's inbound pump.
type enqueueBuffer struct {
	mu   sync.Mutex
	pkts []AclPacket
	wake chan struct{}
}

func newEnqueueBuffer() *enqueueBuffer {
	return &enqueueBuffer{wake: make(chan struct{}, 1)}
}

func (b *enqueueBuffer) push(p AclPacket) {
	b.mu.Lock()
	b.pkts = append(b.pkts, p)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// pop returns the oldest packet, or false immediately if empty.
func (b *enqueueBuffer) pop() (AclPacket, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.pkts) == 0 {
		return nil, false
	}
	p := b.pkts[0]
	b.pkts = b.pkts[1:]
	return p, true
}

func (b *enqueueBuffer) clear() {
	b.mu.Lock()
	b.pkts = nil
	b.mu.Unlock()
}

// aclConduit is the bidirectional ACL pipe between upper layers and the
// HAL. The bounded channels are the backpressure boundary; the enqueue
// buffer decouples HAL-thread arrival from core-thread processing.
type aclConduit struct {
	run   *Handler
	send  func(AclPacket)
	depth int

	out   chan AclPacket
	in    chan AclPacket
	inBuf *enqueueBuffer

	done      chan struct{}
	closeOnce sync.Once

	up AclQueueEnd
}

func newAclConduit(run *Handler, depth int, send func(AclPacket)) *aclConduit {
	c := &aclConduit{
		run:   run,
		send:  send,
		depth: depth,
		out:   make(chan AclPacket, depth),
		in:    make(chan AclPacket, depth),
		inBuf: newEnqueueBuffer(),
		done:  make(chan struct{}),
	}
	c.up = AclQueueEnd{c: c}
	return c
}

// start registers the outbound drain and the inbound pump.
func (c *aclConduit) start() {
	go c.outboundLoop()
	go c.inboundPump()
}

// outboundLoop moves one packet at a time from the up end onto the core
// handler, which hands it to the HAL.
func (c *aclConduit) outboundLoop() {
	for {
		select {
		case <-c.done:
			return
		case p := <-c.out:
			c.run.Post(func() { c.send(p) })
		}
	}
}

// inboundPump drains the HAL-thread enqueue buffer into the bounded up-end
// queue, blocking when upper layers fall behind.
func (c *aclConduit) inboundPump() {
	for {
		p, ok := c.inBuf.pop()
		if !ok {
			select {
			case <-c.done:
				return
			case <-c.inBuf.wake:
				continue
			}
		}
		select {
		case <-c.done:
			return
		case c.in <- p:
		}
	}
}

// enqueueIncoming accepts a packet on the HAL thread.
func (c *aclConduit) enqueueIncoming(p AclPacket) {
	c.inBuf.push(p)
}

func (c *aclConduit) stop() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
	c.inBuf.clear()
}

// AclQueueEnd is the upper layer's end of the ACL pipe.
type AclQueueEnd struct {
	c *aclConduit
}

// Write queues an outgoing packet, blocking while the queue is full. It
// returns false if the conduit has been stopped.
func (e AclQueueEnd) Write(p AclPacket) bool {
	select {
	case <-e.c.done:
		return false
	default:
	}
	select {
	case <-e.c.done:
		return false
	case e.c.out <- p:
		return true
	}
}

// Read blocks for the next incoming packet. It returns false if the
// conduit has been stopped.
func (e AclQueueEnd) Read() (AclPacket, bool) {
	select {
	case <-e.c.done:
		return nil, false
	default:
	}
	select {
	case <-e.c.done:
		return nil, false
	case p := <-e.c.in:
		return p, true
	}
}
