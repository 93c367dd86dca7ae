// Package hci implements the host side of the Bluetooth Host Controller
// Interface: a strictly-serialized command pipeline with credit-based flow
// control, an event demultiplexer, and a bidirectional ACL data pipe, all
// running on one serial handler above a byte-level HAL transport.
package hci

import (
	"time"

	"github.com/pkg/errors"

	"github.com/halcyon-bt/bthost"
	"github.com/halcyon-bt/bthost/hci/cmd"
	"github.com/halcyon-bt/bthost/hci/evt"
	"github.com/halcyon-bt/bthost/hci/hal"
)

var logger = bthost.GetLogger()

// HCI is the core layer. All state lives on one serial handler; public
// methods post their work there and return immediately.
type HCI struct {
	run *Handler
	hal hal.Hal

	cmdq *commandQueue
	hub  *evtHub
	acl  *aclConduit

	aclConnIface    AclConnectionInterface
	leConnIface     LeAclConnectionInterface
	securityIface   SecurityInterface
	leSecurityIface LeSecurityInterface
	leAdvIface      LeAdvertisingInterface
	leScanIface     LeScanningInterface

	timeout  time.Duration
	aclDepth int
	fatal    func(error)

	cbs halCallbacks
}

// New builds a layer over the given transport. It does not touch the
// controller until Start.
func New(tr hal.Hal, opts ...Option) (*HCI, error) {
	if tr == nil {
		return nil, errors.New("nil hal")
	}

	h := &HCI{
		hal:      tr,
		timeout:  defaultCommandTimeout,
		aclDepth: defaultAclQueueDepth,
		fatal: func(err error) {
			logger.Fatalf("hci: %v", err)
		},
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, errors.Wrap(err, "can't set options")
		}
	}

	h.run = NewHandler("hci")
	fatal := func(err error) { h.fatal(err) }
	h.cmdq = newCommandQueue(h.run, tr, h.timeout, fatal)
	h.hub = newEvtHub(fatal)
	h.acl = newAclConduit(h.run, h.aclDepth, h.sendAcl)

	h.aclConnIface = AclConnectionInterface{h: h}
	h.leConnIface = LeAclConnectionInterface{h: h}
	h.securityIface = SecurityInterface{h: h}
	h.leSecurityIface = LeSecurityInterface{h: h}
	h.leAdvIface = LeAdvertisingInterface{h: h}
	h.leScanIface = LeScanningInterface{h: h}

	h.cbs = halCallbacks{h: h}

	return h, nil
}

// Start installs the HAL callback, registers the core's own event routes,
// starts the ACL drain, and issues HCI_Reset as the first command.
func (h *HCI) Start() {
	h.run.Post(func() {
		h.hub.register(evt.CommandCompleteCode, OnEvent(h.run, h.cmdq.handleCommandComplete))
		h.hub.register(evt.CommandStatusCode, OnEvent(h.run, h.cmdq.handleCommandStatus))
		h.hub.register(evt.LEMetaCode, OnEvent(h.run, h.hub.dispatchLeMeta))

		// chatty classic events nothing subscribes to; drop without logging
		drop := OnEvent(h.run, func(evt.EventPacket) {})
		h.hub.register(evt.PageScanRepetitionModeChangeCode, drop)
		h.hub.register(evt.MaxSlotsChangeCode, drop)
		h.hub.register(evt.VendorSpecificCode, drop)

		h.acl.start()

		h.cmdq.enqueueForComplete(cmd.Reset{}, OnceComplete(h.run, h.checkResetComplete))
	})
	h.hal.RegisterIncomingPacketCallback(&h.cbs)
}

// Stop unhooks the HAL, stops the ACL pipe, and tears down the pipeline.
// Pending command sinks are dropped unfired.
func (h *HCI) Stop() {
	h.hal.UnregisterIncomingPacketCallback()
	h.acl.stop()
	h.run.Post(func() {
		h.cmdq.clear()
		h.run.Close()
	})
}

func (h *HCI) checkResetComplete(e evt.CommandComplete) {
	if status := e.Status(); status != statusSuccess {
		h.fatal(errors.Errorf("reset failed with status 0x%02X", status))
		return
	}
	logger.Info("hci reset complete")
}

// EnqueueCommand queues a command whose response is a Command Complete
// event; onComplete fires at most once, on its own handler.
func (h *HCI) EnqueueCommand(c cmd.Command, onComplete *CompleteCallback) {
	h.run.Post(func() { h.cmdq.enqueueForComplete(c, onComplete) })
}

// EnqueueCommandForStatus queues a command whose response is a Command
// Status event (final completion arrives later as a domain event);
// onStatus fires at most once, on its own handler.
func (h *HCI) EnqueueCommandForStatus(c cmd.Command, onStatus *StatusCallback) {
	h.run.Post(func() { h.cmdq.enqueueForStatus(c, onStatus) })
}

// RegisterEventHandler routes events with the given code to cb.
// Registering a code twice is fatal.
func (h *HCI) RegisterEventHandler(code int, cb EventCallback) {
	h.run.Post(func() {
		if !cb.valid() {
			h.fatal(errors.Errorf("invalid callback for event code 0x%02X", code))
			return
		}
		h.hub.register(code, cb)
	})
}

// UnregisterEventHandler removes the route for the given code.
func (h *HCI) UnregisterEventHandler(code int) {
	h.run.Post(func() { h.hub.unregister(code) })
}

// RegisterLeEventHandler routes LE meta events with the given subevent
// code to cb. Registering a subevent code twice is fatal.
func (h *HCI) RegisterLeEventHandler(subcode int, cb LeEventCallback) {
	h.run.Post(func() {
		if !cb.valid() {
			h.fatal(errors.Errorf("invalid callback for subevent code 0x%02X", subcode))
			return
		}
		h.hub.registerLe(subcode, cb)
	})
}

// UnregisterLeEventHandler removes the route for the given subevent code.
func (h *HCI) UnregisterLeEventHandler(subcode int) {
	h.run.Post(func() { h.hub.unregisterLe(subcode) })
}

// AclQueue returns the upper layer's end of the ACL data pipe.
func (h *HCI) AclQueue() AclQueueEnd {
	return h.acl.up
}

func (h *HCI) sendAcl(p AclPacket) {
	// the HAL is assumed reliable; a failed send is logged, not surfaced
	if err := h.hal.SendACLData(p); err != nil {
		logger.Errorf("hci: can't send acl packet: %v", err)
	}
}

// halCallbacks adapts the HAL's receive surface to the core: parse on the
// HAL thread, then hand off to the core handler.
type halCallbacks struct {
	h *HCI
}

func (c *halCallbacks) EventReceived(b []byte) {
	e := evt.EventPacket(b)
	if err := e.Valid(); err != nil {
		c.h.fatal(errors.Wrap(err, "invalid event packet"))
		return
	}
	c.h.run.Post(func() { c.h.hub.dispatch(e) })
}

func (c *halCallbacks) ACLDataReceived(b []byte) {
	p := AclPacket(b)
	if err := p.Valid(); err != nil {
		c.h.fatal(errors.Wrap(err, "invalid acl packet"))
		return
	}
	c.h.acl.enqueueIncoming(p)
}

func (c *halCallbacks) SCODataReceived(b []byte) {
	// TODO: route SCO once a synchronous data path exists above this layer
	logger.Debugf("hci: dropping sco packet (%d bytes)", len(b))
}
