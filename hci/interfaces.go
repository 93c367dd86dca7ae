package hci

import "github.com/halcyon-bt/bthost/hci/cmd"

// Typed command interfaces. Each is a narrow enqueue surface over the one
// command pipeline; acquiring one also registers the caller's event
// callback for the fixed code set of that domain, so response routing can't
// be forgotten. Interfaces hold a non-owning back-reference to the layer.

// AclConnectionInterface enqueues classic connection-management commands.
type AclConnectionInterface struct {
	h *HCI
}

func (i *AclConnectionInterface) EnqueueCommand(c cmd.Command, onComplete *CompleteCallback) {
	i.h.EnqueueCommand(c, onComplete)
}

func (i *AclConnectionInterface) EnqueueCommandForStatus(c cmd.Command, onStatus *StatusCallback) {
	i.h.EnqueueCommandForStatus(c, onStatus)
}

// LeAclConnectionInterface enqueues LE connection-management commands.
type LeAclConnectionInterface struct {
	h *HCI
}

func (i *LeAclConnectionInterface) EnqueueCommand(c cmd.Command, onComplete *CompleteCallback) {
	i.h.EnqueueCommand(c, onComplete)
}

func (i *LeAclConnectionInterface) EnqueueCommandForStatus(c cmd.Command, onStatus *StatusCallback) {
	i.h.EnqueueCommandForStatus(c, onStatus)
}

// SecurityInterface enqueues classic security commands.
type SecurityInterface struct {
	h *HCI
}

func (i *SecurityInterface) EnqueueCommand(c cmd.Command, onComplete *CompleteCallback) {
	i.h.EnqueueCommand(c, onComplete)
}

func (i *SecurityInterface) EnqueueCommandForStatus(c cmd.Command, onStatus *StatusCallback) {
	i.h.EnqueueCommandForStatus(c, onStatus)
}

// LeSecurityInterface enqueues LE security commands.
type LeSecurityInterface struct {
	h *HCI
}

func (i *LeSecurityInterface) EnqueueCommand(c cmd.Command, onComplete *CompleteCallback) {
	i.h.EnqueueCommand(c, onComplete)
}

func (i *LeSecurityInterface) EnqueueCommandForStatus(c cmd.Command, onStatus *StatusCallback) {
	i.h.EnqueueCommandForStatus(c, onStatus)
}

// LeAdvertisingInterface enqueues LE advertising commands.
type LeAdvertisingInterface struct {
	h *HCI
}

func (i *LeAdvertisingInterface) EnqueueCommand(c cmd.Command, onComplete *CompleteCallback) {
	i.h.EnqueueCommand(c, onComplete)
}

func (i *LeAdvertisingInterface) EnqueueCommandForStatus(c cmd.Command, onStatus *StatusCallback) {
	i.h.EnqueueCommandForStatus(c, onStatus)
}

// LeScanningInterface enqueues LE scanning commands.
type LeScanningInterface struct {
	h *HCI
}

func (i *LeScanningInterface) EnqueueCommand(c cmd.Command, onComplete *CompleteCallback) {
	i.h.EnqueueCommand(c, onComplete)
}

func (i *LeScanningInterface) EnqueueCommandForStatus(c cmd.Command, onStatus *StatusCallback) {
	i.h.EnqueueCommandForStatus(c, onStatus)
}

// AclConnectionInterface returns the classic connection enqueue surface and
// registers cb for the classic connection event set.
func (h *HCI) AclConnectionInterface(cb EventCallback) *AclConnectionInterface {
	for _, code := range aclConnectionEvents {
		h.RegisterEventHandler(code, cb)
	}
	return &h.aclConnIface
}

// LeAclConnectionInterface returns the LE connection enqueue surface and
// registers cb for the LE connection subevent set.
func (h *HCI) LeAclConnectionInterface(cb LeEventCallback) *LeAclConnectionInterface {
	for _, sub := range leConnectionEvents {
		h.RegisterLeEventHandler(sub, cb)
	}
	return &h.leConnIface
}

// SecurityInterface returns the classic security enqueue surface and
// registers cb for the classic security event set.
func (h *HCI) SecurityInterface(cb EventCallback) *SecurityInterface {
	for _, code := range securityEvents {
		h.RegisterEventHandler(code, cb)
	}
	return &h.securityIface
}

// LeSecurityInterface returns the LE security enqueue surface and registers
// cb for the LE security subevent set.
func (h *HCI) LeSecurityInterface(cb LeEventCallback) *LeSecurityInterface {
	for _, sub := range leSecurityEvents {
		h.RegisterLeEventHandler(sub, cb)
	}
	return &h.leSecurityIface
}

// LeAdvertisingInterface returns the LE advertising enqueue surface and
// registers cb for the LE advertising subevent set.
func (h *HCI) LeAdvertisingInterface(cb LeEventCallback) *LeAdvertisingInterface {
	for _, sub := range leAdvertisingEvents {
		h.RegisterLeEventHandler(sub, cb)
	}
	return &h.leAdvIface
}

// LeScanningInterface returns the LE scanning enqueue surface and registers
// cb for the LE scanning subevent set.
func (h *HCI) LeScanningInterface(cb LeEventCallback) *LeScanningInterface {
	for _, sub := range leScanningEvents {
		h.RegisterLeEventHandler(sub, cb)
	}
	return &h.leScanIface
}
