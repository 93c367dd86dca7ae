package hci

import (
	"github.com/pkg/errors"

	"github.com/halcyon-bt/bthost/hci/evt"
)

// evtHub maps event codes and LE subevent codes to their callbacks. Owned
// by the core handler; registration conflicts are programming errors and
// fatal.
type evtHub struct {
	fatal func(error)

	evth map[int]EventCallback
	subh map[int]LeEventCallback
}

func newEvtHub(fatal func(error)) *evtHub {
	return &evtHub{
		fatal: fatal,
		evth:  make(map[int]EventCallback),
		subh:  make(map[int]LeEventCallback),
	}
}

func (h *evtHub) register(code int, cb EventCallback) {
	if _, ok := h.evth[code]; ok {
		h.fatal(errors.Errorf("can't register a second handler for event code 0x%02X", code))
		return
	}
	h.evth[code] = cb
}

func (h *evtHub) unregister(code int) {
	if _, ok := h.evth[code]; !ok {
		h.fatal(errors.Errorf("no handler registered for event code 0x%02X", code))
		return
	}
	delete(h.evth, code)
}

func (h *evtHub) registerLe(subcode int, cb LeEventCallback) {
	if _, ok := h.subh[subcode]; ok {
		h.fatal(errors.Errorf("can't register a second handler for subevent code 0x%02X", subcode))
		return
	}
	h.subh[subcode] = cb
}

func (h *evtHub) unregisterLe(subcode int) {
	if _, ok := h.subh[subcode]; !ok {
		h.fatal(errors.Errorf("no handler registered for subevent code 0x%02X", subcode))
		return
	}
	delete(h.subh, subcode)
}

// dispatch routes one event to its registered callback. Unregistered
// ordinary events are dropped quietly.
func (h *evtHub) dispatch(e evt.EventPacket) {
	code := int(e.Code())
	cb, ok := h.evth[code]
	if !ok {
		logger.Debugf("hci: dropping unregistered event 0x%02X", code)
		return
	}
	cb.post(e)
}

// dispatchLeMeta routes an LE meta event by subevent code. A missing LE
// subhandler is fatal: the LE event mask should only admit subscribed
// subevents.
func (h *evtHub) dispatchLeMeta(e evt.EventPacket) {
	le := evt.LEMeta(e.Payload())
	if err := le.Valid(); err != nil {
		h.fatal(errors.Wrap(err, "invalid le meta event"))
		return
	}
	sub := int(le.SubeventCode())
	cb, ok := h.subh[sub]
	if !ok {
		h.fatal(errors.Errorf("unhandled le event of subevent code 0x%02X", sub))
		return
	}
	cb.post(le)
}
