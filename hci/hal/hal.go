// Package hal defines the transport contract beneath the HCI layer: a
// byte-level send of command/ACL/SCO packets and a callback delivering
// incoming packets on the transport's own read thread.
package hal

// Hal ferries HCI packets to and from a controller. Packets cross this
// boundary without the UART packet-indicator byte; transports that need one
// (H4) add and strip it themselves. Implementations serialize their own
// Send* calls.
type Hal interface {
	SendCommand(b []byte) error
	SendACLData(b []byte) error
	SendSCOData(b []byte) error

	// RegisterIncomingPacketCallback installs cb; incoming packets are
	// delivered on the transport's read thread until
	// UnregisterIncomingPacketCallback.
	RegisterIncomingPacketCallback(cb Callbacks)
	UnregisterIncomingPacketCallback()

	Close() error
}

// Callbacks receives incoming packets. All methods are invoked on the
// transport's read thread; implementations must not block.
type Callbacks interface {
	EventReceived(b []byte)
	ACLDataReceived(b []byte)
	SCODataReceived(b []byte)
}
