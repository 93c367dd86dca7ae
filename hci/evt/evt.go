// Package evt provides read-only views over HCI event packets.
//
// A view is a byte slice with typed accessors. Every accessor has a WErr
// sibling that reports short or malformed buffers; the plain form returns a
// defensive default instead.
package evt

// EventPacket is a full HCI event: code, parameter length, parameters.
type EventPacket []byte

func (e EventPacket) Code() uint8 {
	v, _ := e.CodeWErr()
	return v
}

func (e EventPacket) PayloadLength() uint8 {
	v, _ := e.PayloadLengthWErr()
	return v
}

// Payload returns the event parameters, after the 2-byte header.
func (e EventPacket) Payload() []byte {
	v, _ := e.PayloadWErr()
	return v
}

// CommandComplete is the parameter block of a Command Complete event
// [Vol 2, Part E, 7.7.14].
type CommandComplete []byte

func (e CommandComplete) NumHCICommandPackets() uint8 {
	v, _ := e.NumHCICommandPacketsWErr()
	return v
}

func (e CommandComplete) CommandOpcode() uint16 {
	v, _ := e.CommandOpcodeWErr()
	return v
}

func (e CommandComplete) ReturnParameters() []byte {
	v, _ := e.ReturnParametersWErr()
	return v
}

// Status returns the first byte of the return parameters. Nearly every
// command's return block starts with its status; callers needing more
// unmarshal the rest themselves.
func (e CommandComplete) Status() uint8 {
	v, _ := e.StatusWErr()
	return v
}

// CommandStatus is the parameter block of a Command Status event
// [Vol 2, Part E, 7.7.15].
type CommandStatus []byte

func (e CommandStatus) Status() uint8 {
	v, _ := e.StatusWErr()
	return v
}

func (e CommandStatus) NumHCICommandPackets() uint8 {
	v, _ := e.NumHCICommandPacketsWErr()
	return v
}

func (e CommandStatus) CommandOpcode() uint16 {
	v, _ := e.CommandOpcodeWErr()
	return v
}

// LEMeta is the parameter block of an LE Meta event (0x3E); the first byte
// is the subevent code, the rest is the subevent's own parameter block.
type LEMeta []byte

func (e LEMeta) SubeventCode() uint8 {
	v, _ := e.SubeventCodeWErr()
	return v
}

func (e LEMeta) Subevent() []byte {
	v, _ := e.SubeventWErr()
	return v
}

// DisconnectionComplete [Vol 2, Part E, 7.7.5].
type DisconnectionComplete []byte

func (e DisconnectionComplete) Status() uint8 {
	v, _ := e.StatusWErr()
	return v
}

func (e DisconnectionComplete) ConnectionHandle() uint16 {
	v, _ := e.ConnectionHandleWErr()
	return v
}

func (e DisconnectionComplete) Reason() uint8 {
	v, _ := e.ReasonWErr()
	return v
}

// EncryptionChange [Vol 2, Part E, 7.7.8].
type EncryptionChange []byte

func (e EncryptionChange) Status() uint8 {
	v, _ := e.StatusWErr()
	return v
}

func (e EncryptionChange) ConnectionHandle() uint16 {
	v, _ := e.ConnectionHandleWErr()
	return v
}

func (e EncryptionChange) EncryptionEnabled() uint8 {
	v, _ := e.EncryptionEnabledWErr()
	return v
}

// NumberOfCompletedPackets [Vol 2, Part E, 7.7.19].
//
// Handles and counts are interleaved per entry on the wire as observed from
// real controllers: NumOfHandle, HandleA, CompPktNumA, HandleB, CompPktNumB.
type NumberOfCompletedPackets []byte

func (e NumberOfCompletedPackets) NumberOfHandles() uint8 {
	v, _ := e.NumberOfHandlesWErr()
	return v
}

func (e NumberOfCompletedPackets) ConnectionHandle(i int) uint16 {
	v, _ := e.ConnectionHandleWErr(i)
	return v
}

func (e NumberOfCompletedPackets) HCNumOfCompletedPackets(i int) uint16 {
	v, _ := e.HCNumOfCompletedPacketsWErr(i)
	return v
}

// LEConnectionComplete is the LE Connection Complete subevent block,
// starting at the subevent code [Vol 2, Part E, 7.7.65.1].
type LEConnectionComplete []byte

func (e LEConnectionComplete) SubeventCode() uint8 {
	v, _ := e.SubeventCodeWErr()
	return v
}

func (e LEConnectionComplete) Status() uint8 {
	v, _ := e.StatusWErr()
	return v
}

func (e LEConnectionComplete) ConnectionHandle() uint16 {
	v, _ := e.ConnectionHandleWErr()
	return v
}

func (e LEConnectionComplete) Role() uint8 {
	v, _ := e.RoleWErr()
	return v
}

func (e LEConnectionComplete) PeerAddressType() uint8 {
	v, _ := e.PeerAddressTypeWErr()
	return v
}

func (e LEConnectionComplete) PeerAddress() [6]byte {
	v, _ := e.PeerAddressWErr()
	return v
}
