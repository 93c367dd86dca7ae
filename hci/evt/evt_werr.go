package evt

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

func (e EventPacket) CodeWErr() (uint8, error) {
	return getByte(e, 0, 0)
}

func (e EventPacket) PayloadLengthWErr() (uint8, error) {
	return getByte(e, 1, 0)
}

func (e EventPacket) PayloadWErr() ([]byte, error) {
	return getBytes(e, 2, -1)
}

// Valid checks the 2-byte header and that the declared parameter length
// matches the buffer.
func (e EventPacket) Valid() error {
	if len(e) < 2 {
		return errors.Errorf("event packet too short: %d", len(e))
	}
	if int(e[1]) != len(e)-2 {
		return errors.Errorf("event length mismatch: declared %d, have %d", e[1], len(e)-2)
	}
	return nil
}

func (e CommandComplete) NumHCICommandPacketsWErr() (uint8, error) {
	return getByte(e, 0, 0)
}

func (e CommandComplete) CommandOpcodeWErr() (uint16, error) {
	return getUint16LE(e, 1, 0xffff)
}

func (e CommandComplete) ReturnParametersWErr() ([]byte, error) {
	return getBytes(e, 3, -1)
}

func (e CommandComplete) StatusWErr() (uint8, error) {
	return getByte(e, 3, 0xff)
}

// Valid requires the fixed 3-byte prefix.
func (e CommandComplete) Valid() error {
	if len(e) < 3 {
		return errors.Errorf("command complete too short: %d", len(e))
	}
	return nil
}

func (e CommandStatus) StatusWErr() (uint8, error) {
	return getByte(e, 0, 0xff)
}

func (e CommandStatus) NumHCICommandPacketsWErr() (uint8, error) {
	return getByte(e, 1, 0)
}

func (e CommandStatus) CommandOpcodeWErr() (uint16, error) {
	return getUint16LE(e, 2, 0xffff)
}

func (e CommandStatus) Valid() error {
	if len(e) < 4 {
		return errors.Errorf("command status too short: %d", len(e))
	}
	return nil
}

func (e LEMeta) SubeventCodeWErr() (uint8, error) {
	return getByte(e, 0, 0xff)
}

func (e LEMeta) SubeventWErr() ([]byte, error) {
	return getBytes(e, 0, -1)
}

func (e LEMeta) Valid() error {
	if len(e) < 1 {
		return errors.New("le meta event missing subevent code")
	}
	return nil
}

func (e DisconnectionComplete) StatusWErr() (uint8, error) {
	return getByte(e, 0, 0xff)
}

func (e DisconnectionComplete) ConnectionHandleWErr() (uint16, error) {
	return getUint16LE(e, 1, 0xffff)
}

func (e DisconnectionComplete) ReasonWErr() (uint8, error) {
	return getByte(e, 3, 0xff)
}

func (e EncryptionChange) StatusWErr() (uint8, error) {
	return getByte(e, 0, 0xff)
}

func (e EncryptionChange) ConnectionHandleWErr() (uint16, error) {
	return getUint16LE(e, 1, 0xffff)
}

func (e EncryptionChange) EncryptionEnabledWErr() (uint8, error) {
	return getByte(e, 3, 0)
}

func (e NumberOfCompletedPackets) NumberOfHandlesWErr() (uint8, error) {
	return getByte(e, 0, 0)
}

func (e NumberOfCompletedPackets) ConnectionHandleWErr(i int) (uint16, error) {
	return getUint16LE(e, 1+i*4, 0xffff)
}

func (e NumberOfCompletedPackets) HCNumOfCompletedPacketsWErr(i int) (uint16, error) {
	return getUint16LE(e, 1+i*4+2, 0)
}

func (e LEConnectionComplete) SubeventCodeWErr() (uint8, error) {
	return getByte(e, 0, 0xff)
}

func (e LEConnectionComplete) StatusWErr() (uint8, error) {
	return getByte(e, 1, 0xff)
}

func (e LEConnectionComplete) ConnectionHandleWErr() (uint16, error) {
	return getUint16LE(e, 2, 0xffff)
}

func (e LEConnectionComplete) RoleWErr() (uint8, error) {
	return getByte(e, 4, 0xff)
}

func (e LEConnectionComplete) PeerAddressTypeWErr() (uint8, error) {
	return getByte(e, 5, 0xff)
}

func (e LEConnectionComplete) PeerAddressWErr() ([6]byte, error) {
	bb, err := getBytes(e, 6, 6)
	if err != nil {
		return [6]byte{}, err
	}
	out := [6]byte{}
	copy(out[:], bb)
	return out, nil
}

// get or default
func getByte(b []byte, i int, def byte) (byte, error) {
	bb, err := getBytes(b, i, 1)
	if err != nil {
		return def, err
	}
	return bb[0], nil
}

// get or default
func getUint16LE(b []byte, i int, def uint16) (uint16, error) {
	bb, err := getBytes(b, i, 2)
	if err != nil {
		return def, err
	}
	return binary.LittleEndian.Uint16(bb), nil
}

func getBytes(b []byte, start int, count int) ([]byte, error) {
	if b == nil || start >= len(b) {
		return nil, errors.New("index error")
	}
	if count < 0 {
		return b[start:], nil
	}
	if start+count > len(b) {
		return nil, errors.New("index error")
	}
	return b[start : start+count], nil
}
