// Package cmd provides HCI command builders. A builder knows its opcode and
// parameter length and marshals its parameters little-endian; the pipeline
// turns it into a full command packet.
package cmd

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// Command is an HCI command builder.
type Command interface {
	OpCode() int
	Len() int
	Marshal([]byte) error
}

// CommandRP unmarshals a command's return parameters.
type CommandRP interface {
	Unmarshal(b []byte) error
}

func marshal(c Command, b []byte) error {
	buf := bytes.NewBuffer(b)
	buf.Reset()
	if buf.Cap() < c.Len() {
		return errors.New("buffer too small")
	}
	return binary.Write(buf, binary.LittleEndian, c)
}

func unmarshal(c CommandRP, b []byte) error {
	buf := bytes.NewBuffer(b)
	return binary.Read(buf, binary.LittleEndian, c)
}

// Packet is a view over a serialized command packet:
// opcode (2 bytes, little-endian), parameter length, parameters.
type Packet []byte

func (p Packet) OpCode() int {
	if len(p) < 2 {
		return 0
	}
	return int(binary.LittleEndian.Uint16(p))
}

func (p Packet) ParamLen() int {
	if len(p) < 3 {
		return 0
	}
	return int(p[2])
}

func (p Packet) Params() []byte {
	if len(p) < 3 {
		return nil
	}
	return p[3:]
}

// Valid checks the 3-byte header and the declared parameter length.
func (p Packet) Valid() error {
	if len(p) < 3 {
		return errors.Errorf("command packet too short: %d", len(p))
	}
	if int(p[2]) != len(p)-3 {
		return errors.Errorf("command length mismatch: declared %d, have %d", p[2], len(p)-3)
	}
	return nil
}

// Build serializes c into a full command packet.
func Build(c Command) (Packet, error) {
	b := make([]byte, 3+c.Len())
	binary.LittleEndian.PutUint16(b, uint16(c.OpCode()))
	b[2] = byte(c.Len())
	if err := c.Marshal(b[3:]); err != nil {
		return nil, errors.Wrap(err, "can't marshal command")
	}
	return Packet(b), nil
}
