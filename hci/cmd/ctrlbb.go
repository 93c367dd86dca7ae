package cmd

// Reset implements Reset (0x0C03) [Vol 2, Part E, 7.3.2].
type Reset struct{}

func (c Reset) OpCode() int            { return 0x0C03 }
func (c Reset) Len() int               { return 0 }
func (c Reset) Marshal(b []byte) error { return marshal(c, b) }

// ResetRP returns the return parameter of Reset.
type ResetRP struct {
	Status uint8
}

func (c *ResetRP) Unmarshal(b []byte) error { return unmarshal(c, b) }

// SetEventMask implements Set Event Mask (0x0C01) [Vol 2, Part E, 7.3.1].
type SetEventMask struct {
	EventMask uint64
}

func (c SetEventMask) OpCode() int            { return 0x0C01 }
func (c SetEventMask) Len() int               { return 8 }
func (c SetEventMask) Marshal(b []byte) error { return marshal(c, b) }

// SetEventMaskRP returns the return parameter of Set Event Mask.
type SetEventMaskRP struct {
	Status uint8
}

func (c *SetEventMaskRP) Unmarshal(b []byte) error { return unmarshal(c, b) }

// WriteScanEnable implements Write Scan Enable (0x0C1A) [Vol 2, Part E, 7.3.18].
type WriteScanEnable struct {
	ScanEnable uint8
}

func (c WriteScanEnable) OpCode() int            { return 0x0C1A }
func (c WriteScanEnable) Len() int               { return 1 }
func (c WriteScanEnable) Marshal(b []byte) error { return marshal(c, b) }

// WriteScanEnableRP returns the return parameter of Write Scan Enable.
type WriteScanEnableRP struct {
	Status uint8
}

func (c *WriteScanEnableRP) Unmarshal(b []byte) error { return unmarshal(c, b) }

// ReadBDADDR implements Read BD_ADDR (0x1009) [Vol 2, Part E, 7.4.6].
type ReadBDADDR struct{}

func (c ReadBDADDR) OpCode() int            { return 0x1009 }
func (c ReadBDADDR) Len() int               { return 0 }
func (c ReadBDADDR) Marshal(b []byte) error { return marshal(c, b) }

// ReadBDADDRRP returns the return parameter of Read BD_ADDR.
type ReadBDADDRRP struct {
	Status uint8
	BDADDR [6]byte
}

func (c *ReadBDADDRRP) Unmarshal(b []byte) error { return unmarshal(c, b) }

// ReadBufferSize implements Read Buffer Size (0x1005) [Vol 2, Part E, 7.4.5].
type ReadBufferSize struct{}

func (c ReadBufferSize) OpCode() int            { return 0x1005 }
func (c ReadBufferSize) Len() int               { return 0 }
func (c ReadBufferSize) Marshal(b []byte) error { return marshal(c, b) }

// ReadBufferSizeRP returns the return parameter of Read Buffer Size.
type ReadBufferSizeRP struct {
	Status                   uint8
	HCACLDataPacketLength    uint16
	HCSCODataPacketLength    uint8
	HCTotalNumACLDataPackets uint16
	HCTotalNumSCODataPackets uint16
}

func (c *ReadBufferSizeRP) Unmarshal(b []byte) error { return unmarshal(c, b) }
