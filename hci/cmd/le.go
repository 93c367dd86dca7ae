package cmd

// LESetEventMask implements LE Set Event Mask (0x2001) [Vol 2, Part E, 7.8.1].
type LESetEventMask struct {
	LEEventMask uint64
}

func (c LESetEventMask) OpCode() int            { return 0x2001 }
func (c LESetEventMask) Len() int               { return 8 }
func (c LESetEventMask) Marshal(b []byte) error { return marshal(c, b) }

// LESetEventMaskRP returns the return parameter of LE Set Event Mask.
type LESetEventMaskRP struct {
	Status uint8
}

func (c *LESetEventMaskRP) Unmarshal(b []byte) error { return unmarshal(c, b) }

// LESetScanParameters implements LE Set Scan Parameters (0x200B)
// [Vol 2, Part E, 7.8.10].
type LESetScanParameters struct {
	LEScanType           uint8
	LEScanInterval       uint16
	LEScanWindow         uint16
	OwnAddressType       uint8
	ScanningFilterPolicy uint8
}

func (c LESetScanParameters) OpCode() int            { return 0x200B }
func (c LESetScanParameters) Len() int               { return 7 }
func (c LESetScanParameters) Marshal(b []byte) error { return marshal(c, b) }

// LESetScanParametersRP returns the return parameter of LE Set Scan Parameters.
type LESetScanParametersRP struct {
	Status uint8
}

func (c *LESetScanParametersRP) Unmarshal(b []byte) error { return unmarshal(c, b) }

// LESetScanEnable implements LE Set Scan Enable (0x200C) [Vol 2, Part E, 7.8.11].
type LESetScanEnable struct {
	LEScanEnable     uint8
	FilterDuplicates uint8
}

func (c LESetScanEnable) OpCode() int            { return 0x200C }
func (c LESetScanEnable) Len() int               { return 2 }
func (c LESetScanEnable) Marshal(b []byte) error { return marshal(c, b) }

// LESetScanEnableRP returns the return parameter of LE Set Scan Enable.
type LESetScanEnableRP struct {
	Status uint8
}

func (c *LESetScanEnableRP) Unmarshal(b []byte) error { return unmarshal(c, b) }

// LESetAdvertisingParameters implements LE Set Advertising Parameters
// (0x2006) [Vol 2, Part E, 7.8.5].
type LESetAdvertisingParameters struct {
	AdvertisingIntervalMin  uint16
	AdvertisingIntervalMax  uint16
	AdvertisingType         uint8
	OwnAddressType          uint8
	DirectAddressType       uint8
	DirectAddress           [6]byte
	AdvertisingChannelMap   uint8
	AdvertisingFilterPolicy uint8
}

func (c LESetAdvertisingParameters) OpCode() int            { return 0x2006 }
func (c LESetAdvertisingParameters) Len() int               { return 15 }
func (c LESetAdvertisingParameters) Marshal(b []byte) error { return marshal(c, b) }

// LESetAdvertisingParametersRP returns the return parameter of LE Set
// Advertising Parameters.
type LESetAdvertisingParametersRP struct {
	Status uint8
}

func (c *LESetAdvertisingParametersRP) Unmarshal(b []byte) error { return unmarshal(c, b) }

// LESetAdvertisingData implements LE Set Advertising Data (0x2008)
// [Vol 2, Part E, 7.8.7].
type LESetAdvertisingData struct {
	AdvertisingDataLength uint8
	AdvertisingData       [31]byte
}

func (c LESetAdvertisingData) OpCode() int            { return 0x2008 }
func (c LESetAdvertisingData) Len() int               { return 32 }
func (c LESetAdvertisingData) Marshal(b []byte) error { return marshal(c, b) }

// LESetAdvertisingDataRP returns the return parameter of LE Set Advertising Data.
type LESetAdvertisingDataRP struct {
	Status uint8
}

func (c *LESetAdvertisingDataRP) Unmarshal(b []byte) error { return unmarshal(c, b) }

// LESetAdvertiseEnable implements LE Set Advertise Enable (0x200A)
// [Vol 2, Part E, 7.8.9].
type LESetAdvertiseEnable struct {
	AdvertisingEnable uint8
}

func (c LESetAdvertiseEnable) OpCode() int            { return 0x200A }
func (c LESetAdvertiseEnable) Len() int               { return 1 }
func (c LESetAdvertiseEnable) Marshal(b []byte) error { return marshal(c, b) }

// LESetAdvertiseEnableRP returns the return parameter of LE Set Advertise Enable.
type LESetAdvertiseEnableRP struct {
	Status uint8
}

func (c *LESetAdvertiseEnableRP) Unmarshal(b []byte) error { return unmarshal(c, b) }

// LECreateConnection implements LE Create Connection (0x200D)
// [Vol 2, Part E, 7.8.12]. Completion arrives as the LE Connection Complete
// subevent, so it is enqueued for status.
type LECreateConnection struct {
	LEScanInterval        uint16
	LEScanWindow          uint16
	InitiatorFilterPolicy uint8
	PeerAddressType       uint8
	PeerAddress           [6]byte
	OwnAddressType        uint8
	ConnIntervalMin       uint16
	ConnIntervalMax       uint16
	ConnLatency           uint16
	SupervisionTimeout    uint16
	MinimumCELength       uint16
	MaximumCELength       uint16
}

func (c LECreateConnection) OpCode() int            { return 0x200D }
func (c LECreateConnection) Len() int               { return 25 }
func (c LECreateConnection) Marshal(b []byte) error { return marshal(c, b) }

// LECreateConnectionCancel implements LE Create Connection Cancel (0x200E)
// [Vol 2, Part E, 7.8.13].
type LECreateConnectionCancel struct{}

func (c LECreateConnectionCancel) OpCode() int            { return 0x200E }
func (c LECreateConnectionCancel) Len() int               { return 0 }
func (c LECreateConnectionCancel) Marshal(b []byte) error { return marshal(c, b) }

// LECreateConnectionCancelRP returns the return parameter of LE Create
// Connection Cancel.
type LECreateConnectionCancelRP struct {
	Status uint8
}

func (c *LECreateConnectionCancelRP) Unmarshal(b []byte) error { return unmarshal(c, b) }

// LEConnectionUpdate implements LE Connection Update (0x2013)
// [Vol 2, Part E, 7.8.18]. Completion arrives as the LE Connection Update
// Complete subevent, so it is enqueued for status.
type LEConnectionUpdate struct {
	ConnectionHandle   uint16
	ConnIntervalMin    uint16
	ConnIntervalMax    uint16
	ConnLatency        uint16
	SupervisionTimeout uint16
	MinimumCELength    uint16
	MaximumCELength    uint16
}

func (c LEConnectionUpdate) OpCode() int            { return 0x2013 }
func (c LEConnectionUpdate) Len() int               { return 14 }
func (c LEConnectionUpdate) Marshal(b []byte) error { return marshal(c, b) }

// LEStartEncryption implements LE Start Encryption (0x2019)
// [Vol 2, Part E, 7.8.24]. Completion arrives as the Encryption Change
// event, so it is enqueued for status.
type LEStartEncryption struct {
	ConnectionHandle     uint16
	RandomNumber         uint64
	EncryptedDiversifier uint16
	LongTermKey          [16]byte
}

func (c LEStartEncryption) OpCode() int            { return 0x2019 }
func (c LEStartEncryption) Len() int               { return 28 }
func (c LEStartEncryption) Marshal(b []byte) error { return marshal(c, b) }

// LELongTermKeyRequestReply implements LE Long Term Key Request Reply
// (0x201A) [Vol 2, Part E, 7.8.25].
type LELongTermKeyRequestReply struct {
	ConnectionHandle uint16
	LongTermKey      [16]byte
}

func (c LELongTermKeyRequestReply) OpCode() int            { return 0x201A }
func (c LELongTermKeyRequestReply) Len() int               { return 18 }
func (c LELongTermKeyRequestReply) Marshal(b []byte) error { return marshal(c, b) }

// LELongTermKeyRequestReplyRP returns the return parameter of LE Long Term
// Key Request Reply.
type LELongTermKeyRequestReplyRP struct {
	Status           uint8
	ConnectionHandle uint16
}

func (c *LELongTermKeyRequestReplyRP) Unmarshal(b []byte) error { return unmarshal(c, b) }

// LELongTermKeyRequestNegativeReply implements LE Long Term Key Request
// Negative Reply (0x201B) [Vol 2, Part E, 7.8.26].
type LELongTermKeyRequestNegativeReply struct {
	ConnectionHandle uint16
}

func (c LELongTermKeyRequestNegativeReply) OpCode() int            { return 0x201B }
func (c LELongTermKeyRequestNegativeReply) Len() int               { return 2 }
func (c LELongTermKeyRequestNegativeReply) Marshal(b []byte) error { return marshal(c, b) }

// LELongTermKeyRequestNegativeReplyRP returns the return parameter of LE
// Long Term Key Request Negative Reply.
type LELongTermKeyRequestNegativeReplyRP struct {
	Status           uint8
	ConnectionHandle uint16
}

func (c *LELongTermKeyRequestNegativeReplyRP) Unmarshal(b []byte) error { return unmarshal(c, b) }
