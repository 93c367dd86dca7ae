package cmd

// Disconnect implements Disconnect (0x0406) [Vol 2, Part E, 7.1.6].
type Disconnect struct {
	ConnectionHandle uint16
	Reason           uint8
}

func (c Disconnect) OpCode() int            { return 0x0406 }
func (c Disconnect) Len() int               { return 3 }
func (c Disconnect) Marshal(b []byte) error { return marshal(c, b) }

// AuthenticationRequested implements Authentication Requested (0x0411)
// [Vol 2, Part E, 7.1.15].
type AuthenticationRequested struct {
	ConnectionHandle uint16
}

func (c AuthenticationRequested) OpCode() int            { return 0x0411 }
func (c AuthenticationRequested) Len() int               { return 2 }
func (c AuthenticationRequested) Marshal(b []byte) error { return marshal(c, b) }

// SetConnectionEncryption implements Set Connection Encryption (0x0413)
// [Vol 2, Part E, 7.1.16].
type SetConnectionEncryption struct {
	ConnectionHandle uint16
	EncryptionEnable uint8
}

func (c SetConnectionEncryption) OpCode() int            { return 0x0413 }
func (c SetConnectionEncryption) Len() int               { return 3 }
func (c SetConnectionEncryption) Marshal(b []byte) error { return marshal(c, b) }

// LinkKeyRequestReply implements Link Key Request Reply (0x040B)
// [Vol 2, Part E, 7.1.10].
type LinkKeyRequestReply struct {
	BDADDR  [6]byte
	LinkKey [16]byte
}

func (c LinkKeyRequestReply) OpCode() int            { return 0x040B }
func (c LinkKeyRequestReply) Len() int               { return 22 }
func (c LinkKeyRequestReply) Marshal(b []byte) error { return marshal(c, b) }

// LinkKeyRequestReplyRP returns the return parameter of Link Key Request Reply.
type LinkKeyRequestReplyRP struct {
	Status uint8
	BDADDR [6]byte
}

func (c *LinkKeyRequestReplyRP) Unmarshal(b []byte) error { return unmarshal(c, b) }

// LinkKeyRequestNegativeReply implements Link Key Request Negative Reply
// (0x040C) [Vol 2, Part E, 7.1.11].
type LinkKeyRequestNegativeReply struct {
	BDADDR [6]byte
}

func (c LinkKeyRequestNegativeReply) OpCode() int            { return 0x040C }
func (c LinkKeyRequestNegativeReply) Len() int               { return 6 }
func (c LinkKeyRequestNegativeReply) Marshal(b []byte) error { return marshal(c, b) }

// LinkKeyRequestNegativeReplyRP returns the return parameter of Link Key
// Request Negative Reply.
type LinkKeyRequestNegativeReplyRP struct {
	Status uint8
	BDADDR [6]byte
}

func (c *LinkKeyRequestNegativeReplyRP) Unmarshal(b []byte) error { return unmarshal(c, b) }
