package protocol

import "strconv"

// Type is the socket.io packet type.
type Type byte

// The packet type codes available in the socket.io protocol
const (
	ConnectPacket Type = iota
	DisconnectPacket
	EventPacket
	AckPacket
	ErrorPacket
	BinaryEventPacket
	BinaryAckPacket
)

// ConnectErrorPacket is the name socket.io version 5 gives ErrorPacket, the
// code is the same.
const ConnectErrorPacket = ErrorPacket

// Byte returns the Type as the underlining byte type
func (x Type) Byte() byte { return byte(x) }

// Valid reports if x is one of the known socket.io packet types.
func (x Type) Valid() bool { return x <= BinaryAckPacket }

func (x Type) String() string {
	switch x {
	case ConnectPacket:
		return "connect"
	case DisconnectPacket:
		return "disconnect"
	case EventPacket:
		return "event"
	case AckPacket:
		return "ack"
	case ErrorPacket:
		return "error"
	case BinaryEventPacket:
		return "binary event"
	case BinaryAckPacket:
		return "binary ack"
	}
	return "unknown(" + strconv.Itoa(int(x)) + ")"
}
