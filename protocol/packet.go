package protocol

import (
	"strconv"
	"strings"
)

// Packet is a decoded socket.io packet. It's a value type, the With* methods
// return a changed copy and leave the receiver alone, so a Packet can be
// handed to any number of goroutines.
type Packet struct {
	engine EngineType

	typ   Type
	typed bool

	ackID  uint64
	hasAck bool

	data []byte
}

// NewPacket returns a packet carried by the engine.io packet type et, with no
// socket.io type, ack id or data.
func NewPacket(et EngineType) Packet { return Packet{engine: et} }

// NewMessagePacket is NewPacket(MessagePacket).WithType(x).
func NewMessagePacket(x Type) Packet { return NewPacket(MessagePacket).WithType(x) }

// provides the builder interface for defining the values of a packet

func (pac Packet) WithEngine(x EngineType) Packet { pac.engine = x; return pac }
func (pac Packet) WithType(x Type) Packet         { pac.typ, pac.typed = x, true; return pac }
func (pac Packet) WithoutType() Packet            { pac.typ, pac.typed = 0, false; return pac }
func (pac Packet) WithAckID(x uint64) Packet      { pac.ackID, pac.hasAck = x, true; return pac }
func (pac Packet) WithoutAckID() Packet           { pac.ackID, pac.hasAck = 0, false; return pac }

// WithData copies x into the packet.
func (pac Packet) WithData(x []byte) Packet {
	if x == nil {
		pac.data = nil
		return pac
	}
	pac.data = append(make([]byte, 0, len(x)), x...)
	return pac
}

// WithStringData is WithData([]byte(x)).
func (pac Packet) WithStringData(x string) Packet { return pac.WithData([]byte(x)) }

func (pac Packet) Engine() EngineType { return pac.engine }

// Type returns the socket.io packet type. The bool is false when the frame
// could not be classified.
func (pac Packet) Type() (Type, bool) { return pac.typ, pac.typed }

// AckID returns the acknowledgement (correlation) id. The bool is false when
// the packet doesn't carry one.
func (pac Packet) AckID() (uint64, bool) { return pac.ackID, pac.hasAck }

// Data returns the raw payload. The returned slice is shared with the packet
// and must not be modified.
func (pac Packet) Data() []byte { return pac.data }

// String describes the packet for diagnostics, e.g.
//
//     packet{engine:message type:ack id:7 data:["ok",42]}
func (pac Packet) String() string {
	var b strings.Builder
	b.WriteString("packet{engine:")
	b.WriteString(pac.engine.String())

	b.WriteString(" type:")
	if pac.typed {
		b.WriteString(pac.typ.String())
	} else {
		b.WriteString("none")
	}

	if pac.hasAck {
		b.WriteString(" id:")
		b.WriteString(strconv.FormatUint(pac.ackID, 10))
	}

	if len(pac.data) > 0 {
		b.WriteString(" data:")
		b.Write(pac.data)
	}

	b.WriteByte('}')
	return b.String()
}
