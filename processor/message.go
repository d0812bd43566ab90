package processor

import (
	"github.com/njones/sioclient/event"
	errs "github.com/njones/sioclient/internal/errors"
	"github.com/njones/sioclient/logging"
	"github.com/njones/sioclient/payload"
	"github.com/njones/sioclient/protocol"
)

// Message processes the packets carried by engine.io message packets:
// connect, disconnect, event, ack, error and their binary forms.
//
// Only connect, event and ack are interpreted. Disconnect and error need state
// changes the client owns, so they return ErrNotImplemented; the binary types
// need attachment reassembly and return ErrNotSupported.
type Message struct {
	sink event.Sink
	log  logging.Logger
	dec  payload.Decoder
}

var _ Processor = (*Message)(nil)

type Option func(*Message)

func WithLogger(log logging.Logger) Option {
	return func(m *Message) {
		if log != nil {
			m.log = log
		}
	}
}

// WithDecoder sets the payload decoder, payload.JSON is the default.
func WithDecoder(dec payload.Decoder) Option {
	return func(m *Message) {
		if dec != nil {
			m.dec = dec
		}
	}
}

func NewMessage(sink event.Sink, opts ...Option) *Message {
	if sink == nil {
		panic("sioclient: event sink cannot be nil")
	}

	m := &Message{sink: sink, log: logging.Nop(), dec: payload.JSON}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Message) Process(pac protocol.Packet) error {
	if m.log.Enabled(logging.DebugLevel) {
		m.log.Debug("processing message packet", logging.Fields{"packet": pac.String()})
	}

	typ, ok := pac.Type()
	if !ok {
		m.log.Warn("cannot handle message packet without a socket.io type", logging.Fields{"packet": pac.String()})
		return nil
	}

	switch typ {
	case protocol.ConnectPacket:
		m.sink.PublishConnected()
	case protocol.EventPacket, protocol.AckPacket:
		m.eventArray(typ, pac)
	case protocol.DisconnectPacket, protocol.ErrorPacket:
		return ErrNotImplemented.F(typ).KV("packet", pac)
	case protocol.BinaryEventPacket, protocol.BinaryAckPacket:
		return ErrNotSupported.F(typ).KV("packet", pac)
	default:
		return ErrInvalidCategory.F(typ.Byte()).KV("packet", pac)
	}
	return nil
}

// eventArray decodes the payload of an event or ack packet and publishes it.
// An ack without an ack id is published as an event.
func (m *Message) eventArray(typ protocol.Type, pac protocol.Packet) {
	arr, err := m.dec.Decode(pac.Data())
	if err != nil {
		m.parseError(pac, ErrPayloadParse.F(err))
		return
	}

	if len(arr) == 0 {
		return
	}

	id, hasAck := pac.AckID()
	if hasAck && m.log.Enabled(logging.DebugLevel) {
		m.log.Debug("received packet with ack", logging.Fields{"ack_id": id})
	}

	if typ == protocol.AckPacket && hasAck {
		m.sink.PublishAck(id, arr.Strings())
		return
	}

	name := arr[0]
	if !name.IsString {
		m.parseError(pac, ErrPayloadParse.F(ErrEventName.F(name.Text)))
		return
	}

	m.sink.PublishEvent(name.Text, arr[1:].Strings())
}

// parseError is the one failure Process recovers from: it's logged and sent
// to the sink as an error event instead of being returned.
func (m *Message) parseError(pac protocol.Packet, err errs.Struct) {
	cause := err.KV("packet", pac.String())
	m.log.Error(parseErrorMessage, cause, logging.Fields{"packet": pac.String()})
	m.sink.PublishError(cause, parseErrorMessage)
}
