// Package payload decodes the data part of socket.io event and ack packets
// into an ordered list of elements.
package payload

import "strings"

// Element is a single value from a decoded payload array. Strings are
// unquoted; every other value is kept as its compact JSON text.
type Element struct {
	Text     string
	IsString bool
}

func String(s string) Element { return Element{Text: s, IsString: true} }
func Raw(s string) Element    { return Element{Text: s} }

// Array is a decoded payload in its original order.
type Array []Element

// Strings returns the text of every element. It never returns nil.
func (a Array) Strings() []string {
	out := make([]string, len(a))
	for i, e := range a {
		out[i] = e.Text
	}
	return out
}

// Decoder decodes a packet payload. Decode must be safe for concurrent use.
type Decoder interface {
	Decode(p []byte) (Array, error)
}

// DecoderFunc lets a plain function be used as a Decoder.
type DecoderFunc func(p []byte) (Array, error)

func (fn DecoderFunc) Decode(p []byte) (Array, error) { return fn(p) }

// Codec names accepted by ByName.
const (
	CodecJSON    = "json"
	CodecMsgPack = "msgpack"
)

// ByName returns the decoder registered under name.
func ByName(name string) (Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", CodecJSON:
		return JSON, nil
	case CodecMsgPack:
		return MsgPack, nil
	}
	return nil, ErrUnknownCodec.F(name)
}
