package protocol

import "strings"

// EngineType is the engine.io packet type that carried the socket.io packet.
// It's the outer classification a Dispatcher routes on.
type EngineType byte

const (
	OpenPacket EngineType = iota
	ClosePacket
	PingPacket
	PongPacket
	MessagePacket
	UpgradePacket
	NoopPacket

	BinaryPacket EngineType = 255
)

func (et EngineType) String() string {
	switch et {
	case OpenPacket:
		return "open"
	case ClosePacket:
		return "close"
	case PingPacket:
		return "ping"
	case PongPacket:
		return "pong"
	case MessagePacket:
		return "message"
	case UpgradePacket:
		return "upgrade"
	case NoopPacket:
		return "noop"
	case BinaryPacket:
		return "binary message"
	}
	return "unknown packet type"
}

// ParseEngineType returns the EngineType for either the name returned by
// String or the single ASCII digit used on the wire.
func ParseEngineType(str string) (EngineType, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if len(str) == 1 && str[0] >= '0' && str[0] <= '6' {
		return EngineType(str[0] & 0x0F), nil
	}
	if str == "b" || str == "binary" {
		return BinaryPacket, nil
	}
	for et := OpenPacket; et <= NoopPacket; et++ {
		if et.String() == str {
			return et, nil
		}
	}
	if str == BinaryPacket.String() {
		return BinaryPacket, nil
	}
	return 0, ErrInvalidEngineType.F(str)
}
