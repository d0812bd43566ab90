// Package processor interprets decoded socket.io packets: it works out what a
// packet means and publishes that to an event.Sink, or returns a fault.
package processor

import "github.com/njones/sioclient/protocol"

// Processor handles one family of packets. Process must be safe for
// concurrent use and must produce at most one outcome per call: a publish to
// its sink, a returned error, or a log line.
type Processor interface {
	Process(pac protocol.Packet) error
}

// ProcessorFunc lets a plain function be used as a Processor.
type ProcessorFunc func(protocol.Packet) error

func (fn ProcessorFunc) Process(pac protocol.Packet) error { return fn(pac) }
