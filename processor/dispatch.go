package processor

import (
	"github.com/njones/sioclient/event"
	"github.com/njones/sioclient/protocol"
)

// Dispatcher routes a packet to the Processor registered for its engine.io
// packet type. The routes are fixed when the Dispatcher is made, so Dispatch
// needs no locking.
type Dispatcher struct {
	procs map[protocol.EngineType]Processor
}

type DispatchOption func(*Dispatcher)

// WithProcessor routes packets carried by et to proc. A later registration
// for the same et replaces an earlier one.
func WithProcessor(et protocol.EngineType, proc Processor) DispatchOption {
	return func(d *Dispatcher) { d.procs[et] = proc }
}

func NewDispatcher(opts ...DispatchOption) *Dispatcher {
	d := &Dispatcher{procs: make(map[protocol.EngineType]Processor)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewClientDispatcher returns a Dispatcher with a Message processor publishing
// into sink registered for engine.io message packets.
func NewClientDispatcher(sink event.Sink, opts ...Option) *Dispatcher {
	return NewDispatcher(WithProcessor(protocol.MessagePacket, NewMessage(sink, opts...)))
}

// Dispatch hands pac to its Processor and returns the Processor's result. A
// packet nobody handles is an ErrNoProcessor, never a silent drop.
func (d *Dispatcher) Dispatch(pac protocol.Packet) error {
	proc, ok := d.procs[pac.Engine()]
	if !ok || proc == nil {
		return ErrNoProcessor.F(pac.Engine()).KV("packet", pac)
	}
	return proc.Process(pac)
}

// Process makes a Dispatcher usable wherever a Processor is.
func (d *Dispatcher) Process(pac protocol.Packet) error { return d.Dispatch(pac) }
