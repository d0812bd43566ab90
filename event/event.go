// Package event holds what the packet core tells an application: the Sink it
// publishes into, the values it publishes and a few Sink implementations.
package event

// Sink receives the meaning of incoming packets. Implementations must be safe
// for concurrent publishers and must not block indefinitely.
type Sink interface {
	PublishConnected()
	PublishEvent(name string, args []string)
	PublishAck(id uint64, args []string)
	PublishError(cause error, message string)
}

// Kind names the four things a Sink is told about.
type Kind string

const (
	KindConnected Kind = "connected"
	KindEvent     Kind = "event"
	KindAck       Kind = "ack"
	KindError     Kind = "error"
)

// Connected is the parameterless signal sent for a connect packet.
type Connected struct{}

// Message is a named application event.
type Message struct {
	Name string   `json:"name"`
	Args []string `json:"args"`
}

// Ack is the response to an emit that asked for an acknowledgement. Args is the
// whole decoded payload.
type Ack struct {
	ID   uint64   `json:"id"`
	Args []string `json:"args"`
}

// Error reports a packet that couldn't be understood.
type Error struct {
	Cause   error  `json:"-"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e Error) Unwrap() error { return e.Cause }

func argsOrEmpty(args []string) []string {
	if args == nil {
		return []string{}
	}
	return args
}

// SinkFuncs lets the pieces of a Sink be given as functions; nil functions
// are skipped.
type SinkFuncs struct {
	OnConnected func()
	OnEvent     func(Message)
	OnAck       func(Ack)
	OnError     func(Error)
}

func (s SinkFuncs) PublishConnected() {
	if s.OnConnected != nil {
		s.OnConnected()
	}
}

func (s SinkFuncs) PublishEvent(name string, args []string) {
	if s.OnEvent != nil {
		s.OnEvent(Message{Name: name, Args: argsOrEmpty(args)})
	}
}

func (s SinkFuncs) PublishAck(id uint64, args []string) {
	if s.OnAck != nil {
		s.OnAck(Ack{ID: id, Args: argsOrEmpty(args)})
	}
}

func (s SinkFuncs) PublishError(cause error, message string) {
	if s.OnError != nil {
		s.OnError(Error{Cause: cause, Message: message})
	}
}
