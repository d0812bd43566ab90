package event

import (
	"sync"
	"sync/atomic"
)

// Subject fans a value out to every subscriber. Publish never blocks: a
// subscriber whose buffer is full misses the value and the drop is counted.
type Subject[T any] struct {
	mu     sync.RWMutex
	subs   map[uint64]chan T
	next   uint64
	buffer int
	closed bool

	dropped atomic.Uint64
}

func NewSubject[T any](buffer int) *Subject[T] {
	if buffer < 0 {
		buffer = 0
	}
	return &Subject[T]{subs: make(map[uint64]chan T), buffer: buffer}
}

// Subscribe returns a channel that receives every value published after the
// call, and a cancel func that closes it. Subscribing to a closed Subject
// returns a closed channel.
func (s *Subject[T]) Subscribe() (<-chan T, func()) {
	ch := make(chan T, s.buffer)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.next
	s.next++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		})
	}
}

func (s *Subject[T]) Publish(v T) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ch := range s.subs {
		select {
		case ch <- v:
		default:
			s.dropped.Add(1)
		}
	}
}

// Dropped is the number of deliveries missed by slow subscribers.
func (s *Subject[T]) Dropped() uint64 { return s.dropped.Load() }

// Close closes every subscriber channel. Publishing after Close is a no-op.
func (s *Subject[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// Subjects is a Sink with one Subject per kind of event.
type Subjects struct {
	Connected *Subject[Connected]
	Messages  *Subject[Message]
	Acks      *Subject[Ack]
	Errors    *Subject[Error]
}

var _ Sink = (*Subjects)(nil)

// NewSubjects returns Subjects whose subscriber channels hold buffer values.
func NewSubjects(buffer int) *Subjects {
	return &Subjects{
		Connected: NewSubject[Connected](buffer),
		Messages:  NewSubject[Message](buffer),
		Acks:      NewSubject[Ack](buffer),
		Errors:    NewSubject[Error](buffer),
	}
}

func (s *Subjects) PublishConnected() { s.Connected.Publish(Connected{}) }

func (s *Subjects) PublishEvent(name string, args []string) {
	s.Messages.Publish(Message{Name: name, Args: argsOrEmpty(args)})
}

func (s *Subjects) PublishAck(id uint64, args []string) {
	s.Acks.Publish(Ack{ID: id, Args: argsOrEmpty(args)})
}

func (s *Subjects) PublishError(cause error, message string) {
	s.Errors.Publish(Error{Cause: cause, Message: message})
}

func (s *Subjects) Dropped() uint64 {
	return s.Connected.Dropped() + s.Messages.Dropped() + s.Acks.Dropped() + s.Errors.Dropped()
}

func (s *Subjects) Close() {
	s.Connected.Close()
	s.Messages.Close()
	s.Acks.Close()
	s.Errors.Close()
}
