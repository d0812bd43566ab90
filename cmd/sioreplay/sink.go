package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/njones/sioclient/config"
	"github.com/njones/sioclient/event"
	"github.com/njones/sioclient/logging"
)

// replaySink is a Sink that prints what it's told. Flush is called after each
// packet so output lines up with the fixture.
type replaySink interface {
	event.Sink
	Flush()
	Close() error
}

func newReplaySink(cfg config.Config, log logging.Logger, out io.Writer) (replaySink, error) {
	switch cfg.Sink.Kind {
	case config.SinkWatermill:
		return newWatermillSink(cfg.Sink.Buffer, log, out)
	default:
		return newChannelSink(cfg.Sink.Buffer, out), nil
	}
}

func printEvent(w io.Writer, v interface{}) {
	switch val := v.(type) {
	case event.Connected:
		fmt.Fprintln(w, "connected")
	case event.Message:
		fmt.Fprintf(w, "event %q %q\n", val.Name, val.Args)
	case event.Ack:
		fmt.Fprintf(w, "ack %d %q\n", val.ID, val.Args)
	case event.Error:
		fmt.Fprintf(w, "error %s\n", val.Error())
	}
}

type channelSink struct {
	*event.Subjects
	out io.Writer

	connected <-chan event.Connected
	messages  <-chan event.Message
	acks      <-chan event.Ack
	errs      <-chan event.Error
}

func newChannelSink(buffer int, out io.Writer) *channelSink {
	if buffer < 1 {
		buffer = 1
	}

	s := &channelSink{Subjects: event.NewSubjects(buffer), out: out}
	s.connected, _ = s.Subjects.Connected.Subscribe()
	s.messages, _ = s.Subjects.Messages.Subscribe()
	s.acks, _ = s.Subjects.Acks.Subscribe()
	s.errs, _ = s.Subjects.Errors.Subscribe()
	return s
}

// Flush prints everything waiting in the subscriber channels. Subjects
// publish synchronously, so after Dispatch returns its event is already
// buffered.
func (s *channelSink) Flush() {
	for {
		select {
		case v := <-s.connected:
			printEvent(s.out, v)
		case v := <-s.messages:
			printEvent(s.out, v)
		case v := <-s.acks:
			printEvent(s.out, v)
		case v := <-s.errs:
			printEvent(s.out, v)
		default:
			return
		}
	}
}

func (s *channelSink) Close() error {
	s.Flush()
	s.Subjects.Close()
	return nil
}

// watermillSink publishes through a gochannel pub/sub and prints from its
// subscribers. Publishing blocks until the subscriber acks, which it does
// after printing, so output stays in packet order.
type watermillSink struct {
	*event.Publisher

	pubSub *gochannel.GoChannel
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu  sync.Mutex
	out io.Writer
}

func newWatermillSink(buffer int, log logging.Logger, out io.Writer) (*watermillSink, error) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            int64(buffer),
		BlockPublishUntilSubscriberAck: true,
	}, logging.Watermill(log))

	ctx, cancel := context.WithCancel(context.Background())
	s := &watermillSink{
		Publisher: event.NewPublisher(pubSub, event.WithPublisherLogger(log)),
		pubSub:    pubSub,
		cancel:    cancel,
		out:       out,
	}

	for _, kind := range []event.Kind{event.KindConnected, event.KindEvent, event.KindAck, event.KindError} {
		msgs, err := pubSub.Subscribe(ctx, s.Topic(kind))
		if err != nil {
			cancel()
			return nil, err
		}
		s.wg.Add(1)
		go s.print(msgs, log)
	}
	return s, nil
}

func (s *watermillSink) print(msgs <-chan *message.Message, log logging.Logger) {
	defer s.wg.Done()

	for msg := range msgs {
		v, err := event.Decode(msg)
		if err != nil {
			log.Error("decode replayed message", err, logging.Fields{"uuid": msg.UUID})
			msg.Ack()
			continue
		}

		s.mu.Lock()
		printEvent(s.out, v)
		s.mu.Unlock()
		msg.Ack()
	}
}

func (s *watermillSink) Flush() {}

func (s *watermillSink) Close() error {
	s.cancel()
	err := s.pubSub.Close()
	s.wg.Wait()
	return err
}
