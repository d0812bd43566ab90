package event

import (
	"crypto/rand"
	"strconv"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bytedance/sonic"
	"github.com/oklog/ulid/v2"

	"github.com/njones/sioclient/logging"
)

// MetadataKind is the watermill metadata key carrying the event Kind.
const MetadataKind = "sio_kind"

// DefaultTopicPrefix is put in front of the Kind to name a topic, giving
// socketio.connected, socketio.event, socketio.ack and socketio.error.
const DefaultTopicPrefix = "socketio."

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// newULID returns a time-sortable ULID for a message id.
func newULID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

type errorBody struct {
	Message string `json:"message"`
	Cause   string `json:"cause,omitempty"`
}

// Publisher is a Sink that sends each event as a watermill message, one topic
// per Kind. Publish failures can't be returned through a Sink, so they're
// logged.
type Publisher struct {
	pub    message.Publisher
	log    logging.Logger
	prefix string
}

var _ Sink = (*Publisher)(nil)

type PublisherOption func(*Publisher)

func WithPublisherLogger(log logging.Logger) PublisherOption {
	return func(p *Publisher) { p.log = log }
}

func WithTopicPrefix(prefix string) PublisherOption {
	return func(p *Publisher) { p.prefix = prefix }
}

func NewPublisher(pub message.Publisher, opts ...PublisherOption) *Publisher {
	if pub == nil {
		panic("sioclient: watermill publisher cannot be nil")
	}

	p := &Publisher{pub: pub, log: logging.Nop(), prefix: DefaultTopicPrefix}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Topic returns the topic events of kind k are published to.
func (p *Publisher) Topic(k Kind) string { return p.prefix + string(k) }

func (p *Publisher) PublishConnected() { p.publish(KindConnected, Connected{}) }

func (p *Publisher) PublishEvent(name string, args []string) {
	p.publish(KindEvent, Message{Name: name, Args: argsOrEmpty(args)})
}

func (p *Publisher) PublishAck(id uint64, args []string) {
	p.publish(KindAck, Ack{ID: id, Args: argsOrEmpty(args)})
}

func (p *Publisher) PublishError(cause error, msg string) {
	body := errorBody{Message: msg}
	if cause != nil {
		body.Cause = cause.Error()
	}
	p.publish(KindError, body)
}

func (p *Publisher) publish(kind Kind, v interface{}) {
	topic := p.Topic(kind)

	data, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		p.log.Error("event marshal failed", err, logging.Fields{"topic": topic})
		return
	}

	msg := message.NewMessage(newULID(), data)
	msg.Metadata.Set(MetadataKind, string(kind))

	if err := p.pub.Publish(topic, msg); err != nil {
		p.log.Error("event publish failed", err, logging.Fields{"topic": topic, "uuid": msg.UUID})
	}
}

// Decode turns a message sent by a Publisher back into a Connected, Message,
// Ack or Error value.
func Decode(msg *message.Message) (interface{}, error) {
	kind := Kind(msg.Metadata.Get(MetadataKind))

	switch kind {
	case KindConnected:
		return Connected{}, nil
	case KindEvent:
		var v Message
		if err := sonic.ConfigStd.Unmarshal(msg.Payload, &v); err != nil {
			return nil, ErrDecodeMessage.F(kind, err)
		}
		v.Args = argsOrEmpty(v.Args)
		return v, nil
	case KindAck:
		var v Ack
		if err := sonic.ConfigStd.Unmarshal(msg.Payload, &v); err != nil {
			return nil, ErrDecodeMessage.F(kind, err)
		}
		v.Args = argsOrEmpty(v.Args)
		return v, nil
	case KindError:
		var v errorBody
		if err := sonic.ConfigStd.Unmarshal(msg.Payload, &v); err != nil {
			return nil, ErrDecodeMessage.F(kind, err)
		}
		out := Error{Message: v.Message}
		if v.Cause != "" {
			out.Cause = remoteError(v.Cause)
		}
		return out, nil
	}
	return nil, ErrUnknownKind.F(strconv.Quote(string(kind)))
}

// remoteError is a cause that has been through a message body; only its
// text survives.
type remoteError string

func (e remoteError) Error() string { return string(e) }
