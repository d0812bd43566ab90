package processor

// THIS FILE DOES NOT CONTAIN TESTS...
// it has the recording sink and logger the tests use

import (
	"sync"

	"github.com/njones/sioclient/event"
	"github.com/njones/sioclient/logging"
)

type record struct {
	kind  event.Kind
	value interface{}
}

type recordSink struct {
	mu  sync.Mutex
	got []record
}

func (s *recordSink) add(kind event.Kind, v interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, record{kind: kind, value: v})
}

func (s *recordSink) records() []record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]record(nil), s.got...)
}

func (s *recordSink) PublishConnected() { s.add(event.KindConnected, event.Connected{}) }
func (s *recordSink) PublishEvent(name string, args []string) {
	s.add(event.KindEvent, event.Message{Name: name, Args: args})
}
func (s *recordSink) PublishAck(id uint64, args []string) {
	s.add(event.KindAck, event.Ack{ID: id, Args: args})
}
func (s *recordSink) PublishError(cause error, message string) {
	s.add(event.KindError, event.Error{Cause: cause, Message: message})
}

type logLine struct {
	level  logging.Level
	msg    string
	err    error
	fields logging.Fields
}

type recordLogger struct {
	mu    sync.Mutex
	level logging.Level
	lines *[]logLine
}

func newRecordLogger(level logging.Level) *recordLogger {
	return &recordLogger{level: level, lines: new([]logLine)}
}

func (l *recordLogger) add(line logLine) {
	if !l.Enabled(line.level) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.lines = append(*l.lines, line)
}

func (l *recordLogger) at(level logging.Level) []logLine {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []logLine
	for _, line := range *l.lines {
		if line.level == level {
			out = append(out, line)
		}
	}
	return out
}

func (l *recordLogger) With(logging.Fields) logging.Logger { return l }
func (l *recordLogger) Enabled(level logging.Level) bool  { return level >= l.level }

func (l *recordLogger) Debug(msg string, fields logging.Fields) {
	l.add(logLine{level: logging.DebugLevel, msg: msg, fields: fields})
}
func (l *recordLogger) Info(msg string, fields logging.Fields) {
	l.add(logLine{level: logging.InfoLevel, msg: msg, fields: fields})
}
func (l *recordLogger) Warn(msg string, fields logging.Fields) {
	l.add(logLine{level: logging.WarnLevel, msg: msg, fields: fields})
}
func (l *recordLogger) Error(msg string, err error, fields logging.Fields) {
	l.add(logLine{level: logging.ErrorLevel, msg: msg, err: err, fields: fields})
}
