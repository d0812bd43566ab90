package logging

import "github.com/ThreeDotsLabs/watermill"

// Watermill adapts a Logger so watermill publishers and subscribers log
// through it. Watermill's Info goes out at debug, it's too chatty otherwise.
func Watermill(log Logger) watermill.LoggerAdapter {
	if log == nil {
		log = Nop()
	}
	return watermillLogger{log: log}
}

type watermillLogger struct{ log Logger }

func (w watermillLogger) Error(msg string, err error, fields watermill.LogFields) {
	w.log.Error(msg, err, Fields(fields))
}

func (w watermillLogger) Info(msg string, fields watermill.LogFields) {
	w.log.Debug(msg, Fields(fields))
}

func (w watermillLogger) Debug(msg string, fields watermill.LogFields) {
	w.log.Debug(msg, Fields(fields))
}

func (w watermillLogger) Trace(msg string, fields watermill.LogFields) {
	if w.log.Enabled(TraceLevel) {
		w.log.Debug(msg, Fields(fields))
	}
}

func (w watermillLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return watermillLogger{log: w.log.With(Fields(fields))}
}
