package event

import errs "github.com/njones/sioclient/internal/errors"

const (
	ErrDecodeMessage errs.String = "%s message decode: %w"
	ErrUnknownKind   errs.String = "unknown event kind %s"
)
