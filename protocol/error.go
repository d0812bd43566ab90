package protocol

import errs "github.com/njones/sioclient/internal/errors"

const (
	ErrInvalidEngineType errs.String = "invalid engine.io packet type %q"
)
