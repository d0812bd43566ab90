package payload

import errs "github.com/njones/sioclient/internal/errors"

const (
	ErrDecode       errs.String = "payload decode: %w"
	ErrNotAnArray   errs.String = "payload is not an array, found %s"
	ErrElement      errs.String = "payload element %d: %w"
	ErrUnknownCodec errs.String = "unknown payload codec %q"
)
