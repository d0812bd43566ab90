package processor

import errs "github.com/njones/sioclient/internal/errors"

const (
	ErrPayloadParse    errs.String = "payload parse: %w"
	ErrEventName       errs.String = "unknown event name, the first field is not a string: %s"
	ErrNotImplemented  errs.String = "%s packets are not implemented"
	ErrNotSupported    errs.String = "%s packets are not supported"
	ErrInvalidCategory errs.String = "invalid packet type %d"
	ErrNoProcessor     errs.String = "no processor registered for %s packets"
)

// parseErrorMessage is the message sent with every payload parse error event.
const parseErrorMessage = "error while deserializing event message"
