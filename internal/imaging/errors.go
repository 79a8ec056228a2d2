package imaging

import "fmt"

// ErrorKind classifies analysis failures for the wire contract.
type ErrorKind string

const (
	// KindInvalidInput marks input that never reached the decoder:
	// empty payloads, unrecognized encodings, malformed data URIs.
	KindInvalidInput ErrorKind = "invalid_input"

	// KindDecodeError marks bytes that were accepted as input but are
	// not a valid image for any registered decoder.
	KindDecodeError ErrorKind = "decode_error"
)

// Error is an analysis failure with a machine-readable kind.
//
// Both kinds are recoverable: the caller reports them back over the
// protocol and remains able to serve subsequent requests.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func invalidInputf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func decodeErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindDecodeError, Message: fmt.Sprintf(format, args...)}
}
