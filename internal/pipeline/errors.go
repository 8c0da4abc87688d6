package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrSourceRead       = errors.New("source read error")
	ErrSchema           = errors.New("schema error")
	ErrSinkWrite        = errors.New("sink write error")
	ErrInvalidRecipient = errors.New("invalid recipient error")
	ErrMailSink         = errors.New("mail sink error")
)

var descriptions = map[error]string{
	ErrSourceRead:       "cannot read input file",
	ErrSchema:           "unexpected table layout, column",
	ErrSinkWrite:        "cannot write output file",
	ErrInvalidRecipient: "malformed email address",
	ErrMailSink:         "cannot create mail draft for",
}

// Error is returned by Pipeline.Run. Kind is one of the Err* sentinels and Value is the
// offending path, column name or address.
type Error struct {
	Kind  error
	Value string
	Err   error
}

func (e *Error) Error() string {
	desc, ok := descriptions[e.Kind]
	if !ok {
		desc = e.Kind.Error()
	}

	if e.Err == nil {
		return fmt.Sprintf("%s %q", desc, e.Value)
	}

	return fmt.Sprintf("%s %q: %v", desc, e.Value, e.Err)
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func sourceReadError(path string, err error) error {
	return &Error{Kind: ErrSourceRead, Value: path, Err: err}
}

func schemaError(column string, err error) error {
	return &Error{Kind: ErrSchema, Value: column, Err: err}
}

func sinkWriteError(path string, err error) error {
	return &Error{Kind: ErrSinkWrite, Value: path, Err: err}
}

func invalidRecipientError(addr string, err error) error {
	return &Error{Kind: ErrInvalidRecipient, Value: addr, Err: err}
}

func mailSinkError(recipient string, err error) error {
	return &Error{Kind: ErrMailSink, Value: recipient, Err: err}
}
