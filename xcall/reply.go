package xcall

import (
	"errors"
	"fmt"

	sdk "github.com/xcall-bridge/sdk"
	"github.com/xcall-bridge/sdk/store"
)

// Reply is a decoded host reply.
type Reply struct {
	raw    string
	record *store.Record
}

// NewReply decodes text into a Reply. Any text is accepted.
func NewReply(text string) *Reply {
	return &Reply{raw: text, record: store.Decode(text)}
}

// Raw returns the reply text as received.
func (r *Reply) Raw() string { return r.raw }

// Record returns the decoded reply fields.
func (r *Reply) Record() *store.Record { return r.record }

// Success reports whether the reply carries an integer success field greater
// than zero. Missing, non-numeric and non-positive values all fail.
func (r *Reply) Success() bool {
	v, ok := r.record.Int(SuccessField)
	return ok && v > 0
}

// Function returns the function name echoed in the reply metadata.
func (r *Reply) Function() string {
	return metaText(r.record, FunctionField)
}

// HostError returns the error message from the reply metadata, if any.
func (r *Reply) HostError() string {
	return metaText(r.record, ErrorField)
}

// Err explains an unsuccessful reply: sdk.ErrHostError when the host answered
// with a non-positive success value or an error message, and
// sdk.ErrHostResponseInvalid when no usable success value is present. It is
// nil when Success is true.
func (r *Reply) Err() error {
	if r.Success() {
		return nil
	}

	if msg := r.HostError(); msg != "" {
		return errors.Join(sdk.ErrHostError, errors.New(msg))
	}

	v, ok := r.record.Int(SuccessField)
	if !ok {
		return sdk.ErrHostResponseInvalid
	}
	return errors.Join(sdk.ErrHostError, fmt.Errorf("success = %d", v))
}

func metaText(r *store.Record, field string) string {
	v, ok := r.Path(MetaField + "/" + field)
	if !ok {
		return ""
	}
	s, _ := v.AsString()
	return s
}
