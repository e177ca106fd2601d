package xcall

import (
	"errors"
	"fmt"

	"github.com/xcall-bridge/sdk/store"
)

const (
	// MetaField is the block carrying xcall metadata in requests and replies.
	MetaField = "xcall"

	// FunctionField names the remote function inside the metadata block.
	FunctionField = "function"

	// ErrorField carries a host-side error message inside the metadata block.
	ErrorField = "error"

	// SuccessField is the top-level reply field holding the success indicator.
	SuccessField = "success"
)

var (
	// ErrEncoding is matched by every EncodingError.
	ErrEncoding = errors.New("xcall request cannot be encoded")

	// ErrInvalidFunctionName indicates an empty remote function name.
	ErrInvalidFunctionName = errors.New("function name is invalid")

	// ErrInvalidFieldName indicates an empty payload field name.
	ErrInvalidFieldName = errors.New("field name is invalid")

	// ErrDuplicateField indicates a payload field name used more than once.
	ErrDuplicateField = errors.New("field name is duplicated")

	// ErrReservedField indicates a payload field that collides with the metadata block.
	ErrReservedField = errors.New("field name is reserved")
)

// EncodingError reports a structurally invalid CallRequest. It is never
// caused by field values, which are always encodable.
type EncodingError struct {
	// Function is the remote function name of the rejected request.
	Function string

	// Field is the offending field name, if the problem is with a field.
	Field string

	// Err is one of ErrInvalidFunctionName, ErrInvalidFieldName,
	// ErrDuplicateField or ErrReservedField.
	Err error
}

func (e *EncodingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %q", ErrEncoding, e.Err, e.Field)
	}
	return fmt.Sprintf("%s: %s", ErrEncoding, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// Is makes every EncodingError match ErrEncoding.
func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }

// Field is one named payload value.
type Field struct {
	Name  string
	Value string
}

// CallRequest is an immutable request for one remote function.
type CallRequest struct {
	function string
	payload  []Field
}

// NewCallRequest validates and builds a request. Field order is kept.
func NewCallRequest(function string, payload ...Field) (CallRequest, error) {
	req := CallRequest{function: function, payload: append([]Field(nil), payload...)}
	if err := req.validate(); err != nil {
		return CallRequest{}, err
	}
	return req, nil
}

// Function returns the remote function name.
func (r CallRequest) Function() string { return r.function }

// Payload returns a copy of the payload fields.
func (r CallRequest) Payload() []Field { return append([]Field(nil), r.payload...) }

func (r CallRequest) validate() error {
	if r.function == "" {
		return &EncodingError{Err: ErrInvalidFunctionName}
	}

	seen := make(map[string]struct{}, len(r.payload))
	for _, f := range r.payload {
		switch {
		case f.Name == "":
			return &EncodingError{Function: r.function, Err: ErrInvalidFieldName}
		case f.Name == MetaField:
			return &EncodingError{Function: r.function, Field: f.Name, Err: ErrReservedField}
		}
		if _, dup := seen[f.Name]; dup {
			return &EncodingError{Function: r.function, Field: f.Name, Err: ErrDuplicateField}
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// Record returns the request as a store record: the payload fields followed
// by the metadata block naming the function.
func (r CallRequest) Record() *store.Record {
	rec := store.NewRecord()
	for _, f := range r.payload {
		rec.Set(f.Name, store.String(f.Value))
	}

	meta := store.NewRecord()
	meta.Set(FunctionField, store.String(r.function))
	rec.Set(MetaField, store.Array(meta))
	return rec
}

// Encode renders req as Store text. The zero CallRequest fails with an
// EncodingError.
func Encode(req CallRequest) (string, error) {
	if err := req.validate(); err != nil {
		return "", err
	}
	return store.Encode(req.Record()), nil
}
