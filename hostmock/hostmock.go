package hostmock

import (
	"errors"
	"fmt"
	"sort"

	"github.com/xcall-bridge/sdk/store"
)

var (
	// ErrUnexpectedNamespace is returned when the namespace is not as expected.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedFunction is returned when the function is not as expected.
	ErrUnexpectedFunction = errors.New("unexpected function")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")

	// ErrFunctionExists is returned by Register for a name already in use.
	ErrFunctionExists = errors.New("xcall function already registered")

	// ErrFunctionNotFound is returned by Unregister for an unknown name.
	ErrFunctionNotFound = errors.New("xcall function not registered")

	// ErrInvalidFunction is returned by Register for an empty name or nil function.
	ErrInvalidFunction = errors.New("xcall function is invalid")
)

// Function is a host-side xcall function. It receives the full decoded
// request, metadata block included, and returns its reply fields. A nil
// reply is reported to the caller as an invalid store.
type Function func(request *store.Record) *store.Record

// Acknowledge returns a Function replying `success = <value>`.
func Acknowledge(value int64) Function {
	return func(*store.Record) *store.Record {
		r := store.NewRecord()
		r.Set("success", store.Integer(value))
		return r
	}
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// ExpectedNamespace defines the namespace expected in the host call.
	ExpectedNamespace string

	// ExpectedCapability defines the capability expected in the host call.
	ExpectedCapability string

	// ExpectedFunction defines the waPC function expected in the host call.
	ExpectedFunction string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// Fail indicates whether the mock should return an error.
	Fail bool

	// Functions pre-registers xcall functions by name.
	Functions map[string]Function

	// RawReply, when set, replaces xcall dispatch and returns its text as is.
	RawReply func(request string) string
}

// Mock simulates the host end of an xcall: routing validation, a registry of
// named functions and replies carrying xcall metadata.
type Mock struct {
	// ExpectedNamespace defines the namespace expected in the host call.
	ExpectedNamespace string

	// ExpectedCapability defines the capability expected in the host call.
	ExpectedCapability string

	// ExpectedFunction defines the waPC function expected in the host call.
	ExpectedFunction string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// Fail indicates whether the mock should return an error.
	Fail bool

	// RawReply, when set, replaces xcall dispatch and returns its text as is.
	RawReply func(request string) string

	// Calls records every request that reached dispatch, decoded.
	Calls []*store.Record

	functions map[string]Function
}

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	m := &Mock{
		ExpectedNamespace:  config.ExpectedNamespace,
		ExpectedCapability: config.ExpectedCapability,
		ExpectedFunction:   config.ExpectedFunction,
		Error:              config.Error,
		Fail:               config.Fail,
		RawReply:           config.RawReply,
		functions:          make(map[string]Function),
	}

	for name, fn := range config.Functions {
		if err := m.Register(name, fn); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Register adds a named xcall function.
func (m *Mock) Register(name string, fn Function) error {
	if name == "" || fn == nil {
		return ErrInvalidFunction
	}
	if _, ok := m.functions[name]; ok {
		return fmt.Errorf("%w: %s", ErrFunctionExists, name)
	}
	m.functions[name] = fn
	return nil
}

// Unregister removes a named xcall function.
func (m *Mock) Unregister(name string) error {
	if _, ok := m.functions[name]; !ok {
		return fmt.Errorf("%w: %s", ErrFunctionNotFound, name)
	}
	delete(m.functions, name)
	return nil
}

// Functions lists the registered function names in sorted order.
func (m *Mock) Functions() []string {
	names := make([]string, 0, len(m.functions))
	for name := range m.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HostCall simulates a waPC host call. Routing fields are only enforced when
// the matching Expected* field is set.
func (m *Mock) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	// Return user-defined error if Fail is set
	if m.Fail && m.Error != nil {
		return nil, m.Error
	}

	// Return default error if Fail is set but no custom error is provided
	if m.Fail {
		return nil, ErrOperationFailed
	}

	if m.ExpectedNamespace != "" && m.ExpectedNamespace != namespace {
		return nil, fmt.Errorf(
			"%w: expected namespace %s, got %s",
			ErrUnexpectedNamespace,
			m.ExpectedNamespace,
			namespace,
		)
	}

	if m.ExpectedCapability != "" && m.ExpectedCapability != capability {
		return nil, fmt.Errorf(
			"%w: expected capability %s, got %s",
			ErrUnexpectedCapability,
			m.ExpectedCapability,
			capability,
		)
	}

	if m.ExpectedFunction != "" && m.ExpectedFunction != function {
		return nil, fmt.Errorf("%w: expected function %s, got %s", ErrUnexpectedFunction, m.ExpectedFunction, function)
	}

	return []byte(m.Invoke(string(payload))), nil
}

// Invoke runs one xcall against the registered functions and returns the
// encoded reply. Every reply carries an xcall block with the called function,
// the request parameters and, on failure, an error message.
func (m *Mock) Invoke(request string) string {
	if m.RawReply != nil {
		m.Calls = append(m.Calls, store.Decode(request))
		return m.RawReply(request)
	}

	xcall, err := store.Parse(request)
	if err != nil {
		return store.Encode(errorReply(nil, fmt.Sprintf("Failed to parse XCall store string: %s", request)))
	}
	m.Calls = append(m.Calls, xcall)

	meta := store.NewRecord()
	params := xcall.Clone()
	params.Delete("xcall")
	meta.Set("params", store.Array(params))

	name, ok := functionName(xcall)
	if !ok {
		return store.Encode(errorReply(meta, "Failed to read XCall function name"))
	}
	meta.Set("function", store.String(name))

	fn, ok := m.functions[name]
	if !ok {
		return store.Encode(errorReply(meta, fmt.Sprintf("Requested XCall function '%s' not found", name)))
	}

	ret := fn(xcall.Clone())
	if ret == nil {
		return store.Encode(errorReply(meta, fmt.Sprintf("Requested XCall function '%s' returned invalid store", name)))
	}

	out := ret.Clone()
	wrapper := store.NewRecord()
	wrapper.Set("xcall", store.Array(meta))
	out.Merge(wrapper)
	return store.Encode(out)
}

// functionName reads the function either from `xcall = name` or from
// `xcall = { function = name }`.
func functionName(xcall *store.Record) (string, bool) {
	if name, ok := xcall.Text("xcall"); ok {
		return name, true
	}
	v, ok := xcall.Path("xcall/function")
	if !ok {
		return "", false
	}
	return v.AsString()
}

func errorReply(meta *store.Record, msg string) *store.Record {
	if meta == nil {
		meta = store.NewRecord()
	}
	meta.Set("error", store.String(msg))
	r := store.NewRecord()
	r.Set("xcall", store.Array(meta))
	return r
}
