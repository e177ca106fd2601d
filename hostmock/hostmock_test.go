package hostmock

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xcall-bridge/sdk/store"
)

type TestCase struct {
	name       string
	cfg        Config
	payload    []byte
	namespace  string
	capability string
	function   string
	want       []byte
	wantErr    error
}

var ErrMockError = errors.New("Mock error")

func TestHostMock(t *testing.T) {
	ack := map[string]Function{"logInfo": Acknowledge(1)}

	tt := []TestCase{
		{
			name: "Acknowledged call",
			cfg: Config{
				ExpectedNamespace:  "test",
				ExpectedCapability: "xcall",
				ExpectedFunction:   "invoke",
				Functions:          ack,
			},
			namespace:  "test",
			capability: "xcall",
			function:   "invoke",
			payload:    []byte(`message = "hi", xcall = { function = "logInfo" }`),
			want:       []byte(`success = 1, xcall = { params = { message = "hi" }, function = "logInfo" }`),
		},
		{
			name: "Custom fail error",
			cfg: Config{
				ExpectedNamespace: "test",
				Error:             ErrMockError,
				Fail:              true,
			},
			namespace: "test",
			payload:   []byte("x"),
			wantErr:   ErrMockError,
		},
		{
			name: "Default fail error",
			cfg: Config{
				Fail: true, // no custom Error provided
			},
			payload: []byte("whatever"),
			wantErr: ErrOperationFailed,
		},
		{
			name: "Raw reply",
			cfg: Config{
				RawReply: func(string) string { return "garbled {{" },
			},
			payload: []byte("anything"),
			want:    []byte("garbled {{"),
		},
		{
			name: "Blank expectations are wildcards",
			cfg: Config{
				Functions: ack,
			},
			namespace:  "any",
			capability: "any",
			function:   "any",
			payload:    []byte(`xcall = logInfo`),
			want:       []byte(`success = 1, xcall = { params = {}, function = "logInfo" }`),
		},
		{
			name: "Unexpected Namespace",
			cfg: Config{
				ExpectedNamespace: "expected",
			},
			namespace: "test",
			wantErr:   ErrUnexpectedNamespace,
		},
		{
			name: "Unexpected Capability",
			cfg: Config{
				ExpectedCapability: "xcall",
			},
			capability: "test",
			wantErr:    ErrUnexpectedCapability,
		},
		{
			name: "Unexpected Function",
			cfg: Config{
				ExpectedFunction: "invoke",
			},
			function: "test",
			wantErr:  ErrUnexpectedFunction,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := New(tc.cfg)
			if err != nil {
				t.Fatalf("New Mock instance creation failed: %v", err)
			}

			got, err := mock.HostCall(tc.namespace, tc.capability, tc.function, tc.payload)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Mock call returned unexpected error: got %v, want %v", err, tc.wantErr)
			}

			if !bytes.Equal(got, tc.want) {
				t.Fatalf("Mock call returned unexpected response: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInvokeErrors(t *testing.T) {
	tt := []struct {
		name      string
		request   string
		functions map[string]Function
		wantError string
		wantFn    string
	}{
		{
			name:      "Unparsable request",
			request:   `message = "open`,
			wantError: `Failed to parse XCall store string: message = "open`,
		},
		{
			name:      "Missing function name",
			request:   `message = "hi"`,
			wantError: "Failed to read XCall function name",
		},
		{
			name:      "Unknown function",
			request:   `xcall = { function = "does_not_exist" }`,
			wantError: "Requested XCall function 'does_not_exist' not found",
			wantFn:    "does_not_exist",
		},
		{
			name:      "Function returns nil",
			request:   `xcall = { function = "broken" }`,
			functions: map[string]Function{"broken": func(*store.Record) *store.Record { return nil }},
			wantError: "Requested XCall function 'broken' returned invalid store",
			wantFn:    "broken",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := New(Config{Functions: tc.functions})
			if err != nil {
				t.Fatalf("New Mock instance creation failed: %v", err)
			}

			reply := store.Decode(mock.Invoke(tc.request))
			if reply.Has("success") {
				t.Fatalf("error reply must not carry a success field")
			}

			v, ok := reply.Path("xcall/error")
			if !ok {
				t.Fatalf("reply has no xcall/error")
			}
			if s, _ := v.AsString(); s != tc.wantError {
				t.Fatalf("unexpected error: got %q, want %q", s, tc.wantError)
			}

			fn, _ := reply.Path("xcall/function")
			if s, _ := fn.AsString(); s != tc.wantFn {
				t.Fatalf("unexpected function: got %q, want %q", s, tc.wantFn)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	mock, err := New(Config{Functions: map[string]Function{"b": Acknowledge(1)}})
	if err != nil {
		t.Fatalf("New Mock instance creation failed: %v", err)
	}

	if err := mock.Register("a", Acknowledge(0)); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if err := mock.Register("a", Acknowledge(1)); !errors.Is(err, ErrFunctionExists) {
		t.Fatalf("expected ErrFunctionExists, got %v", err)
	}
	if err := mock.Register("", Acknowledge(1)); !errors.Is(err, ErrInvalidFunction) {
		t.Fatalf("expected ErrInvalidFunction, got %v", err)
	}
	if err := mock.Register("c", nil); !errors.Is(err, ErrInvalidFunction) {
		t.Fatalf("expected ErrInvalidFunction, got %v", err)
	}

	if got := mock.Functions(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected functions: %v", got)
	}

	if err := mock.Unregister("a"); err != nil {
		t.Fatalf("Unregister returned error: %v", err)
	}
	if err := mock.Unregister("a"); !errors.Is(err, ErrFunctionNotFound) {
		t.Fatalf("expected ErrFunctionNotFound, got %v", err)
	}
}

func TestCallsRecorded(t *testing.T) {
	var seen *store.Record
	mock, err := New(Config{Functions: map[string]Function{
		"logDebug": func(req *store.Record) *store.Record {
			seen = req
			return store.Decode("success = 1")
		},
	}})
	if err != nil {
		t.Fatalf("New Mock instance creation failed: %v", err)
	}

	mock.Invoke(`text = "a \"b\"", xcall = { function = "logDebug" }`)

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 recorded call, got %d", len(mock.Calls))
	}
	if s, _ := mock.Calls[0].Text("text"); s != `a "b"` {
		t.Fatalf("unexpected recorded text %q", s)
	}
	if s, _ := seen.Text("text"); s != `a "b"` {
		t.Fatalf("function saw unexpected text %q", s)
	}
}
