package sdk

import (
	"errors"
	"testing"
)

type testCase struct {
	name      string
	namespace string
	handler   func(b []byte) ([]byte, error)
	wantErr   error
	wantNs    string
}

func TestNew(t *testing.T) {
	testCases := []testCase{
		{
			name:      "Explicit Namespace",
			namespace: "guest",
			handler:   func(b []byte) ([]byte, error) { return b, nil },
			wantErr:   nil,
			wantNs:    "guest",
		},
		{
			name:      "Empty Namespace",
			namespace: "",
			handler:   func(b []byte) ([]byte, error) { return b, nil },
			wantErr:   nil,
			wantNs:    DefaultNamespace,
		},
		{
			name:      "Nil Handler",
			namespace: "guest",
			handler:   nil,
			wantErr:   ErrHandlerNil,
			wantNs:    "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sdk, err := New(Config{Namespace: tc.namespace, Handler: tc.handler})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if err != nil {
				return
			}

			t.Run("Check Namespace", func(t *testing.T) {
				if sdk.Config().Namespace != tc.wantNs {
					t.Errorf("expected namespace %q, got %q", tc.wantNs, sdk.Config().Namespace)
				}
			})
		})
	}
}

func TestSDK_Behavior(t *testing.T) {
	// Two guests registered in a row, each with its own namespace.
	h1 := func(b []byte) ([]byte, error) { return b, nil }
	h2 := func(b []byte) ([]byte, error) { return nil, errors.New("boom") }

	s1, err := New(Config{Namespace: "one", Handler: h1})
	if err != nil {
		t.Fatalf("first New returned error: %v", err)
	}
	s2, err := New(Config{Namespace: "two", Handler: h2})
	if err != nil {
		t.Fatalf("second New returned error: %v", err)
	}

	t.Run("Config_Immutability", func(t *testing.T) {
		got := s1.Config()
		got.Namespace = "mutated"
		if s1.Config().Namespace != "one" {
			t.Fatalf("expected SDK namespace to remain 'one', got %q", s1.Config().Namespace)
		}
	})

	t.Run("InstancesIsolation", func(t *testing.T) {
		if s1.Config().Namespace != "one" || s2.Config().Namespace != "two" {
			t.Fatalf("expected namespaces 'one' and 'two', got %q and %q", s1.Config().Namespace, s2.Config().Namespace)
		}
	})
}

func TestRuntimeConfigWithDefaults(t *testing.T) {
	tt := []struct {
		name   string
		in     RuntimeConfig
		wantNs string
	}{
		{name: "empty namespace", in: RuntimeConfig{}, wantNs: DefaultNamespace},
		{name: "explicit namespace", in: RuntimeConfig{Namespace: "guest"}, wantNs: "guest"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.WithDefaults().Namespace; got != tc.wantNs {
				t.Fatalf("expected namespace %q, got %q", tc.wantNs, got)
			}
		})
	}
}
