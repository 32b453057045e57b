package devices

import (
	"context"
	"testing"
)

type stubDevice struct {
	name string
}

func (s stubDevice) Name() string { return s.name }

func (s stubDevice) Status() (any, error) { return map[string]bool{"ok": true}, nil }

func (s stubDevice) Actions() map[string]Action {
	return map[string]Action{
		"noop": {Description: "does nothing", Handler: func(context.Context, map[string]string) error { return nil }},
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	Register(stubDevice{name: "avr.test.b"})
	Register(stubDevice{name: "avr.test.a"})

	if _, ok := Get("avr.test.a"); !ok {
		t.Fatalf("expected avr.test.a registered")
	}
	if _, ok := Get("avr.test.missing"); ok {
		t.Fatalf("unexpected device found")
	}

	names := Names()
	seenA := false
	for _, name := range names {
		if name == "avr.test.a" {
			seenA = true
		}
		if name == "avr.test.b" && !seenA {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	if !seenA {
		t.Fatalf("avr.test.a missing from %v", names)
	}
}
