// Package devices owns the registry binding drivers into the host
// control surface.
package devices

import "context"

// Action is one host-invokable device operation.
type Action struct {
	Description string
	Handler     func(ctx context.Context, args map[string]string) error
}

// Device is one controllable endpoint exposed to the host surface.
type Device interface {
	Name() string
	Status() (any, error)
	Actions() map[string]Action
}
