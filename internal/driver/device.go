package driver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/danmuck/avrctl/internal/devices"
)

var _ devices.Device = (*Driver)(nil)

// Name implements devices.Device.
func (d *Driver) Name() string {
	return d.cfg.Name
}

// Status returns the host-facing capability snapshot.
func (d *Driver) Status() (any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state, nil
}

// Actions exposes the receiver control surface to the host.
func (d *Driver) Actions() map[string]devices.Action {
	return map[string]devices.Action{
		"power.on": {
			Description: "Power the receiver on",
			Handler: func(context.Context, map[string]string) error {
				return d.SetPower(true)
			},
		},
		"power.off": {
			Description: "Put the receiver in standby",
			Handler: func(context.Context, map[string]string) error {
				return d.SetPower(false)
			},
		},
		"mute.on": {
			Description: "Mute audio",
			Handler: func(context.Context, map[string]string) error {
				return d.SetMute(true)
			},
		},
		"mute.off": {
			Description: "Unmute audio",
			Handler: func(context.Context, map[string]string) error {
				return d.SetMute(false)
			},
		},
		"volume.set": {
			Description: "Set master volume; args: level (0-100)",
			Handler: func(_ context.Context, args map[string]string) error {
				level, err := strconv.Atoi(args["level"])
				if err != nil {
					return fmt.Errorf("driver: invalid volume level %q", args["level"])
				}
				return d.SetVolume(level)
			},
		},
		"input.set": {
			Description: "Select input source; args: source (protocol code)",
			Handler: func(_ context.Context, args map[string]string) error {
				return d.SetInput(args["source"])
			},
		},
	}
}
