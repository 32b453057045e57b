package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/danmuck/avrctl/internal/eiscp"
	"github.com/danmuck/avrctl/internal/observability"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrHostRequired  = errors.New("driver: receiver host required")
	ErrInputRequired = errors.New("driver: input source required")
	ErrStopped       = errors.New("driver: driver stopped")
)

// State is the host-facing snapshot of receiver capabilities.
type State struct {
	Power     bool   `json:"power"`
	Volume    int    `json:"volume"`
	Mute      bool   `json:"mute"`
	Input     string `json:"input"`
	Connected bool   `json:"connected"`
}

// Driver owns one client session for one configured receiver.
type Driver struct {
	cfg    Config
	client *eiscp.Client
	logger zerolog.Logger

	mu       sync.Mutex
	state    State
	stopped  bool
	retry    *time.Timer
	attempt  int
	onChange func(State)
}

// New constructs a stopped driver for one receiver.
func New(cfg Config) (*Driver, error) {
	cfg = cfg.WithDefaults()
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, ErrHostRequired
	}
	d := &Driver{
		cfg:    cfg,
		logger: log.With().Str("component", "driver").Str("device", cfg.Name).Logger(),
	}
	d.client = eiscp.NewClient(cfg.Host, cfg.Port, cfg.Transport, eiscp.Handler{
		OnMessage: d.handleMessage,
		OnClose:   d.handleClose,
		OnError:   d.handleError,
	})
	return d, nil
}

// OnStateChange registers the host-platform hook invoked after every
// capability update, with a snapshot of the full state.
func (d *Driver) OnStateChange(fn func(State)) {
	d.mu.Lock()
	d.onChange = fn
	d.mu.Unlock()
}

// Start attempts the initial connection; on failure the fixed-interval
// retry loop takes over.
func (d *Driver) Start(ctx context.Context) {
	if err := d.client.Connect(ctx); err != nil {
		d.scheduleRetry()
		return
	}
	d.markConnected()
}

// Stop ends reconnect supervision and closes the session.
func (d *Driver) Stop() {
	d.mu.Lock()
	d.stopped = true
	retry := d.retry
	d.retry = nil
	d.mu.Unlock()
	if retry != nil {
		retry.Stop()
	}
	d.client.Close()
}

// SetPower switches the receiver between on and standby.
func (d *Driver) SetPower(on bool) error {
	return d.command("PWR" + boolArg(on))
}

// SetMute switches audio muting.
func (d *Driver) SetMute(on bool) error {
	return d.command("AMT" + boolArg(on))
}

// SetVolume clamps level to [0, 100] and issues one master-volume
// command, zero-padded per the protocol's level encoding.
func (d *Driver) SetVolume(level int) error {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	return d.command(fmt.Sprintf("MVL%02d", level))
}

// SetInput selects the input source by its protocol code (e.g. "10").
func (d *Driver) SetInput(source string) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return ErrInputRequired
	}
	return d.command("SLT" + source)
}

// command lazily re-establishes the session, then issues exactly one
// protocol write.
func (d *Driver) command(cmd string) error {
	if err := d.ensureConnected(); err != nil {
		return err
	}
	if err := d.client.Send(cmd); err != nil {
		return err
	}
	observability.RecordCommand(d.cfg.Name, cmd[:3])
	return nil
}

func (d *Driver) ensureConnected() error {
	d.mu.Lock()
	stopped := d.stopped
	d.mu.Unlock()
	if stopped {
		return ErrStopped
	}
	if d.client.Connected() {
		return nil
	}
	if err := d.client.Connect(context.Background()); err != nil {
		d.scheduleRetry()
		return err
	}
	d.markConnected()
	return nil
}

func (d *Driver) handleMessage(msg eiscp.Message) {
	observability.RecordMessage(d.cfg.Name, msg.Command)

	d.mu.Lock()
	switch msg.Command {
	case "PWR":
		d.state.Power = msg.Value == "01"
	case "MVL":
		level, err := strconv.Atoi(msg.Value)
		if err != nil {
			d.mu.Unlock()
			d.logger.Warn().Str("value", msg.Value).Msg("malformed volume level")
			return
		}
		d.state.Volume = level
	case "AMT":
		d.state.Mute = msg.Value == "01"
	case "SLT":
		d.state.Input = msg.Value
	default:
		d.mu.Unlock()
		d.logger.Debug().Str("code", msg.Command).Str("value", msg.Value).Msg("unhandled notification")
		return
	}
	state := d.state
	notify := d.onChange
	d.mu.Unlock()

	if notify != nil {
		notify(state)
	}
}

func (d *Driver) handleError(err error) {
	d.logger.Warn().Err(err).Msg("session error")
}

func (d *Driver) handleClose() {
	d.mu.Lock()
	d.state.Connected = false
	state := d.state
	notify := d.onChange
	d.mu.Unlock()

	observability.SetConnected(d.cfg.Name, false)
	if notify != nil {
		notify(state)
	}
	d.scheduleRetry()
}

func (d *Driver) markConnected() {
	d.mu.Lock()
	d.attempt = 0
	d.state.Connected = true
	state := d.state
	notify := d.onChange
	d.mu.Unlock()

	observability.SetConnected(d.cfg.Name, true)
	if notify != nil {
		notify(state)
	}
}

func (d *Driver) scheduleRetry() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || d.retry != nil {
		return
	}
	d.attempt++
	delay := NextRetryDelay(d.cfg.Retry, d.attempt)
	d.retry = time.AfterFunc(delay, d.retryConnect)
	d.logger.Info().Dur("delay", delay).Int("attempt", d.attempt).Msg("reconnect scheduled")
}

func (d *Driver) retryConnect() {
	d.mu.Lock()
	d.retry = nil
	stopped := d.stopped
	d.mu.Unlock()
	if stopped {
		return
	}

	observability.RecordReconnectAttempt(d.cfg.Name)
	if err := d.client.Connect(context.Background()); err != nil {
		d.scheduleRetry()
		return
	}
	d.markConnected()
}

func boolArg(on bool) string {
	if on {
		return "01"
	}
	return "00"
}
