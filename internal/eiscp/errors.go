package eiscp

import "errors"

var (
	ErrNotConnected = errors.New("eiscp: not connected")
	ErrEmptyCommand = errors.New("eiscp: empty command")
	ErrSuperseded   = errors.New("eiscp: connect superseded")
)
