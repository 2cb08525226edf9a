package transport

import (
	errs "github.com/mdevan/socketio-client/internal/errors"
)

const (
	ErrDialFailed   errs.StringF = "websocket dial:: %w"
	ErrBadMarshal   errs.StringF = "event marshal:: %w"
	ErrNotConnected errs.String  = "transport not connected"
)
