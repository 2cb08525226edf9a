package sioclient

import (
	errs "github.com/mdevan/socketio-client/internal/errors"
)

const (
	// ErrConnectionFailed wraps the transport error when the
	// underlying connection could not be established. The client does
	// not retry; that call is the application's to make.
	ErrConnectionFailed errs.StringF = "connection failed:: %w"
)
