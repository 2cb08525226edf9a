package protocol

import (
	errs "github.com/mdevan/socketio-client/internal/errors"
)

const (
	// ErrMalformedPacket covers every frame this codec cannot make
	// sense of: a missing payload separator, a non-numeric code,
	// invalid payload JSON, or a payload array with nothing in it.
	ErrMalformedPacket errs.StringF = "malformed packet: %v"

	// ErrUnsupportedPacketCode marks a frame whose numeric code is
	// valid but not handled at this layer.
	ErrUnsupportedPacketCode errs.StringF = "unsupported packet code %d"
)
