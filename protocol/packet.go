package protocol

import (
	"encoding/json"
	"strconv"
	"strings"
)

// EventCode is the one packet type code carrying application payload
// at this layer: the engine "message" type combined with the
// socket.io "event" type.
const EventCode = 42

// Packet is one decoded frame: the numeric code prefix and the JSON
// array that follows it.
type Packet struct {
	Code    int
	Payload []interface{}
}

// Decode parses a raw text frame of the form <code>[<json array>].
//
// An empty frame decodes to no packet at all, (nil, nil): the caller
// treats it as a no-op, not an error.
func Decode(frame string) (*Packet, error) {
	if frame == "" {
		return nil, nil
	}

	sep := strings.IndexByte(frame, '[')
	if sep < 0 {
		return nil, ErrMalformedPacket.F("no payload separator in " + strconv.Quote(frame))
	}

	code, err := strconv.Atoi(frame[:sep])
	if err != nil {
		return nil, ErrMalformedPacket.F("bad packet code " + strconv.Quote(frame[:sep]))
	}

	if code != EventCode {
		return nil, ErrUnsupportedPacketCode.F(code)
	}

	var payload []interface{}
	if err := json.Unmarshal([]byte(frame[sep:]), &payload); err != nil {
		return nil, ErrMalformedPacket.F(err)
	}

	return &Packet{Code: code, Payload: payload}, nil
}
