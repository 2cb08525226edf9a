package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	spec := map[string]func() (string, *Packet, error){
		"EVENT": func() (string, *Packet, error) {
			frame := `42["chat message","hi"]`
			want := &Packet{Code: 42, Payload: []interface{}{"chat message", "hi"}}
			return frame, want, nil
		},
		"ACK reply": func() (string, *Packet, error) {
			frame := `42["ACK","abc123",{"ok":true}]`
			want := &Packet{Code: 42, Payload: []interface{}{"ACK", "abc123", map[string]interface{}{"ok": true}}}
			return frame, want, nil
		},
		"EVENT without args": func() (string, *Packet, error) {
			frame := `42["ping"]`
			want := &Packet{Code: 42, Payload: []interface{}{"ping"}}
			return frame, want, nil
		},
		"empty frame": func() (string, *Packet, error) {
			return "", nil, nil
		},
		"no separator": func() (string, *Packet, error) {
			return `42`, nil, ErrMalformedPacket
		},
		"bad code": func() (string, *Packet, error) {
			return `4x["chat message"]`, nil, ErrMalformedPacket
		},
		"missing code": func() (string, *Packet, error) {
			return `["chat message"]`, nil, ErrMalformedPacket
		},
		"bad json": func() (string, *Packet, error) {
			return `42["chat message",]`, nil, ErrMalformedPacket
		},
		"truncated json": func() (string, *Packet, error) {
			return `42["chat`, nil, ErrMalformedPacket
		},
		"unsupported code": func() (string, *Packet, error) {
			return `99[1,2]`, nil, ErrUnsupportedPacketCode
		},
		"ping code": func() (string, *Packet, error) {
			return `2["probe"]`, nil, ErrUnsupportedPacketCode
		},
	}

	for name, fn := range spec {
		frame, want, xerr := fn()
		t.Run(name, func(t *testing.T) {
			have, err := Decode(frame)

			if xerr != nil {
				assert.ErrorIs(t, err, xerr)
				assert.Nil(t, have)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, want, have)
		})
	}
}

func TestDecodeIsPure(t *testing.T) {
	frame := `42["chat message","hi"]`

	a, err := Decode(frame)
	assert.NoError(t, err)
	b, err := Decode(frame)
	assert.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotSame(t, a, b)
}
