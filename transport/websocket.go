package transport

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	ws "nhooyr.io/websocket"

	siop "github.com/mdevan/socketio-client/protocol"
)

// Websocket is a Transporter over a single websocket connection.
//
// It owns the outbound wire text:
//
//	<code>[/<namespace>,]<json array>
//
// for example 42/admin,["project:delete",123] — the code prefix of an
// inbound frame is left to the protocol package to interpret.
type Websocket struct {
	URL string

	mu   sync.Mutex
	nsp  Namespace
	conn *ws.Conn
	ctx  context.Context
}

func NewWebsocket(url string) *Websocket { return &Websocket{URL: url} }

func (t *Websocket) Connect(ctx context.Context) error {
	conn, _, err := ws.Dial(ctx, t.URL, nil)
	if err != nil {
		return ErrDialFailed.F(err)
	}

	t.mu.Lock()
	t.conn, t.ctx = conn, ctx
	t.mu.Unlock()

	return nil
}

// Read blocks until one text frame arrives. Binary frames are not
// part of this protocol and surface whatever text they carry as-is.
func (t *Websocket) Read() (string, error) {
	t.mu.Lock()
	conn, ctx := t.conn, t.ctx
	t.mu.Unlock()

	if conn == nil {
		return "", ErrNotConnected
	}

	_, p, err := conn.Read(ctx)
	if err != nil {
		return "", err
	}
	return string(p), nil
}

func (t *Websocket) Emit(event string, args []Data, _ bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return ErrNotConnected
	}

	frame, err := encodeEventFrame(t.nsp, event, args)
	if err != nil {
		return err
	}

	return t.conn.Write(t.ctx, ws.MessageText, []byte(frame))
}

func (t *Websocket) Of(ns Namespace) {
	t.mu.Lock()
	t.nsp = ns
	t.mu.Unlock()
}

func (t *Websocket) Close() error {
	t.mu.Lock()
	conn := t.conn
	t.conn = nil
	t.mu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close(ws.StatusNormalClosure, "")
}

func encodeEventFrame(nsp Namespace, event string, args []Data) (string, error) {
	payload, err := json.Marshal(append([]Data{event}, args...))
	if err != nil {
		return "", ErrBadMarshal.F(err)
	}

	frame := strconv.Itoa(siop.EventCode)
	if nsp != "" && nsp != "/" {
		frame += nsp + ","
	}

	return frame + string(payload), nil
}
