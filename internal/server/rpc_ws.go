package server

import (
	"context"
	"net/http"

	cws "github.com/coder/websocket"
	"github.com/creachadair/jrpc2"
)

// wsChannel adapts a coder/websocket.Conn to the jrpc2 channel interface.
// Each websocket connection gets one wsChannel bridging read/write between
// the websocket transport and a per-connection jrpc2 server.
type wsChannel struct {
	conn *cws.Conn
	ctx  context.Context
}

// Send writes a JSON-RPC message to the websocket connection.
func (c *wsChannel) Send(data []byte) error {
	return c.conn.Write(c.ctx, cws.MessageText, data)
}

// Recv reads a JSON-RPC message from the websocket connection.
func (c *wsChannel) Recv() ([]byte, error) {
	_, data, err := c.conn.Read(c.ctx)
	return data, err
}

// Close shuts down the websocket connection with a normal closure status.
func (c *wsChannel) Close() error {
	return c.conn.Close(cws.StatusNormalClosure, "")
}

// handleEvents upgrades the request to a websocket and serves JSON-RPC
// over it. The connection's server is registered with the notifier so it
// receives activation push notifications until it disconnects.
func (s *WebServer) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := cws.Accept(w, r, nil)
	if err != nil {
		s.l.Printf("websocket accept: %v", err)
		return
	}

	ch := &wsChannel{conn: conn, ctx: r.Context()}
	srv := jrpc2.NewServer(s.methods, &jrpc2.ServerOptions{AllowPush: true})
	srv.Start(ch)

	if s.notifier != nil {
		s.notifier.Register(srv)
		defer s.notifier.Unregister(srv)
	}

	if err := srv.Wait(); err != nil {
		s.l.Printf("websocket session ended: %v", err)
	}
}
