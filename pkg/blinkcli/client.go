// Package blinkcli is the client library for the blinktimer daemon's
// control socket. Every CLI subcommand that talks to the daemon goes
// through a Client.
package blinkcli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/blinktimer/blinktimer/common"
)

// Client is a connection to the daemon's control socket. Methods are
// synchronous request/response calls; a Client is safe for concurrent use.
type Client struct {
	mu   sync.Mutex
	conn net.Conn
}

// NewClient dials the daemon's unix socket. It fails immediately when the
// daemon is not running.
func NewClient() (*Client, error) {
	conn, err := net.Dial("unix", SocketPath())
	if err != nil {
		return nil, fmt.Errorf("connecting to daemon: %w", err)
	}
	return &Client{conn: conn}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) invoke(method common.UpdateType, message any) (json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	buf, err := json.Marshal(&Request{
		Method:  method,
		Message: message,
	})
	if err != nil {
		return nil, fmt.Errorf("invoking %s: %w", method, err)
	}
	if err := write(c.conn, buf); err != nil {
		return nil, fmt.Errorf("invoking %s: %w", method, err)
	}
	buf, err = read(c.conn)
	if err != nil {
		return nil, fmt.Errorf("invoking %s: %w", method, err)
	}
	var res Response
	if err := json.Unmarshal(buf, &res); err != nil {
		return nil, fmt.Errorf("reading %s response: %w", method, err)
	}
	if !res.Ok {
		return nil, errors.New(res.Error)
	}
	if res.Update == nil {
		return nil, nil
	}
	return res.Update.Message, nil
}
