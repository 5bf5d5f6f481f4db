package blinkcli

import (
	"encoding/json"

	"github.com/blinktimer/blinktimer/common"
)

func invoke[T any](c *Client, method common.UpdateType, message any) (*T, error) {
	resp, err := c.invoke(method, message)
	if err != nil {
		return nil, err
	}
	var d T
	if resp == nil {
		return &d, nil
	}
	return &d, json.Unmarshal(resp, &d)
}

// Status fetches the scheduler's status report. A daemon whose scheduler
// is blocked behind an overlay answers with an error after its bounded
// wait; callers should treat that as "nothing to show".
func (c *Client) Status() (*common.StatusResponse, error) {
	return invoke[common.StatusResponse](c, common.UPDATE_STATUS, nil)
}

// Reset restarts every timer one full period from now.
func (c *Client) Reset() error {
	_, err := c.invoke(common.UPDATE_RESET, nil)
	return err
}

// RefreshGeometry makes the daemon re-enumerate monitors and returns the
// freshly queried list.
func (c *Client) RefreshGeometry() (*common.GeometryResponse, error) {
	return invoke[common.GeometryResponse](c, common.UPDATE_GEOMETRY, nil)
}

// History lists recent overlay activations, newest first. limit <= 0 uses
// the daemon's default.
func (c *Client) History(limit int) (*common.HistoryResponse, error) {
	return invoke[common.HistoryResponse](c, common.UPDATE_HISTORY, &common.HistoryParams{Limit: limit})
}

// StopDaemon asks the daemon to shut down, force-closing any overlay
// currently on screen.
func (c *Client) StopDaemon() error {
	_, err := c.invoke(common.UPDATE_STOP_DAEMON, nil)
	return err
}

// Version fetches the daemon's build information.
func (c *Client) Version() (*common.VersionResponse, error) {
	return invoke[common.VersionResponse](c, common.UPDATE_VERSION, nil)
}
