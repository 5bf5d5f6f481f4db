package api

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/blinktimer/blinktimer/common"
	"github.com/blinktimer/blinktimer/internal/server"
)

const defaultHistoryLimit = 20

var (
	// errNoResponse is returned when the scheduler did not answer a status
	// request within its bounded wait, typically because an overlay is
	// blocking the loop. Clients treat it as "no status right now".
	errNoResponse = errors.New("no response from scheduler (overlay may be active)")

	errNoHistory = errors.New("activation history is disabled")
)

func (s *Api) statusHandler(_ *server.SyncConn, _ json.RawMessage) (common.UpdateType, any, error) {
	resp, err := s.statusResponse()
	if err != nil {
		return common.UPDATE_STATUS, nil, err
	}
	return common.UPDATE_STATUS, resp, nil
}

func (s *Api) resetHandler(_ *server.SyncConn, _ json.RawMessage) (common.UpdateType, any, error) {
	s.engine.Reset()
	return common.UPDATE_RESET, "timers restarted", nil
}

func (s *Api) geometryHandler(_ *server.SyncConn, _ json.RawMessage) (common.UpdateType, any, error) {
	s.engine.RefreshGeometry()
	resp := &common.GeometryResponse{}
	if s.geo != nil {
		geos, err := s.geo.Current()
		if err != nil {
			return common.UPDATE_GEOMETRY, nil, err
		}
		for _, g := range geos {
			resp.Monitors = append(resp.Monitors, common.GeometryInfo{
				Width: g.Width, Height: g.Height, X: g.X, Y: g.Y,
			})
		}
	}
	return common.UPDATE_GEOMETRY, resp, nil
}

func (s *Api) historyHandler(_ *server.SyncConn, body json.RawMessage) (common.UpdateType, any, error) {
	var p common.HistoryParams
	if len(body) > 0 {
		if err := json.Unmarshal(body, &p); err != nil {
			return common.UPDATE_HISTORY, nil, err
		}
	}
	entries, err := s.historyEntries(context.Background(), p.Limit)
	if err != nil {
		return common.UPDATE_HISTORY, nil, err
	}
	return common.UPDATE_HISTORY, &common.HistoryResponse{Entries: entries}, nil
}

func (s *Api) stopHandler(_ *server.SyncConn, _ json.RawMessage) (common.UpdateType, any, error) {
	s.log.Println("stop requested over control socket")
	s.stop()
	return common.UPDATE_STOP_DAEMON, "daemon stopping", nil
}

func (s *Api) versionHandler(_ *server.SyncConn, _ json.RawMessage) (common.UpdateType, any, error) {
	return common.UPDATE_VERSION, &common.VersionResponse{
		Version:   s.build.Version,
		Commit:    s.build.Commit,
		BuildType: s.build.BuildType,
	}, nil
}
