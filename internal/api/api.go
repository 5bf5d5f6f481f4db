// Package api bridges the daemon's control transports to the scheduler
// engine. Each handler translates a wire request into engine message-queue
// calls (or history queries) and shapes the reply; no handler touches
// timer state directly.
package api

import (
	"context"
	"log"
	"time"

	"github.com/blinktimer/blinktimer/common"
	"github.com/blinktimer/blinktimer/internal/server"
	"github.com/blinktimer/blinktimer/pkg/blinklib"
)

// HistoryStore is the slice of the activation store the API needs.
type HistoryStore interface {
	Recent(ctx context.Context, limit int) ([]common.HistoryEntry, error)
}

// BuildInfo identifies the running daemon.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildType string
}

// Api holds the handler set for the daemon's control surface.
type Api struct {
	log      *log.Logger
	engine   *blinklib.Engine
	geo      blinklib.GeometrySource
	store    HistoryStore
	build    BuildInfo
	shutdown func()
}

// NewApi creates the handler set. store may be nil when history is
// disabled; shutdown is invoked after a stop_daemon request has been
// answered.
func NewApi(l *log.Logger, engine *blinklib.Engine, geo blinklib.GeometrySource, store HistoryStore, build BuildInfo, shutdown func()) *Api {
	return &Api{
		log:      l,
		engine:   engine,
		geo:      geo,
		store:    store,
		build:    build,
		shutdown: shutdown,
	}
}

// RegisterHandlers wires every socket method onto the server.
func (s *Api) RegisterHandlers(serv *server.Server) {
	serv.RegisterHandler(common.UPDATE_STATUS, s.statusHandler)
	serv.RegisterHandler(common.UPDATE_RESET, s.resetHandler)
	serv.RegisterHandler(common.UPDATE_GEOMETRY, s.geometryHandler)
	serv.RegisterHandler(common.UPDATE_HISTORY, s.historyHandler)
	serv.RegisterHandler(common.UPDATE_STOP_DAEMON, s.stopHandler)
	serv.RegisterHandler(common.UPDATE_VERSION, s.versionHandler)
}

// statusResponse asks the engine for a report, converting its snapshot to
// the wire shape. Shared by the socket and RPC paths.
func (s *Api) statusResponse() (*common.StatusResponse, error) {
	snap, ok := s.engine.RequestStatus()
	if !ok {
		return nil, errNoResponse
	}
	resp := &common.StatusResponse{
		Report: snap.Report,
		Timers: make([]common.TimerStatus, 0, len(snap.Timers)),
	}
	for _, t := range snap.Timers {
		resp.Timers = append(resp.Timers, common.TimerStatus{
			Title:      t.Title,
			RemainingS: int64(t.Remaining / time.Second),
			PeriodS:    int64(t.Period / time.Second),
			Line:       blinklib.FormatHMS(t.Remaining) + "\t" + t.Title + " (every " + blinklib.FormatHMS(t.Period) + ")",
		})
	}
	return resp, nil
}

// historyEntries fetches recent activations, applying the default limit.
func (s *Api) historyEntries(ctx context.Context, limit int) ([]common.HistoryEntry, error) {
	if s.store == nil {
		return nil, errNoHistory
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.store.Recent(ctx, limit)
}

// stop triggers daemon shutdown shortly after the reply has gone out, so
// the requesting client still gets its response.
func (s *Api) stop() {
	if s.shutdown == nil {
		return
	}
	go func() {
		time.Sleep(100 * time.Millisecond)
		s.shutdown()
	}()
}
