package api

import (
	"context"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"

	"github.com/blinktimer/blinktimer/common"
)

// JSON-RPC error codes for the HTTP control surface.
const (
	codeNoResponse   = jrpc2.Code(-32001)
	codeInvalidParam = jrpc2.Code(-32602)
)

// RPCMethods returns the JSON-RPC method map served at /rpc and over
// websocket sessions. The methods mirror the socket handlers one for one.
func (s *Api) RPCMethods() handler.Map {
	return handler.Map{
		"system.getVersion":     handler.New(s.rpcVersion),
		"timer.status":          handler.New(s.rpcStatus),
		"timer.reset":           handler.New(s.rpcReset),
		"timer.refreshGeometry": handler.New(s.rpcRefreshGeometry),
		"timer.history":         handler.New(s.rpcHistory),
	}
}

// EmptyResult is the reply of fire-and-forget methods.
type EmptyResult struct{}

func (s *Api) rpcVersion(_ context.Context) (*common.VersionResponse, error) {
	return &common.VersionResponse{
		Version:   s.build.Version,
		Commit:    s.build.Commit,
		BuildType: s.build.BuildType,
	}, nil
}

func (s *Api) rpcStatus(_ context.Context) (*common.StatusResponse, error) {
	resp, err := s.statusResponse()
	if err != nil {
		return nil, &jrpc2.Error{Code: codeNoResponse, Message: err.Error()}
	}
	return resp, nil
}

func (s *Api) rpcReset(_ context.Context) (*EmptyResult, error) {
	s.engine.Reset()
	return &EmptyResult{}, nil
}

func (s *Api) rpcRefreshGeometry(_ context.Context) (*EmptyResult, error) {
	s.engine.RefreshGeometry()
	return &EmptyResult{}, nil
}

func (s *Api) rpcHistory(ctx context.Context, p *common.HistoryParams) (*common.HistoryResponse, error) {
	if p.Limit < 0 {
		return nil, &jrpc2.Error{Code: codeInvalidParam, Message: "limit must not be negative"}
	}
	entries, err := s.historyEntries(ctx, p.Limit)
	if err != nil {
		return nil, err
	}
	return &common.HistoryResponse{Entries: entries}, nil
}
