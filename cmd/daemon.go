package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/blinktimer/blinktimer/internal/api"
	"github.com/blinktimer/blinktimer/internal/daemon"
	"github.com/blinktimer/blinktimer/internal/display"
	historypkg "github.com/blinktimer/blinktimer/internal/history"
	"github.com/blinktimer/blinktimer/internal/server"
	"github.com/blinktimer/blinktimer/pkg/blinklib"
	"github.com/blinktimer/blinktimer/pkg/logger"
)

func runDaemon(ctx *cli.Context) error {
	if ctx.Args().First() != "" {
		return printErrWithCmdHelp(ctx, fmt.Errorf("daemon takes no arguments"))
	}

	l := log.New(os.Stderr, "blinkd: ", log.LstdFlags)
	blog := logger.NewStandardLogger(l)

	cfgPath := ctx.String("config")
	if cfgPath == "" {
		p, err := blinklib.ConfigPath()
		if err != nil {
			printRuntimeErr(ctx, "daemon", "config", err)
			return nil
		}
		cfgPath = p
	}
	cfg := blinklib.LoadConfig(afero.NewOsFs(), cfgPath, blog)

	quiet, err := blinklib.NewQuietSchedule(cfg.Quiet)
	if err != nil {
		printRuntimeErr(ctx, "daemon", "quiet", err)
		return nil
	}

	var store *historypkg.Store
	if !ctx.Bool("no-history") {
		dbPath := ctx.String("history-db")
		if dbPath == "" {
			dbPath = filepath.Join(filepath.Dir(cfgPath), "history.db")
		}
		store, err = historypkg.Open(context.Background(), dbPath)
		if err != nil {
			printRuntimeErr(ctx, "daemon", "history", err)
			return nil
		}
		defer store.Close()
	}

	notifier := server.NewNotifier(l)
	session := &display.OverlaySession{
		Command: ctx.String("overlay-cmd"),
		Log:     blog,
	}
	geo := &display.XrandrSource{}

	engineCfg := blinklib.EngineConfig{
		Definitions: cfg.Timers,
		Session:     session,
		Geometry:    geo,
		Quiet:       quiet,
		Notifier:    notifier,
		Log:         blog,
	}
	if store != nil {
		engineCfg.Recorder = store
	}
	engine := blinklib.NewEngine(engineCfg)

	// The stop handler reaches back into the runner, which does not exist
	// until the control server is built, so close over the variable.
	var runner *daemon.Runner
	a := api.NewApi(l, engine, geo, historyStore(store), api.BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildType: buildType,
	}, func() {
		if err := runner.Shutdown(); err != nil {
			l.Printf("shutdown: %s", err)
		}
	})

	var web *server.WebServer
	if port := ctx.Int("web-port"); port > 0 {
		web = server.NewWebServer(l, a.RPCMethods(), notifier, ctx.String("rpc-secret"), port)
	}
	serv := server.NewServer(l, web)
	a.RegisterHandlers(serv)
	runner = daemon.New(daemon.Config{ShutdownTimeout: 10 * time.Second}, engine, serv)

	sigCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	l.Printf("starting with %d timer(s), socket %s", len(cfg.Timers), server.SocketPath())
	if err := runner.Start(sigCtx); err != nil {
		printRuntimeErr(ctx, "daemon", "run", err)
	}
	return nil
}

// historyStore hides a typed-nil *historypkg.Store behind a nil interface so
// the API's store == nil check works.
func historyStore(s *historypkg.Store) api.HistoryStore {
	if s == nil {
		return nil
	}
	return s
}
