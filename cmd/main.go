// Package cmd implements the blinktimer command-line interface: the
// daemon itself plus the client subcommands that control it over the unix
// socket.
package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

// BuildArgs carries build-time identification injected by the linker.
type BuildArgs struct {
	Version   string
	Commit    string
	Date      string
	BuildType string
}

var (
	version   string
	commit    string
	date      string
	buildType string
)

// Execute runs the CLI with the given arguments.
func Execute(args []string, b BuildArgs) error {
	version = b.Version
	commit = b.Commit
	date = b.Date
	buildType = b.BuildType
	if version == "" {
		version = "dev"
	}
	if buildType == "" {
		buildType = "unclassified"
	}
	app := cli.App{
		Name:                  "blinktimer",
		HelpName:              "blinktimer",
		Usage:                 "A break reminder that actually interrupts you.",
		Version:               fmt.Sprintf("%s-%s", version, buildType),
		UsageText:             "blinktimer <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          usageErrorCallback,
		Commands: []cli.Command{
			{
				Name:               "daemon",
				Usage:              "run the break scheduler in the foreground",
				Action:             runDaemon,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        DaemonDescription,
				Flags:              daemonFlags,
			},
			{
				Name:               "status",
				Aliases:            []string{"s"},
				Usage:              "show time remaining until each break",
				Action:             status,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        StatusDescription,
			},
			{
				Name:               "watch",
				Aliases:            []string{"w"},
				Usage:              "live progress bars counting down to each break",
				Action:             watch,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        WatchDescription,
			},
			{
				Name:               "reset",
				Usage:              "restart every timer one full period from now",
				Action:             reset,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        ResetDescription,
			},
			{
				Name:               "refresh",
				Usage:              "re-enumerate monitors for future overlays",
				Action:             refresh,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        RefreshDescription,
			},
			{
				Name:               "history",
				Aliases:            []string{"h"},
				Usage:              "list recent break activations",
				Action:             history,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        HistoryDescription,
				Flags:              historyFlags,
			},
			{
				Name:               "stop",
				Usage:              "stop the daemon, closing any visible overlay",
				Action:             stop,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        StopDescription,
			},
			{
				Name:   "config",
				Usage:  "print the configuration file location and contents",
				Action: configInfo,
			},
			{
				Name:   "help",
				Action: help,
			},
			{
				Name:   "version",
				Action: getVersion,
			},
		},
	}
	return app.Run(args)
}
