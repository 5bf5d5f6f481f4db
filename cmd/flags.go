package cmd

import "github.com/urfave/cli"

var daemonFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "load timers from `FILE` instead of the default location",
	},
	cli.StringFlag{
		Name:  "overlay-cmd",
		Usage: "helper `COMMAND` spawned per monitor during a break",
	},
	cli.IntFlag{
		Name:  "web-port, p",
		Usage: "serve the JSON-RPC bridge on 127.0.0.1:`PORT` (0 disables)",
	},
	cli.StringFlag{
		Name:   "rpc-secret",
		Usage:  "bearer `TOKEN` required by the JSON-RPC bridge",
		EnvVar: "BLINKD_RPC_SECRET",
	},
	cli.StringFlag{
		Name:  "history-db",
		Usage: "record activations in the sqlite database at `FILE`",
	},
	cli.BoolFlag{
		Name:  "no-history",
		Usage: "do not record activations",
	},
}

var historyFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "limit, l",
		Usage: "show at most `N` entries",
		Value: 20,
	},
}
