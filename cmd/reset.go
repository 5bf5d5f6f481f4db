package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/blinktimer/blinktimer/pkg/blinkcli"
)

func reset(ctx *cli.Context) error {
	client, err := blinkcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "reset", "connect", err)
		return nil
	}
	defer client.Close()

	if err := client.Reset(); err != nil {
		printRuntimeErr(ctx, "reset", "request", err)
		return nil
	}
	fmt.Println("Timers restarted.")
	return nil
}
