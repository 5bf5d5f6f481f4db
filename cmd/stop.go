package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/blinktimer/blinktimer/pkg/blinkcli"
)

func stop(ctx *cli.Context) error {
	client, err := blinkcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "stop", "connect", err)
		return nil
	}
	defer client.Close()

	if err := client.StopDaemon(); err != nil {
		printRuntimeErr(ctx, "stop", "request", err)
		return nil
	}
	fmt.Println("Daemon stopping.")
	return nil
}
