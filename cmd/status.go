package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/blinktimer/blinktimer/pkg/blinkcli"
)

func status(ctx *cli.Context) error {
	client, err := blinkcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "status", "connect", err)
		return nil
	}
	defer client.Close()

	resp, err := client.Status()
	if err != nil {
		printRuntimeErr(ctx, "status", "fetch", err)
		return nil
	}
	fmt.Println(resp.Report)
	return nil
}
