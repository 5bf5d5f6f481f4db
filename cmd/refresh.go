package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/blinktimer/blinktimer/pkg/blinkcli"
)

func refresh(ctx *cli.Context) error {
	client, err := blinkcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "refresh", "connect", err)
		return nil
	}
	defer client.Close()

	resp, err := client.RefreshGeometry()
	if err != nil {
		printRuntimeErr(ctx, "refresh", "request", err)
		return nil
	}
	if len(resp.Monitors) == 0 {
		fmt.Println("No monitors detected.")
		return nil
	}
	for _, m := range resp.Monitors {
		fmt.Printf("%dx%d+%d+%d\n", m.Width, m.Height, m.X, m.Y)
	}
	return nil
}
