package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli"

	"github.com/blinktimer/blinktimer/pkg/blinkcli"
)

func history(ctx *cli.Context) error {
	client, err := blinkcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "history", "connect", err)
		return nil
	}
	defer client.Close()

	resp, err := client.History(ctx.Int("limit"))
	if err != nil {
		printRuntimeErr(ctx, "history", "fetch", err)
		return nil
	}
	if len(resp.Entries) == 0 {
		fmt.Println("No recorded activations.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tTIMER\tDURATION\tOUTCOME")
	for _, e := range resp.Entries {
		outcome := "completed"
		switch {
		case e.Skipped:
			outcome = "skipped (quiet)"
		case e.Dismissed:
			outcome = "dismissed"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.StartedAt.Local().Format("2006-01-02 15:04:05"),
			e.Title,
			e.EndedAt.Sub(e.StartedAt).Round(time.Second).String(),
			outcome,
		)
	}
	return w.Flush()
}
