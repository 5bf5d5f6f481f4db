package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/blinktimer/blinktimer/pkg/blinkcli"
	"github.com/blinktimer/blinktimer/pkg/blinklib"
)

// watchBar pairs a progress bar with the remaining-seconds cell its
// decorator reads.
type watchBar struct {
	bar       *mpb.Bar
	remaining *atomic.Int64
}

func watch(ctx *cli.Context) error {
	client, err := blinkcli.NewClient()
	if err != nil {
		printRuntimeErr(ctx, "watch", "connect", err)
		return nil
	}
	defer client.Close()

	sigCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	p := mpb.New(mpb.WithWidth(64), mpb.WithRefreshRate(time.Millisecond*250))
	bars := make(map[string]*watchBar)
	barStyle := mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟")

	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	for {
		resp, err := client.Status()
		if err != nil {
			// The scheduler goes quiet while an overlay is up; keep the
			// bars where they are and retry on the next tick.
			if sigCtx.Err() != nil {
				break
			}
		} else {
			for _, t := range resp.Timers {
				wb, ok := bars[t.Title]
				if !ok {
					cell := new(atomic.Int64)
					name := t.Title
					wb = &watchBar{
						bar: p.New(t.PeriodS,
							barStyle,
							mpb.PrependDecorators(
								decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
							),
							mpb.AppendDecorators(
								decor.Any(func(decor.Statistics) string {
									return blinklib.FormatHMS(time.Duration(cell.Load()) * time.Second)
								}, decor.WC{W: 9}),
							),
						),
						remaining: cell,
					}
					bars[t.Title] = wb
				}
				wb.remaining.Store(t.RemainingS)
				elapsed := t.PeriodS - t.RemainingS
				if elapsed < 0 {
					elapsed = 0
				}
				if elapsed > t.PeriodS {
					elapsed = t.PeriodS
				}
				wb.bar.SetTotal(t.PeriodS, false)
				wb.bar.SetCurrent(elapsed)
			}
		}
		select {
		case <-sigCtx.Done():
			for _, wb := range bars {
				wb.bar.Abort(true)
			}
			p.Wait()
			return nil
		case <-tick.C:
		}
	}
	return nil
}
