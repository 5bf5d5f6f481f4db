package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/blinktimer/blinktimer/pkg/blinklib"
)

func configInfo(ctx *cli.Context) error {
	path, err := blinklib.ConfigPath()
	if err != nil {
		printRuntimeErr(ctx, "config", "resolve", err)
		return nil
	}
	fmt.Println(path)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("(not present; built-in defaults are in effect)")
			return nil
		}
		printRuntimeErr(ctx, "config", "read", err)
		return nil
	}
	fmt.Println()
	os.Stdout.Write(raw)
	return nil
}
