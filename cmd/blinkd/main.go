// Command blinkd runs the break scheduler daemon with default settings,
// for init systems that want a dedicated binary instead of
// "blinktimer daemon".
package main

import (
	"fmt"
	"os"

	"github.com/blinktimer/blinktimer/cmd"
)

var (
	version   string
	commit    string
	date      string
	buildType string = "unclassified"
)

func main() {
	err := cmd.Execute([]string{os.Args[0], "daemon"}, cmd.BuildArgs{
		Version:   version,
		Commit:    commit,
		Date:      date,
		BuildType: buildType,
	})
	if err != nil {
		fmt.Println("blinkd:", err.Error())
		os.Exit(1)
	}
}
