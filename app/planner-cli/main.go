package main

import (
	"github.com/OpenTransitTools/ptoplanner/app/planner-cli/commands"
	"os"
	"time"
)

func main() {
	if err := commands.NewRootCommand(time.Now).Execute(); err != nil {
		os.Exit(1)
	}
}
