package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/keez/cmd"
)

func main() {
	cmd.RootCmd.SilenceErrors = true
	if err := cmd.RootCmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrReported) {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
