package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jimdowning-cyclops/vergate/cmd/vergate/commands"
)

func main() {
	cmd := commands.NewRootCmd()

	if err := cmd.Execute(); err != nil {
		var ec interface{ Code() int }
		if errors.As(err, &ec) {
			os.Exit(ec.Code())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
