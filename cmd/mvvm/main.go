// Command mvvm checks binding manifests and runs the headless login demo.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/mvvm/cmd/mvvm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
