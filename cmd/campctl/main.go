// Package main provides campctl, the CampFinder operator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/campfinder/campfinder-server/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
