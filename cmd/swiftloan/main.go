package main

import (
	"os"

	"github.com/swiftloan/swiftloan-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
