// Package main is the entry point for the bvi CLI.
package main

import "bvi.dev/pkg/bvi/cmd"

func main() {
	cmd.Execute()
}
