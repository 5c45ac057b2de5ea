// Package main is the entry point for the mutant CLI.
package main

import "mutant.dev/pkg/mutant/cmd"

func main() {
	cmd.Execute()
}
