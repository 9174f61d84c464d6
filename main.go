// Package main is the entry point for the torment CLI.
package main

import "torment.dev/pkg/torment/cmd"

func main() {
	cmd.Execute()
}
