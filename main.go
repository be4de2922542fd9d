// Package main is the entry point for the umlauter CLI.
package main

import "umlauter.dev/pkg/umlauter/cmd"

func main() {
	cmd.Execute()
}
