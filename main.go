// main package for pycodemap command-line tool
// Package main is the entry point for the pycodemap CLI.
package main

import "pycodemap.dev/pkg/pycodemap/cmd"

func main() {
	cmd.Execute()
}
