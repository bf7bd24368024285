// Package main provides the entry point for questlog.
//
// Usage:
//
//	questlog [play] [--level name] [--difficulty n] [--config path]
//	questlog simulate --level name [--complete id@time ...]
//	questlog levels
package main

import (
	"os"

	"github.com/riordanpawley/questlog/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
