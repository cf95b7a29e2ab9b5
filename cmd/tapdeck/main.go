package main

import (
	"github.com/tapdeck/tapdeck/internal/cli"
)

// Set via -ldflags at build time.
var (
	version   string
	buildDate string
)

func main() {
	cli.Execute(version, buildDate)
}
