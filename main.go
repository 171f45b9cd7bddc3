package main

import (
	"fmt"
	"os"

	"github.com/zuucrates/cargo-configure/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cargo-configure:", err)
		os.Exit(1)
	}
}
