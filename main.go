package main

import (
	"os"

	"github.com/siyuan-infoblox/py-imports-check/pkg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
