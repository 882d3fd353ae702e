package main

import (
	"os"

	"github.com/spf13/pflag"
)

func newTestFlagSet() *pflag.FlagSet {
	return pflag.NewFlagSet("test", pflag.ContinueOnError)
}

func writeRealFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
