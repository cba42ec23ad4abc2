// Command burntsushi-decoder is the conformance adapter for
// github.com/BurntSushi/toml.
package main

import (
	"log/slog"
	"os"

	"github.com/tomltag/tomltag/internal/cli"
	"github.com/tomltag/tomltag/internal/tomlparse"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cmd := cli.NewDecoderCommand("burntsushi-decoder", tomlparse.BurntSushi{})
	os.Exit(cli.Execute(cmd))
}
