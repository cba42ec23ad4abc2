// Command gotoml-decoder is the conformance adapter for
// github.com/pelletier/go-toml/v2.
package main

import (
	"log/slog"
	"os"

	"github.com/tomltag/tomltag/internal/cli"
	"github.com/tomltag/tomltag/internal/tomlparse"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cmd := cli.NewDecoderCommand("gotoml-decoder", tomlparse.GoTOML{})
	os.Exit(cli.Execute(cmd))
}
