package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tomltag/tomltag/internal/tagjson"
	"github.com/tomltag/tomltag/internal/tomlparse"
)

// Run drives one adapter invocation: read all of in, parse, encode,
// write all of out, and report the exit code. Input is fully buffered
// before parsing begins (TOML needs whole-document context) and nothing
// is written until encoding finished.
//
// On parse failure the diagnostic goes to out, not stderr: the harness
// captures stdout for both outcomes and classifies by exit status.
func Run(p tomlparse.Parser, in io.Reader, out io.Writer) int {
	input, err := io.ReadAll(in)
	if err != nil {
		slog.Error("reading document", "parser", p.Name(), "err", err)
		return ExitCommandError
	}

	root, err := p.Parse(input)
	if err != nil {
		fmt.Fprintf(out, "what(): %s\n", diagLine(err))
		return ExitFailure
	}

	doc, err := tagjson.Marshal(root)
	if err != nil {
		slog.Error("encoding document", "parser", p.Name(), "err", err)
		return ExitCommandError
	}

	if _, err := out.Write(append(doc, '\n')); err != nil {
		slog.Error("writing output", "parser", p.Name(), "err", err)
		return ExitCommandError
	}
	return ExitSuccess
}

// diagLine flattens a parser error to the single non-empty line the
// contract requires. The text itself is not normative.
func diagLine(err error) string {
	msg := strings.TrimSpace(strings.ReplaceAll(err.Error(), "\n", " "))
	if msg == "" {
		msg = "parse error"
	}
	return msg
}
