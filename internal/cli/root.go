package cli

import (
	"github.com/spf13/cobra"

	"github.com/tomltag/tomltag/internal/tomlparse"
)

// NewDecoderCommand builds the root command for one adapter binary.
// The contract is flag-free: the document arrives on stdin and the
// tagged JSON or diagnostic leaves on stdout.
func NewDecoderCommand(name string, p tomlparse.Parser) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: "Decode a TOML document on stdin to tagged JSON on stdout",
		Long: `Read a complete TOML document from stdin and write it to stdout as the
tagged JSON a conformance harness consumes (every scalar wrapped in a
{"type":...,"value":...} object).

Exit status 0 means the document parsed and was encoded. A parse
failure writes a single "what(): ..." line to stdout and exits 1.

Table member order in the output follows the source document where the
wrapped parser exposes it; otherwise members are ordered
lexicographically. Harnesses compare the JSON structurally, so either
order satisfies the contract.

TOML parsing is done by ` + p.Name() + `.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if code := Run(p, cmd.InOrStdin(), cmd.OutOrStdout()); code != ExitSuccess {
				return NewExitError(code, "decode failed")
			}
			return nil
		},
	}
}

// Execute runs cmd and maps its outcome to a process exit code.
func Execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return GetExitCode(err)
	}
	return ExitSuccess
}
