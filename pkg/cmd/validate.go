package cmd

import (
	"context"
	"fmt"

	"github.com/pseudomuto/changeling/pkg/config"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type validateParams struct {
	fx.In

	Config *config.Config
}

// validate creates the validate command for checking a changelog script
// without rendering its document.
//
// The command runs a full compile, so it catches everything compilation
// catches: syntax errors, unknown elements and attributes, missing includes,
// duplicate change sets, and unresolved parameters in path-like values. On
// success it prints a short summary of what was compiled.
//
// Example usage:
//
//	# Validate the configured entrypoint
//	changeling validate
//
//	# Validate a specific script with prod contexts
//	changeling validate --contexts prod db/changelog.changelog
func validate(p validateParams) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate a changelog script",
		ArgsUsage: "[changelog]",
		Before:    requireConfig(p.Config),
		Flags:     compileFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, err := compileDocument(p.Config, cmd)
			if err != nil {
				return err
			}

			changes := 0
			for _, cs := range doc.ChangeSets {
				changes += len(cs.Changes)
			}

			fmt.Fprintf(cmd.Writer, "✓ %s is valid: %d change sets, %d changes\n",
				doc.FilePath(), len(doc.ChangeSets), changes)

			return nil
		},
	}
}
