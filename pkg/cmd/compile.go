package cmd

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/changeling/pkg/config"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

type compileParams struct {
	fx.In

	Config *config.Config
}

// compile creates the compile command for turning a changelog script into
// its normalized migration document.
//
// The command compiles the script named by its argument (or the project
// configuration's entrypoint), resolving every include, expanding every
// parameter, and building typed change records, then renders the resulting
// document as YAML.
//
// Command flags:
//   - --database, -D: Target database type for parameter filtering
//   - --contexts, -c: Runtime contexts to compile against
//   - --labels, -l: Runtime labels to compile against
//   - --param, -p: Host-supplied parameters (name=value)
//   - --output, -o: Write the document to a file instead of stdout
//
// Example usage:
//
//	# Compile the configured entrypoint to stdout
//	changeling compile
//
//	# Compile a specific script for postgresql in the prod context
//	changeling compile --database postgresql --contexts prod db/changelog.changelog
//
//	# Write the compiled document to a file
//	changeling compile -o document.yaml
func compile(p compileParams) *cli.Command {
	return &cli.Command{
		Name:      "compile",
		Usage:     "Compile a changelog script into a migration document",
		ArgsUsage: "[changelog]",
		Before:    requireConfig(p.Config),
		Flags: append(compileFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the compiled document to this file instead of stdout",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, err := compileDocument(p.Config, cmd)
			if err != nil {
				return err
			}

			out := io.Writer(cmd.Writer)
			if path := cmd.String("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return errors.Wrapf(err, "failed to create: %s", path)
				}
				defer func() { _ = f.Close() }()

				out = f
			}

			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			defer func() { _ = enc.Close() }()

			return errors.Wrap(enc.Encode(doc), "failed to render document")
		},
	}
}
