// Package cmd provides CLI commands for the changeling tool.
//
// This package implements the command-line interface for changeling,
// providing commands for compiling and validating changelog scripts.
//
// # Available Commands
//
// The cmd package currently provides:
//   - compile: Compile a changelog script into its migration document
//   - validate: Run a full compile and report a summary
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands receive their
// dependencies (the project configuration) through fx parameter structs and
// are registered into the application's command group in fx.go.
//
// # Global Options
//
// All commands support global flags:
//   - --dir, -d: Specify the project directory (defaults to current directory)
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	changeling compile                                  # Compile the configured entrypoint
//	changeling compile -o document.yaml                 # Compile to a file
//	changeling validate db/changelog.changelog          # Validate a specific script
//	changeling --dir /path/to/project validate          # Validate in another directory
//
// Commands read project defaults from changeling.yaml in the project
// directory; every default can be overridden per invocation with flags.
package cmd
