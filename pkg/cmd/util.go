package cmd

import (
	"os"
	gopath "path"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pseudomuto/changeling/pkg/changelog"
	"github.com/pseudomuto/changeling/pkg/compiler"
	"github.com/pseudomuto/changeling/pkg/config"
	"github.com/pseudomuto/changeling/pkg/consts"
	"github.com/pseudomuto/changeling/pkg/resource"
	"github.com/urfave/cli/v3"
)

// compileDocument compiles the changelog named by the command's argument, or
// by the project configuration when no argument is given. Flag-supplied
// filters and parameters override their configuration counterparts.
func compileDocument(cfg *config.Config, cmd *cli.Command) (*changelog.ChangeLog, error) {
	path := cmd.Args().First()
	if path == "" {
		path = consts.DefaultChangelogFile
		if cfg != nil {
			path = cfg.Changelog
		}
	}
	path = gopath.Clean(filepath.ToSlash(path))

	params := map[string]any{}
	database := ""
	var contexts, labels []string

	if cfg != nil {
		database = cfg.Database
		contexts = cfg.Contexts
		labels = cfg.Labels
		for name, value := range cfg.Parameters {
			params[name] = value
		}
	}

	if cmd.IsSet("database") {
		database = cmd.String("database")
	}
	if cmd.IsSet("contexts") {
		contexts = cmd.StringSlice("contexts")
	}
	if cmd.IsSet("labels") {
		labels = cmd.StringSlice("labels")
	}
	for name, value := range cmd.StringMap("param") {
		params[name] = value
	}

	c := compiler.New(resource.NewFSAccessor(os.DirFS(".")),
		compiler.WithDatabase(database),
		compiler.WithContexts(contexts...),
		compiler.WithLabels(labels...),
		compiler.WithParameters(params),
	)

	if !c.Supports(path) {
		return nil, errors.Errorf("not a changelog script: %s", path)
	}

	return c.Parse(path)
}

// compileFlags are the flags shared by every command that runs a compile.
func compileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "database",
			Aliases: []string{"D"},
			Usage:   "Target database type, e.g. postgresql",
		},
		&cli.StringSliceFlag{
			Name:    "contexts",
			Aliases: []string{"c"},
			Usage:   "Runtime contexts to compile against",
		},
		&cli.StringSliceFlag{
			Name:    "labels",
			Aliases: []string{"l"},
			Usage:   "Runtime labels to compile against",
		},
		&cli.StringMapFlag{
			Name:    "param",
			Aliases: []string{"p"},
			Usage:   "Set a changelog parameter (name=value, repeatable)",
		},
	}
}
