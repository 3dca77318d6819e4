package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/changeling/pkg/consts"
	"gopkg.in/yaml.v3"
)

// Config represents the project configuration for changelog compilation.
//
// It binds a compile to its entrypoint script and to the runtime context,
// label, and database filters, and seeds host-supplied parameters into the
// parameter table before any property directive runs.
type Config struct {
	// Changelog is the entrypoint script, relative to the project directory.
	// Defaults to changelog.changelog.
	Changelog string `yaml:"changelog"`

	// Database is the target database type, e.g. "postgresql". Parameters
	// with non-matching dbms filters are filtered out of expansion.
	Database string `yaml:"database,omitempty"`

	// Contexts are the runtime contexts the compile is bound to.
	Contexts []string `yaml:"contexts,omitempty"`

	// Labels are the runtime labels the compile is bound to.
	Labels []string `yaml:"labels,omitempty"`

	// Parameters are host-supplied values for ${name} expansion. They are
	// written before any property directive runs.
	Parameters map[string]any `yaml:"parameters,omitempty"`
}

// LoadConfig parses a project configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data naming the
// changelog entrypoint plus any compile-time filters and parameters. A
// missing changelog entry falls back to DefaultChangelogFile.
//
// Example:
//
//	yamlData := `
//	changelog: db/changelog.changelog
//	database: postgresql
//	contexts: [prod]
//	parameters:
//	  schema: app
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Entrypoint: %s\n", cfg.Changelog)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal changeling config")
	}

	if cfg.Changelog == "" {
		cfg.Changelog = consts.DefaultChangelogFile
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("changeling.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}
