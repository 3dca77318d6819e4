package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the project configuration file changeling looks
	// for in the working directory
	DefaultConfigFile = "changeling.yaml"

	// DefaultChangelogFile is the changelog script compiled when the
	// configuration names no entrypoint
	DefaultChangelogFile = "changelog.changelog"
)
