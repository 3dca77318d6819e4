package resource

import (
	"io"
	"io/fs"
	"os"
	gopath "path"
	"sort"

	"github.com/pkg/errors"
)

// ErrNotFound marks a resource that does not exist, as opposed to one that
// failed to open. Check with IsNotFound rather than comparing directly.
var ErrNotFound = errors.New("resource not found")

// IsNotFound reports whether err (or its cause) means the resource does not
// exist.
func IsNotFound(err error) bool {
	cause := errors.Cause(err)

	return cause == ErrNotFound || os.IsNotExist(cause) || cause == fs.ErrNotExist
}

type (
	// Accessor is the resource-access collaborator: it lists and opens
	// files by slash-separated path. Paths returned by List are resolved
	// (relative to the accessor root) and can be passed straight back to
	// Open with an empty basePath.
	Accessor interface {
		// List returns the files under path, resolved against basePath,
		// in lexical order by full path. Non-recursive listings return
		// only direct children.
		List(basePath, path string, recursive bool) ([]string, error)

		// Open opens the file at path resolved against basePath.
		Open(basePath, path string) (io.ReadCloser, error)
	}

	fsAccessor struct {
		fsys fs.FS
	}
)

// NewFSAccessor creates an Accessor over an fs.FS. With os.DirFS this serves
// a directory tree; embed.FS and fstest.MapFS work the same way.
//
// Example usage:
//
//	acc := resource.NewFSAccessor(os.DirFS("db"))
//	paths, err := acc.List("", "migrations", true)
func NewFSAccessor(fsys fs.FS) Accessor {
	return &fsAccessor{fsys: fsys}
}

func (a *fsAccessor) List(basePath, path string, recursive bool) ([]string, error) {
	root := Resolve(basePath, path)

	info, err := fs.Stat(a.fsys, root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "directory does not exist: %s", root)
		}

		return nil, errors.Wrapf(err, "failed to stat: %s", root)
	}

	if !info.IsDir() {
		return nil, errors.Errorf("not a directory: %s", root)
	}

	var paths []string
	if err := fs.WalkDir(a.fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if !recursive && p != root {
				return fs.SkipDir
			}

			return nil
		}

		paths = append(paths, p)

		return nil
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to walk: %s", root)
	}

	// WalkDir is already lexical per directory level; sorting by full path
	// makes the intermixing of subdirectory contents explicit.
	sort.Strings(paths)

	return paths, nil
}

func (a *fsAccessor) Open(basePath, path string) (io.ReadCloser, error) {
	resolved := Resolve(basePath, path)

	f, err := a.fsys.Open(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "file does not exist: %s", resolved)
		}

		return nil, errors.Wrapf(err, "failed to open: %s", resolved)
	}

	return f, nil
}

// Resolve joins a base directory and a path into a clean slash-separated
// path rooted at the accessor root. fs.FS has no notion of absolute paths;
// "." addresses the root itself. Accessor implementations and the compiler
// share this so both sides agree on what a resolved path looks like.
func Resolve(basePath, path string) string {
	path = gopath.Clean("/" + gopath.Join(basePath, path))[1:]
	if path == "" {
		return "."
	}

	return path
}
