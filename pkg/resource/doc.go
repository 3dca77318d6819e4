// Package resource defines the narrow list/open contract the compiler uses
// to reach files, an fs.FS-backed implementation of it, and the registry
// through which includeAll's custom filters and comparators are resolved by
// name.
//
// The compiler never touches the filesystem directly; everything goes
// through an Accessor so hosts can serve scripts from disk, archives, or
// embedded filesystems. "Not found" is distinguishable from every other
// failure via IsNotFound, and filter/comparator resolution failures are a
// separate SetupError class so a bad extension name can never masquerade as
// a missing file.
package resource
