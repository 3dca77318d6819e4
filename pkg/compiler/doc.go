// Package compiler turns closure-style changelog scripts into normalized
// changelog documents.
//
// The compiler is single-threaded and depth-first recursive: include and
// includeAll directives re-enter compilation for each resolved file and block
// until the nested fragment is fully merged. All file access goes through a
// resource.Accessor, custom includeAll filters and comparators resolve
// through a resource.Registry, and every attribute a script supplies is
// checked against the owning element's whitelist before any document
// mutation for that element.
//
// Basic usage:
//
//	c := compiler.New(
//	    resource.NewFSAccessor(os.DirFS("db")),
//	    compiler.WithDatabase("postgresql"),
//	    compiler.WithContexts("prod"),
//	)
//
//	doc, err := c.Parse("changelog.changelog")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, cs := range doc.ChangeSets {
//	    fmt.Println(cs.Identity())
//	}
package compiler
