// Package parser provides a participle-based parser for closure-style
// changelog scripts.
//
// A changelog script is a tree of directives. Each directive has a name, an
// optional parenthesized argument list (named `key: value` pairs and/or bare
// positional values), and an optional braced block of nested directives:
//
//	databaseChangeLog {
//	    property(name: 'schema', value: 'public')
//
//	    changeSet(id: 'create-users', author: 'dave') {
//	        createTable(tableName: 'users') {
//	            column(name: 'id', type: 'bigint', autoIncrement: true) {
//	                constraints(primaryKey: true, nullable: false)
//	            }
//	        }
//	    }
//	}
//
// The parser produces an untyped syntax tree only; attribute whitelisting,
// variable expansion, and type coercion belong to the compiler package.
//
// Basic usage:
//
//	script, err := parser.ParseString(`
//	    databaseChangeLog {
//	        include(file: 'users.changelog', relativeToChangelogFile: true)
//	    }
//	`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, d := range script.Directives {
//	    fmt.Println(d.Name)
//	}
package parser
