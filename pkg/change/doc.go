// Package change defines the structural directive records a change set is
// made of: one typed record per migration step (createTable, addColumn,
// sql, ...), the column/constraint/where-parameter sub-records they carry,
// and the registry the compiler uses to construct them by directive name.
//
// The records are deliberately inert. The compiler populates them through
// attribute binding and the execution engine interprets them; nothing in this
// package generates or runs SQL.
package change
