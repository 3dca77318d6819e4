// Package changelog defines the normalized migration document produced by the
// compiler.
//
// A ChangeLog is the root of one compiled script: an ordered sequence of
// change sets, a precondition tree, and a named parameter table used for
// ${name} placeholder expansion. Change sets carry their applicability
// filters (context expression, label expression, target database list) and
// run-policy flags, plus the ordered migration steps themselves (see the
// change package).
//
// The document is built once per compile and handed to an external execution
// engine; nothing in this package executes anything.
package changelog
