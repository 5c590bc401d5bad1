// File: doc.go
// Title: Transform Package Documentation
// Description: Package overview for the formula rewrite passes.

/*
Package transform implements the rewrite and analysis passes that run
on the graph view of a formula before it is handed to a backend.

Mutating passes rewrite the tree in place:

  - SubstituteValues relabels variables to literal terminals.
  - SubstituteStringConstants lowers string constants to the integer
    encoding defined by their variable's enumeration domain.
  - SubstituteSubtrees splices replacement formulas over variables.

Analysis passes leave the tree untouched:

  - CheckDomains validates every variable and constant against the
    declared domains.
  - PairWithVariable locates the variable governed by the same
    comparison as a given constant.

Text-level utilities combine parsing with a rewrite: InferConstants
quotes free names so they read as string constants, CheckNameConflicts
and CheckVarNameConflict guard against names colliding with variables
or enumeration values.

All passes are synchronous and fail fast: the first violation aborts
with a typed error carrying the offending name, value or bound. A Tree
is owned by one pass at a time; clone before rewriting concurrently.
*/
package transform
