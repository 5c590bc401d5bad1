// File: doc.go
// Title: Error Package Documentation
// Description: Documents the structured error handling system used across
//              the ltlspec toolkit.

/*
Package error provides structured error handling for the ltlspec toolkit.

Errors carry a classification code, a severity, optional key-value details
and the wrapped cause, so that a caller can reconstruct a precise
human-readable message from a typed failure:

	err := lterror.New("value out of range").
		WithCode(lterror.CodeOutOfRange).
		WithDetail("variable", "x").
		WithDetail("value", 7)

	if lterror.HasCode(err, lterror.CodeOutOfRange) {
		// handle the range violation
	}

The package distinguishes user-input failures (lexical, syntax and
domain violations, which are low severity and expected in normal
operation) from structural failures (CodeStructure and CodeInternal,
programming errors that should never occur with well-formed input).
*/
package error
