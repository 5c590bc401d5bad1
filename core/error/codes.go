// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the ltlspec toolkit. These codes
//              enable structured error handling and make failures
//              inspectable by callers without string matching.

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the ltlspec toolkit
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Lexing and parsing
	CodeLexical Code = "LEXICAL"
	CodeSyntax  Code = "SYNTAX"

	// Domain and type checking
	CodeUndefinedVariable Code = "UNDEFINED_VARIABLE"
	CodeDomainMismatch    Code = "DOMAIN_MISMATCH"
	CodeOutOfRange        Code = "OUT_OF_RANGE"
	CodeOutOfDomain       Code = "OUT_OF_DOMAIN"
	CodeNameConflict      Code = "NAME_CONFLICT"

	// Tree structure invariants
	CodeStructure Code = "STRUCTURE"

	// Configuration
	CodeConfig Code = "CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeLexical, CodeSyntax,
		CodeUndefinedVariable, CodeDomainMismatch, CodeOutOfRange,
		CodeOutOfDomain, CodeNameConflict,
		CodeStructure, CodeConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax:
		return "parsing"
	case CodeUndefinedVariable, CodeDomainMismatch, CodeOutOfRange,
		CodeOutOfDomain, CodeNameConflict:
		return "checking"
	case CodeStructure:
		return "structure"
	case CodeConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsUserInput returns true for codes caused by user-supplied formulas or
// domain maps rather than by programming errors.
func (c Code) IsUserInput() bool {
	switch c {
	case CodeLexical, CodeSyntax,
		CodeUndefinedVariable, CodeDomainMismatch, CodeOutOfRange,
		CodeOutOfDomain, CodeNameConflict:
		return true
	default:
		return false
	}
}
