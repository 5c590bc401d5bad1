// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors and the mapping from
//              error codes to default severities.

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates an expected failure caused by user input
	// Examples: syntax errors, domain violations, name conflicts
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects an operation but is
	// recoverable by the caller
	SeverityMedium

	// SeverityHigh indicates a violated internal invariant
	// Examples: malformed AST nodes, broken tree structure
	SeverityHigh

	// SeverityCritical indicates the toolkit cannot continue at all
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Violated internal invariants
	case CodeStructure, CodeInternal:
		return SeverityHigh

	// Configuration problems abort the tool but not the process state
	case CodeConfig:
		return SeverityMedium

	// Expected user-input failures
	case CodeLexical, CodeSyntax,
		CodeUndefinedVariable, CodeDomainMismatch, CodeOutOfRange,
		CodeOutOfDomain, CodeNameConflict:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
