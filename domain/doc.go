// File: doc.go
// Title: Domain Package Documentation
// Description: Package overview for variable domain declarations.

// Package domain models the admissible values of formula variables.
//
// Three domain shapes exist: boolean, inclusive integer range and
// string enumeration. The order of an enumeration defines the integer
// encoding used when string constants are lowered to numbers. Domain
// maps are usually loaded from YAML files:
//
//	floor: {low: 1, high: 4}
//	level: [0, 10]
//	color: [red, green, blue]
//	door:  boolean
package domain
