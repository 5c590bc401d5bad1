// File: domain.go
// Title: Variable Domain Model
// Description: Defines the closed set of variable domains used by the
//              domain checks and constant substitution passes: boolean,
//              inclusive integer range and string enumeration.

package domain

import (
	"fmt"
	"strings"
)

// kind discriminates the domain union
type kind int

const (
	kindBoolean kind = iota
	kindRange
	kindEnum
)

// Domain describes the admissible values of one variable. A Domain is
// one of boolean, inclusive integer range or string enumeration. The
// zero value is the boolean domain.
type Domain struct {
	kind   kind
	low    int
	high   int
	values []string
}

// Map associates variable names with their domains. Passes never
// mutate a Map.
type Map map[string]Domain

// Boolean returns the boolean domain
func Boolean() Domain {
	return Domain{kind: kindBoolean}
}

// IntRange returns the inclusive integer range domain [low, high]
func IntRange(low, high int) Domain {
	return Domain{kind: kindRange, low: low, high: high}
}

// Enum returns the string enumeration domain. The order of values
// defines their integer encoding.
func Enum(values ...string) Domain {
	return Domain{kind: kindEnum, values: values}
}

// IsBoolean reports whether d is the boolean domain
func (d Domain) IsBoolean() bool {
	return d.kind == kindBoolean
}

// IsRange reports whether d is an integer range domain
func (d Domain) IsRange() bool {
	return d.kind == kindRange
}

// IsEnum reports whether d is a string enumeration domain
func (d Domain) IsEnum() bool {
	return d.kind == kindEnum
}

// Bounds returns the inclusive bounds of a range domain
func (d Domain) Bounds() (low, high int, ok bool) {
	if d.kind != kindRange {
		return 0, 0, false
	}
	return d.low, d.high, true
}

// Contains reports whether n lies inside a range domain
func (d Domain) Contains(n int) bool {
	return d.kind == kindRange && d.low <= n && n <= d.high
}

// Values returns the enumeration values in encoding order
func (d Domain) Values() ([]string, bool) {
	if d.kind != kindEnum {
		return nil, false
	}
	return d.values, true
}

// IndexOf returns the integer encoding of value in an enumeration
// domain
func (d Domain) IndexOf(value string) (int, bool) {
	if d.kind != kindEnum {
		return 0, false
	}
	for i, v := range d.values {
		if v == value {
			return i, true
		}
	}
	return 0, false
}

// HasValue reports whether value belongs to an enumeration domain
func (d Domain) HasValue(value string) bool {
	_, ok := d.IndexOf(value)
	return ok
}

// String returns a human-readable rendering of the domain
func (d Domain) String() string {
	switch d.kind {
	case kindRange:
		return fmt.Sprintf("[%d, %d]", d.low, d.high)
	case kindEnum:
		return "{" + strings.Join(d.values, ", ") + "}"
	default:
		return "boolean"
	}
}
