// File: yaml.go
// Title: Domain Map YAML Loading
// Description: Decodes domain maps from YAML documents. Supports the
//              scalar boolean form, two-integer sequences and mappings
//              for ranges, and string sequences for enumerations.

package domain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	lterror "github.com/tlforge/ltlspec/core/error"
)

// UnmarshalYAML decodes one domain from its YAML representation:
//
//	floor: {low: 1, high: 4}     # integer range
//	level: [0, 10]               # integer range, shorthand
//	color: [red, green, blue]    # string enumeration
//	door:  boolean               # boolean
func (d *Domain) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		if s != "boolean" && s != "bool" {
			return fmt.Errorf("unknown domain %q, expected boolean", s)
		}
		*d = Boolean()
		return nil

	case yaml.SequenceNode:
		var bounds []int
		if err := value.Decode(&bounds); err == nil {
			if len(bounds) != 2 {
				return fmt.Errorf("range domain needs exactly two bounds, got %d", len(bounds))
			}
			*d = IntRange(bounds[0], bounds[1])
			return nil
		}

		var values []string
		if err := value.Decode(&values); err != nil {
			return fmt.Errorf("sequence domain must hold two integers or strings: %w", err)
		}
		if len(values) == 0 {
			return fmt.Errorf("enumeration domain must not be empty")
		}
		*d = Enum(values...)
		return nil

	case yaml.MappingNode:
		var bounds struct {
			Low  int `yaml:"low"`
			High int `yaml:"high"`
		}
		if err := value.Decode(&bounds); err != nil {
			return err
		}
		*d = IntRange(bounds.Low, bounds.High)
		return nil

	default:
		return fmt.Errorf("unsupported domain node on line %d", value.Line)
	}
}

// Parse decodes a domain map from YAML source
func Parse(data []byte) (Map, error) {
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, lterror.Wrap(err, "cannot decode domain map").
			WithCode(lterror.CodeConfig).
			WithOperation("domain.Parse")
	}
	if m == nil {
		m = Map{}
	}
	return m, nil
}

// LoadFile reads a domain map from a YAML file
func LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lterror.Wrap(err, "cannot read domain file").
			WithCode(lterror.CodeConfig).
			WithOperation("domain.LoadFile").
			WithDetail("path", path)
	}

	m, err := Parse(data)
	if err != nil {
		if lerr, ok := err.(*lterror.Error); ok {
			return nil, lerr.WithDetail("path", path)
		}
		return nil, err
	}
	return m, nil
}
