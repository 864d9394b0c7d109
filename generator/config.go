package generator

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Seed pre-populates the session tables before any header is parsed, the
// same way known-good constants or typedefs would be passed to a session at
// construction time. Lists keep the declaration order that emission relies
// on.
type Seed struct {
	Constants []SeedConstant `yaml:"constants"`
	Typedefs  []SeedTypedef  `yaml:"typedefs"`
	Enums     []SeedEnum     `yaml:"enums"`
}

type SeedConstant struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

type SeedTypedef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type SeedEnum struct {
	Name    string           `yaml:"name"`
	Members []SeedEnumMember `yaml:"members"`
}

type SeedEnumMember struct {
	Name  string `yaml:"name"`
	Value int64  `yaml:"value"`
}

func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed config: %w", err)
	}

	return &seed, nil
}

func (g *Generator) ApplySeed(seed *Seed) error {
	for _, c := range seed.Constants {
		value, err := seedValue(c.Value)
		if err != nil {
			return fmt.Errorf("constant %s: %w", c.Name, err)
		}
		if err := g.consts.Insert(c.Name, value); err != nil {
			return fmt.Errorf("constants: %w", err)
		}
	}

	for _, t := range seed.Typedefs {
		if err := g.typedefs.Insert(t.Name, t.Type); err != nil {
			return fmt.Errorf("typedefs: %w", err)
		}
	}

	for _, e := range seed.Enums {
		members := NewTable[int64]()
		for _, m := range e.Members {
			if err := members.Insert(m.Name, m.Value); err != nil {
				return fmt.Errorf("enum %s: %w", e.Name, err)
			}
		}
		if err := g.enums.Insert(e.Name, members); err != nil {
			return fmt.Errorf("enums: %w", err)
		}
	}

	return nil
}

func seedValue(v any) (Value, error) {
	switch v := v.(type) {
	case int:
		return IntValue(int64(v)), nil
	case int64:
		return IntValue(v), nil
	case float64:
		return FloatValue(v), nil
	case bool:
		return BoolValue(v), nil
	default:
		return Value{}, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}
