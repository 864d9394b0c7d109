package generator

import (
	"strconv"
	"strings"
)

type ValueKind int

const (
	ValueInt ValueKind = iota
	ValueFloat
	ValueBool
)

// Value is a constant scalar: an integer, a float, or the bare-flag sentinel
// recorded for valueless #define lines.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Bool  bool
}

func IntValue(n int64) Value {
	return Value{Kind: ValueInt, Int: n}
}

func FloatValue(f float64) Value {
	return Value{Kind: ValueFloat, Float: f}
}

func BoolValue(b bool) Value {
	return Value{Kind: ValueBool, Bool: b}
}

func (v Value) Python() string {
	switch v.Kind {
	case ValueFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValueBool:
		if v.Bool {
			return "True"
		}
		return "False"
	default:
		return strconv.FormatInt(v.Int, 10)
	}
}

func (v Value) truthy() bool {
	switch v.Kind {
	case ValueFloat:
		return v.Float != 0
	case ValueBool:
		return v.Bool
	default:
		return v.Int != 0
	}
}

func coerceNum(s string) (Value, bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return IntValue(n), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return FloatValue(f), true
	}

	return Value{}, false
}

// Dim is one array dimension: a resolved integer, an unresolved symbolic
// name, or the factor list of a partially-resolved product expression.
type Dim struct {
	Num     int
	Sym     string
	Factors []Dim
}

func (d Dim) IsNum() bool {
	return d.Sym == "" && d.Factors == nil
}

func (d Dim) Python() string {
	switch {
	case d.Factors != nil:
		parts := make([]string, len(d.Factors))
		for i, f := range d.Factors {
			parts[i] = f.Python()
		}
		return pyTuple(parts)
	case d.Sym != "":
		return strconv.Quote(d.Sym)
	default:
		return strconv.Itoa(d.Num)
	}
}

type Shape []Dim

func (s Shape) Python() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.Python()
	}

	return pyTuple(parts)
}

func pyTuple(parts []string) string {
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
