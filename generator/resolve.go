package generator

import (
	"fmt"
	"strconv"
	"strings"
)

var cToCtypes = map[string]string{
	"bool":               "ctypes.c_bool",
	"char":               "ctypes.c_char",
	"unsigned char":      "ctypes.c_ubyte",
	"short":              "ctypes.c_short",
	"unsigned short":     "ctypes.c_ushort",
	"int":                "ctypes.c_int",
	"unsigned int":       "ctypes.c_uint",
	"long":               "ctypes.c_long",
	"unsigned long":      "ctypes.c_ulong",
	"long long":          "ctypes.c_longlong",
	"unsigned long long": "ctypes.c_ulonglong",
	"int8_t":             "ctypes.c_int8",
	"uint8_t":            "ctypes.c_uint8",
	"int16_t":            "ctypes.c_int16",
	"uint16_t":           "ctypes.c_uint16",
	"int32_t":            "ctypes.c_int32",
	"uint32_t":           "ctypes.c_uint32",
	"int64_t":            "ctypes.c_int64",
	"uint64_t":           "ctypes.c_uint64",
	"size_t":             "ctypes.c_size_t",
	"float":              "ctypes.c_float",
	"double":             "ctypes.c_double",
	"void":               "None",
}

// ResolveSize maps a dimension token to a concrete integer where the symbol
// tables allow it. Product expressions resolve factor by factor; a partially
// resolved product keeps its factor list rather than being discarded.
func (g *Generator) ResolveSize(token string) Dim {
	token = strings.TrimSpace(token)

	if n, err := strconv.Atoi(token); err == nil {
		return Dim{Num: n}
	}

	if strings.Contains(token, "*") {
		parts := strings.Split(token, "*")
		factors := make([]Dim, len(parts))
		product := 1
		allNum := true
		for i, part := range parts {
			d := g.ResolveSize(part)
			factors[i] = d
			if d.IsNum() {
				product *= d.Num
			} else {
				allNum = false
			}
		}
		if allNum {
			return Dim{Num: product}
		}
		return Dim{Factors: factors}
	}

	if v, ok := g.ConstsAndEnums()[token]; ok {
		switch v.Kind {
		case ValueInt:
			return Dim{Num: int(v.Int)}
		case ValueFloat:
			return Dim{Num: int(v.Float)}
		case ValueBool:
			if v.Bool {
				return Dim{Num: 1}
			}
			return Dim{Num: 0}
		}
	}

	return Dim{Sym: token}
}

// ShapeTuple resolves every dimension of a parsed specifier. With squeeze,
// dimensions resolved exactly to 1 are dropped.
func (g *Generator) ShapeTuple(dims []string, squeeze bool) Shape {
	shape := make(Shape, 0, len(dims))

	for _, dim := range dims {
		d := g.ResolveSize(dim)
		if squeeze && d.IsNum() && d.Num == 1 {
			continue
		}
		shape = append(shape, d)
	}

	return shape
}

// ResolveTypename chases a name through the typedefs table and then the
// fixed C-to-ctypes vocabulary. An input that comes back unchanged failed to
// resolve; a diagnostic is recorded and the name is returned as-is.
func (g *Generator) ResolveTypename(name string) string {
	resolved := name

	seen := map[string]bool{}
	for !seen[resolved] {
		seen[resolved] = true
		next, ok := g.typedefs.Get(resolved)
		if !ok {
			break
		}
		resolved = next
	}

	if ctype, ok := cToCtypes[resolved]; ok {
		resolved = ctype
	}

	if resolved == name {
		g.diags = append(g.diags, fmt.Sprintf("could not resolve typename %q", name))
	}

	return resolved
}
