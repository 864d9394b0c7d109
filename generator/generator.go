package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/simbind/hdrgen/parser"
)

// Generator owns the symbol tables for one header-set translation. Parse
// passes are order-dependent: enums and constants must be recorded before
// conditional blocks or size expressions that reference them are evaluated.
type Generator struct {
	consts   *Table[Value]
	enums    *Table[*Table[int64]]
	typedefs *Table[string]
	hints    *Table[Shape]
	index    *Table[*Table[Shape]]

	diags []string
}

func New() *Generator {
	return &Generator{
		consts:   NewTable[Value](),
		enums:    NewTable[*Table[int64]](),
		typedefs: NewTable[string](),
		hints:    NewTable[Shape](),
		index:    NewTable[*Table[Shape]](),
	}
}

func (g *Generator) Consts() *Table[Value]        { return g.consts }
func (g *Generator) Enums() *Table[*Table[int64]] { return g.enums }
func (g *Generator) Typedefs() *Table[string]     { return g.typedefs }
func (g *Generator) Hints() *Table[Shape]         { return g.hints }
func (g *Generator) Index() *Table[*Table[Shape]] { return g.index }

func (g *Generator) Diagnostics() []string {
	return g.diags
}

// ConstsAndEnums is the combined lookup namespace for size expressions and
// conditional predicates. Enum members overlay constants, last writer wins.
func (g *Generator) ConstsAndEnums() map[string]Value {
	view := make(map[string]Value, g.consts.Len())

	for _, name := range g.consts.Keys() {
		v, _ := g.consts.Get(name)
		view[name] = v
	}
	for _, enumName := range g.enums.Keys() {
		members, _ := g.enums.Get(enumName)
		for _, name := range members.Keys() {
			v, _ := members.Get(name)
			view[name] = IntValue(v)
		}
	}

	return view
}

func (g *Generator) ParseEnums(src string) error {
	for _, enum := range parser.ScanEnums(src) {
		members := NewTable[int64]()

		value := int64(-1) // first bare member becomes 0
		for _, m := range enum.Members {
			switch {
			case m.ShiftA != "":
				a, err := strconv.ParseInt(m.ShiftA, 0, 64)
				if err != nil {
					continue
				}
				b, err := strconv.ParseInt(m.ShiftB, 0, 64)
				if err != nil {
					continue
				}
				value = a << b
			case m.Value != "":
				v, err := strconv.ParseInt(m.Value, 0, 64)
				if err != nil {
					continue
				}
				value = v
			default:
				value++
			}

			if err := members.Insert(m.Name, value); err != nil {
				return fmt.Errorf("enum %s: %w", enum.Name, err)
			}
		}

		if err := g.enums.Insert(enum.Name, members); err != nil {
			return fmt.Errorf("enums: %w", err)
		}
	}

	return nil
}

func (g *Generator) ParseConstsTypedefs(src string) error {
	return g.evalDecls(parser.ScanDecls(src))
}

// evalDecls walks a declaration tree, recursing into exactly one branch of
// each conditional block. Declarations in the discarded branch never enter
// any table.
func (g *Generator) evalDecls(decls []parser.Decl) error {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *parser.CondDecl:
			branch := d.IfFalse
			if v, ok := g.ConstsAndEnums()[d.Predicate]; ok && v.truthy() {
				branch = d.IfTrue
			}
			if err := g.evalDecls(branch); err != nil {
				return err
			}
		case *parser.TypedefDecl:
			if err := g.typedefs.Insert(d.Name, d.Type); err != nil {
				return fmt.Errorf("typedefs: %w", err)
			}
		case *parser.ValueDecl:
			value, ok := coerceNum(d.Value)
			if !ok {
				continue // non-numeric values are dropped, not stored
			}
			if err := g.consts.Insert(d.Name, value); err != nil {
				return fmt.Errorf("constants: %w", err)
			}
		case *parser.FlagDecl:
			if err := g.consts.Insert(d.Name, BoolValue(true)); err != nil {
				return fmt.Errorf("constants: %w", err)
			}
		}
	}

	return nil
}

func (g *Generator) ParseHints(src string) error {
	for _, macro := range parser.ScanXMacros(src) {
		for _, m := range macro.Members {
			shape := g.ShapeTuple(m.Dims, true)

			if err := g.hints.Insert(m.Name, shape); err != nil {
				return fmt.Errorf("hints: %w", err)
			}

			if !isPointerMacro(macro.Name) {
				continue
			}
			structName := macroStructName(macro.Name)
			fields, ok := g.index.Get(structName)
			if !ok {
				fields = NewTable[Shape]()
				if err := g.index.Insert(structName, fields); err != nil {
					return fmt.Errorf("index: %w", err)
				}
			}
			if err := fields.Insert(m.Name, shape); err != nil {
				return fmt.Errorf("index %s: %w", structName, err)
			}
		}
	}

	return nil
}

func isPointerMacro(name string) bool {
	return strings.Contains(name, "POINTERS")
}

func macroStructName(name string) string {
	if i := strings.Index(name, "_"); i >= 0 {
		name = name[:i]
	}

	return strings.ToLower(name)
}
