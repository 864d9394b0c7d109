package parser

type EnumMember struct {
	Name   string
	Value  string
	ShiftA string
	ShiftB string
}

type Enum struct {
	Name    string
	Members []EnumMember
}

type Decl interface {
	decl()
}

type CondDecl struct {
	Predicate string
	IfTrue    []Decl
	IfFalse   []Decl
}

type TypedefDecl struct {
	Name string
	Type string
}

type ValueDecl struct {
	Name  string
	Value string
}

type FlagDecl struct {
	Name string
}

func (*CondDecl) decl()    {}
func (*TypedefDecl) decl() {}
func (*ValueDecl) decl()   {}
func (*FlagDecl) decl()    {}

type XMacroMember struct {
	Name string
	Dims []string
}

type XMacro struct {
	Name    string
	Members []XMacroMember
}
