package parser

import (
	"regexp"
	"strings"
)

var blockCommentRe = regexp.MustCompile(`/\*[\s\S]*?\*/`)
var lineCommentRe = regexp.MustCompile(`//[^\n]*`)
var multiSpaceRe = regexp.MustCompile(`[ \t]+`)

var enumRe = regexp.MustCompile(`(?:typedef\s+)?enum\s+(\w+)?\s*\{([^}]*)\}\s*(\w*)\s*;`)
var enumShiftRe = regexp.MustCompile(`^(\w+)\s*=\s*(\w+)\s*<<\s*(\w+)$`)
var enumValueRe = regexp.MustCompile(`^(\w+)\s*=\s*([-+]?\w+)$`)
var enumNameRe = regexp.MustCompile(`^(\w+)$`)

var typedefRe = regexp.MustCompile(`^typedef\s+((?:unsigned\s+|signed\s+)?\w+)\s+(\w+)\s*;$`)
var defineRe = regexp.MustCompile(`^#\s*define\s+(\w+)(?:\s+(.*?))?\s*$`)
var ifdefRe = regexp.MustCompile(`^#\s*(?:ifdef\s+(\w+)|if\s+defined\s*\(\s*(\w+)\s*\)|if\s+(\w+)\s*$)`)
var ifndefRe = regexp.MustCompile(`^#\s*(?:ifndef\s+(\w+)|if\s+!\s*defined\s*\(\s*(\w+)\s*\))`)
var elseRe = regexp.MustCompile(`^#\s*else\b`)
var endifRe = regexp.MustCompile(`^#\s*endif\b`)

var xmacroRe = regexp.MustCompile(`(?m)^#\s*define\s+(\w+)\s*\\\n((?:[^\n]*\\\n)*[^\n]*)`)
var xmacroRowRe = regexp.MustCompile(`\w+\s*\(([^()]*)\)`)

func normalize(s string) string {
	s = blockCommentRe.ReplaceAllString(s, "")
	s = lineCommentRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = multiSpaceRe.ReplaceAllString(s, " ")

	return s
}

func ScanEnums(src string) []Enum {
	src = normalize(src)

	var enums []Enum

	for _, m := range enumRe.FindAllStringSubmatch(src, -1) {
		name := strings.TrimSpace(m[3])
		if name == "" {
			name = strings.TrimSpace(m[1])
		}
		if name == "" {
			continue
		}

		var members []EnumMember
		for _, part := range strings.Split(m[2], ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			if sm := enumShiftRe.FindStringSubmatch(part); sm != nil {
				members = append(members, EnumMember{Name: sm[1], ShiftA: sm[2], ShiftB: sm[3]})
			} else if vm := enumValueRe.FindStringSubmatch(part); vm != nil {
				members = append(members, EnumMember{Name: vm[1], Value: vm[2]})
			} else if nm := enumNameRe.FindStringSubmatch(part); nm != nil {
				members = append(members, EnumMember{Name: nm[1]})
			}
		}

		enums = append(enums, Enum{Name: name, Members: members})
	}

	return enums
}

func ScanDecls(src string) []Decl {
	src = normalize(src)

	lines := strings.Split(src, "\n")
	decls, _ := parseDecls(lines, 0, false)

	return decls
}

func parseDecls(lines []string, i int, nested bool) ([]Decl, int) {
	var decls []Decl

	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		if nested && (elseRe.MatchString(line) || endifRe.MatchString(line)) {
			return decls, i
		}

		if pred, negated, ok := matchCondStart(line); ok {
			ifTrue, next := parseDecls(lines, i+1, true)

			var ifFalse []Decl
			if next < len(lines) && elseRe.MatchString(strings.TrimSpace(lines[next])) {
				ifFalse, next = parseDecls(lines, next+1, true)
			}
			if next < len(lines) {
				next++ // consume #endif
			}

			// #ifndef is an #ifdef with the branches swapped.
			if negated {
				ifTrue, ifFalse = ifFalse, ifTrue
			}

			decls = append(decls, &CondDecl{Predicate: pred, IfTrue: ifTrue, IfFalse: ifFalse})
			i = next
			continue
		}

		if m := typedefRe.FindStringSubmatch(line); m != nil {
			decls = append(decls, &TypedefDecl{Name: m[2], Type: strings.TrimSpace(m[1])})
		} else if m := defineRe.FindStringSubmatch(line); m != nil {
			if m[2] == "" {
				decls = append(decls, &FlagDecl{Name: m[1]})
			} else {
				decls = append(decls, &ValueDecl{Name: m[1], Value: strings.TrimSpace(m[2])})
			}
		}

		i++
	}

	return decls, i
}

func matchCondStart(line string) (pred string, negated bool, ok bool) {
	if m := ifndefRe.FindStringSubmatch(line); m != nil {
		return firstGroup(m), true, true
	}
	if m := ifdefRe.FindStringSubmatch(line); m != nil {
		return firstGroup(m), false, true
	}

	return "", false, false
}

func firstGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}

	return ""
}

func ScanXMacros(src string) []XMacro {
	src = normalize(src)

	var macros []XMacro

	for _, m := range xmacroRe.FindAllStringSubmatch(src, -1) {
		macro := XMacro{Name: m[1]}

		for _, row := range xmacroRowRe.FindAllStringSubmatch(m[2], -1) {
			args := strings.Split(row[1], ",")
			if len(args) < 2 {
				continue
			}

			member := XMacroMember{Name: strings.TrimSpace(args[1])}
			for _, dim := range args[2:] {
				dim = strings.ReplaceAll(dim, " ", "")
				if dim == "" {
					continue
				}
				member.Dims = append(member.Dims, dim)
			}
			if member.Name == "" {
				continue
			}

			macro.Members = append(macro.Members, member)
		}

		macros = append(macros, macro)
	}

	return macros
}
