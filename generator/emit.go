package generator

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// versionConstant names the header constant whose value is stamped into
// every generated artifact.
const versionConstant = "mjVERSION_HEADER"

func (g *Generator) Generate() (map[string]string, error) {
	g.lintTypedefs()

	files := map[string]string{
		"constants.py": g.generateConsts(),
		"enums.py":     g.generateEnums(),
		"sizes.py":     g.generateIndex(),
	}

	return files, nil
}

// lintTypedefs resolves every typedef target once so unresolved names
// surface as diagnostics before the artifacts are written.
func (g *Generator) lintTypedefs() {
	for _, name := range g.typedefs.Keys() {
		raw, _ := g.typedefs.Get(name)
		g.ResolveTypename(raw)
	}
}

func (g *Generator) headerStanza(imports []string) string {
	version := "Unknown"
	if v, ok := g.consts.Get(versionConstant); ok {
		version = v.Python()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\"\"\"Automatically generated by hdrgen. Do not edit.\n\nEngine header version: %s\n\"\"\"\n", version)
	for _, imp := range imports {
		buf.WriteString(imp + "\n")
	}
	buf.WriteString("\n")

	return buf.String()
}

func commentLine(s string) string {
	line := "# " + s + " "
	if pad := 79 - len(line); pad > 0 {
		line += strings.Repeat("-", pad)
	}

	return line
}

func (g *Generator) generateConsts() string {
	var buf bytes.Buffer

	buf.WriteString(g.headerStanza([]string{"# pylint: disable=invalid-name"}))
	buf.WriteString(commentLine("Constants") + "\n\n")

	for _, name := range g.consts.Keys() {
		v, _ := g.consts.Get(name)
		fmt.Fprintf(&buf, "%s = %s\n", name, v.Python())
	}

	buf.WriteString("\n" + commentLine("End of generated code") + "\n")

	return buf.String()
}

func (g *Generator) generateEnums() string {
	var buf bytes.Buffer

	buf.WriteString(g.headerStanza([]string{
		"import collections",
		"# pylint: disable=invalid-name",
		"# pylint: disable=line-too-long",
	}))
	buf.WriteString(commentLine("Enums") + "\n")

	for _, name := range g.enums.Keys() {
		members, _ := g.enums.Get(name)

		fields := make([]string, 0, members.Len())
		values := make([]string, 0, members.Len())
		for _, member := range members.Keys() {
			v, _ := members.Get(member)
			fields = append(fields, strconv.Quote(member))
			values = append(values, strconv.FormatInt(v, 10))
		}

		fmt.Fprintf(&buf, "\n%s = collections.namedtuple(\n    %q,\n    [%s],\n)(%s)\n",
			name, name, strings.Join(fields, ", "), strings.Join(values, ", "))
	}

	buf.WriteString("\n" + commentLine("End of generated code") + "\n")

	return buf.String()
}

func (g *Generator) generateIndex() string {
	var buf bytes.Buffer

	buf.WriteString(g.headerStanza([]string{"# pylint: disable=line-too-long"}))

	buf.WriteString("array_sizes = {\n")
	for _, structName := range g.index.Keys() {
		fields, _ := g.index.Get(structName)
		fmt.Fprintf(&buf, "    %q: {\n", structName)
		for _, field := range fields.Keys() {
			shape, _ := fields.Get(field)
			fmt.Fprintf(&buf, "        %q: %s,\n", field, shape.Python())
		}
		buf.WriteString("    },\n")
	}
	buf.WriteString("}\n")

	buf.WriteString("\n" + commentLine("End of generated code") + "\n")

	return buf.String()
}
