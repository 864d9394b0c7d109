package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateVersionStanza(t *testing.T) {
	g := New()
	files, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	for name, content := range files {
		if !strings.Contains(content, "Engine header version: Unknown") {
			t.Errorf("%s missing Unknown version sentinel", name)
		}
		if !strings.Contains(content, "Automatically generated by hdrgen") {
			t.Errorf("%s missing auto-generation notice", name)
		}
		if !strings.Contains(content, "# End of generated code") {
			t.Errorf("%s missing end-of-generated-code marker", name)
		}
	}
}

func TestGenerateConstsArtifact(t *testing.T) {
	g := New()
	mustParseConsts(t, g, `
#define mjVERSION_HEADER 321
#define mjNEQDATA 11
#define mjMINVAL 1E-15
#define mjUSEDOUBLE
`)

	files, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	consts := files["constants.py"]

	if !strings.Contains(consts, "Engine header version: 321") {
		t.Error("version constant not stamped into header")
	}
	for _, line := range []string{
		"mjVERSION_HEADER = 321",
		"mjNEQDATA = 11",
		"mjMINVAL = 1e-15",
		"mjUSEDOUBLE = True",
	} {
		if !strings.Contains(consts, line+"\n") {
			t.Errorf("constants.py missing %q", line)
		}
	}

	// table order is emission order
	if strings.Index(consts, "mjNEQDATA") > strings.Index(consts, "mjMINVAL") {
		t.Error("constants emitted out of declaration order")
	}
}

func TestGenerateEnumsArtifact(t *testing.T) {
	g := New()
	if err := g.ParseEnums(`enum E { X, Y=10, Z };`); err != nil {
		t.Fatalf("ParseEnums() failed: %v", err)
	}

	files, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	enums := files["enums.py"]

	if !strings.Contains(enums, "import collections") {
		t.Error("enums.py missing collections import")
	}
	if !strings.Contains(enums, `E = collections.namedtuple(`) {
		t.Error("enums.py missing namedtuple definition")
	}
	if !strings.Contains(enums, `["X", "Y", "Z"]`) {
		t.Error("enums.py missing member fields in declaration order")
	}
	if !strings.Contains(enums, "(0, 10, 11)") {
		t.Error("enums.py missing member values")
	}
}

func TestGenerateIndexArtifact(t *testing.T) {
	g := New()
	mustParseConsts(t, g, `#define nq 7`)
	if err := g.ParseHints("#define MJDATA_POINTERS \\\n    X( mjtNum, qpos, nq, 1 )\n    X( mjtNum, userdata, nuserdata, 1 )\n"); err != nil {
		t.Fatalf("ParseHints() failed: %v", err)
	}

	files, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	index := files["sizes.py"]

	if !strings.Contains(index, "array_sizes = {") {
		t.Error("sizes.py missing array_sizes literal")
	}
	if !strings.Contains(index, `"mjdata": {`) {
		t.Error("sizes.py missing mjdata struct entry")
	}
	if !strings.Contains(index, `"qpos": (7,),`) {
		t.Error("sizes.py missing resolved qpos shape")
	}
}

func TestGenerateFromFiles(t *testing.T) {
	g := New()

	seedData, err := os.ReadFile(filepath.Join("testdata", "seed.yaml"))
	if err != nil {
		t.Fatalf("reading seed: %v", err)
	}
	seed, err := ParseSeed(seedData)
	if err != nil {
		t.Fatalf("ParseSeed() failed: %v", err)
	}
	if err := g.ApplySeed(seed); err != nil {
		t.Fatalf("ApplySeed() failed: %v", err)
	}

	var srcs []string
	for _, name := range []string{"engine.h", "xmacro.h"} {
		data, err := os.ReadFile(filepath.Join("testdata", name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		srcs = append(srcs, string(data))
	}

	for _, src := range srcs {
		if err := g.ParseEnums(src); err != nil {
			t.Fatalf("ParseEnums() failed: %v", err)
		}
		if err := g.ParseConstsTypedefs(src); err != nil {
			t.Fatalf("ParseConstsTypedefs() failed: %v", err)
		}
	}
	for _, src := range srcs {
		if err := g.ParseHints(src); err != nil {
			t.Fatalf("ParseHints() failed: %v", err)
		}
	}

	// conditional picked the double branch
	if typ, _ := g.Typedefs().Get("mjtNum"); typ != "double" {
		t.Errorf("mjtNum = %q, want double", typ)
	}

	// enum members resolved with implicit, explicit and shifted values
	joints, _ := g.Enums().Get("mjtJoint")
	if v, _ := joints.Get("mjJNT_HINGE"); v != 3 {
		t.Errorf("mjJNT_HINGE = %d, want 3", v)
	}
	bits, _ := g.Enums().Get("mjtEnableBit")
	if v, _ := bits.Get("mjENBL_FWDINV"); v != 4 {
		t.Errorf("mjENBL_FWDINV = %d, want 4", v)
	}

	// shapes: resolved, product, squeezed and symbolic
	fields, ok := g.Index().Get("mjdata")
	if !ok {
		t.Fatal("mjdata missing from index")
	}
	if got, _ := fields.Get("qpos"); got.Python() != "(7,)" {
		t.Errorf("qpos shape = %s, want (7,)", got.Python())
	}
	if got, _ := fields.Get("xpos"); got.Python() != "(2, 3)" {
		t.Errorf("xpos shape = %s, want (2, 3)", got.Python())
	}
	if got, _ := fields.Get("userdata"); got.Python() != `("nuserdata",)` {
		t.Errorf("userdata shape = %s, want symbolic", got.Python())
	}

	model, ok := g.Index().Get("mjmodel")
	if !ok {
		t.Fatal("mjmodel missing from index")
	}
	if got, _ := model.Get("body_quat"); got.Python() != "(8,)" {
		t.Errorf("body_quat shape = %s, want nbody*4 = (8,)", got.Python())
	}

	files, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if !strings.Contains(files["constants.py"], "mjVERSION_HEADER = 321") {
		t.Error("constants.py missing version constant")
	}
	if !strings.Contains(files["sizes.py"], `"userdata": ("nuserdata",),`) {
		t.Error("sizes.py missing partially-symbolic shape")
	}
}
