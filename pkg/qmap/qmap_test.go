package qmap

import (
	"strings"
	"testing"
)

func TestDocumentMetadata(t *testing.T) {
	doc := NewDocument().AddNeverballMetadata()
	out := doc.String()
	want := "// Game: Neverball\n// Format: Quake3\n"
	if out != want {
		t.Errorf("metadata output = %q, want %q", out, want)
	}
}

func TestMultiLineMetadataSplit(t *testing.T) {
	doc := NewDocument().AddMetadata("first\nsecond")
	out := doc.String()
	if !strings.Contains(out, "// first\n// second\n") {
		t.Errorf("multi-line metadata not split into comment lines:\n%s", out)
	}
}

func TestEntityParametersSorted(t *testing.T) {
	entity := &Entity{Parameters: map[string]string{
		"zebra":     "1",
		"alpha":     "2",
		"classname": "worldspawn",
	}}
	doc := NewDocument(entity)
	out := doc.String()

	ia := strings.Index(out, `"alpha"`)
	ic := strings.Index(out, `"classname"`)
	iz := strings.Index(out, `"zebra"`)
	if ia < 0 || ic < 0 || iz < 0 {
		t.Fatalf("missing parameter lines in output:\n%s", out)
	}
	if !(ia < ic && ic < iz) {
		t.Errorf("parameters not in sorted key order:\n%s", out)
	}
}

func TestDocumentStructure(t *testing.T) {
	brush, err := testBuilder().FromPoints(cubePoints())
	if err != nil {
		t.Fatalf("FromPoints failed: %v", err)
	}
	doc := NewDocument(Worldspawn([]*Brush{brush, brush})).AddNeverballMetadata()
	out := doc.String()

	for _, want := range []string{
		"// Game: Neverball",
		"// Format: Quake3",
		"// entity 0",
		`"classname" "worldspawn"`,
		"// brush 0",
		"// brush 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "// entity"); got != 1 {
		t.Errorf("entity marker count = %d, want 1", got)
	}
	// Metadata precedes the first entity marker.
	if strings.Index(out, "// Game: Neverball") > strings.Index(out, "// entity 0") {
		t.Error("metadata emitted after entity")
	}
}

func TestWorldspawn(t *testing.T) {
	e := Worldspawn(nil)
	if e.Parameters["classname"] != "worldspawn" {
		t.Errorf("classname = %q, want worldspawn", e.Parameters["classname"])
	}
}

func TestEmptyDocument(t *testing.T) {
	if out := NewDocument().String(); out != "" {
		t.Errorf("empty document output = %q, want empty", out)
	}
}
