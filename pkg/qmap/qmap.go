package qmap

import (
	"fmt"
	"sort"
	"strings"
)

// Entity is a map entity: arbitrary string parameters plus the brushes
// it owns. Parameters render in sorted key order so output is
// deterministic.
type Entity struct {
	Parameters map[string]string
	Brushes    []*Brush
}

// write renders the entity as a {...} block: parameter lines first,
// then one block per brush with a // brush i marker.
func (e *Entity) write(sb *strings.Builder) {
	sb.WriteString("{\n")
	keys := make([]string, 0, len(e.Parameters))
	for k := range e.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(sb, "%q %q\n", k, e.Parameters[k])
	}
	for i, brush := range e.Brushes {
		fmt.Fprintf(sb, "// brush %d\n", i)
		brush.write(sb)
	}
	sb.WriteString("}\n")
}

// Document is a complete map: an ordered entity list plus metadata
// comment lines emitted before the first entity.
type Document struct {
	Entities []*Entity
	Metadata []string
}

// NewDocument returns a Document over the given entities.
func NewDocument(entities ...*Entity) *Document {
	return &Document{Entities: entities}
}

// AddMetadata appends metadata comment lines to the document.
// Multi-line strings are split into one comment per line.
func (d *Document) AddMetadata(lines ...string) *Document {
	d.Metadata = append(d.Metadata, lines...)
	return d
}

// AddNeverballMetadata appends the TrenchBroom game/format header used
// for Neverball maps.
func (d *Document) AddNeverballMetadata() *Document {
	return d.AddMetadata("Game: Neverball", "Format: Quake3")
}

// String renders the document as .map text.
func (d *Document) String() string {
	var sb strings.Builder
	for _, meta := range d.Metadata {
		for _, line := range strings.Split(meta, "\n") {
			fmt.Fprintf(&sb, "// %s\n", line)
		}
	}
	for i, entity := range d.Entities {
		fmt.Fprintf(&sb, "// entity %d\n", i)
		entity.write(&sb)
	}
	return sb.String()
}
