package schema

import (
	"fmt"
	"os"

	"github.com/jasal82/cconfig/pkg/config"
)

// Schema encapsulates a parsed schema tree.
type Schema struct {
	root *GroupNode
}

// New returns an empty schema; the root is installed with SetRoot. This is
// how generated tree-builder code assembles a schema at runtime.
func New() *Schema {
	return &Schema{}
}

// Load reads and parses a schema file from disk.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	root, err := parseSchema(path, string(data))
	if err != nil {
		return nil, err
	}
	return &Schema{root: root}, nil
}

// Parse parses schema source from memory.
func Parse(src string) (*Schema, error) {
	root, err := parseSchema("", src)
	if err != nil {
		return nil, err
	}
	return &Schema{root: root}, nil
}

// SetRoot installs the root group node.
func (s *Schema) SetRoot(root *GroupNode) {
	s.root = root
}

// Root returns the root group node.
func (s *Schema) Root() *GroupNode {
	return s.root
}

// Validate checks a loaded configuration file against the schema. With
// strict enabled, configuration keys not declared in the schema are rejected
// as well (typo detection).
func (s *Schema) Validate(f *config.File, strict bool) Result {
	return s.root.Validate(f.Root(), strict)
}

// ValidateElement checks an element tree against the schema.
func (s *Schema) ValidateElement(e config.Element, strict bool) Result {
	return s.root.Validate(e, strict)
}
