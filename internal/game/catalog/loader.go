package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDirectory reads every *.yaml file in dir, parses each as an Archetype,
// and returns a Catalog. Files are read in lexical order so catalog order is
// stable. Unknown YAML fields are rejected.
//
// Precondition: dir must be a readable directory containing at least one
// archetype file.
// Postcondition: Returns a non-nil Catalog, or an error naming the offending
// file.
func LoadDirectory(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading bird dir %q: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var archetypes []*Archetype
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var a Archetype
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&a); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		archetypes = append(archetypes, &a)
	}
	if len(archetypes) == 0 {
		return nil, fmt.Errorf("bird dir %q contains no archetype files", dir)
	}
	return New(archetypes...)
}
