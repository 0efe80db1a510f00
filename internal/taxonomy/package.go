package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFilename is the file every taxonomy package directory must
// contain at its root.
const ManifestFilename = "taxonomy-package.yaml"

// Manifest describes a taxonomy package on disk: a directory with a
// YAML manifest pointing at one or more concept JSON files. Packages
// let deployments validate against taxonomy extensions without a
// rebuild, and are the offline substitute for fetching taxonomies from
// the web.
type Manifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// ConceptFiles are paths relative to the package directory.
	ConceptFiles []string `yaml:"concept_files"`
}

// LoadPackage reads the manifest in dir and returns all concepts its
// files define, in file order.
func LoadPackage(dir string) ([]Concept, error) {
	raw, err := os.ReadFile(filepath.Join(dir, ManifestFilename))
	if err != nil {
		return nil, fmt.Errorf("read taxonomy package manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse taxonomy package manifest in %s: %w", dir, err)
	}
	if len(m.ConceptFiles) == 0 {
		return nil, fmt.Errorf("taxonomy package %q lists no concept files", m.Name)
	}

	var concepts []Concept
	for _, rel := range m.ConceptFiles {
		data, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			return nil, fmt.Errorf("taxonomy package %q: %w", m.Name, err)
		}
		var f taxonomyFile
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("taxonomy package %q: parse %s: %w", m.Name, rel, err)
		}
		concepts = append(concepts, f.Concepts...)
	}
	return concepts, nil
}
