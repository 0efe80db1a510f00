package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed vsme.json
var embeddedJSON []byte

var (
	loadOnce sync.Once
	loaded   *Taxonomy
	loadErr  error
)

type taxonomyFile struct {
	Namespace string    `json:"namespace"`
	Version   string    `json:"version"`
	Concepts  []Concept `json:"concepts"`
}

// EnsureLoaded parses the embedded reference data exactly once per
// process. It is safe to call from concurrent first requests; callers
// after the first get the memoized outcome. Both binaries call it at
// startup and the validator calls it again defensively before use.
func EnsureLoaded() error {
	loadOnce.Do(func() {
		loaded, loadErr = parse(embeddedJSON)
	})
	return loadErr
}

// Default returns the process-wide taxonomy, loading it if needed.
func Default() (*Taxonomy, error) {
	if err := EnsureLoaded(); err != nil {
		return nil, err
	}
	return loaded, nil
}

func parse(data []byte) (*Taxonomy, error) {
	var f taxonomyFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse taxonomy JSON: %w", err)
	}
	if len(f.Concepts) == 0 {
		return nil, fmt.Errorf("taxonomy %q defines no concepts", f.Namespace)
	}

	concepts := make(map[string]Concept, len(f.Concepts))
	for _, c := range f.Concepts {
		if c.QName == "" {
			return nil, fmt.Errorf("taxonomy %q contains a concept without a qname", f.Namespace)
		}
		concepts[c.QName] = c
	}

	return &Taxonomy{
		namespace: f.Namespace,
		version:   f.Version,
		concepts:  concepts,
	}, nil
}
