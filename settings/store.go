package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk settings layout: one global fragment plus
// per-document fragments keyed by a caller-chosen document identifier
// (typically an absolute path or content hash).
type File struct {
	Global    Partial            `yaml:"global"`
	Documents map[string]Partial `yaml:"documents"`
}

// Load reads a settings file. A missing file yields an empty File
// rather than an error, so first-run viewers start from defaults.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{Documents: make(map[string]Partial)}, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	if f.Documents == nil {
		f.Documents = make(map[string]Partial)
	}
	return &f, nil
}

// Save writes the settings file.
func (f *File) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// For resolves the effective settings for a document: its fragment over
// the global fragment over the built-in defaults.
func (f *File) For(docID string) Settings {
	var doc *Partial
	if p, ok := f.Documents[docID]; ok {
		doc = &p
	}
	return Resolve(doc, &f.Global)
}

// Set stores a per-document settings fragment.
func (f *File) Set(docID string, p Partial) {
	if f.Documents == nil {
		f.Documents = make(map[string]Partial)
	}
	f.Documents[docID] = p
}
