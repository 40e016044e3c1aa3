package protocol

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a catalog override.
type catalogFile struct {
	Protocols []Protocol `yaml:"protocols"`
}

// LoadCatalog reads a YAML catalog override and returns a validated registry.
// Unknown fields are rejected so a typo in a trigger key cannot silently
// disable a protocol.
func LoadCatalog(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("protocol: open catalog: %w", err)
	}
	defer f.Close()

	return ReadCatalog(f)
}

// ReadCatalog decodes and validates a YAML catalog from r.
func ReadCatalog(r io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("protocol: decode catalog: %w", err)
	}

	return NewRegistry(file.Protocols)
}
