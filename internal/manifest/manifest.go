// Package manifest loads TOML descriptions of alternative sets for the
// CLI tools.
package manifest

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/BurntSushi/toml"

	"vartree/altset"
)

var (
	// ErrNoAlternatives indicates a manifest without [[alternative]] entries.
	ErrNoAlternatives = errors.New("manifest declares no alternatives")
)

// Manifest describes one alternative set.
type Manifest struct {
	Set          SetSpec           `toml:"set"`
	Alternatives []AlternativeSpec `toml:"alternative"`
}

// SetSpec is the [set] section.
type SetSpec struct {
	Name string `toml:"name"`
}

// AlternativeSpec is one [[alternative]] entry.
type AlternativeSpec struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(m.Alternatives) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoAlternatives)
	}
	return &m, nil
}

// Parse decodes a manifest from TOML source text.
func Parse(data string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.Decode(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Alternatives) == 0 {
		return nil, ErrNoAlternatives
	}
	return &m, nil
}

var kindTypes = map[string]reflect.Type{
	"bool":    reflect.TypeOf(false),
	"int8":    reflect.TypeOf(int8(0)),
	"int16":   reflect.TypeOf(int16(0)),
	"int32":   reflect.TypeOf(int32(0)),
	"int64":   reflect.TypeOf(int64(0)),
	"uint8":   reflect.TypeOf(uint8(0)),
	"uint16":  reflect.TypeOf(uint16(0)),
	"uint32":  reflect.TypeOf(uint32(0)),
	"uint64":  reflect.TypeOf(uint64(0)),
	"float32": reflect.TypeOf(float32(0)),
	"float64": reflect.TypeOf(float64(0)),
	"string":  reflect.TypeOf(""),
	"bytes":   reflect.TypeOf([]byte(nil)),
	"any":     reflect.TypeOf((*any)(nil)).Elem(),
}

// Build converts the manifest entries into alternative descriptors.
func (m *Manifest) Build() ([]altset.Alternative, error) {
	if m == nil {
		return nil, ErrNoAlternatives
	}
	alts := make([]altset.Alternative, 0, len(m.Alternatives))
	for i, spec := range m.Alternatives {
		t, ok := kindTypes[spec.Kind]
		if !ok {
			return nil, fmt.Errorf("alternative #%d (%s): unknown kind %q", i, spec.Name, spec.Kind)
		}
		name := spec.Name
		if name == "" {
			name = spec.Kind
		}
		alts = append(alts, altset.Alternative{Name: name, Type: t})
	}
	return alts, nil
}
