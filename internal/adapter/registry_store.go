package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"

	m "github.com/mouse-blink/party/internal/model"
)

// RegistryStore decodes registry payloads and persists local registries.
type RegistryStore interface {
	Decode(data []byte) (m.Registry, error)
	Encode(v any) ([]byte, error)
	Load(path m.Path) (m.Registry, error)
	Save(path m.Path, registry m.Registry) error
}

type registryStore struct {
	fs SourceFSAdapter
}

// NewRegistryStore constructs a JSON RegistryStore.
func NewRegistryStore(fs SourceFSAdapter) RegistryStore {
	return &registryStore{fs: fs}
}

func (rs *registryStore) Decode(data []byte) (m.Registry, error) {
	var registry m.Registry

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&registry); err != nil {
		return m.Registry{}, fmt.Errorf("decode registry: %w", err)
	}

	return registry, nil
}

// Encode renders a registry, a package or any registry fragment as indented
// JSON.
func (rs *registryStore) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode registry: %w", err)
	}

	return buf.Bytes(), nil
}

func (rs *registryStore) Load(path m.Path) (m.Registry, error) {
	data, err := rs.fs.ReadFile(path)
	if err != nil {
		return m.Registry{}, err
	}

	return rs.Decode(data)
}

func (rs *registryStore) Save(path m.Path, registry m.Registry) error {
	data, err := rs.Encode(registry)
	if err != nil {
		return err
	}

	return rs.fs.WriteFile(path, data, 0o600)
}
