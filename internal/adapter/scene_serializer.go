package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	m "github.com/mouse-blink/party/internal/model"
)

// SceneSerializer extracts and rewrites the script references of a scene.
type SceneSerializer interface {
	// GetScripts returns the declared script references in document order.
	GetScripts(path m.Path) ([]string, error)
	Deserialize(path m.Path) (*SceneDocument, error)
	Serialize(doc *SceneDocument, path m.Path) error
}

// ScriptListSerializer reads and writes .cslist bundles.
type ScriptListSerializer interface {
	GetScripts(path m.Path) ([]string, error)
	Serialize(refs []string, path m.Path) error
}

// SceneDocument is a decoded VaM scene. Fields the serializer does not know
// about are kept as-is so rewriting a scene only touches plugin paths.
type SceneDocument struct {
	root map[string]any
}

// PluginRef points at one plugin entry inside a scene document.
type PluginRef struct {
	plugins map[string]any
	key     string
}

// Path returns the referenced script path.
func (p PluginRef) Path() string {
	s, _ := p.plugins[p.key].(string)
	return s
}

// SetPath rewrites the referenced script path.
func (p PluginRef) SetPath(path string) {
	p.plugins[p.key] = path
}

// Plugins returns every plugin reference, in atom order then plugin index
// order.
func (d *SceneDocument) Plugins() []PluginRef {
	var refs []PluginRef

	atoms, _ := d.root["atoms"].([]any)
	for _, rawAtom := range atoms {
		atom, ok := rawAtom.(map[string]any)
		if !ok {
			continue
		}

		storables, _ := atom["storables"].([]any)
		for _, rawStorable := range storables {
			storable, ok := rawStorable.(map[string]any)
			if !ok {
				continue
			}

			plugins, ok := storable["plugins"].(map[string]any)
			if !ok {
				continue
			}

			for _, key := range sortedPluginKeys(plugins) {
				if _, isString := plugins[key].(string); !isString {
					continue
				}

				refs = append(refs, PluginRef{plugins: plugins, key: key})
			}
		}
	}

	return refs
}

// sortedPluginKeys orders "plugin#N" keys by N, other keys alphabetically
// after them.
func sortedPluginKeys(plugins map[string]any) []string {
	keys := make([]string, 0, len(plugins))
	for k := range plugins {
		keys = append(keys, k)
	}

	index := func(key string) int {
		_, suffix, found := strings.Cut(key, "#")
		if !found {
			return -1
		}

		n, err := strconv.Atoi(suffix)
		if err != nil {
			return -1
		}

		return n
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := index(keys[i]), index(keys[j])
		if a >= 0 && b >= 0 && a != b {
			return a < b
		}

		if (a >= 0) != (b >= 0) {
			return a >= 0
		}

		return keys[i] < keys[j]
	})

	return keys
}

// JSONSceneSerializer reads VaM scenes through a SourceFSAdapter.
type JSONSceneSerializer struct {
	fs SourceFSAdapter
}

// NewJSONSceneSerializer constructs a JSONSceneSerializer.
func NewJSONSceneSerializer(fs SourceFSAdapter) *JSONSceneSerializer {
	return &JSONSceneSerializer{fs: fs}
}

// GetScripts returns the plugin paths declared by the scene.
func (s *JSONSceneSerializer) GetScripts(path m.Path) ([]string, error) {
	doc, err := s.Deserialize(path)
	if err != nil {
		return nil, err
	}

	plugins := doc.Plugins()
	refs := make([]string, 0, len(plugins))

	for _, p := range plugins {
		refs = append(refs, p.Path())
	}

	return refs, nil
}

// Deserialize decodes the scene at path.
func (s *JSONSceneSerializer) Deserialize(path m.Path) (*SceneDocument, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	root := map[string]any{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid scene json: %w", err)
	}

	return &SceneDocument{root: root}, nil
}

// Serialize writes the scene back to path.
func (s *JSONSceneSerializer) Serialize(doc *SceneDocument, path m.Path) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "   ")

	if err := enc.Encode(doc.root); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}

	return s.fs.WriteFile(path, buf.Bytes(), 0o600)
}

// TextScriptListSerializer reads .cslist files: one reference per line.
type TextScriptListSerializer struct {
	fs SourceFSAdapter
}

// NewTextScriptListSerializer constructs a TextScriptListSerializer.
func NewTextScriptListSerializer(fs SourceFSAdapter) *TextScriptListSerializer {
	return &TextScriptListSerializer{fs: fs}
}

// GetScripts returns the non-blank lines of the list, trimmed.
func (s *TextScriptListSerializer) GetScripts(path m.Path) ([]string, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var refs []string

	for _, line := range strings.FieldsFunc(string(data), isLineBreak) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		refs = append(refs, line)
	}

	return refs, nil
}

// Serialize writes refs to path, one per line.
func (s *TextScriptListSerializer) Serialize(refs []string, path m.Path) error {
	content := strings.Join(refs, "\r\n")
	if len(refs) > 0 {
		content += "\r\n"
	}

	return s.fs.WriteFile(path, []byte(content), 0o600)
}

func isLineBreak(r rune) bool {
	return r == '\r' || r == '\n'
}
