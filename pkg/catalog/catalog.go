package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Variable declares a template parameter a scaffold entry accepts. Values
// supplied at generation time overlay the declared default.
type Variable struct {
	Name     string   `json:"name" yaml:"name"`
	Label    string   `json:"label" yaml:"label"`
	Default  string   `json:"default" yaml:"default"`
	Required bool     `json:"required" yaml:"required"`
	Options  []string `json:"options" yaml:"options"`
}

// Entry describes one scaffold in the catalog: where its template lives, the
// default output filename, and the variables it accepts.
type Entry struct {
	ID          string
	Source      string
	Title       string
	Description string
	Template    string
	Output      string
	Icon        string
	Tags        []string
	Variables   []Variable
}

// Store holds the parsed catalog entries together with the filesystem their
// templates load from.
type Store struct {
	fsys    fs.FS
	entries map[string]Entry
}

// LoadFS walks the provided filesystem and parses JSON/YAML catalog manifests.
// Template paths referenced by entries must exist on the same filesystem.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{fsys: fsys, entries: make(map[string]Entry)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isManifestFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		doc, err := parseManifest(data, path)
		if err != nil {
			return err
		}

		for entryID, raw := range doc.Entries {
			id := strings.TrimSpace(entryID)
			if id == "" {
				return fmt.Errorf("catalog: file %s defines an empty entry id", path)
			}
			if _, exists := store.entries[id]; exists {
				return fmt.Errorf("catalog: duplicate entry %q (file %s)", id, path)
			}

			normalised, err := normaliseEntry(raw, id, path, fsys)
			if err != nil {
				return err
			}
			store.entries[id] = normalised
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Entry returns the catalog entry for the supplied id.
func (s *Store) Entry(id string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	entry, ok := s.entries[strings.TrimSpace(id)]
	return entry, ok
}

// Entries returns every catalog entry ordered by id.
func (s *Store) Entries() []Entry {
	if s == nil || len(s.entries) == 0 {
		return nil
	}
	out := make([]Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Empty reports whether the store holds any entries.
func (s *Store) Empty() bool {
	return s == nil || len(s.entries) == 0
}

// FS exposes the filesystem entry templates are loaded from.
func (s *Store) FS() fs.FS {
	if s == nil {
		return nil
	}
	return s.fsys
}

// ReadTemplate returns the raw template source for the supplied entry id.
func (s *Store) ReadTemplate(id string) ([]byte, error) {
	entry, ok := s.Entry(id)
	if !ok {
		return nil, fmt.Errorf("catalog: unknown entry %q", id)
	}
	data, err := fs.ReadFile(s.fsys, entry.Template)
	if err != nil {
		return nil, fmt.Errorf("catalog: read template for %q: %w", id, err)
	}
	return data, nil
}

type manifestFile struct {
	Entries map[string]entryFile `json:"entries" yaml:"entries"`
}

type entryFile struct {
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Template    string     `json:"template" yaml:"template"`
	Output      string     `json:"output" yaml:"output"`
	Icon        string     `json:"icon" yaml:"icon"`
	Tags        []string   `json:"tags" yaml:"tags"`
	Variables   []Variable `json:"variables" yaml:"variables"`
}

func parseManifest(data []byte, source string) (manifestFile, error) {
	var doc manifestFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return manifestFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return manifestFile{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}

func normaliseEntry(raw entryFile, id, source string, fsys fs.FS) (Entry, error) {
	templatePath := strings.TrimSpace(raw.Template)
	if templatePath == "" {
		return Entry{}, fmt.Errorf("catalog: entry %q (file %s) is missing a template path", id, source)
	}
	if _, err := fs.Stat(fsys, templatePath); err != nil {
		return Entry{}, fmt.Errorf("catalog: entry %q (file %s) template %q: %w", id, source, templatePath, err)
	}

	entry := Entry{
		ID:          id,
		Source:      source,
		Title:       strings.TrimSpace(raw.Title),
		Description: strings.TrimSpace(raw.Description),
		Template:    templatePath,
		Output:      strings.TrimSpace(raw.Output),
		Icon:        sanitizeIconMarkup(raw.Icon),
		Tags:        append([]string(nil), raw.Tags...),
		Variables:   make([]Variable, 0, len(raw.Variables)),
	}

	seen := make(map[string]struct{}, len(raw.Variables))
	for idx, variable := range raw.Variables {
		name := strings.TrimSpace(variable.Name)
		if name == "" {
			return Entry{}, fmt.Errorf("catalog: entry %q (file %s) variable at index %d has no name", id, source, idx)
		}
		if _, exists := seen[name]; exists {
			return Entry{}, fmt.Errorf("catalog: entry %q (file %s) declares duplicate variable %q", id, source, name)
		}
		seen[name] = struct{}{}

		variable.Name = name
		variable.Options = append([]string(nil), variable.Options...)
		entry.Variables = append(entry.Variables, variable)
	}

	return entry, nil
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
