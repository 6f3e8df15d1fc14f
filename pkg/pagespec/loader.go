package pagespec

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store indexes loaded pages by name.
type Store struct {
	pages map[string]Page
}

// LoadFS walks the provided filesystem and parses JSON/YAML page files.
// When fsys is nil or no page files are present, the returned store is
// empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{pages: make(map[string]Page)}
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
		if !isPageFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("pagespec: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, page := range doc.Pages {
			id := strings.TrimSpace(name)
			if id == "" {
				return fmt.Errorf("pagespec: file %s defines an empty page name", path)
			}
			if _, exists := store.pages[id]; exists {
				return fmt.Errorf("pagespec: duplicate page %q (file %s)", id, path)
			}
			store.pages[id] = page
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// LoadBytes parses a single page document from raw bytes.
func LoadBytes(data []byte) (*Store, error) {
	doc, err := parseDocument(data, "inline")
	if err != nil {
		return nil, err
	}
	store := &Store{pages: make(map[string]Page, len(doc.Pages))}
	for name, page := range doc.Pages {
		id := strings.TrimSpace(name)
		if id == "" {
			return nil, fmt.Errorf("pagespec: document defines an empty page name")
		}
		store.pages[id] = page
	}
	return store, nil
}

// Page returns the page registered under name.
func (s *Store) Page(name string) (Page, bool) {
	if s == nil {
		return Page{}, false
	}
	page, ok := s.pages[name]
	return page, ok
}

// Pages returns the sorted page names.
func (s *Store) Pages() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.pages))
	for name := range s.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any pages.
func (s *Store) Empty() bool {
	return s == nil || len(s.pages) == 0
}

func isPageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func parseDocument(data []byte, source string) (Document, error) {
	var doc Document
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("pagespec: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return Document{}, fmt.Errorf("pagespec: parse %s: invalid JSON or YAML", source)
}
