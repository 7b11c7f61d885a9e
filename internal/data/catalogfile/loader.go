// Package catalogfile loads provider and review collections from YAML
// catalog documents on disk and watches them for changes.
package catalogfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/parlor/internal/core/catalog"
)

// ErrNoCatalog is returned when no catalog files match the configured globs.
var ErrNoCatalog = errors.New("no catalog files found")

// Catalog is the root structure of a catalog document. Multiple documents
// merge in path order; both collections preserve file order because order
// is presentation order.
type Catalog struct {
	Providers []catalog.Provider `yaml:"providers"`
	Reviews   []catalog.Review   `yaml:"reviews"`
}

// LoadFile reads a single catalog document.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	return c, nil
}

// Resolve expands the configured glob patterns relative to root and returns
// the matched file paths in sorted order.
func Resolve(root string, globs []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, g := range globs {
		pattern := g
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(root, g)
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve glob %q: %w", g, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// Load resolves the globs under root and merges every matched document.
// Returns the merged catalog and the matched paths (for watching).
func Load(root string, globs []string) (Catalog, []string, error) {
	paths, err := Resolve(root, globs)
	if err != nil {
		return Catalog{}, nil, err
	}
	if len(paths) == 0 {
		return Catalog{}, nil, fmt.Errorf("%w: globs %v under %s", ErrNoCatalog, globs, root)
	}

	var merged Catalog
	for _, p := range paths {
		c, err := LoadFile(p)
		if err != nil {
			return Catalog{}, nil, err
		}
		merged.Providers = append(merged.Providers, c.Providers...)
		merged.Reviews = append(merged.Reviews, c.Reviews...)
	}

	return merged, paths, nil
}
