// Package fonts locates TTF/OTF files for the overlay and console text.
package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no font file matches.
var ErrNotFound = errors.New("font not found")

// Exts are the extensions considered font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate base directories for fonts, relative to the
// working directory, so fonts are found from the repo root or cmd/shape-viewer.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	for _, r := range []string{" ", "-", "_"} {
		s = strings.ReplaceAll(s, r, "")
	}
	return s
}

// Resolve turns a configured font into a file path. An existing font file
// path is returned as is; anything else is searched by name under BaseDirs.
func Resolve(nameOrPath string) (string, error) {
	nameOrPath = strings.TrimSpace(nameOrPath)
	if nameOrPath == "" {
		return "", fmt.Errorf("%w: empty name", ErrNotFound)
	}
	if isFont(nameOrPath) {
		if info, err := os.Stat(nameOrPath); err == nil && !info.IsDir() {
			return nameOrPath, nil
		}
	}
	return FindIn(BaseDirs(), strings.TrimSuffix(filepath.Base(nameOrPath), filepath.Ext(nameOrPath)))
}

// FindIn searches dirs for a font file whose path contains search, ignoring
// case, spaces, dashes and underscores ("Inter", "inter regular").
// When several match, a "Regular" face is preferred.
func FindIn(dirs []string, search string) (string, error) {
	norm := normalizeForMatch(search)
	if norm == "" {
		return "", fmt.Errorf("%w: empty name", ErrNotFound)
	}
	var matches []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			return "", fmt.Errorf("fonts: %w", err)
		}
		for _, rel := range list {
			if strings.Contains(normalizeForMatch(rel), norm) {
				matches = append(matches, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNotFound, search)
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
