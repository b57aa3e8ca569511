package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover walks root in lexical order and returns the paths of files worth
// analyzing, joined onto root. Files matching any ignore pattern are left
// out, and the result is cut at opts.MaxFiles entries. Subdirectories that
// cannot be read are skipped silently; only a bad root is an error.
func Discover(root string, opts Options) ([]string, error) {
	if err := ValidatePatterns(opts.IgnorePatterns); err != nil {
		return nil, &DiscoveryError{Root: root, Err: err}
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, &DiscoveryError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &DiscoveryError{Root: root, Err: errors.New("not a directory")}
	}

	// WalkDir does not follow a symlinked root, so walk its target and
	// report paths under root as given.
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, &DiscoveryError{Root: root, Err: err}
	}

	var files []string
	err = filepath.WalkDir(walkRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == walkRoot {
				return err
			}
			// Permission denied and friends below the root are skipped.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if p == walkRoot {
			return nil
		}

		relOS, err := filepath.Rel(walkRoot, p)
		if err != nil {
			return nil
		}
		rel := filepath.ToSlash(relOS)

		if d.IsDir() {
			if ignored(rel, opts.IgnorePatterns) {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !included(d.Name()) || ignored(rel, opts.IgnorePatterns) {
			return nil
		}

		files = append(files, filepath.Join(root, relOS))
		if opts.MaxFiles > 0 && len(files) >= opts.MaxFiles {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, &DiscoveryError{Root: root, Err: err}
	}

	return files, nil
}

// ValidatePatterns returns an error naming the first malformed glob.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid ignore pattern %q", p)
		}
	}
	return nil
}

// included reports whether a file name is one of the fixed include types.
func included(name string) bool {
	if includeNames[name] {
		return true
	}
	return includeExtensions[strings.ToLower(filepath.Ext(name))]
}

// ignored reports whether a slash-separated relative path matches any
// pattern. Slash-free patterns are also tried against the base name.
func ignored(rel string, patterns []string) bool {
	base := path.Base(rel)
	for _, p := range patterns {
		if match(p, rel) {
			return true
		}
		if !strings.Contains(p, "/") && match(p, base) {
			return true
		}
	}
	return false
}

func match(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}
