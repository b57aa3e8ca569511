// Package scanner discovers the files an analysis run looks at.
package scanner

import "fmt"

// Options controls which files Discover returns.
type Options struct {
	// MaxFiles caps the result; files past the cap are dropped in
	// enumeration order. Zero or less means no cap.
	MaxFiles int

	// IgnorePatterns are doublestar globs matched against slash-separated
	// paths relative to the root. Patterns without a slash also match the
	// base name anywhere in the tree.
	IgnorePatterns []string
}

// DiscoveryError reports a root that is missing, not a directory, or
// unreadable, or an ignore pattern that cannot be compiled.
type DiscoveryError struct {
	Root string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovering files under %s: %v", e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// includeExtensions are the source, config and text files worth analyzing.
var includeExtensions = map[string]bool{
	// code
	".go": true, ".js": true, ".jsx": true, ".mjs": true, ".cjs": true,
	".ts": true, ".tsx": true, ".py": true, ".rb": true, ".rs": true,
	".java": true, ".kt": true, ".swift": true, ".c": true, ".h": true,
	".cpp": true, ".cc": true, ".hpp": true, ".cs": true, ".php": true,
	".scala": true, ".sh": true, ".sql": true, ".vue": true, ".svelte": true,
	// config
	".json": true, ".yaml": true, ".yml": true, ".toml": true, ".ini": true,
	".env": true, ".xml": true,
	// docs
	".md": true, ".mdx": true, ".txt": true, ".rst": true,
}

// includeNames are extensionless files that are still of interest.
var includeNames = map[string]bool{
	"Dockerfile":  true,
	"Makefile":    true,
	"Jenkinsfile": true,
}
