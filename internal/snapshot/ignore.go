package snapshot

import "strings"

// skipNames are directory/file names never copied into a snapshot: VCS
// metadata, per-language dependency and build trees, and tool caches. A
// test run needs none of them and node_modules/target alone can dwarf the
// sources.
var skipNames = map[string]bool{
	".git":                true,
	".hg":                 true,
	".svn":                true,
	"node_modules":        true,
	"__pycache__":         true,
	"target":              true,
	"dist":                true,
	"build":               true,
	".venv":               true,
	"venv":                true,
	".pytest_cache":       true,
	".mypy_cache":         true,
	".tox":                true,
	".ruff_cache":         true,
	".next":               true,
	".nuxt":               true,
	".mutator-state.json": true,
}

// skipSuffixes extends the named skip set to a suffix class: compiled
// Python bytecode and leftover in-place backup files never belong in a
// fresh snapshot.
var skipSuffixes = []string{".mutator.bak", ".pyc", ".pyo"}

// shouldSkipEntry reports whether a directory entry named name should be
// excluded from the snapshot copy.
func shouldSkipEntry(name string) bool {
	if skipNames[name] {
		return true
	}

	for _, suffix := range skipSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return false
}

// markerFiles identify a project root.
var markerFiles = []string{".git", "Cargo.toml", "package.json", "pyproject.toml"}
