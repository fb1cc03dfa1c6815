// Package scan discovers plain-text contract files under a directory
// for batch triage.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ContractFile is a discovered contract document.
type ContractFile struct {
	// Path is relative to the scanned root.
	Path string

	// Content is the full text of the file.
	Content string
}

// Options configures a Scan invocation.
type Options struct {
	// Include, when non-empty, restricts the scan to files matching
	// at least one pattern (overrides the default all-.txt scan).
	Include []string

	// Exclude drops files matching any pattern.
	Exclude []string
}

// Scan walks the directory rooted at root, discovers .txt files,
// applies the include/exclude filters, and returns the matches
// sorted: root-level files first, then by path. Hidden directories
// are skipped; unreadable files are skipped rather than aborting
// the scan.
func Scan(root string, opts Options) ([]ContractFile, error) {
	var files []ContractFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		if d.IsDir() {
			if base := d.Name(); strings.HasPrefix(base, ".") && base != "." {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(strings.ToLower(d.Name()), ".txt") {
			return nil
		}
		if !match(rel, opts) {
			return nil
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil //nolint:nilerr
		}

		files = append(files, ContractFile{Path: rel, Content: string(content)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortFiles(files)
	return files, nil
}

// match applies the include/exclude filters to a slash-normalized
// relative path. Include patterns, when present, must match first;
// any exclude match then drops the file.
func match(rel string, opts Options) bool {
	rel = filepath.ToSlash(rel)

	if len(opts.Include) > 0 {
		matched := false
		for _, pattern := range opts.Include {
			if matchGlob(pattern, rel) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, pattern := range opts.Exclude {
		if matchGlob(pattern, rel) {
			return false
		}
	}
	return true
}

// matchGlob matches a relative path against a glob pattern. Supports
// filepath.Match syntax plus double-star prefix patterns like
// "archive/**". A pattern without a separator also matches on the
// base name, so "draft.txt" matches any draft.txt in the tree.
func matchGlob(pattern, rel string) bool {
	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		return rel == prefix || strings.HasPrefix(rel, prefix+"/")
	}

	matched, err := filepath.Match(pattern, rel)
	if err != nil {
		return false
	}
	if matched {
		return true
	}

	if !strings.Contains(pattern, "/") {
		matched, err = filepath.Match(pattern, filepath.Base(rel))
		if err != nil {
			return false
		}
		return matched
	}

	return false
}

// sortFiles sorts in place: root-level files before nested ones,
// then by path. Insertion sort; batch directories are small.
func sortFiles(files []ContractFile) {
	depth := func(p string) int {
		if filepath.Dir(p) == "." {
			return 0
		}
		return 1
	}

	for i := 1; i < len(files); i++ {
		key := files[i]
		j := i - 1
		for j >= 0 && (depth(files[j].Path) > depth(key.Path) ||
			(depth(files[j].Path) == depth(key.Path) && files[j].Path > key.Path)) {
			files[j+1] = files[j]
			j--
		}
		files[j+1] = key
	}
}
