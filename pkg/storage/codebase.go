package storage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
)

// SkipDirs are never descended into during discovery.
var SkipDirs = map[string]bool{
	".git": true, "node_modules": true, "dist": true, "build": true,
	"coverage": true, "playwright-report": true, "test-results": true,
	"blob-report": true, ".idea": true, ".vscode": true,
}

// FilesystemSource implements review.FileSource on the local disk.
type FilesystemSource struct{}

func NewFilesystemSource() *FilesystemSource {
	return &FilesystemSource{}
}

// Discover walks root in lexical order and returns the test files it finds.
// A root that is itself a file is returned as the only candidate.
func (s *FilesystemSource) Discover(ctx context.Context, root string, opts review.DiscoverOptions) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	filter := NewPatternFilter(TestFilePatterns(opts.IncludeJS), opts.Exclude)

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if path != root && SkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if filter.Matches(rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}

// Read loads the file content as text.
func (s *FilesystemSource) Read(path string) (string, error) {
	// #nosec G304 -- paths come from Discover or the user's own arguments
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// SkipDir reports whether a directory is excluded from discovery and watching.
func SkipDir(name string) bool {
	return SkipDirs[name] || (strings.HasPrefix(name, ".") && name != "." && name != "..")
}
