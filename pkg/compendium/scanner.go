package compendium

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Scanner walks a directory tree and produces the file inventory.
type Scanner struct {
	logger *zap.Logger
}

// NewScanner returns a Scanner. A nil logger is replaced with a no-op one.
func NewScanner(logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{logger: logger}
}

// Scan walks root and returns the inventory of text files that survive the
// configured filters, sorted ascending by relative path. Every entry starts
// out selected. Per-entry access errors are logged and the offending path
// excluded; only a missing or non-directory root is a hard error.
func (s *Scanner) Scan(root string, cfg ScanConfig) (Inventory, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scan root %s: %w", root, err)
	}
	info, err := os.Stat(rootAbs)
	if err != nil {
		return nil, fmt.Errorf("scan root %s is not accessible: %w", rootAbs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", rootAbs)
	}

	var inv Inventory
	walkErr := filepath.WalkDir(rootAbs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("Skipping inaccessible path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(rootAbs, path)
		if relErr != nil {
			s.logger.Warn("Skipping path without relative form", zap.String("path", path), zap.Error(relErr))
			return nil
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			rel = ""
		}

		if d.IsDir() {
			if rel == "" {
				return nil // root itself
			}
			if cfg.IgnoredDirs[d.Name()] {
				return fs.SkipDir
			}
			if folderMatchesAny(rel, cfg.ExcludedFolders) {
				s.logger.Debug("Pruning excluded folder", zap.String("folder", rel))
				return fs.SkipDir
			}
			if len(cfg.IncludedFolders) > 0 && !dirRelevantToIncludes(rel, cfg.IncludedFolders) {
				s.logger.Debug("Pruning folder outside include set", zap.String("folder", rel))
				return fs.SkipDir
			}
			if cfg.Ignore != nil && cfg.Ignore.MatchesPath(rel+"/") {
				s.logger.Debug("Pruning ignored folder", zap.String("folder", rel))
				return fs.SkipDir
			}
			return nil
		}

		if len(cfg.IncludedFolders) > 0 && !folderMatchesAny(parentDir(rel), cfg.IncludedFolders) {
			return nil
		}
		if cfg.Ignore != nil && cfg.Ignore.MatchesPath(rel) {
			return nil
		}
		if hasIgnoredExtension(d.Name(), cfg.IgnoredExtensions) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			s.logger.Warn("Skipping unstatable file", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !fi.Mode().IsRegular() {
			return nil
		}
		if fi.Size() > cfg.MaxFileSize {
			s.logger.Debug("Skipping oversized file",
				zap.String("path", rel),
				zap.Int64("sizeBytes", fi.Size()),
				zap.Int64("maxBytes", cfg.MaxFileSize))
			return nil
		}
		if !IsTextFile(path) {
			s.logger.Debug("Skipping binary file", zap.String("path", rel))
			return nil
		}

		inv = append(inv, &FileEntry{Path: rel, Size: fi.Size(), Selected: true})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", rootAbs, walkErr)
	}

	sort.Slice(inv, func(i, j int) bool { return inv[i].Path < inv[j].Path })

	s.logger.Info("Scan complete",
		zap.String("root", rootAbs),
		zap.Int("files", len(inv)))
	return inv, nil
}

// folderMatchesAny reports whether rel equals one of the configured folders
// or lives underneath one. Matching is on whole path segments, so "src2"
// never matches a filter of "src".
func folderMatchesAny(rel string, folders []string) bool {
	for _, folder := range folders {
		folder = strings.Trim(filepath.ToSlash(folder), "/")
		if folder == "" {
			continue
		}
		if rel == folder || strings.HasPrefix(rel, folder+"/") {
			return true
		}
	}
	return false
}

// dirRelevantToIncludes reports whether a directory must still be visited
// when an include set is active: either it is inside an included folder, or
// it is an ancestor of one (the walk has to pass through ancestors to reach
// the included subtree).
func dirRelevantToIncludes(rel string, folders []string) bool {
	if folderMatchesAny(rel, folders) {
		return true
	}
	for _, folder := range folders {
		folder = strings.Trim(filepath.ToSlash(folder), "/")
		if folder == "" {
			continue
		}
		if strings.HasPrefix(folder, rel+"/") {
			return true
		}
	}
	return false
}

// parentDir returns the directory component of a slash-normalized relative
// path, empty for root-level files.
func parentDir(rel string) string {
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		return rel[:i]
	}
	return ""
}

// hasIgnoredExtension checks the file's extension, and its compound
// two-part extension (".min.js" style), against the ignore set.
func hasIgnoredExtension(name string, ignored map[string]bool) bool {
	lower := strings.ToLower(name)
	ext := filepath.Ext(lower)
	if ext == "" {
		return false
	}
	if ignored[ext] {
		return true
	}
	stem := strings.TrimSuffix(lower, ext)
	if prev := filepath.Ext(stem); prev != "" && ignored[prev+ext] {
		return true
	}
	return false
}
