package connectors

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type FileMeta struct {
	Path     string
	Size     int64
	Modified time.Time
}

type DiscoveryOptions struct {
	Recursive      bool
	MinSize        int64
	MaxSize        int64
	ModifiedAfter  time.Time
	ModifiedBefore time.Time
}

// DiscoverFiles walks root collecting files whose extension matches ext.
// Files are returned in walk order. Zero matches is not an error; the
// caller decides what an empty batch means.
func DiscoverFiles(root string, ext string, options DiscoveryOptions) ([]FileMeta, error) {
	if root == "" {
		return nil, fmt.Errorf("root directory cannot be empty")
	}

	stat, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("directory does not exist: %s", root)
	}
	if err != nil {
		return nil, fmt.Errorf("error accessing directory %s: %w", root, err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return nil, fmt.Errorf("file extension cannot be empty")
	}

	var files []FileMeta
	walkFunc := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		// Skip subdirectories if not recursive
		if d.IsDir() && path != root && !options.Recursive {
			return filepath.SkipDir
		}

		// Check file extension match
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), "."+ext) {
			info, err := d.Info()
			if err != nil {
				return fmt.Errorf("error getting file info for %s: %w", path, err)
			}

			// Apply filters
			if options.MinSize > 0 && info.Size() < options.MinSize {
				return nil
			}
			if options.MaxSize > 0 && info.Size() > options.MaxSize {
				return nil
			}
			if !options.ModifiedAfter.IsZero() && info.ModTime().Before(options.ModifiedAfter) {
				return nil
			}
			if !options.ModifiedBefore.IsZero() && info.ModTime().After(options.ModifiedBefore) {
				return nil
			}

			files = append(files, FileMeta{
				Path:     path,
				Size:     info.Size(),
				Modified: info.ModTime(),
			})
		}

		return nil
	}

	if err := filepath.WalkDir(root, walkFunc); err != nil {
		return nil, fmt.Errorf("directory walk error: %w", err)
	}

	return files, nil
}
