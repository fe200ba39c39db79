package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/backmassage/stampmatch/internal/stamp"
)

// ErrRootNotFound is returned by [Discover] when the scan root does not exist.
var ErrRootNotFound = errors.New("scan root not found")

// ErrRootNotDir is returned by [Discover] when the scan root is not a directory.
var ErrRootNotDir = errors.New("scan root is not a directory")

// DiscoverOptions controls how [Discover] reacts to filesystem errors below
// the root.
type DiscoverOptions struct {
	// SkipUnreadable skips entries that cannot be read instead of aborting
	// the walk.
	SkipUnreadable bool
	// OnSkip, if set, is called for every skipped entry.
	OnSkip func(path string, err error)
}

// Discover walks root, collects regular files whose basename contains a
// stamp shape (see [stamp.HasStamp]), and returns the paths sorted
// lexicographically. A missing or unreadable root is always an error.
// Symlinks are not followed.
func Discover(ctx context.Context, root string, opts DiscoverOptions) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			// The root itself failing to list is never skippable.
			if path == root || !opts.SkipUnreadable {
				return err
			}
			if opts.OnSkip != nil {
				opts.OnSkip(path, err)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if stamp.HasStamp(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
