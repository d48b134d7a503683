// Package discovery walks application directories and streams the desktop
// entries found in them.
package discovery

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"flauncher/internal/desktop"
	"flauncher/internal/logger"
)

// BufferSize is the capacity of the channel returned by Discover.
const BufferSize = 64

// Discover walks every root in a background goroutine and sends each parsed
// entry on the returned channel, which is closed once all roots have been
// visited or ctx is cancelled. Every call walks the filesystem again.
//
// Files are not visited in any particular order. Unreadable files and
// directories are logged and skipped, descriptors that fail to parse are
// skipped silently.
func Discover(ctx context.Context, roots []string) <-chan desktop.Entry {
	out := make(chan desktop.Entry, BufferSize)

	go func() {
		defer close(out)

		w := &walker{
			ctx:     ctx,
			out:     out,
			visited: make(map[string]struct{}),
		}
		for _, root := range roots {
			if err := w.walk(root); err != nil {
				logger.Debug(ctx, "Discovery stopped: %v", err)
				return
			}
		}
		logger.Debug(ctx, "Discovery finished: %d files read, %d entries found", w.files, w.entries)
	}()

	return out
}

type walker struct {
	ctx context.Context
	out chan<- desktop.Entry

	// visited holds resolved directory paths. A directory reachable through
	// several symlinks is walked once.
	visited map[string]struct{}

	files   int
	entries int
}

// walk visits dir recursively. The only error it returns is the context's.
func (w *walker) walk(dir string) error {
	if real, err := filepath.EvalSymlinks(dir); err == nil {
		if _, seen := w.visited[real]; seen {
			return nil
		}
		w.visited[real] = struct{}{}
		dir = real
	}

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn(w.ctx, "Failed to open '{{_File_}}%s{{|-|}}': %v", path, err)
			return nil
		}
		if err := w.ctx.Err(); err != nil {
			return err
		}

		switch {
		case d.IsDir():
			if path == dir {
				return nil
			}
			if _, seen := w.visited[path]; seen {
				return fs.SkipDir
			}
			w.visited[path] = struct{}{}
			return nil
		case d.Type()&fs.ModeSymlink != 0:
			info, err := os.Stat(path)
			if err != nil {
				logger.Warn(w.ctx, "Failed to follow '{{_File_}}%s{{|-|}}': %v", path, err)
				return nil
			}
			if info.IsDir() {
				return w.walk(path)
			}
			if !info.Mode().IsRegular() {
				return nil
			}
		case !d.Type().IsRegular():
			return nil
		}

		return w.emit(path)
	})
}

// emit parses the file at path and sends its entries.
func (w *walker) emit(path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		logger.Warn(w.ctx, "Failed to read contents from '{{_File_}}%s{{|-|}}': %v", path, err)
		return nil
	}
	w.files++

	entries, err := desktop.ParseAll(string(contents))
	if err != nil {
		logger.Trace(w.ctx, "Skipping '{{_File_}}%s{{|-|}}': %v", path, err)
		return nil
	}

	for _, e := range entries {
		select {
		case w.out <- e:
			w.entries++
		case <-w.ctx.Done():
			return w.ctx.Err()
		}
	}
	return nil
}
