package labels

import (
	"context"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
)

// Source produces a label catalog. Loading is context-aware because file
// sources block on I/O.
type Source interface {
	Load(ctx context.Context) (map[string]string, error)
}

// Load merges the catalogs produced by the sources in order. Later sources
// win on conflicting keys.
func Load(ctx context.Context, sources ...Source) (map[string]string, error) {
	out := make(map[string]string)
	for _, src := range sources {
		catalog, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		maps.Copy(out, catalog)
	}
	return out, nil
}

// Map is an in-memory source.
type Map map[string]string

func (m Map) Load(context.Context) (map[string]string, error) {
	return maps.Clone(m), nil
}

// File loads a single YAML or JSON catalog; the parser is picked by file
// extension.
func File(path string) Source {
	return fileSource{path: path}
}

type fileSource struct {
	path string
}

func (s fileSource) Load(ctx context.Context) (map[string]string, error) {
	content, err := readWithContext(ctx, func() ([]byte, error) {
		return os.ReadFile(s.path)
	})
	if err != nil {
		return nil, err
	}
	return parseCatalog(filepath.Ext(s.path), content)
}

// Dir loads every supported file in a directory, merged in name order.
func Dir(path string) Source {
	return dirSource{path: path}
}

type dirSource struct {
	path string
}

func (s dirSource) Load(ctx context.Context) (map[string]string, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, errors.Join(ErrDirRead, err)
	}
	return loadEntries(ctx, entries, func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(s.path, name))
	})
}

// FS loads every supported file under dir in fsys. Works with embed.FS.
func FS(fsys fs.FS, dir string) Source {
	return fsSource{fsys: fsys, dir: dir}
}

type fsSource struct {
	fsys fs.FS
	dir  string
}

func (s fsSource) Load(ctx context.Context) (map[string]string, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, errors.Join(ErrDirRead, err)
	}
	return loadEntries(ctx, entries, func(name string) ([]byte, error) {
		return fs.ReadFile(s.fsys, filepath.Join(s.dir, name))
	})
}

func loadEntries(ctx context.Context, entries []os.DirEntry, read func(name string) ([]byte, error)) (map[string]string, error) {
	out := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !supportedExtension(filepath.Ext(entry.Name())) {
			continue
		}
		content, err := readWithContext(ctx, func() ([]byte, error) {
			return read(entry.Name())
		})
		if err != nil {
			return nil, err
		}
		catalog, err := parseCatalog(filepath.Ext(entry.Name()), content)
		if err != nil {
			return nil, err
		}
		maps.Copy(out, catalog)
	}
	return out, nil
}

// readWithContext runs a blocking read in a goroutine so callers can abandon
// it on context cancellation.
func readWithContext(ctx context.Context, read func() ([]byte, error)) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = read()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFileRead, readErr)
	}
	return content, nil
}
