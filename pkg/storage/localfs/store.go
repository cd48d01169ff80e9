// Package localfs implements storage.Store on top of an afero file system.
package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ic2bedrock/texmigrate/pkg/storage"
	"github.com/spf13/afero"
)

// New creates a local file system backed store rooted at dir.
// A nil fs defaults to the OS file system rooted at dir; tests pass an
// afero.NewMemMapFs() and an empty dir.
func New(fs afero.Fs, dir string) storage.Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if dir != "" {
		fs = afero.NewBasePathFs(fs, dir)
	}
	return &localFS{
		fs: fs,
	}
}

type localFS struct {
	fs afero.Fs
}

func (l *localFS) Has(ctx context.Context, key string) (bool, error) {
	fi, err := l.fs.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !fi.IsDir(), nil
}

type localReader struct {
	objectReader io.ReadCloser
}

func (r localReader) Close() error {
	return r.objectReader.Close()
}

func (r localReader) Read(p []byte) (n int, err error) {
	return r.objectReader.Read(p)
}

func (l *localFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	has, err := l.Has(ctx, key)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, storage.ErrNotFound
	}
	t, err := l.fs.Open(key)
	return localReader{
		objectReader: t,
	}, err
}

func (l *localFS) Stat(ctx context.Context, key string) (os.FileInfo, error) {
	fi, err := l.fs.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return fi, nil
}

func (l *localFS) Put(ctx context.Context, key string, source io.Reader) error {
	dir := filepath.Dir(key)
	if dir != "" {
		if err := l.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("ensuring directories for %q: %v", key, err)
		}
	}
	target, err := l.fs.OpenFile(key, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create record for %q: %v", key, err)
	}
	if _, err = storage.PipeIO(target, source); err != nil {
		_ = target.Close()
		return fmt.Errorf("write record for %q: %v", key, err)
	}
	return target.Close()
}

func (l *localFS) Chtimes(ctx context.Context, key string, atime, mtime time.Time) error {
	return l.fs.Chtimes(key, atime, mtime)
}

// Keys walks the whole store and returns the keys of all regular files.
// A store whose root directory does not exist yields no keys rather than an
// error, so callers can treat an absent tree as empty.
func (l *localFS) Keys(ctx context.Context) ([]string, error) {
	const root = "."
	if _, err := l.fs.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var res []string
	e := afero.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root || info.IsDir() {
			return nil
		}
		res = append(res, filepath.ToSlash(path))
		return nil
	})
	if e != nil {
		return nil, e
	}
	return res, nil
}

func (l *localFS) String() string {
	const localfs = "localfs"
	switch fs := l.fs.(type) {
	case *afero.BasePathFs:
		pp, err := fs.RealPath("")
		if err != nil {
			return localfs
		}
		return localfs + "@" + pp
	default:
		return localfs
	}
}
