package storage

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/ic2bedrock/texmigrate/pkg/errors"
)

type errString string

func (e errString) Error() string { return string(e) }

const (
	ErrNotFound     errString = "not found"
	ErrNotSupported errString = "not supported"
	ErrExists       errString = "exists already"
)

// Store implementations know how to read and write entries in a file
// system-like key space. Keys are slash-separated relative paths.
//
// Implementations of this interface are assumed to be fairly simple:
// the local file system behind a configurable root is the typical backend,
// an in-memory file system is used by tests.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Stat(context.Context, string) (os.FileInfo, error)
	Put(context.Context, string, io.Reader) error
	Chtimes(context.Context, string, time.Time, time.Time) error
	Keys(context.Context) ([]string, error)
}

// PipeIO moves bytes from reader to writer.
func PipeIO(writer io.Writer, reader io.Reader) (n int64, err error) {
	return io.Copy(writer, reader)
}

// Copy streams the object at source in sStore to destination in dStore,
// then carries the source modification time over to the destination, so a
// copied file keeps its original timestamp where the backend supports it.
func Copy(ctx context.Context, sStore Store, source string, dStore Store, destination string) error {
	reader, err := sStore.Get(ctx, source)
	if err != nil {
		return err
	}
	defer reader.Close()
	if err = dStore.Put(ctx, destination, reader); err != nil {
		return err
	}
	fi, err := sStore.Stat(ctx, source)
	if err != nil {
		return err
	}
	// backends without timestamp support report ErrNotSupported: not fatal
	if err = dStore.Chtimes(ctx, destination, time.Now(), fi.ModTime()); err != nil && !errors.Is(err, ErrNotSupported) {
		return err
	}
	return nil
}
