// Package mirror recursively copies a source texture tree into a parallel
// destination tree, skipping anything that already exists. It is the
// catch-all pass run after the curated mapping table has been honored.
package mirror

import (
	"context"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ic2bedrock/texmigrate/pkg/errors"
	"github.com/ic2bedrock/texmigrate/pkg/storage"
)

// ErrSync reports a store failure during the bulk pass.
var ErrSync = errors.New("bulk texture sync")

// Counts reports what one Sync pass did.
type Counts struct {
	Copied  int
	Skipped int
}

type syncOpts struct {
	ext   string
	route func(key string) string
	l     *zap.Logger
}

// Option configures a Sync pass.
type Option func(*syncOpts)

// WithExtension restricts the pass to files with the given extension
// (including the dot). The default is ".png".
func WithExtension(ext string) Option {
	return func(o *syncOpts) {
		o.ext = ext
	}
}

// WithRouter maps each source key to its destination key, replacing the
// default identity mapping. Routing only changes where a file lands; the
// destination-exists skip rule still applies at the routed key.
func WithRouter(route func(key string) string) Option {
	return func(o *syncOpts) {
		o.route = route
	}
}

// WithLogger sets the pass logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *syncOpts) {
		o.l = l
	}
}

// Sync mirrors every matching file under src into dst, at the same relative
// path unless a router says otherwise.
// Existing destinations are counted as skipped and left untouched;
// there is no placeholder fallback here. A source tree that does not exist
// is treated as empty and yields zero counts.
//
// Keys are sorted before copying so that runs and their logs are
// deterministic regardless of traversal order.
func Sync(ctx context.Context, src, dst storage.Store, opts ...Option) (Counts, error) {
	o := syncOpts{ext: ".png", l: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.route == nil {
		o.route = func(key string) string { return key }
	}

	keys, err := src.Keys(ctx)
	if err != nil {
		return Counts{}, ErrSync.Wrap(err)
	}
	sort.Strings(keys)

	var counts Counts
	for _, key := range keys {
		if o.ext != "" && !strings.EqualFold(path.Ext(key), o.ext) {
			continue
		}
		dest := o.route(key)
		has, err := dst.Has(ctx, dest)
		if err != nil {
			return counts, ErrSync.Wrap(err)
		}
		if has {
			counts.Skipped++
			continue
		}
		if err = storage.Copy(ctx, src, key, dst, dest); err != nil {
			return counts, ErrSync.Wrap(err)
		}
		o.l.Debug("mirrored texture", zap.String("key", key), zap.String("destination", dest))
		counts.Copied++
	}
	return counts, nil
}
