package migrate

import (
	"bytes"
	"context"

	"go.uber.org/zap"

	"github.com/ic2bedrock/texmigrate/pkg/errors"
	"github.com/ic2bedrock/texmigrate/pkg/storage"
)

var (
	// ErrResolve reports a store failure while materializing an entry.
	ErrResolve = errors.New("resolving mapping entry")
)

// Resolver materializes curated mapping entries from a source store into a
// destination store. It never deletes and never overwrites: an existing
// destination always wins, which makes repeated runs safe.
type Resolver struct {
	src, dst         storage.Store
	allowPlaceholder bool
	placeholder      []byte
	l                *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithoutPlaceholders disables placeholder synthesis for absent sources.
func WithoutPlaceholders() Option {
	return func(r *Resolver) {
		r.allowPlaceholder = false
	}
}

// WithPlaceholderBytes overrides the asset written for absent sources.
func WithPlaceholderBytes(b []byte) Option {
	return func(r *Resolver) {
		r.placeholder = b
	}
}

// WithLogger sets the resolver logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		r.l = l
	}
}

// NewResolver builds a Resolver copying from src to dst. Placeholder
// synthesis is enabled by default.
func NewResolver(src, dst storage.Store, opts ...Option) *Resolver {
	r := &Resolver{
		src:              src,
		dst:              dst,
		allowPlaceholder: true,
		placeholder:      PlaceholderPNG(),
		l:                zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve materializes a single entry. The first matching rule wins:
//
//  1. destination already exists: skip, protecting manual edits and prior runs
//  2. source exists: copy it, preserving the source timestamp
//  3. placeholders enabled: write the placeholder asset
//  4. otherwise: record the entry as missing
//
// Missing sources are reportable conditions, not errors; the returned error
// is reserved for store failures.
func (r *Resolver) Resolve(ctx context.Context, entry Entry) (Outcome, error) {
	has, err := r.dst.Has(ctx, entry.Destination)
	if err != nil {
		return OutcomeMissing, ErrResolve.Wrap(err)
	}
	if has {
		r.l.Debug("destination exists, skipping", zap.String("destination", entry.Destination))
		return OutcomeSkipped, nil
	}

	has, err = r.src.Has(ctx, entry.Source)
	if err != nil {
		return OutcomeMissing, ErrResolve.Wrap(err)
	}
	if has {
		if err = storage.Copy(ctx, r.src, entry.Source, r.dst, entry.Destination); err != nil {
			return OutcomeMissing, ErrResolve.Wrap(err)
		}
		r.l.Info("copied texture",
			zap.String("source", entry.Source),
			zap.String("destination", entry.Destination),
			zap.String("label", entry.Label),
		)
		return OutcomeCopied, nil
	}

	if r.allowPlaceholder {
		if err = r.dst.Put(ctx, entry.Destination, bytes.NewReader(r.placeholder)); err != nil {
			return OutcomeMissing, ErrResolve.Wrap(err)
		}
		r.l.Info("source absent, wrote placeholder",
			zap.String("source", entry.Source),
			zap.String("destination", entry.Destination),
		)
		return OutcomePlaceholder, nil
	}

	r.l.Warn("source absent, no placeholder written", zap.String("source", entry.Source))
	return OutcomeMissing, nil
}

// ResolveAll materializes every entry in order and aggregates outcomes.
// Processing stops at the first store failure.
func (r *Resolver) ResolveAll(ctx context.Context, entries []Entry) (Counts, error) {
	var counts Counts
	for _, entry := range entries {
		outcome, err := r.Resolve(ctx, entry)
		if err != nil {
			return counts, err
		}
		counts.Add(outcome)
	}
	return counts, nil
}
