package migrate

import (
	"context"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ic2bedrock/texmigrate/pkg/storage"
)

// Sweep copies every file under Dir whose base name contains one of the
// Keywords (case-sensitive substring match) to DestPrefix/<base name> in the
// destination store. The sweep follows the destination-exists skip rule and
// never synthesizes placeholders; it exists to pick up texture variants the
// curated table does not enumerate, such as the _active machine faces.
type Sweep struct {
	Dir        string
	DestPrefix string
	Keywords   []string
}

// MachineSweep covers the basic processing machines: any texture in the
// machine directory naming one of them is carried over under blocks/machine.
func MachineSweep() Sweep {
	return Sweep{
		Dir:        "blocks/machine/processing/basic",
		DestPrefix: "blocks/machine",
		Keywords:   []string{"macerator", "compressor", "extractor", "recycler"},
	}
}

// Run executes the sweep from src to dst.
func (s Sweep) Run(ctx context.Context, src, dst storage.Store, l *zap.Logger) (Counts, error) {
	if l == nil {
		l = zap.NewNop()
	}
	keys, err := src.Keys(ctx)
	if err != nil {
		return Counts{}, ErrResolve.Wrap(err)
	}
	sort.Strings(keys)

	dir := strings.TrimSuffix(s.Dir, "/")
	var counts Counts
	for _, key := range keys {
		// direct children only: nested variants belong to other sweeps
		if path.Dir(key) != dir {
			continue
		}
		base := path.Base(key)
		if !s.matches(base) {
			continue
		}
		entry := Entry{
			Source:      key,
			Destination: path.Join(s.DestPrefix, base),
			Label:       "sweep",
		}
		has, err := dst.Has(ctx, entry.Destination)
		if err != nil {
			return counts, ErrResolve.Wrap(err)
		}
		if has {
			counts.Add(OutcomeSkipped)
			continue
		}
		if err = storage.Copy(ctx, src, entry.Source, dst, entry.Destination); err != nil {
			return counts, ErrResolve.Wrap(err)
		}
		l.Info("swept machine texture", zap.String("source", key), zap.String("destination", entry.Destination))
		counts.Add(OutcomeCopied)
	}
	return counts, nil
}

func (s Sweep) matches(name string) bool {
	for _, kw := range s.Keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
