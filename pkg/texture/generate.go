package texture

import (
	"bytes"
	"context"
	"image"
	"path"

	"go.uber.org/zap"

	"github.com/ic2bedrock/texmigrate/pkg/errors"
	"github.com/ic2bedrock/texmigrate/pkg/storage"
)

// ErrGenerate reports a store failure while writing generated textures.
var ErrGenerate = errors.New("generating placeholder textures")

// DefaultSize is the square pixel dimension of generated textures.
const DefaultSize = 16

// Generate renders the full placeholder set into dst: BlockTextures under
// blocks/, ItemTextures under items/, UITextures under ui/. Names containing
// "active" get the powered variant. Existing files are left alone, matching
// the never-overwrite rule the rest of the toolkit follows.
func Generate(ctx context.Context, dst storage.Store, size int, l *zap.Logger) (written, skipped int, err error) {
	if size <= 0 {
		size = DefaultSize
	}
	if l == nil {
		l = zap.NewNop()
	}
	sets := []struct {
		dir   string
		names []string
	}{
		{"blocks", BlockTextures},
		{"items", ItemTextures},
		{"ui", UITextures},
	}
	for _, set := range sets {
		for _, name := range set.names {
			key := path.Join(set.dir, name+".png")
			has, herr := dst.Has(ctx, key)
			if herr != nil {
				return written, skipped, ErrGenerate.Wrap(herr)
			}
			if has {
				skipped++
				continue
			}
			var img *image.RGBA
			if IsActive(name) {
				img = RenderActive(name, size)
			} else {
				img = Render(name, size)
			}
			var buf bytes.Buffer
			if err = Encode(&buf, img); err != nil {
				return written, skipped, ErrGenerate.Wrap(err)
			}
			if err = dst.Put(ctx, key, &buf); err != nil {
				return written, skipped, ErrGenerate.Wrap(err)
			}
			l.Debug("generated texture", zap.String("key", key), zap.Int("size", size))
			written++
		}
	}
	return written, skipped, nil
}
