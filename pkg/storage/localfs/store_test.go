package localfs

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/ic2bedrock/texmigrate/pkg/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHas(t *testing.T) {
	bs := setupStore(t)

	has, err := bs.Has(context.Background(), "blocks/machine.png")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "items/rubber.png")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "blocks/cable.png")
	require.NoError(t, err)
	require.False(t, has)
}

func TestGet(t *testing.T) {
	bs := setupStore(t)

	rdr, err := bs.Get(context.Background(), "blocks/machine.png")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "machine texture bytes", string(b))

	_, err = bs.Get(context.Background(), "blocks/cable.png")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPut(t *testing.T) {
	bs := setupStore(t)

	content := bytes.NewBufferString("solar texture bytes")
	err := bs.Put(context.Background(), "blocks/generator/solar.png", content)
	require.NoError(t, err)

	rdr, err := bs.Get(context.Background(), "blocks/generator/solar.png")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "solar texture bytes", string(b))

	k, _ := bs.Keys(context.Background())
	assert.Len(t, k, 3)
}

func TestKeys(t *testing.T) {
	bs := setupStore(t)

	keys, err := bs.Keys(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 2)
}

func TestKeysMissingRoot(t *testing.T) {
	bs := New(afero.NewMemMapFs(), "no/such/dir")

	keys, err := bs.Keys(context.Background())
	require.NoError(t, err)
	require.Empty(t, keys)
}

func TestCopyPreservesModTime(t *testing.T) {
	fs := afero.NewMemMapFs()
	src := New(fs, "src")
	dst := New(fs, "dst")

	require.NoError(t, fs.MkdirAll("src", 0755))
	require.NoError(t, src.Put(context.Background(), "ore/tin_ore.png", bytes.NewBufferString("tin")))
	stamp := time.Date(2020, 4, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, src.Chtimes(context.Background(), "ore/tin_ore.png", stamp, stamp))

	require.NoError(t, storage.Copy(context.Background(), src, "ore/tin_ore.png", dst, "ore/tin_ore.png"))

	fi, err := dst.Stat(context.Background(), "ore/tin_ore.png")
	require.NoError(t, err)
	assert.True(t, fi.ModTime().Equal(stamp))
}

func setupStore(t testing.TB) storage.Store {
	t.Helper()

	fs := afero.NewMemMapFs()
	fakeFile(t, fs, "blocks/machine.png", "machine texture bytes")
	fakeFile(t, fs, "items/rubber.png", "rubber texture bytes")

	return New(fs, "")
}

func fakeFile(t testing.TB, fs afero.Fs, file, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, file, []byte(content), 0644))
}
