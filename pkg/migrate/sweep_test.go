package migrate

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepCopiesKeywordMatches(t *testing.T) {
	src, dst, fs := testStores(t)
	writeSrc(t, fs, "blocks/machine/processing/basic/macerator_side.png", "macerator side")
	writeSrc(t, fs, "blocks/machine/processing/basic/compressor_top.png", "compressor top")
	writeSrc(t, fs, "blocks/machine/processing/basic/induction_furnace.png", "no keyword")
	writeSrc(t, fs, "blocks/machine/processing/basic/nested/extractor_side.png", "nested, out of scope")
	writeSrc(t, fs, "blocks/machine/recycler_front.png", "outside sweep dir")

	counts, err := MachineSweep().Run(context.Background(), src, dst, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Copied)
	assert.Equal(t, 0, counts.Skipped)

	assert.Equal(t, "macerator side", string(readDst(t, dst, "blocks/machine/macerator_side.png")))
	assert.Equal(t, "compressor top", string(readDst(t, dst, "blocks/machine/compressor_top.png")))

	for _, absent := range []string{
		"blocks/machine/induction_furnace.png",
		"blocks/machine/extractor_side.png",
		"blocks/machine/recycler_front.png",
	} {
		has, err := dst.Has(context.Background(), absent)
		require.NoError(t, err)
		assert.False(t, has, absent)
	}
}

func TestSweepSkipsExisting(t *testing.T) {
	src, dst, fs := testStores(t)
	writeSrc(t, fs, "blocks/machine/processing/basic/macerator_side.png", "new bytes")
	require.NoError(t, afero.WriteFile(fs, "bedrock/blocks/machine/macerator_side.png", []byte("sentinel"), 0644))

	counts, err := MachineSweep().Run(context.Background(), src, dst, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Copied)
	assert.Equal(t, 1, counts.Skipped)
	assert.Equal(t, "sentinel", string(readDst(t, dst, "blocks/machine/macerator_side.png")))
}

func TestSweepKeywordsAreCaseSensitive(t *testing.T) {
	src, dst, fs := testStores(t)
	writeSrc(t, fs, "blocks/machine/processing/basic/Macerator_side.png", "wrong case")

	counts, err := MachineSweep().Run(context.Background(), src, dst, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Total())

	has, err := dst.Has(context.Background(), "blocks/machine/Macerator_side.png")
	require.NoError(t, err)
	assert.False(t, has)
}
