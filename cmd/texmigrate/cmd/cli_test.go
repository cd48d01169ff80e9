package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ic2bedrock/texmigrate/pkg/migrate"
)

type exitMocksT struct {
	fatalCalls int
	lastMsg    string
}

func (m *exitMocksT) Fatalf(format string, v ...interface{}) {
	m.fatalCalls++
	m.lastMsg = format
}

func (m *exitMocksT) Fatalln(v ...interface{}) {
	m.fatalCalls++
}

var exitMocks *exitMocksT

func setupTests(t *testing.T) (srcDir, dstDir string) {
	t.Helper()
	exitMocks = new(exitMocksT)
	prevFatalf, prevFatalln := logFatalf, logFatalln
	logFatalf = exitMocks.Fatalf
	logFatalln = exitMocks.Fatalln
	t.Cleanup(func() {
		logFatalf = prevFatalf
		logFatalln = prevFatalln
	})
	return t.TempDir(), t.TempDir()
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func readFile(t *testing.T, root, rel string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return b
}

func runCommand(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	require.Zero(t, exitMocks.fatalCalls, "unexpected fatal: %s", exitMocks.lastMsg)
}

func TestMigrateCommand(t *testing.T) {
	srcDir, dstDir := setupTests(t)
	writeFile(t, srcDir, "blocks/resource/copper_ore.png", "copper ore")
	writeFile(t, srcDir, "blocks/resource/tin_ore.png", "tin ore")
	writeFile(t, srcDir, "blocks/machine/processing/basic/macerator_side.png", "macerator side")
	writeFile(t, srcDir, "blocks/cable/tin_cable.png", "tin cable")

	runCommand(t, "migrate",
		"--source", srcDir,
		"--destination", dstDir,
		"--no-placeholder=false",
		"--skip-bulk=false",
		"--log-level", "none",
	)

	// curated mapping, including the deepslate fan-out
	assert.Equal(t, "copper ore", string(readFile(t, dstDir, "blocks/ore/copper_ore.png")))
	assert.Equal(t, "tin ore", string(readFile(t, dstDir, "blocks/ore/tin_ore.png")))
	assert.Equal(t, "tin ore", string(readFile(t, dstDir, "blocks/ore/deepslate_tin_ore.png")))

	// absent mapped source filled with the placeholder asset
	assert.Equal(t, migrate.PlaceholderPNG(), readFile(t, dstDir, "blocks/generator/generator.png"))

	// keyword sweep
	assert.Equal(t, "macerator side", string(readFile(t, dstDir, "blocks/machine/macerator_side.png")))

	// bulk mirror keeps the original relative path
	assert.Equal(t, "tin cable", string(readFile(t, dstDir, "blocks/cable/tin_cable.png")))
}

func TestMigrateCommandIsIdempotent(t *testing.T) {
	srcDir, dstDir := setupTests(t)
	writeFile(t, srcDir, "blocks/resource/copper_ore.png", "copper ore")

	args := []string{"migrate",
		"--source", srcDir,
		"--destination", dstDir,
		"--no-placeholder=false",
		"--skip-bulk=false",
		"--log-level", "none",
	}
	runCommand(t, args...)
	before := readFile(t, dstDir, "blocks/ore/copper_ore.png")

	// a second run must not touch anything already materialized
	writeFile(t, srcDir, "blocks/resource/copper_ore.png", "changed upstream")
	runCommand(t, args...)
	assert.Equal(t, before, readFile(t, dstDir, "blocks/ore/copper_ore.png"))
}

func TestMigrateCommandNoPlaceholder(t *testing.T) {
	srcDir, dstDir := setupTests(t)

	runCommand(t, "migrate",
		"--source", srcDir,
		"--destination", dstDir,
		"--no-placeholder",
		"--skip-bulk",
		"--log-level", "none",
	)

	_, err := os.Stat(filepath.Join(dstDir, "blocks", "generator", "generator.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestSyncCommandNeverOverwrites(t *testing.T) {
	srcDir, dstDir := setupTests(t)
	writeFile(t, srcDir, "items/rubber.png", "incoming")
	writeFile(t, dstDir, "items/rubber.png", "sentinel")

	runCommand(t, "sync",
		"--source", srcDir,
		"--destination", dstDir,
		"--rename=false",
		"--log-level", "none",
	)

	assert.Equal(t, "sentinel", string(readFile(t, dstDir, "items/rubber.png")))
}

func TestSyncCommandRename(t *testing.T) {
	srcDir, dstDir := setupTests(t)
	writeFile(t, srcDir, "loose/CopperIngot.png", "ingot")
	writeFile(t, srcDir, "textures/BlockMacerator.png", "macerator")

	runCommand(t, "sync",
		"--source", srcDir,
		"--destination", dstDir,
		"--rename",
		"--log-level", "none",
	)

	assert.Equal(t, "ingot", string(readFile(t, dstDir, "items/ic2_copper_ingot.png")))
	assert.Equal(t, "macerator", string(readFile(t, dstDir, "blocks/ic2_macerator.png")))
}

func TestGenerateCommand(t *testing.T) {
	_, dstDir := setupTests(t)

	runCommand(t, "generate",
		"--out", dstDir,
		"--size", "16",
		"--log-level", "none",
	)

	b := readFile(t, dstDir, "blocks/macerator_front_active.png")
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, b[:4])
}

func TestSummaryLineCountsEveryCategory(t *testing.T) {
	counts := migrate.Counts{Copied: 2, BulkCopied: 3, Placeholder: 1, Skipped: 4, Missing: 5}
	line := summaryLine(counts)
	assert.Contains(t, line, "2 copied")
	assert.Contains(t, line, "3 bulk-copied")
	assert.Contains(t, line, "15 total")
}

func TestVersionInfo(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(NewVersionInfo().String())
	assert.Contains(t, buf.String(), "Version: dev")
}
