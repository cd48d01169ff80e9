package cmd

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ic2bedrock/texmigrate/pkg/dlogger"
	"github.com/ic2bedrock/texmigrate/pkg/migrate"
	"github.com/ic2bedrock/texmigrate/pkg/mirror"
	"github.com/ic2bedrock/texmigrate/pkg/naming"
	"github.com/ic2bedrock/texmigrate/pkg/storage/localfs"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror the source tree into the pack without renaming",
	Long: `Recursively copy every texture under the source root to the same
relative path under the destination root. Files already present in the
destination are never touched; there is no placeholder fallback.

With --rename, each file is instead routed to blocks/ or items/ under its
normalized name: stems are lowercased, camel-case split, stripped of a
leading item_/block_ marker and given the ic2_ namespace tag, so loose
artist exports land where the pack expects them.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := dlogger.GetLogger(texFlags.root.logLevel)
		if err != nil {
			wrapFatalln("get logger", err)
			return
		}

		srcRoot := texFlags.migrate.source
		if fi, err := os.Stat(srcRoot); err != nil || !fi.IsDir() {
			wrapFatalln("source root "+srcRoot+" is not a directory", err)
			return
		}
		if err := os.MkdirAll(texFlags.migrate.destination, 0755); err != nil {
			wrapFatalln("create destination root", err)
			return
		}

		src := localfs.New(afero.NewOsFs(), srcRoot)
		dst := localfs.New(afero.NewOsFs(), texFlags.migrate.destination)

		opts := []mirror.Option{
			mirror.WithExtension(texFlags.sync.ext),
			mirror.WithLogger(logger),
		}
		if texFlags.sync.rename {
			opts = append(opts, mirror.WithRouter(naming.RouteKey))
		}
		bulk, err := mirror.Sync(context.Background(), src, dst, opts...)
		if err != nil {
			wrapFatalln("bulk pass", err)
			return
		}
		printSummary(migrate.Counts{BulkCopied: bulk.Copied, Skipped: bulk.Skipped})
	},
}

func init() {
	addSourceFlag(syncCmd)
	addDestinationFlag(syncCmd)
	addExtensionFlag(syncCmd)
	addRenameFlag(syncCmd)
	rootCmd.AddCommand(syncCmd)
}
