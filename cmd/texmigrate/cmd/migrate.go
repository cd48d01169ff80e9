package cmd

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ic2bedrock/texmigrate/pkg/dlogger"
	"github.com/ic2bedrock/texmigrate/pkg/migrate"
	"github.com/ic2bedrock/texmigrate/pkg/mirror"
	"github.com/ic2bedrock/texmigrate/pkg/storage/localfs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy mapped textures into the resource pack",
	Long: `Copy textures from the Java tree into the Bedrock pack tree.

The curated mapping table runs first: for each entry an existing destination
is left alone, a present source is copied with its timestamp, and an absent
source gets the placeholder asset unless --no-placeholder is set. A keyword
sweep then picks up the machine texture variants, and unless --skip-bulk is
set a bulk pass mirrors every remaining PNG at its original relative path.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
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

		entries := migrate.DefaultMappings()
		if texFlags.migrate.mappingFile != "" {
			f, err := os.Open(texFlags.migrate.mappingFile)
			if err != nil {
				wrapFatalln("open mapping file", err)
				return
			}
			extra, err := migrate.LoadManifest(f)
			_ = f.Close()
			if err != nil {
				wrapFatalln("load mapping file", err)
				return
			}
			entries = append(entries, extra...)
			logger.Info("loaded extra mappings",
				zap.String("file", texFlags.migrate.mappingFile),
				zap.Int("entries", len(extra)),
			)
		}

		opts := []migrate.Option{migrate.WithLogger(logger)}
		if texFlags.migrate.noPlaceholder {
			opts = append(opts, migrate.WithoutPlaceholders())
		}
		resolver := migrate.NewResolver(src, dst, opts...)

		counts, err := resolver.ResolveAll(ctx, entries)
		if err != nil {
			wrapFatalln("mapping pass", err)
			return
		}
		sweepCounts, err := migrate.MachineSweep().Run(ctx, src, dst, logger)
		if err != nil {
			wrapFatalln("machine sweep", err)
			return
		}
		counts.Merge(sweepCounts)

		if !texFlags.migrate.skipBulk {
			bulk, err := mirror.Sync(ctx, src, dst, mirror.WithLogger(logger))
			if err != nil {
				wrapFatalln("bulk pass", err)
				return
			}
			counts.BulkCopied += bulk.Copied
			counts.Skipped += bulk.Skipped
		}

		printSummary(counts)
	},
}

func init() {
	addSourceFlag(migrateCmd)
	addDestinationFlag(migrateCmd)
	addMappingFileFlag(migrateCmd)
	addNoPlaceholderFlag(migrateCmd)
	addSkipBulkFlag(migrateCmd)
	rootCmd.AddCommand(migrateCmd)
}
