package cmd

import (
	"github.com/spf13/cobra"
)

type flagsT struct {
	root struct {
		logLevel string
	}
	migrate struct {
		source        string
		destination   string
		mappingFile   string
		noPlaceholder bool
		skipBulk      bool
	}
	sync struct {
		ext    string
		rename bool
	}
	generate struct {
		out  string
		size int
	}
}

var texFlags = flagsT{}

func addLogLevelFlag(cmd *cobra.Command) string {
	logLevel := "log-level"
	cmd.PersistentFlags().StringVar(&texFlags.root.logLevel, logLevel, "info",
		"Log level for this command (debug, info, none)")
	return logLevel
}

func addSourceFlag(cmd *cobra.Command) string {
	source := "source"
	cmd.Flags().StringVar(&texFlags.migrate.source, source, "",
		"Root of the Java edition texture tree to read from")
	return source
}

func addDestinationFlag(cmd *cobra.Command) string {
	destination := "destination"
	cmd.Flags().StringVar(&texFlags.migrate.destination, destination, "",
		"Root of the Bedrock resource pack texture tree to write to")
	return destination
}

func addMappingFileFlag(cmd *cobra.Command) string {
	mappingFile := "mapping-file"
	cmd.Flags().StringVar(&texFlags.migrate.mappingFile, mappingFile, "",
		"YAML manifest with additional mapping entries, appended to the compiled-in tables")
	return mappingFile
}

func addNoPlaceholderFlag(cmd *cobra.Command) string {
	noPlaceholder := "no-placeholder"
	cmd.Flags().BoolVar(&texFlags.migrate.noPlaceholder, noPlaceholder, false,
		"Report absent sources instead of writing placeholder textures for them")
	return noPlaceholder
}

func addSkipBulkFlag(cmd *cobra.Command) string {
	skipBulk := "skip-bulk"
	cmd.Flags().BoolVar(&texFlags.migrate.skipBulk, skipBulk, false,
		"Only honor the curated mapping table, skip the bulk mirroring pass")
	return skipBulk
}

func addExtensionFlag(cmd *cobra.Command) string {
	ext := "ext"
	cmd.Flags().StringVar(&texFlags.sync.ext, ext, ".png",
		"File extension the bulk pass mirrors")
	return ext
}

func addRenameFlag(cmd *cobra.Command) string {
	rename := "rename"
	cmd.Flags().BoolVar(&texFlags.sync.rename, rename, false,
		"Route each file to its canonical blocks/items path under its normalized ic2 name instead of mirroring the original layout")
	return rename
}

func addOutFlag(cmd *cobra.Command) string {
	out := "out"
	cmd.Flags().StringVar(&texFlags.generate.out, out, "",
		"Root of the texture tree to write generated placeholders to")
	return out
}

func addSizeFlag(cmd *cobra.Command) string {
	size := "size"
	cmd.Flags().IntVar(&texFlags.generate.size, size, 16,
		"Square pixel dimension of generated textures")
	return size
}
