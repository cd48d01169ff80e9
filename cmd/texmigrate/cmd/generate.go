package cmd

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ic2bedrock/texmigrate/pkg/dlogger"
	"github.com/ic2bedrock/texmigrate/pkg/storage/localfs"
	"github.com/ic2bedrock/texmigrate/pkg/texture"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the placeholder texture set",
	Long: `Render a placeholder for every texture the pack expects: a colored
square with a border and an identifying letter, plus an orange dot on active
machine variants. Colors come from a keyword table where material keywords
take precedence over category keywords. Existing files are left alone.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := dlogger.GetLogger(texFlags.root.logLevel)
		if err != nil {
			wrapFatalln("get logger", err)
			return
		}

		out := texFlags.generate.out
		if out == "" {
			out = texFlags.migrate.destination
		}
		if err := os.MkdirAll(out, 0755); err != nil {
			wrapFatalln("create output root", err)
			return
		}
		dst := localfs.New(afero.NewOsFs(), out)

		written, skipped, err := texture.Generate(context.Background(), dst, texFlags.generate.size, logger)
		if err != nil {
			wrapFatalln("generate textures", err)
			return
		}
		infoLogger.Printf("generated %d textures, skipped %d existing, under %s", written, skipped, out)
	},
}

func init() {
	addOutFlag(generateCmd)
	addSizeFlag(generateCmd)
	rootCmd.AddCommand(generateCmd)
}
