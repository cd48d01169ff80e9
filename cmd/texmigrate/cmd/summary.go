package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/ic2bedrock/texmigrate/pkg/migrate"
)

// printSummary reports every outcome category, so an operator can tell a
// fully satisfied run from one padded with placeholders without rerunning at
// a higher log level.
func printSummary(counts migrate.Counts) {
	infoLogger.Println(summaryLine(counts))
}

func summaryLine(counts migrate.Counts) string {
	missing := fmt.Sprintf("%d missing", counts.Missing)
	if counts.Missing > 0 {
		missing = color.RedString(missing)
	}
	placeholder := fmt.Sprintf("%d placeholders", counts.Placeholder)
	if counts.Placeholder > 0 {
		placeholder = color.YellowString(placeholder)
	}
	return fmt.Sprintf("%d copied, %d bulk-copied, %s, %s, %s (%d total)",
		counts.Copied,
		counts.BulkCopied,
		placeholder,
		color.HiBlackString("%d skipped", counts.Skipped),
		missing,
		counts.Total(),
	)
}
