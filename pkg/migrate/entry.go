// Package migrate materializes a Bedrock resource-pack texture tree from a
// Java-edition texture tree, driven by a curated table of source to
// destination path mappings with optional placeholder fallback.
package migrate

import "fmt"

// Entry declares that the texture at Source (relative to the Java texture
// root) lands at Destination (relative to the pack texture root). Label tags
// the entry for logging and summaries.
//
// The curated table is an ordered slice, not a map: the same source may
// legitimately fan out to several destinations (e.g. an ore texture standing
// in for its deepslate variant), and a keyed structure would drop all but one.
type Entry struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
	Label       string `yaml:"label,omitempty"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%s -> %s", e.Source, e.Destination)
}

// Outcome is the categorical result of attempting to materialize one
// destination file. An Outcome is produced once and never revised.
type Outcome int

const (
	// OutcomeCopied: the mapped source existed and was copied.
	OutcomeCopied Outcome = iota
	// OutcomeBulkCopied: the file was mirrored by the bulk pass.
	OutcomeBulkCopied
	// OutcomePlaceholder: the source was absent and the placeholder asset was written.
	OutcomePlaceholder
	// OutcomeSkipped: the destination already existed, nothing was written.
	OutcomeSkipped
	// OutcomeMissing: the source was absent and placeholders were disabled.
	OutcomeMissing
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeBulkCopied:
		return "bulk-copied"
	case OutcomePlaceholder:
		return "placeholder"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeMissing:
		return "missing"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Counts aggregates outcomes over a run.
type Counts struct {
	Copied      int
	BulkCopied  int
	Placeholder int
	Skipped     int
	Missing     int
}

// Add records one outcome.
func (c *Counts) Add(o Outcome) {
	switch o {
	case OutcomeCopied:
		c.Copied++
	case OutcomeBulkCopied:
		c.BulkCopied++
	case OutcomePlaceholder:
		c.Placeholder++
	case OutcomeSkipped:
		c.Skipped++
	case OutcomeMissing:
		c.Missing++
	}
}

// Merge folds other into c.
func (c *Counts) Merge(other Counts) {
	c.Copied += other.Copied
	c.BulkCopied += other.BulkCopied
	c.Placeholder += other.Placeholder
	c.Skipped += other.Skipped
	c.Missing += other.Missing
}

// Total is the number of outcomes recorded.
func (c Counts) Total() int {
	return c.Copied + c.BulkCopied + c.Placeholder + c.Skipped + c.Missing
}
